package ticket

import (
	"fmt"
	"time"
)

const maxFileNameLength = 255

// Attachment is a file associated with a ticket, stored in an external
// object store and referenced by its opaque object path.
type Attachment struct {
	id          uint
	ticketID    uint
	fileName    string
	fileSize    int64
	contentType string
	objectPath  string
	uploadedAt  time.Time
}

func NewAttachment(
	ticketID uint,
	fileName string,
	fileSize int64,
	contentType string,
	objectPath string,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if len(fileName) > maxFileNameLength {
		return nil, fmt.Errorf("file name exceeds maximum length of %d characters", maxFileNameLength)
	}
	if fileSize < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}
	if len(objectPath) == 0 {
		return nil, fmt.Errorf("object path is required")
	}

	return &Attachment{
		ticketID:    ticketID,
		fileName:    fileName,
		fileSize:    fileSize,
		contentType: contentType,
		objectPath:  objectPath,
		uploadedAt:  time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	fileName string,
	fileSize int64,
	contentType string,
	objectPath string,
	uploadedAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}

	return &Attachment{
		id:          id,
		ticketID:    ticketID,
		fileName:    fileName,
		fileSize:    fileSize,
		contentType: contentType,
		objectPath:  objectPath,
		uploadedAt:  uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) FileSize() int64 {
	return a.fileSize
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) ObjectPath() string {
	return a.objectPath
}

func (a *Attachment) UploadedAt() time.Time {
	return a.uploadedAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
