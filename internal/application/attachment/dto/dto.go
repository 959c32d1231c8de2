package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

type AttachmentDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticketId"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	ContentType string    `json:"contentType"`
	ObjectPath  string    `json:"objectPath"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// UploadTargetDTO is handed to the client for a direct-to-storage upload.
type UploadTargetDTO struct {
	UploadURL  string `json:"uploadURL"`
	ObjectPath string `json:"objectPath"`
}

func ToAttachmentDTO(a *ticket.Attachment) *AttachmentDTO {
	if a == nil {
		return nil
	}

	return &AttachmentDTO{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		FileName:    a.FileName(),
		FileSize:    a.FileSize(),
		ContentType: a.ContentType(),
		ObjectPath:  a.ObjectPath(),
		UploadedAt:  a.UploadedAt(),
	}
}

func ToAttachmentDTOs(attachments []*ticket.Attachment) []*AttachmentDTO {
	dtos := make([]*AttachmentDTO, len(attachments))
	for i, a := range attachments {
		dtos[i] = ToAttachmentDTO(a)
	}
	return dtos
}
