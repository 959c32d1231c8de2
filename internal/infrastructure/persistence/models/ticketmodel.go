package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"uniqueIndex;size:20;not null"`
	UserID      uint   `gorm:"not null;index"`
	RequestType string `gorm:"size:50;not null"`
	SoftwareID  *uint  `gorm:"index"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:50;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketHistoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Status    string `gorm:"size:50;not null"`
	Notes     string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketHistoryModel) TableName() string {
	return "ticket_history"
}

type TicketAttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	FileName    string `gorm:"size:255;not null"`
	FileSize    int64  `gorm:"not null;default:0"`
	ContentType string `gorm:"size:100"`
	ObjectPath  string `gorm:"uniqueIndex;size:512;not null"`
	UploadedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketAttachmentModel) TableName() string {
	return "ticket_attachments"
}

// TicketSequenceModel is the per-year counter backing ticket code
// generation. The value column is only ever changed by a single atomic
// UPDATE inside the creation transaction.
type TicketSequenceModel struct {
	Year  int   `gorm:"primaryKey;autoIncrement:false"`
	Value int64 `gorm:"not null;default:0"`
}

func (TicketSequenceModel) TableName() string {
	return "ticket_sequences"
}
