package ticket

import (
	"context"
)

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByCode(ctx context.Context, code string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
	CountByStatus(ctx context.Context, userID *uint) (StatusCounts, error)
}

// Filter narrows List results. A nil UserID returns all tickets.
type Filter struct {
	UserID *uint
}

// StatusCounts aggregates ticket counts per status label.
type StatusCounts map[string]int64

type HistoryRepository interface {
	Save(ctx context.Context, entry *HistoryEntry) error
	FindByTicketID(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	FindByID(ctx context.Context, id uint) (*Attachment, error)
	FindByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	FindByObjectPath(ctx context.Context, objectPath string) (*Attachment, error)
	Delete(ctx context.Context, id uint) error
}

// CodeGenerator produces unique, monotonically numbered per-year ticket
// codes of the form INC-<year>-<4-digit sequence>.
type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}
