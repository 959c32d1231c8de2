package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// HistoryEntry is one row of a ticket's append-only audit log. Entries are
// created once and never mutated or deleted.
type HistoryEntry struct {
	id        uint
	ticketID  uint
	status    vo.Status
	notes     string
	createdAt time.Time
}

// NewHistoryEntry records the ticket's status at a point in time. One entry
// is written at creation and exactly one more per status transition.
func NewHistoryEntry(ticketID uint, status vo.Status, notes string) (*HistoryEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &HistoryEntry{
		ticketID:  ticketID,
		status:    status,
		notes:     notes,
		createdAt: time.Now(),
	}, nil
}

func ReconstructHistoryEntry(
	id uint,
	ticketID uint,
	status vo.Status,
	notes string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}

	return &HistoryEntry{
		id:        id,
		ticketID:  ticketID,
		status:    status,
		notes:     notes,
		createdAt: createdAt,
	}, nil
}

func (h *HistoryEntry) ID() uint {
	return h.id
}

func (h *HistoryEntry) TicketID() uint {
	return h.ticketID
}

func (h *HistoryEntry) Status() vo.Status {
	return h.status
}

func (h *HistoryEntry) Notes() string {
	return h.notes
}

func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}
