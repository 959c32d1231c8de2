package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	UserID      uint      `json:"userId"`
	RequestType string    `json:"requestType"`
	SoftwareID  *uint     `json:"softwareId"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type HistoryEntryDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticketId"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatsDTO summarizes ticket counts for the dashboard.
type StatsDTO struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
	Urgent     int64 `json:"urgent"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:          t.ID(),
		Code:        t.Code(),
		UserID:      t.UserID(),
		RequestType: t.RequestType().String(),
		SoftwareID:  t.SoftwareID(),
		Description: t.Description(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = ToTicketDTO(t)
	}
	return dtos
}

func ToHistoryEntryDTO(entry *ticket.HistoryEntry) *HistoryEntryDTO {
	if entry == nil {
		return nil
	}

	return &HistoryEntryDTO{
		ID:        entry.ID(),
		TicketID:  entry.TicketID(),
		Status:    entry.Status().String(),
		Notes:     entry.Notes(),
		CreatedAt: entry.CreatedAt(),
	}
}

func ToHistoryEntryDTOs(entries []*ticket.HistoryEntry) []*HistoryEntryDTO {
	dtos := make([]*HistoryEntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = ToHistoryEntryDTO(entry)
	}
	return dtos
}
