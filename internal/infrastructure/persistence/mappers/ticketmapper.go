package mappers

import (
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (m TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Code:        t.Code(),
		UserID:      t.UserID(),
		RequestType: t.RequestType().String(),
		SoftwareID:  t.SoftwareID(),
		Description: t.Description(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Code,
		model.UserID,
		vo.RequestType(model.RequestType),
		model.SoftwareID,
		model.Description,
		vo.Status(model.Status),
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m TicketMapper) HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:        h.ID(),
		TicketID:  h.TicketID(),
		Status:    h.Status().String(),
		Notes:     h.Notes(),
		CreatedAt: h.CreatedAt().UnixMilli(),
	}
}

func (m TicketMapper) HistoryToDomain(model *models.TicketHistoryModel) (*ticket.HistoryEntry, error) {
	return ticket.ReconstructHistoryEntry(
		model.ID,
		model.TicketID,
		vo.Status(model.Status),
		model.Notes,
		time.UnixMilli(model.CreatedAt),
	)
}

func (m TicketMapper) AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel {
	return &models.TicketAttachmentModel{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		FileName:    a.FileName(),
		FileSize:    a.FileSize(),
		ContentType: a.ContentType(),
		ObjectPath:  a.ObjectPath(),
		UploadedAt:  a.UploadedAt().UnixMilli(),
	}
}

func (m TicketMapper) AttachmentToDomain(model *models.TicketAttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.FileName,
		model.FileSize,
		model.ContentType,
		model.ObjectPath,
		time.UnixMilli(model.UploadedAt),
	)
}
