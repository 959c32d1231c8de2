package usecases

import (
	"context"

	"helpdesk/internal/application/attachment/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListAttachmentsQuery struct {
	TicketID uint
	Identity authorization.Identity
}

type ListAttachmentsUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]*dto.AttachmentDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResourceByOwnerID(query.Identity, t.GetOwnerID()) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	attachments, err := uc.attachmentRepo.FindByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	return dto.ToAttachmentDTOs(attachments), nil
}
