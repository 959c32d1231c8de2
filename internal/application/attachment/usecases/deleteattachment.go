package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteAttachmentCommand struct {
	TicketID     uint
	AttachmentID uint
	Identity     authorization.Identity
}

type DeleteAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	store          ObjectStore
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	store ObjectStore,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	uc.logger.Infow("executing delete attachment use case", "ticket_id", cmd.TicketID, "attachment_id", cmd.AttachmentID)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if !authorization.CanAccessResourceByOwnerID(cmd.Identity, t.GetOwnerID()) {
		return errors.NewForbiddenError("you do not have access to this ticket")
	}

	attachment, err := uc.attachmentRepo.FindByID(ctx, cmd.AttachmentID)
	if err != nil {
		return err
	}
	if attachment.TicketID() != t.ID() {
		return errors.NewNotFoundError("attachment not found")
	}

	if err := uc.attachmentRepo.Delete(ctx, attachment.ID()); err != nil {
		return err
	}

	// The record is the source of truth; an orphaned object is only a
	// storage leak, so removal failure does not fail the request.
	if err := uc.store.RemoveObject(ctx, attachment.ObjectPath()); err != nil {
		uc.logger.Warnw("failed to remove stored object",
			"error", err,
			"object_path", attachment.ObjectPath(),
		)
	}

	uc.logger.Infow("attachment deleted", "attachment_id", attachment.ID(), "ticket_id", t.ID())

	return nil
}
