package usecases

import (
	"context"

	"helpdesk/internal/application/attachment/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/objectstorage"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RegisterAttachmentCommand struct {
	TicketID    uint
	FileName    string
	FileSize    int64
	ContentType string
	ObjectPath  string
	Identity    authorization.Identity
}

// RegisterAttachmentUseCase binds an already-uploaded object to a ticket.
// The object must exist in the store; its stored size is authoritative over
// whatever the client claims.
type RegisterAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	store          ObjectStore
	logger         logger.Interface
}

func NewRegisterAttachmentUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	store ObjectStore,
	logger logger.Interface,
) *RegisterAttachmentUseCase {
	return &RegisterAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *RegisterAttachmentUseCase) Execute(ctx context.Context, cmd RegisterAttachmentCommand) (*dto.AttachmentDTO, error) {
	uc.logger.Infow("executing register attachment use case", "ticket_id", cmd.TicketID, "file_name", cmd.FileName)

	objectPath, err := objectstorage.SanitizeObjectPath(cmd.ObjectPath)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResourceByOwnerID(cmd.Identity, t.GetOwnerID()) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	info, err := uc.store.StatObject(ctx, objectPath)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("no uploaded object found at the given path")
		}
		return nil, err
	}

	contentType := cmd.ContentType
	if contentType == "" {
		contentType = info.ContentType
	}

	attachment, err := ticket.NewAttachment(t.ID(), cmd.FileName, info.Size, contentType, objectPath)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("attachment registered", "attachment_id", attachment.ID(), "ticket_id", t.ID())

	return dto.ToAttachmentDTO(attachment), nil
}
