package usecases

import (
	"context"
	"io"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/objectstorage"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DownloadObjectQuery struct {
	ObjectPath string
	Identity   authorization.Identity
}

// DownloadObjectResult carries an open object stream. The caller owns Body
// and must close it.
type DownloadObjectResult struct {
	Body        io.ReadCloser
	FileName    string
	ContentType string
	Size        int64
}

// DownloadObjectUseCase streams a stored object back to its owner. The gate
// runs against the attachment's owning ticket, so a leaked object path alone
// grants nothing.
type DownloadObjectUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	store          ObjectStore
	logger         logger.Interface
}

func NewDownloadObjectUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	store ObjectStore,
	logger logger.Interface,
) *DownloadObjectUseCase {
	return &DownloadObjectUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *DownloadObjectUseCase) Execute(ctx context.Context, query DownloadObjectQuery) (*DownloadObjectResult, error) {
	objectPath, err := objectstorage.SanitizeObjectPath(query.ObjectPath)
	if err != nil {
		return nil, err
	}

	attachment, err := uc.attachmentRepo.FindByObjectPath(ctx, objectPath)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, attachment.TicketID())
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResourceByOwnerID(query.Identity, t.GetOwnerID()) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	body, info, err := uc.store.FetchObject(ctx, objectPath)
	if err != nil {
		uc.logger.Errorw("failed to fetch stored object", "error", err, "object_path", objectPath)
		return nil, err
	}

	contentType := attachment.ContentType()
	if contentType == "" {
		contentType = info.ContentType
	}

	return &DownloadObjectResult{
		Body:        body,
		FileName:    attachment.FileName(),
		ContentType: contentType,
		Size:        info.Size,
	}, nil
}
