package usecases

import (
	"context"
	"io"

	"helpdesk/internal/application/attachment/dto"
	"helpdesk/internal/infrastructure/objectstorage"
)

// ObjectStore is the blob-store gateway the attachment use cases need.
// Implemented by objectstorage.Client.
type ObjectStore interface {
	GetUploadURL(ctx context.Context) (*objectstorage.UploadTarget, error)
	StatObject(ctx context.Context, objectPath string) (*objectstorage.ObjectInfo, error)
	FetchObject(ctx context.Context, objectPath string) (io.ReadCloser, *objectstorage.ObjectInfo, error)
	RemoveObject(ctx context.Context, objectPath string) error
}

type RequestUploadExecutor interface {
	Execute(ctx context.Context) (*dto.UploadTargetDTO, error)
}

type RegisterAttachmentExecutor interface {
	Execute(ctx context.Context, cmd RegisterAttachmentCommand) (*dto.AttachmentDTO, error)
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) ([]*dto.AttachmentDTO, error)
}

type DeleteAttachmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAttachmentCommand) error
}

type DownloadObjectExecutor interface {
	Execute(ctx context.Context, query DownloadObjectQuery) (*DownloadObjectResult, error)
}
