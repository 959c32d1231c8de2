package usecases

import (
	"context"

	"helpdesk/internal/application/attachment/dto"
	"helpdesk/internal/shared/logger"
)

// RequestUploadUseCase hands out a presigned PUT URL so the client uploads
// directly to the object store. The attachment record is only created later,
// when the upload is registered against a ticket.
type RequestUploadUseCase struct {
	store  ObjectStore
	logger logger.Interface
}

func NewRequestUploadUseCase(store ObjectStore, logger logger.Interface) *RequestUploadUseCase {
	return &RequestUploadUseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *RequestUploadUseCase) Execute(ctx context.Context) (*dto.UploadTargetDTO, error) {
	target, err := uc.store.GetUploadURL(ctx)
	if err != nil {
		uc.logger.Errorw("failed to create upload target", "error", err)
		return nil, err
	}

	return &dto.UploadTargetDTO{
		UploadURL:  target.UploadURL,
		ObjectPath: target.ObjectPath,
	}, nil
}
