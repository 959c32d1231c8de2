package usecases

import (
	"context"

	"helpdesk/internal/application/software/dto"
	"helpdesk/internal/domain/software"
	"helpdesk/internal/shared/logger"
)

type ListSoftwareUseCase struct {
	softwareRepo software.Repository
	logger       logger.Interface
}

func NewListSoftwareUseCase(softwareRepo software.Repository, logger logger.Interface) *ListSoftwareUseCase {
	return &ListSoftwareUseCase{
		softwareRepo: softwareRepo,
		logger:       logger,
	}
}

func (uc *ListSoftwareUseCase) Execute(ctx context.Context) ([]*dto.SoftwareDTO, error) {
	entries, err := uc.softwareRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list software catalog", "error", err)
		return nil, err
	}

	return dto.ToSoftwareDTOs(entries), nil
}
