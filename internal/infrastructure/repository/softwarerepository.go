package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/software"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type SoftwareRepository struct {
	db     *gorm.DB
	mapper mappers.SoftwareMapper
}

func NewSoftwareRepository(database *gorm.DB) *SoftwareRepository {
	return &SoftwareRepository{
		db:     database,
		mapper: mappers.NewSoftwareMapper(),
	}
}

func (r *SoftwareRepository) Save(ctx context.Context, e *software.Entry) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save software entry: %w", err)
	}

	if e.ID() == 0 {
		return e.SetID(model.ID)
	}
	return nil
}

func (r *SoftwareRepository) FindByID(ctx context.Context, id uint) (*software.Entry, error) {
	var model models.SoftwareModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("software not found")
		}
		return nil, fmt.Errorf("failed to find software entry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SoftwareRepository) FindByNameAndVersion(ctx context.Context, name, version string) (*software.Entry, error) {
	var model models.SoftwareModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("name = ? AND version = ?", name, version).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("software not found")
		}
		return nil, fmt.Errorf("failed to find software entry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SoftwareRepository) List(ctx context.Context) ([]*software.Entry, error) {
	var softwareModels []models.SoftwareModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&softwareModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list software catalog: %w", err)
	}

	entries := make([]*software.Entry, len(softwareModels))
	for i, model := range softwareModels {
		e, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	return entries, nil
}
