package mappers

import (
	"helpdesk/internal/domain/software"
	"helpdesk/internal/infrastructure/persistence/models"
)

type SoftwareMapper struct{}

func NewSoftwareMapper() SoftwareMapper {
	return SoftwareMapper{}
}

func (m SoftwareMapper) ToModel(e *software.Entry) *models.SoftwareModel {
	return &models.SoftwareModel{
		ID:      e.ID(),
		Name:    e.Name(),
		Version: e.Version(),
	}
}

func (m SoftwareMapper) ToDomain(model *models.SoftwareModel) (*software.Entry, error) {
	return software.ReconstructEntry(model.ID, model.Name, model.Version)
}
