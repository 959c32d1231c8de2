package dto

import "helpdesk/internal/domain/software"

type SoftwareDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

func ToSoftwareDTO(e *software.Entry) *SoftwareDTO {
	if e == nil {
		return nil
	}

	return &SoftwareDTO{
		ID:      e.ID(),
		Name:    e.Name(),
		Version: e.Version(),
	}
}

func ToSoftwareDTOs(entries []*software.Entry) []*SoftwareDTO {
	dtos := make([]*SoftwareDTO, len(entries))
	for i, e := range entries {
		dtos[i] = ToSoftwareDTO(e)
	}
	return dtos
}
