package usecases

import (
	"context"

	"helpdesk/internal/application/software/dto"
)

type ListSoftwareExecutor interface {
	Execute(ctx context.Context) ([]*dto.SoftwareDTO, error)
}

type ImportCatalogExecutor interface {
	Execute(ctx context.Context, cmd ImportCatalogCommand) (*ImportCatalogResult, error)
}
