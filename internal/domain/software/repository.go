package software

import "context"

type Repository interface {
	Save(ctx context.Context, entry *Entry) error
	FindByID(ctx context.Context, id uint) (*Entry, error)
	FindByNameAndVersion(ctx context.Context, name, version string) (*Entry, error)
	List(ctx context.Context) ([]*Entry, error)
}
