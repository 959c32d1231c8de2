package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/software"
	apperrors "helpdesk/internal/shared/errors"
)

func TestSoftwareRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSoftwareRepository(db)
	ctx := context.Background()

	save := func(name, version string) *software.Entry {
		e, err := software.NewEntry(name, version)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, e))
		return e
	}

	slack := save("Slack", "4.39")
	save("Microsoft Office", "2024")
	save("Zoom", "")

	t.Run("find by ID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, slack.ID())
		require.NoError(t, err)
		assert.Equal(t, "Slack", found.Name())
		assert.Equal(t, "4.39", found.Version())
	})

	t.Run("find by name and version", func(t *testing.T) {
		found, err := repo.FindByNameAndVersion(ctx, "Zoom", "")
		require.NoError(t, err)
		assert.Equal(t, "Zoom", found.Name())

		_, err = repo.FindByNameAndVersion(ctx, "Slack", "1.0")
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		entries, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "Microsoft Office", entries[0].Name())
		assert.Equal(t, "Slack", entries[1].Name())
		assert.Equal(t, "Zoom", entries[2].Name())
	})
}
