package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	apperrors "helpdesk/internal/shared/errors"
)

func newTestAttachment(t *testing.T, ticketID uint, objectPath string) *ticket.Attachment {
	t.Helper()

	a, err := ticket.NewAttachment(ticketID, "report.pdf", 2048, "application/pdf", objectPath)
	require.NoError(t, err)
	return a
}

func TestTicketAttachmentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketAttachmentRepository(db)
	ctx := context.Background()

	t.Run("save and find", func(t *testing.T) {
		a := newTestAttachment(t, 11, "uploads/aaa")

		require.NoError(t, repo.Save(ctx, a))
		assert.NotZero(t, a.ID())

		found, err := repo.FindByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, "report.pdf", found.FileName())
		assert.Equal(t, int64(2048), found.FileSize())

		found, err = repo.FindByObjectPath(ctx, "uploads/aaa")
		require.NoError(t, err)
		assert.Equal(t, a.ID(), found.ID())
	})

	t.Run("duplicate object path conflicts", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestAttachment(t, 11, "uploads/dup")))

		err := repo.Save(ctx, newTestAttachment(t, 12, "uploads/dup"))
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("list by ticket", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestAttachment(t, 20, "uploads/b1")))
		require.NoError(t, repo.Save(ctx, newTestAttachment(t, 20, "uploads/b2")))

		attachments, err := repo.FindByTicketID(ctx, 20)
		require.NoError(t, err)
		assert.Len(t, attachments, 2)

		attachments, err = repo.FindByTicketID(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, attachments)
	})

	t.Run("delete", func(t *testing.T) {
		a := newTestAttachment(t, 30, "uploads/del")
		require.NoError(t, repo.Save(ctx, a))

		require.NoError(t, repo.Delete(ctx, a.ID()))

		_, err := repo.FindByID(ctx, a.ID())
		assert.True(t, apperrors.IsNotFoundError(err))

		err = repo.Delete(ctx, a.ID())
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestTicketHistoryRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketHistoryRepository(db)
	ctx := context.Background()

	first, err := ticket.NewHistoryEntry(11, vo.StatusStart, "Ticket created")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	time.Sleep(5 * time.Millisecond)

	second, err := ticket.NewHistoryEntry(11, vo.StatusInProgress, "Status updated to In Progress")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, second))

	entries, err := repo.FindByTicketID(ctx, 11)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ticket created", entries[0].Notes())
	assert.Equal(t, "Status updated to In Progress", entries[1].Notes())
	assert.Equal(t, vo.StatusInProgress, entries[1].Status())

	entries, err = repo.FindByTicketID(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
