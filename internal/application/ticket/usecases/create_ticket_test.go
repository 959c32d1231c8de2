package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/software"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
)

func existingUser(t *testing.T, id uint) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "jsmith", "EMP-1001", "jsmith@example.com", "", false, time.Now())
	require.NoError(t, err)
	return u
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	softwareID := uint(5)

	var savedTicket *ticket.Ticket
	var savedHistory *ticket.HistoryEntry

	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			savedTicket = tk
			return tk.SetID(42)
		},
	}
	historyRepo := &mockHistoryRepository{
		SaveFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
			savedHistory = entry
			return entry.SetID(1)
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return existingUser(t, id), nil
		},
	}
	softwareRepo := &mockSoftwareRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*software.Entry, error) {
			return software.ReconstructEntry(id, "Slack", "4.39")
		},
	}
	codeGen := &mockCodeGenerator{
		GenerateFunc: func(ctx context.Context) (string, error) {
			return "INC-2026-0007", nil
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, historyRepo, userRepo, softwareRepo, codeGen, &mockTxRunner{}, testLogger())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		UserID:      9,
		RequestType: "Software Installation",
		SoftwareID:  &softwareID,
		Description: "Please install Slack",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.ID)
	assert.Equal(t, "INC-2026-0007", result.Code)
	assert.Equal(t, uint(9), result.UserID)
	assert.Equal(t, vo.StatusStart.String(), result.Status)

	require.NotNil(t, savedTicket)
	require.NotNil(t, savedHistory)
	assert.Equal(t, uint(42), savedHistory.TicketID())
	assert.Equal(t, vo.StatusStart, savedHistory.Status())
	assert.Equal(t, "Ticket created", savedHistory.Notes())
}

func TestCreateTicketUseCase_Execute_SanitizesDescription(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return existingUser(t, id), nil
		},
	}
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(1)
		},
	}

	uc := NewCreateTicketUseCase(
		ticketRepo, &mockHistoryRepository{}, userRepo, &mockSoftwareRepository{},
		&mockCodeGenerator{}, &mockTxRunner{}, testLogger())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		UserID:      1,
		RequestType: "Other",
		Description: `Hello <script>alert("x")</script>world`,
	})

	require.NoError(t, err)
	assert.NotContains(t, result.Description, "<script>")
	assert.Contains(t, result.Description, "Hello")
	assert.Contains(t, result.Description, "world")
}

func TestCreateTicketUseCase_Execute_ValidationFailures(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id == 404 {
				return nil, errors.NewNotFoundError("user not found")
			}
			return existingUser(t, id), nil
		},
	}
	softwareRepo := &mockSoftwareRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*software.Entry, error) {
			return nil, errors.NewNotFoundError("software not found")
		},
	}

	uc := NewCreateTicketUseCase(
		&mockTicketRepository{}, &mockHistoryRepository{}, userRepo, softwareRepo,
		&mockCodeGenerator{}, &mockTxRunner{}, testLogger())

	t.Run("missing request type", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateTicketCommand{UserID: 1})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateTicketCommand{UserID: 404, RequestType: "Other"})
		assert.True(t, errors.IsValidationError(err), "dangling user reference is a bad request, not a 404")
		assert.Equal(t, "invalid user ID", errors.GetAppError(err).Message)
	})

	t.Run("dangling software reference", func(t *testing.T) {
		softwareID := uint(99)
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			UserID:      1,
			RequestType: "Software Installation",
			SoftwareID:  &softwareID,
		})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestCreateTicketUseCase_Execute_CodeGenerationFails(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return existingUser(t, id), nil
		},
	}
	codeGen := &mockCodeGenerator{
		GenerateFunc: func(ctx context.Context) (string, error) {
			return "", errors.NewInternalError("sequence unavailable")
		},
	}

	saveCalled := false
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saveCalled = true
			return nil
		},
	}

	uc := NewCreateTicketUseCase(
		ticketRepo, &mockHistoryRepository{}, userRepo, &mockSoftwareRepository{},
		codeGen, &mockTxRunner{}, testLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{UserID: 1, RequestType: "Other"})
	require.Error(t, err)
	assert.False(t, saveCalled, "ticket must not be saved without a code")
}
