package usecases

import (
	"context"

	"helpdesk/internal/domain/software"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByCodeFunc    func(ctx context.Context, code string) (*ticket.Ticket, error)
	ListFunc          func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
	CountByStatusFunc func(ctx context.Context, userID *uint) (ticket.StatusCounts, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, userID *uint) (ticket.StatusCounts, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, userID)
	}
	return ticket.StatusCounts{}, nil
}

type mockHistoryRepository struct {
	SaveFunc           func(ctx context.Context, entry *ticket.HistoryEntry) error
	FindByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error)
}

func (m *mockHistoryRepository) Save(ctx context.Context, entry *ticket.HistoryEntry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc              func(ctx context.Context, u *user.User) error
	FindByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	FindByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	FindByEmployeeIDFunc  func(ctx context.Context, employeeID string) (*user.User, error)
	FindByCredentialsFunc func(ctx context.Context, employeeID, username string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*user.User, error) {
	if m.FindByEmployeeIDFunc != nil {
		return m.FindByEmployeeIDFunc(ctx, employeeID)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByCredentials(ctx context.Context, employeeID, username string) (*user.User, error) {
	if m.FindByCredentialsFunc != nil {
		return m.FindByCredentialsFunc(ctx, employeeID, username)
	}
	return nil, nil
}

type mockSoftwareRepository struct {
	SaveFunc                 func(ctx context.Context, e *software.Entry) error
	FindByIDFunc             func(ctx context.Context, id uint) (*software.Entry, error)
	FindByNameAndVersionFunc func(ctx context.Context, name, version string) (*software.Entry, error)
	ListFunc                 func(ctx context.Context) ([]*software.Entry, error)
}

func (m *mockSoftwareRepository) Save(ctx context.Context, e *software.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockSoftwareRepository) FindByID(ctx context.Context, id uint) (*software.Entry, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSoftwareRepository) FindByNameAndVersion(ctx context.Context, name, version string) (*software.Entry, error) {
	if m.FindByNameAndVersionFunc != nil {
		return m.FindByNameAndVersionFunc(ctx, name, version)
	}
	return nil, nil
}

func (m *mockSoftwareRepository) List(ctx context.Context) ([]*software.Entry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockCodeGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockCodeGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "INC-2026-0001", nil
}

// mockTxRunner runs the callback directly, without a real transaction.
type mockTxRunner struct{}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockNotifier struct {
	NotifyStatusChangeFunc func(to, ticketCode, newStatus string)
}

func (m *mockNotifier) NotifyStatusChange(to, ticketCode, newStatus string) {
	if m.NotifyStatusChangeFunc != nil {
		m.NotifyStatusChangeFunc(to, ticketCode, newStatus)
	}
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
