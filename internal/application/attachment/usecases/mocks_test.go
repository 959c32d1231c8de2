package usecases

import (
	"context"
	"io"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/objectstorage"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, userID *uint) (ticket.StatusCounts, error) {
	return ticket.StatusCounts{}, nil
}

type mockAttachmentRepository struct {
	SaveFunc             func(ctx context.Context, a *ticket.Attachment) error
	FindByIDFunc         func(ctx context.Context, id uint) (*ticket.Attachment, error)
	FindByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	FindByObjectPathFunc func(ctx context.Context, objectPath string) (*ticket.Attachment, error)
	DeleteFunc           func(ctx context.Context, id uint) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) FindByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) FindByObjectPath(ctx context.Context, objectPath string) (*ticket.Attachment, error) {
	if m.FindByObjectPathFunc != nil {
		return m.FindByObjectPathFunc(ctx, objectPath)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockObjectStore struct {
	GetUploadURLFunc func(ctx context.Context) (*objectstorage.UploadTarget, error)
	StatObjectFunc   func(ctx context.Context, objectPath string) (*objectstorage.ObjectInfo, error)
	FetchObjectFunc  func(ctx context.Context, objectPath string) (io.ReadCloser, *objectstorage.ObjectInfo, error)
	RemoveObjectFunc func(ctx context.Context, objectPath string) error
}

func (m *mockObjectStore) GetUploadURL(ctx context.Context) (*objectstorage.UploadTarget, error) {
	if m.GetUploadURLFunc != nil {
		return m.GetUploadURLFunc(ctx)
	}
	return &objectstorage.UploadTarget{
		UploadURL:  "http://storage.local/upload",
		ObjectPath: "uploads/test-object",
	}, nil
}

func (m *mockObjectStore) StatObject(ctx context.Context, objectPath string) (*objectstorage.ObjectInfo, error) {
	if m.StatObjectFunc != nil {
		return m.StatObjectFunc(ctx, objectPath)
	}
	return &objectstorage.ObjectInfo{Size: 1024, ContentType: "application/octet-stream"}, nil
}

func (m *mockObjectStore) FetchObject(ctx context.Context, objectPath string) (io.ReadCloser, *objectstorage.ObjectInfo, error) {
	if m.FetchObjectFunc != nil {
		return m.FetchObjectFunc(ctx, objectPath)
	}
	return nil, nil, nil
}

func (m *mockObjectStore) RemoveObject(ctx context.Context, objectPath string) error {
	if m.RemoveObjectFunc != nil {
		return m.RemoveObjectFunc(ctx, objectPath)
	}
	return nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
