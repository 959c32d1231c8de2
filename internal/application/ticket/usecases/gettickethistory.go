package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketHistoryQuery struct {
	TicketID uint
	Identity authorization.Identity
}

type GetTicketHistoryUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	logger      logger.Interface
}

func NewGetTicketHistoryUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	logger logger.Interface,
) *GetTicketHistoryUseCase {
	return &GetTicketHistoryUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *GetTicketHistoryUseCase) Execute(ctx context.Context, query GetTicketHistoryQuery) ([]*dto.HistoryEntryDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResourceByOwnerID(query.Identity, t.GetOwnerID()) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	entries, err := uc.historyRepo.FindByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket history", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	return dto.ToHistoryEntryDTOs(entries), nil
}
