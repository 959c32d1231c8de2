package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type GetTicketStatsQuery struct {
	// UserID narrows the stats to one owner. Ignored for non-admin callers.
	UserID   *uint
	Identity authorization.Identity
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.StatsDTO, error) {
	userID := query.UserID
	if !query.Identity.IsAdmin {
		ownID := query.Identity.UserID
		userID = &ownID
	}

	counts, err := uc.ticketRepo.CountByStatus(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, err
	}

	stats := &dto.StatsDTO{
		Pending:    counts[vo.StatusPending.String()],
		InProgress: counts[vo.StatusInProgress.String()],
		Resolved:   counts[vo.StatusResolved.String()],
		Urgent:     counts[vo.StatusUrgent.String()],
	}
	for _, n := range counts {
		stats.Total += n
	}

	return stats, nil
}
