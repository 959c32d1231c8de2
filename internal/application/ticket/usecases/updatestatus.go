package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateStatusCommand struct {
	TicketID uint
	Status   string
	Identity authorization.Identity
}

type UpdateStatusUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	userRepo    user.Repository
	txManager   TransactionRunner
	notifier    Notifier
	logger      logger.Interface
}

func NewUpdateStatusUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	userRepo user.Repository,
	txManager TransactionRunner,
	notifier Notifier,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	newStatus, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResourceByOwnerID(cmd.Identity, t.GetOwnerID()) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		entry, err := ticket.NewHistoryEntry(t.ID(), t.Status(), fmt.Sprintf("Status updated to %s", t.Status()))
		if err != nil {
			return err
		}

		return uc.historyRepo.Save(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket status", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.notifyOwner(ctx, t)

	uc.logger.Infow("ticket status updated", "ticket_id", t.ID(), "status", t.Status().String())

	return dto.ToTicketDTO(t), nil
}

// notifyOwner mails the ticket owner after the transaction commits. Failures
// never affect the request.
func (uc *UpdateStatusUseCase) notifyOwner(ctx context.Context, t *ticket.Ticket) {
	if uc.notifier == nil {
		return
	}

	owner, err := uc.userRepo.FindByID(ctx, t.UserID())
	if err != nil {
		uc.logger.Warnw("failed to load ticket owner for notification", "error", err, "ticket_id", t.ID())
		return
	}

	uc.notifier.NotifyStatusChange(owner.Email(), t.Code(), t.Status().String())
}
