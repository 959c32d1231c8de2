package usecases

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/software"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID      uint
	RequestType string
	SoftwareID  *uint
	Description string
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	historyRepo  ticket.HistoryRepository
	userRepo     user.Repository
	softwareRepo software.Repository
	codeGen      ticket.CodeGenerator
	txManager    TransactionRunner
	sanitizer    *bluemonday.Policy
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	userRepo user.Repository,
	softwareRepo software.Repository,
	codeGen ticket.CodeGenerator,
	txManager TransactionRunner,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		historyRepo:  historyRepo,
		userRepo:     userRepo,
		softwareRepo: softwareRepo,
		codeGen:      codeGen,
		txManager:    txManager,
		sanitizer:    bluemonday.StrictPolicy(),
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.UserID, "request_type", cmd.RequestType)

	requestType, err := vo.NewRequestType(cmd.RequestType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.userRepo.FindByID(ctx, cmd.UserID); err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("ticket creator not found", "user_id", cmd.UserID)
			return nil, errors.NewValidationError("invalid user ID")
		}
		return nil, err
	}

	if cmd.SoftwareID != nil {
		if _, err := uc.softwareRepo.FindByID(ctx, *cmd.SoftwareID); err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("referenced software entry does not exist")
			}
			return nil, err
		}
	}

	description := uc.sanitizer.Sanitize(cmd.Description)

	newTicket, err := ticket.NewTicket(cmd.UserID, requestType, cmd.SoftwareID, description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		code, err := uc.codeGen.Generate(txCtx)
		if err != nil {
			return fmt.Errorf("failed to generate ticket code: %w", err)
		}
		if err := newTicket.SetCode(code); err != nil {
			return err
		}

		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		entry, err := ticket.NewHistoryEntry(newTicket.ID(), newTicket.Status(), "Ticket created")
		if err != nil {
			return err
		}

		return uc.historyRepo.Save(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "code", newTicket.Code())

	return dto.ToTicketDTO(newTicket), nil
}
