package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
)

// TicketHistoryRepository persists the append-only audit log. Entries are
// only ever inserted; there is no update or delete path.
type TicketHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketHistoryRepository(database *gorm.DB) *TicketHistoryRepository {
	return &TicketHistoryRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketHistoryRepository) Save(ctx context.Context, entry *ticket.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *TicketHistoryRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	var historyModels []models.TicketHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find history entries: %w", err)
	}

	entries := make([]*ticket.HistoryEntry, len(historyModels))
	for i, model := range historyModels {
		entry, err := r.mapper.HistoryToDomain(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	return entries, nil
}
