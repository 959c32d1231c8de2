package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/constants"
	db "helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

// TicketCodeGenerator produces codes of the form INC-<year>-<4-digit
// sequence>, numbered monotonically per calendar year.
//
// The sequence lives in the ticket_sequences table and is advanced with a
// single UPDATE ... SET value = value + 1, so two concurrent creations can
// never observe the same value even across processes. The mutex only
// serializes in-process callers; the unique index on tickets.code is the
// final backstop.
type TicketCodeGenerator struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewTicketCodeGenerator(database *gorm.DB) *TicketCodeGenerator {
	return &TicketCodeGenerator{db: database}
}

func (g *TicketCodeGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	year := time.Now().Year()

	seq, err := g.nextSequence(ctx, year)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%d-%04d", constants.TicketCodePrefix, year, seq), nil
}

func (g *TicketCodeGenerator) nextSequence(ctx context.Context, year int) (int64, error) {
	tx := db.GetTxFromContext(ctx, g.db)

	// Two rounds: the first UPDATE misses only when no row exists for the
	// year yet; a losing concurrent INSERT means the row now exists, so the
	// retried UPDATE succeeds.
	for attempt := 0; attempt < 2; attempt++ {
		result := tx.
			Model(&models.TicketSequenceModel{}).
			Where("year = ?", year).
			UpdateColumn("value", gorm.Expr("value + 1"))
		if result.Error != nil {
			return 0, fmt.Errorf("failed to advance ticket sequence: %w", result.Error)
		}

		if result.RowsAffected > 0 {
			var row models.TicketSequenceModel
			if err := tx.Where("year = ?", year).First(&row).Error; err != nil {
				return 0, fmt.Errorf("failed to read ticket sequence: %w", err)
			}
			return row.Value, nil
		}

		err := tx.Create(&models.TicketSequenceModel{Year: year, Value: 1}).Error
		if err == nil {
			return 1, nil
		}
		if !apperrors.IsDuplicateError(err) {
			return 0, fmt.Errorf("failed to initialize ticket sequence: %w", err)
		}
	}

	return 0, fmt.Errorf("failed to allocate ticket sequence for year %d", year)
}
