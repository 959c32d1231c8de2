// Package migration manages database schema migrations via GORM
// AutoMigrate. Dialect-specific SQL is avoided because the schema has to
// work against both the sqlite and mysql backends.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

// AllModels lists every persistence model in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SoftwareModel{},
		&models.TicketModel{},
		&models.TicketHistoryModel{},
		&models.TicketAttachmentModel{},
		&models.TicketSequenceModel{},
	}
}

type Manager struct {
	log logger.Interface
}

func NewManager() *Manager {
	return &Manager{
		log: logger.NewLogger().Named("migration"),
	}
}

// Migrate brings the schema up to date for all registered models.
func (m *Manager) Migrate(db *gorm.DB) error {
	m.log.Infow("running auto-migration", "models", len(AllModels()))

	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	m.log.Infow("auto-migration completed")
	return nil
}
