package postgres

import (
	"context"

	"pizzeria/internal/adapters/out/postgres/agentrepo"
	"pizzeria/internal/adapters/out/postgres/assignmentrepo"
	"pizzeria/internal/adapters/out/postgres/cursorrepo"
	"pizzeria/internal/adapters/out/postgres/menurepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres. Driver errors are translated so that unique
// violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gorm_postgres.Open(dsn), Config())
}

// Config is the GORM configuration shared by the service and its tests.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// Models lists every persisted table.
func Models() []any {
	return []any{
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&agentrepo.AgentDTO{},
		&assignmentrepo.AssignmentDTO{},
		&cursorrepo.CursorDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
