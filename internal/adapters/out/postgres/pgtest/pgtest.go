// Package pgtest starts a disposable PostgreSQL for integration suites and applies the
// schema migrations to it.
package pgtest

import (
	"context"
	"time"

	"fulfillment/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every table owned by the migrations, children first.
const Tables = "order_status_history, line_items, consolidated_orders, operators, orders"

// Database is a migrated database inside a running container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs a postgres:15-alpine container, migrates it and opens a GORM connection.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = migrations.Up(ctx, dsn); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error
}

// Stop terminates the container.
func (d *Database) Stop(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
