//go:build integration

// Package containers starts throwaway Postgres and Redis instances for
// integration tests. Run them with: go test -tags integration ./...
package containers

import (
	"context"
	"testing"

	"hospital-management/config"
	"hospital-management/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// PostgresContainer is a migrated Postgres instance with an open gorm handle.
type PostgresContainer struct {
	Container *tcpostgres.PostgresContainer
	Config    config.DBConfig
	DB        *gorm.DB
}

// NewPostgresContainer starts Postgres, applies the embedded migrations and
// connects. The container is terminated when t finishes.
func NewPostgresContainer(t *testing.T, log *logrus.Logger) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("hospital"),
		tcpostgres.WithUsername("hospital"),
		tcpostgres.WithPassword("secret"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get postgres host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get postgres port: %v", err)
	}

	cfg := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     "hospital",
		Password: "secret",
		Name:     "hospital",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	migrator, err := database.NewMigrator(cfg, log)
	if err != nil {
		t.Fatalf("failed to create migrator: %v", err)
	}
	defer migrator.Close()
	if err := migrator.Up(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg, "test")
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &PostgresContainer{
		Container: container,
		Config:    cfg,
		DB:        db,
	}
}

// Truncate empties every application table and resets sequences.
// Use between tests to ensure isolation.
func (p *PostgresContainer) Truncate(t *testing.T) {
	t.Helper()

	err := p.DB.Exec(`TRUNCATE TABLE audit_logs, attendances, accounts, doctor_specializations,
		specializations, patients, doctors, admins, identity_user_roles, identity_users, roles
		RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// Count returns the number of rows in table.
func (p *PostgresContainer) Count(t *testing.T, table string) int64 {
	t.Helper()

	var n int64
	if err := p.DB.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
