// Package storagetest opens throwaway embedded databases with the real
// schema applied, for repository and catalog tests.
package storagetest

import (
	"context"
	"testing"

	"github.com/cricverse/cricstats/db/migrations"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
)

// OpenGateway returns an in-memory SQLite gateway with the current
// schema applied. The gateway is closed when the test finishes.
func OpenGateway(t *testing.T) *storage.Gateway {
	t.Helper()

	gw, err := storage.Open(context.Background(), storage.Config{
		Driver: storage.DriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		t.Fatalf("open test gateway: %v", err)
	}
	t.Cleanup(func() { _ = gw.Close() })

	schema, err := migrations.FS.ReadFile("000001_init_schema.up.sql")
	if err != nil {
		t.Fatalf("read schema migration: %v", err)
	}
	if _, err := gw.Exec(context.Background(), string(schema)); err != nil {
		t.Fatalf("apply schema migration: %v", err)
	}

	return gw
}
