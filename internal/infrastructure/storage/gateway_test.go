package storage

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
)

func openTestGateway(t *testing.T) *Gateway {
	t.Helper()

	gw, err := Open(context.Background(), Config{
		Driver: DriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		t.Fatalf("open gateway: %v", err)
	}
	t.Cleanup(func() { _ = gw.Close() })

	if _, err := gw.Exec(context.Background(), `
		CREATE TABLE players (
			id      TEXT PRIMARY KEY,
			name    TEXT NOT NULL,
			country TEXT NOT NULL
		)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	return gw
}

func TestGatewayExecAndGet(t *testing.T) {
	gw := openTestGateway(t)
	ctx := context.Background()

	affected, err := gw.Exec(ctx, "INSERT INTO players (id, name, country) VALUES (?, ?, ?)", "p1", "Virat Kohli", "India")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	var got struct {
		ID      string `db:"id"`
		Name    string `db:"name"`
		Country string `db:"country"`
	}
	if err := gw.Get(ctx, &got, "SELECT id, name, country FROM players WHERE id = ?", "p1"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Virat Kohli" || got.Country != "India" {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestGatewayDuplicateKey(t *testing.T) {
	gw := openTestGateway(t)
	ctx := context.Background()

	if _, err := gw.Exec(ctx, "INSERT INTO players (id, name, country) VALUES (?, ?, ?)", "p1", "A", "X"); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	_, err := gw.Exec(ctx, "INSERT INTO players (id, name, country) VALUES (?, ?, ?)", "p1", "B", "Y")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestGatewayGetMissingRow(t *testing.T) {
	gw := openTestGateway(t)

	var dest struct {
		ID string `db:"id"`
	}
	err := gw.Get(context.Background(), &dest, "SELECT id FROM players WHERE id = ?", "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGatewayStatementRejected(t *testing.T) {
	gw := openTestGateway(t)

	_, err := gw.Exec(context.Background(), "INSERT INTO no_such_table (id) VALUES (?)", "p1")
	if !errors.Is(err, ErrStatement) {
		t.Fatalf("expected ErrStatement, got %v", err)
	}
}

func TestGatewayParametersAreLiteralData(t *testing.T) {
	gw := openTestGateway(t)
	ctx := context.Background()

	payload := "Robert'); DROP TABLE players;--"
	if _, err := gw.Exec(ctx, "INSERT INTO players (id, name, country) VALUES (?, ?, ?)", "p1", payload, "X"); err != nil {
		t.Fatalf("insert payload: %v", err)
	}

	var name string
	if err := gw.Get(ctx, &name, "SELECT name FROM players WHERE id = ?", "p1"); err != nil {
		t.Fatalf("get payload: %v", err)
	}
	if name != payload {
		t.Fatalf("payload was not stored literally: %q", name)
	}

	// The table must still exist and answer queries.
	var count int
	if err := gw.Get(ctx, &count, "SELECT COUNT(*) FROM players"); err != nil {
		t.Fatalf("count after payload: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestGatewayQueryRows(t *testing.T) {
	gw := openTestGateway(t)
	ctx := context.Background()

	for _, row := range [][]any{
		{"p1", "A", "India"},
		{"p2", "B", "Australia"},
	} {
		if _, err := gw.Exec(ctx, "INSERT INTO players (id, name, country) VALUES (?, ?, ?)", row...); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	rows, err := gw.QueryRows(ctx, "SELECT id, country FROM players ORDER BY id")
	if err != nil {
		t.Fatalf("query rows: %v", err)
	}
	if len(rows.Columns) != 2 || rows.Columns[0] != "id" || rows.Columns[1] != "country" {
		t.Fatalf("unexpected columns: %+v", rows.Columns)
	}
	if len(rows.Values) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows.Values))
	}
}

func TestGatewayWithTxRollback(t *testing.T) {
	gw := openTestGateway(t)
	ctx := context.Background()

	wantErr := errors.New("boom")
	err := gw.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.Exec(ctx, "INSERT INTO players (id, name, country) VALUES (?, ?, ?)", "p1", "A", "X"); err != nil {
			t.Fatalf("tx insert: %v", err)
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected callback error, got %v", err)
	}

	var count int
	if err := gw.Get(ctx, &count, "SELECT COUNT(*) FROM players"); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("rollback left %d rows behind", count)
	}
}

func TestGatewayRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle", DSN: "x"})
	if err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
