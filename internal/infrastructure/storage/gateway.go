package storage

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config describes the backend the gateway should open.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

// Gateway owns the connection pool to the configured backend. Every
// statement the service runs goes through it, always parameterized.
type Gateway struct {
	db     *sqlx.DB
	driver string
}

// Open builds the pool for the configured backend and verifies it is
// reachable. An unreachable backend is the one startup-fatal error.
func Open(ctx context.Context, cfg Config) (*Gateway, error) {
	driverName, dsn, err := resolveBackend(cfg)
	if err != nil {
		return nil, err
	}

	db, err := otelsqlx.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "open database"), ErrConnection)
	}

	if driverName == DriverSQLite {
		// Single writer keeps modernc's file locking honest.
		db.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Mark(errors.Wrap(err, "ping database"), ErrConnection)
	}

	return &Gateway{db: db, driver: driverName}, nil
}

func resolveBackend(cfg Config) (string, string, error) {
	driverName := strings.ToLower(strings.TrimSpace(cfg.Driver))
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return "", "", errors.New("storage: dsn is required")
	}

	switch driverName {
	case DriverPostgres:
		return DriverPostgres, dsn, nil
	case DriverSQLite:
		sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
		return DriverSQLite, withSQLitePragmas(dsn), nil
	default:
		return "", "", errors.Newf("storage: unsupported driver %q", cfg.Driver)
	}
}

// withSQLitePragmas enforces foreign keys and a busy timeout on every
// connection the pool hands out.
func withSQLitePragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func (g *Gateway) Driver() string {
	return g.driver
}

func (g *Gateway) Close() error {
	return g.db.Close()
}

// Ping reports whether the backend is currently reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	if err := g.db.PingContext(ctx); err != nil {
		return errors.Mark(err, ErrConnection)
	}
	return nil
}

// Exec runs a write statement and returns the affected row count.
// Statements use `?` placeholders and are rebound for the backend.
func (g *Gateway) Exec(ctx context.Context, statement string, args ...any) (int64, error) {
	res, err := g.db.ExecContext(ctx, g.db.Rebind(statement), args...)
	if err != nil {
		return 0, classify(err, statement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, classify(err, statement)
	}
	return affected, nil
}

// Get scans a single row into dest. A statement matching no rows
// returns ErrNotFound.
func (g *Gateway) Get(ctx context.Context, dest any, statement string, args ...any) error {
	if err := g.db.GetContext(ctx, dest, g.db.Rebind(statement), args...); err != nil {
		return classify(err, statement)
	}
	return nil
}

// Select scans all result rows into dest.
func (g *Gateway) Select(ctx context.Context, dest any, statement string, args ...any) error {
	if err := g.db.SelectContext(ctx, dest, g.db.Rebind(statement), args...); err != nil {
		return classify(err, statement)
	}
	return nil
}

// Rows is an ordered result set for callers that do not scan into
// structs, such as catalog query execution.
type Rows struct {
	Columns []string
	Values  [][]any
}

// QueryRows runs a read-only statement and returns every row in
// result order with the column names the backend reported.
func (g *Gateway) QueryRows(ctx context.Context, statement string, args ...any) (Rows, error) {
	rows, err := g.db.QueryxContext(ctx, g.db.Rebind(statement), args...)
	if err != nil {
		return Rows{}, classify(err, statement)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return Rows{}, classify(err, statement)
	}

	out := Rows{Columns: columns}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return Rows{}, classify(err, statement)
		}
		out.Values = append(out.Values, values)
	}
	if err := rows.Err(); err != nil {
		return Rows{}, classify(err, statement)
	}

	return out, nil
}

// Tx is a transaction scope handed to WithTx callbacks.
type Tx struct {
	tx *sqlx.Tx
}

func (t *Tx) Exec(ctx context.Context, statement string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, t.tx.Rebind(statement), args...)
	if err != nil {
		return 0, classify(err, statement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, classify(err, statement)
	}
	return affected, nil
}

// NamedExec binds :name parameters from arg, then runs the statement.
func (t *Tx) NamedExec(ctx context.Context, statement string, arg any) (int64, error) {
	query, args, err := sqlx.Named(statement, arg)
	if err != nil {
		return 0, classify(err, statement)
	}
	return t.Exec(ctx, query, args...)
}

func (t *Tx) Get(ctx context.Context, dest any, statement string, args ...any) error {
	if err := t.tx.GetContext(ctx, dest, t.tx.Rebind(statement), args...); err != nil {
		return classify(err, statement)
	}
	return nil
}

func (t *Tx) Select(ctx context.Context, dest any, statement string, args ...any) error {
	if err := t.tx.SelectContext(ctx, dest, t.tx.Rebind(statement), args...); err != nil {
		return classify(err, statement)
	}
	return nil
}

// WithTx runs fn inside a transaction. Rollback happens on error or
// panic; commit only after fn returns nil.
func (g *Gateway) WithTx(ctx context.Context, fn func(tx *Tx) error) (err error) {
	sqlxTx, beginErr := g.db.BeginTxx(ctx, nil)
	if beginErr != nil {
		return classify(beginErr, "BEGIN")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlxTx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = sqlxTx.Rollback()
		}
	}()

	if err = fn(&Tx{tx: sqlxTx}); err != nil {
		return err
	}

	if commitErr := sqlxTx.Commit(); commitErr != nil {
		err = classify(commitErr, "COMMIT")
		return err
	}
	return nil
}
