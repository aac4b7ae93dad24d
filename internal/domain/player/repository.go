package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Player) error
	Get(ctx context.Context, playerID string) (Player, error)
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, playerID string) error
	List(ctx context.Context, limit, offset int) ([]Player, error)

	// Upsert inserts or refreshes a player keyed by (name, country),
	// keeping identifiers stable across repeated ingestion runs.
	Upsert(ctx context.Context, p Player) error

	// EnsureStub guarantees a row exists for the given identifier so
	// scorecard rows can reference it. Existing rows are left untouched.
	EnsureStub(ctx context.Context, playerID, name, country string) error
}
