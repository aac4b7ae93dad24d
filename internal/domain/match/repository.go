package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, m Match) error
	Get(ctx context.Context, matchID string) (Match, error)
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, matchID string) error
	List(ctx context.Context, limit, offset int) ([]Match, error)

	// Upsert inserts or refreshes a match keyed by its identifier.
	Upsert(ctx context.Context, m Match) error

	// ListRecentCompleted returns the most recently started completed
	// matches, newest first.
	ListRecentCompleted(ctx context.Context, limit int) ([]Match, error)
}
