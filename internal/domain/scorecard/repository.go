package scorecard

import "context"

// Repository describes scorecard persistence needs from use cases.
type Repository interface {
	// Replace atomically swaps all stored rows for the scorecard's
	// match with the given ones. Either every row lands or none do.
	Replace(ctx context.Context, card Scorecard) error

	GetByMatch(ctx context.Context, matchID string) (Scorecard, error)
}
