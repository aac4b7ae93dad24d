package series

import (
	"context"
	"fmt"
	"time"
)

// Series is a tournament or bilateral series grouping matches.
type Series struct {
	ID             string
	Name           string
	HostCountry    string
	Format         string
	StartDate      time.Time
	PlannedMatches int64
}

func (s Series) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("series id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("series name is required")
	}

	return nil
}

// Repository describes series persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, s Series) error
	Get(ctx context.Context, seriesID string) (Series, error)
}
