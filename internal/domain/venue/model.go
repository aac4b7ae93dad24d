package venue

import (
	"context"
	"fmt"
)

// Venue is a cricket ground referenced by matches.
type Venue struct {
	ID       string
	Name     string
	City     string
	Country  string
	Capacity int64
}

func (v Venue) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("venue id is required")
	}
	if v.Name == "" {
		return fmt.Errorf("venue name is required")
	}
	if v.Capacity < 0 {
		return fmt.Errorf("venue capacity must not be negative")
	}

	return nil
}

// Repository describes venue persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, v Venue) error
	Get(ctx context.Context, venueID string) (Venue, error)
}
