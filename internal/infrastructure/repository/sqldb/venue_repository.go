package sqldb

import (
	"context"
	"fmt"

	"github.com/cricverse/cricstats/internal/domain/venue"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	qb "github.com/cricverse/cricstats/internal/platform/querybuilder"
)

type VenueRepository struct {
	gw *storage.Gateway
}

type venueTableModel struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	City     string `db:"city"`
	Country  string `db:"country"`
	Capacity int64  `db:"capacity"`
}

func NewVenueRepository(gw *storage.Gateway) *VenueRepository {
	return &VenueRepository{gw: gw}
}

func (r *VenueRepository) Upsert(ctx context.Context, v venue.Venue) error {
	query, args, err := qb.InsertInto("venues").
		Columns("id", "name", "city", "country", "capacity").
		Values(v.ID, v.Name, v.City, v.Country, v.Capacity).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			city = excluded.city,
			country = excluded.country,
			capacity = excluded.capacity`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert venue query: %w", err)
	}

	if _, err := r.gw.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert venue: %w", err)
	}
	return nil
}

func (r *VenueRepository) Get(ctx context.Context, venueID string) (venue.Venue, error) {
	query, args, err := qb.Select("id", "name", "city", "country", "capacity").
		From("venues").
		Where(qb.Eq("id", venueID)).
		ToSQL()
	if err != nil {
		return venue.Venue{}, fmt.Errorf("build select venue query: %w", err)
	}

	var row venueTableModel
	if err := r.gw.Get(ctx, &row, query, args...); err != nil {
		return venue.Venue{}, fmt.Errorf("select venue: %w", err)
	}
	return venue.Venue(row), nil
}
