package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/cricverse/cricstats/internal/domain/series"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	qb "github.com/cricverse/cricstats/internal/platform/querybuilder"
)

type SeriesRepository struct {
	gw *storage.Gateway
}

type seriesTableModel struct {
	ID             string     `db:"id"`
	Name           string     `db:"name"`
	HostCountry    string     `db:"host_country"`
	MatchType      string     `db:"match_type"`
	StartDate      *time.Time `db:"start_date"`
	PlannedMatches int64      `db:"planned_matches"`
}

func NewSeriesRepository(gw *storage.Gateway) *SeriesRepository {
	return &SeriesRepository{gw: gw}
}

func (r *SeriesRepository) Upsert(ctx context.Context, s series.Series) error {
	query, args, err := qb.InsertInto("series").
		Columns("id", "name", "host_country", "match_type", "start_date", "planned_matches").
		Values(s.ID, s.Name, s.HostCountry, s.Format, nullableTime(s.StartDate), s.PlannedMatches).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			host_country = excluded.host_country,
			match_type = excluded.match_type,
			start_date = excluded.start_date,
			planned_matches = excluded.planned_matches`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert series query: %w", err)
	}

	if _, err := r.gw.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert series: %w", err)
	}
	return nil
}

func (r *SeriesRepository) Get(ctx context.Context, seriesID string) (series.Series, error) {
	query, args, err := qb.Select("id", "name", "host_country", "match_type", "start_date", "planned_matches").
		From("series").
		Where(qb.Eq("id", seriesID)).
		ToSQL()
	if err != nil {
		return series.Series{}, fmt.Errorf("build select series query: %w", err)
	}

	var row seriesTableModel
	if err := r.gw.Get(ctx, &row, query, args...); err != nil {
		return series.Series{}, fmt.Errorf("select series: %w", err)
	}

	out := series.Series{
		ID:             row.ID,
		Name:           row.Name,
		HostCountry:    row.HostCountry,
		Format:         row.MatchType,
		PlannedMatches: row.PlannedMatches,
	}
	if row.StartDate != nil {
		out.StartDate = *row.StartDate
	}
	return out, nil
}
