package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/cricverse/cricstats/internal/domain/match"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	qb "github.com/cricverse/cricstats/internal/platform/querybuilder"
)

type MatchRepository struct {
	gw *storage.Gateway
}

var matchSelectColumns = []string{
	"id",
	"description",
	"match_type",
	"status",
	"start_time",
	"team1",
	"team2",
	"venue_id",
	"series_id",
	"winner",
	"victory_margin",
	"victory_type",
	"toss_winner",
	"toss_decision",
	"created_at",
	"updated_at",
}

func NewMatchRepository(gw *storage.Gateway) *MatchRepository {
	return &MatchRepository{gw: gw}
}

func matchInsertValues(m match.Match, now time.Time) []any {
	return []any{
		m.ID, m.Description, string(m.Format), string(m.Status),
		nullableTime(m.StartTime), m.Team1, m.Team2,
		nullableString(m.VenueID), nullableString(m.SeriesID),
		m.Winner, m.VictoryMargin, string(m.VictoryType),
		m.TossWinner, m.TossDecision, now, now,
	}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	query, args, err := qb.InsertInto("matches").
		Columns(matchSelectColumns...).
		Values(matchInsertValues(m, time.Now().UTC())...).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	if _, err := r.gw.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Get(ctx context.Context, matchID string) (match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.gw.Get(ctx, &row, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("select match: %w", err)
	}
	return row.toDomain(), nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	query, args, err := qb.Update("matches").
		Set("description", m.Description).
		Set("match_type", string(m.Format)).
		Set("status", string(m.Status)).
		Set("start_time", nullableTime(m.StartTime)).
		Set("team1", m.Team1).
		Set("team2", m.Team2).
		Set("venue_id", nullableString(m.VenueID)).
		Set("series_id", nullableString(m.SeriesID)).
		Set("winner", m.Winner).
		Set("victory_margin", m.VictoryMargin).
		Set("victory_type", string(m.VictoryType)).
		Set("toss_winner", m.TossWinner).
		Set("toss_decision", m.TossDecision).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", m.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	affected, err := r.gw.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	affected, err := r.gw.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *MatchRepository) List(ctx context.Context, limit, offset int) ([]match.Match, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		OrderBy("start_time DESC", "id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.gw.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) Upsert(ctx context.Context, m match.Match) error {
	query, args, err := qb.InsertInto("matches").
		Columns(matchSelectColumns...).
		Values(matchInsertValues(m, time.Now().UTC())...).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			description = excluded.description,
			match_type = excluded.match_type,
			status = excluded.status,
			start_time = excluded.start_time,
			team1 = excluded.team1,
			team2 = excluded.team2,
			venue_id = excluded.venue_id,
			series_id = excluded.series_id,
			winner = excluded.winner,
			victory_margin = excluded.victory_margin,
			victory_type = excluded.victory_type,
			toss_winner = excluded.toss_winner,
			toss_decision = excluded.toss_decision,
			updated_at = excluded.updated_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert match query: %w", err)
	}

	if _, err := r.gw.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) ListRecentCompleted(ctx context.Context, limit int) ([]match.Match, error) {
	if limit <= 0 {
		limit = 10
	}

	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("status", string(match.StatusCompleted))).
		OrderBy("start_time DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build recent completed matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.gw.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select recent completed matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
