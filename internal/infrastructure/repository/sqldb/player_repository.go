package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/cricverse/cricstats/internal/domain/player"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	qb "github.com/cricverse/cricstats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	gw *storage.Gateway
}

var playerSelectColumns = []string{
	"id",
	"name",
	"country",
	"role",
	"batting_style",
	"bowling_style",
	"total_runs",
	"batting_average",
	"strike_rate",
	"total_wickets",
	"bowling_average",
	"economy_rate",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(gw *storage.Gateway) *PlayerRepository {
	return &PlayerRepository{gw: gw}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	now := time.Now().UTC()
	query, args, err := qb.InsertInto("players").
		Columns(playerSelectColumns...).
		Values(p.ID, p.Name, p.Country, string(p.Role), p.BattingStyle, p.BowlingStyle,
			p.TotalRuns, p.BattingAverage, p.StrikeRate,
			p.TotalWickets, p.BowlingAverage, p.EconomyRate, now, now).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.gw.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Get(ctx context.Context, playerID string) (player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.gw.Get(ctx, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("select player: %w", err)
	}
	return row.toDomain(), nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("country", p.Country).
		Set("role", string(p.Role)).
		Set("batting_style", p.BattingStyle).
		Set("bowling_style", p.BowlingStyle).
		Set("total_runs", p.TotalRuns).
		Set("batting_average", p.BattingAverage).
		Set("strike_rate", p.StrikeRate).
		Set("total_wickets", p.TotalWickets).
		Set("bowling_average", p.BowlingAverage).
		Set("economy_rate", p.EconomyRate).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	affected, err := r.gw.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	affected, err := r.gw.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *PlayerRepository) List(ctx context.Context, limit, offset int) ([]player.Player, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("name", "country").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.gw.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Upsert keeps player identifiers stable across ingestion runs: rows
// are keyed by (name, country) and refreshed in place.
func (r *PlayerRepository) Upsert(ctx context.Context, p player.Player) error {
	now := time.Now().UTC()
	query, args, err := qb.InsertInto("players").
		Columns(playerSelectColumns...).
		Values(p.ID, p.Name, p.Country, string(p.Role), p.BattingStyle, p.BowlingStyle,
			p.TotalRuns, p.BattingAverage, p.StrikeRate,
			p.TotalWickets, p.BowlingAverage, p.EconomyRate, now, now).
		Suffix(`ON CONFLICT (name, country) DO UPDATE SET
			role = excluded.role,
			batting_style = excluded.batting_style,
			bowling_style = excluded.bowling_style,
			total_runs = excluded.total_runs,
			batting_average = excluded.batting_average,
			strike_rate = excluded.strike_rate,
			total_wickets = excluded.total_wickets,
			bowling_average = excluded.bowling_average,
			economy_rate = excluded.economy_rate,
			updated_at = excluded.updated_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert player query: %w", err)
	}

	if _, err := r.gw.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) EnsureStub(ctx context.Context, playerID, name, country string) error {
	if name == "" {
		name = "Player " + playerID
	}
	if country == "" {
		country = "Unknown"
	}

	// Conflict target left open: the row may already exist by id or by
	// the (name, country) identity, and both cases mean "keep it".
	now := time.Now().UTC()
	query, args, err := qb.InsertInto("players").
		Columns("id", "name", "country", "created_at", "updated_at").
		Values(playerID, name, country, now, now).
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build ensure player stub query: %w", err)
	}

	if _, err := r.gw.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ensure player stub: %w", err)
	}
	return nil
}
