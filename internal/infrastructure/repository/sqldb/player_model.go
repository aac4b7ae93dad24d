package sqldb

import (
	"time"

	"github.com/cricverse/cricstats/internal/domain/player"
)

type playerTableModel struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Country        string    `db:"country"`
	Role           string    `db:"role"`
	BattingStyle   string    `db:"batting_style"`
	BowlingStyle   string    `db:"bowling_style"`
	TotalRuns      int64     `db:"total_runs"`
	BattingAverage float64   `db:"batting_average"`
	StrikeRate     float64   `db:"strike_rate"`
	TotalWickets   int64     `db:"total_wickets"`
	BowlingAverage float64   `db:"bowling_average"`
	EconomyRate    float64   `db:"economy_rate"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:             m.ID,
		Name:           m.Name,
		Country:        m.Country,
		Role:           player.Role(m.Role),
		BattingStyle:   m.BattingStyle,
		BowlingStyle:   m.BowlingStyle,
		TotalRuns:      m.TotalRuns,
		BattingAverage: m.BattingAverage,
		StrikeRate:     m.StrikeRate,
		TotalWickets:   m.TotalWickets,
		BowlingAverage: m.BowlingAverage,
		EconomyRate:    m.EconomyRate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
