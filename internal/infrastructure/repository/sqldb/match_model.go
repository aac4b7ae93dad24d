package sqldb

import (
	"database/sql"
	"time"

	"github.com/cricverse/cricstats/internal/domain/match"
)

type matchTableModel struct {
	ID            string         `db:"id"`
	Description   string         `db:"description"`
	MatchType     string         `db:"match_type"`
	Status        string         `db:"status"`
	StartTime     *time.Time     `db:"start_time"`
	Team1         string         `db:"team1"`
	Team2         string         `db:"team2"`
	VenueID       sql.NullString `db:"venue_id"`
	SeriesID      sql.NullString `db:"series_id"`
	Winner        string         `db:"winner"`
	VictoryMargin int64          `db:"victory_margin"`
	VictoryType   string         `db:"victory_type"`
	TossWinner    string         `db:"toss_winner"`
	TossDecision  string         `db:"toss_decision"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (m matchTableModel) toDomain() match.Match {
	out := match.Match{
		ID:            m.ID,
		Description:   m.Description,
		Format:        match.Format(m.MatchType),
		Status:        match.Status(m.Status),
		Team1:         m.Team1,
		Team2:         m.Team2,
		VenueID:       m.VenueID.String,
		SeriesID:      m.SeriesID.String,
		Winner:        m.Winner,
		VictoryMargin: m.VictoryMargin,
		VictoryType:   match.VictoryType(m.VictoryType),
		TossWinner:    m.TossWinner,
		TossDecision:  m.TossDecision,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.StartTime != nil {
		out.StartTime = *m.StartTime
	}
	return out
}

// nullableString maps "" to NULL so optional foreign keys stay honest.
func nullableString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

// nullableTime maps the zero time to NULL.
func nullableTime(value time.Time) *time.Time {
	if value.IsZero() {
		return nil
	}
	return &value
}
