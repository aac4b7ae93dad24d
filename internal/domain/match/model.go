package match

import (
	"fmt"
	"time"
)

// Format is the match format as reported by the provider.
type Format string

const (
	FormatTest Format = "Test"
	FormatODI  Format = "ODI"
	FormatT20  Format = "T20"
)

var AllFormats = map[Format]struct{}{
	FormatTest: {},
	FormatODI:  {},
	FormatT20:  {},
}

// Status is the normalized match state.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusLive      Status = "live"
	StatusUpcoming  Status = "upcoming"
)

var AllStatuses = map[Status]struct{}{
	StatusCompleted: {},
	StatusLive:      {},
	StatusUpcoming:  {},
}

// VictoryType says what unit the victory margin is measured in.
type VictoryType string

const (
	VictoryByRuns    VictoryType = "runs"
	VictoryByWickets VictoryType = "wickets"
)

// Match is a single fixture between two teams.
type Match struct {
	ID            string
	Description   string
	Format        Format
	Status        Status
	StartTime     time.Time
	Team1         string
	Team2         string
	VenueID       string
	SeriesID      string
	Winner        string
	VictoryMargin int64
	VictoryType   VictoryType
	TossWinner    string
	TossDecision  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.Team1 == "" || m.Team2 == "" {
		return fmt.Errorf("both match teams are required")
	}
	if m.Format != "" {
		if _, ok := AllFormats[m.Format]; !ok {
			return fmt.Errorf("invalid match format: %s", m.Format)
		}
	}
	if m.Status != "" {
		if _, ok := AllStatuses[m.Status]; !ok {
			return fmt.Errorf("invalid match status: %s", m.Status)
		}
	}
	if m.VictoryMargin < 0 {
		return fmt.Errorf("match victory margin must not be negative")
	}

	return nil
}
