package player

import (
	"fmt"
	"time"
)

// Role classifies what a player primarily does on the field.
type Role string

const (
	RoleBatter       Role = "Batter"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-rounder"
	RoleWicketKeeper Role = "Wicket-keeper"
)

var AllRoles = map[Role]struct{}{
	RoleBatter:       {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

// Player is a cricketer with career aggregate statistics.
type Player struct {
	ID             string
	Name           string
	Country        string
	Role           Role
	BattingStyle   string
	BowlingStyle   string
	TotalRuns      int64
	BattingAverage float64
	StrikeRate     float64
	TotalWickets   int64
	BowlingAverage float64
	EconomyRate    float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Country == "" {
		return fmt.Errorf("player country is required")
	}
	if p.Role != "" {
		if _, ok := AllRoles[p.Role]; !ok {
			return fmt.Errorf("invalid player role: %s", p.Role)
		}
	}
	if p.TotalRuns < 0 {
		return fmt.Errorf("player total runs must not be negative")
	}
	if p.TotalWickets < 0 {
		return fmt.Errorf("player total wickets must not be negative")
	}

	return nil
}

// InferRole derives a role from career aggregates when the provider
// profile does not state one.
func InferRole(totalRuns, totalWickets int64) Role {
	switch {
	case totalWickets >= 50 && totalRuns >= 1000:
		return RoleAllRounder
	case totalWickets >= 50:
		return RoleBowler
	default:
		return RoleBatter
	}
}
