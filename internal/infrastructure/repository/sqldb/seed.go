package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/cricverse/cricstats/internal/infrastructure/storage"
)

// BootstrapSeed loads a small demo dataset on an empty database so a
// fresh install has something to query. A non-empty players table
// makes it a no-op.
func BootstrapSeed(ctx context.Context, gw *storage.Gateway) error {
	var count int
	if err := gw.Get(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	return gw.WithTx(ctx, func(tx *storage.Tx) error {
		for _, v := range seedVenues() {
			if _, err := tx.NamedExec(ctx, `
INSERT INTO venues (id, name, city, country, capacity)
VALUES (:id, :name, :city, :country, :capacity)
ON CONFLICT (id) DO NOTHING`, v); err != nil {
				return fmt.Errorf("seed venue %s: %w", v["id"], err)
			}
		}

		for _, s := range seedSeries() {
			if _, err := tx.NamedExec(ctx, `
INSERT INTO series (id, name, host_country, match_type, start_date, planned_matches)
VALUES (:id, :name, :host_country, :match_type, :start_date, :planned_matches)
ON CONFLICT (id) DO NOTHING`, s); err != nil {
				return fmt.Errorf("seed series %s: %w", s["id"], err)
			}
		}

		for _, p := range seedPlayers() {
			if _, err := tx.NamedExec(ctx, `
INSERT INTO players (id, name, country, role, batting_style, bowling_style,
	total_runs, batting_average, strike_rate, total_wickets, bowling_average, economy_rate)
VALUES (:id, :name, :country, :role, :batting_style, :bowling_style,
	:total_runs, :batting_average, :strike_rate, :total_wickets, :bowling_average, :economy_rate)
ON CONFLICT (id) DO NOTHING`, p); err != nil {
				return fmt.Errorf("seed player %s: %w", p["id"], err)
			}
		}

		for _, m := range seedMatches() {
			if _, err := tx.NamedExec(ctx, `
INSERT INTO matches (id, description, match_type, status, start_time, team1, team2,
	venue_id, series_id, winner, victory_margin, victory_type, toss_winner, toss_decision)
VALUES (:id, :description, :match_type, :status, :start_time, :team1, :team2,
	:venue_id, :series_id, :winner, :victory_margin, :victory_type, :toss_winner, :toss_decision)
ON CONFLICT (id) DO NOTHING`, m); err != nil {
				return fmt.Errorf("seed match %s: %w", m["id"], err)
			}
		}

		for _, b := range seedBattingInnings() {
			if _, err := tx.NamedExec(ctx, `
INSERT INTO batting_innings (match_id, innings_no, player_id, team, position, runs, balls, fours, sixes, strike_rate)
VALUES (:match_id, :innings_no, :player_id, :team, :position, :runs, :balls, :fours, :sixes, :strike_rate)
ON CONFLICT DO NOTHING`, b); err != nil {
				return fmt.Errorf("seed batting row for match %s: %w", b["match_id"], err)
			}
		}

		for _, b := range seedBowlingSpells() {
			if _, err := tx.NamedExec(ctx, `
INSERT INTO bowling_spells (match_id, innings_no, player_id, team, overs, balls, maidens, runs_conceded, wickets, economy)
VALUES (:match_id, :innings_no, :player_id, :team, :overs, :balls, :maidens, :runs_conceded, :wickets, :economy)
ON CONFLICT DO NOTHING`, b); err != nil {
				return fmt.Errorf("seed bowling row for match %s: %w", b["match_id"], err)
			}
		}

		return nil
	})
}

func seedVenues() []map[string]any {
	return []map[string]any{
		{"id": "v-mcg", "name": "Melbourne Cricket Ground", "city": "Melbourne", "country": "Australia", "capacity": int64(100024)},
		{"id": "v-eden", "name": "Eden Gardens", "city": "Kolkata", "country": "India", "capacity": int64(68000)},
		{"id": "v-lords", "name": "Lord's", "city": "London", "country": "England", "capacity": int64(30000)},
		{"id": "v-wankhede", "name": "Wankhede Stadium", "city": "Mumbai", "country": "India", "capacity": int64(33000)},
	}
}

func seedSeries() []map[string]any {
	return []map[string]any{
		{"id": "s-odi-2024", "name": "ODI Championship 2024", "host_country": "India", "match_type": "ODI",
			"start_date": time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "planned_matches": int64(6)},
		{"id": "s-t20-2024", "name": "T20 Tri-Series 2024", "host_country": "Australia", "match_type": "T20",
			"start_date": time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC), "planned_matches": int64(4)},
	}
}

func seedPlayers() []map[string]any {
	return []map[string]any{
		{"id": "p-kohli", "name": "Virat Kohli", "country": "India", "role": "Batter",
			"batting_style": "Right-hand bat", "bowling_style": "Right-arm medium",
			"total_runs": int64(13000), "batting_average": 57.3, "strike_rate": 93.2,
			"total_wickets": int64(4), "bowling_average": 166.2, "economy_rate": 6.2},
		{"id": "p-rohit", "name": "Rohit Sharma", "country": "India", "role": "Batter",
			"batting_style": "Right-hand bat", "bowling_style": "Right-arm offbreak",
			"total_runs": int64(10800), "batting_average": 48.9, "strike_rate": 90.1,
			"total_wickets": int64(8), "bowling_average": 64.4, "economy_rate": 5.2},
		{"id": "p-bumrah", "name": "Jasprit Bumrah", "country": "India", "role": "Bowler",
			"batting_style": "Right-hand bat", "bowling_style": "Right-arm fast",
			"total_runs": int64(350), "batting_average": 6.1, "strike_rate": 48.0,
			"total_wickets": int64(380), "bowling_average": 21.5, "economy_rate": 4.6},
		{"id": "p-jadeja", "name": "Ravindra Jadeja", "country": "India", "role": "All-rounder",
			"batting_style": "Left-hand bat", "bowling_style": "Slow left-arm orthodox",
			"total_runs": int64(5500), "batting_average": 35.2, "strike_rate": 85.9,
			"total_wickets": int64(510), "bowling_average": 24.3, "economy_rate": 4.4},
		{"id": "p-smith", "name": "Steve Smith", "country": "Australia", "role": "Batter",
			"batting_style": "Right-hand bat", "bowling_style": "Right-arm legbreak",
			"total_runs": int64(14200), "batting_average": 56.8, "strike_rate": 86.5,
			"total_wickets": int64(28), "bowling_average": 50.1, "economy_rate": 5.0},
		{"id": "p-cummins", "name": "Pat Cummins", "country": "Australia", "role": "Bowler",
			"batting_style": "Right-hand bat", "bowling_style": "Right-arm fast",
			"total_runs": int64(1300), "batting_average": 16.8, "strike_rate": 68.2,
			"total_wickets": int64(450), "bowling_average": 22.4, "economy_rate": 4.9},
		{"id": "p-root", "name": "Joe Root", "country": "England", "role": "Batter",
			"batting_style": "Right-hand bat", "bowling_style": "Right-arm offbreak",
			"total_runs": int64(17500), "batting_average": 50.2, "strike_rate": 84.0,
			"total_wickets": int64(71), "bowling_average": 48.2, "economy_rate": 5.4},
		{"id": "p-stokes", "name": "Ben Stokes", "country": "England", "role": "All-rounder",
			"batting_style": "Left-hand bat", "bowling_style": "Right-arm fast-medium",
			"total_runs": int64(9800), "batting_average": 37.4, "strike_rate": 91.4,
			"total_wickets": int64(320), "bowling_average": 31.1, "economy_rate": 5.8},
	}
}

func seedMatches() []map[string]any {
	return []map[string]any{
		{"id": "m-1001", "description": "India vs Australia, 1st ODI", "match_type": "ODI", "status": "completed",
			"start_time": time.Date(2024, 2, 4, 8, 30, 0, 0, time.UTC),
			"team1": "India", "team2": "Australia", "venue_id": "v-eden", "series_id": "s-odi-2024",
			"winner": "India", "victory_margin": int64(27), "victory_type": "runs",
			"toss_winner": "India", "toss_decision": "bat"},
		{"id": "m-1002", "description": "India vs Australia, 2nd ODI", "match_type": "ODI", "status": "completed",
			"start_time": time.Date(2024, 2, 7, 8, 30, 0, 0, time.UTC),
			"team1": "India", "team2": "Australia", "venue_id": "v-wankhede", "series_id": "s-odi-2024",
			"winner": "Australia", "victory_margin": int64(4), "victory_type": "wickets",
			"toss_winner": "Australia", "toss_decision": "bowl"},
		{"id": "m-1003", "description": "England vs India, 3rd ODI", "match_type": "ODI", "status": "completed",
			"start_time": time.Date(2024, 2, 11, 10, 0, 0, 0, time.UTC),
			"team1": "England", "team2": "India", "venue_id": "v-lords", "series_id": "s-odi-2024",
			"winner": "India", "victory_margin": int64(6), "victory_type": "wickets",
			"toss_winner": "England", "toss_decision": "bat"},
		{"id": "m-2001", "description": "Australia vs England, 1st T20", "match_type": "T20", "status": "completed",
			"start_time": time.Date(2024, 9, 12, 9, 0, 0, 0, time.UTC),
			"team1": "Australia", "team2": "England", "venue_id": "v-mcg", "series_id": "s-t20-2024",
			"winner": "Australia", "victory_margin": int64(15), "victory_type": "runs",
			"toss_winner": "Australia", "toss_decision": "bat"},
		{"id": "m-2002", "description": "Australia vs India, 2nd T20", "match_type": "T20", "status": "live",
			"start_time": time.Date(2024, 9, 15, 9, 0, 0, 0, time.UTC),
			"team1": "Australia", "team2": "India", "venue_id": "v-mcg", "series_id": "s-t20-2024",
			"winner": "", "victory_margin": int64(0), "victory_type": "",
			"toss_winner": "India", "toss_decision": "bowl"},
		{"id": "m-2003", "description": "India vs England, 3rd T20", "match_type": "T20", "status": "upcoming",
			"start_time": time.Date(2024, 9, 19, 9, 0, 0, 0, time.UTC),
			"team1": "India", "team2": "England", "venue_id": "v-mcg", "series_id": "s-t20-2024",
			"winner": "", "victory_margin": int64(0), "victory_type": "",
			"toss_winner": "", "toss_decision": ""},
	}
}

func seedBattingInnings() []map[string]any {
	return []map[string]any{
		{"match_id": "m-1001", "innings_no": int64(1), "player_id": "p-kohli", "team": "India",
			"position": int64(3), "runs": int64(112), "balls": int64(98), "fours": int64(10), "sixes": int64(2), "strike_rate": 114.3},
		{"match_id": "m-1001", "innings_no": int64(1), "player_id": "p-rohit", "team": "India",
			"position": int64(1), "runs": int64(58), "balls": int64(49), "fours": int64(7), "sixes": int64(1), "strike_rate": 118.4},
		{"match_id": "m-1001", "innings_no": int64(2), "player_id": "p-smith", "team": "Australia",
			"position": int64(3), "runs": int64(84), "balls": int64(92), "fours": int64(8), "sixes": int64(0), "strike_rate": 91.3},
		{"match_id": "m-1002", "innings_no": int64(1), "player_id": "p-kohli", "team": "India",
			"position": int64(3), "runs": int64(45), "balls": int64(51), "fours": int64(4), "sixes": int64(0), "strike_rate": 88.2},
		{"match_id": "m-1002", "innings_no": int64(2), "player_id": "p-smith", "team": "Australia",
			"position": int64(3), "runs": int64(67), "balls": int64(70), "fours": int64(6), "sixes": int64(1), "strike_rate": 95.7},
		{"match_id": "m-1003", "innings_no": int64(1), "player_id": "p-root", "team": "England",
			"position": int64(4), "runs": int64(91), "balls": int64(102), "fours": int64(9), "sixes": int64(0), "strike_rate": 89.2},
		{"match_id": "m-1003", "innings_no": int64(2), "player_id": "p-kohli", "team": "India",
			"position": int64(3), "runs": int64(76), "balls": int64(80), "fours": int64(7), "sixes": int64(1), "strike_rate": 95.0},
	}
}

func seedBowlingSpells() []map[string]any {
	return []map[string]any{
		{"match_id": "m-1001", "innings_no": int64(2), "player_id": "p-bumrah", "team": "India",
			"overs": 10.0, "balls": int64(60), "maidens": int64(1), "runs_conceded": int64(38), "wickets": int64(3), "economy": 3.8},
		{"match_id": "m-1001", "innings_no": int64(1), "player_id": "p-cummins", "team": "Australia",
			"overs": 10.0, "balls": int64(60), "maidens": int64(0), "runs_conceded": int64(55), "wickets": int64(2), "economy": 5.5},
		{"match_id": "m-1002", "innings_no": int64(1), "player_id": "p-cummins", "team": "Australia",
			"overs": 9.2, "balls": int64(56), "maidens": int64(1), "runs_conceded": int64(41), "wickets": int64(4), "economy": 4.4},
		{"match_id": "m-1003", "innings_no": int64(2), "player_id": "p-stokes", "team": "England",
			"overs": 8.0, "balls": int64(48), "maidens": int64(0), "runs_conceded": int64(47), "wickets": int64(1), "economy": 5.9},
	}
}
