package catalog

// The statement texts are written to run unchanged on both supported
// backends: `?` placeholders, ANSI aggregates and window functions,
// and year extraction via substr over a text cast instead of
// backend-specific date functions. Date cutoffs arrive as parameters
// computed by the caller.
var entries = []Entry{
	{
		Name:        "players_by_country",
		Title:       "Players from a country",
		Description: "All players representing the given country, best aggregate run scorers first.",
		Params:      []Param{{Name: "country", Type: ParamString}},
		Columns: []Column{
			{Name: "id", Type: ParamString},
			{Name: "name", Type: ParamString},
			{Name: "role", Type: ParamString},
			{Name: "total_runs", Type: ParamInt},
			{Name: "batting_average", Type: ParamFloat},
		},
		SQL: `SELECT id, name, role, total_runs, batting_average
FROM players
WHERE country = ?
ORDER BY total_runs DESC, name`,
	},
	{
		Name:        "recent_matches",
		Title:       "Matches since a cutoff",
		Description: "Matches that started on or after the given instant, newest first.",
		Params:      []Param{{Name: "since", Type: ParamTime}},
		Columns: []Column{
			{Name: "id", Type: ParamString},
			{Name: "description", Type: ParamString},
			{Name: "match_type", Type: ParamString},
			{Name: "status", Type: ParamString},
			{Name: "start_time", Type: ParamTime},
			{Name: "team1", Type: ParamString},
			{Name: "team2", Type: ParamString},
			{Name: "winner", Type: ParamString},
		},
		SQL: `SELECT id, description, match_type, status, start_time, team1, team2, winner
FROM matches
WHERE start_time >= ?
ORDER BY start_time DESC`,
	},
	{
		Name:        "top_odi_run_scorers",
		Title:       "Top ODI run scorers",
		Description: "Players ranked by total runs scored in ODI innings.",
		Params:      []Param{{Name: "limit", Type: ParamInt}},
		Columns: []Column{
			{Name: "name", Type: ParamString},
			{Name: "country", Type: ParamString},
			{Name: "total_runs", Type: ParamInt},
			{Name: "innings", Type: ParamInt},
			{Name: "highest_score", Type: ParamInt},
		},
		SQL: `SELECT p.name, p.country, SUM(b.runs) AS total_runs, COUNT(*) AS innings, MAX(b.runs) AS highest_score
FROM batting_innings b
JOIN matches m ON m.id = b.match_id
JOIN players p ON p.id = b.player_id
WHERE m.match_type = 'ODI'
GROUP BY p.id, p.name, p.country
ORDER BY total_runs DESC, p.name
LIMIT ?`,
	},
	{
		Name:        "large_venues",
		Title:       "Venues above a capacity",
		Description: "Venues whose seating capacity exceeds the given threshold.",
		Params:      []Param{{Name: "min_capacity", Type: ParamInt}},
		Columns: []Column{
			{Name: "name", Type: ParamString},
			{Name: "city", Type: ParamString},
			{Name: "country", Type: ParamString},
			{Name: "capacity", Type: ParamInt},
		},
		SQL: `SELECT name, city, country, capacity
FROM venues
WHERE capacity > ?
ORDER BY capacity DESC`,
	},
	{
		Name:        "team_wins",
		Title:       "Wins per team",
		Description: "Completed-match win counts per team.",
		Columns: []Column{
			{Name: "team", Type: ParamString},
			{Name: "wins", Type: ParamInt},
		},
		SQL: `SELECT winner AS team, COUNT(*) AS wins
FROM matches
WHERE status = 'completed' AND winner <> ''
GROUP BY winner
ORDER BY wins DESC, team`,
	},
	{
		Name:        "players_by_role",
		Title:       "Player counts per role",
		Description: "How many stored players play each role.",
		Columns: []Column{
			{Name: "role", Type: ParamString},
			{Name: "player_count", Type: ParamInt},
		},
		SQL: `SELECT role, COUNT(*) AS player_count
FROM players
WHERE role <> ''
GROUP BY role
ORDER BY player_count DESC, role`,
	},
	{
		Name:        "highest_score_by_format",
		Title:       "Highest individual score per format",
		Description: "The single best batting innings recorded in each match format.",
		Columns: []Column{
			{Name: "format", Type: ParamString},
			{Name: "name", Type: ParamString},
			{Name: "runs", Type: ParamInt},
		},
		SQL: `SELECT format, name, runs
FROM (
	SELECT m.match_type AS format, p.name AS name, b.runs AS runs,
		ROW_NUMBER() OVER (PARTITION BY m.match_type ORDER BY b.runs DESC, p.name) AS rn
	FROM batting_innings b
	JOIN matches m ON m.id = b.match_id
	JOIN players p ON p.id = b.player_id
) ranked
WHERE rn = 1
ORDER BY format`,
	},
	{
		Name:        "series_by_year",
		Title:       "Series starting in a year",
		Description: "Series whose start date falls in the given calendar year.",
		Params:      []Param{{Name: "year", Type: ParamString}},
		Columns: []Column{
			{Name: "id", Type: ParamString},
			{Name: "name", Type: ParamString},
			{Name: "host_country", Type: ParamString},
			{Name: "match_type", Type: ParamString},
			{Name: "start_date", Type: ParamTime},
		},
		SQL: `SELECT id, name, host_country, match_type, start_date
FROM series
WHERE substr(CAST(start_date AS TEXT), 1, 4) = ?
ORDER BY start_date, name`,
	},
	{
		Name:        "all_rounders",
		Title:       "All-rounders above thresholds",
		Description: "All-rounders with at least the given career runs and wickets.",
		Params: []Param{
			{Name: "min_runs", Type: ParamInt},
			{Name: "min_wickets", Type: ParamInt},
		},
		Columns: []Column{
			{Name: "name", Type: ParamString},
			{Name: "country", Type: ParamString},
			{Name: "total_runs", Type: ParamInt},
			{Name: "total_wickets", Type: ParamInt},
		},
		SQL: `SELECT name, country, total_runs, total_wickets
FROM players
WHERE role = 'All-rounder' AND total_runs >= ? AND total_wickets >= ?
ORDER BY total_runs DESC, name`,
	},
	{
		Name:        "recent_completed_matches",
		Title:       "Recently completed matches",
		Description: "The latest completed matches with result and venue.",
		Params:      []Param{{Name: "limit", Type: ParamInt}},
		Columns: []Column{
			{Name: "description", Type: ParamString},
			{Name: "team1", Type: ParamString},
			{Name: "team2", Type: ParamString},
			{Name: "winner", Type: ParamString},
			{Name: "victory_margin", Type: ParamInt},
			{Name: "victory_type", Type: ParamString},
			{Name: "venue", Type: ParamString},
		},
		SQL: `SELECT m.description, m.team1, m.team2, m.winner, m.victory_margin, m.victory_type,
	COALESCE(v.name, '') AS venue
FROM matches m
LEFT JOIN venues v ON v.id = m.venue_id
WHERE m.status = 'completed'
ORDER BY m.start_time DESC
LIMIT ?`,
	},
	{
		Name:        "format_batting_comparison",
		Title:       "Batting output per format",
		Description: "Innings counts and run aggregates for each match format.",
		Columns: []Column{
			{Name: "format", Type: ParamString},
			{Name: "innings", Type: ParamInt},
			{Name: "total_runs", Type: ParamInt},
			{Name: "avg_runs", Type: ParamFloat},
		},
		SQL: `SELECT m.match_type AS format, COUNT(*) AS innings, SUM(b.runs) AS total_runs, AVG(b.runs) AS avg_runs
FROM batting_innings b
JOIN matches m ON m.id = b.match_id
GROUP BY m.match_type
ORDER BY m.match_type`,
	},
	{
		Name:        "century_partnerships",
		Title:       "Century partnerships",
		Description: "Recorded stands worth one hundred runs or more.",
		Columns: []Column{
			{Name: "match_id", Type: ParamString},
			{Name: "innings_no", Type: ParamInt},
			{Name: "batter1", Type: ParamString},
			{Name: "batter2", Type: ParamString},
			{Name: "runs", Type: ParamInt},
		},
		SQL: `SELECT pr.match_id, pr.innings_no, p1.name AS batter1, p2.name AS batter2, pr.runs
FROM partnerships pr
JOIN players p1 ON p1.id = pr.batter1_id
JOIN players p2 ON p2.id = pr.batter2_id
WHERE pr.runs >= 100
ORDER BY pr.runs DESC`,
	},
	{
		Name:        "bowling_economy_by_venue",
		Title:       "Bowling economy per venue",
		Description: "Average recorded spell economy at venues with enough spells.",
		Params:      []Param{{Name: "min_spells", Type: ParamInt}},
		Columns: []Column{
			{Name: "venue", Type: ParamString},
			{Name: "spells", Type: ParamInt},
			{Name: "avg_economy", Type: ParamFloat},
		},
		SQL: `SELECT v.name AS venue, COUNT(*) AS spells, AVG(bs.economy) AS avg_economy
FROM bowling_spells bs
JOIN matches m ON m.id = bs.match_id
JOIN venues v ON v.id = m.venue_id
GROUP BY v.id, v.name
HAVING COUNT(*) >= ?
ORDER BY avg_economy, venue`,
	},
	{
		Name:        "close_match_performers",
		Title:       "Batters in close finishes",
		Description: "Batting averages restricted to completed matches decided by a narrow margin.",
		Params: []Param{
			{Name: "max_run_margin", Type: ParamInt},
			{Name: "max_wicket_margin", Type: ParamInt},
		},
		Columns: []Column{
			{Name: "name", Type: ParamString},
			{Name: "innings", Type: ParamInt},
			{Name: "avg_runs", Type: ParamFloat},
		},
		SQL: `SELECT p.name, COUNT(*) AS innings, AVG(b.runs) AS avg_runs
FROM batting_innings b
JOIN matches m ON m.id = b.match_id
JOIN players p ON p.id = b.player_id
WHERE m.status = 'completed'
	AND ((m.victory_type = 'runs' AND m.victory_margin <= ?)
		OR (m.victory_type = 'wickets' AND m.victory_margin <= ?))
GROUP BY p.id, p.name
ORDER BY avg_runs DESC, p.name`,
	},
	{
		Name:        "yearly_batting_trends",
		Title:       "Batting totals per player per year",
		Description: "Run totals by calendar year for players with enough innings in that year.",
		Params:      []Param{{Name: "min_innings", Type: ParamInt}},
		Columns: []Column{
			{Name: "name", Type: ParamString},
			{Name: "year", Type: ParamString},
			{Name: "innings", Type: ParamInt},
			{Name: "total_runs", Type: ParamInt},
		},
		SQL: `SELECT p.name, substr(CAST(m.start_time AS TEXT), 1, 4) AS year, COUNT(*) AS innings, SUM(b.runs) AS total_runs
FROM batting_innings b
JOIN matches m ON m.id = b.match_id
JOIN players p ON p.id = b.player_id
GROUP BY p.id, p.name, substr(CAST(m.start_time AS TEXT), 1, 4)
HAVING COUNT(*) >= ?
ORDER BY p.name, year`,
	},
	{
		Name:        "toss_impact",
		Title:       "Toss impact on outcome",
		Description: "How often the toss winner also won, grouped by toss decision.",
		Columns: []Column{
			{Name: "toss_decision", Type: ParamString},
			{Name: "matches", Type: ParamInt},
			{Name: "toss_winner_won", Type: ParamInt},
			{Name: "win_pct", Type: ParamFloat},
		},
		SQL: `SELECT toss_decision,
	COUNT(*) AS matches,
	SUM(CASE WHEN toss_winner = winner THEN 1 ELSE 0 END) AS toss_winner_won,
	100.0 * SUM(CASE WHEN toss_winner = winner THEN 1 ELSE 0 END) / COUNT(*) AS win_pct
FROM matches
WHERE status = 'completed' AND toss_winner <> ''
GROUP BY toss_decision
ORDER BY toss_decision`,
	},
	{
		Name:        "economical_bowlers",
		Title:       "Most economical bowlers",
		Description: "Bowlers with enough recorded balls, cheapest runs per over first.",
		Params:      []Param{{Name: "min_balls", Type: ParamInt}},
		Columns: []Column{
			{Name: "name", Type: ParamString},
			{Name: "balls", Type: ParamInt},
			{Name: "runs_conceded", Type: ParamInt},
			{Name: "economy", Type: ParamFloat},
		},
		SQL: `SELECT p.name, SUM(bs.balls) AS balls, SUM(bs.runs_conceded) AS runs_conceded,
	6.0 * SUM(bs.runs_conceded) / SUM(bs.balls) AS economy
FROM bowling_spells bs
JOIN players p ON p.id = bs.player_id
GROUP BY p.id, p.name
HAVING SUM(bs.balls) >= ?
ORDER BY economy, p.name`,
	},
	{
		Name:        "batting_consistency",
		Title:       "Batting consistency",
		Description: "Run variance per batter with enough innings; steadier batters first.",
		Params:      []Param{{Name: "min_innings", Type: ParamInt}},
		Columns: []Column{
			{Name: "name", Type: ParamString},
			{Name: "innings", Type: ParamInt},
			{Name: "avg_runs", Type: ParamFloat},
			{Name: "run_variance", Type: ParamFloat},
		},
		SQL: `SELECT p.name, COUNT(*) AS innings, AVG(b.runs) AS avg_runs,
	AVG(1.0 * b.runs * b.runs) - AVG(1.0 * b.runs) * AVG(1.0 * b.runs) AS run_variance
FROM batting_innings b
JOIN players p ON p.id = b.player_id
GROUP BY p.id, p.name
HAVING COUNT(*) >= ?
ORDER BY run_variance, p.name`,
	},
	{
		Name:        "matches_per_format_year",
		Title:       "Match volume per format and year",
		Description: "How many matches each format saw per calendar year.",
		Columns: []Column{
			{Name: "year", Type: ParamString},
			{Name: "format", Type: ParamString},
			{Name: "matches", Type: ParamInt},
		},
		SQL: `SELECT substr(CAST(start_time AS TEXT), 1, 4) AS year, match_type AS format, COUNT(*) AS matches
FROM matches
WHERE start_time IS NOT NULL
GROUP BY substr(CAST(start_time AS TEXT), 1, 4), match_type
ORDER BY year, format`,
	},
	{
		Name:        "head_to_head",
		Title:       "Head to head",
		Description: "Completed-match record between two teams, in either home/away order.",
		Params: []Param{
			{Name: "team1", Type: ParamString},
			{Name: "team2", Type: ParamString},
		},
		Columns: []Column{
			{Name: "matches", Type: ParamInt},
			{Name: "team1_wins", Type: ParamInt},
			{Name: "team2_wins", Type: ParamInt},
		},
		SQL: `SELECT COUNT(*) AS matches,
	SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END) AS team1_wins,
	SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END) AS team2_wins
FROM matches
WHERE status = 'completed'
	AND ((team1 = ? AND team2 = ?) OR (team1 = ? AND team2 = ?))`,
		Binding: []string{"team1", "team2", "team1", "team2", "team2", "team1"},
	},
	{
		Name:        "recent_form",
		Title:       "Recent batting form",
		Description: "Average runs over each batter's most recent innings window.",
		Params:      []Param{{Name: "innings_window", Type: ParamInt}},
		Columns: []Column{
			{Name: "name", Type: ParamString},
			{Name: "innings", Type: ParamInt},
			{Name: "avg_runs", Type: ParamFloat},
		},
		SQL: `SELECT name, COUNT(*) AS innings, AVG(runs) AS avg_runs
FROM (
	SELECT p.name AS name, b.runs AS runs,
		ROW_NUMBER() OVER (PARTITION BY b.player_id ORDER BY m.start_time DESC) AS rn
	FROM batting_innings b
	JOIN matches m ON m.id = b.match_id
	JOIN players p ON p.id = b.player_id
) recent
WHERE rn <= ?
GROUP BY name
ORDER BY avg_runs DESC, name`,
	},
}
