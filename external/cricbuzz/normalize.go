package cricbuzz

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cricverse/cricstats/internal/domain/match"
	"github.com/cricverse/cricstats/internal/domain/player"
	"github.com/cricverse/cricstats/internal/domain/scorecard"
	"github.com/cricverse/cricstats/internal/domain/series"
	"github.com/cricverse/cricstats/internal/domain/venue"
	"github.com/cricverse/cricstats/internal/usecase"
)

// partnershipRunThreshold is the smallest stand worth recording.
const partnershipRunThreshold = 50

// formatPreference orders the career grid columns we read aggregates
// from. The first format the player has actually played wins.
var formatPreference = []string{"Test", "ODI", "T20I", "T20"}

var marginRegex = regexp.MustCompile(`(?i)\b(.+?)\s+won\s+by\s+(\d+)\s+(runs?|wkts?|wickets?)\b`)

// normalizePlayer maps a provider profile plus its career grids onto a
// domain player. Identity fields are mandatory; every statistic falls
// back to zero when the grid does not carry it.
func normalizePlayer(profile playerProfile, batting, bowling statsGrid) (player.Player, error) {
	id := strings.TrimSpace(profile.ID.String())
	name := strings.TrimSpace(profile.Name)
	if id == "" {
		return player.Player{}, fmt.Errorf("%w: player profile is missing id", usecase.ErrMalformedResponse)
	}
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player profile %s is missing name", usecase.ErrMalformedResponse, id)
	}

	country := strings.TrimSpace(profile.Country)
	if country == "" {
		country = "Unknown"
	}

	out := player.Player{
		ID:           id,
		Name:         name,
		Country:      country,
		BattingStyle: strings.TrimSpace(profile.BattingStyle),
		BowlingStyle: strings.TrimSpace(profile.BowlingStyle),
	}

	out.TotalRuns = gridInt(batting, "Runs")
	out.BattingAverage = gridFloat(batting, "Average")
	out.StrikeRate = gridFloat(batting, "SR")
	out.TotalWickets = gridInt(bowling, "Wickets")
	out.BowlingAverage = gridFloat(bowling, "Avg")
	out.EconomyRate = gridFloat(bowling, "Eco")

	out.Role = mapRole(profile.Role)
	if out.Role == "" {
		out.Role = player.InferRole(out.TotalRuns, out.TotalWickets)
	}

	return out, nil
}

func mapRole(raw string) player.Role {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return ""
	case strings.Contains(value, "wk") || strings.Contains(value, "keeper"):
		return player.RoleWicketKeeper
	case strings.Contains(value, "allrounder") || strings.Contains(value, "all-rounder") || strings.Contains(value, "all rounder"):
		return player.RoleAllRounder
	case strings.Contains(value, "bowl"):
		return player.RoleBowler
	case strings.Contains(value, "bat"):
		return player.RoleBatter
	default:
		return ""
	}
}

// gridColumn picks the format column to read, preferring the longest
// format the player has appeared in.
func gridColumn(grid statsGrid) int {
	if len(grid.Headers) < 2 {
		return -1
	}
	for _, format := range formatPreference {
		for i, header := range grid.Headers {
			if i == 0 {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(header), format) {
				return i
			}
		}
	}
	return 1
}

func gridValue(grid statsGrid, label string) string {
	col := gridColumn(grid)
	if col < 0 {
		return ""
	}
	for _, row := range grid.Values {
		if len(row.Values) <= col {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(row.Values[0]), label) {
			return strings.TrimSpace(row.Values[col])
		}
	}
	return ""
}

func gridInt(grid statsGrid, label string) int64 {
	raw := strings.ReplaceAll(gridValue(grid, label), ",", "")
	if raw == "" || raw == "-" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func gridFloat(grid statsGrid, label string) float64 {
	raw := strings.ReplaceAll(gridValue(grid, label), ",", "")
	if raw == "" || raw == "-" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// normalizeRecentMatches walks the typeMatches envelope and returns
// every fixture that carries its identity fields. Records missing an id
// or a team name are counted and skipped rather than failing the batch.
func normalizeRecentMatches(envelope recentMatchesEnvelope) ([]usecase.ExternalMatch, int) {
	out := make([]usecase.ExternalMatch, 0, 32)
	skipped := 0
	seen := make(map[string]struct{}, 32)

	for _, group := range envelope.TypeMatches {
		for _, wrapped := range group.SeriesMatches {
			if wrapped.SeriesAdWrapper == nil {
				continue
			}
			for _, item := range wrapped.SeriesAdWrapper.Matches {
				normalized, err := normalizeMatch(item.MatchInfo, wrapped.SeriesAdWrapper)
				if err != nil {
					skipped++
					continue
				}
				if _, dup := seen[normalized.Match.ID]; dup {
					continue
				}
				seen[normalized.Match.ID] = struct{}{}
				out = append(out, normalized)
			}
		}
	}

	return out, skipped
}

// normalizeMatch maps a single provider fixture. Match id and both team
// names are mandatory; everything else defaults.
func normalizeMatch(info matchInfo, fallback *seriesWrapper) (usecase.ExternalMatch, error) {
	id := strings.TrimSpace(info.MatchID.String())
	if id == "" {
		return usecase.ExternalMatch{}, fmt.Errorf("%w: match record is missing id", usecase.ErrMalformedResponse)
	}

	team1 := strings.TrimSpace(info.Team1.TeamName)
	team2 := strings.TrimSpace(info.Team2.TeamName)
	if team1 == "" || team2 == "" {
		return usecase.ExternalMatch{}, fmt.Errorf("%w: match %s is missing a team name", usecase.ErrMalformedResponse, id)
	}

	m := match.Match{
		ID:          id,
		Description: strings.TrimSpace(info.MatchDesc),
		Format:      mapFormat(info.MatchFormat),
		Status:      mapState(info.State),
		Team1:       team1,
		Team2:       team2,
	}

	if info.StartDate > 0 {
		m.StartTime = time.UnixMilli(int64(info.StartDate)).UTC()
	}

	if winner, margin, victoryType, ok := parseVictory(info.Status); ok {
		m.Winner = winner
		m.VictoryMargin = margin
		m.VictoryType = victoryType
	}

	if toss := strings.TrimSpace(info.TossResults.TossWinnerName); toss != "" {
		m.TossWinner = toss
		m.TossDecision = strings.ToLower(strings.TrimSpace(info.TossResults.Decision))
	}

	out := usecase.ExternalMatch{Match: m}

	if venueID := strings.TrimSpace(info.VenueInfo.ID.String()); venueID != "" && strings.TrimSpace(info.VenueInfo.Ground) != "" {
		out.Venue = &venue.Venue{
			ID:       venueID,
			Name:     strings.TrimSpace(info.VenueInfo.Ground),
			City:     strings.TrimSpace(info.VenueInfo.City),
			Country:  strings.TrimSpace(info.VenueInfo.Country),
			Capacity: int64(info.VenueInfo.Capacity),
		}
		out.Match.VenueID = venueID
	}

	seriesID := strings.TrimSpace(info.SeriesID.String())
	seriesName := strings.TrimSpace(info.SeriesName)
	if fallback != nil {
		if seriesID == "" {
			seriesID = strings.TrimSpace(fallback.SeriesID.String())
		}
		if seriesName == "" {
			seriesName = strings.TrimSpace(fallback.SeriesName)
		}
	}
	if seriesID != "" && seriesName != "" {
		out.Series = &series.Series{
			ID:     seriesID,
			Name:   seriesName,
			Format: string(out.Match.Format),
		}
		out.Match.SeriesID = seriesID
	}

	return out, nil
}

func mapFormat(raw string) match.Format {
	value := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(value, "TEST"):
		return match.FormatTest
	case strings.Contains(value, "T20"), strings.Contains(value, "T10"), strings.Contains(value, "HUN"):
		return match.FormatT20
	default:
		return match.FormatODI
	}
}

func mapState(raw string) match.Status {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "complete", value == "completed", strings.Contains(value, "abandon"), strings.Contains(value, "no result"):
		return match.StatusCompleted
	case strings.Contains(value, "progress"), strings.Contains(value, "live"),
		strings.Contains(value, "innings break"), strings.Contains(value, "stumps"),
		strings.Contains(value, "rain"), strings.Contains(value, "delay"),
		strings.Contains(value, "tea"), strings.Contains(value, "lunch"),
		strings.Contains(value, "drinks"), strings.Contains(value, "toss"):
		return match.StatusLive
	default:
		return match.StatusUpcoming
	}
}

// parseVictory reads result lines like "India won by 6 wkts" or
// "Australia won by 23 runs".
func parseVictory(status string) (string, int64, match.VictoryType, bool) {
	groups := marginRegex.FindStringSubmatch(strings.TrimSpace(status))
	if len(groups) != 4 {
		return "", 0, "", false
	}

	margin, err := strconv.ParseInt(groups[2], 10, 64)
	if err != nil {
		return "", 0, "", false
	}

	victoryType := match.VictoryByRuns
	if strings.HasPrefix(strings.ToLower(groups[3]), "w") {
		victoryType = match.VictoryByWickets
	}

	return strings.TrimSpace(groups[1]), margin, victoryType, true
}

// normalizeScorecard flattens the innings cards into one scorecard.
// Rows without a player id are dropped; statistical fields default to
// zero when absent.
func normalizeScorecard(matchID string, envelope scorecardEnvelope) (scorecard.Scorecard, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return scorecard.Scorecard{}, fmt.Errorf("%w: scorecard is missing match id", usecase.ErrMalformedResponse)
	}
	if len(envelope.ScoreCard) == 0 {
		return scorecard.Scorecard{}, fmt.Errorf("%w: scorecard for match %s has no innings", usecase.ErrMalformedResponse, matchID)
	}

	out := scorecard.Scorecard{MatchID: matchID}

	for idx, innings := range envelope.ScoreCard {
		inningsNo := int(innings.InningsID)
		if inningsNo <= 0 {
			inningsNo = idx + 1
		}

		batTeam := strings.TrimSpace(innings.BatTeamDetails.BatTeamName)
		position := 0
		for _, entry := range innings.BatTeamDetails.BatsmenData {
			playerID := strings.TrimSpace(entry.BatID.String())
			if playerID == "" {
				continue
			}
			position++
			row := scorecard.BattingInnings{
				MatchID:    matchID,
				InningsNo:  inningsNo,
				PlayerID:   playerID,
				Team:       batTeam,
				Position:   position,
				Runs:       int64(entry.Runs),
				Balls:      int64(entry.Balls),
				Fours:      int64(entry.Fours),
				Sixes:      int64(entry.Sixes),
				StrikeRate: float64(entry.StrikeRate),
			}
			if row.StrikeRate == 0 && row.Balls > 0 {
				row.StrikeRate = 100 * float64(row.Runs) / float64(row.Balls)
			}
			out.Batting = append(out.Batting, row)
		}

		bowlTeam := strings.TrimSpace(innings.BowlTeamDetails.BowlTeamName)
		for _, entry := range innings.BowlTeamDetails.BowlersData {
			playerID := strings.TrimSpace(entry.BowlerID.String())
			if playerID == "" {
				continue
			}
			row := scorecard.BowlingSpell{
				MatchID:      matchID,
				InningsNo:    inningsNo,
				PlayerID:     playerID,
				Team:         bowlTeam,
				Overs:        float64(entry.Overs),
				Balls:        oversToBalls(float64(entry.Overs)),
				Maidens:      int64(entry.Maidens),
				RunsConceded: int64(entry.Runs),
				Wickets:      int64(entry.Wickets),
				Economy:      float64(entry.Economy),
			}
			if row.Economy == 0 && row.Balls > 0 {
				row.Economy = 6 * float64(row.RunsConceded) / float64(row.Balls)
			}
			out.Bowling = append(out.Bowling, row)
		}

		for _, entry := range innings.PartnershipsData {
			bat1 := strings.TrimSpace(entry.Bat1ID.String())
			bat2 := strings.TrimSpace(entry.Bat2ID.String())
			if bat1 == "" || bat2 == "" {
				continue
			}
			if int64(entry.TotalRuns) < partnershipRunThreshold {
				continue
			}
			out.Partnerships = append(out.Partnerships, scorecard.Partnership{
				MatchID:   matchID,
				InningsNo: inningsNo,
				Batter1ID: bat1,
				Batter2ID: bat2,
				Runs:      int64(entry.TotalRuns),
			})
		}
	}

	return out, nil
}

// oversToBalls converts cricket overs notation, where the fractional
// digit counts balls (9.4 overs is 58 balls, not 9.67 overs).
func oversToBalls(overs float64) int64 {
	if overs <= 0 {
		return 0
	}
	whole := math.Floor(overs)
	balls := int64(math.Round((overs - whole) * 10))
	if balls > 5 {
		balls = 5
	}
	return int64(whole)*6 + balls
}
