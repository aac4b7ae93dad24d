package cricbuzz

import (
	"bytes"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// flexString tolerates provider fields that arrive as either a JSON
// string or a JSON number. Identity fields flip between the two across
// endpoints.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}

	if trimmed[0] == '"' {
		var value string
		if err := sonic.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(value))
		return nil
	}

	var number float64
	if err := sonic.Unmarshal(trimmed, &number); err != nil {
		return err
	}
	*f = flexString(strconv.FormatInt(int64(number), 10))
	return nil
}

func (f flexString) String() string {
	return string(f)
}

// flexInt64 tolerates numbers serialized as strings.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = 0
		return nil
	}

	if trimmed[0] == '"' {
		var value string
		if err := sonic.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		value = strings.TrimSpace(value)
		if value == "" {
			*f = 0
			return nil
		}
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexInt64(parsed)
		return nil
	}

	var number float64
	if err := sonic.Unmarshal(trimmed, &number); err != nil {
		return err
	}
	*f = flexInt64(number)
	return nil
}

// flexFloat64 tolerates floats serialized as strings, including the
// overs notation the scorecard feed uses ("9.4").
type flexFloat64 float64

func (f *flexFloat64) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = 0
		return nil
	}

	if trimmed[0] == '"' {
		var value string
		if err := sonic.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		value = strings.TrimSpace(value)
		if value == "" {
			*f = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat64(parsed)
		return nil
	}

	var number float64
	if err := sonic.Unmarshal(trimmed, &number); err != nil {
		return err
	}
	*f = flexFloat64(number)
	return nil
}

type trendingPlayersEnvelope struct {
	Player []trendingPlayerItem `json:"player"`
}

type trendingPlayerItem struct {
	ID       flexString `json:"id"`
	Name     string     `json:"name"`
	TeamName string     `json:"teamName"`
}

type playerProfile struct {
	ID           flexString `json:"id"`
	Name         string     `json:"name"`
	Country      string     `json:"intlTeam"`
	Role         string     `json:"role"`
	BattingStyle string     `json:"bat"`
	BowlingStyle string     `json:"bowl"`
}

// statsGrid is the tabular career block: one header row naming the
// format columns, then labelled metric rows.
type statsGrid struct {
	Headers []string       `json:"headers"`
	Values  []statsGridRow `json:"values"`
}

type statsGridRow struct {
	Values []string `json:"values"`
}

type recentMatchesEnvelope struct {
	TypeMatches []typeMatchesItem `json:"typeMatches"`
}

type typeMatchesItem struct {
	MatchType     string              `json:"matchType"`
	SeriesMatches []seriesMatchesItem `json:"seriesMatches"`
}

type seriesMatchesItem struct {
	SeriesAdWrapper *seriesWrapper `json:"seriesAdWrapper"`
}

type seriesWrapper struct {
	SeriesID   flexString      `json:"seriesId"`
	SeriesName string          `json:"seriesName"`
	Matches    []matchListItem `json:"matches"`
}

type matchListItem struct {
	MatchInfo matchInfo `json:"matchInfo"`
}

type matchInfo struct {
	MatchID      flexString  `json:"matchId"`
	SeriesID     flexString  `json:"seriesId"`
	SeriesName   string      `json:"seriesName"`
	MatchDesc    string      `json:"matchDesc"`
	MatchFormat  string      `json:"matchFormat"`
	StartDate    flexInt64   `json:"startDate"`
	State        string      `json:"state"`
	Status       string      `json:"status"`
	Team1        teamRef     `json:"team1"`
	Team2        teamRef     `json:"team2"`
	VenueInfo    venueInfo   `json:"venueInfo"`
	TossResults  tossResults `json:"tossResults"`
}

type teamRef struct {
	TeamID   flexString `json:"teamId"`
	TeamName string     `json:"teamName"`
	TeamSName string    `json:"teamSName"`
}

type venueInfo struct {
	ID       flexString `json:"id"`
	Ground   string     `json:"ground"`
	City     string     `json:"city"`
	Country  string     `json:"country"`
	Capacity flexInt64  `json:"capacity"`
}

type tossResults struct {
	TossWinnerName string `json:"tossWinnerName"`
	Decision       string `json:"decision"`
}

type scorecardEnvelope struct {
	ScoreCard []inningsCard `json:"scoreCard"`
}

type inningsCard struct {
	InningsID      flexInt64        `json:"inningsId"`
	BatTeamDetails batTeamDetails   `json:"batTeamDetails"`
	BowlTeamDetails bowlTeamDetails `json:"bowlTeamDetails"`
	PartnershipsData partnershipMap `json:"partnershipsData"`
}

type batTeamDetails struct {
	BatTeamName string     `json:"batTeamName"`
	BatsmenData batsmenMap `json:"batsmenData"`
}

type bowlTeamDetails struct {
	BowlTeamName string     `json:"bowlTeamName"`
	BowlersData  bowlersMap `json:"bowlersData"`
}

type batsmanEntry struct {
	BatID      flexString  `json:"batId"`
	BatName    string      `json:"batName"`
	Runs       flexInt64   `json:"runs"`
	Balls      flexInt64   `json:"balls"`
	Fours      flexInt64   `json:"fours"`
	Sixes      flexInt64   `json:"sixes"`
	StrikeRate flexFloat64 `json:"strikeRate"`
}

type bowlerEntry struct {
	BowlerID flexString  `json:"bowlerId"`
	BowlName string      `json:"bowlName"`
	Overs    flexFloat64 `json:"overs"`
	Maidens  flexInt64   `json:"maidens"`
	Runs     flexInt64   `json:"runs"`
	Wickets  flexInt64   `json:"wickets"`
	Economy  flexFloat64 `json:"economy"`
}

type partnershipEntry struct {
	Bat1ID    flexString `json:"bat1Id"`
	Bat2ID    flexString `json:"bat2Id"`
	Bat1Name  string     `json:"bat1Name"`
	Bat2Name  string     `json:"bat2Name"`
	TotalRuns flexInt64  `json:"totalRuns"`
}

// The scorecard feed serves player collections as either a keyed object
// ("bat_1", "bat_2", ...) or a plain array depending on match age. Both
// shapes decode into an ordered slice.
type batsmenMap []batsmanEntry

func (m *batsmenMap) UnmarshalJSON(data []byte) error {
	items, err := decodeKeyedOrList[batsmanEntry](data)
	if err != nil {
		return err
	}
	*m = items
	return nil
}

type bowlersMap []bowlerEntry

func (m *bowlersMap) UnmarshalJSON(data []byte) error {
	items, err := decodeKeyedOrList[bowlerEntry](data)
	if err != nil {
		return err
	}
	*m = items
	return nil
}

type partnershipMap []partnershipEntry

func (m *partnershipMap) UnmarshalJSON(data []byte) error {
	items, err := decodeKeyedOrList[partnershipEntry](data)
	if err != nil {
		return err
	}
	*m = items
	return nil
}

func decodeKeyedOrList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := sonic.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var keyed map[string]T
	if err := sonic.Unmarshal(trimmed, &keyed); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(keyed))
	for key := range keyed {
		keys = append(keys, key)
	}
	sortKeyedEntries(keys)

	items := make([]T, 0, len(keys))
	for _, key := range keys {
		items = append(items, keyed[key])
	}
	return items, nil
}

// sortKeyedEntries orders "bat_1", "bat_2", ... "bat_11" numerically so
// batting positions survive the map round trip.
func sortKeyedEntries(keys []string) {
	numeric := func(key string) int {
		idx := strings.LastIndex(key, "_")
		if idx < 0 || idx == len(key)-1 {
			return 0
		}
		n, err := strconv.Atoi(key[idx+1:])
		if err != nil {
			return 0
		}
		return n
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0; j-- {
			left, right := keys[j-1], keys[j]
			if numeric(left) < numeric(right) || (numeric(left) == numeric(right) && left <= right) {
				break
			}
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
}
