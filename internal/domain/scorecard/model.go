package scorecard

import "fmt"

// BattingInnings is one batter's line in one innings of a match.
type BattingInnings struct {
	MatchID    string
	InningsNo  int
	PlayerID   string
	Team       string
	Position   int
	Runs       int64
	Balls      int64
	Fours      int64
	Sixes      int64
	StrikeRate float64
}

// BowlingSpell is one bowler's figures in one innings of a match.
type BowlingSpell struct {
	MatchID      string
	InningsNo    int
	PlayerID     string
	Team         string
	Overs        float64
	Balls        int64
	Maidens      int64
	RunsConceded int64
	Wickets      int64
	Economy      float64
}

// Partnership is a stand between two adjacent batting positions worth
// at least the recording threshold.
type Partnership struct {
	MatchID   string
	InningsNo int
	Batter1ID string
	Batter2ID string
	Runs      int64
}

// Scorecard bundles everything ingested for one match.
type Scorecard struct {
	MatchID      string
	Batting      []BattingInnings
	Bowling      []BowlingSpell
	Partnerships []Partnership
}

func (c Scorecard) Validate() error {
	if c.MatchID == "" {
		return fmt.Errorf("scorecard match id is required")
	}
	for _, b := range c.Batting {
		if b.PlayerID == "" {
			return fmt.Errorf("batting row player id is required")
		}
		if b.InningsNo < 1 {
			return fmt.Errorf("batting row innings number must be positive")
		}
	}
	for _, b := range c.Bowling {
		if b.PlayerID == "" {
			return fmt.Errorf("bowling row player id is required")
		}
		if b.InningsNo < 1 {
			return fmt.Errorf("bowling row innings number must be positive")
		}
	}

	return nil
}
