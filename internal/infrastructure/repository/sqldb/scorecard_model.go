package sqldb

import "github.com/cricverse/cricstats/internal/domain/scorecard"

type battingInningsTableModel struct {
	MatchID    string  `db:"match_id"`
	InningsNo  int64   `db:"innings_no"`
	PlayerID   string  `db:"player_id"`
	Team       string  `db:"team"`
	Position   int64   `db:"position"`
	Runs       int64   `db:"runs"`
	Balls      int64   `db:"balls"`
	Fours      int64   `db:"fours"`
	Sixes      int64   `db:"sixes"`
	StrikeRate float64 `db:"strike_rate"`
}

func newBattingInningsTableModel(b scorecard.BattingInnings) battingInningsTableModel {
	return battingInningsTableModel{
		MatchID:    b.MatchID,
		InningsNo:  int64(b.InningsNo),
		PlayerID:   b.PlayerID,
		Team:       b.Team,
		Position:   int64(b.Position),
		Runs:       b.Runs,
		Balls:      b.Balls,
		Fours:      b.Fours,
		Sixes:      b.Sixes,
		StrikeRate: b.StrikeRate,
	}
}

func (m battingInningsTableModel) toDomain() scorecard.BattingInnings {
	return scorecard.BattingInnings{
		MatchID:    m.MatchID,
		InningsNo:  int(m.InningsNo),
		PlayerID:   m.PlayerID,
		Team:       m.Team,
		Position:   int(m.Position),
		Runs:       m.Runs,
		Balls:      m.Balls,
		Fours:      m.Fours,
		Sixes:      m.Sixes,
		StrikeRate: m.StrikeRate,
	}
}

type bowlingSpellTableModel struct {
	MatchID      string  `db:"match_id"`
	InningsNo    int64   `db:"innings_no"`
	PlayerID     string  `db:"player_id"`
	Team         string  `db:"team"`
	Overs        float64 `db:"overs"`
	Balls        int64   `db:"balls"`
	Maidens      int64   `db:"maidens"`
	RunsConceded int64   `db:"runs_conceded"`
	Wickets      int64   `db:"wickets"`
	Economy      float64 `db:"economy"`
}

func newBowlingSpellTableModel(b scorecard.BowlingSpell) bowlingSpellTableModel {
	return bowlingSpellTableModel{
		MatchID:      b.MatchID,
		InningsNo:    int64(b.InningsNo),
		PlayerID:     b.PlayerID,
		Team:         b.Team,
		Overs:        b.Overs,
		Balls:        b.Balls,
		Maidens:      b.Maidens,
		RunsConceded: b.RunsConceded,
		Wickets:      b.Wickets,
		Economy:      b.Economy,
	}
}

func (m bowlingSpellTableModel) toDomain() scorecard.BowlingSpell {
	return scorecard.BowlingSpell{
		MatchID:      m.MatchID,
		InningsNo:    int(m.InningsNo),
		PlayerID:     m.PlayerID,
		Team:         m.Team,
		Overs:        m.Overs,
		Balls:        m.Balls,
		Maidens:      m.Maidens,
		RunsConceded: m.RunsConceded,
		Wickets:      m.Wickets,
		Economy:      m.Economy,
	}
}

type partnershipTableModel struct {
	MatchID   string `db:"match_id"`
	InningsNo int64  `db:"innings_no"`
	Batter1ID string `db:"batter1_id"`
	Batter2ID string `db:"batter2_id"`
	Runs      int64  `db:"runs"`
}

func newPartnershipTableModel(p scorecard.Partnership) partnershipTableModel {
	return partnershipTableModel{
		MatchID:   p.MatchID,
		InningsNo: int64(p.InningsNo),
		Batter1ID: p.Batter1ID,
		Batter2ID: p.Batter2ID,
		Runs:      p.Runs,
	}
}

func (m partnershipTableModel) toDomain() scorecard.Partnership {
	return scorecard.Partnership{
		MatchID:   m.MatchID,
		InningsNo: int(m.InningsNo),
		Batter1ID: m.Batter1ID,
		Batter2ID: m.Batter2ID,
		Runs:      m.Runs,
	}
}
