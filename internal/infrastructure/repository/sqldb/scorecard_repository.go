package sqldb

import (
	"context"
	"fmt"

	"github.com/cricverse/cricstats/internal/domain/scorecard"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	qb "github.com/cricverse/cricstats/internal/platform/querybuilder"
)

type ScorecardRepository struct {
	gw *storage.Gateway
}

func NewScorecardRepository(gw *storage.Gateway) *ScorecardRepository {
	return &ScorecardRepository{gw: gw}
}

// Replace swaps every stored row for the scorecard's match inside one
// transaction. A failing insert rolls the whole scorecard back, so
// re-ingestion can never leave a match half-written.
func (r *ScorecardRepository) Replace(ctx context.Context, card scorecard.Scorecard) error {
	return r.gw.WithTx(ctx, func(tx *storage.Tx) error {
		for _, table := range []string{"partnerships", "bowling_spells", "batting_innings"} {
			query, args, err := qb.DeleteFrom(table).
				Where(qb.Eq("match_id", card.MatchID)).
				ToSQL()
			if err != nil {
				return fmt.Errorf("build clear %s query: %w", table, err)
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for _, b := range card.Batting {
			query, args, err := qb.InsertModel("batting_innings", newBattingInningsTableModel(b), "")
			if err != nil {
				return fmt.Errorf("build insert batting row query: %w", err)
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("insert batting row: %w", err)
			}
		}

		for _, b := range card.Bowling {
			query, args, err := qb.InsertModel("bowling_spells", newBowlingSpellTableModel(b), "")
			if err != nil {
				return fmt.Errorf("build insert bowling row query: %w", err)
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("insert bowling row: %w", err)
			}
		}

		for _, p := range card.Partnerships {
			query, args, err := qb.InsertModel("partnerships", newPartnershipTableModel(p), "ON CONFLICT DO NOTHING")
			if err != nil {
				return fmt.Errorf("build insert partnership query: %w", err)
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("insert partnership: %w", err)
			}
		}

		return nil
	})
}

func (r *ScorecardRepository) GetByMatch(ctx context.Context, matchID string) (scorecard.Scorecard, error) {
	card := scorecard.Scorecard{MatchID: matchID}

	battingQuery, battingArgs, err := qb.Select(
		"match_id", "innings_no", "player_id", "team", "position",
		"runs", "balls", "fours", "sixes", "strike_rate",
	).From("batting_innings").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("innings_no", "position").
		ToSQL()
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("build select batting rows query: %w", err)
	}

	var battingRows []battingInningsTableModel
	if err := r.gw.Select(ctx, &battingRows, battingQuery, battingArgs...); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("select batting rows: %w", err)
	}
	for _, row := range battingRows {
		card.Batting = append(card.Batting, row.toDomain())
	}

	bowlingQuery, bowlingArgs, err := qb.Select(
		"match_id", "innings_no", "player_id", "team", "overs",
		"balls", "maidens", "runs_conceded", "wickets", "economy",
	).From("bowling_spells").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("innings_no", "player_id").
		ToSQL()
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("build select bowling rows query: %w", err)
	}

	var bowlingRows []bowlingSpellTableModel
	if err := r.gw.Select(ctx, &bowlingRows, bowlingQuery, bowlingArgs...); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("select bowling rows: %w", err)
	}
	for _, row := range bowlingRows {
		card.Bowling = append(card.Bowling, row.toDomain())
	}

	partnershipQuery, partnershipArgs, err := qb.Select(
		"match_id", "innings_no", "batter1_id", "batter2_id", "runs",
	).From("partnerships").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("innings_no", "runs DESC").
		ToSQL()
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("build select partnerships query: %w", err)
	}

	var partnershipRows []partnershipTableModel
	if err := r.gw.Select(ctx, &partnershipRows, partnershipQuery, partnershipArgs...); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("select partnerships: %w", err)
	}
	for _, row := range partnershipRows {
		card.Partnerships = append(card.Partnerships, row.toDomain())
	}

	return card, nil
}
