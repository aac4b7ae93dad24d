package sqldb

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/cricverse/cricstats/internal/domain/match"
	"github.com/cricverse/cricstats/internal/domain/player"
	"github.com/cricverse/cricstats/internal/domain/scorecard"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	"github.com/cricverse/cricstats/internal/infrastructure/storage/storagetest"
)

func seedMatchAndPlayers(t *testing.T, gw *storage.Gateway) {
	t.Helper()
	ctx := context.Background()

	players := NewPlayerRepository(gw)
	for _, p := range []player.Player{
		{ID: "p1", Name: "A", Country: "India"},
		{ID: "p2", Name: "B", Country: "India"},
		{ID: "p3", Name: "C", Country: "Australia"},
	} {
		if err := players.Create(ctx, p); err != nil {
			t.Fatalf("seed player %s: %v", p.ID, err)
		}
	}

	matches := NewMatchRepository(gw)
	if err := matches.Create(ctx, match.Match{
		ID:        "m1",
		Team1:     "India",
		Team2:     "Australia",
		Format:    match.FormatODI,
		Status:    match.StatusCompleted,
		StartTime: time.Date(2024, 2, 4, 8, 30, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("seed match: %v", err)
	}
}

func TestScorecardReplaceAndGet(t *testing.T) {
	gw := storagetest.OpenGateway(t)
	seedMatchAndPlayers(t, gw)
	repo := NewScorecardRepository(gw)
	ctx := context.Background()

	card := scorecard.Scorecard{
		MatchID: "m1",
		Batting: []scorecard.BattingInnings{
			{MatchID: "m1", InningsNo: 1, PlayerID: "p1", Team: "India", Position: 1, Runs: 58, Balls: 49},
			{MatchID: "m1", InningsNo: 1, PlayerID: "p2", Team: "India", Position: 2, Runs: 112, Balls: 98},
		},
		Bowling: []scorecard.BowlingSpell{
			{MatchID: "m1", InningsNo: 1, PlayerID: "p3", Team: "Australia", Overs: 10, Balls: 60, RunsConceded: 55, Wickets: 2},
		},
		Partnerships: []scorecard.Partnership{
			{MatchID: "m1", InningsNo: 1, Batter1ID: "p1", Batter2ID: "p2", Runs: 170},
		},
	}
	if err := repo.Replace(ctx, card); err != nil {
		t.Fatalf("replace scorecard: %v", err)
	}

	got, err := repo.GetByMatch(ctx, "m1")
	if err != nil {
		t.Fatalf("get scorecard: %v", err)
	}
	if len(got.Batting) != 2 || len(got.Bowling) != 1 || len(got.Partnerships) != 1 {
		t.Fatalf("unexpected scorecard shape: %+v", got)
	}
	if got.Batting[0].Position != 1 || got.Batting[1].Runs != 112 {
		t.Fatalf("batting rows out of order or wrong: %+v", got.Batting)
	}

	// Re-ingestion replaces, never accumulates.
	card.Batting = card.Batting[:1]
	if err := repo.Replace(ctx, card); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	got, err = repo.GetByMatch(ctx, "m1")
	if err != nil {
		t.Fatalf("get after second replace: %v", err)
	}
	if len(got.Batting) != 1 {
		t.Fatalf("replace accumulated rows: %d", len(got.Batting))
	}
}

func TestScorecardReplaceIsAtomic(t *testing.T) {
	gw := storagetest.OpenGateway(t)
	seedMatchAndPlayers(t, gw)
	repo := NewScorecardRepository(gw)
	ctx := context.Background()

	good := scorecard.Scorecard{
		MatchID: "m1",
		Batting: []scorecard.BattingInnings{
			{MatchID: "m1", InningsNo: 1, PlayerID: "p1", Team: "India", Position: 1, Runs: 58},
		},
	}
	if err := repo.Replace(ctx, good); err != nil {
		t.Fatalf("first replace: %v", err)
	}

	// The second row references a player that does not exist, so the
	// foreign key rejects it. The whole scorecard must roll back and
	// the previous rows must survive.
	bad := scorecard.Scorecard{
		MatchID: "m1",
		Batting: []scorecard.BattingInnings{
			{MatchID: "m1", InningsNo: 1, PlayerID: "p2", Team: "India", Position: 2, Runs: 10},
			{MatchID: "m1", InningsNo: 1, PlayerID: "ghost", Team: "India", Position: 3, Runs: 20},
		},
	}
	err := repo.Replace(ctx, bad)
	if !errors.Is(err, storage.ErrStatement) {
		t.Fatalf("expected ErrStatement, got %v", err)
	}

	got, err := repo.GetByMatch(ctx, "m1")
	if err != nil {
		t.Fatalf("get after failed replace: %v", err)
	}
	if len(got.Batting) != 1 || got.Batting[0].PlayerID != "p1" {
		t.Fatalf("failed replace left partial rows: %+v", got.Batting)
	}
}

func TestBootstrapSeedIsIdempotent(t *testing.T) {
	gw := storagetest.OpenGateway(t)
	ctx := context.Background()

	if err := BootstrapSeed(ctx, gw); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := BootstrapSeed(ctx, gw); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var players, matches int
	if err := gw.Get(ctx, &players, "SELECT COUNT(*) FROM players"); err != nil {
		t.Fatalf("count players: %v", err)
	}
	if err := gw.Get(ctx, &matches, "SELECT COUNT(*) FROM matches"); err != nil {
		t.Fatalf("count matches: %v", err)
	}
	if players != 8 || matches != 6 {
		t.Fatalf("unexpected seed volume: %d players, %d matches", players, matches)
	}
}
