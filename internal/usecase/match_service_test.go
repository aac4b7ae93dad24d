package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/cricverse/cricstats/internal/domain/match"
	"github.com/cricverse/cricstats/internal/domain/scorecard"
)

func TestMatchServiceCreateGeneratesIDAndDefaultsStatus(t *testing.T) {
	repo := newStubMatchRepo()
	svc := NewMatchService(repo, &stubScorecardRepo{}, nil)

	created, err := svc.CreateMatch(context.Background(), match.Match{
		Team1:  "India",
		Team2:  "Australia",
		Format: match.FormatODI,
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Status != match.StatusUpcoming {
		t.Fatalf("expected default status upcoming, got %q", created.Status)
	}
	if _, ok := repo.matches[created.ID]; !ok {
		t.Fatalf("match not stored")
	}
}

func TestMatchServiceCreateInvalid(t *testing.T) {
	svc := NewMatchService(newStubMatchRepo(), &stubScorecardRepo{}, nil)

	_, err := svc.CreateMatch(context.Background(), match.Match{Team1: "India"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchServiceCreateDuplicate(t *testing.T) {
	repo := newStubMatchRepo()
	svc := NewMatchService(repo, &stubScorecardRepo{}, nil)
	ctx := context.Background()

	if _, err := svc.CreateMatch(ctx, match.Match{ID: "m1", Team1: "India", Team2: "Australia"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateMatch(ctx, match.Match{ID: "m1", Team1: "England", Team2: "Pakistan"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestMatchServiceUpdateMissing(t *testing.T) {
	svc := NewMatchService(newStubMatchRepo(), &stubScorecardRepo{}, nil)

	_, err := svc.UpdateMatch(context.Background(), match.Match{ID: "ghost", Team1: "A", Team2: "B"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchServiceDeleteBlankID(t *testing.T) {
	svc := NewMatchService(newStubMatchRepo(), &stubScorecardRepo{}, nil)

	if err := svc.DeleteMatch(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}

func TestMatchServiceGetScorecard(t *testing.T) {
	repo := newStubMatchRepo()
	cards := &stubScorecardRepo{}
	svc := NewMatchService(repo, cards, nil)
	ctx := context.Background()

	repo.matches["89001"] = match.Match{ID: "89001", Team1: "India", Team2: "Australia"}
	cards.cards = map[string]scorecard.Scorecard{
		"89001": {
			MatchID: "89001",
			Batting: []scorecard.BattingInnings{
				{MatchID: "89001", InningsNo: 1, PlayerID: "1413", Runs: 112},
			},
		},
	}

	card, err := svc.GetScorecard(ctx, "89001")
	if err != nil {
		t.Fatalf("get scorecard: %v", err)
	}
	if len(card.Batting) != 1 {
		t.Fatalf("expected 1 batting innings, got %d", len(card.Batting))
	}

	if _, err := svc.GetScorecard(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}
}
