package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cricverse/cricstats/internal/domain/match"
	"github.com/cricverse/cricstats/internal/domain/player"
	"github.com/cricverse/cricstats/internal/domain/scorecard"
	"github.com/cricverse/cricstats/internal/domain/series"
	"github.com/cricverse/cricstats/internal/domain/venue"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	"github.com/cricverse/cricstats/internal/platform/logging"
)

type stubProvider struct {
	refs       []ExternalPlayerRef
	careers    map[string]player.Player
	matches    []ExternalMatch
	skipped    int
	scorecards map[string]scorecard.Scorecard
}

func (p *stubProvider) TrendingPlayers(context.Context) ([]ExternalPlayerRef, error) {
	return p.refs, nil
}

func (p *stubProvider) PlayerCareer(_ context.Context, externalID string) (player.Player, error) {
	career, ok := p.careers[externalID]
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player profile is missing id", ErrMalformedResponse)
	}
	return career, nil
}

func (p *stubProvider) RecentMatches(context.Context) ([]ExternalMatch, int, error) {
	return p.matches, p.skipped, nil
}

func (p *stubProvider) MatchScorecard(_ context.Context, externalID string) (scorecard.Scorecard, error) {
	card, ok := p.scorecards[externalID]
	if !ok {
		return scorecard.Scorecard{}, fmt.Errorf("%w: scorecard has no innings", ErrMalformedResponse)
	}
	return card, nil
}

type stubMatchRepo struct {
	matches map[string]match.Match
	recent  []match.Match
	upserts int
}

func newStubMatchRepo() *stubMatchRepo {
	return &stubMatchRepo{matches: make(map[string]match.Match)}
}

func (r *stubMatchRepo) Create(_ context.Context, m match.Match) error {
	if _, exists := r.matches[m.ID]; exists {
		return fmt.Errorf("%w: matches", storage.ErrDuplicateKey)
	}
	r.matches[m.ID] = m
	return nil
}

func (r *stubMatchRepo) Get(_ context.Context, matchID string) (match.Match, error) {
	m, ok := r.matches[matchID]
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match", storage.ErrNotFound)
	}
	return m, nil
}

func (r *stubMatchRepo) Update(_ context.Context, m match.Match) error {
	if _, ok := r.matches[m.ID]; !ok {
		return fmt.Errorf("%w: match", storage.ErrNotFound)
	}
	r.matches[m.ID] = m
	return nil
}

func (r *stubMatchRepo) Delete(_ context.Context, matchID string) error {
	if _, ok := r.matches[matchID]; !ok {
		return fmt.Errorf("%w: match", storage.ErrNotFound)
	}
	delete(r.matches, matchID)
	return nil
}

func (r *stubMatchRepo) List(_ context.Context, limit, offset int) ([]match.Match, error) {
	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, m)
	}
	return out, nil
}

func (r *stubMatchRepo) Upsert(_ context.Context, m match.Match) error {
	r.upserts++
	r.matches[m.ID] = m
	return nil
}

func (r *stubMatchRepo) ListRecentCompleted(_ context.Context, limit int) ([]match.Match, error) {
	if limit < len(r.recent) {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

type stubVenueRepo struct {
	venues map[string]venue.Venue
}

func (r *stubVenueRepo) Upsert(_ context.Context, v venue.Venue) error {
	if r.venues == nil {
		r.venues = make(map[string]venue.Venue)
	}
	r.venues[v.ID] = v
	return nil
}

func (r *stubVenueRepo) Get(_ context.Context, venueID string) (venue.Venue, error) {
	v, ok := r.venues[venueID]
	if !ok {
		return venue.Venue{}, fmt.Errorf("%w: venue", storage.ErrNotFound)
	}
	return v, nil
}

type stubSeriesRepo struct {
	series map[string]series.Series
}

func (r *stubSeriesRepo) Upsert(_ context.Context, s series.Series) error {
	if r.series == nil {
		r.series = make(map[string]series.Series)
	}
	r.series[s.ID] = s
	return nil
}

func (r *stubSeriesRepo) Get(_ context.Context, seriesID string) (series.Series, error) {
	s, ok := r.series[seriesID]
	if !ok {
		return series.Series{}, fmt.Errorf("%w: series", storage.ErrNotFound)
	}
	return s, nil
}

type stubScorecardRepo struct {
	cards    map[string]scorecard.Scorecard
	replaces int
}

func (r *stubScorecardRepo) Replace(_ context.Context, card scorecard.Scorecard) error {
	if r.cards == nil {
		r.cards = make(map[string]scorecard.Scorecard)
	}
	r.replaces++
	r.cards[card.MatchID] = card
	return nil
}

func (r *stubScorecardRepo) GetByMatch(_ context.Context, matchID string) (scorecard.Scorecard, error) {
	return r.cards[matchID], nil
}

func newIngestionFixture(provider *stubProvider) (*IngestionService, *stubPlayerRepo, *stubMatchRepo, *stubVenueRepo, *stubSeriesRepo, *stubScorecardRepo) {
	players := newStubPlayerRepo()
	matches := newStubMatchRepo()
	venues := &stubVenueRepo{}
	seriesRepo := &stubSeriesRepo{}
	cards := &stubScorecardRepo{}
	svc := NewIngestionService(provider, players, matches, venues, seriesRepo, cards, logging.NewNop(), time.Millisecond)
	return svc, players, matches, venues, seriesRepo, cards
}

func TestIngestTrendingPlayersSkipsMalformed(t *testing.T) {
	provider := &stubProvider{
		refs: []ExternalPlayerRef{
			{ExternalID: "1413", Name: "Virat Kohli", Country: "India"},
			{ExternalID: "broken", Name: "Broken Record"},
			{ExternalID: "576", Name: "Rohit Sharma", Country: "India"},
		},
		careers: map[string]player.Player{
			"1413": {ID: "1413", Name: "Virat Kohli", Country: "India", TotalRuns: 13906},
			"576":  {ID: "576", Name: "Rohit Sharma", Country: "India", TotalRuns: 10866},
		},
	}
	svc, players, _, _, _, _ := newIngestionFixture(provider)

	report, err := svc.IngestTrendingPlayers(context.Background())
	if err != nil {
		t.Fatalf("ingest trending players: %v", err)
	}
	if report.Fetched != 3 || report.Stored != 2 || report.Skipped != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(players.players) != 2 {
		t.Fatalf("expected 2 players stored, got %d", len(players.players))
	}
}

func TestIngestRecentMatchesUpsertsRelations(t *testing.T) {
	provider := &stubProvider{
		matches: []ExternalMatch{
			{
				Match:  match.Match{ID: "89001", Team1: "India", Team2: "Australia", VenueID: "31", SeriesID: "7601", Status: match.StatusCompleted},
				Venue:  &venue.Venue{ID: "31", Name: "Melbourne Cricket Ground"},
				Series: &series.Series{ID: "7601", Name: "India tour of Australia"},
			},
			{
				Match: match.Match{ID: "89002", Team1: "England", Team2: "Pakistan", Status: match.StatusUpcoming},
			},
		},
		skipped: 1,
	}
	svc, _, matches, venues, seriesRepo, _ := newIngestionFixture(provider)

	report, err := svc.IngestRecentMatches(context.Background())
	if err != nil {
		t.Fatalf("ingest recent matches: %v", err)
	}
	if report.Fetched != 3 || report.Stored != 2 || report.Skipped != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if matches.upserts != 2 {
		t.Fatalf("expected 2 match upserts, got %d", matches.upserts)
	}
	if _, ok := venues.venues["31"]; !ok {
		t.Fatalf("venue not upserted")
	}
	if _, ok := seriesRepo.series["7601"]; !ok {
		t.Fatalf("series not upserted")
	}
}

func TestIngestScorecardStubsPlayersAndReplaces(t *testing.T) {
	provider := &stubProvider{
		scorecards: map[string]scorecard.Scorecard{
			"89001": {
				MatchID: "89001",
				Batting: []scorecard.BattingInnings{
					{MatchID: "89001", InningsNo: 1, PlayerID: "1413", Runs: 112},
				},
				Bowling: []scorecard.BowlingSpell{
					{MatchID: "89001", InningsNo: 1, PlayerID: "8095", Wickets: 2},
				},
			},
		},
	}
	svc, players, matches, _, _, cards := newIngestionFixture(provider)
	matches.matches["89001"] = match.Match{ID: "89001", Team1: "India", Team2: "Australia"}

	if err := svc.IngestScorecard(context.Background(), "89001"); err != nil {
		t.Fatalf("ingest scorecard: %v", err)
	}
	if cards.replaces != 1 {
		t.Fatalf("expected one replace, got %d", cards.replaces)
	}
	if len(players.stubbed) != 2 {
		t.Fatalf("expected 2 player stubs, got %v", players.stubbed)
	}
}

func TestIngestScorecardMissingMatch(t *testing.T) {
	svc, _, _, _, _, _ := newIngestionFixture(&stubProvider{})

	err := svc.IngestScorecard(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIngestRecentScorecardsSkipsMalformed(t *testing.T) {
	provider := &stubProvider{
		scorecards: map[string]scorecard.Scorecard{
			"89001": {
				MatchID: "89001",
				Batting: []scorecard.BattingInnings{
					{MatchID: "89001", InningsNo: 1, PlayerID: "1413", Runs: 112},
				},
			},
		},
	}
	svc, _, matches, _, _, cards := newIngestionFixture(provider)
	matches.matches["89001"] = match.Match{ID: "89001", Team1: "India", Team2: "Australia"}
	matches.matches["89002"] = match.Match{ID: "89002", Team1: "England", Team2: "Pakistan"}
	matches.recent = []match.Match{matches.matches["89001"], matches.matches["89002"]}

	report, err := svc.IngestRecentScorecards(context.Background(), 10)
	if err != nil {
		t.Fatalf("ingest recent scorecards: %v", err)
	}
	if report.Fetched != 2 || report.Stored != 1 || report.Skipped != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if cards.replaces != 1 {
		t.Fatalf("expected one replace, got %d", cards.replaces)
	}
}
