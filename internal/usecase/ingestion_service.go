package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cricverse/cricstats/internal/domain/match"
	"github.com/cricverse/cricstats/internal/domain/player"
	"github.com/cricverse/cricstats/internal/domain/scorecard"
	"github.com/cricverse/cricstats/internal/domain/series"
	"github.com/cricverse/cricstats/internal/domain/venue"
	"github.com/cricverse/cricstats/internal/platform/logging"
)

const defaultIngestionThrottle = 250 * time.Millisecond

// IngestionReport summarizes one ingestion run.
type IngestionReport struct {
	Fetched int `json:"fetched"`
	Stored  int `json:"stored"`
	Skipped int `json:"skipped"`
}

// IngestionService pulls provider data into storage. Runs are
// serialized: a second run while one is in flight is rejected rather
// than queued, and provider fetches are throttled to stay inside the
// upstream rate limit.
type IngestionService struct {
	provider      StatsProvider
	playerRepo    player.Repository
	matchRepo     match.Repository
	venueRepo     venue.Repository
	seriesRepo    series.Repository
	scorecardRepo scorecard.Repository
	logger        *logging.Logger
	throttle      time.Duration

	mu sync.Mutex
}

func NewIngestionService(
	provider StatsProvider,
	playerRepo player.Repository,
	matchRepo match.Repository,
	venueRepo venue.Repository,
	seriesRepo series.Repository,
	scorecardRepo scorecard.Repository,
	logger *logging.Logger,
	throttle time.Duration,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	if throttle <= 0 {
		throttle = defaultIngestionThrottle
	}
	return &IngestionService{
		provider:      provider,
		playerRepo:    playerRepo,
		matchRepo:     matchRepo,
		venueRepo:     venueRepo,
		seriesRepo:    seriesRepo,
		scorecardRepo: scorecardRepo,
		logger:        logger,
		throttle:      throttle,
	}
}

// IngestTrendingPlayers fetches the trending list, hydrates each
// player's career sequentially and upserts the results. Malformed
// provider records are counted and skipped, never failing the run.
func (s *IngestionService) IngestTrendingPlayers(ctx context.Context) (IngestionReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestTrendingPlayers")
	defer span.End()

	if !s.mu.TryLock() {
		return IngestionReport{}, fmt.Errorf("%w: another ingestion run is in progress", ErrDependencyUnavailable)
	}
	defer s.mu.Unlock()

	refs, err := s.provider.TrendingPlayers(ctx)
	if err != nil {
		return IngestionReport{}, fmt.Errorf("fetch trending players: %w", err)
	}

	report := IngestionReport{Fetched: len(refs)}
	for i, ref := range refs {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				return report, err
			}
		}

		career, err := s.provider.PlayerCareer(ctx, ref.ExternalID)
		if err != nil {
			if errors.Is(err, ErrMalformedResponse) {
				report.Skipped++
				s.logger.WarnContext(ctx, "skipping malformed player record", "player_id", ref.ExternalID, "error", err)
				continue
			}
			return report, fmt.Errorf("fetch player career id=%s: %w", ref.ExternalID, err)
		}

		if err := s.playerRepo.Upsert(ctx, career); err != nil {
			return report, translateStorageError(err, "player="+career.ID)
		}
		report.Stored++
	}

	s.logger.InfoContext(ctx, "trending players ingested",
		"fetched", report.Fetched, "stored", report.Stored, "skipped", report.Skipped)
	return report, nil
}

// IngestRecentMatches upserts the provider's recent fixtures together
// with their venues and series.
func (s *IngestionService) IngestRecentMatches(ctx context.Context) (IngestionReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestRecentMatches")
	defer span.End()

	if !s.mu.TryLock() {
		return IngestionReport{}, fmt.Errorf("%w: another ingestion run is in progress", ErrDependencyUnavailable)
	}
	defer s.mu.Unlock()

	items, skipped, err := s.provider.RecentMatches(ctx)
	if err != nil {
		return IngestionReport{}, fmt.Errorf("fetch recent matches: %w", err)
	}

	report := IngestionReport{Fetched: len(items) + skipped, Skipped: skipped}
	for _, item := range items {
		if item.Venue != nil {
			if err := s.venueRepo.Upsert(ctx, *item.Venue); err != nil {
				return report, translateStorageError(err, "venue="+item.Venue.ID)
			}
		}
		if item.Series != nil {
			if err := s.seriesRepo.Upsert(ctx, *item.Series); err != nil {
				return report, translateStorageError(err, "series="+item.Series.ID)
			}
		}
		if err := s.matchRepo.Upsert(ctx, item.Match); err != nil {
			return report, translateStorageError(err, "match="+item.Match.ID)
		}
		report.Stored++
	}

	s.logger.InfoContext(ctx, "recent matches ingested",
		"fetched", report.Fetched, "stored", report.Stored, "skipped", report.Skipped)
	return report, nil
}

// IngestScorecard replaces the stored scorecard for one match. The
// whole scorecard lands atomically: batting, bowling and partnership
// rows all commit together or not at all.
func (s *IngestionService) IngestScorecard(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestScorecard")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if _, err := s.matchRepo.Get(ctx, matchID); err != nil {
		return translateStorageError(err, "match="+matchID)
	}

	return s.refreshScorecard(ctx, matchID)
}

func (s *IngestionService) refreshScorecard(ctx context.Context, matchID string) error {
	card, err := s.provider.MatchScorecard(ctx, matchID)
	if err != nil {
		return fmt.Errorf("fetch scorecard match=%s: %w", matchID, err)
	}
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// Scorecard rows reference players by id; stub out any the squad
	// ingestion has not seen yet so the foreign keys hold.
	for _, id := range scorecardPlayerIDs(card) {
		if err := s.playerRepo.EnsureStub(ctx, id, "", ""); err != nil {
			return translateStorageError(err, "player stub="+id)
		}
	}

	if err := s.scorecardRepo.Replace(ctx, card); err != nil {
		return translateStorageError(err, "scorecard match="+matchID)
	}
	return nil
}

// IngestRecentScorecards refreshes scorecards for the most recently
// completed matches, one provider fetch at a time.
func (s *IngestionService) IngestRecentScorecards(ctx context.Context, limit int) (IngestionReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestRecentScorecards")
	defer span.End()

	if !s.mu.TryLock() {
		return IngestionReport{}, fmt.Errorf("%w: another ingestion run is in progress", ErrDependencyUnavailable)
	}
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 10
	}

	matches, err := s.matchRepo.ListRecentCompleted(ctx, limit)
	if err != nil {
		return IngestionReport{}, translateStorageError(err, "recent completed matches")
	}

	report := IngestionReport{Fetched: len(matches)}
	for i, m := range matches {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				return report, err
			}
		}

		if err := s.refreshScorecard(ctx, m.ID); err != nil {
			if errors.Is(err, ErrMalformedResponse) {
				report.Skipped++
				s.logger.WarnContext(ctx, "skipping malformed scorecard", "match_id", m.ID, "error", err)
				continue
			}
			return report, err
		}
		report.Stored++
	}

	s.logger.InfoContext(ctx, "recent scorecards ingested",
		"fetched", report.Fetched, "stored", report.Stored, "skipped", report.Skipped)
	return report, nil
}

func (s *IngestionService) pause(ctx context.Context) error {
	timer := time.NewTimer(s.throttle)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func scorecardPlayerIDs(card scorecard.Scorecard) []string {
	seen := make(map[string]struct{}, len(card.Batting)+len(card.Bowling))
	out := make([]string, 0, len(seen))
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, row := range card.Batting {
		add(row.PlayerID)
	}
	for _, row := range card.Bowling {
		add(row.PlayerID)
	}
	for _, row := range card.Partnerships {
		add(row.Batter1ID)
		add(row.Batter2ID)
	}
	return out
}
