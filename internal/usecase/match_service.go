package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cricverse/cricstats/internal/domain/match"
	"github.com/cricverse/cricstats/internal/domain/scorecard"
	"github.com/cricverse/cricstats/internal/platform/id"
)

type MatchService struct {
	matchRepo     match.Repository
	scorecardRepo scorecard.Repository
	idGen         id.Generator
}

func NewMatchService(matchRepo match.Repository, scorecardRepo scorecard.Repository, idGen id.Generator) *MatchService {
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	return &MatchService{
		matchRepo:     matchRepo,
		scorecardRepo: scorecardRepo,
		idGen:         idGen,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, m match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	m = trimMatch(m)
	if m.ID == "" {
		generated, err := s.idGen.NewID()
		if err != nil {
			return match.Match{}, fmt.Errorf("generate match id: %w", err)
		}
		m.ID = generated
	}
	if m.Status == "" {
		m.Status = match.StatusUpcoming
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Create(ctx, m); err != nil {
		return match.Match{}, translateStorageError(err, "match="+m.ID)
	}
	return m, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	found, err := s.matchRepo.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, translateStorageError(err, "match="+matchID)
	}
	return found, nil
}

func (s *MatchService) UpdateMatch(ctx context.Context, m match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch")
	defer span.End()

	m = trimMatch(m)
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Update(ctx, m); err != nil {
		return match.Match{}, translateStorageError(err, "match="+m.ID)
	}
	return m, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return translateStorageError(err, "match="+matchID)
	}
	return nil
}

func (s *MatchService) ListMatches(ctx context.Context, limit, offset int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	limit, offset, err := normalizePage(limit, offset)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, translateStorageError(err, "matches")
	}
	return matches, nil
}

// GetScorecard returns every stored batting, bowling and partnership
// row for the match. The match itself must exist.
func (s *MatchService) GetScorecard(ctx context.Context, matchID string) (scorecard.Scorecard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetScorecard")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return scorecard.Scorecard{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if _, err := s.matchRepo.Get(ctx, matchID); err != nil {
		return scorecard.Scorecard{}, translateStorageError(err, "match="+matchID)
	}

	card, err := s.scorecardRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return scorecard.Scorecard{}, translateStorageError(err, "scorecard match="+matchID)
	}
	return card, nil
}

func trimMatch(m match.Match) match.Match {
	m.ID = strings.TrimSpace(m.ID)
	m.Description = strings.TrimSpace(m.Description)
	m.Team1 = strings.TrimSpace(m.Team1)
	m.Team2 = strings.TrimSpace(m.Team2)
	m.VenueID = strings.TrimSpace(m.VenueID)
	m.SeriesID = strings.TrimSpace(m.SeriesID)
	m.Winner = strings.TrimSpace(m.Winner)
	m.TossWinner = strings.TrimSpace(m.TossWinner)
	m.TossDecision = strings.ToLower(strings.TrimSpace(m.TossDecision))
	return m
}
