package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cricverse/cricstats/internal/domain/player"
	"github.com/cricverse/cricstats/internal/platform/id"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type PlayerService struct {
	playerRepo player.Repository
	idGen      id.Generator
}

func NewPlayerService(playerRepo player.Repository, idGen id.Generator) *PlayerService {
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
	}
}

// CreatePlayer inserts a new player. A missing id is generated; a
// conflicting id or (name, country) pair surfaces ErrDuplicateKey.
func (s *PlayerService) CreatePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	p = trimPlayer(p)
	if p.ID == "" {
		generated, err := s.idGen.NewID()
		if err != nil {
			return player.Player{}, fmt.Errorf("generate player id: %w", err)
		}
		p.ID = generated
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if p.Role == "" {
		p.Role = player.InferRole(p.TotalRuns, p.TotalWickets)
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, translateStorageError(err, "player="+p.ID)
	}
	return p, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	found, err := s.playerRepo.Get(ctx, playerID)
	if err != nil {
		return player.Player{}, translateStorageError(err, "player="+playerID)
	}
	return found, nil
}

// UpdatePlayer overwrites an existing player in a single statement.
// Updating a missing player surfaces ErrNotFound and changes nothing.
func (s *PlayerService) UpdatePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	p = trimPlayer(p)
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, translateStorageError(err, "player="+p.ID)
	}
	return p, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return translateStorageError(err, "player="+playerID)
	}
	return nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, limit, offset int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	limit, offset, err := normalizePage(limit, offset)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, translateStorageError(err, "players")
	}
	return players, nil
}

func trimPlayer(p player.Player) player.Player {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Country = strings.TrimSpace(p.Country)
	p.BattingStyle = strings.TrimSpace(p.BattingStyle)
	p.BowlingStyle = strings.TrimSpace(p.BowlingStyle)
	return p
}

func normalizePage(limit, offset int) (int, int, error) {
	if limit < 0 || offset < 0 {
		return 0, 0, fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidInput)
	}
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, offset, nil
}
