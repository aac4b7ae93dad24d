package usecase

import (
	"context"

	"github.com/cricverse/cricstats/internal/domain/match"
	"github.com/cricverse/cricstats/internal/domain/player"
	"github.com/cricverse/cricstats/internal/domain/scorecard"
	"github.com/cricverse/cricstats/internal/domain/series"
	"github.com/cricverse/cricstats/internal/domain/venue"
)

// ExternalPlayerRef is a lightweight pointer into the provider's player
// namespace. Career details need a follow-up fetch.
type ExternalPlayerRef struct {
	ExternalID string
	Name       string
	Country    string
}

// ExternalMatch is one normalized fixture together with the venue and
// series records the provider attached to it.
type ExternalMatch struct {
	Match  match.Match
	Venue  *venue.Venue
	Series *series.Series
}

// StatsProvider is the upstream cricket data source. Implementations
// return fully normalized records and surface ErrMalformedResponse when
// the upstream payload is missing required identity fields.
type StatsProvider interface {
	TrendingPlayers(ctx context.Context) ([]ExternalPlayerRef, error)
	PlayerCareer(ctx context.Context, externalID string) (player.Player, error)
	RecentMatches(ctx context.Context) ([]ExternalMatch, int, error)
	MatchScorecard(ctx context.Context, externalID string) (scorecard.Scorecard, error)
}
