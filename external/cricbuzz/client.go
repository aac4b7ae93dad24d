// Package cricbuzz fetches cricket data from the Cricbuzz RapidAPI
// endpoints and normalizes the payloads into domain records.
package cricbuzz

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/cricverse/cricstats/internal/domain/player"
	"github.com/cricverse/cricstats/internal/domain/scorecard"
	"github.com/cricverse/cricstats/internal/platform/logging"
	"github.com/cricverse/cricstats/internal/platform/resilience"
	"github.com/cricverse/cricstats/internal/usecase"
)

const (
	defaultBaseURL = "https://cricbuzz-cricket.p.rapidapi.com"
	defaultAPIHost = "cricbuzz-cricket.p.rapidapi.com"

	trendingPlayersPath = "/stats/v1/player/trending"
	recentMatchesPath   = "/matches/v1/recent"

	maxResponseBytes = 6 << 20
	maxRetryAfter    = 30 * time.Second
)

var errCricbuzzTransient = crerr.New("cricbuzz transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	APIHost        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	apiHost        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiHost := strings.TrimSpace(cfg.APIHost)
	if apiHost == "" {
		apiHost = defaultAPIHost
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		apiHost:        apiHost,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// TrendingPlayers lists the players currently surfaced by the provider.
// Entries missing an id or name are dropped.
func (c *Client) TrendingPlayers(ctx context.Context) ([]usecase.ExternalPlayerRef, error) {
	var envelope trendingPlayersEnvelope
	if err := c.doJSON(ctx, trendingPlayersPath, &envelope); err != nil {
		return nil, fmt.Errorf("fetch trending players: %w", err)
	}

	out := make([]usecase.ExternalPlayerRef, 0, len(envelope.Player))
	for _, item := range envelope.Player {
		id := strings.TrimSpace(item.ID.String())
		name := strings.TrimSpace(item.Name)
		if id == "" || name == "" {
			continue
		}
		out = append(out, usecase.ExternalPlayerRef{
			ExternalID: id,
			Name:       name,
			Country:    strings.TrimSpace(item.TeamName),
		})
	}
	return out, nil
}

// PlayerCareer fetches the player profile plus both career grids and
// returns the normalized domain record.
func (c *Client) PlayerCareer(ctx context.Context, externalID string) (player.Player, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return player.Player{}, fmt.Errorf("player external id is required")
	}

	var profile playerProfile
	if err := c.doJSON(ctx, "/stats/v1/player/"+externalID, &profile); err != nil {
		return player.Player{}, fmt.Errorf("fetch player profile id=%s: %w", externalID, err)
	}

	// The career grids are optional endpoints. A profile without them
	// still normalizes, with zero aggregates.
	var batting statsGrid
	if err := c.doJSON(ctx, "/stats/v1/player/"+externalID+"/batting", &batting); err != nil {
		if ctx.Err() != nil {
			return player.Player{}, ctx.Err()
		}
		c.logger.WarnContext(ctx, "fetch batting career failed, defaulting aggregates", "player_id", externalID, "error", err)
	}
	var bowling statsGrid
	if err := c.doJSON(ctx, "/stats/v1/player/"+externalID+"/bowling", &bowling); err != nil {
		if ctx.Err() != nil {
			return player.Player{}, ctx.Err()
		}
		c.logger.WarnContext(ctx, "fetch bowling career failed, defaulting aggregates", "player_id", externalID, "error", err)
	}

	return normalizePlayer(profile, batting, bowling)
}

// RecentMatches returns the normalized recent fixtures plus the count
// of records skipped for missing identity fields.
func (c *Client) RecentMatches(ctx context.Context) ([]usecase.ExternalMatch, int, error) {
	var envelope recentMatchesEnvelope
	if err := c.doJSON(ctx, recentMatchesPath, &envelope); err != nil {
		return nil, 0, fmt.Errorf("fetch recent matches: %w", err)
	}

	matches, skipped := normalizeRecentMatches(envelope)
	if skipped > 0 {
		c.logger.WarnContext(ctx, "skipped malformed match records", "skipped", skipped, "kept", len(matches))
	}
	return matches, skipped, nil
}

// MatchScorecard fetches and normalizes the full scorecard for one match.
func (c *Client) MatchScorecard(ctx context.Context, externalID string) (scorecard.Scorecard, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return scorecard.Scorecard{}, fmt.Errorf("match external id is required")
	}

	var envelope scorecardEnvelope
	if err := c.doJSON(ctx, "/mcenter/v1/"+externalID+"/scard", &envelope); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("fetch scorecard match_id=%s: %w", externalID, err)
	}

	return normalizeScorecard(externalID, envelope)
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "cricbuzz circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: cricket data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path

	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCricbuzzCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode provider payload: %v", usecase.ErrMalformedResponse, err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("x-rapidapi-key", c.apiKey)
		req.Header.Set("x-rapidapi-host", c.apiHost)

		backoff := time.Duration(attempt+1) * time.Second

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errCricbuzzTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errCricbuzzTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errCricbuzzTransient, resp.StatusCode, abbreviateBody(raw))
				if wait := retryAfter(resp.Header); wait > backoff {
					backoff = wait
				}
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "cricbuzz request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// retryAfter honors the provider's Retry-After header on throttled
// responses, capped so a misbehaving header cannot stall ingestion.
func retryAfter(header http.Header) time.Duration {
	raw := strings.TrimSpace(header.Get("Retry-After"))
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	wait := time.Duration(seconds) * time.Second
	if wait > maxRetryAfter {
		return maxRetryAfter
	}
	return wait
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" || key == "" {
		return value
	}
	return strings.ReplaceAll(value, key, "REDACTED")
}

func isCricbuzzCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errCricbuzzTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusRequestTimeout ||
		code == http.StatusTooManyRequests ||
		code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
