package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cricverse/cricstats/external/cricbuzz"
	"github.com/cricverse/cricstats/internal/config"
	"github.com/cricverse/cricstats/internal/infrastructure/repository/sqldb"
	"github.com/cricverse/cricstats/internal/infrastructure/storage"
	"github.com/cricverse/cricstats/internal/interfaces/httpapi"
	"github.com/cricverse/cricstats/internal/platform/cache"
	idgen "github.com/cricverse/cricstats/internal/platform/id"
	"github.com/cricverse/cricstats/internal/platform/logging"
	"github.com/cricverse/cricstats/internal/platform/resilience"
	"github.com/cricverse/cricstats/internal/usecase"
)

// NewHTTPServer wires the storage gateway, repositories, services and
// HTTP router into a ready-to-run server. The returned cleanup closes
// the database pool.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	gateway, err := storage.Open(ctx, storage.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DatabaseDSN(),
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open storage gateway: %w", err)
	}

	if cfg.SeedDemoData {
		if err := sqldb.BootstrapSeed(ctx, gateway); err != nil {
			_ = gateway.Close()
			return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	playerRepo := sqldb.NewPlayerRepository(gateway)
	matchRepo := sqldb.NewMatchRepository(gateway)
	venueRepo := sqldb.NewVenueRepository(gateway)
	seriesRepo := sqldb.NewSeriesRepository(gateway)
	scorecardRepo := sqldb.NewScorecardRepository(gateway)

	provider := cricbuzz.NewClient(cricbuzz.ClientConfig{
		BaseURL:    cfg.CricbuzzBaseURL,
		APIKey:     cfg.RapidAPIKey,
		APIHost:    cfg.RapidAPIHost,
		Timeout:    cfg.CricbuzzTimeout,
		MaxRetries: cfg.CricbuzzMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.CricbuzzCircuitEnabled,
			FailureThreshold: cfg.CricbuzzCircuitFailureCount,
			OpenTimeout:      cfg.CricbuzzCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CricbuzzCircuitHalfOpenReq,
		},
	})

	idGen := idgen.NewRandomGenerator()
	playerSvc := usecase.NewPlayerService(playerRepo, idGen)
	matchSvc := usecase.NewMatchService(matchRepo, scorecardRepo, idGen)
	ingestionSvc := usecase.NewIngestionService(
		provider,
		playerRepo,
		matchRepo,
		venueRepo,
		seriesRepo,
		scorecardRepo,
		logger,
		cfg.IngestionThrottle,
	)

	var analyticsCache *cache.Store
	if cfg.CacheEnabled {
		analyticsCache = cache.NewStore(cfg.CacheTTL)
	}
	analyticsSvc := usecase.NewAnalyticsService(gateway, analyticsCache)

	handler := httpapi.NewHandler(playerSvc, matchSvc, analyticsSvc, ingestionSvc, gateway, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = gateway.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, gateway.Close, nil
}
