package app

import (
	"fmt"
	"net/http"

	"github.com/christianwondeson/sports-hub/external/sportsdb"
	"github.com/christianwondeson/sports-hub/internal/config"
	"github.com/christianwondeson/sports-hub/internal/interfaces/httpapi"
	"github.com/christianwondeson/sports-hub/internal/platform/cache"
	"github.com/christianwondeson/sports-hub/internal/platform/logging"
	"github.com/christianwondeson/sports-hub/internal/platform/resilience"
	"github.com/christianwondeson/sports-hub/internal/usecase"
)

// App bundles the HTTP server with the fixture store so the entrypoint can
// drive both lifecycles.
type App struct {
	Server       *http.Server
	FixtureStore *usecase.FixtureStore
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	provider := sportsdb.NewClient(sportsdb.ClientConfig{
		BaseURL:    cfg.SportsDBBaseURL,
		APIKey:     cfg.SportsDBAPIKey,
		Timeout:    cfg.SportsDBTimeout,
		MaxRetries: cfg.SportsDBMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SportsDBCircuitEnabled,
			FailureThreshold: cfg.SportsDBCircuitFailureCount,
			OpenTimeout:      cfg.SportsDBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SportsDBCircuitHalfOpenMaxReq,
		},
	})

	var leagueCache *cache.Store
	if cfg.CacheEnabled {
		leagueCache = cache.NewStore(cfg.CacheTTL)
	}

	leagueSvc := usecase.NewLeagueService(provider, leagueCache, logger)
	detailSvc := usecase.NewMatchDetailService(provider, leagueSvc, logger)
	fixtureStore := usecase.NewFixtureStore(provider, cfg.PollInterval, logger)

	handler := httpapi.NewHandler(fixtureStore, detailSvc, leagueSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:       server,
		FixtureStore: fixtureStore,
	}, nil
}
