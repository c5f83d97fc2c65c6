package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"sunday-league/internal/config"
	"sunday-league/internal/domain/game"
	"sunday-league/internal/domain/match"
	"sunday-league/internal/domain/news"
	"sunday-league/internal/domain/player"
	"sunday-league/internal/domain/profile"
	"sunday-league/internal/infrastructure/avatar"
	"sunday-league/internal/infrastructure/notify"
	"sunday-league/internal/infrastructure/repository/memory"
	"sunday-league/internal/infrastructure/repository/postgres"
	"sunday-league/internal/interfaces/httpapi"
	"sunday-league/internal/platform/cache"
	idgen "sunday-league/internal/platform/id"
	"sunday-league/internal/platform/logging"
	"sunday-league/internal/platform/resilience"
	"sunday-league/internal/usecase"
)

type repositories struct {
	matches  match.Repository
	players  player.Repository
	profiles profile.Repository
	games    game.Repository
	news     news.Repository
	close    func() error
}

func buildRepositories(cfg config.Config) (repositories, error) {
	if cfg.DBURL == "" {
		return repositories{
			matches:  memory.NewMatchRepository(memory.SeedMatches()),
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			profiles: memory.NewProfileRepository(memory.SeedProfiles()),
			games:    memory.NewGameRepository(memory.SeedGames(), memory.SeedSignups()),
			news:     memory.NewNewsRepository(memory.SeedNews()),
			close:    func() error { return nil },
		}, nil
	}

	db, err := sqlx.Connect("postgres", cfg.DBURL)
	if err != nil {
		return repositories{}, fmt.Errorf("connect database: %w", err)
	}

	return repositories{
		matches:  postgres.NewMatchRepository(db),
		players:  postgres.NewPlayerRepository(db),
		profiles: postgres.NewProfileRepository(db),
		games:    postgres.NewGameRepository(db),
		news:     postgres.NewNewsRepository(db),
		close:    db.Close,
	}, nil
}

// NewHTTPServer wires repositories, services and the router into a ready
// http.Server. The returned cleanup releases the database handle.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	repos, err := buildRepositories(cfg)
	if err != nil {
		return nil, nil, err
	}

	platformLogger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(platformLogger)

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	var matchNotifier usecase.MatchNotifier
	var gameNotifier usecase.GameNotifier
	if cfg.NotifyEnabled {
		notifyClient := notify.NewClient(notify.ClientConfig{
			WebhookURL: cfg.NotifyWebhookURL,
			Channel:    cfg.NotifyChannel,
			Timeout:    cfg.NotifyTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.NotifyCircuitEnabled,
				FailureThreshold: cfg.NotifyCircuitFailureCount,
				OpenTimeout:      cfg.NotifyCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.NotifyCircuitHalfOpenMaxReq,
			},
		}, logger)
		matchNotifier = notifyClient
		gameNotifier = notifyClient
	}

	idGenerator := idgen.NewUUIDGenerator()

	statsSvc := usecase.NewStatsService(repos.matches, repos.players, store, idGenerator, matchNotifier, platformLogger)
	badgeSvc := usecase.NewBadgeService(statsSvc, repos.profiles, store)
	gameSvc := usecase.NewGameService(repos.games, idGenerator, gameNotifier, platformLogger)
	debtSvc := usecase.NewDebtService(repos.games)
	newsSvc := usecase.NewNewsService(repos.news, idGenerator)

	var avatarSvc *usecase.AvatarService
	if cfg.AvatarEnabled {
		avatarClient := avatar.NewClient(avatar.ClientConfig{
			BaseURL: cfg.AvatarBaseURL,
			APIKey:  cfg.AvatarAPIKey,
			Style:   cfg.AvatarStyle,
			Timeout: cfg.AvatarTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.AvatarCircuitEnabled,
				FailureThreshold: cfg.AvatarCircuitFailureCount,
				OpenTimeout:      cfg.AvatarCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.AvatarCircuitHalfOpenMaxReq,
			},
		}, logger)
		avatarSvc = usecase.NewAvatarService(repos.players, repos.profiles, avatarClient, platformLogger, cfg.AvatarWorkerCount)
	} else {
		// A nil generator makes the service answer 503 instead of
		// reporting every task as failed.
		avatarSvc = usecase.NewAvatarService(repos.players, repos.profiles, nil, platformLogger, cfg.AvatarWorkerCount)
	}

	handler := httpapi.NewHandler(statsSvc, badgeSvc, gameSvc, debtSvc, newsSvc, avatarSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, repos.close, nil
}
