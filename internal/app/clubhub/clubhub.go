// Package clubhub assembles the API server: storage, cache, queue,
// services, router and the HTTP listener lifecycle.
package clubhub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/ntx-bassclub/clubhub/internal/ai"
	"github.com/ntx-bassclub/clubhub/internal/cache"
	"github.com/ntx-bassclub/clubhub/internal/config"
	"github.com/ntx-bassclub/clubhub/internal/lib/jwt"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/migrations"
	"github.com/ntx-bassclub/clubhub/internal/rabbitmq"
	adviceservice "github.com/ntx-bassclub/clubhub/internal/services/advice"
	authservice "github.com/ntx-bassclub/clubhub/internal/services/auth"
	feedservice "github.com/ntx-bassclub/clubhub/internal/services/feed"
	gearservice "github.com/ntx-bassclub/clubhub/internal/services/gear"
	practiceservice "github.com/ntx-bassclub/clubhub/internal/services/practice"
	tournamentservice "github.com/ntx-bassclub/clubhub/internal/services/tournament"
	userservice "github.com/ntx-bassclub/clubhub/internal/services/user"
	"github.com/ntx-bassclub/clubhub/internal/storage/repository"
)

const (
	rabbitMaxRetries = 5
	rabbitRetryDelay = 2 * time.Second
)

// App owns the HTTP server and the connections it serves from.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *repository.Storage
	rabbitConn *amqp.Connection
}

// New connects to postgres, redis and rabbitmq, runs migrations, builds
// every service and returns an App ready to Run. A missing rabbitmq broker
// is tolerated: the feed works, gear-reminder emails do not.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	var (
		rabbitConn *amqp.Connection
		publisher  feedservice.Publisher
	)
	rabbitConn, err = rabbitmq.Connect(cfg.RabbitConnectionString, rabbitMaxRetries, rabbitRetryDelay)
	if err != nil {
		logger.Warn("rabbitmq unavailable, gear reminders disabled", sl.Err(err))
		rabbitConn = nil
	} else {
		ch, chErr := rabbitmq.SetupChannel(rabbitConn)
		if chErr != nil {
			return nil, chErr
		}
		publisher = rabbitmq.NewPublisher(ch)
	}

	geminiClient, err := ai.NewGeminiClient(cfg.AIProvider.APIKey, cfg.AIProvider.BaseURL, cfg.AIProvider.Timeout)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(db, jwtMaker, cacheRedis)
	userService := userservice.New(db, logger)
	feedService := feedservice.New(db, cacheRedis, publisher, logger)
	tournamentService := tournamentservice.New(db)
	adviceService := adviceservice.New(geminiClient, cfg.AIProvider.Model, logger)
	gearService := gearservice.New(db, logger)
	practiceService := practiceservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Auth:       authService,
		User:       userService,
		Feed:       feedService,
		Tournament: tournamentService,
		Advice:     adviceService,
		Gear:       gearService,
		Practice:   practiceService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		db:         db,
		rabbitConn: rabbitConn,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.Close()
		if a.rabbitConn != nil {
			if closeErr := a.rabbitConn.Close(); closeErr != nil {
				a.logger.Error("failed to close rabbitmq connection", sl.Err(closeErr))
			}
		}
		return err
	}
}
