// Package remindersender assembles the worker that consumes gear-reminder
// events and mails the club roster.
package remindersender

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/ntx-bassclub/clubhub/internal/config"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/lib/smtp"
	"github.com/ntx-bassclub/clubhub/internal/rabbitmq"
	senderservice "github.com/ntx-bassclub/clubhub/internal/services/sender"
	"github.com/ntx-bassclub/clubhub/internal/storage/repository"
)

const (
	rabbitMaxRetries = 5
	rabbitRetryDelay = 2 * time.Second
)

// App owns the queue consumer and its connections.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	db            *repository.Storage
	senderService *senderservice.Service
	logger        *slog.Logger
}

// New connects to postgres and rabbitmq and builds the sender service.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitConnectionString, rabbitMaxRetries, rabbitRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Error("failed to close connection", sl.Err(closeErr))
		}
		return nil, err
	}

	transport := smtp.NewTransport(&cfg.SMTP, logger)
	senderService := senderservice.New(db, transport, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		db:            db,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run consumes the gear queue until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumeMessages(ctx, a.ch, rabbitmq.GearQueue, a.senderService.HandleGearReminder)
	if err != nil {
		a.logger.Error("failed to start gear queue consumer", sl.Err(err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("reminder sender shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
	a.db.Close()

	return nil
}
