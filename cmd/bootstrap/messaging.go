package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"field-reservation/internal/infra/messaging"
	"field-reservation/internal/pkg/clock"
	"field-reservation/internal/pkg/config"
	"field-reservation/internal/usecase/commands"
	"field-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
		NewOutboxDispatcher,
	),
	fx.Invoke(startOutboxWorker),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) shared.EventPublisher {
	if cfg.Messaging.RabbitMQURL == "" {
		logger.Info("RABBITMQ_URL not set, outbox events will only be logged")
		return messaging.NewLogPublisher(logger)
	}

	publisher := messaging.NewRabbitMQPublisher(cfg.Messaging.RabbitMQURL, cfg.Messaging.Exchange, clk)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

func NewOutboxDispatcher(cfg config.Config, uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) *commands.OutboxDispatcher {
	return commands.NewOutboxDispatcher(uow, publisher, clk, cfg.Messaging.BatchSize, cfg.Messaging.MaxAttempts)
}

func startOutboxWorker(lc fx.Lifecycle, cfg config.Config, dispatcher *commands.OutboxDispatcher, logger *slog.Logger) {
	var (
		cancel context.CancelFunc
		wg     sync.WaitGroup
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			wg.Add(1)
			go func() {
				defer wg.Done()
				dispatcher.Run(ctx, cfg.Messaging.PollInterval)
			}()
			logger.Info("outbox worker started", "interval", cfg.Messaging.PollInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cancel != nil {
				cancel()
			}
			wg.Wait()
			logger.Info("outbox worker stopped")
			return nil
		},
	})
}
