package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"hotel-core/internal/infra/broker"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/usecase/shared"
	"hotel-core/internal/worker/outbox"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewRabbitPublisher,
		NewOutboxRelay,
	),
	fx.Invoke(StartOutboxRelay),
)

// NewRabbitPublisher returns nil without BROKER_URL; events then stay queued
// in the outbox table.
func NewRabbitPublisher(cfg config.Config) *broker.RabbitPublisher {
	if cfg.Broker.URL == "" {
		return nil
	}
	return broker.NewRabbitPublisher(cfg.Broker)
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher *broker.RabbitPublisher, clk clock.Clock, cfg config.Config) (*outbox.Relay, error) {
	if publisher == nil {
		return nil, nil
	}
	return outbox.NewRelay(uow, publisher, clk, cfg.Broker)
}

func StartOutboxRelay(lc fx.Lifecycle, relay *outbox.Relay, publisher *broker.RabbitPublisher, logger *slog.Logger) {
	if relay == nil {
		logger.Info("outbox relay disabled, BROKER_URL not set")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return publisher.Close()
		},
	})
}
