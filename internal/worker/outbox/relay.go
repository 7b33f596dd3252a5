// Package outbox drains the transactional outbox to the message broker.
package outbox

import (
	"context"
	"log/slog"
	"time"

	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"
)

const maxRetryDelay = 5 * time.Minute

type Publisher interface {
	Publish(ctx context.Context, msg shared.OutboxMessage) error
}

// Relay publishes claimed events while holding their row locks, so two relay
// instances never deliver the same event. Delivery is at-least-once: a crash
// between publish and commit republishes the batch.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       config.BrokerConfig
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.BrokerConfig) (*Relay, error) {
	if cfg.PollInterval <= 0 {
		return nil, errs.New("OUTBOX_POLL_INTERVAL must be positive")
	}
	if cfg.BatchSize <= 0 {
		return nil, errs.New("OUTBOX_BATCH_SIZE must be positive")
	}
	if cfg.MaxAttempts <= 0 {
		return nil, errs.New("OUTBOX_MAX_ATTEMPTS must be positive")
	}
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
	}, nil
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("outbox relay started", "interval", r.cfg.PollInterval, "batch_size", r.cfg.BatchSize)
	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay iteration failed", "error", err)
			}
		}
	}
}

// RunOnce handles one batch and reports how many events were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		now := r.clock.Now()
		batch, err := tx.Outbox().ClaimBatch(ctx, now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, msg := range batch {
			if pubErr := r.publisher.Publish(ctx, msg); pubErr != nil {
				if err := r.fail(ctx, tx, msg, pubErr, now); err != nil {
					return err
				}
				continue
			}
			if err := tx.Outbox().MarkPublished(ctx, msg.ID, now); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if published > 0 {
		slog.Debug("outbox events published", "count", published)
	}
	return published, nil
}

func (r *Relay) fail(ctx context.Context, tx shared.Tx, msg shared.OutboxMessage, pubErr error, now time.Time) error {
	attempt := msg.Attempts + 1
	if attempt >= r.cfg.MaxAttempts {
		slog.Error("outbox event gave up after max attempts",
			"event_id", msg.ID,
			"topic", msg.Topic,
			"attempts", attempt,
			"error", pubErr)
		return tx.Outbox().MarkFailed(ctx, msg.ID, shared.OutboxFailed, pubErr.Error(), now)
	}

	retryAt := now.Add(retryDelay(r.cfg.PollInterval, attempt))
	slog.Warn("outbox publish failed, will retry",
		"event_id", msg.ID,
		"topic", msg.Topic,
		"attempt", attempt,
		"retry_at", retryAt,
		"error", pubErr)
	return tx.Outbox().MarkFailed(ctx, msg.ID, shared.OutboxQueued, pubErr.Error(), retryAt)
}

func retryDelay(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	d := base << min(attempt-1, 16)
	if d <= 0 || d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}
