package repository

import (
	"context"
	"time"

	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxWriteQueries interface {
	EnqueueOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueOutboxEventParams) error
	ClaimOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimOutboxEventsParams) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventPublishedParams) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msg shared.OutboxMessage) error {
	params := sqlc.EnqueueOutboxEventParams{
		ID:          msg.ID,
		Topic:       msg.Topic,
		AggregateID: msg.AggregateID,
		Payload:     msg.Payload,
		RunAt:       pgconv.TimeToPgtype(msg.RunAt),
	}

	if err := r.queries.EnqueueOutboxEvent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

// ClaimBatch locks due events with SKIP LOCKED so concurrent relays never
// publish the same row.
func (r *OutboxRepository) ClaimBatch(ctx context.Context, now time.Time, limit int) ([]shared.OutboxMessage, error) {
	rows, err := r.queries.ClaimOutboxEvents(ctx, r.db, sqlc.ClaimOutboxEventsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	result := make([]shared.OutboxMessage, len(rows))
	for i, row := range rows {
		result[i] = shared.OutboxMessage{
			ID:          row.ID,
			Topic:       row.Topic,
			AggregateID: row.AggregateID,
			Payload:     row.Payload,
			Status:      shared.OutboxStatus(row.Status),
			Attempts:    int(row.Attempts),
			RunAt:       pgconv.TimeFromPgtype(row.RunAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.queries.MarkOutboxEventPublished(ctx, r.db, sqlc.MarkOutboxEventPublishedParams{
		ID:          id,
		PublishedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, status shared.OutboxStatus, lastErr string, retryAt time.Time) error {
	err := r.queries.MarkOutboxEventFailed(ctx, r.db, sqlc.MarkOutboxEventFailedParams{
		ID:        id,
		Status:    string(status),
		LastError: pgconv.StringToPgtype(lastErr),
		RunAt:     pgconv.TimeToPgtype(retryAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
