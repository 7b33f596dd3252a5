package queries

import (
	"context"
	"time"

	"hotel-core/internal/infra"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByClientFirstPage(ctx context.Context, clientID uuid.UUID, limit int) ([]*ReservationListItem, error)
	FindByClientKeyset(ctx context.Context, clientID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	store   ReservationReadStore
	clients ClientReadStore
}

func NewReservationQueries(store ReservationReadStore, clients ClientReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store, clients: clients}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if _, err := findClient(ctx, q.clients, clientID); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByClientFirstPage(ctx, clientID, limit+1)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByClientKeyset(ctx, clientID, lastCreatedAt, lastID, limit+1)
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := pageFrom(rows, limit, func(it *ReservationListItem) (time.Time, uuid.UUID) {
		return it.CreatedAt, it.ID
	})
	return rows, next, nil
}
