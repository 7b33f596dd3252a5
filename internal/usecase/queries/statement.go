package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Statement struct {
	Client         *ClientView     `json:"client"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Movements      []*MovementView `json:"movements"`
	Pagination     Pagination      `json:"pagination"`
}

type AccountReadStore interface {
	// CurrentBalance is the balance snapshot of the client's latest movement, zero without one.
	CurrentBalance(ctx context.Context, clientID uuid.UUID) (decimal.Decimal, error)
	CountMovements(ctx context.Context, clientID uuid.UUID) (int64, error)
	// ListMovements is ordered newest first by (created_at, id).
	ListMovements(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*MovementView, error)
}

type AccountQueries interface {
	GetStatement(ctx context.Context, clientID uuid.UUID, page, limit int) (*Statement, error)
}

type accountQueriesImpl struct {
	store   AccountReadStore
	clients ClientReadStore
}

func NewAccountQueries(store AccountReadStore, clients ClientReadStore) AccountQueries {
	return &accountQueriesImpl{store: store, clients: clients}
}

func (q *accountQueriesImpl) GetStatement(ctx context.Context, clientID uuid.UUID, page, limit int) (*Statement, error) {
	if page == 0 {
		page = 1
	}
	if page < 0 {
		return nil, ErrInvalidPage
	}
	limit = ValidateLimit(limit)

	client, err := findClient(ctx, q.clients, clientID)
	if err != nil {
		return nil, err
	}

	balance, err := q.store.CurrentBalance(ctx, clientID)
	if err != nil {
		return nil, err
	}
	total, err := q.store.CountMovements(ctx, clientID)
	if err != nil {
		return nil, err
	}
	movements, err := q.store.ListMovements(ctx, clientID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if movements == nil {
		movements = []*MovementView{}
	}

	return &Statement{
		Client:         client,
		CurrentBalance: balance,
		Movements:      movements,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
