package queries

import (
	"context"

	"hotel-core/internal/infra"

	"github.com/google/uuid"
)

type InvoiceReadStore interface {
	// FindByID returns the invoice with its payments in payment order.
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	ListOutstandingByClient(ctx context.Context, clientID uuid.UUID) ([]*InvoiceView, error)
}

type InvoiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	ListOutstanding(ctx context.Context, clientID uuid.UUID) ([]*InvoiceView, error)
}

type invoiceQueriesImpl struct {
	store   InvoiceReadStore
	clients ClientReadStore
}

func NewInvoiceQueries(store InvoiceReadStore, clients ClientReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{store: store, clients: clients}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListOutstanding returns PENDING and PARTIAL invoices, oldest issued first.
func (q *invoiceQueriesImpl) ListOutstanding(ctx context.Context, clientID uuid.UUID) ([]*InvoiceView, error) {
	if _, err := findClient(ctx, q.clients, clientID); err != nil {
		return nil, err
	}
	views, err := q.store.ListOutstandingByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*InvoiceView{}
	}
	return views, nil
}
