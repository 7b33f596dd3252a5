package queries

import (
	"context"

	"hotel-core/internal/infra"

	"github.com/google/uuid"
)

type ClientReadStore interface {
	FindClient(ctx context.Context, id uuid.UUID) (*ClientView, error)
}

func findClient(ctx context.Context, store ClientReadStore, id uuid.UUID) (*ClientView, error) {
	client, err := store.FindClient(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}
