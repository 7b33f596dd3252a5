package readstore

import (
	"context"

	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/usecase/queries"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientReadQueries interface {
	GetClientByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Clients, error)
}

type ClientReadStore struct {
	queries ClientReadQueries
	db      sqlc.DBTX
}

func NewClientReadStore(queries ClientReadQueries, db sqlc.DBTX) *ClientReadStore {
	return &ClientReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClientReadStore) FindClient(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	row, err := r.queries.GetClientByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get client", err)
	}
	return &queries.ClientView{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}, nil
}

func (r *ClientReadStore) ClientByID(ctx context.Context, id uuid.UUID) (*shared.ClientSnapshot, error) {
	view, err := r.FindClient(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ClientSnapshot{ID: view.ID, Name: view.Name, Email: view.Email}, nil
}
