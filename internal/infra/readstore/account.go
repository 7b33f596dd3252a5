package readstore

import (
	"context"

	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type AccountReadQueries interface {
	GetCurrentBalance(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) (pgtype.Numeric, error)
	CountAccountMovements(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) (int64, error)
	ListAccountMovements(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAccountMovementsParams) ([]sqlc.AccountMovements, error)
}

type AccountReadStore struct {
	queries AccountReadQueries
	db      sqlc.DBTX
}

func NewAccountReadStore(queries AccountReadQueries, db sqlc.DBTX) *AccountReadStore {
	return &AccountReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AccountReadStore) CurrentBalance(ctx context.Context, clientID uuid.UUID) (decimal.Decimal, error) {
	n, err := r.queries.GetCurrentBalance(ctx, r.db, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, infra.WrapRepoErr("failed to get current balance", err)
	}
	balance, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("invalid balance", err, infra.KindDBFailure)
	}
	return balance, nil
}

func (r *AccountReadStore) CountMovements(ctx context.Context, clientID uuid.UUID) (int64, error) {
	count, err := r.queries.CountAccountMovements(ctx, r.db, clientID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count account movements", err)
	}
	return count, nil
}

func (r *AccountReadStore) ListMovements(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*queries.MovementView, error) {
	rows, err := r.queries.ListAccountMovements(ctx, r.db, sqlc.ListAccountMovementsParams{
		ClientID: clientID,
		Limit:    pgconv.IntToInt32(limit),
		Offset:   pgconv.IntToInt32(offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list account movements", err)
	}

	views := make([]*queries.MovementView, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid movement amount", err, infra.KindDBFailure)
		}
		balance, err := pgconv.DecimalFromNumeric(row.Balance)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid movement balance", err, infra.KindDBFailure)
		}
		meta, err := pgconv.MapFromJSONB(row.Metadata)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid movement metadata", err, infra.KindDBFailure)
		}
		views = append(views, &queries.MovementView{
			ID:          row.ID,
			Type:        row.Type,
			Amount:      amount,
			Balance:     balance,
			Status:      row.Status,
			Reference:   row.Reference,
			Description: row.Description,
			Metadata:    meta,
			ReversalOf:  pgconv.UUIDPtrFromPgtype(row.ReversalOf),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
