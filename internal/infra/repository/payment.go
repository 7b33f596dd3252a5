package repository

import (
	"context"

	"hotel-core/internal/domain/payment"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
)

type PaymentWriteQueries interface {
	InsertPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentParams) error
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Insert(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.InsertPayment(ctx, r.db, converter.PaymentToInsertParams(p)); err != nil {
		return infra.WrapRepoErr("failed to insert payment", err)
	}
	return nil
}
