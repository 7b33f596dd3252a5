package repository

import (
	"context"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type InvoiceWriteQueries interface {
	InsertInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertInvoiceParams) error
	GetInvoiceForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Invoices, error)
	ListUnpaidInvoicesByClientForUpdate(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) ([]sqlc.Invoices, error)
	UpdateInvoiceSettlement(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInvoiceSettlementParams) (int64, error)
}

type InvoiceRepository struct {
	queries InvoiceWriteQueries
	db      sqlc.DBTX
}

func NewInvoiceRepository(queries InvoiceWriteQueries, db sqlc.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

// Insert surfaces a second invoice for the same reservation as KindDuplicateKey.
func (r *InvoiceRepository) Insert(ctx context.Context, inv *invoice.Invoice) error {
	if err := r.queries.InsertInvoice(ctx, r.db, converter.InvoiceToInsertParams(inv)); err != nil {
		return infra.WrapRepoErr("failed to insert invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	row, err := r.queries.GetInvoiceForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock invoice", err)
	}
	inv, err := converter.InvoiceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode invoice row", err, infra.KindDBFailure)
	}
	return inv, nil
}

func (r *InvoiceRepository) ListUnpaidByClientForUpdate(ctx context.Context, clientID uuid.UUID) ([]*invoice.Invoice, error) {
	rows, err := r.queries.ListUnpaidInvoicesByClientForUpdate(ctx, r.db, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock unpaid invoices", err)
	}

	result := make([]*invoice.Invoice, 0, len(rows))
	for _, row := range rows {
		inv, err := converter.InvoiceFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode invoice row", err, infra.KindDBFailure)
		}
		result = append(result, inv)
	}
	return result, nil
}

func (r *InvoiceRepository) UpdateSettlement(ctx context.Context, inv *invoice.Invoice) error {
	affected, err := r.queries.UpdateInvoiceSettlement(ctx, r.db, converter.InvoiceToSettlementParams(inv))
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice settlement", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}
