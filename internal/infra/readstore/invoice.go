package readstore

import (
	"context"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceReadQueries interface {
	GetInvoiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Invoices, error)
	ListOutstandingInvoicesByClient(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) ([]sqlc.Invoices, error)
	ListPaymentsByInvoice(ctx context.Context, db sqlc.DBTX, invoiceID uuid.UUID) ([]sqlc.Payments, error)
}

type InvoiceReadStore struct {
	queries InvoiceReadQueries
	db      sqlc.DBTX
}

func NewInvoiceReadStore(queries InvoiceReadQueries, db sqlc.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	row, err := r.queries.GetInvoiceByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get invoice", err)
	}
	view, err := toInvoiceView(row)
	if err != nil {
		return nil, err
	}

	payments, err := r.queries.ListPaymentsByInvoice(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoice payments", err)
	}
	view.Payments = make([]*queries.PaymentView, 0, len(payments))
	for _, p := range payments {
		amount, err := pgconv.DecimalFromNumeric(p.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid payment amount", err, infra.KindDBFailure)
		}
		view.Payments = append(view.Payments, &queries.PaymentView{
			ID:        p.ID,
			InvoiceID: p.InvoiceID,
			ClientID:  p.ClientID,
			Amount:    amount,
			Method:    p.Method,
			Status:    p.Status,
			Reference: pgconv.StringPtrFromPgtype(p.Reference),
			PaidAt:    pgconv.TimeFromPgtype(p.PaidAt),
		})
	}
	return view, nil
}

func (r *InvoiceReadStore) ListOutstandingByClient(ctx context.Context, clientID uuid.UUID) ([]*queries.InvoiceView, error) {
	rows, err := r.queries.ListOutstandingInvoicesByClient(ctx, r.db, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list outstanding invoices", err)
	}

	views := make([]*queries.InvoiceView, 0, len(rows))
	for _, row := range rows {
		view, err := toInvoiceView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func toInvoiceView(row sqlc.Invoices) (*queries.InvoiceView, error) {
	subtotal, err := pgconv.DecimalFromNumeric(row.Subtotal)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid invoice subtotal", err, infra.KindDBFailure)
	}
	taxRate, err := pgconv.DecimalFromNumeric(row.TaxRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid invoice tax rate", err, infra.KindDBFailure)
	}
	taxAmount, err := pgconv.DecimalFromNumeric(row.TaxAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid invoice tax amount", err, infra.KindDBFailure)
	}
	total, err := pgconv.DecimalFromNumeric(row.Total)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid invoice total", err, infra.KindDBFailure)
	}
	paid, err := pgconv.DecimalFromNumeric(row.AmountPaid)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid invoice amount paid", err, infra.KindDBFailure)
	}

	outstanding := total.Sub(paid)
	if outstanding.IsNegative() || invoice.Status(row.Status) == invoice.StatusCancelled {
		outstanding = decimal.Zero
	}

	return &queries.InvoiceView{
		ID:                 row.ID,
		Number:             row.Number,
		ReservationID:      row.ReservationID,
		ClientID:           row.ClientID,
		Subtotal:           subtotal,
		TaxRate:            taxRate,
		TaxAmount:          taxAmount,
		Total:              total,
		AmountPaid:         paid,
		Outstanding:        outstanding,
		Status:             row.Status,
		IssuedAt:           pgconv.TimeFromPgtype(row.IssuedAt),
		DueDate:            pgconv.TimeFromPgtype(row.DueDate),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
	}, nil
}
