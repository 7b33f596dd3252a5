package converter

import (
	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/payment"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
)

func InvoiceToInsertParams(inv *invoice.Invoice) sqlc.InsertInvoiceParams {
	return sqlc.InsertInvoiceParams{
		ID:            inv.ID(),
		Number:        inv.Number(),
		ReservationID: inv.ReservationID(),
		ClientID:      inv.ClientID(),
		Subtotal:      pgconv.NumericFromDecimal(inv.Subtotal()),
		TaxRate:       pgconv.NumericFromDecimal(inv.TaxRate().Percent()),
		TaxAmount:     pgconv.NumericFromDecimal(inv.TaxAmount()),
		Total:         pgconv.NumericFromDecimal(inv.Total()),
		AmountPaid:    pgconv.NumericFromDecimal(inv.AmountPaid()),
		Status:        inv.Status().String(),
		IssuedAt:      pgconv.TimeToPgtype(inv.IssuedAt()),
		DueDate:       pgconv.TimeToPgtype(inv.DueDate()),
		CreatedAt:     pgconv.TimeToPgtype(inv.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(inv.UpdatedAt()),
	}
}

func InvoiceToSettlementParams(inv *invoice.Invoice) sqlc.UpdateInvoiceSettlementParams {
	return sqlc.UpdateInvoiceSettlementParams{
		ID:                 inv.ID(),
		AmountPaid:         pgconv.NumericFromDecimal(inv.AmountPaid()),
		Status:             inv.Status().String(),
		CancellationReason: pgconv.StringPtrToPgtype(inv.CancellationReason()),
		UpdatedAt:          pgconv.TimeToPgtype(inv.UpdatedAt()),
	}
}

func InvoiceFromRow(row sqlc.Invoices) (*invoice.Invoice, error) {
	rec := invoice.Record{
		ID:                 row.ID,
		Number:             row.Number,
		ReservationID:      row.ReservationID,
		ClientID:           row.ClientID,
		Status:             invoice.Status(row.Status),
		IssuedAt:           pgconv.TimeFromPgtype(row.IssuedAt),
		DueDate:            pgconv.TimeFromPgtype(row.DueDate),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	var err error
	if rec.Subtotal, err = pgconv.DecimalFromNumeric(row.Subtotal); err != nil {
		return nil, err
	}
	if rec.TaxRatePercent, err = pgconv.DecimalFromNumeric(row.TaxRate); err != nil {
		return nil, err
	}
	if rec.TaxAmount, err = pgconv.DecimalFromNumeric(row.TaxAmount); err != nil {
		return nil, err
	}
	if rec.Total, err = pgconv.DecimalFromNumeric(row.Total); err != nil {
		return nil, err
	}
	if rec.AmountPaid, err = pgconv.DecimalFromNumeric(row.AmountPaid); err != nil {
		return nil, err
	}
	return invoice.ReconstructInvoice(rec), nil
}

func PaymentToInsertParams(p *payment.Payment) sqlc.InsertPaymentParams {
	return sqlc.InsertPaymentParams{
		ID:        p.ID(),
		InvoiceID: p.InvoiceID(),
		ClientID:  p.ClientID(),
		Amount:    pgconv.NumericFromDecimal(p.Amount()),
		Method:    string(p.Method()),
		Status:    string(p.Status()),
		Reference: pgconv.StringPtrToPgtype(p.Reference()),
		PaidAt:    pgconv.TimeToPgtype(p.PaidAt()),
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
	}
}
