package memstore

import (
	"context"
	"slices"
	"time"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/infra"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type roomRepo struct {
	st *state
}

func (r *roomRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*room.Room, error) {
	row, ok := r.st.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return roomFromRow(row), nil
}

func (r *roomRepo) UpdateStatus(_ context.Context, rm *room.Room) error {
	row, ok := r.st.rooms[rm.ID()]
	if !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	row.Status = rm.Status()
	row.UpdatedAt = rm.UpdatedAt()
	r.st.rooms[row.ID] = row
	return nil
}

type reservationRepo struct {
	st *state
}

func (r *reservationRepo) Insert(_ context.Context, res *reservation.Reservation) (bool, error) {
	rec := reservationToRecord(res)
	if _, ok := r.st.clients[rec.ClientID]; !ok {
		return false, infra.WrapRepoErr("reservation client does not exist", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := r.st.rooms[rec.RoomID]; !ok {
		return false, infra.WrapRepoErr("reservation room does not exist", nil, infra.KindForeignKeyViolated)
	}
	for _, other := range r.st.reservations {
		if rec.IdempotencyKey != nil && other.IdempotencyKey != nil && *rec.IdempotencyKey == *other.IdempotencyKey {
			return false, nil
		}
		if other.Code == rec.Code {
			return false, infra.WrapRepoErr("reservation code already exists", nil, infra.KindDuplicateKey)
		}
	}
	if res.IsActive() && r.overlaps(res.RoomID(), res.Stay(), nil) {
		return false, infra.WrapRepoErr("reservation overlaps an active stay", nil, infra.KindConflict)
	}
	r.st.reservations[rec.ID] = rec
	return true, nil
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rec, ok := r.st.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return reservation.ReconstructReservation(rec), nil
}

func (r *reservationRepo) FindByIdempotencyKey(_ context.Context, key string) (*reservation.Reservation, error) {
	for _, rec := range r.st.reservations {
		if rec.IdempotencyKey != nil && *rec.IdempotencyKey == key {
			return reservation.ReconstructReservation(rec), nil
		}
	}
	return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

func (r *reservationRepo) HasOverlap(_ context.Context, roomID uuid.UUID, stay reservation.DateRange, exclude *uuid.UUID) (bool, error) {
	return r.overlaps(roomID, stay, exclude), nil
}

func (r *reservationRepo) overlaps(roomID uuid.UUID, stay reservation.DateRange, exclude *uuid.UUID) bool {
	_, found := reservation.FirstConflict(r.occupancies(), roomID, stay, exclude)
	return found
}

func (r *reservationRepo) occupancies() []reservation.Occupancy {
	out := make([]reservation.Occupancy, 0, len(r.st.reservations))
	for _, rec := range r.st.reservations {
		out = append(out, reservation.ReconstructReservation(rec).Occupancy())
	}
	return out
}

// Update mirrors the exclusion constraint: the new row may not overlap any
// other active reservation on the same room.
func (r *reservationRepo) Update(_ context.Context, res *reservation.Reservation, expectedVersion int64) error {
	current, ok := r.st.reservations[res.ID()]
	if !ok || current.Version != expectedVersion {
		return infra.WrapRepoErr("reservation version changed concurrently", nil, infra.KindStaleVersion)
	}
	id := res.ID()
	if res.IsActive() && r.overlaps(res.RoomID(), res.Stay(), &id) {
		return infra.WrapRepoErr("reservation overlaps an active stay", nil, infra.KindConflict)
	}
	r.st.reservations[id] = reservationToRecord(res)
	return nil
}

type invoiceRepo struct {
	st *state
}

func (r *invoiceRepo) Insert(_ context.Context, inv *invoice.Invoice) error {
	rec := invoiceToRecord(inv)
	if _, ok := r.st.reservations[rec.ReservationID]; !ok {
		return infra.WrapRepoErr("invoice reservation does not exist", nil, infra.KindForeignKeyViolated)
	}
	for _, other := range r.st.invoices {
		if other.ReservationID == rec.ReservationID || other.Number == rec.Number {
			return infra.WrapRepoErr("invoice already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.st.invoices[rec.ID] = rec
	return nil
}

func (r *invoiceRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	rec, ok := r.st.invoices[id]
	if !ok {
		return nil, infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return invoice.ReconstructInvoice(rec), nil
}

func (r *invoiceRepo) ListUnpaidByClientForUpdate(_ context.Context, clientID uuid.UUID) ([]*invoice.Invoice, error) {
	var recs []invoice.Record
	for _, rec := range r.st.invoices {
		if rec.ClientID == clientID && rec.Status.IsOpen() {
			recs = append(recs, rec)
		}
	}
	sortInvoicesByIssue(recs)

	out := make([]*invoice.Invoice, len(recs))
	for i, rec := range recs {
		out[i] = invoice.ReconstructInvoice(rec)
	}
	return out, nil
}

func (r *invoiceRepo) UpdateSettlement(_ context.Context, inv *invoice.Invoice) error {
	rec, ok := r.st.invoices[inv.ID()]
	if !ok {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	rec.AmountPaid = inv.AmountPaid()
	rec.Status = inv.Status()
	rec.CancellationReason = inv.CancellationReason()
	rec.UpdatedAt = inv.UpdatedAt()
	r.st.invoices[rec.ID] = rec
	return nil
}

func sortInvoicesByIssue(recs []invoice.Record) {
	slices.SortFunc(recs, func(a, b invoice.Record) int {
		if c := a.IssuedAt.Compare(b.IssuedAt); c != 0 {
			return c
		}
		return compareUUID(a.ID, b.ID)
	})
}

type paymentRepo struct {
	st *state
}

func (r *paymentRepo) Insert(_ context.Context, p *payment.Payment) error {
	if _, ok := r.st.invoices[p.InvoiceID()]; !ok {
		return infra.WrapRepoErr("payment invoice does not exist", nil, infra.KindForeignKeyViolated)
	}
	r.st.payments[p.ID()] = paymentRow{
		ID:        p.ID(),
		InvoiceID: p.InvoiceID(),
		ClientID:  p.ClientID(),
		Amount:    p.Amount(),
		Method:    p.Method(),
		Status:    p.Status(),
		Reference: p.Reference(),
		PaidAt:    p.PaidAt(),
		CreatedAt: p.CreatedAt(),
	}
	return nil
}

type ledgerRepo struct {
	st *state
}

func (r *ledgerRepo) LockHead(_ context.Context, clientID uuid.UUID) (ledger.Head, error) {
	if _, ok := r.st.clients[clientID]; !ok {
		return ledger.Head{}, infra.WrapRepoErr("ledger client does not exist", nil, infra.KindForeignKeyViolated)
	}
	return r.st.heads[clientID], nil
}

func (r *ledgerRepo) Append(_ context.Context, mv *ledger.Movement) error {
	if _, ok := r.st.clients[mv.ClientID()]; !ok {
		return infra.WrapRepoErr("ledger client does not exist", nil, infra.KindForeignKeyViolated)
	}
	if rev := mv.ReversalOf(); rev != nil {
		if _, ok := r.st.movements[*rev]; !ok {
			return infra.WrapRepoErr("reversed movement does not exist", nil, infra.KindForeignKeyViolated)
		}
		for _, other := range r.st.movements {
			if other.ReversalOf != nil && *other.ReversalOf == *rev {
				return infra.WrapRepoErr("movement already compensated", nil, infra.KindDuplicateKey)
			}
		}
	}
	r.st.movements[mv.ID()] = movementToRecord(mv)
	r.st.heads[mv.ClientID()] = mv.Head()
	return nil
}

func (r *ledgerRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Movement, error) {
	rec, ok := r.st.movements[id]
	if !ok {
		return nil, infra.WrapRepoErr("account movement not found", nil, infra.KindNotFound)
	}
	return ledger.ReconstructMovement(rec), nil
}

func (r *ledgerRepo) MarkReversed(_ context.Context, id uuid.UUID) error {
	rec, ok := r.st.movements[id]
	if !ok || rec.Status != ledger.StatusCompleted {
		return infra.WrapRepoErr("movement already reversed", nil, infra.KindStaleVersion)
	}
	rec.Status = ledger.StatusReversed
	r.st.movements[id] = rec
	return nil
}

type outboxRepo struct {
	st *state
}

func (r *outboxRepo) Enqueue(_ context.Context, msg shared.OutboxMessage) error {
	if _, ok := r.st.outbox[msg.ID]; ok {
		return infra.WrapRepoErr("outbox event already exists", nil, infra.KindDuplicateKey)
	}
	msg.Status = shared.OutboxQueued
	msg.Attempts = 0
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = msg.RunAt
	}
	r.st.outbox[msg.ID] = outboxRow{OutboxMessage: msg}
	return nil
}

func (r *outboxRepo) ClaimBatch(_ context.Context, now time.Time, limit int) ([]shared.OutboxMessage, error) {
	var due []shared.OutboxMessage
	for _, row := range r.st.outbox {
		if row.Status == shared.OutboxQueued && !row.RunAt.After(now) {
			due = append(due, row.OutboxMessage)
		}
	}
	slices.SortFunc(due, func(a, b shared.OutboxMessage) int {
		if c := a.RunAt.Compare(b.RunAt); c != 0 {
			return c
		}
		return compareUUID(a.ID, b.ID)
	})
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r *outboxRepo) MarkPublished(_ context.Context, id uuid.UUID, at time.Time) error {
	row, ok := r.st.outbox[id]
	if !ok {
		return nil
	}
	row.Status = shared.OutboxPublished
	row.Attempts++
	row.PublishedAt = &at
	r.st.outbox[id] = row
	return nil
}

func (r *outboxRepo) MarkFailed(_ context.Context, id uuid.UUID, status shared.OutboxStatus, lastErr string, retryAt time.Time) error {
	row, ok := r.st.outbox[id]
	if !ok {
		return nil
	}
	row.Status = status
	row.Attempts++
	row.LastError = lastErr
	row.RunAt = retryAt
	r.st.outbox[id] = row
	return nil
}

func compareUUID(a, b uuid.UUID) int {
	return slices.Compare(a[:], b[:])
}
