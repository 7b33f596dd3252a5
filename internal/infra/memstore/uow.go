package memstore

import (
	"context"

	"hotel-core/internal/infra"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) shared.UnitOfWork {
	return &UnitOfWork{store: store}
}

// Within holds the store lock for the whole transaction and restores the
// previous state when fn fails.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	backup := u.store.state.clone()
	if err := fn(ctx, &memTx{st: u.store.state}); err != nil {
		u.store.state = backup
		return err
	}
	return nil
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &lockedReads{store: u.store}
}

type memTx struct {
	st *state
}

func (t *memTx) Rooms() shared.RoomRepository               { return &roomRepo{st: t.st} }
func (t *memTx) Reservations() shared.ReservationRepository { return &reservationRepo{st: t.st} }
func (t *memTx) Invoices() shared.InvoiceRepository         { return &invoiceRepo{st: t.st} }
func (t *memTx) Payments() shared.PaymentRepository         { return &paymentRepo{st: t.st} }
func (t *memTx) Ledger() shared.LedgerRepository            { return &ledgerRepo{st: t.st} }
func (t *memTx) Outbox() shared.OutboxRepository            { return &outboxRepo{st: t.st} }
func (t *memTx) Reads() shared.CommandReads                 { return &txReads{st: t.st} }

// txReads runs inside Within, where the lock is already held.
type txReads struct {
	st *state
}

func (r *txReads) ClientByID(_ context.Context, id uuid.UUID) (*shared.ClientSnapshot, error) {
	row, ok := r.st.clients[id]
	if !ok {
		return nil, infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return &shared.ClientSnapshot{ID: row.ID, Name: row.Name, Email: row.Email}, nil
}

func (r *txReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	row, ok := r.st.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return &shared.RoomSnapshot{
		ID:           row.ID,
		Number:       row.Number,
		RoomType:     row.RoomType,
		Capacity:     row.Capacity,
		NightlyPrice: row.NightlyPrice,
		Status:       row.Status.String(),
	}, nil
}

type lockedReads struct {
	store *Store
}

func (r *lockedReads) ClientByID(ctx context.Context, id uuid.UUID) (snap *shared.ClientSnapshot, err error) {
	r.store.read(func(st *state) {
		snap, err = (&txReads{st: st}).ClientByID(ctx, id)
	})
	return snap, err
}

func (r *lockedReads) RoomByID(ctx context.Context, id uuid.UUID) (snap *shared.RoomSnapshot, err error) {
	r.store.read(func(st *state) {
		snap, err = (&txReads{st: st}).RoomByID(ctx, id)
	})
	return snap, err
}
