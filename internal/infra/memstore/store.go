// Package memstore is an in-memory implementation of the unit of work and the
// read stores. It enforces the same uniqueness, exclusion and conditional
// update rules as the Postgres schema and runs transactions one at a time.
package memstore

import (
	"maps"
	"sync"
	"time"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type clientRow struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

type roomRow struct {
	ID           uuid.UUID
	Number       string
	RoomType     string
	Capacity     int
	NightlyPrice decimal.Decimal
	Status       room.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type paymentRow struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	ClientID  uuid.UUID
	Amount    decimal.Decimal
	Method    payment.Method
	Status    payment.Status
	Reference *string
	PaidAt    time.Time
	CreatedAt time.Time
}

type outboxRow struct {
	shared.OutboxMessage
	LastError   string
	PublishedAt *time.Time
}

// state holds value rows only, so a shallow map copy is a full snapshot.
// Metadata maps are shared between copies; nothing mutates them after creation.
type state struct {
	clients      map[uuid.UUID]clientRow
	rooms        map[uuid.UUID]roomRow
	reservations map[uuid.UUID]reservation.Record
	invoices     map[uuid.UUID]invoice.Record
	payments     map[uuid.UUID]paymentRow
	movements    map[uuid.UUID]ledger.Record
	heads        map[uuid.UUID]ledger.Head
	outbox       map[uuid.UUID]outboxRow
}

func newState() *state {
	return &state{
		clients:      map[uuid.UUID]clientRow{},
		rooms:        map[uuid.UUID]roomRow{},
		reservations: map[uuid.UUID]reservation.Record{},
		invoices:     map[uuid.UUID]invoice.Record{},
		payments:     map[uuid.UUID]paymentRow{},
		movements:    map[uuid.UUID]ledger.Record{},
		heads:        map[uuid.UUID]ledger.Head{},
		outbox:       map[uuid.UUID]outboxRow{},
	}
}

func (s *state) clone() *state {
	return &state{
		clients:      maps.Clone(s.clients),
		rooms:        maps.Clone(s.rooms),
		reservations: maps.Clone(s.reservations),
		invoices:     maps.Clone(s.invoices),
		payments:     maps.Clone(s.payments),
		movements:    maps.Clone(s.movements),
		heads:        maps.Clone(s.heads),
		outbox:       maps.Clone(s.outbox),
	}
}

type Store struct {
	mu    sync.Mutex
	state *state
}

func New() *Store {
	return &Store{state: newState()}
}

// read runs fn under the store lock.
func (s *Store) read(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

func (s *Store) AddClient(id uuid.UUID, name, email string, createdAt time.Time) {
	s.read(func(st *state) {
		st.clients[id] = clientRow{ID: id, Name: name, Email: email, CreatedAt: createdAt}
	})
}

func (s *Store) AddRoom(rm *room.Room) {
	s.read(func(st *state) {
		st.rooms[rm.ID()] = roomToRow(rm)
	})
}

// OutboxStatuses reports the status of every enqueued event, keyed by id.
func (s *Store) OutboxStatuses() map[uuid.UUID]shared.OutboxStatus {
	out := map[uuid.UUID]shared.OutboxStatus{}
	s.read(func(st *state) {
		for id, row := range st.outbox {
			out[id] = row.Status
		}
	})
	return out
}

// Counts returns row counts per table, for rollback assertions.
func (s *Store) Counts() map[string]int {
	var counts map[string]int
	s.read(func(st *state) {
		counts = map[string]int{
			"reservations":      len(st.reservations),
			"invoices":          len(st.invoices),
			"payments":          len(st.payments),
			"account_movements": len(st.movements),
			"outbox_events":     len(st.outbox),
		}
	})
	return counts
}

func roomToRow(rm *room.Room) roomRow {
	return roomRow{
		ID:           rm.ID(),
		Number:       rm.Number(),
		RoomType:     rm.RoomType(),
		Capacity:     rm.Capacity(),
		NightlyPrice: rm.NightlyPrice(),
		Status:       rm.Status(),
		CreatedAt:    rm.CreatedAt(),
		UpdatedAt:    rm.UpdatedAt(),
	}
}

func roomFromRow(row roomRow) *room.Room {
	return room.ReconstructRoom(row.ID, row.Number, row.RoomType, row.Capacity, row.NightlyPrice, row.Status, row.CreatedAt, row.UpdatedAt)
}

func reservationToRecord(res *reservation.Reservation) reservation.Record {
	return reservation.Record{
		ID:                 res.ID(),
		Code:               res.Code(),
		ClientID:           res.ClientID(),
		RoomID:             res.RoomID(),
		CheckIn:            res.Stay().CheckIn(),
		CheckOut:           res.Stay().CheckOut(),
		Status:             res.Status(),
		CancellationReason: res.CancellationReason(),
		Version:            res.Version(),
		IdempotencyKey:     res.IdempotencyKey(),
		Fingerprint:        res.RequestFingerprint(),
		CheckInMetadata:    res.CheckInMetadata(),
		CheckOutMetadata:   res.CheckOutMetadata(),
		CreatedAt:          res.CreatedAt(),
		UpdatedAt:          res.UpdatedAt(),
	}
}

func invoiceToRecord(inv *invoice.Invoice) invoice.Record {
	return invoice.Record{
		ID:                 inv.ID(),
		Number:             inv.Number(),
		ReservationID:      inv.ReservationID(),
		ClientID:           inv.ClientID(),
		Subtotal:           inv.Subtotal(),
		TaxRatePercent:     inv.TaxRate().Percent(),
		TaxAmount:          inv.TaxAmount(),
		Total:              inv.Total(),
		AmountPaid:         inv.AmountPaid(),
		Status:             inv.Status(),
		IssuedAt:           inv.IssuedAt(),
		DueDate:            inv.DueDate(),
		CancellationReason: inv.CancellationReason(),
		CreatedAt:          inv.CreatedAt(),
		UpdatedAt:          inv.UpdatedAt(),
	}
}

func movementToRecord(mv *ledger.Movement) ledger.Record {
	return ledger.Record{
		ID:          mv.ID(),
		ClientID:    mv.ClientID(),
		Type:        mv.Type(),
		Amount:      mv.Amount(),
		Balance:     mv.Balance(),
		Status:      mv.Status(),
		Reference:   mv.Reference(),
		Description: mv.Description(),
		Metadata:    mv.Metadata(),
		ReversalOf:  mv.ReversalOf(),
		CreatedAt:   mv.CreatedAt(),
	}
}
