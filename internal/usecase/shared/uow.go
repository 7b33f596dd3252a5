package shared

import (
	"context"
	"time"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/domain/room"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// A failed attempt leaves no partial state behind.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Invoices() InvoiceRepository
	Payments() PaymentRepository
	Ledger() LedgerRepository
	Outbox() OutboxRepository
	Reads() CommandReads
}

type CommandReads interface {
	ClientByID(ctx context.Context, id uuid.UUID) (*ClientSnapshot, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type RoomRepository interface {
	// GetForUpdate locks the room row until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error)
	UpdateStatus(ctx context.Context, rm *room.Room) error
}

type ReservationRepository interface {
	// Insert returns false when a row with the same idempotency key exists.
	Insert(ctx context.Context, res *reservation.Reservation) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*reservation.Reservation, error)
	HasOverlap(ctx context.Context, roomID uuid.UUID, stay reservation.DateRange, exclude *uuid.UUID) (bool, error)
	// Update writes res only if the stored version still equals expectedVersion.
	Update(ctx context.Context, res *reservation.Reservation, expectedVersion int64) error
}

type InvoiceRepository interface {
	Insert(ctx context.Context, inv *invoice.Invoice) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
	// ListUnpaidByClientForUpdate locks PENDING and PARTIAL invoices, oldest issued first.
	ListUnpaidByClientForUpdate(ctx context.Context, clientID uuid.UUID) ([]*invoice.Invoice, error)
	UpdateSettlement(ctx context.Context, inv *invoice.Invoice) error
}

type PaymentRepository interface {
	Insert(ctx context.Context, p *payment.Payment) error
}

type LedgerRepository interface {
	// LockHead serializes postings for one client and returns its current head.
	LockHead(ctx context.Context, clientID uuid.UUID) (ledger.Head, error)
	Append(ctx context.Context, mv *ledger.Movement) error
	FindByID(ctx context.Context, id uuid.UUID) (*ledger.Movement, error)
	MarkReversed(ctx context.Context, id uuid.UUID) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) error
	ClaimBatch(ctx context.Context, now time.Time, limit int) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, status OutboxStatus, lastErr string, retryAt time.Time) error
}
