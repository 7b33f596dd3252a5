//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/infra/memstore"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"
	"hotel-core/internal/usecase/shared"
	"hotel-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixtureNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	ctx   context.Context
	store *memstore.Store
	clock *clock.MockClock
	uow   shared.UnitOfWork

	reservations commands.ReservationCommands
	invoices     commands.InvoiceCommands
	payments     commands.PaymentCommands
	ledger       commands.LedgerCommands
	rooms        commands.RoomCommands

	invoiceReads *memstore.InvoiceReadStore
	accountReads *memstore.AccountReadStore

	clientID uuid.UUID
	room     *room.Room
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithPolicy(t, commands.DefaultBillingPolicy())
}

func newFixtureWithPolicy(t *testing.T, policy commands.BillingPolicy) *fixture {
	t.Helper()

	store := memstore.New()
	clk := clock.NewMockClock(fixtureNow)
	uow := memstore.NewUnitOfWork(store)
	accountLedger := commands.NewAccountLedger(clk)

	f := &fixture{
		ctx:   context.Background(),
		store: store,
		clock: clk,
		uow:   uow,
		reservations: commands.NewReservationUseCase(
			uow,
			commands.NewAvailabilityChecker(),
			commands.NewIdempotencyGuard(),
			commands.NewInvoiceGenerator(accountLedger, policy, clk),
			clk,
		),
		invoices:     commands.NewInvoiceUseCase(uow, accountLedger, clk),
		payments:     commands.NewPaymentUseCase(uow, accountLedger, policy, clk),
		ledger:       commands.NewLedgerUseCase(uow, accountLedger, clk),
		rooms:        commands.NewRoomUseCase(uow, clk),
		invoiceReads: memstore.NewInvoiceReadStore(store),
		accountReads: memstore.NewAccountReadStore(store),
		clientID:     uuid.New(),
	}

	store.AddClient(f.clientID, "Ada Lovelace", "ada@example.com", fixtureNow)
	f.room = f.addRoom(t, "101", "100.00")
	return f
}

func (f *fixture) addRoom(t *testing.T, number, price string) *room.Room {
	t.Helper()
	rm := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
		b.Number = number
		b.NightlyPrice = decimal.RequireFromString(price)
	}).BuildDomain()
	f.store.AddRoom(rm)
	return rm
}

func (f *fixture) addClient() uuid.UUID {
	id := uuid.New()
	f.store.AddClient(id, "Guest "+id.String()[:8], id.String()[:8]+"@example.com", fixtureNow)
	return id
}

func stay(t *testing.T, checkIn, checkOut string) reservation.DateRange {
	t.Helper()
	r, err := reservation.ParseDateRange(checkIn, checkOut)
	require.NoError(t, err)
	return r
}

func (f *fixture) book(t *testing.T, roomID uuid.UUID, s reservation.DateRange) *reservation.Reservation {
	t.Helper()
	result, err := f.reservations.CreateReservation(f.ctx, commands.CreateReservationInput{
		ClientID: f.clientID,
		RoomID:   roomID,
		Stay:     s,
	})
	require.NoError(t, err)
	return result.Reservation
}

// checkedOut books, checks in and checks out a stay, returning the issued invoice.
func (f *fixture) checkedOut(t *testing.T, roomID uuid.UUID, s reservation.DateRange) *invoice.Invoice {
	t.Helper()
	res := f.book(t, roomID, s)

	res, err := f.reservations.CheckIn(f.ctx, commands.TransitionInput{ReservationID: res.ID(), Version: res.Version()})
	require.NoError(t, err)

	out, err := f.reservations.CheckOut(f.ctx, commands.TransitionInput{ReservationID: res.ID(), Version: res.Version()})
	require.NoError(t, err)
	return out.Invoice
}

func (f *fixture) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	b, err := f.accountReads.CurrentBalance(f.ctx, f.clientID)
	require.NoError(t, err)
	return b
}

func (f *fixture) movements(t *testing.T) []*queries.MovementView {
	t.Helper()
	mvs, err := f.accountReads.ListMovements(f.ctx, f.clientID, 100, 0)
	require.NoError(t, err)
	return mvs
}

func (f *fixture) roomStatus(t *testing.T, roomID uuid.UUID) string {
	t.Helper()
	snap, err := f.uow.CommandReads().RoomByID(f.ctx, roomID)
	require.NoError(t, err)
	return snap.Status
}

func (f *fixture) invoiceView(t *testing.T, id uuid.UUID) *queries.InvoiceView {
	t.Helper()
	view, err := f.invoiceReads.FindByID(f.ctx, id)
	require.NoError(t, err)
	return view
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
