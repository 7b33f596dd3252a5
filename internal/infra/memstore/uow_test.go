//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/memstore"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/usecase/shared"
	"hotel-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) (*memstore.Store, shared.UnitOfWork, *builder.ReservationBuilder) {
	t.Helper()
	store := memstore.New()
	b := builder.NewReservationBuilder()
	store.AddClient(b.ClientID, "Grace Hopper", "grace@example.com", b.CreatedAt)
	store.AddRoom(builder.NewRoomBuilder().With(func(r *builder.RoomBuilder) { r.ID = b.RoomID }).BuildDomain())
	return store, memstore.NewUnitOfWork(store), b
}

func TestUnitOfWork_Within(t *testing.T) {
	ctx := context.Background()

	t.Run("rollback: failed transaction leaves no rows behind", func(t *testing.T) {
		store, uow, b := seed(t)
		boom := errors.New("boom")

		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			inserted, err := tx.Reservations().Insert(ctx, b.BuildDomain())
			require.NoError(t, err)
			require.True(t, inserted)
			require.NoError(t, tx.Outbox().Enqueue(ctx, shared.OutboxMessage{ID: uuid.New(), Topic: "t", RunAt: b.CreatedAt}))
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, store.Counts()["reservations"])
		assert.Equal(t, 0, store.Counts()["outbox_events"])
	})

	t.Run("error: cancelled context never runs fn", func(t *testing.T) {
		_, uow, _ := seed(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		called := false
		err := uow.Within(cctx, func(context.Context, shared.Tx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestReservationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("insert: duplicate idempotency key reports false", func(t *testing.T) {
		_, uow, b := seed(t)
		clk := clock.NewMockClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		key := "dup-key"
		newRes := func(checkIn string) *reservation.Reservation {
			s, err := reservation.ParseDateRange(checkIn, "2026-03-25")
			require.NoError(t, err)
			res, err := reservation.NewReservation(clk, reservation.NewParams{
				ClientID: b.ClientID, RoomID: b.RoomID, Stay: s, IdempotencyKey: &key,
			})
			require.NoError(t, err)
			return res
		}

		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			inserted, err := tx.Reservations().Insert(ctx, newRes("2026-03-20"))
			require.NoError(t, err)
			assert.True(t, inserted)

			inserted, err = tx.Reservations().Insert(ctx, newRes("2026-03-22"))
			require.NoError(t, err)
			assert.False(t, inserted)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("insert: overlapping active stay is a conflict", func(t *testing.T) {
		_, uow, b := seed(t)
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Reservations().Insert(ctx, b.BuildDomain())
			require.NoError(t, err)

			other := builder.NewReservationBuilder().With(func(o *builder.ReservationBuilder) {
				o.ClientID = b.ClientID
				o.RoomID = b.RoomID
				o.CheckIn = b.CheckIn.AddDate(0, 0, 1)
				o.CheckOut = b.CheckOut.AddDate(0, 0, 1)
			}).BuildDomain()
			_, err = tx.Reservations().Insert(ctx, other)
			assert.True(t, infra.IsKind(err, infra.KindConflict))
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("update: stale expected version", func(t *testing.T) {
		_, uow, b := seed(t)
		res := b.BuildDomain()
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Reservations().Insert(ctx, res)
			require.NoError(t, err)

			err = tx.Reservations().Update(ctx, res, res.Version()+1)
			assert.True(t, infra.IsKind(err, infra.KindStaleVersion))
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("lookup: missing rows are KindNotFound", func(t *testing.T) {
		_, uow, _ := seed(t)
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Reservations().FindByID(ctx, uuid.New())
			assert.True(t, infra.IsKind(err, infra.KindNotFound))
			_, err = tx.Reservations().FindByIdempotencyKey(ctx, "nope")
			assert.True(t, infra.IsKind(err, infra.KindNotFound))
			return nil
		})
		require.NoError(t, err)
	})
}
