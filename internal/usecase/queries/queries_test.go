//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/infra"
	"hotel-core/internal/usecase/queries"
	queriesmock "hotel-core/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var notFound = infra.WrapRepoErr("no rows", nil, infra.KindNotFound)

func listItems(n int) []*queries.ReservationListItem {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := make([]*queries.ReservationListItem, n)
	for i := range items {
		items[i] = &queries.ReservationListItem{
			ID:        uuid.New(),
			Status:    "CONFIRMED",
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
	}
	return items
}

func TestReservationQueries_ListByClient(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	client := &queries.ClientView{ID: clientID, Name: "Grace Hopper"}

	t.Run("first page probes one extra row and returns a cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		clients := queriesmock.NewMockClientReadStore(ctrl)
		rows := listItems(3)

		clients.EXPECT().FindClient(gomock.Any(), clientID).Return(client, nil)
		store.EXPECT().FindByClientFirstPage(gomock.Any(), clientID, 3).Return(rows, nil)

		items, next, err := queries.NewReservationQueries(store, clients).ListByClient(ctx, clientID, nil, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(at))
	})

	t.Run("cursor page uses the keyset and ends without a cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		clients := queriesmock.NewMockClientReadStore(ctrl)
		lastAt := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
		lastID := uuid.New()
		rows := listItems(1)

		clients.EXPECT().FindClient(gomock.Any(), clientID).Return(client, nil)
		store.EXPECT().FindByClientKeyset(gomock.Any(), clientID, lastAt, lastID, queries.DefaultListLimit+1).Return(rows, nil)

		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastAt, lastID)}
		items, next, err := queries.NewReservationQueries(store, clients).ListByClient(ctx, clientID, cursor, 0)
		require.NoError(t, err)
		if diff := cmp.Diff(rows, items); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
		assert.Nil(t, next)
	})

	t.Run("invalid cursor is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		clients := queriesmock.NewMockClientReadStore(ctrl)
		clients.EXPECT().FindClient(gomock.Any(), clientID).Return(client, nil)

		_, _, err := queries.NewReservationQueries(store, clients).
			ListByClient(ctx, clientID, &queries.Cursor{After: "not-a-cursor"}, 10)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		clients := queriesmock.NewMockClientReadStore(ctrl)
		clients.EXPECT().FindClient(gomock.Any(), clientID).Return(nil, notFound)

		_, _, err := queries.NewReservationQueries(store, clients).ListByClient(ctx, clientID, nil, 10)
		assert.ErrorIs(t, err, queries.ErrClientNotFound)
	})
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	id := uuid.New()

	store.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound)
	_, err := queries.NewReservationQueries(store, queriesmock.NewMockClientReadStore(ctrl)).GetByID(context.Background(), id)
	assert.ErrorIs(t, err, queries.ErrReservationNotFound)
}

func TestAccountQueries_GetStatement(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	client := &queries.ClientView{ID: clientID, Name: "Grace Hopper", Email: "grace@example.com"}

	t.Run("page two of five movements", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAccountReadStore(ctrl)
		clients := queriesmock.NewMockClientReadStore(ctrl)
		movements := []*queries.MovementView{
			{ID: uuid.New(), Type: "PAYMENT", Amount: decimal.NewFromInt(100), Balance: decimal.NewFromInt(263)},
			{ID: uuid.New(), Type: "CHARGE", Amount: decimal.NewFromInt(363), Balance: decimal.NewFromInt(363)},
		}

		clients.EXPECT().FindClient(gomock.Any(), clientID).Return(client, nil)
		store.EXPECT().CurrentBalance(gomock.Any(), clientID).Return(decimal.NewFromInt(63), nil)
		store.EXPECT().CountMovements(gomock.Any(), clientID).Return(int64(5), nil)
		store.EXPECT().ListMovements(gomock.Any(), clientID, 2, 2).Return(movements, nil)

		st, err := queries.NewAccountQueries(store, clients).GetStatement(ctx, clientID, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, client, st.Client)
		assert.True(t, st.CurrentBalance.Equal(decimal.NewFromInt(63)))
		assert.Len(t, st.Movements, 2)
		assert.Equal(t, queries.Pagination{Page: 2, Limit: 2, TotalItems: 5, TotalPages: 3}, st.Pagination)
	})

	t.Run("client without movements gets an empty statement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAccountReadStore(ctrl)
		clients := queriesmock.NewMockClientReadStore(ctrl)

		clients.EXPECT().FindClient(gomock.Any(), clientID).Return(client, nil)
		store.EXPECT().CurrentBalance(gomock.Any(), clientID).Return(decimal.Zero, nil)
		store.EXPECT().CountMovements(gomock.Any(), clientID).Return(int64(0), nil)
		store.EXPECT().ListMovements(gomock.Any(), clientID, queries.DefaultListLimit, 0).Return(nil, nil)

		st, err := queries.NewAccountQueries(store, clients).GetStatement(ctx, clientID, 0, 0)
		require.NoError(t, err)
		assert.NotNil(t, st.Movements)
		assert.Empty(t, st.Movements)
		assert.Equal(t, 1, st.Pagination.Page)
		assert.Zero(t, st.Pagination.TotalPages)
	})

	t.Run("negative page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := queries.NewAccountQueries(queriesmock.NewMockAccountReadStore(ctrl), queriesmock.NewMockClientReadStore(ctrl)).
			GetStatement(ctx, clientID, -1, 10)
		assert.ErrorIs(t, err, queries.ErrInvalidPage)
	})

	t.Run("store failure is returned as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAccountReadStore(ctrl)
		clients := queriesmock.NewMockClientReadStore(ctrl)
		boom := errors.New("connection reset")

		clients.EXPECT().FindClient(gomock.Any(), clientID).Return(client, nil)
		store.EXPECT().CurrentBalance(gomock.Any(), clientID).Return(decimal.Zero, boom)

		_, err := queries.NewAccountQueries(store, clients).GetStatement(ctx, clientID, 1, 10)
		assert.ErrorIs(t, err, boom)
	})
}

func TestAvailabilityQueries_Check(t *testing.T) {
	ctx := context.Background()
	stay, err := reservation.ParseDateRange("2026-03-10", "2026-03-13")
	require.NoError(t, err)

	t.Run("free rooms make the result available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAvailabilityReadStore(ctrl)
		rooms := []*queries.RoomView{{ID: uuid.New(), Number: "101", Capacity: 2}}
		store.EXPECT().ListAvailableRooms(gomock.Any(), (*uuid.UUID)(nil), 2, stay).Return(rooms, nil)

		res, err := queries.NewAvailabilityQueries(store).Check(ctx, queries.AvailabilityFilter{Stay: stay, Guests: 2})
		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, rooms, res.Rooms)
	})

	t.Run("no match is an empty, unavailable result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAvailabilityReadStore(ctrl)
		roomID := uuid.New()
		store.EXPECT().FindRoom(gomock.Any(), roomID).Return(&queries.RoomView{ID: roomID}, nil)
		store.EXPECT().ListAvailableRooms(gomock.Any(), &roomID, 0, stay).Return(nil, nil)

		res, err := queries.NewAvailabilityQueries(store).Check(ctx, queries.AvailabilityFilter{RoomID: &roomID, Stay: stay})
		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.NotNil(t, res.Rooms)
	})

	t.Run("unknown room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAvailabilityReadStore(ctrl)
		roomID := uuid.New()
		store.EXPECT().FindRoom(gomock.Any(), roomID).Return(nil, notFound)

		_, err := queries.NewAvailabilityQueries(store).Check(ctx, queries.AvailabilityFilter{RoomID: &roomID, Stay: stay})
		assert.ErrorIs(t, err, queries.ErrRoomNotFound)
	})

	t.Run("negative guests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := queries.NewAvailabilityQueries(queriesmock.NewMockAvailabilityReadStore(ctrl)).
			Check(ctx, queries.AvailabilityFilter{Stay: stay, Guests: -1})
		assert.ErrorIs(t, err, queries.ErrInvalidGuests)
	})
}
