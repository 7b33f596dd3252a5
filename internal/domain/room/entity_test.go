//go:build unit

package room_test

import (
	"strings"
	"testing"
	"time"

	"hotel-core/internal/domain/room"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T) *room.Room {
	t.Helper()
	r, err := room.NewRoom(uuid.New(), " 101 ", "DOUBLE", 2, decimal.RequireFromString("120.499"), time.Now())
	require.NoError(t, err)
	return r
}

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r := newRoom(t)
		assert.Equal(t, "101", r.Number())
		assert.Equal(t, room.StatusAvailable, r.Status())
		assert.Equal(t, "120.5", r.NightlyPrice().String())
		assert.True(t, r.IsBookable())
		assert.True(t, r.CanHost(2))
		assert.False(t, r.CanHost(3))
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			number   string
			capacity int
			price    string
			errIs    error
		}{
			{name: "empty number", number: "  ", capacity: 1, price: "10", errIs: room.ErrEmptyRoomNumber},
			{name: "number too long", number: strings.Repeat("9", room.MaxRoomNumberLength+1), capacity: 1, price: "10", errIs: room.ErrRoomNumberTooLong},
			{name: "zero capacity", number: "102", capacity: 0, price: "10", errIs: room.ErrInvalidCapacity},
			{name: "negative price", number: "102", capacity: 1, price: "-1", errIs: room.ErrNegativePrice},
			{name: "free room", number: "102", capacity: 1, price: "0"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				r, err := room.NewRoom(uuid.New(), c.number, "SINGLE", c.capacity, decimal.RequireFromString(c.price), time.Now())
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, r)
					return
				}
				require.Nil(t, r)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestRoomLifecycle(t *testing.T) {
	now := time.Now()

	t.Run("occupy and release", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.Occupy(now))
		assert.Equal(t, room.StatusOccupied, r.Status())
		assert.ErrorIs(t, r.Occupy(now), room.ErrRoomNotReady)

		require.NoError(t, r.Release(now))
		assert.Equal(t, room.StatusAvailable, r.Status())
		assert.ErrorIs(t, r.Release(now), room.ErrRoomNotOccupied)
	})

	t.Run("maintenance room cannot be checked into", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.SetServiceStatus(room.StatusMaintenance, now))
		assert.True(t, r.IsBookable())
		assert.ErrorIs(t, r.Occupy(now), room.ErrRoomNotReady)
	})

	t.Run("service status changes", func(t *testing.T) {
		cases := []struct {
			name     string
			occupied bool
			target   room.Status
			errIs    error
		}{
			{name: "to maintenance", target: room.StatusMaintenance},
			{name: "to out of service", target: room.StatusOutOfService},
			{name: "back to available", target: room.StatusAvailable},
			{name: "to occupied", target: room.StatusOccupied, errIs: room.ErrStatusNotSettable},
			{name: "unknown status", target: room.Status("BROKEN"), errIs: room.ErrInvalidStatus},
			{name: "occupied room", occupied: true, target: room.StatusMaintenance, errIs: room.ErrRoomOccupied},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				r := newRoom(t)
				if c.occupied {
					require.NoError(t, r.Occupy(now))
				}
				before := r.Status()
				err := r.SetServiceStatus(c.target, now)
				if c.errIs == nil {
					require.NoError(t, err)
					assert.Equal(t, c.target, r.Status())
					return
				}
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, before, r.Status())
			})
		}
	})

	t.Run("out of service room is not bookable", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.SetServiceStatus(room.StatusOutOfService, now))
		assert.False(t, r.IsBookable())
	})
}
