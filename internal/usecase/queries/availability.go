package queries

import (
	"context"

	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/infra"

	"github.com/google/uuid"
)

type AvailabilityResult struct {
	Available bool        `json:"available"`
	Rooms     []*RoomView `json:"rooms"`
}

type AvailabilityFilter struct {
	RoomID *uuid.UUID
	Stay   reservation.DateRange
	Guests int
}

type AvailabilityReadStore interface {
	FindRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
	// ListAvailableRooms returns bookable rooms with capacity >= guests and no
	// active reservation overlapping stay. A zero guests value disables the filter.
	ListAvailableRooms(ctx context.Context, roomID *uuid.UUID, guests int, stay reservation.DateRange) ([]*RoomView, error)
}

type AvailabilityQueries interface {
	Check(ctx context.Context, filter AvailabilityFilter) (*AvailabilityResult, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, filter AvailabilityFilter) (*AvailabilityResult, error) {
	if filter.Guests < 0 {
		return nil, ErrInvalidGuests
	}

	if filter.RoomID != nil {
		if _, err := q.store.FindRoom(ctx, *filter.RoomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, err
		}
	}

	rooms, err := q.store.ListAvailableRooms(ctx, filter.RoomID, filter.Guests, filter.Stay)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []*RoomView{}
	}
	return &AvailabilityResult{Available: len(rooms) > 0, Rooms: rooms}, nil
}
