package readstore

import (
	"context"

	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/infra"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
	"hotel-core/internal/usecase/queries"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	ListAvailableRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableRoomsParams) ([]sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindRoom(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	return toRoomView(row)
}

func (r *RoomReadStore) ListAvailableRooms(ctx context.Context, roomID *uuid.UUID, guests int, stay reservation.DateRange) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListAvailableRooms(ctx, r.db, sqlc.ListAvailableRoomsParams{
		RoomID:   pgconv.UUIDPtrToPgtype(roomID),
		Guests:   pgconv.IntToInt32(guests),
		CheckIn:  pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut: pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}

	views := make([]*queries.RoomView, 0, len(rows))
	for _, row := range rows {
		view, err := toRoomView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// RoomByID serves the command side, which needs the price before locking anything.
func (r *RoomReadStore) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	view, err := r.FindRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.RoomSnapshot{
		ID:           view.ID,
		Number:       view.Number,
		RoomType:     view.RoomType,
		Capacity:     view.Capacity,
		NightlyPrice: view.NightlyPrice,
		Status:       view.Status,
	}, nil
}

func toRoomView(row sqlc.Rooms) (*queries.RoomView, error) {
	price, err := pgconv.DecimalFromNumeric(row.NightlyPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid nightly price", err, infra.KindDBFailure)
	}
	return &queries.RoomView{
		ID:           row.ID,
		Number:       row.Number,
		RoomType:     row.RoomType,
		Capacity:     int(row.Capacity),
		NightlyPrice: price,
		Status:       row.Status,
	}, nil
}
