package repository

import (
	"context"

	"hotel-core/internal/domain/room"
	"hotel-core/internal/infra"
	"hotel-core/internal/infra/repository/converter"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	GetRoomForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	UpdateRoomStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomStatusParams) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	rm, err := converter.RoomFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room row", err, infra.KindDBFailure)
	}
	return rm, nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, rm *room.Room) error {
	params := sqlc.UpdateRoomStatusParams{
		ID:        rm.ID(),
		Status:    rm.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(rm.UpdatedAt()),
	}
	affected, err := r.queries.UpdateRoomStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
