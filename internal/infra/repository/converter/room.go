package converter

import (
	"hotel-core/internal/domain/room"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
)

func RoomFromRow(row sqlc.Rooms) (*room.Room, error) {
	price, err := pgconv.DecimalFromNumeric(row.NightlyPrice)
	if err != nil {
		return nil, err
	}
	return room.ReconstructRoom(
		row.ID,
		row.Number,
		row.RoomType,
		int(row.Capacity),
		price,
		room.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
