//go:build unit || e2e

package builder

import (
	"time"

	"hotel-core/internal/domain/room"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomBuilder struct {
	ID           uuid.UUID
	Number       string
	RoomType     string
	Capacity     int
	NightlyPrice decimal.Decimal
	Status       room.Status
	CreatedAt    time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:           uuid.New(),
		Number:       "101",
		RoomType:     "DOUBLE",
		Capacity:     2,
		NightlyPrice: decimal.RequireFromString("100.00"),
		Status:       room.StatusAvailable,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(b.ID, b.Number, b.RoomType, b.Capacity, b.NightlyPrice, b.Status, b.CreatedAt, b.CreatedAt)
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:           b.ID,
		Number:       b.Number,
		RoomType:     b.RoomType,
		Capacity:     b.Capacity,
		NightlyPrice: b.NightlyPrice,
		Status:       b.Status.String(),
	}
}
