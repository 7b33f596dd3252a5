package response

import (
	"hotel-core/internal/domain/room"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID           uuid.UUID `json:"id"`
	Number       string    `json:"number"`
	RoomType     string    `json:"roomType"`
	Capacity     int       `json:"capacity"`
	NightlyPrice string    `json:"nightlyPrice"`
	Status       string    `json:"status"`
}

type AvailabilityResponse struct {
	Available bool            `json:"available"`
	Rooms     []*RoomResponse `json:"rooms"`
}

func FromRoom(rm *room.Room) *RoomResponse {
	return &RoomResponse{
		ID:           rm.ID(),
		Number:       rm.Number(),
		RoomType:     rm.RoomType(),
		Capacity:     rm.Capacity(),
		NightlyPrice: money(rm.NightlyPrice()),
		Status:       rm.Status().String(),
	}
}

func FromAvailability(res *queries.AvailabilityResult) *AvailabilityResponse {
	rooms := make([]*RoomResponse, len(res.Rooms))
	for i, v := range res.Rooms {
		rooms[i] = &RoomResponse{
			ID:           v.ID,
			Number:       v.Number,
			RoomType:     v.RoomType,
			Capacity:     v.Capacity,
			NightlyPrice: money(v.NightlyPrice),
			Status:       v.Status,
		}
	}
	return &AvailabilityResponse{Available: res.Available, Rooms: rooms}
}
