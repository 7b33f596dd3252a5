package request

import (
	"time"

	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ClientID uuid.UUID `json:"clientId" binding:"required"`
	RoomID   uuid.UUID `json:"roomId" binding:"required"`
	CheckIn  string    `json:"checkIn" binding:"required"`
	CheckOut string    `json:"checkOut" binding:"required"`
}

func (r CreateReservationRequest) ToInput(idempotencyKey *string) (commands.CreateReservationInput, error) {
	stay, err := reservation.ParseDateRange(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		ClientID:       r.ClientID,
		RoomID:         r.RoomID,
		Stay:           stay,
		IdempotencyKey: idempotencyKey,
	}, nil
}

// ModifyDatesRequest: omitted bounds keep their current value.
type ModifyDatesRequest struct {
	Version  int64   `json:"version" binding:"required,min=1"`
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
}

func (r ModifyDatesRequest) ToInput(reservationID uuid.UUID) (commands.ModifyDatesInput, error) {
	checkIn, err := parseOptionalDate(r.CheckIn)
	if err != nil {
		return commands.ModifyDatesInput{}, err
	}
	checkOut, err := parseOptionalDate(r.CheckOut)
	if err != nil {
		return commands.ModifyDatesInput{}, err
	}
	return commands.ModifyDatesInput{
		ReservationID: reservationID,
		Version:       r.Version,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
	}, nil
}

// TransitionRequest is the body of check-in and check-out.
type TransitionRequest struct {
	Version  int64          `json:"version" binding:"required,min=1"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (r TransitionRequest) ToInput(reservationID uuid.UUID) commands.TransitionInput {
	return commands.TransitionInput{
		ReservationID: reservationID,
		Version:       r.Version,
		Metadata:      r.Metadata,
	}
}

type CancelReservationRequest struct {
	Version int64  `json:"version" binding:"required,min=1"`
	Reason  string `json:"reason" binding:"required"`
}

func (r CancelReservationRequest) ToInput(reservationID uuid.UUID) commands.CancelInput {
	return commands.CancelInput{
		ReservationID: reservationID,
		Version:       r.Version,
		Reason:        r.Reason,
	}
}

type AvailabilityQuery struct {
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
	RoomID   string `form:"roomId"`
	Guests   int    `form:"guests" binding:"min=0"`
}

type ListQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"min=0"`
}

type PageQuery struct {
	Page  int `form:"page" binding:"min=0"`
	Limit int `form:"limit" binding:"min=0"`
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	d, err := reservation.ParseDate(*v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
