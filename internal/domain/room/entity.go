package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrRoomNumberTooLong = errors.New("room number is too long (max 20 characters)")
	ErrInvalidCapacity   = errors.New("room capacity must be positive")
	ErrNegativePrice     = errors.New("nightly price cannot be negative")
	ErrInvalidStatus     = errors.New("invalid room status")
	ErrRoomNotBookable   = errors.New("room is out of service")
	ErrRoomNotReady      = errors.New("room is not ready for check-in")
	ErrRoomOccupied      = errors.New("occupied room status can only change through check-out")
	ErrRoomNotOccupied   = errors.New("room is not occupied")
	ErrStatusNotSettable = errors.New("status cannot be set by maintenance")
)

const (
	MaxRoomNumberLength = 20
)

type Room struct {
	id           uuid.UUID
	number       string
	roomType     string
	capacity     int
	nightlyPrice decimal.Decimal
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRoom(id uuid.UUID, number, roomType string, capacity int, nightlyPrice decimal.Decimal, now time.Time) (*Room, error) {
	if err := validateRoomNumber(number); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if nightlyPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Room{
		id:           id,
		number:       strings.TrimSpace(number),
		roomType:     strings.TrimSpace(roomType),
		capacity:     capacity,
		nightlyPrice: nightlyPrice.Round(2),
		status:       StatusAvailable,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number, roomType string,
	capacity int,
	nightlyPrice decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:           id,
		number:       number,
		roomType:     roomType,
		capacity:     capacity,
		nightlyPrice: nightlyPrice,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// IsBookable reports whether new stays may be placed on the room.
func (r *Room) IsBookable() bool {
	return r.status != StatusOutOfService
}

func (r *Room) CanHost(guests int) bool {
	return guests <= r.capacity
}

// Occupy marks the room taken at check-in.
func (r *Room) Occupy(now time.Time) error {
	if r.status != StatusAvailable {
		return ErrRoomNotReady
	}
	r.status = StatusOccupied
	r.updatedAt = now
	return nil
}

// Release frees the room at check-out or when an in-progress stay is cancelled.
func (r *Room) Release(now time.Time) error {
	if r.status != StatusOccupied {
		return ErrRoomNotOccupied
	}
	r.status = StatusAvailable
	r.updatedAt = now
	return nil
}

// SetServiceStatus covers maintenance operations.
func (r *Room) SetServiceStatus(target Status, now time.Time) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !target.IsServiceStatus() {
		return ErrStatusNotSettable
	}
	if r.status == StatusOccupied {
		return ErrRoomOccupied
	}
	r.status = target
	r.updatedAt = now
	return nil
}

func (r *Room) ID() uuid.UUID { return r.id }
func (r *Room) Number() string { return r.number }
func (r *Room) RoomType() string { return r.roomType }
func (r *Room) Capacity() int { return r.capacity }
func (r *Room) NightlyPrice() decimal.Decimal { return r.nightlyPrice }
func (r *Room) Status() Status { return r.status }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

func validateRoomNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrEmptyRoomNumber
	}
	if len(number) > MaxRoomNumberLength {
		return ErrRoomNumberTooLong
	}
	return nil
}
