//go:build unit || e2e

package builder

import (
	"time"

	"hotel-core/internal/domain/reservation"
	reqdto "hotel-core/internal/handler/dto/request"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	RoomID    uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	Status    reservation.Status
	Version   int64
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        uuid.New(),
		ClientID:  uuid.New(),
		RoomID:    uuid.New(),
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, 3),
		Status:    reservation.StatusConfirmed,
		Version:   1,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Stay() reservation.DateRange {
	stay, err := reservation.NewDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return stay
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	stay := b.Stay()
	return reservation.ReconstructReservation(reservation.Record{
		ID:          b.ID,
		Code:        reservation.GenerateCode(b.ID, b.CheckIn),
		ClientID:    b.ClientID,
		RoomID:      b.RoomID,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		Status:      b.Status,
		Version:     b.Version,
		Fingerprint: reservation.Fingerprint(b.ClientID, b.RoomID, stay),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	})
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         b.ID,
		Code:       reservation.GenerateCode(b.ID, b.CheckIn),
		ClientID:   b.ClientID,
		RoomID:     b.RoomID,
		RoomNumber: "101",
		RoomType:   "DOUBLE",
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Status:     b.Status.String(),
		Version:    b.Version,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ClientID: b.ClientID,
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn.Format(reservation.DateLayout),
		CheckOut: b.CheckOut.Format(reservation.DateLayout),
	}
}
