package response

import (
	"time"

	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                 uuid.UUID      `json:"id"`
	Code               string         `json:"code"`
	ClientID           uuid.UUID      `json:"clientId"`
	RoomID             uuid.UUID      `json:"roomId"`
	RoomNumber         string         `json:"roomNumber,omitempty"`
	RoomType           string         `json:"roomType,omitempty"`
	CheckIn            string         `json:"checkIn"`
	CheckOut           string         `json:"checkOut"`
	Nights             int            `json:"nights"`
	Status             string         `json:"status"`
	CancellationReason *string        `json:"cancellationReason,omitempty"`
	Version            int64          `json:"version"`
	CheckInMetadata    map[string]any `json:"checkInMetadata,omitempty"`
	CheckOutMetadata   map[string]any `json:"checkOutMetadata,omitempty"`
	InvoiceID          *uuid.UUID     `json:"invoiceId,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

type ReservationListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	RoomID     uuid.UUID `json:"roomId"`
	RoomNumber string    `json:"roomNumber"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Status     string    `json:"status"`
	Version    int64     `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ReservationListResponse struct {
	Items      []*ReservationListItemResponse `json:"items"`
	NextCursor *string                        `json:"nextCursor"`
}

type CheckOutResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Invoice     *InvoiceResponse     `json:"invoice"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                 res.ID(),
		Code:               res.Code(),
		ClientID:           res.ClientID(),
		RoomID:             res.RoomID(),
		CheckIn:            formatDate(res.Stay().CheckIn()),
		CheckOut:           formatDate(res.Stay().CheckOut()),
		Nights:             res.Stay().Nights(),
		Status:             res.Status().String(),
		CancellationReason: res.CancellationReason(),
		Version:            res.Version(),
		CheckInMetadata:    res.CheckInMetadata(),
		CheckOutMetadata:   res.CheckOutMetadata(),
		CreatedAt:          res.CreatedAt(),
		UpdatedAt:          res.UpdatedAt(),
	}
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                 v.ID,
		Code:               v.Code,
		ClientID:           v.ClientID,
		RoomID:             v.RoomID,
		RoomNumber:         v.RoomNumber,
		RoomType:           v.RoomType,
		CheckIn:            formatDate(v.CheckIn),
		CheckOut:           formatDate(v.CheckOut),
		Nights:             nights(v.CheckIn, v.CheckOut),
		Status:             v.Status,
		CancellationReason: v.CancellationReason,
		Version:            v.Version,
		CheckInMetadata:    v.CheckInMetadata,
		CheckOutMetadata:   v.CheckOutMetadata,
		InvoiceID:          v.InvoiceID,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationListResponse {
	resp := &ReservationListResponse{
		Items: make([]*ReservationListItemResponse, len(items)),
	}
	for i, it := range items {
		resp.Items[i] = &ReservationListItemResponse{
			ID:         it.ID,
			Code:       it.Code,
			RoomID:     it.RoomID,
			RoomNumber: it.RoomNumber,
			CheckIn:    formatDate(it.CheckIn),
			CheckOut:   formatDate(it.CheckOut),
			Status:     it.Status,
			Version:    it.Version,
			CreatedAt:  it.CreatedAt,
		}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

func formatDate(t time.Time) string {
	return t.UTC().Format(reservation.DateLayout)
}

func nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
