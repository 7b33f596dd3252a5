package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type RoomView struct {
	ID           uuid.UUID       `json:"id"`
	Number       string          `json:"number"`
	RoomType     string          `json:"room_type"`
	Capacity     int             `json:"capacity"`
	NightlyPrice decimal.Decimal `json:"nightly_price"`
	Status       string          `json:"status"`
}

type ClientView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ReservationView struct {
	ID                 uuid.UUID      `json:"id"`
	Code               string         `json:"code"`
	ClientID           uuid.UUID      `json:"client_id"`
	RoomID             uuid.UUID      `json:"room_id"`
	RoomNumber         string         `json:"room_number"`
	RoomType           string         `json:"room_type"`
	CheckIn            time.Time      `json:"check_in"`
	CheckOut           time.Time      `json:"check_out"`
	Status             string         `json:"status"`
	CancellationReason *string        `json:"cancellation_reason,omitempty"`
	Version            int64          `json:"version"`
	CheckInMetadata    map[string]any `json:"check_in_metadata,omitempty"`
	CheckOutMetadata   map[string]any `json:"check_out_metadata,omitempty"`
	InvoiceID          *uuid.UUID     `json:"invoice_id,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Status     string    `json:"status"`
	Version    int64     `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
}

type PaymentView struct {
	ID        uuid.UUID       `json:"id"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	ClientID  uuid.UUID       `json:"client_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Reference *string         `json:"reference,omitempty"`
	PaidAt    time.Time       `json:"paid_at"`
}

type InvoiceView struct {
	ID                 uuid.UUID       `json:"id"`
	Number             string          `json:"number"`
	ReservationID      uuid.UUID       `json:"reservation_id"`
	ClientID           uuid.UUID       `json:"client_id"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	Total              decimal.Decimal `json:"total"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	Outstanding        decimal.Decimal `json:"outstanding"`
	Status             string          `json:"status"`
	IssuedAt           time.Time       `json:"issued_at"`
	DueDate            time.Time       `json:"due_date"`
	CancellationReason *string         `json:"cancellation_reason,omitempty"`
	Payments           []*PaymentView  `json:"payments,omitempty"`
}

type MovementView struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
	ReversalOf  *uuid.UUID      `json:"reversal_of,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}
