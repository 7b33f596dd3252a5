package commands

import (
	"context"
	"encoding/json"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/domain/reservation"
	"hotel-core/internal/pkg/clock"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	TopicReservationCreated      = "reservation.created"
	TopicReservationDatesChanged = "reservation.dates_changed"
	TopicReservationCheckedIn    = "reservation.checked_in"
	TopicReservationCheckedOut   = "reservation.checked_out"
	TopicReservationCancelled    = "reservation.cancelled"
	TopicInvoiceIssued           = "invoice.issued"
	TopicInvoiceCancelled        = "invoice.cancelled"
	TopicPaymentRegistered       = "payment.registered"
	TopicLedgerAdjusted          = "ledger.adjusted"
)

type ReservationEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Code          string    `json:"code"`
	ClientID      uuid.UUID `json:"client_id"`
	RoomID        uuid.UUID `json:"room_id"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Status        string    `json:"status"`
	Version       int64     `json:"version"`
	Reason        *string   `json:"reason,omitempty"`
}

type InvoiceEvent struct {
	InvoiceID     uuid.UUID `json:"invoice_id"`
	Number        string    `json:"number"`
	ReservationID uuid.UUID `json:"reservation_id"`
	ClientID      uuid.UUID `json:"client_id"`
	Total         string    `json:"total"`
	Status        string    `json:"status"`
	DueDate       string    `json:"due_date"`
}

type PaymentEvent struct {
	PaymentID uuid.UUID `json:"payment_id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	ClientID  uuid.UUID `json:"client_id"`
	Amount    string    `json:"amount"`
	Method    string    `json:"method"`
}

type LedgerEvent struct {
	MovementID uuid.UUID  `json:"movement_id"`
	ClientID   uuid.UUID  `json:"client_id"`
	Type       string     `json:"type"`
	Amount     string     `json:"amount"`
	Balance    string     `json:"balance"`
	Reference  string     `json:"reference"`
	ReversalOf *uuid.UUID `json:"reversal_of,omitempty"`
}

func reservationEvent(res *reservation.Reservation) ReservationEvent {
	return ReservationEvent{
		ReservationID: res.ID(),
		Code:          res.Code(),
		ClientID:      res.ClientID(),
		RoomID:        res.RoomID(),
		CheckIn:       res.Stay().CheckIn().Format(reservation.DateLayout),
		CheckOut:      res.Stay().CheckOut().Format(reservation.DateLayout),
		Status:        res.Status().String(),
		Version:       res.Version(),
		Reason:        res.CancellationReason(),
	}
}

func invoiceEvent(inv *invoice.Invoice) InvoiceEvent {
	return InvoiceEvent{
		InvoiceID:     inv.ID(),
		Number:        inv.Number(),
		ReservationID: inv.ReservationID(),
		ClientID:      inv.ClientID(),
		Total:         inv.Total().StringFixed(2),
		Status:        inv.Status().String(),
		DueDate:       inv.DueDate().Format(reservation.DateLayout),
	}
}

func paymentEvent(p *payment.Payment) PaymentEvent {
	return PaymentEvent{
		PaymentID: p.ID(),
		InvoiceID: p.InvoiceID(),
		ClientID:  p.ClientID(),
		Amount:    p.Amount().StringFixed(2),
		Method:    string(p.Method()),
	}
}

func ledgerEvent(mv *ledger.Movement) LedgerEvent {
	return LedgerEvent{
		MovementID: mv.ID(),
		ClientID:   mv.ClientID(),
		Type:       string(mv.Type()),
		Amount:     mv.Amount().StringFixed(2),
		Balance:    mv.Balance().StringFixed(2),
		Reference:  mv.Reference(),
		ReversalOf: mv.ReversalOf(),
	}
}

// enqueue stores an event in the outbox as part of the caller's transaction.
func enqueue(ctx context.Context, tx shared.Tx, clk clock.Clock, topic string, aggregateID uuid.UUID, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "failed to encode %s event", topic)
	}
	now := clk.Now()
	return tx.Outbox().Enqueue(ctx, shared.OutboxMessage{
		ID:          uuid.New(),
		Topic:       topic,
		AggregateID: aggregateID,
		Payload:     body,
		Status:      shared.OutboxQueued,
		RunAt:       now,
		CreatedAt:   now,
	})
}
