package request

import (
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts accept JSON strings ("120.50") or numbers.

type RegisterPaymentRequest struct {
	ClientID  uuid.UUID       `json:"clientId" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" binding:"required"`
	Reference *string         `json:"reference,omitempty"`
}

func (r RegisterPaymentRequest) ToInput(invoiceID uuid.UUID) (commands.RegisterPaymentInput, error) {
	method, err := payment.ParseMethod(r.Method)
	if err != nil {
		return commands.RegisterPaymentInput{}, err
	}
	return commands.RegisterPaymentInput{
		InvoiceID: invoiceID,
		ClientID:  r.ClientID,
		Amount:    r.Amount,
		Method:    method,
		Reference: r.Reference,
	}, nil
}

type SettleDebtRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method" binding:"required"`
}

func (r SettleDebtRequest) ToInput(clientID uuid.UUID) (commands.SettleDebtInput, error) {
	method, err := payment.ParseMethod(r.Method)
	if err != nil {
		return commands.SettleDebtInput{}, err
	}
	return commands.SettleDebtInput{
		ClientID: clientID,
		Amount:   r.Amount,
		Method:   method,
	}, nil
}

type CancelInvoiceRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AdjustmentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference" binding:"required"`
	Description string          `json:"description"`
}

func (r AdjustmentRequest) ToInput(clientID uuid.UUID) commands.AdjustmentInput {
	return commands.AdjustmentInput{
		ClientID:    clientID,
		Amount:      r.Amount,
		Reference:   r.Reference,
		Description: r.Description,
	}
}

type ReverseMovementRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ChangeRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
