package response

import (
	"time"

	"hotel-core/internal/domain/invoice"
	"hotel-core/internal/domain/ledger"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts are rendered as fixed two-decimal strings.

type InvoiceResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Number             string             `json:"number"`
	ReservationID      uuid.UUID          `json:"reservationId"`
	ClientID           uuid.UUID          `json:"clientId"`
	Subtotal           string             `json:"subtotal"`
	TaxRate            string             `json:"taxRate"`
	TaxAmount          string             `json:"taxAmount"`
	Total              string             `json:"total"`
	AmountPaid         string             `json:"amountPaid"`
	Outstanding        string             `json:"outstanding"`
	Status             string             `json:"status"`
	IssuedAt           time.Time          `json:"issuedAt"`
	DueDate            time.Time          `json:"dueDate"`
	CancellationReason *string            `json:"cancellationReason,omitempty"`
	Payments           []*PaymentResponse `json:"payments,omitempty"`
}

type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoiceId"`
	ClientID  uuid.UUID `json:"clientId"`
	Amount    string    `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	Reference *string   `json:"reference,omitempty"`
	PaidAt    time.Time `json:"paidAt"`
}

type SettlementResponse struct {
	Payments []*PaymentResponse `json:"payments"`
	Total    string             `json:"total"`
}

type MovementResponse struct {
	ID          uuid.UUID      `json:"id"`
	Type        string         `json:"type"`
	Amount      string         `json:"amount"`
	Balance     string         `json:"balance"`
	Status      string         `json:"status"`
	Reference   string         `json:"reference"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	ReversalOf  *uuid.UUID     `json:"reversalOf,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type ClientResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

type StatementResponse struct {
	Client         ClientResponse      `json:"client"`
	CurrentBalance string              `json:"currentBalance"`
	Movements      []*MovementResponse `json:"movements"`
	Pagination     PaginationResponse  `json:"pagination"`
}

func FromInvoice(inv *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:                 inv.ID(),
		Number:             inv.Number(),
		ReservationID:      inv.ReservationID(),
		ClientID:           inv.ClientID(),
		Subtotal:           money(inv.Subtotal()),
		TaxRate:            money(inv.TaxRate().Percent()),
		TaxAmount:          money(inv.TaxAmount()),
		Total:              money(inv.Total()),
		AmountPaid:         money(inv.AmountPaid()),
		Outstanding:        money(inv.Outstanding()),
		Status:             inv.Status().String(),
		IssuedAt:           inv.IssuedAt(),
		DueDate:            inv.DueDate(),
		CancellationReason: inv.CancellationReason(),
	}
}

func FromInvoiceView(v *queries.InvoiceView) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:                 v.ID,
		Number:             v.Number,
		ReservationID:      v.ReservationID,
		ClientID:           v.ClientID,
		Subtotal:           money(v.Subtotal),
		TaxRate:            money(v.TaxRate),
		TaxAmount:          money(v.TaxAmount),
		Total:              money(v.Total),
		AmountPaid:         money(v.AmountPaid),
		Outstanding:        money(v.Outstanding),
		Status:             v.Status,
		IssuedAt:           v.IssuedAt,
		DueDate:            v.DueDate,
		CancellationReason: v.CancellationReason,
	}
	for _, p := range v.Payments {
		resp.Payments = append(resp.Payments, &PaymentResponse{
			ID:        p.ID,
			InvoiceID: p.InvoiceID,
			ClientID:  p.ClientID,
			Amount:    money(p.Amount),
			Method:    p.Method,
			Status:    p.Status,
			Reference: p.Reference,
			PaidAt:    p.PaidAt,
		})
	}
	return resp
}

func FromInvoiceViews(views []*queries.InvoiceView) []*InvoiceResponse {
	resp := make([]*InvoiceResponse, len(views))
	for i, v := range views {
		resp[i] = FromInvoiceView(v)
	}
	return resp
}

func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID(),
		InvoiceID: p.InvoiceID(),
		ClientID:  p.ClientID(),
		Amount:    money(p.Amount()),
		Method:    string(p.Method()),
		Status:    string(p.Status()),
		Reference: p.Reference(),
		PaidAt:    p.PaidAt(),
	}
}

func FromSettlement(payments []*payment.Payment) *SettlementResponse {
	total := decimal.Zero
	resp := &SettlementResponse{Payments: make([]*PaymentResponse, len(payments))}
	for i, p := range payments {
		resp.Payments[i] = FromPayment(p)
		total = total.Add(p.Amount())
	}
	resp.Total = money(total)
	return resp
}

func FromMovement(mv *ledger.Movement) *MovementResponse {
	return &MovementResponse{
		ID:          mv.ID(),
		Type:        string(mv.Type()),
		Amount:      money(mv.Amount()),
		Balance:     money(mv.Balance()),
		Status:      string(mv.Status()),
		Reference:   mv.Reference(),
		Description: mv.Description(),
		Metadata:    mv.Metadata(),
		ReversalOf:  mv.ReversalOf(),
		CreatedAt:   mv.CreatedAt(),
	}
}

func FromStatement(st *queries.Statement) *StatementResponse {
	resp := &StatementResponse{
		Client: ClientResponse{
			ID:    st.Client.ID,
			Name:  st.Client.Name,
			Email: st.Client.Email,
		},
		CurrentBalance: money(st.CurrentBalance),
		Movements:      make([]*MovementResponse, len(st.Movements)),
		Pagination: PaginationResponse{
			Page:       st.Pagination.Page,
			Limit:      st.Pagination.Limit,
			TotalItems: st.Pagination.TotalItems,
			TotalPages: st.Pagination.TotalPages,
		},
	}
	for i, m := range st.Movements {
		resp.Movements[i] = &MovementResponse{
			ID:          m.ID,
			Type:        m.Type,
			Amount:      money(m.Amount),
			Balance:     money(m.Balance),
			Status:      m.Status,
			Reference:   m.Reference,
			Description: m.Description,
			Metadata:    m.Metadata,
			ReversalOf:  m.ReversalOf,
			CreatedAt:   m.CreatedAt,
		}
	}
	return resp
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
