package api

import (
	"net/http"

	reqdto "hotel-core/internal/handler/dto/request"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	invoices       commands.InvoiceCommands
	payments       commands.PaymentCommands
	ledger         commands.LedgerCommands
	invoiceQueries queries.InvoiceQueries
	accountQueries queries.AccountQueries
}

func NewBillingHandler(
	invoiceCommands commands.InvoiceCommands,
	paymentCommands commands.PaymentCommands,
	ledgerCommands commands.LedgerCommands,
	invoiceQueries queries.InvoiceQueries,
	accountQueries queries.AccountQueries,
) *BillingHandler {
	return &BillingHandler{
		invoices:       invoiceCommands,
		payments:       paymentCommands,
		ledger:         ledgerCommands,
		invoiceQueries: invoiceQueries,
		accountQueries: accountQueries,
	}
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/invoices/{id} [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	id, ok := pathID(c, "invoice")
	if !ok {
		return
	}

	view, err := h.invoiceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary List outstanding invoices
// @Description PENDING and PARTIAL invoices of a client, oldest issued first
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {array} resdto.InvoiceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id}/invoices/outstanding [get]
func (h *BillingHandler) ListOutstandingInvoices(c *gin.Context) {
	clientID, ok := pathID(c, "client")
	if !ok {
		return
	}

	views, err := h.invoiceQueries.ListOutstanding(c.Request.Context(), clientID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceViews(views))
}

// @Summary Register payment
// @Description Record a confirmed payment against an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body reqdto.RegisterPaymentRequest true "Payment"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/invoices/{id}/payments [post]
func (h *BillingHandler) RegisterPayment(c *gin.Context) {
	invoiceID, ok := pathID(c, "invoice")
	if !ok {
		return
	}
	var req reqdto.RegisterPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput(invoiceID)
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	p, err := h.payments.RegisterPayment(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPayment(p))
}

// @Summary Cancel invoice
// @Description Void an unpaid invoice and post a compensating adjustment
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body reqdto.CancelInvoiceRequest true "Reason"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/invoices/{id}/cancel [post]
func (h *BillingHandler) CancelInvoice(c *gin.Context) {
	invoiceID, ok := pathID(c, "invoice")
	if !ok {
		return
	}
	var req reqdto.CancelInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	inv, err := h.invoices.CancelInvoice(c.Request.Context(), invoiceID, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoice(inv))
}

// @Summary Settle debt
// @Description Pay down unpaid invoices oldest first
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body reqdto.SettleDebtRequest true "Amount and method"
// @Success 201 {object} resdto.SettlementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id}/settlements [post]
func (h *BillingHandler) SettleDebt(c *gin.Context) {
	clientID, ok := pathID(c, "client")
	if !ok {
		return
	}
	var req reqdto.SettleDebtRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput(clientID)
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	payments, err := h.payments.SettleDebt(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSettlement(payments))
}

// @Summary Account statement
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.StatementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id}/statement [get]
func (h *BillingHandler) GetStatement(c *gin.Context) {
	clientID, ok := pathID(c, "client")
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	st, err := h.accountQueries.GetStatement(c.Request.Context(), clientID, q.Page, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatement(st))
}

// @Summary Post adjustment
// @Description Manual signed adjustment of a client balance
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body reqdto.AdjustmentRequest true "Signed amount, reference and description"
// @Success 201 {object} resdto.MovementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/clients/{id}/adjustments [post]
func (h *BillingHandler) PostAdjustment(c *gin.Context) {
	clientID, ok := pathID(c, "client")
	if !ok {
		return
	}
	var req reqdto.AdjustmentRequest
	if !bindJSON(c, &req) {
		return
	}

	mv, err := h.ledger.PostAdjustment(c.Request.Context(), req.ToInput(clientID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMovement(mv))
}

// @Summary Reverse movement
// @Description Append the compensating adjustment and mark the original REVERSED
// @Tags movements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movement ID"
// @Param request body reqdto.ReverseMovementRequest true "Reason"
// @Success 201 {object} resdto.MovementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/movements/{id}/reversal [post]
func (h *BillingHandler) ReverseMovement(c *gin.Context) {
	movementID, ok := pathID(c, "movement")
	if !ok {
		return
	}
	var req reqdto.ReverseMovementRequest
	if !bindJSON(c, &req) {
		return
	}

	mv, err := h.ledger.ReverseMovement(c.Request.Context(), movementID, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMovement(mv))
}
