package api

import (
	"net/http"

	"hotel-core/internal/domain/reservation"
	reqdto "hotel-core/internal/handler/dto/request"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands     commands.ReservationCommands
	queries      queries.ReservationQueries
	availability queries.AvailabilityQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
	availabilityQueries queries.AvailabilityQueries,
) *ReservationHandler {
	return &ReservationHandler{
		commands:     reservationCommands,
		queries:      reservationQueries,
		availability: availabilityQueries,
	}
}

// @Summary Check availability
// @Description List bookable rooms free for the whole stay
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param roomId query string false "Restrict to one room"
// @Param guests query int false "Minimum capacity"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability [get]
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	stay, err := reservation.ParseDateRange(q.CheckIn, q.CheckOut)
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}
	filter := queries.AvailabilityFilter{Stay: stay, Guests: q.Guests}
	if q.RoomID != "" {
		roomID, err := uuid.Parse(q.RoomID)
		if err != nil {
			httperr.BadRequest(c, err, "Invalid room ID format")
			return
		}
		filter.RoomID = &roomID
	}

	result, err := h.availability.Check(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}

// @Summary Create reservation
// @Description Book a room. Replaying the same Idempotency-Key with the same payload returns the stored reservation with 200.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput(idempotencyKey(c))
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	result, err := h.commands.CreateReservation(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReservation(result.Reservation))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List client reservations
// @Description Newest first, keyset paginated
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id}/reservations [get]
func (h *ReservationHandler) ListClientReservations(c *gin.Context) {
	clientID, ok := pathID(c, "client")
	if !ok {
		return
	}
	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	items, next, err := h.queries.ListByClient(c.Request.Context(), clientID, cursor, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

// @Summary Modify reservation dates
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ModifyDatesRequest true "New dates and the version last read"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/dates [patch]
func (h *ReservationHandler) ModifyDates(c *gin.Context) {
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}
	var req reqdto.ModifyDatesRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput(id)
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}

	res, err := h.commands.ModifyDates(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Check in
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionRequest true "Version and optional metadata"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}
	var req reqdto.TransitionRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.commands.CheckIn(c.Request.Context(), req.ToInput(id))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Check out
// @Description Completes the stay, frees the room and issues the invoice
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionRequest true "Version and optional metadata"
// @Success 200 {object} resdto.CheckOutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}
	var req reqdto.TransitionRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.commands.CheckOut(c.Request.Context(), req.ToInput(id))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CheckOutResponse{
		Reservation: resdto.FromReservation(result.Reservation),
		Invoice:     resdto.FromInvoice(result.Invoice),
	})
}

// @Summary Cancel reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest true "Version and reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}
	var req reqdto.CancelReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.commands.CancelReservation(c.Request.Context(), req.ToInput(id))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}
