package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-core/internal/handler/api"
	"hotel-core/internal/handler/middleware"
	"hotel-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	reservation *api.ReservationHandler
	billing     *api.BillingHandler
	room        *api.RoomHandler
}

// NewRouter wires middleware and routes. rdb may be nil when rate limiting is off.
func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reservationHandler *api.ReservationHandler,
	billingHandler *api.BillingHandler,
	roomHandler *api.RoomHandler,
	authMiddleware *middleware.AuthMiddleware,
	rdb *redis.Client,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers{
		reservation: reservationHandler,
		billing:     billingHandler,
		room:        roomHandler,
	}, authMiddleware, middleware.NewRateLimiter(cfg.RateLimit, rdb))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h handlers, authMiddleware *middleware.AuthMiddleware, rateLimit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	limited := []gin.HandlerFunc{rateLimit}

	addRoutes(apiGroup, []route{
		{Method: http.MethodGet, Path: "/availability", Handler: h.reservation.CheckAvailability},
		{Method: http.MethodGet, Path: "/invoices/:id", Handler: h.billing.GetInvoice},
		{Method: http.MethodPost, Path: "/invoices/:id/payments", Handler: h.billing.RegisterPayment, Mw: limited},
		{Method: http.MethodPost, Path: "/invoices/:id/cancel", Handler: h.billing.CancelInvoice, Mw: limited},
		{Method: http.MethodPost, Path: "/movements/:id/reversal", Handler: h.billing.ReverseMovement, Mw: limited},
		{Method: http.MethodPatch, Path: "/rooms/:id/status", Handler: h.room.ChangeStatus, Mw: limited},
	})

	reservations := apiGroup.Group("/reservations")
	{
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.reservation.CreateReservation, Mw: limited},
			{Method: http.MethodGet, Path: "/:id", Handler: h.reservation.GetReservation},
			{Method: http.MethodPatch, Path: "/:id/dates", Handler: h.reservation.ModifyDates, Mw: limited},
			{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.reservation.CheckIn, Mw: limited},
			{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.reservation.CheckOut, Mw: limited},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.reservation.CancelReservation, Mw: limited},
		})
	}

	clients := apiGroup.Group("/clients/:id")
	{
		addRoutes(clients, []route{
			{Method: http.MethodGet, Path: "/reservations", Handler: h.reservation.ListClientReservations},
			{Method: http.MethodGet, Path: "/invoices/outstanding", Handler: h.billing.ListOutstandingInvoices},
			{Method: http.MethodGet, Path: "/statement", Handler: h.billing.GetStatement},
			{Method: http.MethodPost, Path: "/settlements", Handler: h.billing.SettleDebt, Mw: limited},
			{Method: http.MethodPost, Path: "/adjustments", Handler: h.billing.PostAdjustment, Mw: limited},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
