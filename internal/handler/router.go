package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courtbook/internal/domain/user"
	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reservationHandler *api.ReservationHandler,
	paymentHandler *api.PaymentHandler,
	slotHandler *api.SlotHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, paymentHandler, slotHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	paymentHandler *api.PaymentHandler,
	slotHandler *api.SlotHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleClient)}},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: reservationHandler.ConfirmReservation,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleProvider)}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: reservationHandler.RejectReservation,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleProvider)}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleClient)}},
				{Method: http.MethodPost, Path: "/:id/finalize", Handler: reservationHandler.FinalizeReservation,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleProvider)}},
				{Method: http.MethodGet, Path: "/:id/payment", Handler: paymentHandler.GetReservationPayment},
				{Method: http.MethodGet, Path: "/:id/refund", Handler: paymentHandler.GetReservationRefund},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: paymentHandler.SubmitPayment,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleClient)}},
				{Method: http.MethodPost, Path: "/:id/refund", Handler: paymentHandler.RefundPayment,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/:id/refund/reject", Handler: paymentHandler.RejectRefund,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/:id/receipt", Handler: paymentHandler.IssueReceipt},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth())
		{
			addRoutes(services, []route{
				{Method: http.MethodPost, Path: "/:id/slots", Handler: slotHandler.AddSlots,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleProvider)}},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: slotHandler.ListSlots},
				{Method: http.MethodGet, Path: "/:id/capacity", Handler: slotHandler.CheckCapacity},
			})
		}
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
