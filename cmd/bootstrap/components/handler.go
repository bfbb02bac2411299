package components

import (
	"courtbook/internal/handler"
	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewSlotHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
