package components

import (
	"hotel-core/internal/handler"
	"hotel-core/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewBillingHandler,
		api.NewRoomHandler,
	),
	fx.Invoke(handler.NewRouter),
)
