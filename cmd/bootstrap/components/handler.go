package components

import (
	"dh-booking/internal/handler"
	"dh-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewProductHandler,
	),
	fx.Invoke(handler.NewRouter),
)
