package components

import (
	"maison-booking/internal/handler"
	"maison-booking/internal/handler/api"
	"maison-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewConsultationHandler,
		api.NewAppointmentHandler,
		api.NewScheduleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
