package components

import (
	"booking-ops-portal/internal/handler"
	"booking-ops-portal/internal/handler/api"
	"booking-ops-portal/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDecisionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
