package components

import (
	"order-time-checker/internal/handler"
	"order-time-checker/internal/handler/api"
	"order-time-checker/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		validation.New,
		api.NewOrderTimeHandler,
	),
	fx.Invoke(handler.NewRouter),
)
