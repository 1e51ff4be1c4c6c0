package bootstrap

import (
	"order-time-checker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
