package components

import (
	"order-time-checker/internal/pkg/clock"
	"order-time-checker/internal/pkg/config"
	"order-time-checker/internal/pkg/metrics"
	"order-time-checker/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewOrderTimeUseCase,
	),
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	fx.Annotate(
		func(m *metrics.Metrics) *metrics.Metrics { return m },
		fx.As(new(usecase.OutcomeRecorder)),
	),
)

// NewClock reads "now" in ORDER_TIME_LOCATION.
func NewClock(cfg config.Config) (clock.Clock, error) {
	return clock.NewRealClockIn(cfg.OrderTime.Location)
}
