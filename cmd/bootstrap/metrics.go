package bootstrap

import (
	"order-time-checker/internal/pkg/metrics"

	"go.uber.org/fx"
)

// MetricsNamespace prefixes every exported series.
const MetricsNamespace = "order_time"

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

func NewMetrics() *metrics.Metrics {
	return metrics.New(MetricsNamespace)
}
