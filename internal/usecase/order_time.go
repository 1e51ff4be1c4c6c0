package usecase

import (
	"context"
	"log/slog"

	"order-time-checker/internal/domain/ordertime"
	"order-time-checker/internal/pkg/clock"
	"order-time-checker/internal/pkg/config"
	"order-time-checker/internal/pkg/errs"
)

// OutcomeRecorder receives one call per finished evaluation.
type OutcomeRecorder interface {
	RecordOutcome(variant, gate string, accepted bool)
}

type nopRecorder struct{}

func (nopRecorder) RecordOutcome(string, string, bool) {}

//go:generate mockgen -source=order_time.go -destination=../../tests/mock/usecase/order_time.go -package=usecasemock

type OrderTimeUseCase interface {
	Validate(ctx context.Context, req ordertime.ValidationRequest) (ordertime.Outcome, error)
}

type orderTimeUseCaseImpl struct {
	clock    clock.Clock
	opts     ordertime.Options
	logger   *slog.Logger
	recorder OutcomeRecorder
}

func NewOrderTimeUseCase(clock clock.Clock, cfg config.Config, logger *slog.Logger, recorder OutcomeRecorder) OrderTimeUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &orderTimeUseCaseImpl{
		clock:    clock,
		opts:     OptionsFromConfig(cfg.OrderTime),
		logger:   logger,
		recorder: recorder,
	}
}

func OptionsFromConfig(cfg config.OrderTimeConfig) ordertime.Options {
	opts := ordertime.Options{
		EnforceMaxLead:  cfg.EnforceMaxLead,
		AssumePM:        cfg.AssumePM,
		DefaultNextDays: cfg.DefaultNextDays,
	}
	if cfg.HoursMode == config.HoursModeTimeOfDay {
		opts.HoursMode = ordertime.HoursByTimeOfDay
	}
	return opts
}

// Validate evaluates req against the injected clock. Malformed time text is
// reported as ErrValidationFailed; the outcome codes themselves are never errors.
func (u *orderTimeUseCaseImpl) Validate(ctx context.Context, req ordertime.ValidationRequest) (ordertime.Outcome, error) {
	opts := u.opts
	if u.logger.Enabled(ctx, slog.LevelDebug) {
		opts.Trace = u.traceGate(ctx)
	}

	outcome, err := ordertime.Evaluate(req, u.clock.Now(), opts)
	if err != nil {
		if errs.Is(err, ordertime.ErrFormat) {
			return ordertime.Outcome{}, errs.Mark(err, errs.ErrValidationFailed)
		}
		return ordertime.Outcome{}, errs.Mark(errs.Wrap(err, "evaluate order time"), errs.ErrEvaluationFailed)
	}

	variant := string(req.Variant())
	u.recorder.RecordOutcome(variant, string(outcome.Gate()), outcome.IsAccepted())
	u.logger.DebugContext(ctx, "order time evaluated",
		"variant", variant,
		"result", outcome.Result(),
		"accepted", outcome.IsAccepted(),
		"gate", string(outcome.Gate()),
	)
	return outcome, nil
}

func (u *orderTimeUseCaseImpl) traceGate(ctx context.Context) ordertime.TraceFunc {
	return func(t ordertime.GateTrace) {
		attrs := []slog.Attr{
			slog.String("gate", string(t.Gate)),
			slog.Bool("passed", t.Passed),
			slog.Time("now", t.Now),
			slog.Time("requested", t.Requested),
		}
		if !t.Passed {
			attrs = append(attrs, slog.Int("code", int(t.Code)))
		}
		if !t.Bounds.Start.IsZero() {
			attrs = append(attrs, slog.Time("bound_start", t.Bounds.Start))
		}
		if !t.Bounds.End.IsZero() {
			attrs = append(attrs, slog.Time("bound_end", t.Bounds.End))
		}
		u.logger.LogAttrs(ctx, slog.LevelDebug, "order time gate", attrs...)
	}
}
