//go:build unit

package usecase_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"order-time-checker/internal/domain/ordertime"
	"order-time-checker/internal/pkg/clock"
	"order-time-checker/internal/pkg/config"
	"order-time-checker/internal/pkg/errs"
	"order-time-checker/internal/usecase"
	"order-time-checker/tests/common/builder"
	usecasemock "order-time-checker/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordedOutcome struct {
	Variant  string
	Gate     string
	Accepted bool
}

type fakeRecorder struct {
	calls []recordedOutcome
}

func (f *fakeRecorder) RecordOutcome(variant, gate string, accepted bool) {
	f.calls = append(f.calls, recordedOutcome{Variant: variant, Gate: gate, Accepted: accepted})
}

func newUseCase(t *testing.T, cfg config.Config, level slog.Level) (usecase.OrderTimeUseCase, *fakeRecorder, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
	recorder := &fakeRecorder{}
	clk := clock.NewMockClock(time.Date(2024, 9, 6, 10, 0, 0, 0, time.UTC))
	return usecase.NewOrderTimeUseCase(clk, cfg, logger, recorder), recorder, buf
}

func TestOrderTimeUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted request is recorded", func(t *testing.T) {
		uc, recorder, _ := newUseCase(t, config.NewTestConfig(), slog.LevelInfo)

		outcome, err := uc.Validate(ctx, builder.NewPickupBuilder().BuildDomain())
		require.NoError(t, err)
		assert.Equal(t, 60, outcome.Result())

		want := []recordedOutcome{{Variant: "pickup_delivery", Gate: "", Accepted: true}}
		if diff := cmp.Diff(want, recorder.calls); diff != "" {
			t.Errorf("recorded outcomes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejection carries the deciding gate", func(t *testing.T) {
		uc, recorder, _ := newUseCase(t, config.NewTestConfig(), slog.LevelInfo)

		req := builder.NewDateTimeBuilder().WithRequestedAt(0, "21:30").BuildDomain()
		outcome, err := uc.Validate(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, -1, outcome.Result())

		want := []recordedOutcome{{Variant: "date_time", Gate: "accept_hours", Accepted: false}}
		if diff := cmp.Diff(want, recorder.calls); diff != "" {
			t.Errorf("recorded outcomes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("configured rules are applied", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.OrderTime.EnforceMaxLead = true
		uc, _, _ := newUseCase(t, cfg, slog.LevelInfo)

		outcome, err := uc.Validate(ctx, builder.NewPickupBuilder().BuildDomain())
		require.NoError(t, err)
		assert.Equal(t, 0, outcome.Result())
		assert.Equal(t, ordertime.GateLeadTime, outcome.Gate())
	})

	t.Run("malformed time is a validation failure", func(t *testing.T) {
		uc, recorder, _ := newUseCase(t, config.NewTestConfig(), slog.LevelInfo)

		_, err := uc.Validate(ctx, builder.NewPickupBuilder().WithRequestedTime("25:00").BuildDomain())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidationFailed))
		assert.True(t, errs.Is(err, ordertime.ErrFormat))
		assert.Empty(t, recorder.calls)
	})

	t.Run("gates are traced at debug level", func(t *testing.T) {
		uc, _, buf := newUseCase(t, config.NewTestConfig(), slog.LevelDebug)

		_, err := uc.Validate(ctx, builder.NewPickupBuilder().BuildDomain())
		require.NoError(t, err)

		logs := buf.String()
		assert.Contains(t, logs, "gate=past")
		assert.Contains(t, logs, "gate=lead_time")
		assert.Contains(t, logs, "order time evaluated")
	})

	t.Run("no trace output above debug level", func(t *testing.T) {
		uc, _, buf := newUseCase(t, config.NewTestConfig(), slog.LevelInfo)

		_, err := uc.Validate(ctx, builder.NewPickupBuilder().BuildDomain())
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestOptionsFromConfig(t *testing.T) {
	got := usecase.OptionsFromConfig(config.OrderTimeConfig{
		EnforceMaxLead:  true,
		AssumePM:        true,
		HoursMode:       config.HoursModeTimeOfDay,
		DefaultNextDays: 4,
	})

	assert.True(t, got.EnforceMaxLead)
	assert.True(t, got.AssumePM)
	assert.Equal(t, ordertime.HoursByTimeOfDay, got.HoursMode)
	assert.Equal(t, 4, got.DefaultNextDays)
	assert.Nil(t, got.Trace)
}

func TestOrderTimeUseCase_RecordsRejectingGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := usecasemock.NewMockOutcomeRecorder(ctrl)
	recorder.EXPECT().RecordOutcome("date_time", "horizon", false).Times(1)

	clk := clock.NewMockClock(time.Date(2024, 9, 6, 10, 0, 0, 0, time.UTC))
	uc := usecase.NewOrderTimeUseCase(clk, config.NewTestConfig(), slog.New(slog.DiscardHandler), recorder)

	req := builder.NewDateTimeBuilder().WithRequestedAt(3, "15:00").WithCurrentTime("").BuildDomain()
	outcome, err := uc.Validate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Result())
	assert.Equal(t, ordertime.GateHorizon, outcome.Gate())
}
