//go:build unit

package ordertime_test

import (
	"testing"
	"time"

	"order-time-checker/internal/domain/ordertime"
	"order-time-checker/internal/pkg/errs"
	"order-time-checker/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceDuration(t *testing.T) {
	t.Run("valid ranges", func(t *testing.T) {
		cases := map[string]ordertime.LeadTime{
			"10-30":     {Min: 10, Max: 30},
			"30-10":     {Min: 10, Max: 30},
			"15-15":     {Min: 15, Max: 15},
			"527040-10": {Min: 10, Max: ordertime.MaxLeadMinutes},
		}
		for text, want := range cases {
			t.Run(text, func(t *testing.T) {
				got, err := ordertime.ParseServiceDuration(text)
				require.NoError(t, err)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("ParseServiceDuration() mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("invalid ranges", func(t *testing.T) {
		for _, text := range []string{"", "10", "10-", "-10", "0-10", "10-0", "a-b", "-10-20", " 10-20", "10-20-30", "1.5-3", "527041-10", "200000000-200000001", "99999999999999999999-1"} {
			t.Run(text, func(t *testing.T) {
				_, err := ordertime.ParseServiceDuration(text)
				require.Error(t, err)
				assert.True(t, errs.Is(err, ordertime.ErrFormat))
			})
		}
	})
}

func TestResolveNow(t *testing.T) {
	clockNow := time.Date(2024, 9, 6, 10, 15, 30, 0, time.UTC)

	t.Run("no override uses the clock", func(t *testing.T) {
		got, err := ordertime.ResolveNow("", clockNow, clockNow)
		require.NoError(t, err)
		assert.Equal(t, clockNow, got)
	})

	t.Run("time override keeps the anchor's date", func(t *testing.T) {
		got, err := ordertime.ResolveNow("14:00", clockNow, clockNow)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 9, 6, 14, 0, 0, 0, time.UTC), got)

		anchor := time.Date(2024, 9, 9, 18, 0, 0, 0, time.UTC)
		got, err = ordertime.ResolveNow("14:00", anchor, clockNow)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 9, 9, 14, 0, 0, 0, time.UTC), got)
	})

	t.Run("date-time override", func(t *testing.T) {
		got, err := ordertime.ResolveNow("2024-09-07 08:00", clockNow.AddDate(0, 0, 3), clockNow)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 9, 7, 8, 0, 0, 0, time.UTC), got)
	})

	t.Run("invalid override", func(t *testing.T) {
		_, err := ordertime.ResolveNow("noon", clockNow, clockNow)
		assert.True(t, errs.Is(err, ordertime.ErrFormat))
	})
}

func TestValidationRequestVariant(t *testing.T) {
	assert.Equal(t, ordertime.VariantPickupDelivery, builder.NewPickupBuilder().BuildDomain().Variant())
	assert.Equal(t, ordertime.VariantDateTime, builder.NewDateTimeBuilder().BuildDomain().Variant())
}

func TestResolve(t *testing.T) {
	clockNow := time.Date(2024, 9, 6, 10, 0, 0, 0, time.UTC)

	t.Run("pickup request uses the pair of its order type", func(t *testing.T) {
		req := builder.NewPickupBuilder().
			WithOrderType(ordertime.OrderTypeDelivery).
			WithDelivery(60, 75).
			BuildDomain()

		in, err := req.Resolve(clockNow, ordertime.Options{})
		require.NoError(t, err)

		assert.Equal(t, ordertime.VariantPickupDelivery, in.Variant)
		assert.Equal(t, ordertime.LeadTime{Min: 60, Max: 75}, in.Lead)
		assert.Equal(t, time.Date(2024, 9, 6, 14, 0, 0, 0, time.UTC), in.Now)
		assert.Equal(t, time.Date(2024, 9, 6, 15, 0, 0, 0, time.UTC), in.Requested)
		assert.Equal(t, in.Now, in.Reference)
		require.NotNil(t, in.Restaurant)
		assert.Equal(t, "09:00-22:00", in.Restaurant.String())
		assert.Equal(t, "09:00-21:00", in.Accept.String())
	})

	t.Run("morning request is moved to the afternoon when assuming PM", func(t *testing.T) {
		req := builder.NewPickupBuilder().WithRequestedTime("03:00").BuildDomain()

		in, err := req.Resolve(clockNow, ordertime.Options{AssumePM: true})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 9, 6, 15, 0, 0, 0, time.UTC), in.Requested)

		in, err = req.Resolve(clockNow, ordertime.Options{})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 9, 6, 3, 0, 0, 0, time.UTC), in.Requested)
	})

	t.Run("date-aware request anchors on the requested date", func(t *testing.T) {
		req := builder.NewDateTimeBuilder().WithRequestedAt(2, "11:00").BuildDomain()

		in, err := req.Resolve(clockNow, ordertime.Options{})
		require.NoError(t, err)

		assert.Equal(t, ordertime.VariantDateTime, in.Variant)
		assert.Equal(t, time.Date(2024, 9, 8, 11, 0, 0, 0, time.UTC), in.Requested)
		assert.Equal(t, in.Requested, in.Reference)
		assert.Equal(t, ordertime.LeadTime{Min: 10, Max: 30}, in.Lead)
		assert.Nil(t, in.Restaurant)
		assert.Equal(t, time.Date(2024, 9, 8, 14, 0, 0, 0, time.UTC), in.Now)
	})

	t.Run("date-aware request keeps a full current date-time", func(t *testing.T) {
		req := builder.NewDateTimeBuilder().
			WithRequestedAt(2, "11:00").
			WithCurrentTime(builder.Today + " 14:00").
			BuildDomain()

		in, err := req.Resolve(clockNow, ordertime.Options{})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 9, 6, 14, 0, 0, 0, time.UTC), in.Now)
	})

	t.Run("horizon defaults", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.OrderTimeBuilder)
			opts   ordertime.Options
			want   int
		}{
			{name: "missing uses one day", want: 1},
			{name: "missing uses configured default", opts: ordertime.Options{DefaultNextDays: 3}, want: 3},
			{name: "explicit value wins", mutate: func(b *builder.OrderTimeBuilder) { b.WithAllowedNextDays(5) }, opts: ordertime.Options{DefaultNextDays: 3}, want: 5},
			{name: "zero falls back to default", mutate: func(b *builder.OrderTimeBuilder) { b.WithAllowedNextDays(0) }, want: 1},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				req := builder.NewDateTimeBuilder().With(c.mutate).BuildDomain()
				in, err := req.Resolve(clockNow, c.opts)
				require.NoError(t, err)
				assert.Equal(t, c.want, in.HorizonDays)
			})
		}
	})

	t.Run("malformed text is a format error", func(t *testing.T) {
		cases := []struct {
			name   string
			base   *builder.OrderTimeBuilder
			mutate func(*builder.OrderTimeBuilder)
		}{
			{name: "requested time", base: builder.NewPickupBuilder(), mutate: func(b *builder.OrderTimeBuilder) { b.WithRequestedTime("7pm") }},
			{name: "current time", base: builder.NewPickupBuilder(), mutate: func(b *builder.OrderTimeBuilder) { b.WithCurrentTime("later") }},
			{name: "restaurant hours", base: builder.NewPickupBuilder(), mutate: func(b *builder.OrderTimeBuilder) { b.WithRestaurantHours("09:00", "late") }},
			{name: "accept hours", base: builder.NewDateTimeBuilder(), mutate: func(b *builder.OrderTimeBuilder) { b.WithAcceptHours("", "21:00") }},
			{name: "requested date-time", base: builder.NewDateTimeBuilder(), mutate: func(b *builder.OrderTimeBuilder) { b.WithRequestedDateTime("2024-13-01 10:00") }},
			{name: "service duration", base: builder.NewDateTimeBuilder(), mutate: func(b *builder.OrderTimeBuilder) { b.WithServiceDuration("10") }},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := c.base.With(c.mutate).BuildDomain().Resolve(clockNow, ordertime.Options{})
				require.Error(t, err)
				assert.True(t, errs.Is(err, ordertime.ErrFormat))
			})
		}
	})
}
