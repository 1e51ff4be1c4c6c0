//go:build unit

package validation_test

import (
	"testing"

	"order-time-checker/internal/domain/ordertime"
	"order-time-checker/internal/handler/validation"
	"order-time-checker/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type validationCase struct {
	name   string
	mutate func(fields map[string]string)
	want   []string
}

func set(key, value string) func(map[string]string) {
	return func(m map[string]string) { m[key] = value }
}

func drop(key string) func(map[string]string) {
	return func(m map[string]string) { delete(m, key) }
}

func pickupFields() map[string]string {
	dto := builder.NewPickupBuilder().BuildRequestDTO()
	return dto.Fields()
}

func dateTimeFields() map[string]string {
	dto := builder.NewDateTimeBuilder().BuildRequestDTO()
	return dto.Fields()
}

func TestPickupDeliveryTable(t *testing.T) {
	runValidationCases(t, pickupFields, []validationCase{
		{name: "valid request"},
		{name: "valid delivery request", mutate: set("orderType", "delivery")},
		{name: "24:00 close", mutate: set("restaurantClose", "24:00")},
		{name: "current date-time override", mutate: set("currentTime", "2024-09-06 14:00")},
		{name: "equal min and max", mutate: set("pickupMax", "10")},
		{name: "missing order type", mutate: drop("orderType"), want: []string{"orderType is required."}},
		{name: "unknown order type", mutate: set("orderType", "dine-in"), want: []string{`orderType must be either "pickup" or "delivery".`}},
		{name: "empty requested time", mutate: set("requestedTime", ""), want: []string{"requestedTime is required."}},
		{name: "malformed requested time", mutate: set("requestedTime", "3pm"), want: []string{"requestedTime must be in the format HH:mm."}},
		{name: "out of range requested time", mutate: set("requestedTime", "24:30"), want: []string{"requestedTime must be in the format HH:mm."}},
		{name: "restaurant closes before it opens", mutate: set("restaurantClose", "08:00"), want: []string{"restaurantClose must be greater than restaurantOpen."}},
		{name: "acceptance closes when it opens", mutate: set("orderAcceptClose", "09:00"), want: []string{"orderAcceptClose must be greater than orderAcceptOpen."}},
		{
			name:   "malformed open skips the ordering rule",
			mutate: set("restaurantOpen", "nine"),
			want:   []string{"restaurantOpen must be in the format HH:mm."},
		},
		{name: "fractional minimum", mutate: set("pickupMin", "1.5"), want: []string{"pickupMin must be an integer."}},
		{name: "negative minimum", mutate: set("deliveryMin", "-5"), want: []string{"deliveryMin must be at least 0."}},
		{name: "max below min", mutate: set("pickupMax", "5"), want: []string{"pickupMax must be greater than or equal to pickupMin."}},
		{
			name: "largest lead time",
			mutate: func(m map[string]string) {
				m["pickupMin"] = "527040"
				m["pickupMax"] = "527040"
			},
		},
		{name: "minimum beyond a year", mutate: set("pickupMin", "527041"), want: []string{"pickupMin must be at most 527040."}},
		{name: "maximum beyond a year", mutate: set("deliveryMax", "600000"), want: []string{"deliveryMax must be at most 527040."}},
		{
			name: "lead times overflowing a duration",
			mutate: func(m map[string]string) {
				m["pickupMin"] = "200000000"
				m["pickupMax"] = "200000001"
			},
			want: []string{"pickupMin must be at most 527040.", "pickupMax must be at most 527040."},
		},
		{name: "malformed current time", mutate: set("currentTime", "now"), want: []string{"currentTime must be in the format HH:mm or YYYY-MM-DD HH:mm."}},
		{
			name: "messages follow table order",
			mutate: func(m map[string]string) {
				delete(m, "deliveryMax")
				m["requestedTime"] = "12"
				delete(m, "orderAcceptOpen")
			},
			want: []string{
				"requestedTime must be in the format HH:mm.",
				"orderAcceptOpen is required.",
				"deliveryMax is required.",
			},
		},
	})
}

func TestDateTimeTable(t *testing.T) {
	runValidationCases(t, dateTimeFields, []validationCase{
		{name: "valid request"},
		{name: "overnight windows", mutate: func(m map[string]string) {
			m["orderAcceptOpen"] = "20:00"
			m["orderAcceptClose"] = "02:00"
			m["restaurantOpen"] = "19:00"
			m["restaurantClose"] = "03:00"
		}},
		{name: "reversed service duration", mutate: set("serviceDuration", "30-10")},
		{name: "horizon given", mutate: set("allowedNextDaysOrder", "3")},
		{name: "missing requested date-time", mutate: drop("requestedDateTime"), want: []string{"requestedDateTime is required."}},
		{name: "malformed requested date-time", mutate: set("requestedDateTime", "invalid-time"), want: []string{"requestedDateTime must be in the format YYYY-MM-DD HH:mm."}},
		{name: "impossible date", mutate: set("requestedDateTime", "2024-02-30 10:00"), want: []string{"requestedDateTime must be in the format YYYY-MM-DD HH:mm."}},
		{
			name: "restaurant hours given",
			mutate: func(m map[string]string) {
				m["restaurantOpen"] = "12:00"
				m["restaurantClose"] = "22:00"
			},
		},
		{
			name: "malformed optional restaurant hours",
			mutate: func(m map[string]string) {
				m["restaurantOpen"] = "9:00"
				m["restaurantClose"] = "22:00"
			},
			want: []string{"restaurantOpen must be in the format HH:mm."},
		},
		{name: "restaurant open without close", mutate: set("restaurantOpen", "16:00"), want: []string{"restaurantClose is required when restaurantOpen is given."}},
		{name: "restaurant close without open", mutate: set("restaurantClose", "22:00"), want: []string{"restaurantOpen is required when restaurantClose is given."}},
		{
			name: "empty restaurant close next to an open",
			mutate: func(m map[string]string) {
				m["restaurantOpen"] = "16:00"
				m["restaurantClose"] = ""
			},
			want: []string{"restaurantClose is required when restaurantOpen is given."},
		},
		{name: "missing service duration", mutate: drop("serviceDuration"), want: []string{"serviceDuration is required."}},
		{
			name:   "zero service duration",
			mutate: set("serviceDuration", "0-30"),
			want:   []string{`serviceDuration must be in the format "min-max" or "max-min", where both are positive numbers.`},
		},
		{name: "longest service duration", mutate: set("serviceDuration", "527040-10")},
		{
			name:   "service duration beyond a year",
			mutate: set("serviceDuration", "200000000-200000001"),
			want:   []string{`serviceDuration must be in the format "min-max" or "max-min", where both are positive numbers.`},
		},
		{name: "zero horizon", mutate: set("allowedNextDaysOrder", "0"), want: []string{"allowedNextDaysOrder must be at least 1."}},
		{name: "fractional horizon", mutate: set("allowedNextDaysOrder", "1.5"), want: []string{"allowedNextDaysOrder must be an integer."}},
	})
}

func TestDetect(t *testing.T) {
	assert.Equal(t, ordertime.VariantPickupDelivery, validation.Detect(pickupFields()))
	assert.Equal(t, ordertime.VariantDateTime, validation.Detect(dateTimeFields()))
	assert.Equal(t, ordertime.VariantDateTime, validation.Detect(map[string]string{"serviceDuration": "10-30"}))
	assert.Equal(t, ordertime.VariantPickupDelivery, validation.Detect(map[string]string{}))
}

func TestValidateRequest(t *testing.T) {
	v := validation.New()

	t.Run("both requested fields", func(t *testing.T) {
		fields := dateTimeFields()
		fields["requestedTime"] = "15:00"

		variant, messages := v.ValidateRequest(fields)
		assert.Equal(t, ordertime.VariantDateTime, variant)
		assert.Equal(t, []string{"requestedTime and requestedDateTime cannot be used together."}, messages)
	})

	t.Run("empty body is validated as pickup", func(t *testing.T) {
		variant, messages := v.ValidateRequest(map[string]string{})
		assert.Equal(t, ordertime.VariantPickupDelivery, variant)
		assert.Len(t, messages, 10)
		assert.Equal(t, "orderType is required.", messages[0])
	})
}

func runValidationCases(t *testing.T, base func() map[string]string, cases []validationCase) {
	t.Helper()
	v := validation.New()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fields := base()
			if c.mutate != nil {
				c.mutate(fields)
			}
			_, got := v.ValidateRequest(fields)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
