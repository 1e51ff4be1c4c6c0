//go:build unit

package builder

import (
	"strconv"

	"order-time-checker/internal/domain/ordertime"
	reqdto "order-time-checker/internal/handler/dto/request"
	"order-time-checker/internal/pkg/ptr"
)

// Reference date for date-aware requests. Tests anchor their clock on it.
const Today = "2024-09-06"

type OrderTimeBuilder struct {
	OrderType            string
	RequestedTime        string
	RequestedDateTime    string
	RestaurantOpen       string
	RestaurantClose      string
	OrderAcceptOpen      string
	OrderAcceptClose     string
	PickupMin            int
	PickupMax            int
	DeliveryMin          int
	DeliveryMax          int
	ServiceDuration      string
	AllowedNextDaysOrder *int
	CurrentTime          string
}

// NewPickupBuilder returns a valid pickup request accepted with 60 minutes.
func NewPickupBuilder() *OrderTimeBuilder {
	return &OrderTimeBuilder{
		OrderType:        string(ordertime.OrderTypePickup),
		RequestedTime:    "15:00",
		RestaurantOpen:   "09:00",
		RestaurantClose:  "22:00",
		OrderAcceptOpen:  "09:00",
		OrderAcceptClose: "21:00",
		PickupMin:        10,
		PickupMax:        30,
		DeliveryMin:      10,
		DeliveryMax:      30,
		CurrentTime:      "14:00",
	}
}

// NewDateTimeBuilder returns a valid date-aware request on Today accepted with 60 minutes.
func NewDateTimeBuilder() *OrderTimeBuilder {
	return &OrderTimeBuilder{
		RequestedDateTime: Today + " 15:00",
		OrderAcceptOpen:   "09:00",
		OrderAcceptClose:  "21:00",
		ServiceDuration:   "10-30",
		CurrentTime:       "14:00",
	}
}

func (b *OrderTimeBuilder) With(mutate func(*OrderTimeBuilder)) *OrderTimeBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

// Build methods
func (b *OrderTimeBuilder) BuildDomain() ordertime.ValidationRequest {
	return ordertime.ValidationRequest{
		OrderType:            ordertime.OrderType(b.OrderType),
		RequestedTime:        b.RequestedTime,
		RequestedDateTime:    b.RequestedDateTime,
		RestaurantOpen:       b.RestaurantOpen,
		RestaurantClose:      b.RestaurantClose,
		OrderAcceptOpen:      b.OrderAcceptOpen,
		OrderAcceptClose:     b.OrderAcceptClose,
		PickupMin:            b.PickupMin,
		PickupMax:            b.PickupMax,
		DeliveryMin:          b.DeliveryMin,
		DeliveryMax:          b.DeliveryMax,
		ServiceDuration:      b.ServiceDuration,
		AllowedNextDaysOrder: b.AllowedNextDaysOrder,
		CurrentTime:          b.CurrentTime,
	}
}

// BuildRequestDTO sets only the fields that belong to the builder's variant.
func (b *OrderTimeBuilder) BuildRequestDTO() reqdto.OrderTimeRequest {
	req := reqdto.OrderTimeRequest{
		RestaurantOpen:   optional(b.RestaurantOpen),
		RestaurantClose:  optional(b.RestaurantClose),
		OrderAcceptOpen:  optional(b.OrderAcceptOpen),
		OrderAcceptClose: optional(b.OrderAcceptClose),
		CurrentTime:      optional(b.CurrentTime),
	}
	if b.RequestedDateTime != "" {
		req.RequestedDateTime = ptr.Of(b.RequestedDateTime)
		req.ServiceDuration = optional(b.ServiceDuration)
		if b.AllowedNextDaysOrder != nil {
			req.AllowedNextDaysOrder = num(*b.AllowedNextDaysOrder)
		}
		return req
	}
	req.OrderType = optional(b.OrderType)
	req.RequestedTime = optional(b.RequestedTime)
	req.PickupMin = num(b.PickupMin)
	req.PickupMax = num(b.PickupMax)
	req.DeliveryMin = num(b.DeliveryMin)
	req.DeliveryMax = num(b.DeliveryMax)
	return req
}

// Fluent builder methods
func (b *OrderTimeBuilder) WithOrderType(orderType ordertime.OrderType) *OrderTimeBuilder {
	b.OrderType = string(orderType)
	return b
}

func (b *OrderTimeBuilder) WithRequestedTime(requested string) *OrderTimeBuilder {
	b.RequestedTime = requested
	return b
}

func (b *OrderTimeBuilder) WithRequestedDateTime(requested string) *OrderTimeBuilder {
	b.RequestedDateTime = requested
	return b
}

// WithRequestedAt sets a date-aware request at hhmm, days after Today.
func (b *OrderTimeBuilder) WithRequestedAt(days int, hhmm string) *OrderTimeBuilder {
	b.RequestedDateTime = DateAfterToday(days) + " " + hhmm
	return b
}

func (b *OrderTimeBuilder) WithCurrentTime(current string) *OrderTimeBuilder {
	b.CurrentTime = current
	return b
}

func (b *OrderTimeBuilder) WithRestaurantHours(openText, closeText string) *OrderTimeBuilder {
	b.RestaurantOpen = openText
	b.RestaurantClose = closeText
	return b
}

func (b *OrderTimeBuilder) WithAcceptHours(openText, closeText string) *OrderTimeBuilder {
	b.OrderAcceptOpen = openText
	b.OrderAcceptClose = closeText
	return b
}

func (b *OrderTimeBuilder) WithPickup(minutes, maxMinutes int) *OrderTimeBuilder {
	b.PickupMin = minutes
	b.PickupMax = maxMinutes
	return b
}

func (b *OrderTimeBuilder) WithDelivery(minutes, maxMinutes int) *OrderTimeBuilder {
	b.DeliveryMin = minutes
	b.DeliveryMax = maxMinutes
	return b
}

func (b *OrderTimeBuilder) WithServiceDuration(duration string) *OrderTimeBuilder {
	b.ServiceDuration = duration
	return b
}

func (b *OrderTimeBuilder) WithAllowedNextDays(days int) *OrderTimeBuilder {
	b.AllowedNextDaysOrder = &days
	return b
}

// DateAfterToday formats Today plus days as YYYY-MM-DD.
func DateAfterToday(days int) string {
	t, _ := ordertime.ParseDateTime(Today+" 00:00", nil)
	return t.AddDate(0, 0, days).Format(ordertime.DateLayout)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.Of(s)
}

func num(v int) *reqdto.Number {
	n := reqdto.Number(strconv.Itoa(v))
	return &n
}
