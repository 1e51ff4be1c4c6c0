package ordertime

import (
	"strconv"
	"strings"
	"time"

	"order-time-checker/internal/pkg/errs"
)

const DefaultAllowedNextDays = 1

// MaxLeadMinutes bounds every lead time value: one leap year.
const MaxLeadMinutes = 366 * minutesPerDay

type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

func (o OrderType) IsValid() bool {
	switch o {
	case OrderTypePickup, OrderTypeDelivery:
		return true
	default:
		return false
	}
}

// Variant selects the request shape and, with it, the gate list.
type Variant string

const (
	// VariantPickupDelivery takes a bare HH:mm requested time and per-type lead times.
	VariantPickupDelivery Variant = "pickup_delivery"
	// VariantDateTime takes a full requested date-time and one service duration range.
	VariantDateTime Variant = "date_time"
)

// LeadTime is the (min, max) preparation range in minutes.
type LeadTime struct {
	Min int
	Max int
}

// ParseServiceDuration reads "a-b" where both parts are positive integers up to
// MaxLeadMinutes, in any order.
func ParseServiceDuration(text string) (LeadTime, error) {
	first, second, found := strings.Cut(text, "-")
	if !found || !allDigits(first) || !allDigits(second) {
		return LeadTime{}, errs.Mark(errs.Newf("service duration %q is not in the format min-max", text), ErrFormat)
	}
	a, errA := strconv.Atoi(first)
	b, errB := strconv.Atoi(second)
	if errA != nil || errB != nil || a <= 0 || b <= 0 {
		return LeadTime{}, errs.Mark(errs.Newf("service duration %q must hold two positive numbers", text), ErrFormat)
	}
	if a > MaxLeadMinutes || b > MaxLeadMinutes {
		return LeadTime{}, errs.Mark(errs.Newf("service duration %q exceeds %d minutes", text, MaxLeadMinutes), ErrFormat)
	}
	return LeadTime{Min: min(a, b), Max: max(a, b)}, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidationRequest is the structurally valid request as received from the boundary.
// Optional text fields are empty when absent.
type ValidationRequest struct {
	OrderType         OrderType
	RequestedTime     string
	RequestedDateTime string

	RestaurantOpen  string
	RestaurantClose string

	OrderAcceptOpen  string
	OrderAcceptClose string

	PickupMin   int
	PickupMax   int
	DeliveryMin int
	DeliveryMax int

	ServiceDuration      string
	AllowedNextDaysOrder *int

	CurrentTime string
}

func (r ValidationRequest) Variant() Variant {
	if r.RequestedDateTime != "" {
		return VariantDateTime
	}
	return VariantPickupDelivery
}

// Input is a request with every text field turned into instants and windows.
type Input struct {
	Variant     Variant
	Now         time.Time
	Requested   time.Time
	// Reference is the date every TimeOfDay field was anchored to.
	Reference   time.Time
	Accept      Window
	Restaurant  *Window
	Lead        LeadTime
	HorizonDays int
}

// ResolveNow picks the evaluation instant: the currentTime override when present,
// the clock reading otherwise. An HH:mm override is anchored to the date of anchor.
func ResolveNow(currentTime string, anchor, clockNow time.Time) (time.Time, error) {
	switch {
	case currentTime == "":
		return clockNow, nil
	case len(currentTime) == len(TimeLayout):
		tod, err := ParseTimeOfDay(currentTime)
		if err != nil {
			return time.Time{}, err
		}
		return tod.On(anchor), nil
	default:
		return ParseDateTime(currentTime, clockNow.Location())
	}
}

// Resolve parses r against clockNow. Every HH:mm field, currentTime included,
// shares one reference date: the requested date for date-aware requests, the
// clock's date otherwise.
func (r ValidationRequest) Resolve(clockNow time.Time, opts Options) (Input, error) {
	in := Input{Variant: r.Variant()}

	switch in.Variant {
	case VariantDateTime:
		requested, err := ParseDateTime(r.RequestedDateTime, clockNow.Location())
		if err != nil {
			return Input{}, err
		}
		now, err := ResolveNow(r.CurrentTime, requested, clockNow)
		if err != nil {
			return Input{}, err
		}
		lead, err := ParseServiceDuration(r.ServiceDuration)
		if err != nil {
			return Input{}, err
		}
		in.Now = now
		in.Requested = requested
		in.Reference = requested
		in.Lead = lead
		in.HorizonDays = opts.allowedNextDays(r.AllowedNextDaysOrder)

	default:
		now, err := ResolveNow(r.CurrentTime, clockNow, clockNow)
		if err != nil {
			return Input{}, err
		}
		tod, err := ParseTimeOfDay(r.RequestedTime)
		if err != nil {
			return Input{}, err
		}
		requested := tod.On(now)
		if opts.AssumePM && requested.Before(now) && tod.Hour() < 12 {
			requested = Shift(requested, 12*60)
		}
		in.Now = now
		in.Requested = requested
		in.Reference = now
		in.Lead = r.leadFor(r.OrderType)
	}

	accept, err := NewWindow(r.OrderAcceptOpen, r.OrderAcceptClose)
	if err != nil {
		return Input{}, err
	}
	in.Accept = accept

	if r.RestaurantOpen != "" && r.RestaurantClose != "" {
		restaurant, err := NewWindow(r.RestaurantOpen, r.RestaurantClose)
		if err != nil {
			return Input{}, err
		}
		in.Restaurant = &restaurant
	}

	return in, nil
}

func (r ValidationRequest) leadFor(orderType OrderType) LeadTime {
	if orderType == OrderTypeDelivery {
		return LeadTime{Min: r.DeliveryMin, Max: r.DeliveryMax}
	}
	return LeadTime{Min: r.PickupMin, Max: r.PickupMax}
}
