package ordertime

import "time"

// HoursMode decides how business-hours gates compare the requested time.
type HoursMode int

const (
	// HoursByInstant compares full instants; overnight windows roll into the next day.
	HoursByInstant HoursMode = iota
	// HoursByTimeOfDay compares minute-of-day values only, ignoring the requested date.
	HoursByTimeOfDay
)

// GateTrace is handed to the trace hook once per evaluated gate.
type GateTrace struct {
	Gate      GateName
	Passed    bool
	Code      Code
	Now       time.Time
	Requested time.Time
	// Bounds is what the requested instant was checked against; zero for gates without a window.
	Bounds    Interval
}

type TraceFunc func(GateTrace)

type Options struct {
	// EnforceMaxLead also rejects requests later than now + max lead time.
	EnforceMaxLead  bool
	// AssumePM moves a morning HH:mm request that is already past by twelve hours.
	AssumePM        bool
	HoursMode       HoursMode
	// DefaultNextDays replaces a missing allowedNextDaysOrder; values below 1 mean 1.
	DefaultNextDays int
	Trace           TraceFunc
}

func (o Options) allowedNextDays(requested *int) int {
	if requested != nil && *requested >= 1 {
		return *requested
	}
	if o.DefaultNextDays >= 1 {
		return o.DefaultNextDays
	}
	return DefaultAllowedNextDays
}

type gateCheck func(ev *evaluation) (bool, Interval)

type gate struct {
	name  GateName
	code  Code
	check gateCheck
}

// Pipeline is an ordered list of gates. The first failing gate decides the outcome.
type Pipeline struct {
	gates []gate
	opts  Options
}

func NewPipeline(variant Variant, opts Options) *Pipeline {
	p := &Pipeline{opts: opts}
	switch variant {
	case VariantDateTime:
		p.gates = []gate{
			{name: GatePast, code: CodePastDateTime, check: checkPast},
			{name: GateHorizon, code: CodeBeyondHorizon, check: checkHorizon},
			{name: GateRestaurantHours, code: CodeOutsideRestaurant, check: checkRestaurantHours},
			{name: GateAcceptHours, code: CodeOutsideAcceptHours, check: checkAcceptHours},
			{name: GateLeadTime, code: CodeOutsideLeadTime, check: checkLeadTime},
		}
	default:
		p.gates = []gate{
			{name: GatePast, code: CodePastTime, check: checkPast},
			{name: GateRestaurantHours, code: CodeOutsideRestaurant, check: checkRestaurantHours},
			{name: GateAcceptHours, code: CodeOutsideAcceptHours, check: checkAcceptHours},
			{name: GateLeadTime, code: CodeOutsideLeadTime, check: checkLeadTime},
		}
	}
	return p
}

func (p *Pipeline) Gates() []GateName {
	names := make([]GateName, len(p.gates))
	for i, g := range p.gates {
		names[i] = g.name
	}
	return names
}

// Evaluate runs the gates over in.
func (p *Pipeline) Evaluate(in Input) Outcome {
	ev := &evaluation{in: in, opts: p.opts}
	for _, g := range p.gates {
		passed, bounds := g.check(ev)
		p.trace(GateTrace{
			Gate:      g.name,
			Passed:    passed,
			Code:      g.code,
			Now:       in.Now,
			Requested: in.Requested,
			Bounds:    bounds,
		})
		if !passed {
			return Rejected(g.name, g.code)
		}
	}
	return Accepted(int(in.Requested.Sub(in.Now) / time.Minute))
}

func (p *Pipeline) trace(t GateTrace) {
	if p.opts.Trace != nil {
		p.opts.Trace(t)
	}
}

// evaluation carries per-call state between gates.
type evaluation struct {
	in     Input
	opts   Options
	accept *Interval
}

func checkPast(ev *evaluation) (bool, Interval) {
	return !ev.in.Requested.Before(ev.in.Now), Interval{Start: ev.in.Now}
}

func checkHorizon(ev *evaluation) (bool, Interval) {
	days := CalendarDays(ev.in.Now, ev.in.Requested)
	last := ev.in.Now.AddDate(0, 0, ev.in.HorizonDays)
	return days <= ev.in.HorizonDays, Interval{Start: ev.in.Now, End: last}
}

func checkRestaurantHours(ev *evaluation) (bool, Interval) {
	if ev.in.Restaurant == nil {
		return true, Interval{}
	}
	return ev.within(*ev.in.Restaurant)
}

func checkAcceptHours(ev *evaluation) (bool, Interval) {
	ok, interval := ev.within(ev.in.Accept)
	ev.accept = &interval
	return ok, interval
}

func checkLeadTime(ev *evaluation) (bool, Interval) {
	accept := ev.acceptInterval()
	lead := ev.in.Lead.Min

	lower := Shift(ev.in.Now, lead)
	if CalendarDays(ev.in.Now, ev.in.Requested) > 0 {
		lower = later(lower, Shift(accept.Start, lead))
	}
	bounds := Interval{Start: lower, End: Shift(accept.End, -lead)}

	if !bounds.Contains(ev.in.Requested) {
		return false, bounds
	}
	if ev.opts.EnforceMaxLead && ev.in.Requested.After(Shift(ev.in.Now, ev.in.Lead.Max)) {
		return false, Interval{Start: lower, End: Shift(ev.in.Now, ev.in.Lead.Max)}
	}
	return true, bounds
}

func (ev *evaluation) within(w Window) (bool, Interval) {
	interval, found := w.Locate(ev.in.Requested)
	if ev.opts.HoursMode == HoursByTimeOfDay {
		if !found {
			interval = w.On(ev.in.Reference)
		}
		return w.ContainsMinute(TimeOfDayOf(ev.in.Requested).MinuteOfDay()), interval
	}
	return found, interval
}

func (ev *evaluation) acceptInterval() Interval {
	if ev.accept != nil {
		return *ev.accept
	}
	interval, _ := ev.in.Accept.Locate(ev.in.Requested)
	return interval
}

// Evaluate resolves req against clockNow and runs the pipeline for its variant.
// Only text that fails to parse produces an error.
func Evaluate(req ValidationRequest, clockNow time.Time, opts Options) (Outcome, error) {
	in, err := req.Resolve(clockNow, opts)
	if err != nil {
		return Outcome{}, err
	}
	return NewPipeline(in.Variant, opts).Evaluate(in), nil
}
