package ordertime

import (
	"math"
	"time"
)

// maxShiftMinutes is the largest shift a time.Duration can hold.
const maxShiftMinutes = int(math.MaxInt64 / int64(time.Minute))

// Shift returns t moved by minutes. t itself is never modified. Shifts beyond
// what a time.Duration holds saturate instead of wrapping around.
func Shift(t time.Time, minutes int) time.Time {
	minutes = max(-maxShiftMinutes, min(minutes, maxShiftMinutes))
	return t.Add(time.Duration(minutes) * time.Minute)
}

// Within reports start <= t <= end.
func Within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// CalendarDays counts the calendar days from the date of `from` to the date of `to`.
func CalendarDays(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func SameDate(a, b time.Time) bool {
	return CalendarDays(a, b) == 0
}

// Interval is a concrete [Start, End] span, both ends inclusive.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Contains(t time.Time) bool {
	return Within(t, i.Start, i.End)
}

// Window is a recurring daily [Open, Close] pair. Close before Open means the
// window runs past midnight.
type Window struct {
	Open  TimeOfDay
	Close TimeOfDay
}

func NewWindow(openText, closeText string) (Window, error) {
	o, err := ParseTimeOfDay(openText)
	if err != nil {
		return Window{}, err
	}
	c, err := ParseTimeOfDay(closeText)
	if err != nil {
		return Window{}, err
	}
	return Window{Open: o, Close: c}, nil
}

func (w Window) Wraps() bool {
	return w.Close.Before(w.Open)
}

// On returns the window instance that opens on the date of ref.
func (w Window) On(ref time.Time) Interval {
	start := w.Open.On(ref)
	end := w.Close.On(ref)
	if w.Wraps() {
		end = end.AddDate(0, 0, 1)
	}
	return Interval{Start: start, End: end}
}

// Locate finds the window instance containing t. An overnight window that opened
// the day before t's date is considered too.
func (w Window) Locate(t time.Time) (Interval, bool) {
	today := w.On(t)
	if today.Contains(t) {
		return today, true
	}
	if w.Wraps() {
		yesterday := w.On(t.AddDate(0, 0, -1))
		if yesterday.Contains(t) {
			return yesterday, true
		}
	}
	return today, false
}

// ContainsMinute is the day-only check on minute-of-day values.
func (w Window) ContainsMinute(minute int) bool {
	openMin := w.Open.MinuteOfDay()
	closeMin := w.Close.MinuteOfDay()
	if openMin <= closeMin {
		return minute >= openMin && minute <= closeMin
	}
	return minute >= openMin || minute <= closeMin
}

func (w Window) String() string {
	return w.Open.String() + "-" + w.Close.String()
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
