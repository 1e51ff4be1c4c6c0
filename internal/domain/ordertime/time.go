package ordertime

import (
	"fmt"
	"time"

	"order-time-checker/internal/pkg/errs"
)

const (
	TimeLayout     = "15:04"
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"

	minutesPerDay = 24 * 60
)

// ErrFormat marks every failure to read a time-of-day, date-time or duration text.
var ErrFormat = errs.New("invalid time format")

// TimeOfDay is a wall-clock time without a date. The zero value is midnight.
type TimeOfDay struct {
	hour   int
	minute int
	second int
	nanos  int
}

// EndOfDay is what "24:00" normalizes to.
var EndOfDay = TimeOfDay{hour: 23, minute: 59, second: 59, nanos: int(999 * time.Millisecond)}

// NewTimeOfDay builds a TimeOfDay from hour and minute. 24:00 is accepted as EndOfDay.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour == 24 && minute == 0 {
		return EndOfDay, nil
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.Mark(errs.Newf("time %02d:%02d is out of range", hour, minute), ErrFormat)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// ParseTimeOfDay reads strict "HH:mm" text.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	if len(text) != 5 || text[2] != ':' {
		return TimeOfDay{}, errs.Mark(errs.Newf("%q is not in the format HH:mm", text), ErrFormat)
	}
	hour, ok1 := twoDigits(text[0:2])
	minute, ok2 := twoDigits(text[3:5])
	if !ok1 || !ok2 {
		return TimeOfDay{}, errs.Mark(errs.Newf("%q is not in the format HH:mm", text), ErrFormat)
	}
	return NewTimeOfDay(hour, minute)
}

// ParseDateTime reads strict "YYYY-MM-DD HH:mm" text in loc, applying the 24:00 rule.
func ParseDateTime(text string, loc *time.Location) (time.Time, error) {
	if len(text) != len(DateTimeLayout) || text[10] != ' ' {
		return time.Time{}, errs.Mark(errs.Newf("%q is not in the format YYYY-MM-DD HH:mm", text), ErrFormat)
	}
	if loc == nil {
		loc = time.Local
	}
	date, err := time.ParseInLocation(DateLayout, text[:10], loc)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrap(err, fmt.Sprintf("%q has an invalid date", text)), ErrFormat)
	}
	tod, err := ParseTimeOfDay(text[11:])
	if err != nil {
		return time.Time{}, err
	}
	return tod.On(date), nil
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// TimeOfDayOf extracts the wall-clock part of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute(), second: t.Second(), nanos: t.Nanosecond()}
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

// MinuteOfDay is hour*60+minute, used by the day-only comparison mode.
func (t TimeOfDay) MinuteOfDay() int {
	return t.hour*60 + t.minute
}

func (t TimeOfDay) IsEndOfDay() bool {
	return t == EndOfDay
}

// On projects t onto the calendar date of ref, in ref's location.
func (t TimeOfDay) On(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, t.hour, t.minute, t.second, t.nanos, ref.Location())
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.sinceMidnight() < other.sinceMidnight()
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.sinceMidnight() > other.sinceMidnight()
}

func (t TimeOfDay) sinceMidnight() time.Duration {
	return time.Duration(t.hour)*time.Hour +
		time.Duration(t.minute)*time.Minute +
		time.Duration(t.second)*time.Second +
		time.Duration(t.nanos)
}

func (t TimeOfDay) String() string {
	if t.IsEndOfDay() {
		return "24:00"
	}
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
