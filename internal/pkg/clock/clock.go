package clock

import (
	"time"

	"order-time-checker/internal/pkg/errs"
)

type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock in a fixed location.
type RealClock struct {
	loc *time.Location
}

func NewRealClock() Clock {
	return &RealClock{loc: time.Local}
}

// NewRealClockIn resolves an IANA location name. "" and "Local" mean the host zone.
func NewRealClockIn(name string) (Clock, error) {
	if name == "" || name == "Local" {
		return NewRealClock(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errs.Wrap(err, "load clock location "+name)
	}
	return &RealClock{loc: loc}, nil
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *RealClock) Location() *time.Location {
	return c.loc
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
