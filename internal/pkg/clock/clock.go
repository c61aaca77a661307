package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// LocalClock reports the current time in a fixed location, so that
// calendar dates derived from it follow the application time zone.
type LocalClock struct {
	loc *time.Location
}

func NewLocalClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &LocalClock{loc: loc}
}

func (c *LocalClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *LocalClock) Location() *time.Location {
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
