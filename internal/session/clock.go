package session

import "fmt"

// Clock is a whole-second countdown. It is a value type: Tick returns the
// next clock instead of mutating, so past states stay comparable.
type Clock struct {
	remaining int64
}

// NewClock creates a countdown starting at the given number of seconds.
// Negative durations start at zero.
func NewClock(seconds int64) Clock {
	if seconds < 0 {
		seconds = 0
	}
	return Clock{remaining: seconds}
}

// Tick decrements the countdown by one second, with a floor at zero.
// Ticking an expired clock leaves it at zero.
func (c Clock) Tick() Clock {
	if c.remaining <= 0 {
		return Clock{remaining: 0}
	}
	return Clock{remaining: c.remaining - 1}
}

// Remaining returns the seconds left on the countdown.
func (c Clock) Remaining() int64 {
	return c.remaining
}

// Expired reports whether the countdown has reached zero.
func (c Clock) Expired() bool {
	return c.remaining == 0
}

// Label formats the remaining time as mm:ss for display.
func (c Clock) Label() string {
	return fmt.Sprintf("%02d:%02d", c.remaining/60, c.remaining%60)
}
