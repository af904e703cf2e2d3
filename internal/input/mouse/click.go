package mouse

import "time"

// ClickCounter tracks click patterns for double/triple click detection.
type ClickCounter struct {
	maxTime     time.Duration
	maxDistance int

	lastPos   Position
	lastTime  time.Time
	lastCount int
}

// NewClickCounter creates a click counter with the given thresholds.
func NewClickCounter(maxTime time.Duration, maxDistance int) *ClickCounter {
	return &ClickCounter{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// SetMaxTime changes the double-click interval.
func (c *ClickCounter) SetMaxTime(d time.Duration) {
	c.maxTime = d
}

// Record records a press and returns the click count (1, 2, or 3).
// The count wraps back to 1 after 3 (quad-click = single click).
func (c *ClickCounter) Record(pos Position, at time.Time) int {
	if c.continues(pos, at) {
		c.lastCount++
		if c.lastCount > 3 {
			c.lastCount = 1
		}
	} else {
		c.lastCount = 1
	}

	c.lastPos = pos
	c.lastTime = at
	return c.lastCount
}

// continues checks if a press extends the current click sequence.
func (c *ClickCounter) continues(pos Position, at time.Time) bool {
	if c.lastCount == 0 || c.lastTime.IsZero() {
		return false
	}

	// Clock skew: a negative interval starts a new sequence
	elapsed := at.Sub(c.lastTime)
	if elapsed < 0 || elapsed > c.maxTime {
		return false
	}

	return pos.Distance(c.lastPos) <= c.maxDistance
}

// Reset clears the click tracking state.
func (c *ClickCounter) Reset() {
	c.lastCount = 0
	c.lastTime = time.Time{}
	c.lastPos = Position{}
}
