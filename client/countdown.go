package client

import (
	"sync"
	"time"

	"github.com/KwonOil/easyplanner/domain"
)

// BoundsProvider yields the current project bounds as datetime-local strings.
// It is consulted on every tick, so edits to the project take effect without
// restarting the loop.
type BoundsProvider func() (startDate, endDate string)

// Countdown drives the project countdown display. Exactly one tick loop is
// alive per Countdown: Restart cancels the previous loop before starting a
// new one. Once the project has ended the loop stops on its own.
type Countdown struct {
	bounds   BoundsProvider
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	display string
	phase   domain.CountdownPhase
	cancel  chan struct{}
	active  int
}

func NewCountdown(bounds BoundsProvider) *Countdown {
	return &Countdown{
		bounds:   bounds,
		interval: time.Second,
		now:      time.Now,
	}
}

// Restart cancels any running loop, evaluates once immediately, and starts a
// fresh tick loop unless the project has already ended.
func (c *Countdown) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()

	if c.evaluateLocked() == domain.PhaseEnded {
		return
	}

	cancel := make(chan struct{})
	c.cancel = cancel
	c.active++

	go c.loop(cancel)
}

// Stop cancels the running loop, if any.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Countdown) stopLocked() {
	if c.cancel != nil {
		close(c.cancel)
		c.cancel = nil
		c.active--
	}
}

func (c *Countdown) loop(cancel chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.cancel != cancel {
				c.mu.Unlock()
				return
			}
			phase := c.evaluateLocked()
			if phase == domain.PhaseEnded {
				c.stopLocked()
				c.mu.Unlock()
				return
			}
			c.mu.Unlock()
		}
	}
}

// evaluateLocked re-reads the bounds and refreshes the display text.
// Unparseable bounds leave the previous text in place.
func (c *Countdown) evaluateLocked() domain.CountdownPhase {
	startDate, endDate := c.bounds()
	start, err := domain.ParsePlannerTime(startDate)
	if err != nil {
		return c.phase
	}
	end, err := domain.ParsePlannerTime(endDate)
	if err != nil {
		return c.phase
	}

	c.phase, c.display = domain.EvaluateCountdown(start, end, c.now())
	return c.phase
}

// Display returns the current countdown text.
func (c *Countdown) Display() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.display
}

// Phase returns the current countdown phase.
func (c *Countdown) Phase() domain.CountdownPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// ActiveLoops reports how many tick loops are currently alive.
func (c *Countdown) ActiveLoops() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}
