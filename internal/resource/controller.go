package resource

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrLimitExceeded is returned when an acquisition would exceed the limit.
var ErrLimitExceeded = errors.New("resource limit exceeded")

// Config holds quota limits.
type Config struct {
	// Limit is the hard limit on outstanding units.
	// If 0, no hard limit is enforced (only tracking).
	Limit int64
}

// Controller tracks outstanding units against an optional hard limit.
type Controller struct {
	cfg Config

	sem  *semaphore.Weighted // nil if unlimited
	used atomic.Int64
	peak atomic.Int64
}

// NewController creates a new quota controller.
func NewController(cfg Config) *Controller {
	if cfg.Limit < 0 {
		cfg.Limit = 0
	}

	c := &Controller{cfg: cfg}

	if cfg.Limit > 0 {
		c.sem = semaphore.NewWeighted(cfg.Limit)
	}

	return c
}

// TryAcquire attempts to reserve n units.
// Returns ErrLimitExceeded if the limit would be exceeded.
func (c *Controller) TryAcquire(n int64) error {
	if c == nil || n <= 0 {
		return nil
	}

	if c.sem != nil && !c.sem.TryAcquire(n) {
		return ErrLimitExceeded
	}

	used := c.used.Add(n)
	for {
		peak := c.peak.Load()
		if used <= peak || c.peak.CompareAndSwap(peak, used) {
			break
		}
	}
	return nil
}

// Release returns n previously acquired units.
func (c *Controller) Release(n int64) {
	if c == nil || n <= 0 {
		return
	}

	if c.sem != nil {
		c.sem.Release(n)
	}
	c.used.Add(-n)
}

// Usage returns the number of outstanding units.
func (c *Controller) Usage() int64 {
	if c == nil {
		return 0
	}
	return c.used.Load()
}

// Peak returns the highest usage observed.
func (c *Controller) Peak() int64 {
	if c == nil {
		return 0
	}
	return c.peak.Load()
}

// Limit returns the configured limit (0 if unlimited).
func (c *Controller) Limit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.Limit
}
