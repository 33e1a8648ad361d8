package interaction

import (
	"context"
	"time"
)

// DefaultRotationInterval is the cadence used when a Rotator is built
// without one, matching the glide animation style.
const DefaultRotationInterval = 4 * time.Second

// Rotator drives a Coordinator's rotation from a wall-clock ticker. The TUI
// has its own frame timer, so this exists for headless hosts such as the
// HTTP facade, where the map should keep cycling with nobody at the
// keyboard.
type Rotator struct {
	coordinator *Coordinator
	interval    time.Duration
}

// NewRotator returns a Rotator ticking at the given interval. Intervals of
// zero or less fall back to DefaultRotationInterval.
func NewRotator(c *Coordinator, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultRotationInterval
	}
	return &Rotator{coordinator: c, interval: interval}
}

// Run ticks the coordinator until the context is canceled. The ticker keeps
// firing even while a county is selected; each tick simply lands without
// effect until the selection clears, so rotation resumes on the next beat
// rather than needing a restart.
func (r *Rotator) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.coordinator.Tick()
		}
	}
}
