package state

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultTickInterval is the render cadence animations rely on.
const DefaultTickInterval = 20 * time.Millisecond

// RenderSync drives Tick and ReconcileRender at a fixed cadence.
type RenderSync struct {
	View     *ViewState
	Interval time.Duration
	Logger   *slog.Logger
	// OnError, when set, receives every render failure.
	OnError func(error)
}

// Step advances the animation to now and renders if anything is stale.
func (s *RenderSync) Step(now time.Time) error {
	s.View.Tick(now)
	return s.View.ReconcileRender()
}

// Run steps until ctx is done. Late ticks are dropped by the ticker, so a
// slow render delays at most one catch-up step.
func (s *RenderSync) Run(ctx context.Context) error {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastErr error
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			err := s.Step(now)
			if err == nil {
				lastErr = nil
				continue
			}
			// A stuck scale failure repeats every tick; report it once.
			if lastErr != nil && errors.Is(err, ErrScale) && err.Error() == lastErr.Error() {
				continue
			}
			lastErr = err
			if s.Logger != nil {
				s.Logger.Warn("render failed", "err", err)
			}
			if s.OnError != nil {
				s.OnError(err)
			}
		}
	}
}
