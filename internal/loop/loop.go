// Package loop provides the frame loop and session state of the game.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pastelshooter/internal/input"
	"github.com/tomz197/pastelshooter/internal/loop/config"
)

// Frontend supplies input and presents frames. Implementations own the
// platform side of the game (terminal, tcell screen, test fakes).
type Frontend interface {
	// Poll returns the input for the coming frame. It must not block.
	Poll() input.Input
	// Render presents the snapshot of the frame that was just simulated.
	Render(f *Frame) error
}

// Clock paces the loop. Tick blocks until the next frame is due and
// returns the time elapsed since the previous tick.
type Clock interface {
	Tick() time.Duration
}

// FrameClock is a Clock capped at a fixed frame rate.
type FrameClock struct {
	frameTime time.Duration
	last      time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock returns a clock that limits ticks to fps per second.
func NewFrameClock(fps int) *FrameClock {
	frameTime := config.TargetFrameTime
	if fps > 0 {
		frameTime = time.Second / time.Duration(fps)
	}
	return &FrameClock{
		frameTime: frameTime,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// Tick sleeps out the rest of the current frame and returns the elapsed
// time since the previous tick. The first tick returns 0.
func (c *FrameClock) Tick() time.Duration {
	if c.last.IsZero() {
		c.last = c.now()
		return 0
	}

	if elapsed := c.now().Sub(c.last); elapsed < c.frameTime {
		c.sleep(c.frameTime - elapsed)
	}

	now := c.now()
	dt := now.Sub(c.last)
	c.last = now
	return dt
}

// Options tunes Run.
type Options struct {
	Logger      *log.Logger   // Defaults to log.Default()
	IdleTimeout time.Duration // Terminate after this long without input; 0 disables
	Validate    bool          // Check session invariants after every step
}

// Run drives the session: Tick → Poll → Step → Render, until the session
// terminates or ctx is done. Cancellation is a normal exit and returns nil.
// A render failure stops the loop and is returned wrapped.
func Run(ctx context.Context, s *Session, fe Frontend, clock Clock, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	logger.Debug("Session started", "stars", len(s.Stars))

	var idle time.Duration
	prev := s.Stats()
	paused := s.Paused()

	for s.State() != StateTerminated {
		select {
		case <-ctx.Done():
			logger.Debug("Loop cancelled", "reason", context.Cause(ctx))
			s.Terminate()
			return nil
		default:
		}

		elapsed := clock.Tick()
		in := fe.Poll()

		if in.Active {
			idle = 0
		} else {
			idle += elapsed
		}
		if opts.IdleTimeout > 0 && idle >= opts.IdleTimeout {
			logger.Info("Idle timeout", "after", idle)
			s.Terminate()
			break
		}

		s.Step(elapsed.Seconds(), in)
		if s.State() == StateTerminated {
			break
		}
		if opts.Validate {
			if err := s.Validate(); err != nil {
				s.Terminate()
				return fmt.Errorf("step: %w", err)
			}
		}

		if p := s.Paused(); p != paused {
			paused = p
			logger.Debug("Pause toggled", "paused", p)
		}
		if st := s.Stats(); st.Resets != prev.Resets {
			logger.Debug("Soft reset", "best", st.Best, "resets", st.Resets)
			prev = st
		}

		if err := fe.Render(s.Frame()); err != nil {
			s.Terminate()
			return fmt.Errorf("render frame: %w", err)
		}
	}

	st := s.Stats()
	logger.Debug("Session ended", "kills", st.Kills, "hits", st.Hits, "resets", st.Resets, "best", st.Best)
	return nil
}
