package clock

import (
	"sync"
	"time"

	"auction-arena/internal/auctionerrors"
)

// Clock is an armable one-shot countdown. While armed it reports the
// seconds remaining once per second and fires the expiry callback exactly
// once when the countdown reaches zero. The armed flag is cleared in the
// same critical section that tears the ticker down, so a late tick or a
// concurrent arm can never produce a second expiry for the same cycle.
type Clock struct {
	mu       sync.Mutex
	armed    bool
	endTime  time.Time
	duration time.Duration
	stop     chan struct{}

	onTick   func(secondsRemaining int)
	onExpire func()
}

// New creates a disarmed clock with the given default duration. Both
// callbacks are invoked outside the clock's lock and may be nil.
func New(duration time.Duration, onTick func(int), onExpire func()) *Clock {
	return &Clock{
		duration: duration,
		onTick:   onTick,
		onExpire: onExpire,
	}
}

// Arm starts a countdown of the configured duration and returns its end
// time. Arming an already armed clock is a conflict.
func (c *Clock) Arm() (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.armed {
		return time.Time{}, auctionerrors.ErrAlreadyRunning
	}
	c.armed = true
	c.endTime = time.Now().Add(c.duration)
	c.stop = make(chan struct{})

	go c.run(c.stop)
	return c.endTime, nil
}

// Remaining returns the whole seconds left on the countdown, clamped to
// zero. A disarmed clock reports the full configured duration.
func (c *Clock) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.armed {
		return int(c.duration / time.Second)
	}
	rem := time.Until(c.endTime)
	if rem < 0 {
		rem = 0
	}
	// round up so a freshly armed clock reports the full duration
	return int((rem + time.Second - 1) / time.Second)
}

// ForceExpire moves the expiry into the past; the next tick fires it.
func (c *Clock) ForceExpire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.armed {
		c.endTime = time.Now().Add(-time.Second)
	}
}

// Stop disarms the clock without firing expiry and cancels pending ticks.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disarmLocked()
}

// Armed reports whether a countdown is in flight.
func (c *Clock) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armed
}

// SetDuration changes the duration used by the next Arm. Rejected while a
// countdown is in flight.
func (c *Clock) SetDuration(d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.armed {
		return auctionerrors.ErrRunningLocked
	}
	c.duration = d
	return nil
}

// Duration returns the configured countdown duration.
func (c *Clock) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

func (c *Clock) disarmLocked() {
	if !c.armed {
		return
	}
	c.armed = false
	close(c.stop)
	c.stop = nil
}

// run drives one armed cycle. It exits when the cycle is stopped or when
// it has fired expiry.
func (c *Clock) run(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if !c.armed || c.stop != stop {
				c.mu.Unlock()
				return
			}
			rem := time.Until(c.endTime)
			if rem > 0 {
				c.mu.Unlock()
				if c.onTick != nil {
					c.onTick(int((rem + time.Second - 1) / time.Second))
				}
				continue
			}
			// expiry: disarm before invoking the callback so nothing
			// else can fire for this cycle
			c.disarmLocked()
			c.mu.Unlock()
			if c.onExpire != nil {
				c.onExpire()
			}
			return
		}
	}
}
