package resilience

import (
	"sync"
	"time"
)

const defaultThrottleWait = time.Second

// ThrottleConfig configures a throttle.
type ThrottleConfig struct {
	// Name identifies this throttle for logging.
	Name string
	// Wait is the window length. Zero or negative disables throttling.
	Wait time.Duration
	// Leading invokes on the first call of an idle window.
	Leading bool
	// Trailing invokes once with the latest arguments when a window that saw
	// coalesced calls closes.
	Trailing bool
	// OnCoalesce is called when a call is absorbed into the current window.
	OnCoalesce func(name string)
}

// DefaultThrottleConfig returns a one second window with leading and trailing edges on.
func DefaultThrottleConfig(name string) ThrottleConfig {
	return ThrottleConfig{
		Name:     name,
		Wait:     defaultThrottleWait,
		Leading:  true,
		Trailing: true,
	}
}

// Throttle coalesces rapid calls to fn into at most one invocation per window.
// Calls absorbed by a window return the result of the most recent invocation.
type Throttle[A, R any] struct {
	config ThrottleConfig
	fn     func(A) R

	mu         sync.Mutex
	lastInvoke time.Time
	invoked    bool
	last       R
	pending    *A
	timer      *time.Timer
	gen        uint64
}

// NewThrottle creates a throttle around fn.
func NewThrottle[A, R any](config ThrottleConfig, fn func(A) R) *Throttle[A, R] {
	return &Throttle[A, R]{config: config, fn: fn}
}

// Call invokes fn or folds arg into the current window.
func (t *Throttle[A, R]) Call(arg A) R {
	if t.config.Wait <= 0 {
		return t.invoke(arg)
	}

	t.mu.Lock()
	now := time.Now()
	if !t.invoked || now.Sub(t.lastInvoke) >= t.config.Wait {
		t.stopTimerLocked()
		t.invoked = true
		t.lastInvoke = now
		if t.config.Leading {
			t.mu.Unlock()
			return t.invoke(arg)
		}
		t.scheduleLocked(arg, t.config.Wait)
		last := t.last
		t.mu.Unlock()
		return last
	}

	if t.config.Trailing {
		t.scheduleLocked(arg, t.config.Wait-now.Sub(t.lastInvoke))
	}
	last := t.last
	t.mu.Unlock()

	if t.config.OnCoalesce != nil {
		t.config.OnCoalesce(t.config.Name)
	}
	return last
}

// Flush runs a pending trailing call immediately and returns the latest result.
func (t *Throttle[A, R]) Flush() R {
	t.mu.Lock()
	if t.pending == nil {
		last := t.last
		t.mu.Unlock()
		return last
	}
	arg := *t.pending
	t.stopTimerLocked()
	t.lastInvoke = time.Now()
	t.mu.Unlock()
	return t.invoke(arg)
}

// Cancel drops any pending trailing call and resets the window.
func (t *Throttle[A, R]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTimerLocked()
	t.invoked = false
	t.lastInvoke = time.Time{}
}

// Pending reports whether a trailing call is scheduled.
func (t *Throttle[A, R]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

// Wait returns the configured window.
func (t *Throttle[A, R]) Wait() time.Duration {
	return t.config.Wait
}

func (t *Throttle[A, R]) invoke(arg A) R {
	r := t.fn(arg)
	t.mu.Lock()
	t.last = r
	t.mu.Unlock()
	return r
}

// scheduleLocked records arg as the trailing call, arming the timer if idle.
func (t *Throttle[A, R]) scheduleLocked(arg A, after time.Duration) {
	t.pending = &arg
	if t.timer == nil {
		t.gen++
		gen := t.gen
		t.timer = time.AfterFunc(after, func() { t.fire(gen) })
	}
}

func (t *Throttle[A, R]) stopTimerLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.pending = nil
}

// fire runs the trailing call armed under gen; a superseded timer is a no-op.
func (t *Throttle[A, R]) fire(gen uint64) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	if t.pending == nil {
		t.mu.Unlock()
		return
	}
	arg := *t.pending
	t.pending = nil
	t.lastInvoke = time.Now()
	t.mu.Unlock()
	t.invoke(arg)
}
