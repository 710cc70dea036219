package request

import (
	"context"

	"github.com/kbukum/reqkit/errors"
	"github.com/kbukum/reqkit/resilience"
)

type call struct {
	ctx      context.Context
	endpoint string
	data     any
	params   Values
	headers  Values
}

type result struct {
	value any
	err   error
}

// Throttle decorates r so rapid repeated calls collapse into at most one
// call per window. Absorbed calls return the latest result; with a trailing
// edge the newest absorbed call runs when the window closes, under its own ctx.
// Arguments that do reach r are forwarded unchanged.
func Throttle(r Requester, cfg resilience.ThrottleConfig) Requester {
	th := NewThrottle(r, cfg)
	return th.Call
}

// Throttled is the handle behind Throttle, exposing Flush and Cancel.
type Throttled struct {
	th *resilience.Throttle[call, result]
}

// NewThrottle wraps r in a Throttled requester.
func NewThrottle(r Requester, cfg resilience.ThrottleConfig) *Throttled {
	return &Throttled{
		th: resilience.NewThrottle(cfg, func(c call) result {
			if r == nil {
				return result{err: errors.NotCallable("requester")}
			}
			v, err := r(c.ctx, c.endpoint, c.data, c.params, c.headers)
			return result{value: v, err: err}
		}),
	}
}

// Call satisfies Requester.
func (t *Throttled) Call(ctx context.Context, endpoint string, data any, params, headers Values) (any, error) {
	res := t.th.Call(call{ctx: ctx, endpoint: endpoint, data: data, params: params, headers: headers})
	return res.value, res.err
}

// Flush runs a pending trailing call now.
func (t *Throttled) Flush() (any, error) {
	res := t.th.Flush()
	return res.value, res.err
}

// Cancel drops a pending trailing call and resets the window.
func (t *Throttled) Cancel() {
	t.th.Cancel()
}
