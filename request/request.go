package request

import (
	"context"
	"sync"
)

// Values is a params or headers mapping. A nil Values means "absent".
type Values map[string]any

// Transform maps an optional params or headers mapping to one of the same shape.
type Transform func(Values) Values

// Func is the request primitive signature.
type Func func(ctx context.Context, method, endpoint string, data any, params, headers Values) (any, error)

// Requester is a primitive with its method bound.
type Requester func(ctx context.Context, endpoint string, data any, params, headers Values) (any, error)

// Builder produces a fully configured Requester from a method name.
type Builder func(method string) Requester

// Identity returns v unchanged, including nil.
func Identity(v Values) Values { return v }

// Primitive forwards calls to a swappable send hook.
// It never applies defaults of its own.
type Primitive struct {
	mu   sync.RWMutex
	send Func
}

// SetSend installs fn as the send hook. A nil fn turns Do into a no-op.
func (p *Primitive) SetSend(fn Func) {
	p.mu.Lock()
	p.send = fn
	p.mu.Unlock()
}

// Do forwards the call unchanged to the send hook and returns its result.
// Without a hook it returns (nil, nil).
func (p *Primitive) Do(ctx context.Context, method, endpoint string, data any, params, headers Values) (any, error) {
	p.mu.RLock()
	send := p.send
	p.mu.RUnlock()
	if send == nil {
		return nil, nil
	}
	return send(ctx, method, endpoint, data, params, headers)
}

// Default is the primitive shared by the package builders.
var Default = &Primitive{}

// Request is the shared primitive. The hook is resolved at call time.
func Request(ctx context.Context, method, endpoint string, data any, params, headers Values) (any, error) {
	return Default.Do(ctx, method, endpoint, data, params, headers)
}

// SetSend installs the send hook on Default.
func SetSend(fn Func) {
	Default.SetSend(fn)
}
