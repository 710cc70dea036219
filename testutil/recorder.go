package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/kbukum/reqkit/request"
)

// Call is one recorded primitive invocation.
type Call struct {
	Ctx      context.Context
	Method   string
	Endpoint string
	Data     any
	Params   request.Values
	Headers  request.Values
}

// Recorder records calls and answers them with a fixed result.
type Recorder struct {
	mu     sync.Mutex
	calls  []Call
	result any
	err    error
}

// NewRecorder creates an empty Recorder that answers (nil, nil).
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Install creates a Recorder, installs it as request.Default's send hook and
// removes it when the test ends.
func Install(t testing.TB) *Recorder {
	t.Helper()
	rec := NewRecorder()
	request.SetSend(rec.Send)
	t.Cleanup(func() { request.SetSend(nil) })
	return rec
}

// Respond sets the value and error returned by subsequent calls.
func (r *Recorder) Respond(result any, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result = result
	r.err = err
	return r
}

// Send satisfies request.Func.
func (r *Recorder) Send(ctx context.Context, method, endpoint string, data any, params, headers request.Values) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{
		Ctx:      ctx,
		Method:   method,
		Endpoint: endpoint,
		Data:     data,
		Params:   params,
		Headers:  headers,
	})
	return r.result, r.err
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last returns the most recent call.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
