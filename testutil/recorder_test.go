package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/kbukum/reqkit/request"
)

func TestRecorderRecordsCalls(t *testing.T) {
	rec := NewRecorder()
	ctx := context.Background()

	_, _ = rec.Send(ctx, "GET", "/a", nil, request.Values{"q": 1}, nil)
	_, _ = rec.Send(ctx, "POST", "/b", "body", nil, request.Values{"h": "v"})

	if rec.Len() != 2 {
		t.Fatalf("expected 2 calls, got %d", rec.Len())
	}
	calls := rec.Calls()
	if calls[0].Method != "GET" || calls[0].Endpoint != "/a" || calls[0].Params["q"] != 1 {
		t.Errorf("unexpected first call: %+v", calls[0])
	}
	last, ok := rec.Last()
	if !ok || last.Data != "body" || last.Headers["h"] != "v" {
		t.Errorf("unexpected last call: %+v", last)
	}
}

func TestRecorderRespond(t *testing.T) {
	want := errors.New("unavailable")
	rec := NewRecorder().Respond("payload", want)

	v, err := rec.Send(context.Background(), "GET", "/", nil, nil, nil)
	if v != "payload" || !errors.Is(err, want) {
		t.Errorf("expected configured response, got %v, %v", v, err)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	_, _ = rec.Send(context.Background(), "GET", "/", nil, nil, nil)
	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("expected no calls after reset, got %d", rec.Len())
	}
	if _, ok := rec.Last(); ok {
		t.Error("expected Last to report no call")
	}
}

func TestInstall(t *testing.T) {
	t.Run("hooks the default primitive", func(t *testing.T) {
		rec := Install(t)
		_, _ = request.Request(context.Background(), "DELETE", "/x", nil, nil, nil)
		if rec.Len() != 1 {
			t.Errorf("expected call to reach recorder, got %d", rec.Len())
		}
	})

	// The subtest's cleanup removed the hook.
	v, err := request.Request(context.Background(), "GET", "/x", nil, nil, nil)
	if v != nil || err != nil {
		t.Errorf("expected no-op primitive after cleanup, got %v, %v", v, err)
	}
}
