package request_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	reqerrors "github.com/kbukum/reqkit/errors"
	"github.com/kbukum/reqkit/request"
	"github.com/kbukum/reqkit/testutil"
)

func TestCreateAdapter_IdentityDefault(t *testing.T) {
	tests := []struct {
		name    string
		params  request.Values
		headers request.Values
	}{
		{"nil mappings pass through as nil", nil, nil},
		{"empty mappings", request.Values{}, request.Values{}},
		{"populated mappings", request.Values{"foo": "bar"}, request.Values{"X-Trace": "abc"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			get := request.CreateAdapter(rec.Send, "GET", nil, nil)

			if _, err := get(context.Background(), "http://x", "data", tc.params, tc.headers); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			call, _ := rec.Last()
			if call.Method != "GET" || call.Endpoint != "http://x" || call.Data != "data" {
				t.Errorf("unexpected call: %+v", call)
			}
			if !reflect.DeepEqual(call.Params, tc.params) {
				t.Errorf("expected params %v, got %v", tc.params, call.Params)
			}
			if !reflect.DeepEqual(call.Headers, tc.headers) {
				t.Errorf("expected headers %v, got %v", tc.headers, call.Headers)
			}
			if (tc.params == nil) != (call.Params == nil) {
				t.Errorf("expected nil-ness of params to be preserved")
			}
		})
	}
}

func TestCreateAdapter_TransformsCalledOncePerInvocation(t *testing.T) {
	rec := testutil.NewRecorder()
	var seenParams, seenHeaders []request.Values

	paramsFn := func(v request.Values) request.Values {
		seenParams = append(seenParams, v)
		return request.Values{"transformed": true}
	}
	headersFn := func(v request.Values) request.Values {
		seenHeaders = append(seenHeaders, v)
		return request.Values{"h": 1}
	}
	put := request.CreateAdapter(rec.Send, "PUT", paramsFn, headersFn)

	raw := request.Values{"raw": 1}
	_, _ = put(context.Background(), "/a", nil, raw, nil)
	_, _ = put(context.Background(), "/b", nil, nil, nil)

	if len(seenParams) != 2 || len(seenHeaders) != 2 {
		t.Fatalf("expected each transform twice, got params=%d headers=%d", len(seenParams), len(seenHeaders))
	}
	if !reflect.DeepEqual(seenParams[0], raw) {
		t.Errorf("expected raw params passed to transform, got %v", seenParams[0])
	}
	if seenParams[1] != nil || seenHeaders[0] != nil {
		t.Error("expected absent mappings to reach transforms as nil")
	}
	call, _ := rec.Last()
	if call.Params["transformed"] != true || call.Headers["h"] != 1 {
		t.Errorf("expected transform outputs forwarded, got %+v", call)
	}
}

func TestCreateAdapter_ReturnsPrimitiveResult(t *testing.T) {
	boom := errors.New("boom")
	rec := testutil.NewRecorder().Respond("response", boom)
	del := request.CreateAdapter(rec.Send, "DELETE", nil, nil)

	v, err := del(context.Background(), "/x", nil, nil, nil)
	if v != "response" || !errors.Is(err, boom) {
		t.Errorf("expected primitive result to pass through, got %v, %v", v, err)
	}
}

func TestCreateAdapter_ConstructionDoesNotCall(t *testing.T) {
	called := false
	fn := func(context.Context, string, string, any, request.Values, request.Values) (any, error) {
		called = true
		return nil, nil
	}
	_ = request.CreateAdapter(fn, "GET", nil, nil)
	if called {
		t.Error("expected construction to leave the primitive untouched")
	}
}

func TestCreateAdapter_NilFuncFailsAtCallTime(t *testing.T) {
	transformed := false
	paramsFn := func(v request.Values) request.Values {
		transformed = true
		return v
	}

	get := request.CreateAdapter(nil, "GET", paramsFn, nil)
	if get == nil {
		t.Fatal("expected construction to succeed with nil primitive")
	}

	_, err := get(context.Background(), "/x", nil, nil, nil)
	if !reqerrors.Is(err, reqerrors.ErrCodeType) {
		t.Fatalf("expected TYPE_ERROR, got %v", err)
	}
	appErr, _ := reqerrors.AsAppError(err)
	if appErr.Details["method"] != "GET" {
		t.Errorf("expected method detail, got %v", appErr.Details)
	}
	if transformed {
		t.Error("expected transforms to be skipped when the primitive is nil")
	}
}

func TestRequestAdapterAlias(t *testing.T) {
	rec := testutil.NewRecorder()
	patch := request.RequestAdapter(rec.Send, "PATCH", nil, nil)
	_, _ = patch(context.Background(), "/x", nil, nil, nil)
	if call, _ := rec.Last(); call.Method != "PATCH" {
		t.Errorf("expected PATCH, got %q", call.Method)
	}
}

func TestPrimitive(t *testing.T) {
	var p request.Primitive

	v, err := p.Do(context.Background(), "GET", "/x", nil, nil, nil)
	if v != nil || err != nil {
		t.Errorf("expected no-op without hook, got %v, %v", v, err)
	}

	rec := testutil.NewRecorder().Respond(42, nil)
	p.SetSend(rec.Send)
	params := request.Values{"a": 1}
	v, _ = p.Do(context.Background(), "GET", "/x", "d", params, nil)
	if v != 42 {
		t.Errorf("expected hook result, got %v", v)
	}
	call, _ := rec.Last()
	if !reflect.DeepEqual(call.Params, params) || call.Headers != nil {
		t.Errorf("expected arguments forwarded without defaults, got %+v", call)
	}

	p.SetSend(nil)
	if v, _ := p.Do(context.Background(), "GET", "/x", nil, nil, nil); v != nil {
		t.Errorf("expected cleared hook to be a no-op, got %v", v)
	}
}
