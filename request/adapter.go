package request

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kbukum/reqkit/errors"
	"github.com/kbukum/reqkit/logger"
)

const component = "request"

// CreateAdapter wraps fn, fixing its method and running paramsFn and headersFn
// over each call's params and headers before delegating. Nil transforms act
// as Identity.
//
// Construction never calls fn. A nil fn is reported as a TYPE_ERROR when the
// returned Requester is invoked.
func CreateAdapter(fn Func, method string, paramsFn, headersFn Transform) Requester {
	return newAdapter(fn, method, paramsFn, headersFn, nil)
}

// RequestAdapter is an alias of CreateAdapter.
var RequestAdapter = CreateAdapter

// newAdapter builds the Requester. A nil log resolves the global logger per call.
func newAdapter(fn Func, method string, paramsFn, headersFn Transform, log *logger.Logger) Requester {
	if paramsFn == nil {
		paramsFn = Identity
	}
	if headersFn == nil {
		headersFn = Identity
	}
	return func(ctx context.Context, endpoint string, data any, params, headers Values) (any, error) {
		if fn == nil {
			return nil, errors.NotCallable("request function").WithDetail("method", method)
		}
		params = paramsFn(params)
		headers = headersFn(headers)

		l := log
		if l == nil {
			l = logger.WithComponent(component)
		}
		if l.Enabled(zerolog.DebugLevel) {
			l.Debug("dispatch", logger.Fields(
				logger.FieldMethod, method,
				logger.FieldEndpoint, endpoint,
				"params", len(params),
				"headers", len(headers),
			))
		}
		return fn(ctx, method, endpoint, data, params, headers)
	}
}
