package request

import (
	"net/http"

	"github.com/kbukum/reqkit/logger"
	"github.com/kbukum/reqkit/resilience"
)

// NewBuilder partially applies CreateAdapter, leaving only the method free.
// Each Requester it returns is independent of the others.
func NewBuilder(fn Func, paramsFn, headersFn Transform) Builder {
	return newBuilder(fn, paramsFn, headersFn, nil)
}

func newBuilder(fn Func, paramsFn, headersFn Transform, log *logger.Logger) Builder {
	return func(method string) Requester {
		return newAdapter(fn, method, paramsFn, headersFn, log)
	}
}

// MakePublicRequester builds cache-busted requesters over Request.
var MakePublicRequester = NewBuilder(Request, DefaultParams, nil)

// MakePrivateRequester builds cache-busted, authorized requesters over Request.
var MakePrivateRequester = NewBuilder(Request, DefaultParams, DefaultHeaders)

// ThrottledPublicGet is a public GET requester that runs at most once per
// second. Use ThrottledPublicGet.Call as the Requester.
var ThrottledPublicGet = NewThrottle(MakePublicRequester(http.MethodGet), resilience.DefaultThrottleConfig("public-get"))

// PrivatePost is a private POST requester.
var PrivatePost = MakePrivateRequester(http.MethodPost)
