package request

import (
	"time"

	"github.com/kbukum/reqkit/logger"
)

// Default keys injected by the transforms.
const (
	ParamBust           = "bust"
	HeaderAuthorization = "Authorization"
)

// DefaultParams returns a new mapping holding the caller's params plus a
// "bust" key set to the current Unix time in milliseconds. A caller-supplied
// "bust" wins. params is never mutated.
func DefaultParams(params Values) Values {
	return withDefault(params, ParamBust, func() (any, bool) {
		return time.Now().UnixMilli(), true
	})
}

// ParamsWithClock builds a DefaultParams variant that reads time from now.
func ParamsWithClock(now func() time.Time) Transform {
	return func(params Values) Values {
		return withDefault(params, ParamBust, func() (any, bool) {
			return now().UnixMilli(), true
		})
	}
}

// DefaultHeaders returns a new mapping holding the caller's headers plus an
// "Authorization" value generated fresh by RandomToken. A caller-supplied
// "Authorization" wins. headers is never mutated.
func DefaultHeaders(headers Values) Values {
	return defaultHeaders(headers)
}

var defaultHeaders = HeadersWith(RandomToken)

// HeadersWith builds a headers transform that fills "Authorization" from src.
// When src fails the header is left unset and a warning is logged.
func HeadersWith(src TokenSource) Transform {
	return func(headers Values) Values {
		return withDefault(headers, HeaderAuthorization, func() (any, bool) {
			token, err := src()
			if err != nil {
				logger.WithComponent(component).Warn("authorization token unavailable",
					logger.MergeWithError(nil, err))
				return nil, false
			}
			return token, true
		})
	}
}

// withDefault copies in and sets key from fallback unless in already holds a
// non-nil value for it.
func withDefault(in Values, key string, fallback func() (any, bool)) Values {
	out := make(Values, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	if v, ok := out[key]; ok && v != nil {
		return out
	}
	if v, ok := fallback(); ok {
		out[key] = v
	} else {
		delete(out, key)
	}
	return out
}
