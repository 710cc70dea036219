package request

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/reqkit/observability"
)

// Instrument decorates fn with one client span per call and, when metrics is
// non-nil, call count and duration. A nil tracer uses the global provider.
// Arguments and results pass through unchanged. A nil fn stays nil.
func Instrument(fn Func, tracer trace.Tracer, metrics *observability.Metrics) Func {
	if fn == nil {
		return nil
	}
	if tracer == nil {
		tracer = observability.Tracer(observability.TracerName)
	}
	return func(ctx context.Context, method, endpoint string, data any, params, headers Values) (any, error) {
		ctx, span := tracer.Start(ctx, observability.SpanRequest,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String(observability.AttrMethod, method),
				attribute.String(observability.AttrEndpoint, endpoint),
			),
		)
		defer span.End()

		if metrics != nil {
			metrics.RecordCallStart(ctx)
		}
		start := time.Now()

		v, err := fn(ctx, method, endpoint, data, params, headers)

		status := "ok"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if metrics != nil {
			metrics.RecordCall(ctx, method, status, time.Since(start))
		}
		return v, err
	}
}
