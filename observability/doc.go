// Package observability wires OpenTelemetry tracing and metrics for reqkit.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("billing-api"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("billing-api"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("billing-api"))
//	metrics.RecordCall(ctx, "GET", "ok", elapsed)
//
// The request package consumes both through request.Instrument.
package observability
