package request

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/reqkit/logger"
	"github.com/kbukum/reqkit/observability"
	"github.com/kbukum/reqkit/resilience"
)

// Kit bundles the builders and prebound requesters produced from one Config.
type Kit struct {
	// Public builds cache-busted requesters.
	Public Builder
	// Private builds cache-busted, authorized requesters.
	Private Builder
	// ThrottledGet is Public("GET") behind the configured throttle window.
	ThrottledGet *Throttled
	// PrivatePost is Private("POST").
	PrivatePost Requester
}

type options struct {
	fn      Func
	log     *logger.Logger
	tracer  trace.Tracer
	metrics *observability.Metrics
	traced  bool
}

// Option configures New.
type Option func(*options)

// WithFunc sets the primitive the Kit's requesters delegate to. Defaults to Request.
func WithFunc(fn Func) Option {
	return func(o *options) { o.fn = fn }
}

// WithLogger sets the logger used by the Kit's adapters and throttle.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTracing wraps the primitive in a span per call. A nil tracer uses the global provider.
func WithTracing(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
		o.traced = true
	}
}

// WithMetrics records call count and duration around the primitive.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New builds a Kit from cfg.
func New(cfg Config, opts ...Option) (*Kit, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{fn: Request}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.WithComponent(component)
	}

	fn := o.fn
	if o.traced || o.metrics != nil {
		fn = Instrument(fn, o.tracer, o.metrics)
	}

	src, err := NewTokenSource(cfg.Auth)
	if err != nil {
		return nil, err
	}

	public := newBuilder(fn, DefaultParams, nil, o.log)
	private := newBuilder(fn, DefaultParams, HeadersWith(src), o.log)

	tcfg := resilience.DefaultThrottleConfig("public-get")
	tcfg.Wait = cfg.ThrottleWait
	if cfg.DisableThrottle {
		tcfg.Wait = 0
	}
	log := o.log
	tcfg.OnCoalesce = func(name string) {
		log.Debug("call coalesced", logger.Fields(logger.FieldThrottle, name))
	}

	log.Debug("kit ready", logger.Fields(
		logger.FieldScheme, cfg.Auth.Scheme,
		"throttle_wait", tcfg.Wait.String(),
	))

	return &Kit{
		Public:       public,
		Private:      private,
		ThrottledGet: NewThrottle(public(http.MethodGet), tcfg),
		PrivatePost:  private(http.MethodPost),
	}, nil
}
