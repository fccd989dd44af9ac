package interactome

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

func defaultOptions() options {
	return options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

// Option configures an aggregation.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
