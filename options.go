package intvec

import "log/slog"

// DefaultGrowthIncrement is the initial capacity and the step by which a
// single Append grows a full block.
const DefaultGrowthIncrement = 100

type options struct {
	growthIncrement  int
	metricsCollector MetricsCollector
	logger           *Logger
	checkSorted      bool
}

// Option configures an IntArray at construction.
type Option func(*options)

// WithGrowthIncrement sets the initial capacity and the single-append
// growth step. Values <= 0 fall back to DefaultGrowthIncrement.
func WithGrowthIncrement(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultGrowthIncrement
		}
		o.growthIncrement = n
	}
}

// WithMetricsCollector configures a collector for growth and removal events.
// Pass nil to disable metrics collection.
//
//	metrics := &intvec.BasicMetricsCollector{}
//	a := intvec.New(nil, intvec.WithMetricsCollector(metrics))
//	a.AppendAll(make([]int, 1000))
//	fmt.Println(metrics.GetStats().GrowCount) // 1
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithSortedCheck makes FindBinary verify ascending order before searching
// and log a warning when it does not hold. The result is never altered and
// nothing gets sorted. The check costs O(n) per call; leave it off outside
// debugging.
func WithSortedCheck(enabled bool) Option {
	return func(o *options) {
		o.checkSorted = enabled
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		growthIncrement:  DefaultGrowthIncrement,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
