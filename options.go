package gotry

// ErrorFactory constructs the error reported for a failed slot from its raw
// reason. Factories should keep the reason reachable via Unwrap; the ones
// built by NewTagged do.
type ErrorFactory func(cause error) error

type wrapMode int

const (
	wrapNone wrapMode = iota
	wrapAll
	wrapUntagged
)

// config holds batch executor configuration.
type config struct {
	// concurrency caps how many computations may be in flight at once.
	// Zero or negative (default) means unlimited.
	concurrency int

	// mode and factory select the raw flavor's error-wrapping policy.
	// Default: pass reasons through unmodified.
	mode    wrapMode
	factory ErrorFactory
}

func defaultConfig() config { return config{} }

// Option configures a single TryAll/TryAllFns invocation.
type Option func(*config)

// WithConcurrency caps in-flight computations at n. Zero or negative means
// unlimited; values larger than the batch are clamped to its length.
func WithConcurrency(n int) Option {
	return func(cfg *config) { cfg.concurrency = n }
}

// WithWrapAll makes the raw flavor re-wrap every failure via factory, even
// reasons that already carry a tag; the original reason stays reachable as
// the cause. A nil factory falls back to the TagUnknown tag.
func WithWrapAll(factory ErrorFactory) Option {
	return func(cfg *config) {
		cfg.mode = wrapAll
		cfg.factory = factory
	}
}

// WithWrapUntagged makes the raw flavor wrap only reasons that do not
// already carry a tag; tagged reasons pass through unchanged. A nil factory
// falls back to the TagUnknown tag.
func WithWrapUntagged(factory ErrorFactory) Option {
	return func(cfg *config) {
		cfg.mode = wrapUntagged
		cfg.factory = factory
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// wrapReason applies the configured wrapping policy to a failed slot's raw
// reason. The reason is never nil here: settlements record a failure only
// for a non-nil error.
func (cfg *config) wrapReason(reason error) error {
	factory := cfg.factory
	if factory == nil {
		factory = NewTagged(TagUnknown)
	}
	switch cfg.mode {
	case wrapAll:
		return factory(reason)
	case wrapUntagged:
		if IsTagged(reason) {
			return reason
		}
		return factory(reason)
	default:
		return reason
	}
}
