package dstarlite

// Option configures a Planner at construction time via functional options.
type Option func(*config)

type config struct {
	actionSet []Offset
	heuristic Heuristic
	logger    Logger
}

func defaultConfig() config {
	return config{
		actionSet: Cardinal4,
		heuristic: nil, // resolved against actionSet in New if still nil
		logger:    noopLogger{},
	}
}

// WithActionSet overrides the default 4-connected action set. Pass Octile8
// for 8-connected movement. A nil or empty set is ignored.
func WithActionSet(offsets []Offset) Option {
	return func(cfg *config) {
		if len(offsets) > 0 {
			cfg.actionSet = offsets
		}
	}
}

// WithHeuristic overrides the heuristic New would otherwise pick based on
// the action set (Manhattan for Cardinal4, Chebyshev for Octile8). A nil
// value is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(cfg *config) {
		if h != nil {
			cfg.heuristic = h
		}
	}
}

// WithLogger attaches a Logger that receives one debug record per
// computeShortestPath run. A nil value is ignored and the no-op logger is
// kept.
func WithLogger(l Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}
