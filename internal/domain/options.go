package domain

const (
	// DefaultMaxDepth bounds path length and document nesting.
	DefaultMaxDepth = 64
	// DefaultMaxIndex bounds the array index a single path may address.
	DefaultMaxIndex = 1024
)

// Limits bounds the work the tree components do on untrusted input.
type Limits struct {
	MaxDepth int
	MaxIndex int
}

// Option adjusts Limits.
type Option func(*Limits)

// WithMaxDepth sets the maximum nesting depth. Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(l *Limits) {
		if depth > 0 {
			l.MaxDepth = depth
		}
	}
}

// WithMaxIndex sets the largest accepted array index. Negative values keep the default.
func WithMaxIndex(index int) Option {
	return func(l *Limits) {
		if index >= 0 {
			l.MaxIndex = index
		}
	}
}

func newLimits(opts []Option) Limits {
	limits := Limits{MaxDepth: DefaultMaxDepth, MaxIndex: DefaultMaxIndex}
	for _, opt := range opts {
		opt(&limits)
	}

	return limits
}
