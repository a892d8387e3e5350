package tsp

import (
	"context"
	"time"

	"github.com/katalvlaran/tspsearch/prim_kruskal"
)

// Options configures a search.
//
//	MaxExpansions – cap on expanded partial tours; 0 means unlimited.
//	TimeLimit     – soft wall-clock budget; 0 means none.
//	SingleStart   – Exhaustive only: start from city 0 instead of every city.
//	MSTMethod     – AStar only: MST algorithm for the heuristic.
//	Context       – cancels the search when done; nil means never.
type Options struct {
	MaxExpansions int
	TimeLimit     time.Duration
	SingleStart   bool
	MSTMethod     prim_kruskal.Method
	Context       context.Context
}

// Option is a functional option for a search.
type Option func(*Options)

// WithMaxExpansions caps the number of expanded partial tours.
// Non-positive values mean unlimited.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxExpansions = n
	}
}

// WithTimeLimit sets a soft wall-clock budget. Non-positive values mean none.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.TimeLimit = d
	}
}

// WithSingleStart makes Exhaustive enumerate tours starting at city 0 only.
// Cycle cost is rotation-invariant, so the minimal cost does not change.
func WithSingleStart() Option {
	return func(o *Options) {
		o.SingleStart = true
	}
}

// WithContext stops the search with ctx.Err() once ctx is done.
// Cancellation is polled on the TimeLimit cadence.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithMSTMethod selects the MST algorithm used by AStar.
func WithMSTMethod(m prim_kruskal.Method) Option {
	return func(o *Options) {
		o.MSTMethod = m
	}
}

// DefaultOptions returns no caps, every start city and Prim for the heuristic.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		TimeLimit:     0,
		SingleStart:   false,
		MSTMethod:     prim_kruskal.MethodPrim,
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
