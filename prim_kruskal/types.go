package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod indicates an MST method name other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrNilWeights indicates that a nil Weights source was passed to NewEstimator.
var ErrNilWeights = errors.New("prim_kruskal: weights source is nil")

// Weights is the read-only cost lookup the MST algorithms need.
// *distance.Model satisfies it.
type Weights interface {
	Cost(i, j int) float64
}

// Method selects the MST algorithm.
type Method string

// MethodPrim selects the dense O(k²) Prim variant.
const MethodPrim Method = "prim"

// MethodKruskal selects Kruskal's algorithm (sorted pairs + union-find).
const MethodKruskal Method = "kruskal"

// ParseMethod maps a case-insensitive name to a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodPrim:
		return MethodPrim, nil
	case MethodKruskal:
		return MethodKruskal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// MSTOptions configures an Estimator.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method Method
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the MST algorithm.
func WithMethod(m Method) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions with Method = MethodPrim; on dense
// complete subsets Prim's O(k²) beats Kruskal's O(k² log k).
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// Estimator binds a Weights source to an MST method.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	w      Weights
	method Method
}

// NewEstimator validates the options and returns an Estimator over w.
func NewEstimator(w Weights, opts ...Option) (*Estimator, error) {
	if w == nil {
		return nil, ErrNilWeights
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, err := ParseMethod(string(cfg.Method)); err != nil {
		return nil, err
	}

	return &Estimator{w: w, method: cfg.Method}, nil
}

// Method reports the configured algorithm.
func (e *Estimator) Method() Method { return e.method }

// Weight returns the MST weight of subset (0 when len(subset) ≤ 1).
// Indices must be valid for the underlying Weights; duplicates are not allowed.
func (e *Estimator) Weight(subset []int) float64 {
	if e.method == MethodKruskal {
		return Kruskal(e.w, subset)
	}

	return Prim(e.w, subset)
}
