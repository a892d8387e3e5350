package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
)

// Sentinel errors. Constructors wrap them with their method name.
var (
	// ErrTooFewCities indicates n below the constructor's minimum.
	ErrTooFewCities = errors.New("builder: too few cities")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrInvalidWeightRange indicates min < 0 or max < min.
	ErrInvalidWeightRange = errors.New("builder: invalid weight range")
)

// Deterministic defaults.
const (
	defaultMinWeight = int64(1)
	defaultMaxWeight = int64(100)
	defaultGridSize  = 100
)

// IDFn maps a zero-based city index to its label.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index ("0", "1", ...).
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnIDFn returns spreadsheet-style labels: 0→"A", 25→"Z", 26→"AA".
func ExcelColumnIDFn(idx int) string {
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// config aggregates every knob; constructors receive it by value.
type config struct {
	idFn     IDFn
	rng      *rand.Rand // nil means no randomness
	min, max int64
	gridSize int
}

// Option customizes a build.
type Option func(*config)

// WithSeed seeds the RNG used by stochastic constructors and weights.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDFn sets the labelling scheme; nil keeps the current one.
func WithIDFn(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithWeightRange draws weights uniformly from [min, max].
// Validated by the constructor (ErrInvalidWeightRange).
func WithWeightRange(min, max int64) Option {
	return func(c *config) { c.min, c.max = min, max }
}

// WithGridSize sets the side of the square Euclidean points are drawn from.
// Non-positive values keep the default.
func WithGridSize(s int) Option {
	return func(c *config) {
		if s > 0 {
			c.gridSize = s
		}
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     ExcelColumnIDFn,
		min:      defaultMinWeight,
		max:      defaultMaxWeight,
		gridSize: defaultGridSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c config) validate(method string) error {
	if c.min < 0 || c.max < c.min {
		return fmt.Errorf("%s: min=%d max=%d: %w", method, c.min, c.max, ErrInvalidWeightRange)
	}

	return nil
}

// weight draws one edge weight; without an RNG it is the range minimum.
func (c config) weight() int64 {
	if c.rng == nil || c.max == c.min {
		return c.min
	}

	return c.min + c.rng.Int63n(c.max-c.min+1)
}

// labels precomputes the city labels in index order.
func (c config) labels(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = c.idFn(i)
	}

	return ids
}
