package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/katalvlaran/tspsearch/tsp"
)

// ErrNilLabeler indicates that no label source was given to NewReport.
var ErrNilLabeler = errors.New("render: labeler is nil")

// Labeler resolves city indices to labels. *distance.Model satisfies it.
type Labeler interface {
	Label(i int) (string, error)
}

// Report is the presentation-ready view of one search result.
type Report struct {
	RunID       string    `json:"run_id,omitempty"`
	Algorithm   string    `json:"algorithm"`
	Tour        []string  `json:"tour"`
	Cost        *float64  `json:"cost"`
	Unreachable bool      `json:"unreachable,omitempty"`
	Stats       tsp.Stats `json:"stats"`
	Elapsed     Duration  `json:"elapsed,omitempty"`
}

// Duration marshals as a Go duration string ("1.5ms").
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("render: elapsed %q: %w", b, err)
	}
	*d = Duration(v)

	return nil
}

// NewReport resolves res.Tour to labels (closed by the first label).
func NewReport(l Labeler, res tsp.Result) (Report, error) {
	if l == nil {
		return Report{}, ErrNilLabeler
	}
	r := Report{Algorithm: res.Algorithm.String(), Stats: res.Stats, Tour: []string{}}
	for _, i := range res.Closed() {
		label, err := l.Label(i)
		if err != nil {
			return Report{}, err
		}
		r.Tour = append(r.Tour, label)
	}
	if res.Empty() {
		return r, nil
	}
	if math.IsInf(res.Cost, 0) {
		r.Unreachable = true
	} else {
		c := res.Cost
		r.Cost = &c
	}

	return r, nil
}

// CostString formats the cost the way the text report shows it.
func (r Report) CostString() string {
	switch {
	case r.Unreachable:
		return "∞"
	case r.Cost == nil:
		return "-"
	default:
		return FormatCost(*r.Cost)
	}
}

// FormatCost prints integral costs without a fraction and +Inf as "∞".
func FormatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "∞"
	}

	return strconv.FormatFloat(c, 'f', -1, 64)
}
