package tsp

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the tsp package.
var (
	// ErrNilModel indicates that a nil distance model was passed to a search.
	ErrNilModel = errors.New("tsp: distance model is nil")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrExpansionLimit indicates that a search hit Options.MaxExpansions
	// before it could finish; no partial result is returned.
	ErrExpansionLimit = errors.New("tsp: node expansion limit reached")

	// ErrTimeLimit indicates that a search exceeded Options.TimeLimit.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrInvalidTour indicates a tour that is not a permutation of 0..N-1.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// Distances is the read-only view of the distance model the searches need.
// *distance.Model satisfies it.
type Distances interface {
	// Len returns the number of cities N.
	Len() int
	// Cost returns the symmetric travel cost between i and j (+Inf if no edge).
	Cost(i, j int) float64
}

// Algorithm identifies one of the search strategies.
type Algorithm int

const (
	// DFS is exhaustive depth-first enumeration.
	DFS Algorithm = iota + 1
	// UCS is uniform-cost frontier search.
	UCS
	// AStarSearch is frontier search guided by the MST estimate.
	AStarSearch
)

// Algorithms lists every supported strategy in menu order.
var Algorithms = []Algorithm{DFS, UCS, AStarSearch}

// String returns the human-readable technique label.
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "DFS"
	case UCS:
		return "UCS"
	case AStarSearch:
		return "A* Search"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Slug returns the short machine name used by flags, config files and the API.
func (a Algorithm) Slug() string {
	switch a {
	case DFS:
		return "dfs"
	case UCS:
		return "ucs"
	case AStarSearch:
		return "astar"
	default:
		return ""
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: dfs|exhaustive, ucs|uniform-cost, astar|a*|informed.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "exhaustive":
		return DFS, nil
	case "ucs", "uniform-cost", "uniformcost":
		return UCS, nil
	case "astar", "a*", "a-star", "informed":
		return AStarSearch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Stats describes how much work a search did.
type Stats struct {
	Expanded    int `json:"expanded"`     // partial tours whose children were generated
	Generated   int `json:"generated"`    // partial tours created (including the initial ones)
	Completed   int `json:"completed"`    // full tours whose closed cost was evaluated
	MaxFrontier int `json:"max_frontier"` // peak frontier length (stack depth for DFS)
}

// Result is the outcome of one search.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// Tour is a permutation of 0..N-1; the closing edge back to Tour[0] is
	// implicit. Nil for the empty model.
	Tour []int

	// Cost is the total cycle cost including the closing edge.
	// It is +Inf when only tours through missing edges exist.
	Cost float64

	// Stats records the work done.
	Stats Stats
}

// Empty reports whether the search had no city to visit.
func (r Result) Empty() bool { return len(r.Tour) == 0 }

// Unreachable reports whether the best tour needs a missing edge.
func (r Result) Unreachable() bool { return !r.Empty() && math.IsInf(r.Cost, 1) }

// Closed returns the tour followed by its first city, e.g. [0 1 2 3 0].
func (r Result) Closed() []int {
	if r.Empty() {
		return nil
	}
	out := make([]int, 0, len(r.Tour)+1)
	out = append(out, r.Tour...)

	return append(out, r.Tour[0])
}
