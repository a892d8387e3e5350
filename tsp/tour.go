package tsp

import "fmt"

// ValidateTour checks that tour is a permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) memory.
func ValidateTour(tour []int, n int) error {
	if len(tour) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n)
	}
	seen := make([]bool, n)
	for i, v := range tour {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: tour[%d]=%d out of range", ErrInvalidTour, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: city %d repeated", ErrInvalidTour, v)
		}
		seen[v] = true
	}

	return nil
}

// TourCost returns the closed-cycle cost of tour: the sum of consecutive
// edges plus the edge from the last city back to the first.
// An empty tour costs 0; a single-city tour costs d.Cost(c, c) = 0.
func TourCost(d Distances, tour []int) (float64, error) {
	if d == nil {
		return 0, ErrNilModel
	}
	if err := ValidateTour(tour, d.Len()); err != nil {
		return 0, err
	}
	if len(tour) == 0 {
		return 0, nil
	}

	var total float64
	for i := 1; i < len(tour); i++ {
		total += d.Cost(tour[i-1], tour[i])
	}

	return total + d.Cost(tour[len(tour)-1], tour[0]), nil
}
