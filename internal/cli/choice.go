package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspsearch/tsp"
)

// ErrInvalidChoice indicates a menu selector outside 1..4. It is recoverable:
// the menu reports it and asks again.
var ErrInvalidChoice = errors.New("cli: invalid choice")

// Choice is one entry of the interactive menu.
type Choice int

const (
	ChoiceDFS Choice = iota + 1
	ChoiceUCS
	ChoiceAStar
	ChoiceExit
)

// Choices lists the menu entries in display order.
var Choices = []Choice{ChoiceDFS, ChoiceUCS, ChoiceAStar, ChoiceExit}

// ParseChoice reads a selector such as "2" (surrounding space ignored).
func ParseChoice(s string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(ChoiceDFS) || n > int(ChoiceExit) {
		return 0, fmt.Errorf("%w: %q, select 1-4", ErrInvalidChoice, s)
	}

	return Choice(n), nil
}

// Algorithm returns the search behind c; ok is false for ChoiceExit.
func (c Choice) Algorithm() (a tsp.Algorithm, ok bool) {
	switch c {
	case ChoiceDFS:
		return tsp.DFS, true
	case ChoiceUCS:
		return tsp.UCS, true
	case ChoiceAStar:
		return tsp.AStarSearch, true
	default:
		return 0, false
	}
}

// String returns the menu label.
func (c Choice) String() string {
	switch c {
	case ChoiceDFS:
		return "Depth-First Search (DFS)"
	case ChoiceUCS:
		return "Uniform Cost Search (UCS)"
	case ChoiceAStar:
		return "A* Search"
	case ChoiceExit:
		return "Exit"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}
