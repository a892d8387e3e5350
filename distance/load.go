package distance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// errLineShape is the cause recorded for lines that are not "cityA cityB cost".
var errLineShape = errors.New("want exactly 3 fields: cityA cityB cost")

// LoadFile opens path and parses it with Parse.
// A missing or unreadable file yields a *LoadError with Line == 0.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{File: path, Err: err}
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads an edge list from r. name is only used in error messages.
//
// Every line, blank ones included, must hold exactly three whitespace-separated tokens;
// the third must parse as a non-negative base-10 integer. The first bad line
// aborts parsing with a *LoadError pointing at it.
//
// Complexity: O(L + N²) for L lines and N cities.
func Parse(r io.Reader, name string) (*Model, error) {
	var (
		sc     = bufio.NewScanner(r)
		edges  []Edge
		lineNo int
		fields []string
		cost   int64
		err    error
	)
	for sc.Scan() {
		lineNo++
		fields = strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, &LoadError{File: name, Line: lineNo, Err: errLineShape}
		}
		cost, err = strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, &LoadError{File: name, Line: lineNo, Err: fmt.Errorf("cost %q: %w", fields[2], err)}
		}
		if cost < 0 {
			return nil, &LoadError{File: name, Line: lineNo, Err: fmt.Errorf("cost %d: %w", cost, ErrInvalidEdge)}
		}
		edges = append(edges, Edge{From: fields[0], To: fields[1], Cost: cost})
	}
	if err = sc.Err(); err != nil {
		return nil, &LoadError{File: name, Line: lineNo, Err: err}
	}

	return New(edges)
}
