package distance

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Write emits edges in the format Parse reads, one "cityA cityB cost" per line.
// Labels containing whitespace cannot round-trip and are rejected.
func Write(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	for k, e := range edges {
		if !writable(e.From) || !writable(e.To) || e.Cost < 0 {
			return fmt.Errorf("%w: edge %d (%q-%q cost=%d) cannot be written", ErrInvalidEdge, k, e.From, e.To, e.Cost)
		}
		if _, err := fmt.Fprintf(bw, "%s %s %d\n", e.From, e.To, e.Cost); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// writable reports whether label survives strings.Fields in Parse.
func writable(label string) bool {
	return label != "" && strings.IndexFunc(label, unicode.IsSpace) < 0
}
