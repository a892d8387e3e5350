package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// Costs is the distance lookup DOT needs for edge labels.
// *distance.Model satisfies it together with Labeler.
type Costs interface {
	Len() int
	Label(i int) (string, error)
	Cost(i, j int) float64
}

// DOT draws every city as a node and the tour as a closed chain of
// undirected edges labelled with their cost. Cities are laid out on a circle.
func DOT(m Costs, tour []int, title string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("graph Tour {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", title)
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=11, penwidth=2];\n\n")

	var (
		labels = make([]string, m.Len())
		err    error
		i      int
	)
	for i = range labels {
		if labels[i], err = m.Label(i); err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "  %q;\n", labels[i])
	}
	if len(tour) > 1 {
		buf.WriteString("\n")
		var a, b int
		for i = range tour {
			a, b = tour[i], tour[(i+1)%len(tour)]
			if a < 0 || a >= len(labels) || b < 0 || b >= len(labels) {
				return "", fmt.Errorf("render: tour city out of range: %d-%d", a, b)
			}
			fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", labels[a], labels[b], FormatCost(m.Cost(a, b)))
		}
	}
	buf.WriteString("}\n")

	return buf.String(), nil
}

// SVG renders DOT source with Graphviz (WebAssembly build, no cgo).
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: svg: %w", err)
	}

	return buf.Bytes(), nil
}
