package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
	colorWhite = lipgloss.Color("255")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey   = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleCost  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleInf   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)

// PathSeparator joins labels in the text report.
const PathSeparator = " -> "

// Text writes a styled report:
//
//	Technique:    DFS
//	Best Path:    A -> B -> C -> D -> A
//	Minimum Cost: 40
func Text(w io.Writer, r Report) error {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Technique: "+r.Algorithm) + "\n")
	if len(r.Tour) == 0 {
		b.WriteString(styleDim.Render("no cities to visit") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(styleKey.Render("Best Path:") + " " + styleValue.Render(strings.Join(r.Tour, PathSeparator)) + "\n")
	cost := styleCost
	if r.Unreachable {
		cost = styleInf
	}
	b.WriteString(styleKey.Render("Minimum Cost:") + " " + cost.Render(r.CostString()) + "\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("expanded %d · generated %d · completed %d · peak frontier %d",
		r.Stats.Expanded, r.Stats.Generated, r.Stats.Completed, r.Stats.MaxFrontier)))
	if r.Elapsed > 0 {
		b.WriteString(styleDim.Render(fmt.Sprintf(" · %s", durationText(r.Elapsed))))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func durationText(d Duration) string {
	t, _ := d.MarshalText()
	return string(t)
}
