// Package render turns a tsp.Result into something a person or a program can
// read: a styled terminal report (lipgloss), JSON, or a Graphviz drawing of
// the tour (DOT text or SVG via go-graphviz).
//
// Every format shows the same three values: the technique label, the tour as
// city labels closed by its first label, and the total cost. An infinite cost
// (no finite Hamiltonian cycle) is shown as "∞" in text and as
// "cost": null, "unreachable": true in JSON.
package render
