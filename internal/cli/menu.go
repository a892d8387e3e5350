package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsearch/distance"
	"github.com/katalvlaran/tspsearch/render"
	"github.com/katalvlaran/tspsearch/tsp"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
)

// maxInput bounds the typed selector, in runes.
const maxInput = 8

// SearchFunc runs one search and returns its printable report.
type SearchFunc func(tsp.Algorithm) (string, error)

// searchDoneMsg carries a finished search back into the model.
type searchDoneMsg struct {
	text string
	err  error
}

// MenuModel is the bubbletea model of the technique menu. The user types a
// selector and presses enter; invalid selectors are reported and the menu
// asks again, choice 4 quits.
type MenuModel struct {
	Source string // data file name shown in the header

	search   SearchFunc
	input    string
	output   string
	err      error
	busy     bool
	quitting bool
}

// NewMenuModel returns a menu that runs searches with fn.
func NewMenuModel(source string, fn SearchFunc) MenuModel {
	return MenuModel{Source: source, search: fn}
}

// Err returns the last recoverable error (nil after a successful search).
func (m MenuModel) Err() error { return m.err }

// Output returns the report of the last search.
func (m MenuModel) Output() string { return m.output }

// Quitting reports whether the user chose Exit.
func (m MenuModel) Quitting() bool { return m.quitting }

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			return m.submit()
		case tea.KeyBackspace:
			_, size := utf8.DecodeLastRuneInString(m.input)
			m.input = m.input[:len(m.input)-size]
		case tea.KeyRunes, tea.KeySpace:
			for _, r := range msg.Runes {
				if utf8.RuneCountInString(m.input) >= maxInput {
					break
				}
				m.input += string(r)
			}
		}
	case searchDoneMsg:
		m.busy = false
		m.output, m.err = msg.text, msg.err
	}

	return m, nil
}

// submit validates the typed selector and starts the search behind it.
func (m MenuModel) submit() (tea.Model, tea.Cmd) {
	choice, err := ParseChoice(m.input)
	m.input = ""
	if err != nil {
		m.err = err
		return m, nil
	}
	algo, ok := choice.Algorithm()
	if !ok {
		m.quitting = true
		return m, tea.Quit
	}
	m.err = nil
	m.busy = true
	fn := m.search

	return m, func() tea.Msg {
		text, err := fn(algo)
		return searchDoneMsg{text: text, err: err}
	}
}

func (m MenuModel) View() string {
	if m.quitting {
		return "Exiting the application.\n"
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Choose the technique to solve TSP"))
	if m.Source != "" {
		b.WriteString(styleDim.Render("  " + m.Source))
	}
	b.WriteString("\n\n")
	for _, c := range Choices {
		fmt.Fprintf(&b, "  %s %s\n", styleNumber.Render(fmt.Sprintf("%d.", int(c))), c)
	}
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(styleDim.Render("searching...") + "\n\n")
	case m.output != "":
		b.WriteString(m.output + "\n")
	}
	if m.err != nil {
		b.WriteString(styleError.Render(m.err.Error()) + "\n\n")
	}

	b.WriteString("Enter your choice (1/2/3/4): " + m.input)
	b.WriteString("\n" + styleDim.Render("enter select · esc quit"))

	return b.String()
}

func (c *CLI) menuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu [file]",
		Short: "Pick search techniques interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := dataFile(args, c.cfg)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			m, err := loadModel(ctx, path)
			if err != nil {
				return err
			}

			model := NewMenuModel(path, c.menuSearch(ctx, m))
			_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()

			return err
		},
	}
}

// menuSearch binds the model and settings to a SearchFunc.
func (c *CLI) menuSearch(ctx context.Context, m *distance.Model) SearchFunc {
	opts := c.cfg.SearchOptions()

	return func(a tsp.Algorithm) (string, error) {
		r, err := search(ctx, m, a, newRunID(), opts)
		if err != nil {
			return "", err
		}
		var buf bytes.Buffer
		if err := render.Text(&buf, r.report); err != nil {
			return "", err
		}

		return buf.String(), nil
	}
}
