// Package picker provides the interactive branch picker used by the
// -i flag: a fuzzy-filterable list driven by bubbletea.
package picker

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/switchback/internal/ui/styles"
)

// Result holds the outcome of a picker session.
type Result struct {
	Branch    string
	Cancelled bool
}

type model struct {
	input    textinput.Model
	branches []string
	filtered []fuzzy.Match
	cursor   int
	theme    styles.Theme

	done      bool
	cancelled bool
	choice    string
}

func newModel(branches []string, th styles.Theme) model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "> "
	ti.Focus()

	m := model{
		input:    ti,
		branches: branches,
		theme:    th,
	}
	m.applyFilter()
	return m
}

// branchSource implements fuzzy.Source over the branch list.
type branchSource []string

func (s branchSource) String(i int) string { return s[i] }
func (s branchSource) Len() int            { return len(s) }

func (m *model) applyFilter() {
	filter := m.input.Value()
	if filter == "" {
		// No filter: show everything in recency order.
		m.filtered = make([]fuzzy.Match, len(m.branches))
		for i, b := range m.branches {
			m.filtered[i] = fuzzy.Match{Str: b, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(filter, branchSource(m.branches))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 {
				m.choice = m.branches[m.filtered[m.cursor].Index]
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.AccentStyle().Render("Recent branches") + "\n")
	b.WriteString(m.input.View() + "\n\n")

	for i, match := range m.filtered {
		cursor := "  "
		if i == m.cursor {
			cursor = m.theme.AccentStyle().Render("> ")
		}
		b.WriteString(cursor + m.renderMatch(match, i == m.cursor) + "\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(m.theme.MutedStyle().Render("  no matching branches") + "\n")
	}

	b.WriteString("\n" + m.theme.MutedStyle().Render("↑/↓ move • type to filter • enter checkout • esc cancel") + "\n")
	return b.String()
}

// renderMatch renders a branch name with fuzzy-matched characters
// highlighted.
func (m model) renderMatch(match fuzzy.Match, selected bool) string {
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	base := m.theme.MutedStyle()
	if selected {
		base = m.theme.AccentStyle()
	}

	var out strings.Builder
	for i, r := range []rune(match.Str) {
		if matched[i] {
			out.WriteString(m.theme.MatchStyle().Render(string(r)))
		} else {
			out.WriteString(base.Render(string(r)))
		}
	}
	return out.String()
}

// Pick runs the interactive picker over the given branches. The program
// renders on stderr so stdout stays clean for scripting.
func Pick(branches []string, th styles.Theme) (Result, error) {
	if len(branches) == 0 {
		return Result{Cancelled: true}, nil
	}

	p := tea.NewProgram(newModel(branches, th), tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run picker: %w", err)
	}

	m := finalModel.(model)
	if m.cancelled || m.choice == "" {
		return Result{Cancelled: true}, nil
	}
	return Result{Branch: m.choice}, nil
}
