package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wordladder/pkg/ladder"
	"github.com/matzehuels/wordladder/pkg/wordgraph"
)

// Play styles
var (
	playInputStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	playDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	playMsgStyle   = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// PlayModel - Interactive ladder game
// =============================================================================

// PlayModel is the bubbletea model for building a ladder by hand. The player
// types one word per step; each must be in the dictionary, one letter away
// from the previous word and not used before.
type PlayModel struct {
	Origin string
	Target string
	Best   int // steps of a shortest ladder

	Path    []string
	Input   string
	Message string
	Hints   int
	Won     bool

	words    *wordgraph.Index
	foldCase bool
}

// NewPlayModel creates a game from origin to target over words.
func NewPlayModel(words *wordgraph.Index, origin, target string, best int, foldCase bool) PlayModel {
	return PlayModel{
		Origin:   origin,
		Target:   target,
		Best:     best,
		Path:     []string{origin},
		words:    words,
		foldCase: foldCase,
	}
}

// Steps returns the number of substitutions made so far.
func (m PlayModel) Steps() int { return len(m.Path) - 1 }

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m = m.submit()
		if m.Won {
			return m, tea.Quit
		}
	case tea.KeyTab:
		m = m.hint()
	case tea.KeyCtrlU:
		if len(m.Path) > 1 {
			m.Path = m.Path[:len(m.Path)-1]
			m.Message = ""
		}
	case tea.KeyBackspace:
		if r := []rune(m.Input); len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		in := string(key.Runes)
		if m.foldCase {
			in = strings.ToUpper(in)
		}
		m.Input += in
	}
	return m, nil
}

// submit tries to extend the path with the current input.
func (m PlayModel) submit() PlayModel {
	word := strings.TrimSpace(m.Input)
	m.Input = ""
	if word == "" {
		return m
	}
	last := m.Path[len(m.Path)-1]

	switch {
	case !wordgraph.Adjacent(last, word):
		m.Message = fmt.Sprintf("%s is not one letter away from %s", word, last)
	case !m.words.Contains(word):
		m.Message = fmt.Sprintf("%s is not in the dictionary", word)
	case slices.Contains(m.Path, word):
		m.Message = fmt.Sprintf("%s is already on the ladder", word)
	default:
		m.Path = append(slices.Clip(m.Path), word)
		m.Message = ""
		m.Won = word == m.Target
	}
	return m
}

// hint suggests the next word of a shortest ladder from the last word.
func (m PlayModel) hint() PlayModel {
	last := m.Path[len(m.Path)-1]
	res, err := ladder.Search(m.words, last, m.Target)
	if err != nil || !res.Found {
		m.Message = fmt.Sprintf("No way to %s from %s, undo with ctrl+u", m.Target, last)
		return m
	}
	m.Hints++
	m.Message = fmt.Sprintf("Try %s (%d steps left)", res.Path[1], res.Steps())
	return m
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s %s %s", m.Origin, iconArrow, m.Target)))
	b.WriteString(playDimStyle.Render(fmt.Sprintf("  shortest ladder: %d steps", m.Best)))
	b.WriteString("\n")
	b.WriteString(playDimStyle.Render("enter submit  tab hint  ctrl+u undo  esc quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Path))
	for i, w := range m.Path {
		prev := ""
		if i > 0 {
			prev = m.Path[i-1]
		}
		rows[i] = []string{fmt.Sprint(i), formatStep(prev, w)}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Step", "Word").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	if m.Won {
		b.WriteString(StyleSuccess.Render(fmt.Sprintf("Solved in %d steps", m.Steps())))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("> " + playInputStyle.Render(m.Input) + playDimStyle.Render("_"))
	b.WriteString("\n")
	if m.Message != "" {
		b.WriteString(playMsgStyle.Render(m.Message))
		b.WriteString("\n")
	}
	return b.String()
}
