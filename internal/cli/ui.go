package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wordladder/pkg/pipeline"
	"github.com/matzehuels/wordladder/pkg/wordgraph"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values, such as the changed letter.
	StyleHighlight = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// =============================================================================
// Ladder Output
// =============================================================================

// printLadder prints a search result: the ladder with each changed letter
// highlighted, then a stats line.
func printLadder(w io.Writer, res *pipeline.Result) {
	if !res.Found {
		printError(w, "No ladder from %s to %s", StyleValue.Render(res.Origin), StyleValue.Render(res.Target))
		printStats(w, res.Stats.Words, res.Stats.Expanded, res.Cached)
		return
	}

	steps := res.Steps()
	unit := "steps"
	if steps == 1 {
		unit = "step"
	}
	printSuccess(w, "Ladder found in %s %s", StyleNumber.Render(fmt.Sprint(steps)), unit)
	fmt.Fprintln(w, "  "+formatPath(res.Path))
	printStats(w, res.Stats.Words, res.Stats.Expanded, res.Cached)
}

// formatPath joins the ladder words with arrows.
func formatPath(path []string) string {
	parts := make([]string, len(path))
	for i, word := range path {
		prev := ""
		if i > 0 {
			prev = path[i-1]
		}
		parts[i] = formatStep(prev, word)
	}
	return strings.Join(parts, StyleDim.Render(" "+iconArrow+" "))
}

// formatStep renders word with the letter that differs from prev highlighted.
// Without an adjacent prev the word is rendered plainly.
func formatStep(prev, word string) string {
	pos := wordgraph.ChangedPosition(prev, word)
	if pos < 0 {
		return StyleValue.Render(word)
	}
	runes := []rune(word)
	return StyleValue.Render(string(runes[:pos])) +
		StyleHighlight.Render(string(runes[pos])) +
		StyleValue.Render(string(runes[pos+1:]))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints search statistics on a single line.
func printStats(w io.Writer, words, expanded int, cached bool) {
	parts := []string{fmt.Sprintf("%d words", words)}
	if expanded > 0 {
		parts = append(parts, fmt.Sprintf("%d expanded", expanded))
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	line += StyleDim.Render(" · ") + statusStyle.Render(status)
	fmt.Fprintln(w, line)
}
