package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	styleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	styleGutter = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	styleCaret  = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
)

type styler func(lipgloss.Style, string) string

func styled(s lipgloss.Style, text string) string { return s.Render(text) }
func plain(_ lipgloss.Style, text string) string  { return text }

// Render produces the human-readable form of the diagnostic, colored for
// terminal output.
func (d *Diagnostic) Render() string {
	return d.render(styled)
}

// RenderPlain is Render without styling, for tests and non-TTY sinks.
func (d *Diagnostic) RenderPlain() string {
	return d.render(plain)
}

func (d *Diagnostic) render(apply styler) string {
	head := styleError
	if d.Severity == Warning {
		head = styleWarn
	}

	var sb strings.Builder
	sb.WriteString(apply(head, fmt.Sprintf("%s[%s]", d.Severity, d.Code)))
	sb.WriteString(": ")
	sb.WriteString(d.Title)

	sn := d.Snippet
	if sn == nil {
		return sb.String()
	}

	path := sn.Path
	if path == "" {
		path = "<input>"
	}

	lines := strings.Split(sn.Lines, "\n")
	lastLine := sn.LinesStart + len(lines) - 1
	gutter := len(fmt.Sprint(lastLine))

	sb.WriteByte('\n')
	sb.WriteString(apply(styleGutter, fmt.Sprintf("%s--> ", strings.Repeat(" ", gutter))))
	sb.WriteString(fmt.Sprintf("%s:%d:%d", path, sn.Line, sn.Column))
	sb.WriteByte('\n')
	sb.WriteString(apply(styleGutter, fmt.Sprintf("%s |", strings.Repeat(" ", gutter))))

	for i, line := range lines {
		number := sn.LinesStart + i
		sb.WriteByte('\n')
		sb.WriteString(apply(styleGutter, fmt.Sprintf("%*d | ", gutter, number)))
		sb.WriteString(line)

		if number == sn.Line {
			sb.WriteByte('\n')
			sb.WriteString(apply(styleGutter, fmt.Sprintf("%s | ", strings.Repeat(" ", gutter))))
			sb.WriteString(strings.Repeat(" ", sn.Column-1))
			caret := strings.Repeat("^", d.caretWidth(line))
			if sn.Label != "" {
				caret += " " + sn.Label
			}
			sb.WriteString(apply(styleCaret, caret))
		}
	}

	return sb.String()
}

// caretWidth is the width of the caret run under the first highlighted
// line, in characters, never less than one.
func (d *Diagnostic) caretWidth(line string) int {
	sn := d.Snippet
	width := 1
	if sn.EndLine == sn.Line {
		width = sn.EndColumn - sn.Column
	} else {
		// The range continues past this line; underline its remainder.
		width = utf8.RuneCountInString(line) - sn.Column + 1
	}
	if width < 1 {
		width = 1
	}
	return width
}

// RenderAll renders a batch of diagnostics separated by blank lines.
func RenderAll(diags []Diagnostic, colored bool) string {
	parts := make([]string, len(diags))
	for i := range diags {
		if colored {
			parts[i] = diags[i].Render()
		} else {
			parts[i] = diags[i].RenderPlain()
		}
	}
	return strings.Join(parts, "\n\n")
}
