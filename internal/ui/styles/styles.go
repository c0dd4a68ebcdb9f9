// Package styles contains Lip Gloss style definitions for the calculator
// transcript.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names
	TitleColor         = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#54A0FF"}
	HeadingColor       = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"}

	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(TitleColor)
	HeadingStyle   = lipgloss.NewStyle().Bold(true).Foreground(HeadingColor)
	ErrorStyle     = lipgloss.NewStyle().Foreground(StatusErrorColor)
	MenuIndexStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
)

// Theme renders transcript elements. The zero value and Plain() leave text
// untouched so transcripts stay byte-exact.
type Theme struct {
	colored bool
}

// Plain returns a theme that renders every element as-is.
func Plain() Theme {
	return Theme{}
}

// Colored returns a theme that styles elements with Lip Gloss.
func Colored() Theme {
	return Theme{colored: true}
}

// ForConfig picks Colored when color is true.
func ForConfig(color bool) Theme {
	if color {
		return Colored()
	}
	return Plain()
}

// IsColored reports whether the theme applies styles.
func (t Theme) IsColored() bool {
	return t.colored
}

// Title renders the banner text.
func (t Theme) Title(s string) string {
	return t.render(TitleStyle, s)
}

// Heading renders a section header such as "Result".
func (t Theme) Heading(s string) string {
	return t.render(HeadingStyle, s)
}

// Diagnostic renders a validation failure line.
func (t Theme) Diagnostic(s string) string {
	return t.render(ErrorStyle, s)
}

// MenuIndex renders the number in front of a menu entry.
func (t Theme) MenuIndex(s string) string {
	return t.render(MenuIndexStyle, s)
}

func (t Theme) render(style lipgloss.Style, s string) string {
	if !t.colored {
		return s
	}
	return style.Render(s)
}
