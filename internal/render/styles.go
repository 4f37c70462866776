package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorContent = lipgloss.Color("#10B981")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles used by the buffer dump and the result listing
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Index      lipgloss.Style
	Content    lipgloss.Style
	Terminator lipgloss.Style
	Stale      lipgloss.Style
	Pass       lipgloss.Style
	Fail       lipgloss.Style
	Detail     lipgloss.Style
}

// NewStyles returns styles rendering for w. Without color every style
// renders plain text. With color, a writer that is not a terminal still gets
// 256-color escapes.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	switch {
	case !color:
		r.SetColorProfile(termenv.Ascii)
	case r.ColorProfile() == termenv.Ascii:
		r.SetColorProfile(termenv.ANSI256)
	}

	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Subtitle: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		Index: r.NewStyle().
			Foreground(colorMuted),
		Content: r.NewStyle().
			Foreground(colorContent),
		Terminator: r.NewStyle().
			Foreground(colorAccent).
			Bold(true),
		Stale: r.NewStyle().
			Foreground(colorMuted).
			Faint(true),
		Pass: r.NewStyle().
			Foreground(colorContent),
		Fail: r.NewStyle().
			Foreground(colorError).
			Bold(true),
		Detail: r.NewStyle().
			Foreground(colorError),
	}
}
