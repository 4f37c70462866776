package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/abeimler/fixed-size-string/internal/scenario"
)

// Cell markers in the third row of a dump
const (
	markContent    = "="
	markTerminator = "^"
	markStale      = "."
)

// Dump renders every storage cell of snap: index, unit and a marker that
// tells content, terminator and stale cells apart.
func Dump(snap scenario.Snapshot, st Styles) string {
	labels := make([]string, len(snap.Raw))
	width := len(fmt.Sprint(len(snap.Raw) - 1))
	for i, u := range snap.Raw {
		labels[i] = unitLabel(snap.Unit, u)
		width = max(width, lipgloss.Width(labels[i]))
	}

	var idx, units, marks strings.Builder
	for i, label := range labels {
		style, mark := st.Stale, markStale
		switch {
		case i < snap.Len:
			style, mark = st.Content, markContent
		case i == snap.Len:
			style, mark = st.Terminator, markTerminator
		}
		if i > 0 {
			idx.WriteByte(' ')
			units.WriteByte(' ')
			marks.WriteByte(' ')
		}
		idx.WriteString(st.Index.Render(pad(fmt.Sprint(i), width)))
		units.WriteString(style.Render(pad(label, width)))
		marks.WriteString(style.Render(pad(mark, width)))
	}

	header := st.Title.Render(fmt.Sprintf("%s  capacity=%d  length=%d", snap.Unit, snap.Cap, snap.Len)) +
		"  " + st.Subtitle.Render(fmt.Sprintf("%q", snap.View))

	return strings.Join([]string{
		header,
		strings.TrimRight(idx.String(), " "),
		strings.TrimRight(units.String(), " "),
		strings.TrimRight(marks.String(), " "),
	}, "\n") + "\n"
}

// unitLabel shows printable units as themselves, the terminator as \0 and
// anything else as a hex escape sized to the unit width.
func unitLabel(unit string, u uint32) string {
	if u == 0 {
		return `\0`
	}
	narrow := unit == scenario.UnitNarrow || unit == scenario.UnitU8
	if narrow {
		if u < utf8.RuneSelf && unicode.IsPrint(rune(u)) {
			return string(rune(u))
		}
		return fmt.Sprintf(`\x%02X`, u)
	}
	if u <= unicode.MaxRune && !(u >= 0xD800 && u <= 0xDFFF) && unicode.IsPrint(rune(u)) {
		return string(rune(u))
	}
	return fmt.Sprintf("U+%04X", u)
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
