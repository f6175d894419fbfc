package components

import (
	"strings"

	"github.com/LocoDelAssembly/taxonpages/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Footer renders the help bar for the enabled bindings at the bottom of
// the screen.
func Footer(width int, bindings ...key.Binding) string {
	if width < 10 {
		return ""
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, styles.FormatKeyBinding(h.Key, h.Desc))
	}
	if len(parts) == 0 {
		return ""
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(styles.DimGray).
		Render(strings.Join(parts, styles.KeySepStyle.Render("  ")))
}

// StatusKind selects how a status message is colored.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// StatusBar renders a status message line between the content and footer.
func StatusBar(width int, message string, kind StatusKind) string {
	if message == "" {
		return ""
	}

	style := styles.MutedText
	switch kind {
	case StatusSuccess:
		style = styles.SuccessText
	case StatusError:
		style = styles.ErrorText
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(style.Render(message))
}
