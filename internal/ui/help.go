package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpModalWidth = 48

var helpSectionTitles = []string{"Gallery", "Navigation", "Preferences", "General"}

// helpMarkdown builds the help text from the full key map so the overlay
// never drifts from the bindings actually handled.
func helpMarkdown(k keyMap) string {
	var b strings.Builder
	b.WriteString("# Keyboard Shortcuts\n")
	for i, group := range k.FullHelp() {
		title := "More"
		if i < len(helpSectionTitles) {
			title = helpSectionTitles[i]
		}
		fmt.Fprintf(&b, "\n## %s\n\n", title)
		for _, binding := range group {
			writeHelpItem(&b, binding)
		}
	}
	return b.String()
}

func writeHelpItem(b *strings.Builder, binding key.Binding) {
	h := binding.Help()
	fmt.Fprintf(b, "- `%s` %s\n", h.Key, h.Desc)
}

// newMarkdownRenderer returns a glamour renderer wrapped to width.
// The dark standard style avoids querying the terminal for its background.
func newMarkdownRenderer(width int) func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r.Render
}

// renderHelp renders the help overlay centered on a width x height screen.
func renderHelp(theme Theme, k keyMap, width, height int) string {
	styles := theme.Styles()
	// Border, padding and glamour's document margins.
	inner := helpModalWidth - 10

	md := helpMarkdown(k)
	content := ""
	if render := newMarkdownRenderer(inner); render != nil {
		if out, err := render(md); err == nil {
			content = strings.Trim(out, "\n")
		}
	}
	if content == "" {
		content = plainHelp(styles, k)
	}

	modal := styles.ModalBox.Width(helpModalWidth).Render(content)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// plainHelp is used when markdown rendering fails.
func plainHelp(styles Styles, k keyMap) string {
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, group := range k.FullHelp() {
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(styles.AccentText.Render(padRight(h.Key, 10)))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
