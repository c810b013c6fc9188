package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"tokenlens/internal/render"
)

const previewLen = 64

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	typeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	errTextStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
)

// renderSummary formats a decoded result for the terminal: the gas line,
// one row per content item, and the (already display-truncated) metadata
// JSON when the input was an envelope.
func renderSummary(out render.ParsedOutput) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tokenlens"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  gas=%d  items=%d", out.Gas, len(out.Content))))
	b.WriteString("\n")

	for i, item := range out.Content {
		label := item.Label
		if label == "" {
			label = "output"
		}
		b.WriteString(fmt.Sprintf("  %d. %s %s %s\n",
			i+1,
			labelStyle.Render(label),
			typeStyle.Render(strings.ToUpper(string(item.Type))),
			mutedStyle.Render(fmt.Sprintf("(%d bytes)", len(item.Content))),
		))
		b.WriteString("     " + preview(item.Content) + "\n")
	}

	if out.JSON != nil {
		pretty, err := json.MarshalIndent(out.JSON, "", "  ")
		if err == nil {
			b.WriteString(mutedStyle.Render("metadata:") + "\n")
			b.WriteString(string(pretty) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderError formats a decode failure for watch mode, where errors are
// displayed instead of aborting the process.
func renderError(err error) string {
	return errTextStyle.Render("decode error: ") + err.Error()
}

// preview returns a single-line, length-capped view of a content string,
// cutting on a rune boundary so the output stays valid UTF-8.
func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= previewLen {
		return s
	}
	cut := previewLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
