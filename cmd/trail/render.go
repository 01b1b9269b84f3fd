package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/trail/pkg/trail/router"
	"github.com/BrandonKowalski/trail/pkg/trail/surface"
)

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorOverlay1 lipgloss.Color = "#7f849c"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorMauve)
	okStyle      = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	activeStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)
	sectionStyle = lipgloss.NewStyle().PaddingLeft(2)
)

func renderHistory(msgs *messages, history *router.History) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(msgs.get("HistoryTitle", nil)))
	b.WriteString("\n")

	entries := history.Entries()
	if len(entries) == 0 {
		b.WriteString(sectionStyle.Render(dimStyle.Render(msgs.get("Empty", nil))))
		b.WriteString("\n")
		return b.String()
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		line := fmt.Sprintf("%d. %s %s", i+1, e.Route, dimStyle.Render(e.Style.String()))
		if len(e.Parameters) > 0 {
			line += " " + dimStyle.Render(formatParams(e.Parameters))
		}
		if _, alive := history.Unit(e); !alive {
			line = errorStyle.Render(line)
		}
		lines[i] = line
	}
	b.WriteString(sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	b.WriteString("\n")
	return b.String()
}

func renderTree(msgs *messages, tree *surface.Tree) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(msgs.get("TreeTitle", nil)))
	b.WriteString("\n")

	lines := tree.Dump()
	if len(lines) == 0 {
		b.WriteString(sectionStyle.Render(dimStyle.Render(msgs.get("Empty", nil))))
		b.WriteString("\n")
		return b.String()
	}

	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "^") {
			lines[i] = activeStyle.Render(line)
		}
	}
	b.WriteString(sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	b.WriteString("\n")
	return b.String()
}

func formatParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	return "{" + strings.Join(pairs, " ") + "}"
}
