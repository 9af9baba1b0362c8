// Package ui renders CLI output: entity tables with a pagination footer.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

var (
	accent = lipgloss.Color("99")

	headerStyle = lipgloss.NewStyle().Foreground(accent).Bold(true).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// RenderTable draws one table with styled headers.
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accent)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)

	for _, row := range rows {
		t.Row(row...)
	}
	return t.Render()
}

// RenderFooter summarizes the pagination envelope under a table.
func RenderFooter(p client.Pagination) string {
	return footerStyle.Render(fmt.Sprintf("page %d/%d  total %d  next=%v prev=%v",
		p.Page, p.TotalPages, p.Total, p.Next, p.Prev))
}

// Truncate shortens long cell values so tables stay readable.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
