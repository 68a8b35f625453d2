package cli

import (
	"fmt"
	"strings"

	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// RenderResponse formats a FormattedResponse for terminal display.
func RenderResponse(resp model.FormattedResponse) string {
	var sections []string

	sections = append(sections, TitleStyle.Render("Result"))
	sections = append(sections, resp.Text)

	if len(resp.ItemsToShow) > 0 {
		var lines []string
		for _, rec := range resp.ItemsToShow {
			lines = append(lines, ItemStyle.Render(renderRecord(rec)))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(resp.Suggestions) > 0 {
		var lines []string
		for _, s := range resp.Suggestions {
			lines = append(lines, SubtleStyle.Render("→ "+s))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n")
}

func renderRecord(rec model.Record) string {
	p := rec.Projection

	var parts []string
	if p.Date != nil {
		parts = append(parts, p.Date.Format("2006-01-02"))
	}
	if p.Title != "" {
		parts = append(parts, p.Title)
	} else if p.Text != "" {
		parts = append(parts, truncate(p.Text, 60))
	}
	if p.Amount != nil {
		parts = append(parts, fmt.Sprintf("$%.2f", *p.Amount))
	}
	if p.Category != nil {
		parts = append(parts, SubtleStyle.Render("["+*p.Category+"]"))
	}
	return fmt.Sprintf("%-9s %s", rec.Kind, strings.Join(parts, "  "))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
