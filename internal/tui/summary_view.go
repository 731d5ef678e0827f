// Package tui renders the styled console output shown at the end of a
// footprint session.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
)

// Layout constants.
const (
	maxNameWidth  = 30
	minNameWidth  = 8
	metricWidth   = 18
	headerRows    = 2 // title line plus bottom border
	summaryDigits = 2
)

// RenderSummary renders the session table: one row per record in insertion
// order, followed by a totals line and the equivalency for the combined
// footprint. It returns "" when there are no records.
func RenderSummary(records []footprint.ClientRecord, totals footprint.Totals) string {
	if len(records) == 0 {
		return ""
	}

	t := NewSummaryTable(records)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("SESSION SUMMARY"))
	b.WriteString("\n\n")
	b.WriteString(t.View())
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render(fmt.Sprintf("Total (%d clients): ", totals.Clients)))
	b.WriteString(ValueStyle.Render(
		greenops.FormatFloat(totals.TotalFootprint, summaryDigits) + " kg CO2"))
	b.WriteString("\n")

	if eq := greenops.DisplayText(totals.TotalFootprint); eq != "" {
		b.WriteString(GreenStyle.Render(eq))
		b.WriteString("\n")
	}

	return b.String()
}

// NewSummaryTable builds a non-interactive table of records.
func NewSummaryTable(records []footprint.ClientRecord) table.Model {
	columns := []table.Column{
		{Title: "Client", Width: nameColumnWidth(records)},
		{Title: "Energy (kWh)", Width: metricWidth},
		{Title: "Transport (km)", Width: metricWidth},
		{Title: "Waste (kg)", Width: metricWidth},
		{Title: "Footprint (kg CO2)", Width: metricWidth},
	}

	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.Name,
			greenops.FormatFloat(r.EnergyKWh, summaryDigits),
			greenops.FormatFloat(r.TransportKM, summaryDigits),
			greenops.FormatFloat(r.WasteKG, summaryDigits),
			greenops.FormatFloat(r.TotalFootprint, summaryDigits),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+headerRows),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Cell = TableCellStyle
	// Nothing is selectable; keep the cursor row unstyled.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

func nameColumnWidth(records []footprint.ClientRecord) int {
	width := minNameWidth
	for _, r := range records {
		width = max(width, runewidth.StringWidth(r.Name))
	}
	return min(width, maxNameWidth)
}
