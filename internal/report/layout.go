// Package report renders the one-page PDF carbon footprint report for a
// single client.
package report

import (
	"fmt"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
)

// Page geometry in points, US Letter, origin at the top-left corner.
const (
	PageWidth  = 612.0
	PageHeight = 792.0

	titleX    = 200.0
	titleY    = 40.0
	bodyX     = 50.0
	bodyTopY  = 80.0
	lineStep  = 20.0
	groupStep = 30.0
	tipStep   = 15.0

	titleSize = 16.0
	bodySize  = 12.0
	precision = 2
)

// Title is the heading printed on every report.
const Title = "Carbon Footprint Report"

// suggestions are printed on every report regardless of the figures.
//
//nolint:gochecknoglobals // Fixed report text.
var suggestions = []string{
	"- Use energy-efficient appliances.",
	"- Carpool or use public transport.",
	"- Recycle and reduce waste.",
}

// Line is one text run on the page. Y is the baseline.
type Line struct {
	X    float64
	Y    float64
	Bold bool
	Size float64
	Text string
}

// Layout returns the text runs for rec, top to bottom.
func Layout(rec footprint.ClientRecord) []Line {
	lines := []Line{
		{X: titleX, Y: titleY, Bold: true, Size: titleSize, Text: Title},
	}

	y := bodyTopY
	body := func(text string) {
		lines = append(lines, Line{X: bodyX, Y: y, Size: bodySize, Text: text})
	}

	for _, text := range []string{
		"Client: " + rec.Name,
		fmt.Sprintf("Energy: %s kWh", greenops.FormatFloat(rec.EnergyKWh, precision)),
		fmt.Sprintf("Transport: %s km", greenops.FormatFloat(rec.TransportKM, precision)),
		fmt.Sprintf("Waste: %s kg", greenops.FormatFloat(rec.WasteKG, precision)),
		fmt.Sprintf("Footprint: %s kg CO2", greenops.FormatFloat(rec.TotalFootprint, precision)),
	} {
		body(text)
		y += lineStep
	}

	if eq := greenops.DisplayText(rec.TotalFootprint); eq != "" {
		body(eq)
		y += lineStep
	}

	y += groupStep - lineStep
	body("Suggestions:")
	y += lineStep
	for _, tip := range suggestions {
		body(tip)
		y += tipStep
	}

	return lines
}
