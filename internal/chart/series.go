// Package chart draws the aggregate carbon footprint trend chart across all
// clients collected in a session.
package chart

import "github.com/rshade/footprint/internal/footprint"

// Series holds the chart's parallel columns, one entry per record, in the
// order the records were collected.
type Series struct {
	Labels    []string
	Footprint []float64
	Energy    []float64
	Transport []float64
	Waste     []float64
}

// Len returns the number of categories on the x axis.
func (s Series) Len() int {
	return len(s.Labels)
}

// BuildSeries splits records into chart columns. Names are neither sorted
// nor de-duplicated.
func BuildSeries(records []footprint.ClientRecord) Series {
	s := Series{
		Labels:    make([]string, len(records)),
		Footprint: make([]float64, len(records)),
		Energy:    make([]float64, len(records)),
		Transport: make([]float64, len(records)),
		Waste:     make([]float64, len(records)),
	}
	for i, r := range records {
		s.Labels[i] = r.Name
		s.Footprint[i] = r.TotalFootprint
		s.Energy[i] = r.EnergyKWh
		s.Transport[i] = r.TransportKM
		s.Waste[i] = r.WasteKG
	}
	return s
}
