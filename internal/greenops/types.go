// Package greenops expresses carbon footprints (kg CO2e) as relatable
// real-world equivalencies such as miles driven or smartphones charged,
// using EPA-published conversion factors.
package greenops

import "fmt"

// EquivalencyType identifies a category of equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged is full smartphone charges.
	EquivalencySmartphonesCharged
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// Result is a single calculated equivalency.
type Result struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// Equivalency holds every equivalency computed for one footprint.
type Equivalency struct {
	// InputKg is the footprint the equivalencies were derived from.
	InputKg float64 `json:"input_kg"`

	// Results is ordered miles first, then smartphones.
	Results []Result `json:"results"`

	// DisplayText is the prose form used in reports and the summary, e.g.
	// "Equivalent to driving ~781 miles or charging ~18,248 smartphones".
	DisplayText string `json:"display_text"`

	// IsEmpty is true when no equivalencies were calculated.
	IsEmpty bool `json:"is_empty"`
}
