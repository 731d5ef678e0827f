package greenops

import (
	"fmt"
	"math"
)

// Calculate derives the miles-driven and smartphones-charged equivalencies
// for a footprint of kg CO2e.
//
// A footprint below MinEquivalencyThresholdKg yields an empty Equivalency
// and no error. Negative footprints return ErrNegativeValue and non-finite
// ones ErrCalculationOverflow, each with an empty Equivalency.
func Calculate(kg float64) (Equivalency, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return Equivalency{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return Equivalency{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return Equivalency{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	if math.IsInf(miles, 0) || math.IsInf(phones, 0) {
		return Equivalency{IsEmpty: true}, ErrCalculationOverflow
	}

	milesFormatted := formatEquivalencyValue(miles)
	phonesFormatted := formatEquivalencyValue(phones)

	return Equivalency{
		InputKg: kg,
		Results: []Result{
			{
				Type:           EquivalencyMilesDriven,
				Value:          miles,
				FormattedValue: milesFormatted,
				Label:          "miles driven",
			},
			{
				Type:           EquivalencySmartphonesCharged,
				Value:          phones,
				FormattedValue: phonesFormatted,
				Label:          "smartphones charged",
			},
		},
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			milesFormatted, phonesFormatted),
	}, nil
}

// DisplayText returns the equivalency prose for kg, or "" when there is none.
func DisplayText(kg float64) string {
	eq, err := Calculate(kg)
	if err != nil || eq.IsEmpty {
		return ""
	}
	return eq.DisplayText
}

// formatEquivalencyValue rounds v to an integer with separators, switching
// to the abbreviated form from LargeNumberThreshold upward.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
