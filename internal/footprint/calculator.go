// Package footprint computes carbon footprints for client usage figures and
// keeps the ordered ledger of records collected during a session.
package footprint

// Emission factors in kg CO2e per unit of activity. The weights are fixed;
// reports from different runs are only comparable because of that.
const (
	// EnergyFactor is kg CO2e per kWh of electricity consumed.
	EnergyFactor = 0.233

	// TransportFactor is kg CO2e per km travelled.
	TransportFactor = 0.12

	// WasteFactor is kg CO2e per kg of waste produced.
	WasteFactor = 0.5
)

// Calculate returns the weighted carbon footprint in kg CO2e for the given
// energy (kWh), transport (km) and waste (kg) readings.
//
// The function is total: zero and negative readings are not rejected and
// flow through the linear combination unchanged.
func Calculate(energyKWh, transportKM, wasteKG float64) float64 {
	return energyKWh*EnergyFactor + transportKM*TransportFactor + wasteKG*WasteFactor
}
