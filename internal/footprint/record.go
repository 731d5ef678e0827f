package footprint

// ClientRecord is one client's submitted readings plus the footprint derived
// from them at creation time.
type ClientRecord struct {
	// Name is the client name exactly as entered. It may be empty.
	Name string `json:"name" yaml:"name"`

	// EnergyKWh is the energy consumption in kilowatt-hours.
	EnergyKWh float64 `json:"energy_kwh" yaml:"energy_kwh"`

	// TransportKM is the distance travelled in kilometres.
	TransportKM float64 `json:"transport_km" yaml:"transport_km"`

	// WasteKG is the waste produced in kilograms.
	WasteKG float64 `json:"waste_kg" yaml:"waste_kg"`

	// TotalFootprint is the computed footprint in kg CO2e.
	TotalFootprint float64 `json:"total_footprint" yaml:"total_footprint"`
}

// NewClientRecord builds a ClientRecord and computes its footprint.
func NewClientRecord(name string, energyKWh, transportKM, wasteKG float64) ClientRecord {
	return ClientRecord{
		Name:           name,
		EnergyKWh:      energyKWh,
		TransportKM:    transportKM,
		WasteKG:        wasteKG,
		TotalFootprint: Calculate(energyKWh, transportKM, wasteKG),
	}
}

// Totals holds the per-metric sums across a set of records.
type Totals struct {
	Clients        int
	EnergyKWh      float64
	TransportKM    float64
	WasteKG        float64
	TotalFootprint float64
}

// Ledger is the ordered, append-only collection of records gathered during
// one session. The zero value is ready to use. A Ledger is not safe for
// concurrent use.
type Ledger struct {
	records []ClientRecord
}

// Append adds rec to the end of the ledger.
func (l *Ledger) Append(rec ClientRecord) {
	l.records = append(l.records, rec)
}

// Len returns the number of records collected so far.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Records returns a copy of the records in insertion order.
func (l *Ledger) Records() []ClientRecord {
	out := make([]ClientRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Totals sums every metric over the ledger.
func (l *Ledger) Totals() Totals {
	t := Totals{Clients: len(l.records)}
	for _, r := range l.records {
		t.EnergyKWh += r.EnergyKWh
		t.TransportKM += r.TransportKM
		t.WasteKG += r.WasteKG
		t.TotalFootprint += r.TotalFootprint
	}
	return t
}
