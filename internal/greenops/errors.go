package greenops

// constError lets sentinel errors be declared as constants.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by Calculate. Compare with errors.Is.
const (
	// ErrNegativeValue is returned for a footprint below zero. Negative input
	// readings are legal and can produce one; it simply has no equivalency.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow is returned for NaN or infinite footprints.
	ErrCalculationOverflow = constError("calculation overflow")
)
