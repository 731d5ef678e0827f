package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps the thousand separators stable across machines.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f rounded half away from zero to precision decimals,
// with thousand separators in the integer part.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
//
// A value that rounds to zero is printed without a sign. NaN and infinities
// are printed as strconv does.
func FormatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if precision < 0 {
		precision = 0
	}

	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(math.Abs(f)*multiplier) / multiplier

	digits := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, fracPart, _ := strings.Cut(digits, ".")

	n, err := strconv.ParseInt(intPart, base, 64)
	if err != nil {
		// Beyond int64; separators are not worth a big-number dependency.
		return strconv.FormatFloat(f, 'f', precision, 64)
	}

	var b strings.Builder
	if f < 0 && rounded != 0 {
		b.WriteByte('-')
	}
	b.WriteString(FormatNumber(n))
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values below LargeNumberThreshold use comma-separated format, values at or
// above it use "~X.X million", and values at or above BillionThreshold use
// "~X.X billion".
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}
