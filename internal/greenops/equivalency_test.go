package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		kg          float64
		wantMiles   float64
		wantPhones  float64
		wantIsEmpty bool
		wantErr     error
	}{
		{
			name:       "150kg reference value",
			kg:         150.0,
			wantMiles:  781.25, // 150 / 0.192
			wantPhones: 18248.18,
		},
		{
			name:       "exactly at threshold",
			kg:         1.0,
			wantMiles:  5.208333,
			wantPhones: 121.65,
		},
		{
			name:        "below threshold returns empty",
			kg:          0.5,
			wantIsEmpty: true,
		},
		{
			name:        "zero returns empty",
			kg:          0,
			wantIsEmpty: true,
		},
		{
			name:    "negative footprint returns error",
			kg:      -3.93,
			wantErr: ErrNegativeValue,
		},
		{
			name:    "NaN returns overflow",
			kg:      math.NaN(),
			wantErr: ErrCalculationOverflow,
		},
		{
			name:    "infinity returns overflow",
			kg:      math.Inf(1),
			wantErr: ErrCalculationOverflow,
		},
		{
			name:       "large value (1 million kg)",
			kg:         1_000_000,
			wantMiles:  5208333.33,
			wantPhones: 121654501.22,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.kg)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty, "IsEmpty should be true on error")
				return
			}
			require.NoError(t, err)

			if tt.wantIsEmpty {
				assert.True(t, got.IsEmpty)
				assert.Empty(t, got.DisplayText)
				return
			}

			assert.False(t, got.IsEmpty)
			require.Len(t, got.Results, 2)

			miles := got.Results[0]
			assert.Equal(t, EquivalencyMilesDriven, miles.Type)
			assert.InDelta(t, tt.wantMiles, miles.Value, tt.wantMiles*0.01)
			assert.Equal(t, "miles driven", miles.Label)

			phones := got.Results[1]
			assert.Equal(t, EquivalencySmartphonesCharged, phones.Type)
			assert.InDelta(t, tt.wantPhones, phones.Value, tt.wantPhones*0.01)
			assert.Equal(t, "smartphones charged", phones.Label)
		})
	}
}

func TestCalculate_DisplayTextFormat(t *testing.T) {
	got, err := Calculate(150.0)
	require.NoError(t, err)

	assert.Equal(t, "Equivalent to driving ~781 miles or charging ~18,248 smartphones", got.DisplayText)
}

func TestCalculate_LargeNumberFormatting(t *testing.T) {
	got, err := Calculate(10_000_000)
	require.NoError(t, err)
	assert.Contains(t, got.DisplayText, "million")

	got, err = Calculate(1_000_000_000)
	require.NoError(t, err)
	assert.Contains(t, got.DisplayText, "billion")
}

func TestDisplayText(t *testing.T) {
	assert.Contains(t, DisplayText(3.93), "Equivalent to driving ~20 miles")
	assert.Empty(t, DisplayText(0.2))
	assert.Empty(t, DisplayText(-12))
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "MilesDriven", EquivalencyMilesDriven.String())
	assert.Equal(t, "SmartphonesCharged", EquivalencySmartphonesCharged.String())
	assert.Equal(t, "EquivalencyType(7)", EquivalencyType(7).String())
}

func BenchmarkCalculate(b *testing.B) {
	for b.Loop() {
		_, _ = Calculate(150.0)
	}
}
