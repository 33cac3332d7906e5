package unit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsTable(t *testing.T) {
	require.Len(t, Units, 2)

	oz := Units[Ounces]
	assert.Equal(t, "oz", oz.Label)
	assert.Equal(t, 1.0, oz.Scale)
	assert.Equal(t, 1.0, oz.Step)
	assert.Equal(t, 16.0, oz.Max)
	assert.Equal(t, 8.0, oz.Initial)

	l := Units[Liters]
	assert.Equal(t, "L", l.Label)
	assert.Equal(t, 0.0295735, l.Scale)
	assert.Equal(t, 0.25, l.Step)
	assert.Equal(t, 1.0, l.Max)
	assert.Equal(t, 0.5, l.Initial)
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     Unit
		expected string
	}{
		{"ounces whole", 8, Units[Ounces], "8oz"},
		{"ounces rounds", 8.6, Units[Ounces], "9oz"},
		{"ounces zero", 0, Units[Ounces], "0oz"},
		{"liters initial", 0.5 / 0.0295735, Units[Liters], "0.50L"},
		{"liters from ounces", 100, Units[Liters], "2.96L"},
		{"liters zero", 0, Units[Liters], "0.00L"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDisplay(tt.value, tt.unit))
			assert.Equal(t, tt.expected, tt.unit.Format(tt.value))
		})
	}
}

func TestInitialCanonical(t *testing.T) {
	assert.Equal(t, 8.0, Units[Ounces].InitialCanonical())
	assert.InDelta(t, 16.907, Units[Liters].InitialCanonical(), 0.001)
	assert.InDelta(t, 33.814, Units[Liters].MaxCanonical(), 0.001)
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name     string
		unit     Unit
		input    float64
		expected float64
	}{
		{"ounces exact", Units[Ounces], 12, 12},
		{"ounces rounds down", Units[Ounces], 12.4, 12},
		{"ounces rounds up", Units[Ounces], 12.6, 13},
		{"ounces clamps max", Units[Ounces], 40, 16},
		{"ounces clamps negative", Units[Ounces], -3, 0},
		{"liters quarter", Units[Liters], 0.3, 0.25},
		{"liters clamps max", Units[Liters], 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.unit.Snap(tt.input), 1e-9)
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "8%", FormatPercent(0.08))
	assert.Equal(t, "105%", FormatPercent(1.05))
	assert.Equal(t, "0%", FormatPercent(0))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"oz", Ounces},
		{"OZ", Ounces},
		{"ounces", Ounces},
		{"L", Liters},
		{"l", Liters},
		{" liters ", Liters},
		{"litre", Liters},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			idx, err := Lookup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, idx)
		})
	}

	_, err := Lookup("gallons")
	assert.True(t, errors.Is(err, ErrUnknownUnit))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue float64
		wantUnit  int
	}{
		{"bare integer", "12", 12, -1},
		{"bare decimal", "0.5", 0.5, -1},
		{"leading dot", ".75", 0.75, -1},
		{"ounces suffix", "12oz", 12, Ounces},
		{"liters suffix", "0.5L", 0.5, Liters},
		{"space before unit", "0.5 liters", 0.5, Liters},
		{"surrounding space", "  8 oz ", 8, Ounces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, idx, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantUnit, idx)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidAmount},
		{"negative", "-4", ErrInvalidAmount},
		{"word", "lots", ErrInvalidAmount},
		{"unit only", "oz", ErrInvalidAmount},
		{"unknown unit", "2gal", ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, idx, err := ParseAmount(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, -1, idx)
		})
	}
}
