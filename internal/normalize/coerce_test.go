package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"19.99", 19.99, true},
		{"$1,299.50", 1299.50, true},
		{" 42 ", 42, true},
		{"-3.5", -3.5, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"free", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseFloat(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCount(t *testing.T) {
	got, ok := parseCount("1,204")
	assert.True(t, ok)
	assert.Equal(t, 1204, got)

	got, ok = parseCount("3.7")
	assert.True(t, ok)
	assert.Equal(t, 3, got)

	_, ok = parseCount("-5")
	assert.False(t, ok)

	_, ok = parseCount("lots")
	assert.False(t, ok)
}

func TestParseCountRejectsOutOfRange(t *testing.T) {
	// values past the int64 range must fail, not wrap negative
	for _, raw := range []string{"99999999999999999999999", "1e30", "18446744073709551616"} {
		got, ok := parseCount(raw)
		assert.False(t, ok, raw)
		assert.Equal(t, 0, got, raw)
	}
}

func TestParseBool(t *testing.T) {
	for _, truthy := range []string{"true", "Yes", "y", "1", "VERIFIED"} {
		assert.True(t, parseBool(truthy), truthy)
	}
	for _, falsy := range []string{"false", "no", "0", "", "maybe"} {
		assert.False(t, parseBool(falsy), falsy)
	}
}

func TestRescaleRatings(t *testing.T) {
	t.Run("batch max above five drives rescale", func(t *testing.T) {
		assert.Equal(t, []float64{1, 2, 3, 4, 5}, rescaleRatings([]float64{2, 4, 6, 8, 10}))
	})

	t.Run("in-range batch untouched", func(t *testing.T) {
		assert.Equal(t, []float64{3.5, 5}, rescaleRatings([]float64{3.5, 5}))
	})

	t.Run("negatives clamp to zero", func(t *testing.T) {
		assert.Equal(t, []float64{0, 4}, rescaleRatings([]float64{-1, 4}))
	})

	t.Run("empty batch", func(t *testing.T) {
		assert.Empty(t, rescaleRatings(nil))
	})
}
