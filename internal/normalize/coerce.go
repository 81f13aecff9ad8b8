package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// launchDateLayouts are the date formats accepted in marketplace exports.
var launchDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	time.RFC3339,
}

// parseFloat coerces a raw cell to a float. Currency symbols and
// thousands separators are stripped first. The second return value is
// false when the cell does not carry a numeric value.
func parseFloat(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.NewReplacer("$", "", ",", "", "%", "").Replace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// parseCount coerces a raw cell to a non-negative integer. Fractional
// inputs round down; negative, non-numeric or out-of-range inputs fail.
// The range check keeps the int conversion defined: a cell beyond the
// int64 range would otherwise wrap to a negative count.
func parseCount(raw string) (int, bool) {
	val, ok := parseFloat(raw)
	if !ok || val < 0 || val >= math.MaxInt64 {
		return 0, false
	}
	return int(val), true
}

// parseBool recognizes the truthy spellings seen in verified-purchase
// columns. Anything else is false.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "y", "1", "verified":
		return true
	}
	return false
}

// parseDate tries each accepted layout in order.
func parseDate(raw string) (time.Time, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return time.Time{}, false
	}
	for _, layout := range launchDateLayouts {
		if ts, err := time.Parse(layout, cleaned); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// rescaleRatings maps a batch of ratings onto the 0-5 scale. The factor
// is the maximum rating observed in the batch, never an external
// constant, so 10-point and 100-point source scales both land on 0-5.
// Batches already within 0-5 are returned unchanged apart from clamping
// negatives to zero.
func rescaleRatings(ratings []float64) []float64 {
	max := 0.0
	for _, r := range ratings {
		if r > max {
			max = r
		}
	}

	scaled := make([]float64, len(ratings))
	for i, r := range ratings {
		if r < 0 {
			r = 0
		}
		if max > 5 {
			r = r / max * 5
		}
		scaled[i] = r
	}
	return scaled
}
