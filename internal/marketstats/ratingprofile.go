package marketstats

import (
	"marketpulse/pkg/contracts/domain"
)

// ratingBands are the fixed slices of the 0-5 rating scale. Bounds are
// half-open except the last, which includes 5.
var ratingBands = []struct {
	label string
	lo    float64
	hi    float64
}{
	{label: "0-2", lo: 0, hi: 2},
	{label: "2-3", lo: 2, hi: 3},
	{label: "3-4", lo: 3, hi: 4},
	{label: "4-5", lo: 4, hi: 5.01},
}

// computeRatingProfile reports the rating distribution, the units share
// per band and the review-to-sales ratio of the catalog.
func computeRatingProfile(records []domain.SalesRecord) RatingProfile {
	if len(records) == 0 {
		return RatingProfile{}
	}

	ratings := make([]float64, len(records))
	totalUnits := 0
	totalReviews := 0
	totalSold := 0
	counts := make([]int, len(ratingBands))
	bandUnits := make([]int, len(ratingBands))

	for i, rec := range records {
		ratings[i] = rec.Rating
		totalUnits += rec.UnitsSold
		totalReviews += rec.ReviewCount
		totalSold += rec.UnitsSold

		for b, band := range ratingBands {
			if rec.Rating >= band.lo && rec.Rating < band.hi {
				counts[b]++
				bandUnits[b] += rec.UnitsSold
				break
			}
		}
	}

	profile := RatingProfile{
		AvgRating:    mean(ratings),
		MedianRating: median(ratings),
	}
	if totalSold > 0 {
		profile.ReviewToSalesRatio = float64(totalReviews) / float64(totalSold)
	}

	for b, band := range ratingBands {
		if counts[b] == 0 {
			continue
		}
		rb := RatingBand{Band: band.label, ProductCount: counts[b]}
		if totalUnits > 0 {
			rb.UnitsShare = float64(bandUnits[b]) / float64(totalUnits)
		}
		profile.Distribution = append(profile.Distribution, rb)
	}
	return profile
}
