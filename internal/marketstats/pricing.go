package marketstats

import (
	"sort"

	"marketpulse/pkg/contracts/domain"
)

// maxSweetSpots caps the price ranges reported as demand sweet spots.
const maxSweetSpots = 3

// computePriceAnalysis buckets products into equal-width price bands
// spanning the observed min-max range and computes the Pearson
// correlation between price and units sold. With fewer than 2 distinct
// price points the correlation is undefined and reported as null.
func (e *Engine) computePriceAnalysis(records []domain.SalesRecord) PriceAnalysis {
	if len(records) == 0 {
		return PriceAnalysis{}
	}

	minPrice, maxPrice := records[0].Price, records[0].Price
	prices := make([]float64, len(records))
	units := make([]float64, len(records))
	for i, rec := range records {
		prices[i] = rec.Price
		units[i] = float64(rec.UnitsSold)
		if rec.Price < minPrice {
			minPrice = rec.Price
		}
		if rec.Price > maxPrice {
			maxPrice = rec.Price
		}
	}

	numBands := e.cfg.PriceBands
	width := (maxPrice - minPrice) / float64(numBands)
	if width == 0 {
		// all products share one price point, a single degenerate band
		numBands = 1
	}

	bands := make([]PriceBand, numBands)
	bandRatings := make([][]float64, numBands)
	for i := range bands {
		bands[i] = PriceBand{
			Band:     i,
			MinPrice: minPrice + float64(i)*width,
			MaxPrice: minPrice + float64(i+1)*width,
		}
	}
	bands[numBands-1].MaxPrice = maxPrice

	for _, rec := range records {
		idx := 0
		if width > 0 {
			idx = int((rec.Price - minPrice) / width)
			if idx >= numBands {
				idx = numBands - 1
			}
		}
		bands[idx].ProductCount++
		bands[idx].TotalUnitsSold += rec.UnitsSold
		bands[idx].TotalRevenue += rec.Revenue()
		bandRatings[idx] = append(bandRatings[idx], rec.Rating)
	}
	for i := range bands {
		bands[i].AvgRating = mean(bandRatings[i])
	}

	analysis := PriceAnalysis{Bands: bands, SweetSpots: sweetSpots(bands)}
	if distinctCount(prices) >= 2 {
		if r, ok := pearson(prices, units); ok {
			analysis.PriceSalesCorrelation = &r
		}
	}
	return analysis
}

// sweetSpots ranks the non-empty price bands by sales volume and
// returns the top ranges. Ties keep band order for stable output.
func sweetSpots(bands []PriceBand) []SweetSpot {
	order := make([]int, len(bands))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return bands[order[a]].TotalUnitsSold > bands[order[b]].TotalUnitsSold
	})

	var spots []SweetSpot
	for _, idx := range order {
		if len(spots) == maxSweetSpots {
			break
		}
		band := bands[idx]
		if band.TotalUnitsSold == 0 {
			continue
		}
		spots = append(spots, SweetSpot{
			MinPrice:       band.MinPrice,
			MaxPrice:       band.MaxPrice,
			TotalUnitsSold: band.TotalUnitsSold,
		})
	}
	return spots
}
