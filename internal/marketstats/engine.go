package marketstats

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"marketpulse/pkg/contracts/domain"
)

// Config holds the fixed tunables of the statistics engine.
type Config struct {
	PriceBands  int // number of equal-width price bands
	TopFeatures int // number of title tokens reported
}

// DefaultConfig returns the engine defaults used by the pipeline.
func DefaultConfig() Config {
	return Config{PriceBands: 5, TopFeatures: 15}
}

// Engine computes market-landscape metrics over normalized sales
// tables. All metrics are derived once per invocation from the full
// in-memory record set; the engine holds no state between calls.
type Engine struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine creates a market statistics engine. Zero config values fall
// back to the defaults.
func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	def := DefaultConfig()
	if cfg.PriceBands <= 0 {
		cfg.PriceBands = def.PriceBands
	}
	if cfg.TopFeatures <= 0 {
		cfg.TopFeatures = def.TopFeatures
	}
	return &Engine{cfg: cfg, logger: logger, now: time.Now}
}

// Compute produces the market report for one or more platform tables.
// Platform keys and the combined section are always present for
// non-empty inputs; the cross-platform comparison appears only when
// more than one platform contributed records.
func (e *Engine) Compute(tables map[domain.Platform][]domain.SalesRecord) *Report {
	report := &Report{Platforms: make(map[string]PlatformStats)}

	platforms := make([]string, 0, len(tables))
	var combined []domain.SalesRecord
	for platform, records := range tables {
		if len(records) == 0 {
			continue
		}
		platforms = append(platforms, string(platform))
		combined = append(combined, records...)
	}
	sort.Strings(platforms)

	for _, platform := range platforms {
		records := tables[domain.Platform(platform)]
		report.Platforms[platform] = e.computePlatform(records)
	}
	report.Combined = e.computePlatform(combined)

	if len(platforms) > 1 {
		for _, platform := range platforms {
			report.CrossPlatform = append(report.CrossPlatform, PlatformOverview{
				Platform: platform,
				Overview: report.Platforms[platform].Overview,
			})
		}
	}

	e.logger.Info("market statistics computed",
		"platforms", platforms,
		"total_products", len(combined),
	)
	return report
}

func (e *Engine) computePlatform(records []domain.SalesRecord) PlatformStats {
	return PlatformStats{
		Overview:      computeOverview(records),
		Concentration: computeConcentration(records),
		PriceAnalysis: e.computePriceAnalysis(records),
		TopFeatures:   e.computeFeatures(records),
		LaunchProfile: e.computeLaunchProfile(records),
		RatingProfile: computeRatingProfile(records),
	}
}

func computeOverview(records []domain.SalesRecord) Overview {
	if len(records) == 0 {
		return Overview{}
	}

	prices := make([]float64, len(records))
	ratings := make([]float64, len(records))
	ov := Overview{TotalProducts: len(records), MinPrice: math.MaxFloat64}
	for i, rec := range records {
		prices[i] = rec.Price
		ratings[i] = rec.Rating
		ov.TotalUnitsSold += rec.UnitsSold
		ov.TotalRevenue += rec.Revenue()
		if rec.Price < ov.MinPrice {
			ov.MinPrice = rec.Price
		}
		if rec.Price > ov.MaxPrice {
			ov.MaxPrice = rec.Price
		}
	}
	ov.AvgPrice = mean(prices)
	ov.MedianPrice = median(prices)
	ov.AvgRating = mean(ratings)
	return ov
}

// computeConcentration ranks products by revenue and measures the share
// held by the top decile, ceil(n/10) with at least one product. The cut
// is a fixed contract, not a caller tunable.
func computeConcentration(records []domain.SalesRecord) Concentration {
	if len(records) == 0 {
		return Concentration{LongTailIndex: 1}
	}

	revenues := make([]float64, len(records))
	total := 0.0
	for i, rec := range records {
		revenues[i] = rec.Revenue()
		total += revenues[i]
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(revenues)))

	topN := (len(records) + 9) / 10
	if topN < 1 {
		topN = 1
	}

	conc := Concentration{TopDecileProducts: topN}
	if total > 0 {
		topRevenue := 0.0
		for _, r := range revenues[:topN] {
			topRevenue += r
		}
		conc.ConcentrationRatio = topRevenue / total
	}
	conc.LongTailIndex = 1 - conc.ConcentrationRatio
	conc.Sellers = computeSellerConcentration(records)
	return conc
}

// computeSellerConcentration groups units sold by seller and measures
// the share held by the top 10 sellers against the whole batch,
// including records with no seller attribution.
func computeSellerConcentration(records []domain.SalesRecord) *SellerConcentration {
	bySeller := make(map[string]int)
	totalUnits := 0
	for _, rec := range records {
		totalUnits += rec.UnitsSold
		if rec.Seller != "" {
			bySeller[rec.Seller] += rec.UnitsSold
		}
	}
	if len(bySeller) == 0 {
		return nil
	}

	sellerUnits := make([]float64, 0, len(bySeller))
	for _, units := range bySeller {
		sellerUnits = append(sellerUnits, float64(units))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sellerUnits)))

	topN := len(sellerUnits)
	if topN > 10 {
		topN = 10
	}
	topUnits := 0.0
	for _, units := range sellerUnits[:topN] {
		topUnits += units
	}

	sc := &SellerConcentration{
		UniqueSellers:     len(bySeller),
		AvgUnitsPerSeller: mean(sellerUnits),
	}
	if totalUnits > 0 {
		sc.TopSellerShare = topUnits / float64(totalUnits)
	}
	return sc
}
