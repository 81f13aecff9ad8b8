package normalize

import (
	"log/slog"

	apperrors "marketpulse/internal/errors"
	"marketpulse/internal/schema"
	"marketpulse/pkg/contracts/domain"
)

// amazonSalesCandidates lists the header keywords seen in Amazon
// listing exports, in priority order per field.
var amazonSalesCandidates = []schema.FieldCandidates{
	{Field: fieldProductID, Keywords: []string{"asin", "product_id", "product id", "id"}},
	{Field: fieldTitle, Keywords: []string{"title", "product_title", "product name", "name"}},
	{Field: fieldPrice, Keywords: []string{"price", "unit_price", "list_price"}},
	{Field: fieldUnitsSold, Keywords: []string{"sales", "units_sold", "quantity", "qty", "sold"}},
	{Field: fieldRating, Keywords: []string{"rating", "avg_rating", "average_rating", "star_rating", "stars"}},
	{Field: fieldReviewCount, Keywords: []string{"reviews", "review_count", "number_of_reviews"}},
	{Field: fieldLaunchDate, Keywords: []string{"launch_date", "release_date", "available_date"}},
	{Field: fieldCategory, Keywords: []string{"category", "product_category", "department"}},
	{Field: fieldSeller, Keywords: []string{"seller", "seller_name", "merchant"}},
}

// tiktokSalesCandidates lists the header keywords seen in TikTok Shop
// listing exports.
var tiktokSalesCandidates = []schema.FieldCandidates{
	{Field: fieldProductID, Keywords: []string{"product_id", "product id", "id", "sku"}},
	{Field: fieldTitle, Keywords: []string{"title", "product_title", "product name", "product_name", "name"}},
	{Field: fieldPrice, Keywords: []string{"price", "unit_price", "selling_price", "sale_price"}},
	{Field: fieldUnitsSold, Keywords: []string{"sales", "units_sold", "quantity_sold", "qty", "sold"}},
	{Field: fieldRating, Keywords: []string{"rating", "avg_rating", "average_rating", "score"}},
	{Field: fieldReviewCount, Keywords: []string{"reviews", "review_count", "number_of_reviews"}},
	{Field: fieldLaunchDate, Keywords: []string{"launch_date", "created_at", "publish_date"}},
	{Field: fieldCategory, Keywords: []string{"category", "product_category", "category_name"}},
	{Field: fieldSeller, Keywords: []string{"shop", "shop_name", "store", "store_name", "seller"}},
}

// requiredSalesFields are checked in this order; the first missing
// field names the SchemaError.
var requiredSalesFields = []string{fieldProductID, fieldTitle, fieldPrice, fieldUnitsSold}

// SalesResult is the outcome of normalizing one sales table.
type SalesResult struct {
	Records          []domain.SalesRecord
	Dropped          int // records discarded for missing required values
	CoercionFailures int // cells that failed type coercion
}

// CoercionCount returns the number of cells that failed coercion.
func (r *SalesResult) CoercionCount() int {
	return r.CoercionFailures
}

// SalesNormalizer produces canonical SalesRecord tables from one
// marketplace's raw listing exports.
type SalesNormalizer struct {
	feed       string
	platform   domain.Platform
	candidates []schema.FieldCandidates
	logger     *slog.Logger
}

// NewAmazonSales creates the Amazon listings normalizer.
func NewAmazonSales(logger *slog.Logger) *SalesNormalizer {
	return newSalesNormalizer("amazon_sales", domain.PlatformAmazon, amazonSalesCandidates, logger)
}

// NewTikTokSales creates the TikTok Shop listings normalizer.
func NewTikTokSales(logger *slog.Logger) *SalesNormalizer {
	return newSalesNormalizer("tiktok_sales", domain.PlatformTikTok, tiktokSalesCandidates, logger)
}

func newSalesNormalizer(feed string, platform domain.Platform, candidates []schema.FieldCandidates, logger *slog.Logger) *SalesNormalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SalesNormalizer{feed: feed, platform: platform, candidates: candidates, logger: logger}
}

// Feed returns the stable feed name used in error reporting.
func (n *SalesNormalizer) Feed() string { return n.feed }

// Candidates returns the feed's candidate-keyword table.
func (n *SalesNormalizer) Candidates() []schema.FieldCandidates { return n.candidates }

// Platform returns the marketplace the normalizer tags records with.
func (n *SalesNormalizer) Platform() domain.Platform { return n.platform }

// Normalize converts a raw listings table into SalesRecords. Listings
// whose price or units_sold cannot be coerced are dropped: a listing
// without a price or volume carries no market signal. Ratings are
// rescaled against the batch maximum when any observed rating exceeds 5.
func (n *SalesNormalizer) Normalize(table *schema.RawTable) (*SalesResult, error) {
	mapping := schema.Detect(table.Headers, n.candidates)
	for _, field := range requiredSalesFields {
		if !mapping.Has(field) {
			return nil, apperrors.NewSchemaError(n.feed, field, table.Headers)
		}
	}

	result := &SalesResult{}
	ratings := make([]float64, 0, len(table.Rows))

	for _, row := range table.Rows {
		productID := mapping.Value(row, fieldProductID)
		title := mapping.Value(row, fieldTitle)
		if productID == "" || title == "" {
			result.Dropped++
			continue
		}

		price, ok := parseFloat(mapping.Value(row, fieldPrice))
		if !ok || price < 0 {
			result.CoercionFailures++
			result.Dropped++
			continue
		}
		units, ok := parseCount(mapping.Value(row, fieldUnitsSold))
		if !ok {
			result.CoercionFailures++
			result.Dropped++
			continue
		}

		rating := 0.0
		if raw := mapping.Value(row, fieldRating); raw != "" {
			if val, ok := parseFloat(raw); ok {
				rating = val
			} else {
				result.CoercionFailures++
			}
		}

		reviewCount := 0
		if raw := mapping.Value(row, fieldReviewCount); raw != "" {
			if val, ok := parseCount(raw); ok {
				reviewCount = val
			} else {
				result.CoercionFailures++
			}
		}

		record := domain.SalesRecord{
			ProductID:   productID,
			Title:       title,
			Price:       price,
			UnitsSold:   units,
			Rating:      rating,
			ReviewCount: reviewCount,
			Category:    mapping.Value(row, fieldCategory),
			Seller:      mapping.Value(row, fieldSeller),
			Platform:    n.platform,
		}

		if raw := mapping.Value(row, fieldLaunchDate); raw != "" {
			if ts, ok := parseDate(raw); ok {
				record.LaunchDate = &ts
			} else {
				result.CoercionFailures++
			}
		}

		ratings = append(ratings, rating)
		result.Records = append(result.Records, record)
	}

	for i, scaled := range rescaleRatings(ratings) {
		result.Records[i].Rating = scaled
	}

	if len(result.Records) == 0 {
		return nil, apperrors.NewEmptyResultError(n.feed)
	}

	n.logger.Info("sales normalization complete",
		"feed", n.feed,
		"records", len(result.Records),
		"dropped", result.Dropped,
		"coercion_failures", result.CoercionFailures,
	)
	return result, nil
}
