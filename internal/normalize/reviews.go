package normalize

import (
	"log/slog"
	"unicode/utf8"

	apperrors "marketpulse/internal/errors"
	"marketpulse/internal/schema"
	"marketpulse/internal/textclean"
	"marketpulse/pkg/contracts/domain"
)

var amazonReviewCandidates = []schema.FieldCandidates{
	{Field: fieldProductID, Keywords: []string{"asin", "product_id", "product id"}},
	{Field: fieldText, Keywords: []string{"text", "review_text", "review", "body", "comment", "content"}},
	{Field: fieldRating, Keywords: []string{"rating", "star_rating", "stars", "score"}},
	{Field: fieldHelpful, Keywords: []string{"helpful", "helpful_count", "helpful_votes", "upvotes"}},
	{Field: fieldVerified, Keywords: []string{"verified", "verified_purchase"}},
}

var tiktokReviewCandidates = []schema.FieldCandidates{
	{Field: fieldProductID, Keywords: []string{"sku", "product_id", "id"}},
	{Field: fieldText, Keywords: []string{"text", "review_text", "review", "content", "comment"}},
	{Field: fieldRating, Keywords: []string{"rating", "star", "stars", "score"}},
	{Field: fieldHelpful, Keywords: []string{"helpful", "likes", "upvotes"}},
}

// ReviewsResult is the outcome of normalizing one review table.
type ReviewsResult struct {
	Records          []domain.ReviewRecord
	Dropped          int
	CoercionFailures int
}

// CoercionCount returns the number of cells that failed coercion.
func (r *ReviewsResult) CoercionCount() int {
	return r.CoercionFailures
}

// ReviewsNormalizer produces canonical ReviewRecord tables from one
// marketplace's raw review exports.
type ReviewsNormalizer struct {
	feed       string
	platform   domain.Platform
	candidates []schema.FieldCandidates
	// alwaysVerified marks feeds whose review pipeline only exposes
	// post-purchase reviews, so every record is verified.
	alwaysVerified bool
	logger         *slog.Logger
}

// NewAmazonReviews creates the Amazon reviews normalizer. Verified
// status comes from the verified-purchase column and defaults to false
// when the column is absent.
func NewAmazonReviews(logger *slog.Logger) *ReviewsNormalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewsNormalizer{
		feed:       "amazon_reviews",
		platform:   domain.PlatformAmazon,
		candidates: amazonReviewCandidates,
		logger:     logger,
	}
}

// NewTikTokReviews creates the TikTok Shop reviews normalizer. TikTok
// Shop only exposes post-purchase reviews, so verified is always true.
func NewTikTokReviews(logger *slog.Logger) *ReviewsNormalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewsNormalizer{
		feed:           "tiktok_reviews",
		platform:       domain.PlatformTikTok,
		candidates:     tiktokReviewCandidates,
		alwaysVerified: true,
		logger:         logger,
	}
}

// Feed returns the stable feed name used in error reporting.
func (n *ReviewsNormalizer) Feed() string { return n.feed }

// Candidates returns the feed's candidate-keyword table.
func (n *ReviewsNormalizer) Candidates() []schema.FieldCandidates { return n.candidates }

// Platform returns the marketplace the normalizer tags records with.
func (n *ReviewsNormalizer) Platform() domain.Platform { return n.platform }

// Normalize converts a raw review table into ReviewRecords. The text
// column is required; cleaned texts shorter than 10 characters are
// dropped. Ratings follow the same batch-maximum rescale rule as sales
// tables; helpful counts default to 0 on coercion failure.
func (n *ReviewsNormalizer) Normalize(table *schema.RawTable) (*ReviewsResult, error) {
	mapping := schema.Detect(table.Headers, n.candidates)
	if !mapping.Has(fieldText) {
		return nil, apperrors.NewSchemaError(n.feed, fieldText, table.Headers)
	}

	result := &ReviewsResult{}
	ratings := make([]float64, 0, len(table.Rows))

	for _, row := range table.Rows {
		text := textclean.Clean(mapping.Value(row, fieldText))
		if utf8.RuneCountInString(text) < minCommentLength {
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

		helpful := 0
		if raw := mapping.Value(row, fieldHelpful); raw != "" {
			if val, ok := parseCount(raw); ok {
				helpful = val
			} else {
				result.CoercionFailures++
			}
		}

		verified := n.alwaysVerified
		if !n.alwaysVerified && mapping.Has(fieldVerified) {
			verified = parseBool(mapping.Value(row, fieldVerified))
		}

		ratings = append(ratings, rating)
		result.Records = append(result.Records, domain.ReviewRecord{
			ProductID:    mapping.Value(row, fieldProductID),
			Text:         text,
			Rating:       rating,
			HelpfulCount: helpful,
			Verified:     verified,
			Platform:     n.platform,
		})
	}

	for i, scaled := range rescaleRatings(ratings) {
		result.Records[i].Rating = scaled
	}

	if len(result.Records) == 0 {
		return nil, apperrors.NewEmptyResultError(n.feed)
	}

	n.logger.Info("review normalization complete",
		"feed", n.feed,
		"records", len(result.Records),
		"dropped", result.Dropped,
		"coercion_failures", result.CoercionFailures,
	)
	return result, nil
}

// CombineReviews concatenates per-marketplace review tables into the
// single table the VOC engine aggregates across platforms. Records are
// typed, so every output row exposes the full common field set; fields
// a marketplace never supplied sit at their documented defaults
// (0 counts, empty text, verified per the marketplace rule). The output
// row count always equals the sum of the input row counts.
func CombineReviews(tables ...[]domain.ReviewRecord) []domain.ReviewRecord {
	total := 0
	for _, t := range tables {
		total += len(t)
	}
	combined := make([]domain.ReviewRecord, 0, total)
	for _, t := range tables {
		combined = append(combined, t...)
	}
	return combined
}
