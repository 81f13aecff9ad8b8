package normalize

import (
	"marketpulse/internal/schema"
)

// Canonical field names shared by the candidate tables.
const (
	fieldProductID   = "product_id"
	fieldTitle       = "title"
	fieldPrice       = "price"
	fieldUnitsSold   = "units_sold"
	fieldRating      = "rating"
	fieldReviewCount = "review_count"
	fieldCategory    = "category"
	fieldSeller      = "seller"
	fieldLaunchDate  = "launch_date"
	fieldText        = "text"
	fieldEngagement  = "engagement"
	fieldTimestamp   = "timestamp"
	fieldHelpful     = "helpful"
	fieldVerified    = "verified"
)

// Normalizer is the surface every feed normalizer shares: a stable feed
// name used in error reporting and the candidate-keyword table the feed
// is resolved against.
type Normalizer interface {
	Feed() string
	Candidates() []schema.FieldCandidates
}

var (
	_ Normalizer = (*SalesNormalizer)(nil)
	_ Normalizer = (*CommentsNormalizer)(nil)
	_ Normalizer = (*ReviewsNormalizer)(nil)
)
