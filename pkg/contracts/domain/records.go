package domain

import (
	"time"
)

// Platform identifies the marketplace a record originated from.
type Platform string

const (
	PlatformAmazon Platform = "amazon"
	PlatformTikTok Platform = "tiktok"
)

// Source identifies where a user comment was collected.
type Source string

const (
	SourceTikTokVideo Source = "tiktok_video"
	SourceReddit      Source = "reddit"
)

// SalesRecord is a single normalized marketplace listing.
// Rating is always on the 0-5 scale regardless of the source scale;
// Price and UnitsSold are never negative after normalization.
type SalesRecord struct {
	ProductID   string     `json:"product_id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Price       float64    `json:"price" validate:"min=0"`
	UnitsSold   int        `json:"units_sold" validate:"min=0"`
	Rating      float64    `json:"rating" validate:"min=0,max=5"`
	ReviewCount int        `json:"review_count" validate:"min=0"`
	Category    string     `json:"category,omitempty"`
	Seller      string     `json:"seller,omitempty"`
	LaunchDate  *time.Time `json:"launch_date,omitempty"`
	Platform    Platform   `json:"platform" validate:"required"`
}

// Revenue returns the revenue attributed to the listing.
func (r SalesRecord) Revenue() float64 {
	return r.Price * float64(r.UnitsSold)
}

// CommentRecord is a single normalized user comment.
// Text has already been cleaned and is at least 10 characters long.
type CommentRecord struct {
	Text            string     `json:"text" validate:"required,min=10"`
	EngagementCount int        `json:"engagement_count" validate:"min=0"`
	Timestamp       *time.Time `json:"timestamp,omitempty"`
	Source          Source     `json:"source" validate:"required"`
}

// ReviewRecord is a single normalized product review.
type ReviewRecord struct {
	ProductID    string   `json:"product_id,omitempty"`
	Text         string   `json:"text" validate:"required,min=10"`
	Rating       float64  `json:"rating" validate:"min=0,max=5"`
	HelpfulCount int      `json:"helpful_count" validate:"min=0"`
	Verified     bool     `json:"verified"`
	Platform     Platform `json:"platform" validate:"required"`
}
