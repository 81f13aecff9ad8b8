package vocstats

// Snippet is one ranked piece of customer evidence inside a bucket.
type Snippet struct {
	Text        string  `json:"text"`
	Occurrences int     `json:"occurrences"`
	Engagement  int     `json:"engagement"`
	Score       float64 `json:"score"`
}

// BucketResult carries a bucket's match volume and its top snippets.
// Top holds at most 5 distinct snippets and is never padded.
type BucketResult struct {
	Bucket  string    `json:"bucket"`
	Matches int       `json:"matches"`
	Top     []Snippet `json:"top"`
}

// CommentOverview summarizes the comment tables before categorization.
type CommentOverview struct {
	TotalComments   int            `json:"total_comments"`
	TotalEngagement int            `json:"total_engagement"`
	BySource        map[string]int `json:"by_source"`
}

// CommentInsights is the comment-derived half of the VOC report.
type CommentInsights struct {
	Overview CommentOverview `json:"overview"`
	Buckets  []BucketResult  `json:"buckets"`
}

// ReviewInsights is the review-derived half of the VOC report.
type ReviewInsights struct {
	Buckets            []BucketResult             `json:"buckets"`
	RatingDistribution map[string]map[string]int  `json:"rating_distribution"`
}

// PlatformBucketCounts aggregates review bucket match counts for one
// platform, for the cross-platform comparison.
type PlatformBucketCounts struct {
	Platform string         `json:"platform"`
	Counts   map[string]int `json:"counts"`
}

// Report is the Voice-of-Customer half of the pipeline output.
type Report struct {
	Comments      CommentInsights        `json:"comments"`
	Reviews       ReviewInsights         `json:"reviews"`
	CrossPlatform []PlatformBucketCounts `json:"cross_platform,omitempty"`
}
