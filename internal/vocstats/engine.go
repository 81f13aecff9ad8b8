package vocstats

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"unicode/utf8"

	"marketpulse/pkg/contracts/domain"
)

const (
	// topSnippets caps every bucket list; shorter lists are never padded.
	topSnippets = 5
	// snippetLength truncates evidence text for the report.
	snippetLength = 200
	// positiveRatingMin and negativeRatingMax pre-split reviews before
	// bucket matching. A rating of exactly 3 lands in neither extreme.
	positiveRatingMin = 4.0
	negativeRatingMax = 2.0
)

// Engine computes Voice-of-Customer metrics from normalized comment and
// review tables. Categorization is rule-based against the bucket tables
// in this package, never learned.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a VOC statistics engine.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// evidence is the common shape bucket matching runs against.
type evidence struct {
	text       string
	engagement int
}

// Compute produces the VOC report from the comment tables and the
// combined review table.
func (e *Engine) Compute(comments []domain.CommentRecord, reviews []domain.ReviewRecord) *Report {
	report := &Report{
		Comments: e.computeComments(comments),
		Reviews:  e.computeReviews(reviews),
	}
	report.CrossPlatform = crossPlatformCounts(reviews)

	e.logger.Info("voc statistics computed",
		"comments", len(comments),
		"reviews", len(reviews),
	)
	return report
}

func (e *Engine) computeComments(comments []domain.CommentRecord) CommentInsights {
	overview := CommentOverview{BySource: make(map[string]int)}
	records := make([]evidence, len(comments))
	for i, c := range comments {
		records[i] = evidence{text: c.Text, engagement: c.EngagementCount}
		overview.TotalComments++
		overview.TotalEngagement += c.EngagementCount
		overview.BySource[string(c.Source)]++
	}

	return CommentInsights{
		Overview: overview,
		Buckets:  categorize(records, commentBuckets),
	}
}

func (e *Engine) computeReviews(reviews []domain.ReviewRecord) ReviewInsights {
	positive, negative := splitByRating(reviews)

	buckets := categorize(positive, positiveReviewBuckets)
	buckets = append(buckets, categorize(negative, negativeReviewBuckets)...)

	return ReviewInsights{
		Buckets:            buckets,
		RatingDistribution: ratingDistribution(reviews),
	}
}

// splitByRating feeds high-rated reviews to the positive buckets and
// low-rated reviews to the negative ones. Mid-scale ratings carry
// ambiguous sentiment and are excluded from both extremes.
func splitByRating(reviews []domain.ReviewRecord) (positive, negative []evidence) {
	for _, r := range reviews {
		ev := evidence{text: r.Text, engagement: r.HelpfulCount}
		switch {
		case r.Rating >= positiveRatingMin:
			positive = append(positive, ev)
		case r.Rating <= negativeRatingMax:
			negative = append(negative, ev)
		}
	}
	return positive, negative
}

// categorize assigns every record to every bucket whose trigger phrases
// occur in its text, then ranks the evidence. Snippet score is
// matched-count x (1 + engagement normalized by the set maximum);
// ties break on occurrence count, then lexical order.
func categorize(records []evidence, buckets []Bucket) []BucketResult {
	maxEngagement := 0
	for _, rec := range records {
		if rec.engagement > maxEngagement {
			maxEngagement = rec.engagement
		}
	}

	results := make([]BucketResult, 0, len(buckets))
	for _, bucket := range buckets {
		bySnippet := make(map[string]*Snippet)
		matches := 0

		for _, rec := range records {
			count := bucket.matchCount(rec.text)
			if count == 0 {
				continue
			}
			matches++

			norm := 0.0
			if maxEngagement > 0 {
				norm = float64(rec.engagement) / float64(maxEngagement)
			}
			score := float64(count) * (1 + norm)
			text := truncate(rec.text, snippetLength)

			if snip, ok := bySnippet[text]; ok {
				snip.Occurrences += count
				if score > snip.Score {
					snip.Score = score
				}
				if rec.engagement > snip.Engagement {
					snip.Engagement = rec.engagement
				}
			} else {
				bySnippet[text] = &Snippet{
					Text:        text,
					Occurrences: count,
					Engagement:  rec.engagement,
					Score:       score,
				}
			}
		}

		snippets := make([]Snippet, 0, len(bySnippet))
		for _, snip := range bySnippet {
			snippets = append(snippets, *snip)
		}
		sort.Slice(snippets, func(i, j int) bool {
			if snippets[i].Score != snippets[j].Score {
				return snippets[i].Score > snippets[j].Score
			}
			if snippets[i].Occurrences != snippets[j].Occurrences {
				return snippets[i].Occurrences > snippets[j].Occurrences
			}
			return snippets[i].Text < snippets[j].Text
		})
		if len(snippets) > topSnippets {
			snippets = snippets[:topSnippets]
		}

		results = append(results, BucketResult{
			Bucket:  bucket.Name,
			Matches: matches,
			Top:     snippets,
		})
	}
	return results
}

// ratingDistribution counts reviews per platform by rounded rating.
func ratingDistribution(reviews []domain.ReviewRecord) map[string]map[string]int {
	dist := make(map[string]map[string]int)
	for _, r := range reviews {
		platform := string(r.Platform)
		if dist[platform] == nil {
			dist[platform] = make(map[string]int)
		}
		key := fmt.Sprintf("%d", int(math.Round(r.Rating)))
		dist[platform][key]++
	}
	return dist
}

// crossPlatformCounts aggregates review bucket match counts by
// platform, sorted by platform name for stable output.
func crossPlatformCounts(reviews []domain.ReviewRecord) []PlatformBucketCounts {
	byPlatform := make(map[string][]domain.ReviewRecord)
	for _, r := range reviews {
		byPlatform[string(r.Platform)] = append(byPlatform[string(r.Platform)], r)
	}
	if len(byPlatform) < 2 {
		return nil
	}

	platforms := make([]string, 0, len(byPlatform))
	for p := range byPlatform {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	var out []PlatformBucketCounts
	for _, p := range platforms {
		positive, negative := splitByRating(byPlatform[p])
		counts := make(map[string]int)
		for _, res := range categorize(positive, positiveReviewBuckets) {
			counts[res.Bucket] = res.Matches
		}
		for _, res := range categorize(negative, negativeReviewBuckets) {
			counts[res.Bucket] = res.Matches
		}
		out = append(out, PlatformBucketCounts{Platform: p, Counts: counts})
	}
	return out
}

// truncate cuts text to at most limit bytes on a rune boundary, so a
// multi-byte rune is never split into invalid UTF-8.
func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
