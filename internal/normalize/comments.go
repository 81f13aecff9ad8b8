package normalize

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	apperrors "marketpulse/internal/errors"
	"marketpulse/internal/schema"
	"marketpulse/internal/textclean"
	"marketpulse/pkg/contracts/domain"
)

// minCommentLength is the cleaned-text floor, in runes, below which a
// comment is too short to carry extractable signal.
const minCommentLength = 10

// spamPhrases drop a comment outright; self-promotion carries no
// customer signal.
var spamPhrases = []string{"follow me", "check out my", "click link", "dm me"}

var tiktokCommentCandidates = []schema.FieldCandidates{
	{Field: fieldText, Keywords: []string{"text", "comment", "comment_text", "content"}},
	{Field: fieldEngagement, Keywords: []string{"likes", "like_count", "digg_count", "thumbs_up"}},
	{Field: fieldTimestamp, Keywords: []string{"created_at", "create_time", "timestamp", "date"}},
}

var redditCommentCandidates = []schema.FieldCandidates{
	{Field: fieldText, Keywords: []string{"text", "comment", "body", "content"}},
	{Field: fieldEngagement, Keywords: []string{"upvotes", "score", "likes"}},
	{Field: fieldTimestamp, Keywords: []string{"created_at", "timestamp", "date"}},
}

// CommentsResult is the outcome of normalizing one comment table.
type CommentsResult struct {
	Records          []domain.CommentRecord
	Dropped          int
	CoercionFailures int
}

// CoercionCount returns the number of cells that failed coercion.
func (r *CommentsResult) CoercionCount() int {
	return r.CoercionFailures
}

// CommentsNormalizer produces canonical CommentRecord tables from one
// source's raw comment exports.
type CommentsNormalizer struct {
	feed          string
	source        domain.Source
	candidates    []schema.FieldCandidates
	clean         func(string) string
	keepTimestamp bool
	logger        *slog.Logger
}

// NewTikTokComments creates the TikTok video comments normalizer.
func NewTikTokComments(logger *slog.Logger) *CommentsNormalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentsNormalizer{
		feed:       "tiktok_comments",
		source:     domain.SourceTikTokVideo,
		candidates: tiktokCommentCandidates,
		clean:      textclean.CleanSocial,
		logger:     logger,
	}
}

// NewRedditComments creates the Reddit comments normalizer. Reddit
// comments retain their timestamp for potential recency weighting;
// recency is not used in scoring.
func NewRedditComments(logger *slog.Logger) *CommentsNormalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentsNormalizer{
		feed:          "reddit_comments",
		source:        domain.SourceReddit,
		candidates:    redditCommentCandidates,
		clean:         textclean.CleanReddit,
		keepTimestamp: true,
		logger:        logger,
	}
}

// Feed returns the stable feed name used in error reporting.
func (n *CommentsNormalizer) Feed() string { return n.feed }

// Candidates returns the feed's candidate-keyword table.
func (n *CommentsNormalizer) Candidates() []schema.FieldCandidates { return n.candidates }

// Normalize converts a raw comment table into CommentRecords. The text
// column is required; cleaned texts shorter than 10 characters, pure
// symbol noise and self-promotion spam are dropped. Engagement counts
// default to 0 on coercion failure.
func (n *CommentsNormalizer) Normalize(table *schema.RawTable) (*CommentsResult, error) {
	mapping := schema.Detect(table.Headers, n.candidates)
	if !mapping.Has(fieldText) {
		return nil, apperrors.NewSchemaError(n.feed, fieldText, table.Headers)
	}

	result := &CommentsResult{}
	for _, row := range table.Rows {
		text := n.clean(mapping.Value(row, fieldText))
		if utf8.RuneCountInString(text) < minCommentLength || !textclean.HasLetterOrDigit(text) || isSpam(text) {
			result.Dropped++
			continue
		}

		engagement := 0
		if raw := mapping.Value(row, fieldEngagement); raw != "" {
			if val, ok := parseCount(raw); ok {
				engagement = val
			} else {
				result.CoercionFailures++
			}
		}

		record := domain.CommentRecord{
			Text:            text,
			EngagementCount: engagement,
			Source:          n.source,
		}
		if n.keepTimestamp {
			if raw := mapping.Value(row, fieldTimestamp); raw != "" {
				if ts, ok := parseDate(raw); ok {
					record.Timestamp = &ts
				} else {
					result.CoercionFailures++
				}
			}
		}

		result.Records = append(result.Records, record)
	}

	if len(result.Records) == 0 {
		return nil, apperrors.NewEmptyResultError(n.feed)
	}

	n.logger.Info("comment normalization complete",
		"feed", n.feed,
		"records", len(result.Records),
		"dropped", result.Dropped,
		"coercion_failures", result.CoercionFailures,
	)
	return result, nil
}

func isSpam(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range spamPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
