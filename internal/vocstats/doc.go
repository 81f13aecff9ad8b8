// Package vocstats extracts Voice-of-Customer metrics from normalized
// comments and reviews.
//
// Categorization is rule-based and auditable: every bucket owns a fixed
// table of trigger phrase groups, and a record joins every bucket whose
// phrases occur in its cleaned text (case-insensitive substring match).
// A record may land in zero, one or several buckets. Reviews are
// pre-split by rating before matching: 4 and above feed the positive
// buckets, 2 and below feed the negative ones, and a rating of exactly
// 3 is excluded from both extremes.
//
// Within a bucket, evidence snippets rank by
//
//	score = matched-count x (1 + normalized engagement)
//
// with occurrence count and then lexical order as tie-breaks, and each
// bucket reports at most 5 distinct snippets, never padded.
package vocstats
