// Package normalize converts raw marketplace exports into canonical
// record tables. Six normalizers cover the supported feeds:
//
//	AmazonSales, TikTokSales     -> []domain.SalesRecord
//	TikTokComments, RedditComments -> []domain.CommentRecord
//	AmazonReviews, TikTokReviews -> []domain.ReviewRecord
//
// Every variant supplies its own candidate-keyword table and validation
// rules but shares the schema.Detect column resolution, textclean text
// normalization and the coercion helpers in this package.
//
// # Fallback rules
//
// A required field that cannot be located fails the whole table with a
// typed SchemaError. A cell that fails numeric coercion either drops
// the record (required sales numerics) or takes the documented default
// (optional fields); both outcomes are tallied on the result so callers
// can report a coercion count without ever aborting the run. A table
// with zero usable records after filtering yields EmptyResultError.
//
// Normalization is deterministic and idempotent: re-running a
// normalizer on the same raw table yields identical records in
// identical order.
package normalize
