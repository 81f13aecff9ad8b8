// Package marketstats computes the market-landscape half of the
// intelligence report from normalized sales tables.
//
// For each platform and for the combined record set the engine derives:
//
//  1. Overview: product count, units sold, revenue, price and rating
//     aggregates
//  2. Concentration: top-decile revenue share and the long-tail index
//     (1 minus that share)
//  3. Price analysis: equal-width price bands and the Pearson
//     price/volume correlation
//  4. Feature extraction: ranked title tokens with per-token performance
//  5. Launch profile: age buckets, present only when launch dates exist
//  6. Rating profile: rating distribution and review-to-sales ratio
//
// The concentration cut (top 10% of products by revenue) and the
// stop-word list are fixed contracts: downstream consumers reproduce
// numbers from this package and never re-derive them.
//
// All computation is pure and batch: the engine reads the full
// in-memory record set once per invocation and keeps no state.
package marketstats
