package marketstats

import (
	"sort"
	"strings"
	"unicode"

	"marketpulse/pkg/contracts/domain"
)

// stopWords is the fixed stop-list applied to title tokens. It is a
// data constant of the contract, not a caller tunable.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "for": {}, "in": {}, "of": {},
	"on": {}, "or": {}, "the": {}, "to": {}, "with": {}, "by": {},
	"from": {}, "at": {}, "is": {}, "it": {}, "as": {},
}

// tokenizeTitle case-folds the title, strips punctuation and splits on
// whitespace. Stop-words and single-rune fragments are dropped.
func tokenizeTitle(title string) []string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, title)

	var tokens []string
	for _, tok := range strings.Fields(mapped) {
		if len(tok) < 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// computeFeatures counts token frequency across titles and reports the
// top-N tokens with the mean rating and mean units sold of the products
// whose title contains each token. Ranking is frequency descending with
// an alphabetical tie-break.
func (e *Engine) computeFeatures(records []domain.SalesRecord) []FeatureStat {
	if len(records) == 0 {
		return nil
	}

	freq := make(map[string]int)
	ratings := make(map[string][]float64)
	units := make(map[string][]float64)

	for _, rec := range records {
		tokens := tokenizeTitle(rec.Title)
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			freq[tok]++
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			ratings[tok] = append(ratings[tok], rec.Rating)
			units[tok] = append(units[tok], float64(rec.UnitsSold))
		}
	}

	stats := make([]FeatureStat, 0, len(freq))
	for tok, count := range freq {
		stats = append(stats, FeatureStat{
			Token:        tok,
			Frequency:    count,
			AvgRating:    mean(ratings[tok]),
			AvgUnitsSold: mean(units[tok]),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Frequency != stats[j].Frequency {
			return stats[i].Frequency > stats[j].Frequency
		}
		return stats[i].Token < stats[j].Token
	})

	if len(stats) > e.cfg.TopFeatures {
		stats = stats[:e.cfg.TopFeatures]
	}
	return stats
}
