package vocstats

import (
	"strings"
)

// TriggerGroup is one aspect of a bucket: the group matches when any of
// its phrases occurs in the cleaned text.
type TriggerGroup struct {
	Label   string
	Phrases []string
}

// Bucket is a named category populated by rule-based matching. Buckets
// are data, not code: adding a bucket or a phrase is a data change.
type Bucket struct {
	Name     string
	Triggers []TriggerGroup
}

// matchCount returns the number of trigger phrases present in the text
// as case-insensitive substrings. Zero means the record does not belong
// to the bucket.
func (b Bucket) matchCount(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, group := range b.Triggers {
		for _, phrase := range group.Phrases {
			if strings.Contains(lower, phrase) {
				count++
			}
		}
	}
	return count
}

// commentBuckets categorize user comments into decision-relevant groups.
var commentBuckets = []Bucket{
	{
		Name: "reasons-to-buy",
		Triggers: []TriggerGroup{
			{Label: "praise", Phrases: []string{"love", "amazing", "perfect", "great", "best", "beautiful"}},
			{Label: "endorsement", Phrases: []string{"recommend", "worth", "purchased", "happy"}},
		},
	},
	{
		Name: "reasons-not-to-buy",
		Triggers: []TriggerGroup{
			{Label: "complaint", Phrases: []string{"bad", "terrible", "worst", "poor", "disappointed"}},
			{Label: "distrust", Phrases: []string{"waste", "don't buy", "regret", "fake", "scam"}},
		},
	},
	{
		Name: "usage-scenarios",
		Triggers: []TriggerGroup{
			{Label: "activity", Phrases: []string{"use", "wear", "tried", "works", "installed"}},
			{Label: "occasion", Phrases: []string{"occasion", "event", "party", "daily", "everyday"}},
		},
	},
	{
		Name: "user-segments",
		Triggers: []TriggerGroup{
			{Label: "beginners", Phrases: []string{"first time", "beginner", "new to", "starting"}},
			{Label: "professionals", Phrases: []string{"professional", "expert", "experienced"}},
			{Label: "budget-conscious", Phrases: []string{"cheap", "affordable", "budget"}},
			{Label: "quality-seekers", Phrases: []string{"quality", "premium", "high-end", "luxury"}},
		},
	},
}

// positiveReviewBuckets run against reviews rated 4 and above.
var positiveReviewBuckets = []Bucket{
	{
		Name: "must-have-factors",
		Triggers: []TriggerGroup{
			{Label: "quality", Phrases: []string{"quality", "well made", "durable", "sturdy", "solid"}},
			{Label: "price-value", Phrases: []string{"worth", "value", "affordable", "reasonable"}},
			{Label: "ease-of-use", Phrases: []string{"easy", "simple", "convenient"}},
			{Label: "performance", Phrases: []string{"works", "effective", "reliable"}},
			{Label: "appearance", Phrases: []string{"looks", "beautiful", "gorgeous"}},
			{Label: "comfort", Phrases: []string{"comfortable", "soft", "fits"}},
			{Label: "shipping", Phrases: []string{"fast", "arrived", "delivery"}},
		},
	},
	{
		Name: "usage-scenarios",
		Triggers: []TriggerGroup{
			{Label: "daily", Phrases: []string{"daily", "everyday", "routine"}},
			{Label: "occasions", Phrases: []string{"wedding", "party", "event", "celebration"}},
			{Label: "professional", Phrases: []string{"work", "office", "business"}},
			{Label: "outdoor", Phrases: []string{"outdoor", "travel", "camping"}},
			{Label: "home", Phrases: []string{"home", "indoor", "bedroom"}},
		},
	},
}

// negativeReviewBuckets run against reviews rated 2 and below.
var negativeReviewBuckets = []Bucket{
	{
		Name: "critical-pitfalls",
		Triggers: []TriggerGroup{
			{Label: "poor-quality", Phrases: []string{"poor quality", "cheap", "broke", "broken", "defective"}},
			{Label: "not-as-described", Phrases: []string{"not as described", "misleading", "different", "wrong"}},
			{Label: "bad-fit", Phrases: []string{"doesn't fit", "too small", "too large", "wrong size"}},
			{Label: "delivery", Phrases: []string{"late", "damaged", "never arrived"}},
			{Label: "overpriced", Phrases: []string{"overpriced", "too expensive", "not worth", "waste of money"}},
			{Label: "hard-to-use", Phrases: []string{"difficult", "hard to use", "complicated", "confusing"}},
			{Label: "smell", Phrases: []string{"smell", "odor", "chemical"}},
		},
	},
	{
		Name: "unmet-needs",
		Triggers: []TriggerGroup{
			{Label: "wishes", Phrases: []string{"wish it", "wish there", "would be better if", "would be nice if"}},
			{Label: "gaps", Phrases: []string{"should have", "needs more", "missing", "lacking", "could use"}},
		},
	},
}
