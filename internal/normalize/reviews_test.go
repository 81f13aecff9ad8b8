package normalize

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "marketpulse/internal/errors"
	"marketpulse/internal/schema"
	"marketpulse/pkg/contracts/domain"
)

func TestAmazonReviewsNormalize(t *testing.T) {
	table := &schema.RawTable{
		Name:    "amz_reviews",
		Headers: []string{"ASIN", "Review_Text", "Star_Rating", "Helpful_Votes", "Verified"},
		Rows: [][]string{
			{"A1", "excellent quality, well worth the price", "5", "12", "true"},
			{"A2", "broke after two days of use", "1", "3", "no"},
			{"A3", "meh", "3", "0", "yes"}, // too short, dropped
		},
	}

	result, err := NewAmazonReviews(nil).Normalize(table)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 1, result.Dropped)

	first := result.Records[0]
	assert.Equal(t, "A1", first.ProductID)
	assert.Equal(t, 5.0, first.Rating)
	assert.Equal(t, 12, first.HelpfulCount)
	assert.True(t, first.Verified)
	assert.Equal(t, domain.PlatformAmazon, first.Platform)

	assert.False(t, result.Records[1].Verified)
}

func TestReviewsMinLengthCountsRunes(t *testing.T) {
	table := &schema.RawTable{
		Name:    "amz_reviews",
		Headers: []string{"review", "rating"},
		Rows: [][]string{
			{"质量很好推荐", "5"},          // 6 runes, 18 bytes, dropped
			{"质量很好强烈推荐给大家买", "5"}, // 11 runes, kept
		},
	}

	result, err := NewAmazonReviews(nil).Normalize(table)
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, "质量很好强烈推荐给大家买", result.Records[0].Text)
}

func TestAmazonReviewsVerifiedDefaultsFalse(t *testing.T) {
	table := &schema.RawTable{
		Name:    "amz_reviews",
		Headers: []string{"review", "rating"},
		Rows:    [][]string{{"good product overall, does the job", "4"}},
	}

	result, err := NewAmazonReviews(nil).Normalize(table)
	require.NoError(t, err)
	assert.False(t, result.Records[0].Verified)
}

func TestTikTokReviewsAlwaysVerified(t *testing.T) {
	table := &schema.RawTable{
		Name:    "tk_reviews",
		Headers: []string{"sku", "content", "star", "likes"},
		Rows: [][]string{
			{"S1", "arrived quickly and fits perfectly", "5", "3"},
			{"S2", "color was different than pictured", "2", "8"},
		},
	}

	result, err := NewTikTokReviews(nil).Normalize(table)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	for _, rec := range result.Records {
		assert.True(t, rec.Verified)
		assert.Equal(t, domain.PlatformTikTok, rec.Platform)
	}
}

func TestReviewsRatingRescale(t *testing.T) {
	// 100-point source scale: batch maximum drives the rescale factor
	table := &schema.RawTable{
		Name:    "tk_reviews",
		Headers: []string{"content", "score"},
		Rows: [][]string{
			{"absolutely love this wig so much", "100"},
			{"it is fine but nothing special", "50"},
		},
	}

	result, err := NewTikTokReviews(nil).Normalize(table)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.Records[0].Rating)
	assert.Equal(t, 2.5, result.Records[1].Rating)
}

func TestReviewsMissingText(t *testing.T) {
	table := &schema.RawTable{
		Name:    "amz_reviews",
		Headers: []string{"rating", "helpful"},
		Rows:    [][]string{{"4", "2"}},
	}

	_, err := NewAmazonReviews(nil).Normalize(table)
	var schemaErr *apperrors.SchemaError
	require.True(t, stderrors.As(err, &schemaErr))
	assert.Equal(t, "text", schemaErr.Field)
}

func TestCombineReviews(t *testing.T) {
	amazon := []domain.ReviewRecord{
		{Text: "solid quality for the price point", Rating: 4, Platform: domain.PlatformAmazon},
		{Text: "shipping took forever, product ok", Rating: 3, Platform: domain.PlatformAmazon},
	}
	tiktok := []domain.ReviewRecord{
		{Text: "exactly as shown in the video", Rating: 5, Verified: true, Platform: domain.PlatformTikTok},
	}

	combined := CombineReviews(amazon, tiktok)

	require.Len(t, combined, len(amazon)+len(tiktok))
	assert.Equal(t, amazon[0], combined[0])
	assert.Equal(t, tiktok[0], combined[2])

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, CombineReviews(nil, nil))
		assert.Len(t, CombineReviews(amazon, nil), 2)
	})
}
