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

func TestTikTokCommentsNormalize(t *testing.T) {
	table := &schema.RawTable{
		Name:    "tk_comments",
		Headers: []string{"Comment", "Likes", "Created_At"},
		Rows: [][]string{
			{"amazing!!! love it soooo much http://x.co", "42", "2025-06-01"},
			{"too short", "5", ""},                              // 9 chars after cleaning, dropped
			{"!!! ??? !!!", "9", ""},                            // symbol noise, dropped
			{"follow me for more wig content", "100", ""},      // spam, dropped
			{"the quality is outstanding @brand", "bad", ""},   // engagement defaults to 0
		},
	}

	result, err := NewTikTokComments(nil).Normalize(table)
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, 3, result.Dropped)
	assert.Equal(t, 1, result.CoercionCount())

	first := result.Records[0]
	assert.Equal(t, "amazing!! love it soooo much", first.Text)
	assert.Equal(t, 42, first.EngagementCount)
	assert.Equal(t, domain.SourceTikTokVideo, first.Source)
	assert.Nil(t, first.Timestamp) // video comments do not keep timestamps

	second := result.Records[1]
	assert.Equal(t, "the quality is outstanding", second.Text)
	assert.Equal(t, 0, second.EngagementCount)
}

func TestRedditCommentsNormalize(t *testing.T) {
	table := &schema.RawTable{
		Name:    "reddit",
		Headers: []string{"body", "score", "created_at"},
		Rows: [][]string{
			{"bought one from [here](https://x.co) and **love** it", "17", "2025-05-20"},
			{"works great for daily wear honestly", "3", "not a date"},
		},
	}

	result, err := NewRedditComments(nil).Normalize(table)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	first := result.Records[0]
	assert.Equal(t, "bought one from and love it", first.Text)
	assert.Equal(t, 17, first.EngagementCount)
	assert.Equal(t, domain.SourceReddit, first.Source)
	require.NotNil(t, first.Timestamp)
	assert.Equal(t, 2025, first.Timestamp.Year())

	second := result.Records[1]
	assert.Nil(t, second.Timestamp)
	assert.Equal(t, 1, result.CoercionCount())
}

func TestCommentsNormalizeMissingText(t *testing.T) {
	table := &schema.RawTable{
		Name:    "tk_comments",
		Headers: []string{"likes", "created_at"},
		Rows:    [][]string{{"5", "2025-01-01"}},
	}

	_, err := NewTikTokComments(nil).Normalize(table)
	var schemaErr *apperrors.SchemaError
	require.True(t, stderrors.As(err, &schemaErr))
	assert.Equal(t, "text", schemaErr.Field)
}

func TestCommentsMinLengthCountsRunes(t *testing.T) {
	table := &schema.RawTable{
		Name:    "tk_comments",
		Headers: []string{"comment", "likes"},
		Rows: [][]string{
			{"质量很好推荐", "10"},          // 6 runes, 18 bytes, dropped
			{"质量很好强烈推荐给大家买", "20"}, // 11 runes, kept
		},
	}

	result, err := NewTikTokComments(nil).Normalize(table)
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, "质量很好强烈推荐给大家买", result.Records[0].Text)
}

func TestCommentsEngagementOverflowFailsCoercion(t *testing.T) {
	table := &schema.RawTable{
		Name:    "tk_comments",
		Headers: []string{"comment", "likes"},
		Rows: [][]string{
			{"the quality is outstanding honestly", "99999999999999999999999"},
		},
	}

	result, err := NewTikTokComments(nil).Normalize(table)
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, 0, result.Records[0].EngagementCount)
	assert.Equal(t, 1, result.CoercionCount())
	assert.GreaterOrEqual(t, result.Records[0].EngagementCount, 0)
}

func TestCommentsNormalizeAllFiltered(t *testing.T) {
	table := &schema.RawTable{
		Name:    "tk_comments",
		Headers: []string{"comment"},
		Rows:    [][]string{{"short"}, {"!!!"}},
	}

	_, err := NewTikTokComments(nil).Normalize(table)
	var emptyErr *apperrors.EmptyResultError
	require.True(t, stderrors.As(err, &emptyErr))
	assert.Equal(t, "tiktok_comments", emptyErr.Table)
}
