// Package textclean normalizes free-form marketplace text before any
// keyword matching or scoring happens. All functions are pure.
package textclean

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// urlRegexp matches URL-like substrings, with or without a scheme
	urlRegexp = regexp.MustCompile(`https?://\S+|www\.\S+`)
	// emojiRegexp matches supplementary-plane runes (emoji blocks)
	emojiRegexp = regexp.MustCompile(`[\x{10000}-\x{10FFFF}]+`)
	// punctRunRegexp matches runs of 3+ terminal punctuation marks
	punctRunRegexp = regexp.MustCompile(`([!?.]){3,}`)
	// mentionRegexp matches @user mentions
	mentionRegexp = regexp.MustCompile(`@\w+`)
	// hashtagRegexp captures hashtag bodies so the text survives
	hashtagRegexp = regexp.MustCompile(`#(\w+)`)
	// markdownLinkRegexp matches [label](target) markdown links
	markdownLinkRegexp = regexp.MustCompile(`\[.*?\]\(.*?\)`)
	// redditSlugRegexp matches /u/name and /r/name references
	redditSlugRegexp = regexp.MustCompile(`/[ur]/\w+`)
)

// Clean normalizes raw text: URLs and emoji runes are stripped, runs of
// 3+ terminal punctuation marks collapse to 2, whitespace runs collapse
// to a single space and the result is trimmed. Clean never fails; an
// empty or all-noise input yields the empty string.
func Clean(raw string) string {
	text := urlRegexp.ReplaceAllString(raw, "")
	text = emojiRegexp.ReplaceAllString(text, " ")
	text = punctRunRegexp.ReplaceAllString(text, "${1}${1}")
	return strings.Join(strings.Fields(text), " ")
}

// CleanSocial applies Clean plus the short-video comment rules:
// @mentions are dropped and hashtags keep their text without the marker.
func CleanSocial(raw string) string {
	text := mentionRegexp.ReplaceAllString(raw, "")
	text = hashtagRegexp.ReplaceAllString(text, "$1")
	return Clean(text)
}

// CleanReddit applies Clean plus Reddit markup rules: markdown links,
// /u/ and /r/ slugs, bold and strikethrough markers are dropped.
func CleanReddit(raw string) string {
	text := markdownLinkRegexp.ReplaceAllString(raw, "")
	text = redditSlugRegexp.ReplaceAllString(text, "")
	text = strings.NewReplacer("**", "", "*", "", "~~", "").Replace(text)
	return Clean(text)
}

// HasLetterOrDigit reports whether the text carries at least one
// alphanumeric rune. Pure-symbol comments carry no extractable signal.
func HasLetterOrDigit(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
