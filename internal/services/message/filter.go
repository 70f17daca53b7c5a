// File: internal/services/message/filter.go
package message

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ContentFilter redacts configured terms from message text. Matching is
// case-insensitive substring matching; each occurrence is replaced by a run
// of asterisks equal in rune length to the match, so the visible length of
// the text never changes.
type ContentFilter struct {
	patterns []*regexp.Regexp
}

// NewContentFilter compiles the block-list once. Patterns are applied in
// list order, which keeps the output deterministic for identical input.
func NewContentFilter(blockedWords []string) *ContentFilter {
	patterns := make([]*regexp.Regexp, 0, len(blockedWords))
	for _, word := range blockedWords {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(word)))
	}
	return &ContentFilter{patterns: patterns}
}

// Filter returns the redacted text and whether any replacement occurred.
// Pure function of (text, block-list); no side effects.
func (f *ContentFilter) Filter(text string) (string, bool) {
	if text == "" {
		return text, false
	}

	replaced := false
	filtered := text
	for _, pattern := range f.patterns {
		filtered = pattern.ReplaceAllStringFunc(filtered, func(match string) string {
			replaced = true
			return strings.Repeat("*", utf8.RuneCountInString(match))
		})
	}

	return filtered, replaced
}
