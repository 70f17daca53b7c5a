// File: internal/services/message/metadata.go
package message

import (
	"strings"
	"unicode/utf8"
)

// Stats holds metadata derived from final (post-filter) content.
type Stats struct {
	MessageLength int
	WordCount     int
}

// CalculateStats computes the character count and whitespace-delimited word
// count of content. Lengths are in runes, not bytes.
func CalculateStats(content string) Stats {
	return Stats{
		MessageLength: utf8.RuneCountInString(content),
		WordCount:     len(strings.Fields(content)),
	}
}
