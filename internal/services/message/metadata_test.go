// File: internal/services/message/metadata_test.go
package message

import "testing"

func TestCalculateStats(t *testing.T) {
	cases := []struct {
		content    string
		wantLength int
		wantWords  int
	}{
		{"", 0, 0},
		{"hola", 4, 1},
		{"Hola, como estas?", 17, 3},
		{"  leading and trailing  ", 24, 3},
		{"one\ttwo\nthree", 13, 3},
		{"señal única", 11, 2}, // runes, not bytes
		{"*** **** *", 10, 3},
	}

	for _, tc := range cases {
		got := CalculateStats(tc.content)
		if got.MessageLength != tc.wantLength {
			t.Fatalf("%q: length = %d, want %d", tc.content, got.MessageLength, tc.wantLength)
		}
		if got.WordCount != tc.wantWords {
			t.Fatalf("%q: words = %d, want %d", tc.content, got.WordCount, tc.wantWords)
		}
	}
}

func TestStatsMatchFilteredContent(t *testing.T) {
	f := defaultFilter()
	filtered, _ := f.Filter("Mensaje con badword1 ofensivo")
	stats := CalculateStats(filtered)
	if stats.MessageLength != len([]rune(filtered)) {
		t.Fatalf("length %d does not match filtered content %q", stats.MessageLength, filtered)
	}
	if stats.WordCount != 4 {
		t.Fatalf("expected 4 words in %q, got %d", filtered, stats.WordCount)
	}
}
