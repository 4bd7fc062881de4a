package db

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Cat", 40, "Cat"},
		{"Mercury_(planet)", 10, "Mercury..."},
		{"Zürich", 6, "Zürich"},
		{"Ελληνική_Δημοκρατία", 10, "Ελληνικ..."},
		{"東京都庁舎", 4, "東..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) split a rune: %q", tt.in, tt.n, got)
		}
	}
}
