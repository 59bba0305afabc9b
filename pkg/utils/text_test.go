package utils

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"shorter than limit", "short", 100, "short"},
		{"exact limit", "abcde", 5, "abcde"},
		{"cut at limit", "abcdef", 3, "abc"},
		{"multi-byte safe", "héllo wörld", 4, "héll"},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}
