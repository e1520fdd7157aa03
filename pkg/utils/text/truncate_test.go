package text

import (
	"testing"
	"unicode/utf8"
)

func TestHead(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a long string", 7, "this is"},
		{"", 5, ""},
		{"abc", 0, ""},
		{"こんにちは世界", 5, "こんにちは"},
	}
	for _, tt := range tests {
		if got := Head(tt.input, tt.n); got != tt.want {
			t.Errorf("Head(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestExcerpt_AlwaysAppendsEllipsis(t *testing.T) {
	if got := Excerpt("Hello World", 150); got != "Hello World..." {
		t.Errorf("Excerpt = %q, want %q", got, "Hello World...")
	}
	if got := Excerpt("", 150); got != "..." {
		t.Errorf("Excerpt(empty) = %q, want %q", got, "...")
	}
}

func TestExcerpt_Bounded(t *testing.T) {
	long := make([]rune, 400)
	for i := range long {
		long[i] = 'é'
	}
	got := Excerpt(string(long), 150)
	if n := utf8.RuneCountInString(got); n != 153 {
		t.Errorf("Excerpt rune length = %d, want 153", n)
	}
}
