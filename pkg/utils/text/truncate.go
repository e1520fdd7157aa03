// ABOUTME: Rune-aware truncation helpers shared by the parser and insight service

package text

// Ellipsis is appended to every excerpt
const Ellipsis = "..."

// Head returns the first n runes of s
func Head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Excerpt returns the first n runes of s followed by Ellipsis.
// The marker is appended even when s is shorter than n.
func Excerpt(s string, n int) string {
	return Head(s, n) + Ellipsis
}
