package utils

import "strings"

// ErrJSON produces the error body shared by the analysis routes.
func ErrJSON(msg string, details ...string) map[string]any {
	out := map[string]any{"error": msg}
	if d := strings.Join(details, "; "); d != "" {
		out["details"] = d
	}
	return out
}

// SongErrJSON produces the error body of the song search route.
func SongErrJSON(msg string) map[string]any {
	return map[string]any{
		"success": false,
		"error":   msg,
	}
}

// LimitStr returns a string truncated to n runes with "..." appended if longer.
func LimitStr(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
