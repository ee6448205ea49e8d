package utils

// TruncateRunes bounds s to at most limit runes. Truncation is rune-aware so
// multibyte scripts are never cut mid-character.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
