package utils

// Truncate cuts a string to at most 'limit' characters. Rune-based so
// multi-byte text is never sliced mid-character.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
