package searchengine

import "strings"

// splitIntoWords splits text on the ASCII space character, skipping runs of
// consecutive spaces and ignoring leading/trailing spaces. It never
// allocates per-token storage beyond the returned slice of substrings.
func splitIntoWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' '
	})
	return fields
}

// isValidWord reports whether word contains no ASCII control bytes
// (0x00-0x1F).
func isValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 0x20 {
			return false
		}
	}
	return true
}
