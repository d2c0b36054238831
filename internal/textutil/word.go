package textutil

import "unicode"

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WordAt returns the word under rune column col. When col is not on a word
// the first word after it on the same line is used, like an editor's
// word-under-cursor lookup. It returns "" when there is none.
func WordAt(text string, col int) string {
	runes := []rune(text)
	if col < 0 {
		col = 0
	}
	start := col
	for start < len(runes) && !isWordRune(runes[start]) {
		start++
	}
	if start >= len(runes) {
		return ""
	}
	if start == col {
		for start > 0 && isWordRune(runes[start-1]) {
			start--
		}
	}
	end := start
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	return string(runes[start:end])
}
