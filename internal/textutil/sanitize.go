package textutil

import "strings"

const formattingPlaceholder = '·'

// formattingRunes are bidi and zero-width characters that would otherwise
// reorder or hide text on screen.
var formattingRunes = map[rune]struct{}{
	0x061C: {}, 0x00AD: {}, 0x180E: {},
	0x200B: {}, 0x200C: {}, 0x200D: {}, 0x200E: {}, 0x200F: {},
	0x202A: {}, 0x202B: {}, 0x202C: {}, 0x202D: {}, 0x202E: {},
	0x2028: {}, 0x2029: {},
	0x2060: {}, 0x2066: {}, 0x2067: {}, 0x2068: {}, 0x2069: {},
	0x206A: {}, 0x206B: {}, 0x206C: {}, 0x206D: {}, 0x206E: {}, 0x206F: {},
	0xFEFF: {},
}

// SanitizeRune maps a rune to something safe to put in a terminal cell.
// Control characters become '?', formatting characters a visible dot; every
// other rune is returned unchanged. The mapping is one rune to one rune so
// column indices are preserved.
func SanitizeRune(r rune) rune {
	if _, ok := formattingRunes[r]; ok {
		return formattingPlaceholder
	}
	if (r >= 0 && r < 0x20) || r == 0x7f || (r >= 0x80 && r < 0xa0) {
		return '?'
	}
	return r
}

// SanitizeTerminalText applies SanitizeRune to every rune of text, with
// tabs and line breaks turned into spaces.
func SanitizeTerminalText(text string) string {
	clean := true
	for _, r := range text {
		if r == '\t' || SanitizeRune(r) != r {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '\t', '\n', '\r':
			b.WriteByte(' ')
		default:
			b.WriteRune(SanitizeRune(r))
		}
	}
	return b.String()
}
