package render

import (
	"fmt"
	"strings"

	statepkg "github.com/ripxorip/aerojump.nvim/internal/state"
	textutil "github.com/ripxorip/aerojump.nvim/internal/textutil"
)

// formatPrompt renders the query prompt shown on the last row.
func formatPrompt(state *statepkg.AppState) string {
	return fmt.Sprintf("%s> %s", modeLabel(state.Session.Mode()), state.Query)
}

func modeLabel(mode statepkg.Mode) string {
	if mode == statepkg.ModeDefault {
		return ""
	}
	return "[" + string(mode) + "] "
}

const statusSeparator = " · "

// statusParts returns the status segments, most important first.
func statusParts(state *statepkg.AppState) []string {
	session := state.Session
	if state.Rejected {
		return []string{"no match"}
	}
	if !session.HasResults() {
		return []string{fmt.Sprintf("%s lines", formatCompactNumber(len(session.Lines())))}
	}

	filtered := session.FilteredLines()
	matches := 0
	for _, line := range filtered {
		matches += len(line.Matches)
	}
	parts := []string{
		fmt.Sprintf("%s/%s lines", formatCompactNumber(len(filtered)), formatCompactNumber(len(session.Lines()))),
		fmt.Sprintf("%s matches", formatCompactNumber(matches)),
	}
	if lineIdx, _, ok := session.Selection(); ok {
		parts = append(parts, fmt.Sprintf("%d/%d", lineIdx+1, len(filtered)))
	}
	return parts
}

// fitStatus drops trailing segments until the status fits in width. The
// first segment is kept even when it has to be truncated by the caller.
func fitStatus(parts []string, width int) string {
	for n := len(parts); n > 1; n-- {
		if status := strings.Join(parts[:n], statusSeparator); textutil.DisplayWidth(status) <= width {
			return status
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

func formatCompactNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/1_000_000.0)) + "M"
	case n >= 10_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/1_000.0)) + "k"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimTrailingZero(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
