package search

// Run is a half-open [Start, End) range of 0-based rune columns.
type Run struct {
	Start int
	End   int
}

// Runs collapses a span into maximal runs of adjacent columns.
func Runs(span MatchSpan) []Run {
	if len(span) == 0 {
		return nil
	}
	runs := make([]Run, 0, len(span))
	current := Run{Start: span[0] - 1, End: span[0]}
	for i := 1; i < len(span); i++ {
		col := span[i] - 1
		if col == current.End {
			current.End++
			continue
		}
		runs = append(runs, current)
		current = Run{Start: col, End: col + 1}
	}
	runs = append(runs, current)
	return runs
}
