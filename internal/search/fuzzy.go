package search

import (
	"sync"
	"unicode"
	"unicode/utf8"
)

// MatchSpan lists the 1-based rune positions of one subsequence occurrence
// of a pattern inside a line. Positions are strictly increasing but not
// necessarily contiguous.
type MatchSpan []int

// Matcher performs greedy subsequence matching of a pattern against a line.
//
// Algorithm: every position whose rune equals the first pattern rune starts a
// candidate. From there each following pattern rune is taken at its first
// occurrence after the previous match. A candidate that consumes the whole
// pattern becomes one MatchSpan; candidates are never deduplicated, so
// overlapping spans from different starts are all reported.
//
// Scoring: 1 for the span plus 1 for every pair of consecutive positions
// that differ by exactly one, divided by the pattern length. A contiguous
// span scores 1.0.
type Matcher struct {
	spanPool sync.Pool
}

// NewMatcher creates a new matcher.
func NewMatcher() *Matcher {
	return &Matcher{
		spanPool: sync.Pool{
			New: func() any {
				return &positionBuffer{}
			},
		},
	}
}

type positionBuffer struct {
	data []int
}

// FilterString folds text and pattern and returns every span with its score.
func (m *Matcher) FilterString(text, pattern string) ([]MatchSpan, []float64) {
	if pattern == "" {
		return nil, nil
	}
	return m.Filter(FoldRunes(text), FoldRunes(pattern))
}

// Filter matches an already folded pattern against already folded text.
// An empty pattern yields no spans.
func (m *Matcher) Filter(text, pattern []rune) ([]MatchSpan, []float64) {
	if len(pattern) == 0 || len(text) < len(pattern) {
		return nil, nil
	}

	buf := m.acquire(len(pattern))
	defer m.release(buf)

	var spans []MatchSpan
	var scores []float64
	first := pattern[0]
	last := len(text) - len(pattern)
	for start := 0; start <= last; start++ {
		if text[start] != first {
			continue
		}
		positions, ok := matchFrom(text, pattern, start, buf.data[:0])
		if !ok {
			continue
		}
		span := make(MatchSpan, len(positions))
		copy(span, positions)
		spans = append(spans, span)
		scores = append(scores, Score(span, len(pattern)))
	}
	return spans, scores
}

// matchFrom runs the greedy left-to-right walk from start, where
// text[start] already equals pattern[0]. Positions are appended 1-based.
func matchFrom(text, pattern []rune, start int, dst []int) ([]int, bool) {
	dst = append(dst, start+1)
	pos := start + 1
	for pi := 1; pi < len(pattern); pi++ {
		want := pattern[pi]
		found := -1
		for i := pos; i < len(text); i++ {
			if text[i] == want {
				found = i
				break
			}
		}
		if found == -1 {
			return dst, false
		}
		dst = append(dst, found+1)
		pos = found + 1
	}
	return dst, true
}

// Score rates a span by its contiguity: (1 + adjacent pairs) / patternLen.
func Score(span MatchSpan, patternLen int) float64 {
	if len(span) == 0 || patternLen <= 0 {
		return 0
	}
	score := 1
	for i := 1; i < len(span); i++ {
		if span[i]-span[i-1] == 1 {
			score++
		}
	}
	return float64(score) / float64(patternLen)
}

// BestIndex returns the index of the first maximum score, or -1 when empty.
func BestIndex(scores []float64) int {
	if len(scores) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}

// BestScore returns the highest score, or 0 when empty.
func BestScore(scores []float64) float64 {
	idx := BestIndex(scores)
	if idx < 0 {
		return 0
	}
	return scores[idx]
}

func (m *Matcher) acquire(n int) *positionBuffer {
	buf := m.spanPool.Get().(*positionBuffer)
	if cap(buf.data) < n {
		buf.data = make([]int, 0, n)
	}
	return buf
}

func (m *Matcher) release(buf *positionBuffer) {
	buf.data = buf.data[:0]
	m.spanPool.Put(buf)
}

// FoldRunes lowercases s rune by rune. Folding never changes the rune count,
// so positions in the folded slice line up with the original text.
func FoldRunes(s string) []rune {
	isASCII := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			isASCII = false
			break
		}
	}
	if isASCII {
		runes := make([]rune, len(s))
		for i := 0; i < len(s); i++ {
			b := s[i]
			if b >= 'A' && b <= 'Z' {
				b += 'a' - 'A'
			}
			runes[i] = rune(b)
		}
		return runes
	}

	runes := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		runes = append(runes, unicode.ToLower(r))
	}
	return runes
}
