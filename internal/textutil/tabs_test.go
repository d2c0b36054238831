package textutil

import "testing"

func TestLayout(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		tabWidth int
		wantCols []int
		wantLast int
	}{
		{"ascii", "abc", 4, []int{0, 1, 2}, 3},
		{"leading tab", "\tx", 4, []int{0, 4}, 5},
		{"tab to next stop", "ab\tx", 4, []int{0, 1, 2, 4}, 5},
		{"wide runes", "日本x", 4, []int{0, 2, 4}, 5},
		{"default tab width", "\tx", 0, []int{0, DefaultTabWidth}, DefaultTabWidth + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := Layout(tt.text, tt.tabWidth)
			if len(cells) != len(tt.wantCols) {
				t.Fatalf("Layout(%q) produced %d cells, want %d", tt.text, len(cells), len(tt.wantCols))
			}
			for i, cell := range cells {
				if cell.Index != i {
					t.Errorf("cell %d Index = %d", i, cell.Index)
				}
				if cell.Col != tt.wantCols[i] {
					t.Errorf("cell %d Col = %d, want %d", i, cell.Col, tt.wantCols[i])
				}
			}
			if got := ColumnOf(tt.text, len(cells), tt.tabWidth); got != tt.wantLast {
				t.Errorf("ColumnOf(end) = %d, want %d", got, tt.wantLast)
			}
		})
	}
}

func TestLayoutSanitizesControlRunes(t *testing.T) {
	cells := Layout("a\x1bb", 4)
	if cells[1].Rune != '?' || cells[1].Width != 1 {
		t.Fatalf("escape should be drawn as '?', got %+v", cells[1])
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
		{"łódź", 4},
	}
	for _, tt := range tests {
		if got := DisplayWidth(tt.text); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Fatalf("Truncate = %q, want abc", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("Truncate to zero = %q", got)
	}
}
