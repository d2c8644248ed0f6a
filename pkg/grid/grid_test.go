package grid

import (
	"reflect"
	"strings"
	"testing"
)

func block(width, height int) Block {
	b := make(Block, height)
	for i := range b {
		b[i] = strings.Repeat("x", width)
	}
	return b
}

func TestRowsWrap(t *testing.T) {
	blocks := []Block{block(20, 3), block(20, 3), block(20, 3)}

	got := Rows(blocks, 45, 2)
	want := [][]int{{0, 1}, {2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
}

func TestRowsExactFit(t *testing.T) {
	blocks := []Block{block(20, 1), block(20, 1)}
	if got := Rows(blocks, 42, 2); len(got) != 1 {
		t.Errorf("20+2+20 should fit in 42, got rows %v", got)
	}
	if got := Rows(blocks, 41, 2); len(got) != 2 {
		t.Errorf("20+2+20 should not fit in 41, got rows %v", got)
	}
}

func TestRowsOversizedBlock(t *testing.T) {
	blocks := []Block{block(10, 1), block(50, 1), block(10, 1), block(10, 1)}

	got := Rows(blocks, 30, 2)
	want := [][]int{{0}, {1}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
}

func TestRowsEmpty(t *testing.T) {
	if got := Rows(nil, 80, 2); len(got) != 0 {
		t.Errorf("Rows(nil) = %v, want none", got)
	}
	if got := Layout(nil, 80, 2); len(got) != 0 {
		t.Errorf("Layout(nil) = %v, want none", got)
	}
}

func TestRowsWidthBound(t *testing.T) {
	widths := []int{7, 3, 12, 1, 9, 9, 9, 25, 4, 4, 4, 4, 18, 2, 30, 6}
	var blocks []Block
	for _, w := range widths {
		blocks = append(blocks, block(w, 2))
	}

	for maxWidth := 1; maxWidth <= 40; maxWidth++ {
		for spacing := 0; spacing <= 3; spacing++ {
			seen := 0
			for _, row := range Rows(blocks, maxWidth, spacing) {
				if len(row) == 0 {
					t.Fatalf("max=%d spacing=%d: empty row", maxWidth, spacing)
				}
				total := 0
				for j, i := range row {
					if i != seen {
						t.Fatalf("max=%d spacing=%d: block %d out of order", maxWidth, spacing, i)
					}
					seen++
					if j > 0 {
						total += spacing
					}
					total += widths[i]
				}
				if len(row) > 1 && total > maxWidth {
					t.Errorf("max=%d spacing=%d: row %v is %d wide", maxWidth, spacing, row, total)
				}
			}
			if seen != len(blocks) {
				t.Errorf("max=%d spacing=%d: placed %d of %d blocks", maxWidth, spacing, seen, len(blocks))
			}
		}
	}
}

func TestLayout(t *testing.T) {
	blocks := []Block{
		{"ab", "abcd"},
		{"x", "y", "z"},
		{"long block"},
	}

	got := Layout(blocks, 10, 2)
	want := []string{
		"ab    x",
		"abcd  y",
		"      z",
		"",
		"long block",
		"",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Layout() =\n%q\nwant\n%q", got, want)
	}
}

func TestLayoutPadsEveryCell(t *testing.T) {
	blocks := []Block{{"a", "bbb"}, {"cc"}, {"d"}}

	got := Layout(blocks, 80, 1)
	want := []string{
		"a   cc d",
		"bbb     ",
		"",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Layout() =\n%q\nwant\n%q", got, want)
	}
}

func TestLayoutUnicodeWidth(t *testing.T) {
	blocks := []Block{
		{"● x", "abc"},    // ● is one cell
		{"日本", "ab"},      // CJK runes are two cells each
		{"e\u0301", "z"}, // combining accent adds no width
	}

	got := Layout(blocks, 80, 1)
	want := []string{
		"● x 日本 e\u0301",
		"abc ab   z",
		"",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Layout() =\n%q\nwant\n%q", got, want)
	}

	if w := (Block{"日本", "ab"}).Width(); w != 4 {
		t.Errorf("Width() = %d, want 4", w)
	}
}

func TestLayoutDeterministic(t *testing.T) {
	blocks := []Block{block(5, 2), block(8, 4), block(3, 1), block(11, 3)}
	a := Render(blocks, 20, 2)
	b := Render(blocks, 20, 2)
	if a != b {
		t.Error("Render() should be deterministic")
	}
}

func TestInvalidArgsPanic(t *testing.T) {
	tests := []struct {
		name     string
		maxWidth int
		spacing  int
	}{
		{"zero width", 0, 2},
		{"negative width", -5, 2},
		{"negative spacing", 10, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Layout([]Block{{"a"}}, tt.maxWidth, tt.spacing)
		})
	}
}
