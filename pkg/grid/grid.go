// Package grid packs text blocks into rows under a maximum line width.
//
// Blocks are placed left to right in input order. A block joins the current
// row if the row, the spacing and the block still fit in the width; otherwise
// it starts a new row. The first block of a row is always placed, so a block
// wider than the limit gets a row of its own instead of being dropped.
//
// Packing is greedy on purpose. Output order always matches input order,
// which is what a user reading diagrams left to right expects.
//
// Widths are display widths in terminal cells (see [Width]), so wide and
// combining characters line up in monospaced output.
package grid

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultSpacing is the gap between blocks used by most callers.
const DefaultSpacing = 2

// Block is one rectangular piece of text, one entry per line.
type Block []string

// Width returns the display width of the widest line.
func (b Block) Width() int {
	w := 0
	for _, line := range b {
		w = max(w, Width(line))
	}
	return w
}

// Height returns the number of lines.
func (b Block) Height() int {
	return len(b)
}

// cond counts East Asian ambiguous characters (such as ●) as one cell so
// that output does not depend on the user's locale.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return cond.StringWidth(s)
}

// Rows packs the blocks into rows and returns the block indices of each row.
// It panics if maxWidth is not positive or spacing is negative.
func Rows(blocks []Block, maxWidth, spacing int) [][]int {
	checkArgs(maxWidth, spacing)

	var (
		rows [][]int
		cur  []int
		used int
	)
	for i, b := range blocks {
		w := b.Width()
		if len(cur) > 0 && used+spacing+w > maxWidth {
			rows = append(rows, cur)
			cur, used = nil, 0
		}
		if len(cur) > 0 {
			used += spacing
		}
		cur = append(cur, i)
		used += w
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}
	return rows
}

// Layout packs the blocks and returns the combined lines. Each row is as
// tall as its tallest block and is followed by one empty line.
func Layout(blocks []Block, maxWidth, spacing int) []string {
	rows := Rows(blocks, maxWidth, spacing)

	widths := make([]int, len(blocks))
	for i, b := range blocks {
		widths[i] = b.Width()
	}
	gap := strings.Repeat(" ", spacing)

	var out []string
	for _, row := range rows {
		height := 0
		for _, i := range row {
			height = max(height, blocks[i].Height())
		}

		for li := 0; li < height; li++ {
			var line strings.Builder
			for j, i := range row {
				if j > 0 {
					line.WriteString(gap)
				}
				cell := ""
				if li < len(blocks[i]) {
					cell = blocks[i][li]
				}
				line.WriteString(cell)
				line.WriteString(strings.Repeat(" ", max(0, widths[i]-Width(cell))))
			}
			out = append(out, line.String())
		}
		out = append(out, "")
	}
	return out
}

// Render is Layout joined with newlines.
func Render(blocks []Block, maxWidth, spacing int) string {
	return strings.Join(Layout(blocks, maxWidth, spacing), "\n")
}

func checkArgs(maxWidth, spacing int) {
	if maxWidth <= 0 {
		panic(fmt.Sprintf("grid: maxWidth must be positive, got %d", maxWidth))
	}
	if spacing < 0 {
		panic(fmt.Sprintf("grid: spacing must not be negative, got %d", spacing))
	}
}
