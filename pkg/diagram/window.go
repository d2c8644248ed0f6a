package diagram

import (
	"fmt"

	"github.com/matzehuels/ukechords/pkg/chord"
)

// MinSpan is the number of frets a selected window extends past its start.
const MinSpan = 4

// Window is an inclusive fret range.
type Window struct {
	Start int
	End   int
}

// Columns returns the number of fret columns in the window.
func (w Window) Columns() int {
	return w.End - w.Start + 1
}

// Valid reports whether the window can be rendered.
func (w Window) Valid() bool {
	return w.Start >= 0 && w.Start <= w.End
}

// String returns the window as "start-end".
func (w Window) String() string {
	return fmt.Sprintf("%d-%d", w.Start, w.End)
}

// SelectWindow computes the window shared by a batch of chords. It returns
// false for an empty batch.
func SelectWindow(chords ...*chord.Chord) (Window, bool) {
	if len(chords) == 0 {
		return Window{}, false
	}

	var (
		lo, hi  int
		bounded bool
		open    bool
	)
	for _, c := range chords {
		if c.HasOpen() {
			open = true
		}
		cLo, cHi, ok := c.Bounds()
		if !ok {
			continue
		}
		if !bounded {
			lo, hi, bounded = cLo, cHi, true
			continue
		}
		lo = min(lo, cLo)
		hi = max(hi, cHi)
	}

	start := 1
	if !open && bounded && lo >= 2 {
		start = lo
	}
	return Window{Start: start, End: max(hi, start+MinSpan)}, true
}
