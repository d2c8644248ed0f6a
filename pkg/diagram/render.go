package diagram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/ukechords/pkg/chord"
)

const (
	// headerMargin is the width of the left margin before the fret numbers.
	headerMargin = 5

	// cellWidth is the width of one fret column. Windows reaching fret 1000
	// or beyond widen every column to one more than the digits of their
	// last fret.
	cellWidth = 3

	// DefaultMarker marks the fretted position on a string.
	DefaultMarker = "●"

	// TitlePrefix starts the first line of every diagram.
	TitlePrefix = "Chord: "
)

// DefaultStringNames are the names of the strings of a ukulele in standard
// tuning, in definition order.
var DefaultStringNames = [chord.Strings]string{"G", "C", "E", "A"}

type options struct {
	window      Window
	hasWindow   bool
	stringNames [chord.Strings]string
	marker      string
}

// Option configures Render.
type Option func(*options)

// WithWindow renders the given window instead of the chord's own.
func WithWindow(w Window) Option {
	return func(o *options) {
		o.window = w
		o.hasWindow = true
	}
}

// WithStringNames overrides the string names, in definition order.
func WithStringNames(names [chord.Strings]string) Option {
	return func(o *options) { o.stringNames = names }
}

// WithMarker overrides the fretted-position marker. Empty markers are ignored.
func WithMarker(m string) Option {
	return func(o *options) {
		if m != "" {
			o.marker = m
		}
	}
}

// Render draws c under the given title label. Without WithWindow the window
// is selected from c alone. Render panics if the window is not Valid.
func Render(c *chord.Chord, label string, opts ...Option) []string {
	o := options{
		stringNames: DefaultStringNames,
		marker:      DefaultMarker,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasWindow {
		o.window, _ = SelectWindow(c)
	}
	w := o.window
	if !w.Valid() {
		panic(fmt.Sprintf("diagram: invalid window %s", w))
	}

	lines := make([]string, 0, 3+chord.Strings)
	lines = append(lines, TitlePrefix+label)

	cw := columnWidth(w)
	var header strings.Builder
	header.WriteString(strings.Repeat(" ", headerMargin))
	for fret := w.Start; fret <= w.End; fret++ {
		fmt.Fprintf(&header, "%*d", cw, fret)
	}
	lines = append(lines, header.String())
	lines = append(lines, strings.Repeat("-", headerMargin+cw*w.Columns()))

	for i := chord.Strings - 1; i >= 0; i-- {
		lines = append(lines, stringRow(o.stringNames[i], c.Fret(i), w, cw, o.marker))
	}
	return lines
}

func columnWidth(w Window) int {
	if d := len(strconv.Itoa(w.End)); d > cellWidth {
		return d + 1
	}
	return cellWidth
}

// stringRow renders one string: name, status, separator and fret cells.
func stringRow(name string, f chord.Fret, w Window, cw int, marker string) string {
	status := " "
	switch {
	case f.IsMuted():
		status = "X"
	case f.IsOpen():
		status = "O"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%2s %s |", name, status)
	pad := strings.Repeat(" ", cw-2)
	for fret := w.Start; fret <= w.End; fret++ {
		if f.At(fret) {
			b.WriteString(pad + marker + " ")
		} else {
			b.WriteString(pad + "- ")
		}
	}
	return b.String()
}
