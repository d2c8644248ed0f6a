package pipeline

import (
	"github.com/matzehuels/ukechords/pkg/chord"
	"github.com/matzehuels/ukechords/pkg/diagram"
	"github.com/matzehuels/ukechords/pkg/grid"
)

// Result is the outcome of one query term.
type Result struct {
	// Label is the term as typed, trimmed.
	Label string

	// Chord is the resolved chord, or nil if the term did not match.
	Chord *chord.Chord

	// Lines is the rendered diagram, or nil if the term did not match.
	Lines []string
}

// Found reports whether the term resolved to a chord.
func (r Result) Found() bool {
	return r.Chord != nil
}

// Block returns the diagram, or a one-line "not found" note.
func (r Result) Block() grid.Block {
	if !r.Found() {
		return grid.Block{NotFoundPrefix + r.Label}
	}
	return grid.Block(r.Lines)
}

// Batch is the outcome of one query.
type Batch struct {
	Query   string
	Results []Result

	// Window is the fret window shared by all diagrams. It is only set when
	// at least one term resolved.
	Window    diagram.Window
	HasWindow bool
}

// Empty reports whether the query contained no chord names at all.
func (b Batch) Empty() bool {
	return len(b.Results) == 0
}

// Blocks returns one block per result in query order, or the prompt message
// for an empty query.
func (b Batch) Blocks() []grid.Block {
	if b.Empty() {
		return []grid.Block{{EmptyQueryMessage}}
	}
	blocks := make([]grid.Block, len(b.Results))
	for i, r := range b.Results {
		blocks[i] = r.Block()
	}
	return blocks
}

// Found returns the resolved results in query order.
func (b Batch) Found() []Result {
	var out []Result
	for _, r := range b.Results {
		if r.Found() {
			out = append(out, r)
		}
	}
	return out
}

// Missing returns the labels that did not resolve, in query order.
func (b Batch) Missing() []string {
	var out []string
	for _, r := range b.Results {
		if !r.Found() {
			out = append(out, r.Label)
		}
	}
	return out
}
