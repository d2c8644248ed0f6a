// Package pipeline turns a typed chord query into rendered diagram text.
//
// This is the single entry point shared by the one-shot CLI and the
// interactive shell, so both resolve, window and lay out chords the same way.
//
// # Stages
//
//  1. Split: the query is split on commas and each term trimmed
//  2. Lookup: every term is resolved against the catalog (name or alias)
//  3. Window: one fret window is selected for all resolved chords
//  4. Render: each resolved chord is drawn under the label the user typed
//  5. Layout: diagrams and "not found" notes are packed into a grid
//
// Results keep the order of the query terms, hits and misses interleaved.
//
// # Usage
//
//	runner := pipeline.NewRunner(catalog.Default(), pipeline.DefaultOptions(), logger)
//	batch := runner.RenderBatch("C, Am, zzz")
//	for _, r := range batch.Results {
//	    fmt.Println(r.Label, r.Found())
//	}
//
//	fmt.Print(runner.Sheet("C, Am", 80))
package pipeline

import (
	"github.com/matzehuels/ukechords/pkg/chord"
	"github.com/matzehuels/ukechords/pkg/diagram"
	"github.com/matzehuels/ukechords/pkg/errors"
	"github.com/matzehuels/ukechords/pkg/grid"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the grid width used when the terminal size is unknown.
	DefaultWidth = 80

	// DefaultSpacing is the gap between diagrams in a row.
	DefaultSpacing = grid.DefaultSpacing

	// QuerySeparator separates chord names in a batch query.
	QuerySeparator = ","
)

// Messages shown in place of a diagram.
const (
	EmptyQueryMessage = "Please enter one or more chords, separated by commas"
	NotFoundPrefix    = "Chord not found: "
)

// =============================================================================
// Options
// =============================================================================

// Options configures how diagrams are drawn and arranged.
type Options struct {
	StringNames [chord.Strings]string
	Marker      string
	Width       int
	Spacing     int
}

// DefaultOptions returns options for a standard-tuned ukulele on an
// 80-column terminal.
func DefaultOptions() Options {
	return Options{
		StringNames: diagram.DefaultStringNames,
		Marker:      diagram.DefaultMarker,
		Width:       DefaultWidth,
		Spacing:     DefaultSpacing,
	}
}

// Validate checks that the options can be used for layout and rendering.
func (o Options) Validate() error {
	if o.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "width must be positive, got %d", o.Width)
	}
	if o.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "spacing must not be negative, got %d", o.Spacing)
	}
	if o.Marker == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "marker must not be empty")
	}
	if grid.Width(o.Marker) != 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "marker %q must be one column wide", o.Marker)
	}
	for i, name := range o.StringNames {
		if name == "" || grid.Width(name) > 2 {
			return errors.New(errors.ErrCodeInvalidConfig, "string name %d must be 1 or 2 columns wide, got %q", i+1, name)
		}
	}
	return nil
}

func (o Options) diagramOptions(w diagram.Window) []diagram.Option {
	return []diagram.Option{
		diagram.WithWindow(w),
		diagram.WithStringNames(o.StringNames),
		diagram.WithMarker(o.Marker),
	}
}

