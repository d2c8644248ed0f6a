package pipeline

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ukechords/pkg/catalog"
	"github.com/matzehuels/ukechords/pkg/chord"
	"github.com/matzehuels/ukechords/pkg/diagram"
	"github.com/matzehuels/ukechords/pkg/grid"
	"github.com/matzehuels/ukechords/pkg/observability"
)

// Runner resolves and renders queries against one catalog.
//
// The Runner holds no per-query state. The catalog is read-only, so one
// Runner can serve concurrent callers.
type Runner struct {
	Catalog *catalog.Catalog
	Options Options
	Logger  *log.Logger
}

// NewRunner creates a runner. A nil catalog means the embedded default
// catalog; a nil logger means log.Default().
func NewRunner(cat *catalog.Catalog, opts Options, logger *log.Logger) *Runner {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Catalog: cat,
		Options: opts,
		Logger:  logger,
	}
}

// Lookup resolves a single chord name. A miss is not an error.
func (r *Runner) Lookup(name string) (*chord.Chord, bool) {
	return r.Catalog.Lookup(name)
}

// SplitQuery splits a batch query into trimmed, non-empty terms.
func SplitQuery(query string) []string {
	var terms []string
	for _, part := range strings.Split(query, QuerySeparator) {
		if term := strings.TrimSpace(part); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// RenderBatch resolves every term of query and renders the resolved chords
// in one shared fret window.
func (r *Runner) RenderBatch(query string) Batch {
	start := time.Now()
	batch := Batch{Query: query}

	var found []*chord.Chord
	for _, term := range SplitQuery(query) {
		c, ok := r.Catalog.Lookup(term)
		observability.Lookup().OnLookup(term, ok)
		if !ok {
			r.Logger.Debug("chord not found", "term", term)
		} else {
			found = append(found, c)
		}
		batch.Results = append(batch.Results, Result{Label: term, Chord: c})
	}

	if w, ok := diagram.SelectWindow(found...); ok {
		batch.Window, batch.HasWindow = w, true
		opts := r.Options.diagramOptions(w)
		for i := range batch.Results {
			res := &batch.Results[i]
			if res.Found() {
				res.Lines = diagram.Render(res.Chord, res.Label, opts...)
			}
		}
	}

	window := ""
	if batch.HasWindow {
		window = batch.Window.String()
	}
	elapsed := time.Since(start)
	observability.Lookup().OnBatch(len(batch.Results), len(found), window, elapsed)
	r.Logger.Debug("rendered batch",
		"terms", len(batch.Results),
		"found", len(found),
		"window", window,
		"duration", elapsed)

	return batch
}

// Layout packs the blocks of a batch into grid lines. A non-positive width
// falls back to Options.Width.
func (r *Runner) Layout(batch Batch, width int) []string {
	if width <= 0 {
		width = r.Options.Width
	}
	return grid.Layout(batch.Blocks(), width, r.Options.Spacing)
}

// Sheet renders query and lays it out as text ready to print.
func (r *Runner) Sheet(query string, width int) string {
	if width <= 0 {
		width = r.Options.Width
	}
	return grid.Render(r.RenderBatch(query).Blocks(), width, r.Options.Spacing)
}
