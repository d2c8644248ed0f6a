// Package pkg provides the core libraries for ukechords, a ukulele chord
// lookup and fretboard diagram tool.
//
// # Overview
//
// A query such as "C, Am, F, G7" becomes a sheet of ASCII diagrams drawn in
// one shared fret window and packed left to right into rows that fit the
// terminal:
//
//	Chord: C               Chord: Am
//	       1  2  3  4  5          1  2  3  4  5
//	--------------------   --------------------
//	 A   | -  -  ●  -  -    A O | -  -  -  -  -
//	 E O | -  -  -  -  -    E O | -  -  -  -  -
//	 C O | -  -  -  -  -    C O | -  -  -  -  -
//	 G O | -  -  -  -  -    G   | -  ●  -  -  -
//
// # Architecture
//
//	query "C, Am"
//	     ↓
//	[catalog] lookup by name or enharmonic alias
//	     ↓
//	[diagram] shared fret window + one diagram per chord
//	     ↓
//	[grid] greedy rows within the width
//	     ↓
//	text
//
// [pipeline] runs these stages and is shared by the one-shot CLI and the
// interactive shell.
//
// # Packages
//
// [chord] - Chord values: name split into root and quality, four frets in
// G C E A order, and enharmonic aliases (C# = Db).
//
// [catalog] - Ordered, read-only chord collections parsed from
// "Name = G C E A" definition files. A default catalog is embedded.
//
// [diagram] - Fret window selection and ASCII diagram rendering.
//
// [grid] - Insertion-ordered grid layout of text blocks, measured in
// terminal columns.
//
// [pipeline] - Batch lookup and rendering for a comma-separated query.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for catalog loading and lookups.
//
// [buildinfo] - Version information set at build time.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(catalog.Default(), pipeline.DefaultOptions(), nil)
//	fmt.Print(runner.Sheet("C, Am, F, G7", 80))
//
// [chord]: https://pkg.go.dev/github.com/matzehuels/ukechords/pkg/chord
// [catalog]: https://pkg.go.dev/github.com/matzehuels/ukechords/pkg/catalog
// [diagram]: https://pkg.go.dev/github.com/matzehuels/ukechords/pkg/diagram
// [grid]: https://pkg.go.dev/github.com/matzehuels/ukechords/pkg/grid
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ukechords/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/ukechords/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ukechords/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ukechords/pkg/buildinfo
package pkg
