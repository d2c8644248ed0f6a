// Package chord defines the immutable chord record used throughout ukechords.
//
// A [Chord] is a canonical name plus one [Fret] per string of a four-string
// instrument. String order is fixed (G, C, E, A for standard ukulele tuning)
// and matches the order in which definitions list their frets.
//
// # Names
//
// Every name splits into a root and a quality suffix:
//
//	"C#dim"  → root "C#", quality "dim"
//	"Cdim"   → root "C",  quality "dim"
//	"Bbmaj7" → root "Bb", quality "maj7"
//
// Roots are matched longest first against the 17 root tokens, so accidental
// spellings win over the natural letter they start with. Matching is
// case-sensitive on the authored name: "bb" is not a root.
//
// # Aliases
//
// Accidental roots have exactly one enharmonic partner (C#↔Db, D#↔Eb, F#↔Gb,
// G#↔Ab, A#↔Bb). A chord with an accidental root carries one alias built
// from the partner root and the unchanged quality, so "C#dim" also answers
// to "Dbdim". Natural roots have no aliases. Aliases are used for matching
// only and never shown.
//
// # Frets
//
// A [Fret] is either muted or fretted at a non-negative position, 0 meaning
// the open string. The zero value is muted:
//
//	chord.Muted()      // string not played, rendered "X"
//	chord.Fretted(0)   // open string, rendered "O"
//	chord.Fretted(3)   // third fret
package chord
