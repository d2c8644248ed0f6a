// Package diagram renders chords as fixed-width ASCII fretboard diagrams.
//
// # Fret Windows
//
// A [Window] is the inclusive fret range a diagram shows. Diagrams rendered
// together share one window chosen by [SelectWindow], so a batch of chords
// reads at the same scale:
//
//   - the window starts at fret 1 whenever any chord has an open string or
//     the lowest fretted position is below 2, otherwise at that position;
//   - it ends at the highest fretted position, but always spans at least
//     five frets.
//
// # Layout
//
// A rendered diagram is a slice of lines:
//
//	Chord: C
//	       1  2  3  4  5
//	--------------------
//	 A   | -  -  ●  -  -
//	 E O | -  -  -  -  -
//	 C O | -  -  -  -  -
//	 G O | -  -  -  -  -
//
// Strings are listed highest-pitched first. The column after the string name
// shows O for an open string and X for a muted one.
package diagram
