package chord

import (
	"strings"

	"github.com/matzehuels/ukechords/pkg/errors"
)

// Chord is an immutable chord definition. Construct it with [New]; the zero
// value is not a valid chord.
type Chord struct {
	name    string
	root    string
	quality string
	frets   [Strings]Fret
	aliases []string
}

// New builds a chord from its canonical name and frets. The name must start
// with a known root; aliases are derived from it.
func New(name string, frets [Strings]Fret) (*Chord, error) {
	root, quality, ok := SplitName(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidChordName, "unknown root in chord name %q", name)
	}
	return &Chord{
		name:    name,
		root:    root,
		quality: quality,
		frets:   frets,
		aliases: aliasesFor(root, quality),
	}, nil
}

// MustNew is like [New] but panics on error. It is meant for static tables
// and tests.
func MustNew(name string, frets ...Fret) *Chord {
	if len(frets) != Strings {
		panic("chord: MustNew needs exactly 4 frets")
	}
	c, err := New(name, [Strings]Fret(frets))
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the canonical name as written in the definitions.
func (c *Chord) Name() string { return c.name }

// Root returns the root token, e.g. "C#".
func (c *Chord) Root() string { return c.root }

// Quality returns the suffix after the root, e.g. "dim". Major chords have an
// empty quality.
func (c *Chord) Quality() string { return c.quality }

// Frets returns a copy of the per-string frets in string order.
func (c *Chord) Frets() [Strings]Fret { return c.frets }

// Fret returns the fret of string i.
func (c *Chord) Fret(i int) Fret { return c.frets[i] }

// Aliases returns a copy of the alias names.
func (c *Chord) Aliases() []string {
	if len(c.aliases) == 0 {
		return nil
	}
	out := make([]string, len(c.aliases))
	copy(out, c.aliases)
	return out
}

// Matches reports whether input equals the name or any alias, ignoring case.
func (c *Chord) Matches(input string) bool {
	if strings.EqualFold(c.name, input) {
		return true
	}
	for _, a := range c.aliases {
		if strings.EqualFold(a, input) {
			return true
		}
	}
	return false
}

// Bounds returns the lowest and highest fretted position, ignoring open and
// muted strings. ok is false when no string is fretted.
func (c *Chord) Bounds() (lo, hi int, ok bool) {
	for _, f := range c.frets {
		if !f.IsFretted() {
			continue
		}
		if !ok {
			lo, hi, ok = f.pos, f.pos, true
			continue
		}
		lo = min(lo, f.pos)
		hi = max(hi, f.pos)
	}
	return lo, hi, ok
}

// HasOpen reports whether any string is played open.
func (c *Chord) HasOpen() bool {
	for _, f := range c.frets {
		if f.IsOpen() {
			return true
		}
	}
	return false
}

// String returns the chord in definition syntax, e.g. "C = 0 0 0 3".
func (c *Chord) String() string {
	return c.name + " = " + FormatFrets(c.frets)
}
