package chord

import (
	"strconv"
	"strings"

	"github.com/matzehuels/ukechords/pkg/errors"
)

// Strings is the number of strings every chord describes.
const Strings = 4

// Fret is the state of one string: muted, or pressed at a fret position.
// The zero value is muted.
type Fret struct {
	pos    int
	played bool
}

// Muted returns the fret value of a string that is not played.
func Muted() Fret {
	return Fret{}
}

// Fretted returns the fret value of a string played at position n.
// Position 0 is the open string. Fretted panics if n is negative.
func Fretted(n int) Fret {
	if n < 0 {
		panic("chord: negative fret position " + strconv.Itoa(n))
	}
	return Fret{pos: n, played: true}
}

// Value returns the fret position and true, or 0 and false if muted.
func (f Fret) Value() (int, bool) {
	return f.pos, f.played
}

// IsMuted reports whether the string is not played.
func (f Fret) IsMuted() bool {
	return !f.played
}

// IsOpen reports whether the string is played open.
func (f Fret) IsOpen() bool {
	return f.played && f.pos == 0
}

// IsFretted reports whether the string is pressed at a position above 0.
func (f Fret) IsFretted() bool {
	return f.played && f.pos > 0
}

// At reports whether the string is played at exactly position n.
func (f Fret) At(n int) bool {
	return f.played && f.pos == n
}

// String returns "X" for a muted string and the decimal position otherwise.
func (f Fret) String() string {
	if !f.played {
		return "X"
	}
	return strconv.Itoa(f.pos)
}

// ParseFret parses a single fret token: "X" or "x" for a muted string, or a
// non-negative decimal integer.
func ParseFret(token string) (Fret, error) {
	if strings.EqualFold(token, "X") {
		return Muted(), nil
	}
	if token == "" || strings.TrimLeft(token, "0123456789") != "" {
		return Fret{}, errors.New(errors.ErrCodeInvalidDefinition, "invalid fret %q", token)
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return Fret{}, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "invalid fret %q", token)
	}
	return Fretted(n), nil
}

// ParseFrets parses whitespace-separated fret tokens. It requires exactly
// [Strings] tokens, each valid; one bad token rejects the whole list.
func ParseFrets(s string) ([Strings]Fret, error) {
	var frets [Strings]Fret
	tokens := strings.Fields(s)
	if len(tokens) != Strings {
		return frets, errors.New(errors.ErrCodeInvalidDefinition,
			"expected %d frets, got %d", Strings, len(tokens))
	}
	for i, tok := range tokens {
		f, err := ParseFret(tok)
		if err != nil {
			return frets, err
		}
		frets[i] = f
	}
	return frets, nil
}

// FormatFrets renders frets in definition syntax, e.g. "0 0 0 3" or "X 2 2 2".
func FormatFrets(frets [Strings]Fret) string {
	parts := make([]string, len(frets))
	for i, f := range frets {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}
