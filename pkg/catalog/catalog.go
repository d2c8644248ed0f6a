// Package catalog loads chord definitions and resolves chord names.
//
// A [Catalog] is built once from line-oriented text and never changes
// afterwards, so one instance can be shared by any number of readers without
// locking. Lookups are linear scans in definition order; the first entry whose
// name or alias matches wins.
//
// # Definitions Format
//
//	# comment
//	C     = 0 0 0 3
//	C#dim = 0 1 0 4
//	D     = X 2 2 2
//
// Each definition is a name, "=", and exactly four fret tokens in string
// order. A token is a non-negative integer or X/x for a muted string. Blank
// and comment lines are skipped. Malformed lines are dropped without
// aborting the load and are reported by [Catalog.Dropped]; one invalid token
// drops the whole line, and so does exceeding [MaxLineLength].
//
// # Sources
//
//   - [Parse]: any io.Reader
//   - [Default]: the embedded standard ukulele set
//   - [LoadFile], [LoadFiles]: files on disk, read once at startup
package catalog

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/ukechords/pkg/chord"
	"github.com/matzehuels/ukechords/pkg/errors"
)

//go:embed definitions/ukulele.txt
var definitionsFS embed.FS

// DefaultSource is the source name reported for the embedded definitions.
const DefaultSource = "builtin:ukulele.txt"

// MaxLineLength is the longest definition line accepted, in bytes. Longer
// lines, comments included, are dropped like any other malformed line.
const MaxLineLength = 4096

// droppedTextLimit caps how much of a dropped line is kept in its LineError.
const droppedTextLimit = 80

// Catalog is an ordered, read-only collection of chords.
type Catalog struct {
	chords  []*chord.Chord
	dropped []LineError
}

// LineError describes a definition line that was dropped while loading.
type LineError struct {
	Source string // source name (file path or DefaultSource)
	Line   int    // 1-based line number
	Text   string // the raw line
	Err    error  // why it was dropped
}

// Error implements the error interface.
func (e LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

// Unwrap returns the underlying parse error.
func (e LineError) Unwrap() error { return e.Err }

// ParseLine parses one definition line. It returns (nil, nil) for blank and
// comment lines and an INVALID_DEFINITION error for malformed ones.
func ParseLine(text string) (*chord.Chord, error) {
	if len(text) > MaxLineLength {
		return nil, errors.New(errors.ErrCodeInvalidDefinition, "line is %d bytes, limit is %d", len(text), MaxLineLength)
	}
	line := strings.TrimSpace(text)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	name, frets, ok := strings.Cut(line, "=")
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidDefinition, "missing '=' in definition")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New(errors.ErrCodeInvalidDefinition, "missing chord name")
	}
	if strings.ContainsAny(name, " \t") {
		return nil, errors.New(errors.ErrCodeInvalidDefinition, "chord name %q contains whitespace", name)
	}

	parsed, err := chord.ParseFrets(frets)
	if err != nil {
		return nil, err
	}
	c, err := chord.New(name, parsed)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "chord %q", name)
	}
	return c, nil
}

// Parse reads definitions from r. Only read errors are returned; malformed
// lines are dropped and recorded.
func Parse(r io.Reader) (*Catalog, error) {
	return parseSource(r, "")
}

func parseSource(r io.Reader, source string) (*Catalog, error) {
	cat := &Catalog{}
	if err := cat.read(r, source); err != nil {
		return nil, err
	}
	return cat, nil
}

// read appends the definitions from r. It is only used while building.
// Oversized lines reach ParseLine and are dropped there.
func (c *Catalog) read(r io.Reader, source string) error {
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(errors.ErrCodeReadFailed, err, "read definitions %s", source)
		}
		if text == "" && err == io.EOF {
			return nil
		}
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")

		ch, perr := ParseLine(text)
		if perr != nil {
			c.dropped = append(c.dropped, LineError{Source: source, Line: n, Text: clip(text), Err: perr})
		} else if ch != nil {
			c.chords = append(c.chords, ch)
		}
		if err == io.EOF {
			return nil
		}
	}
}

func clip(text string) string {
	if len(text) <= droppedTextLimit {
		return text
	}
	return text[:droppedTextLimit] + "..."
}

// New builds a catalog from already constructed chords, in order.
func New(chords ...*chord.Chord) *Catalog {
	out := make([]*chord.Chord, 0, len(chords))
	for _, c := range chords {
		if c != nil {
			out = append(out, c)
		}
	}
	return &Catalog{chords: out}
}

// Lookup returns the first chord whose name or alias equals name, ignoring
// case. A miss is a normal result, not an error.
func (c *Catalog) Lookup(name string) (*chord.Chord, bool) {
	for _, ch := range c.chords {
		if ch.Matches(name) {
			return ch, true
		}
	}
	return nil, false
}

// Len returns the number of chords.
func (c *Catalog) Len() int { return len(c.chords) }

// All returns the chords in definition order. The slice is a copy; the
// chords themselves are immutable.
func (c *Catalog) All() []*chord.Chord {
	out := make([]*chord.Chord, len(c.chords))
	copy(out, c.chords)
	return out
}

// Names returns the canonical chord names in definition order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.chords))
	for i, ch := range c.chords {
		names[i] = ch.Name()
	}
	return names
}

// Filter returns the chords with the given quality suffix, compared
// case-sensitively ("m" and "M" are different qualities).
func (c *Catalog) Filter(quality string) []*chord.Chord {
	var out []*chord.Chord
	for _, ch := range c.chords {
		if ch.Quality() == quality {
			out = append(out, ch)
		}
	}
	return out
}

// Dropped returns the lines skipped while loading.
func (c *Catalog) Dropped() []LineError {
	out := make([]LineError, len(c.dropped))
	copy(out, c.dropped)
	return out
}
