package chord

// roots lists every root token, accidentals first so that a two-character
// spelling always beats the natural letter it starts with.
var roots = []string{
	"A#", "Bb", "C#", "Db", "D#", "Eb", "F#", "Gb", "G#", "Ab",
	"A", "B", "C", "D", "E", "F", "G",
}

// enharmonics is the closed table of accidental root pairs.
var enharmonics = map[string]string{
	"C#": "Db", "Db": "C#",
	"D#": "Eb", "Eb": "D#",
	"F#": "Gb", "Gb": "F#",
	"G#": "Ab", "Ab": "G#",
	"A#": "Bb", "Bb": "A#",
}

// SplitName splits a chord name into its root and quality suffix.
// It returns ok=false if the name does not start with a known root.
func SplitName(name string) (root, quality string, ok bool) {
	for _, r := range roots {
		if len(name) >= len(r) && name[:len(r)] == r {
			return r, name[len(r):], true
		}
	}
	return "", "", false
}

// Enharmonic returns the enharmonic partner of an accidental root.
// Natural roots have no partner.
func Enharmonic(root string) (string, bool) {
	p, ok := enharmonics[root]
	return p, ok
}

// Roots returns the 17 root tokens in matching order.
func Roots() []string {
	out := make([]string, len(roots))
	copy(out, roots)
	return out
}

// aliasesFor derives the alias names of a chord from its root and quality.
func aliasesFor(root, quality string) []string {
	p, ok := Enharmonic(root)
	if !ok {
		return nil
	}
	return []string{p + quality}
}
