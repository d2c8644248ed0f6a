package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/ukechords/pkg/errors"
	"github.com/matzehuels/ukechords/pkg/observability"
)

// runCLI executes the root command with args and an isolated config
// environment. It returns stdout and the log output.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("UKECHORDS_CONFIG", "")
	t.Cleanup(observability.Reset)

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func countPrefix(s, prefix string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestLookupSingleChord(t *testing.T) {
	out, _, err := runCLI(t, "C")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"Chord: C",
		"       1  2  3  4  5",
		" A   | -  -  ●  -  - ",
		" G O | -  -  -  -  - ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLookupNotFound(t *testing.T) {
	out, _, err := runCLI(t, "zzz")
	if err != nil {
		t.Fatalf("missing chords are not an error: %v", err)
	}
	if out != "Chord not found: zzz\n" {
		t.Errorf("output = %q", out)
	}
}

func TestLookupJoinsArguments(t *testing.T) {
	for _, args := range [][]string{
		{"C", "Am"},
		{"C,", "Am"},
		{"C, Am"},
	} {
		out, _, err := runCLI(t, args...)
		if err != nil {
			t.Fatalf("%q: %v", args, err)
		}
		first := strings.SplitN(out, "\n", 2)[0]
		if !strings.HasPrefix(first, "Chord: C ") || !strings.Contains(first, "Chord: Am") {
			t.Errorf("%q: first line = %q, want both titles", args, first)
		}
	}
}

func TestLookupWidthWraps(t *testing.T) {
	out, _, err := runCLI(t, "--width", "30", "C", "Am")
	if err != nil {
		t.Fatal(err)
	}
	if n := countPrefix(out, "Chord: "); n != 2 {
		t.Errorf("got %d rows starting with a title, want 2:\n%s", n, out)
	}
}

func TestLookupRequiresChord(t *testing.T) {
	if _, _, err := runCLI(t); err == nil {
		t.Error("expected usage error without arguments")
	}
}

func TestLookupRejectsControlCharacters(t *testing.T) {
	_, _, err := runCLI(t, "C\x00")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestLookupMarkerFlag(t *testing.T) {
	out, _, err := runCLI(t, "--marker", "o", "C")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, " A   | -  -  o  -  - ") {
		t.Errorf("marker not applied:\n%s", out)
	}
}

func TestLookupCustomDefinitions(t *testing.T) {
	defs := writeTemp(t, "extra.txt", "Cadd11 = 0 0 1 3\nnot a chord\n")

	out, logs, err := runCLI(t, "--no-builtin", "-d", defs, "cadd11, C")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Chord: cadd11") {
		t.Errorf("custom chord not rendered:\n%s", out)
	}
	if !strings.Contains(out, "Chord not found: C") {
		t.Errorf("built-in chords should be disabled:\n%s", out)
	}
	if !strings.Contains(logs, "skipping definition") || !strings.Contains(logs, "line=2") {
		t.Errorf("dropped line not logged: %q", logs)
	}
}

func TestLookupMissingDefinitions(t *testing.T) {
	_, _, err := runCLI(t, "-d", filepath.Join(t.TempDir(), "nope.txt"), "C")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLookupConfigFile(t *testing.T) {
	defs := writeTemp(t, "mine.txt", "Bb6 = 0 2 1 1\n")
	cfg := writeTemp(t, "config.toml", `
definitions = ["`+defs+`"]
builtin = false

[display]
spacing = 4
strings = ["g", "c", "e", "a"]
`)

	out, _, err := runCLI(t, "--config", cfg, "Bb6", "a#6")
	if err != nil {
		t.Fatal(err)
	}
	first := strings.SplitN(out, "\n", 2)[0]
	if !strings.Contains(first, "    Chord: a#6") {
		t.Errorf("spacing not applied: %q", first)
	}
	if !strings.Contains(out, " a   |") {
		t.Errorf("string names not applied:\n%s", out)
	}
}

func TestLookupInvalidConfig(t *testing.T) {
	cfg := writeTemp(t, "config.toml", "[display]\nspacing = -1\n")
	_, _, err := runCLI(t, "--config", cfg, "C")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestListCommand(t *testing.T) {
	out, _, err := runCLI(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "\n"); n != 312 {
		t.Errorf("listed %d chords, want 312", n)
	}
	if !strings.Contains(out, "C\t\t0 0 0 3\n") {
		t.Errorf("C missing from list")
	}
}

func TestListQuality(t *testing.T) {
	out, _, err := runCLI(t, "list", "--quality", "m7")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d m7 chords, want 12:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "C#m7\tDbm7\t1 1 0 2\n") {
		t.Errorf("C#m7 row missing:\n%s", out)
	}
}

func TestCompletionScript(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, _, err := runCLI(t, "completion", shell)
		if err != nil {
			t.Fatalf("%s: %v", shell, err)
		}
		if !strings.Contains(out, "ukechords") {
			t.Errorf("%s completion does not mention the binary", shell)
		}
	}

	if _, _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("unknown shell should fail")
	}
}

func TestCompleteChordNames(t *testing.T) {
	out, _, err := runCLI(t, "__complete", "C", "db")
	if err != nil {
		t.Fatal(err)
	}
	names := strings.Split(out, "\n")
	has := func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}

	for _, want := range []string{"Db", "Dbm7", "Dbdim"} {
		if !has(want) {
			t.Errorf("completion missing %q", want)
		}
	}
	for _, unwanted := range []string{"C#", "D", "Dm"} {
		if has(unwanted) {
			t.Errorf("completion should not offer %q", unwanted)
		}
	}
}
