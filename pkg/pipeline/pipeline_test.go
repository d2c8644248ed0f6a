package pipeline

import (
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/ukechords/pkg/catalog"
	"github.com/matzehuels/ukechords/pkg/diagram"
	"github.com/matzehuels/ukechords/pkg/errors"
	"github.com/matzehuels/ukechords/pkg/grid"
	"github.com/matzehuels/ukechords/pkg/observability"
)

const testDefinitions = `
C     = 0 0 0 3
C#dim = 0 1 0 4
Am    = 2 0 0 0
F     = 2 0 1 0
D     = 7 6 5 5
E     = 9 8 7 7
`

func testRunner(t *testing.T) *Runner {
	t.Helper()
	cat, err := catalog.Parse(strings.NewReader(testDefinitions))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return NewRunner(cat, DefaultOptions(), nil)
}

func TestDefaultOptionsValid(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"zero width", func(o *Options) { o.Width = 0 }},
		{"negative width", func(o *Options) { o.Width = -1 }},
		{"negative spacing", func(o *Options) { o.Spacing = -1 }},
		{"empty marker", func(o *Options) { o.Marker = "" }},
		{"wide marker", func(o *Options) { o.Marker = "**" }},
		{"empty string name", func(o *Options) { o.StringNames[2] = "" }},
		{"long string name", func(o *Options) { o.StringNames[0] = "Low" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			err := opts.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}

	opts := DefaultOptions()
	opts.Spacing = 0
	opts.StringNames = [4]string{"g", "C", "E", "A"}
	if err := opts.Validate(); err != nil {
		t.Errorf("zero spacing should be valid: %v", err)
	}
}

func TestSplitQuery(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{" , ,", nil},
		{"C", []string{"C"}},
		{" C , Am ", []string{"C", "Am"}},
		{"C,,Am,", []string{"C", "Am"}},
		{"C Am", []string{"C Am"}},
	}

	for _, tt := range tests {
		if got := SplitQuery(tt.query); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitQuery(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestRenderBatchSingleChord(t *testing.T) {
	batch := testRunner(t).RenderBatch("C")

	if len(batch.Results) != 1 || !batch.Results[0].Found() {
		t.Fatalf("results = %+v", batch.Results)
	}
	want := []string{
		"Chord: C",
		"       1  2  3  4  5",
		"--------------------",
		" A   | -  -  ●  -  - ",
		" E O | -  -  -  -  - ",
		" C O | -  -  -  -  - ",
		" G O | -  -  -  -  - ",
	}
	if got := batch.Results[0].Lines; !reflect.DeepEqual(got, want) {
		t.Errorf("lines:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestRenderBatchAliasKeepsTypedLabel(t *testing.T) {
	r := testRunner(t)
	batch := r.RenderBatch("Dbdim")

	res := batch.Results[0]
	if !res.Found() {
		t.Fatal("Dbdim should resolve through its alias")
	}
	if res.Chord.Name() != "C#dim" {
		t.Errorf("resolved %q, want C#dim", res.Chord.Name())
	}
	if res.Lines[0] != "Chord: Dbdim" {
		t.Errorf("title = %q, want %q", res.Lines[0], "Chord: Dbdim")
	}

	canonical := r.RenderBatch("C#dim").Results[0].Lines
	if !reflect.DeepEqual(res.Lines[1:], canonical[1:]) {
		t.Error("alias diagram differs from canonical diagram")
	}
}

func TestRenderBatchNotFound(t *testing.T) {
	batch := testRunner(t).RenderBatch("zzz")

	if batch.Empty() {
		t.Fatal("batch with one term should not be empty")
	}
	res := batch.Results[0]
	if res.Found() || res.Lines != nil {
		t.Errorf("zzz should not resolve: %+v", res)
	}
	if batch.HasWindow {
		t.Error("no window expected without resolved chords")
	}
	if got := batch.Blocks(); !reflect.DeepEqual(got, []grid.Block{{"Chord not found: zzz"}}) {
		t.Errorf("Blocks() = %q", got)
	}
}

func TestRenderBatchSharedWindow(t *testing.T) {
	tests := []struct {
		query string
		want  diagram.Window
	}{
		{"C, Am", diagram.Window{Start: 1, End: 5}},
		{"D, E", diagram.Window{Start: 5, End: 9}},
		{"D, zzz", diagram.Window{Start: 5, End: 9}},
		{"C, E", diagram.Window{Start: 1, End: 9}},
	}

	r := testRunner(t)
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			batch := r.RenderBatch(tt.query)
			if !batch.HasWindow || batch.Window != tt.want {
				t.Fatalf("window = %v (ok=%v), want %v", batch.Window, batch.HasWindow, tt.want)
			}
			for _, res := range batch.Found() {
				header := res.Lines[1]
				if len(header) != 5+3*tt.want.Columns() {
					t.Errorf("%s: header %q does not span the shared window", res.Label, header)
				}
			}
		})
	}
}

func TestRenderBatchKeepsTypedOrder(t *testing.T) {
	batch := testRunner(t).RenderBatch("zzz, am, qq, F")

	var labels []string
	for _, r := range batch.Results {
		labels = append(labels, r.Label)
	}
	if want := []string{"zzz", "am", "qq", "F"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %q, want %q", labels, want)
	}
	if want := []string{"zzz", "qq"}; !reflect.DeepEqual(batch.Missing(), want) {
		t.Errorf("Missing() = %q, want %q", batch.Missing(), want)
	}
	if found := batch.Found(); len(found) != 2 || found[0].Chord.Name() != "Am" {
		t.Errorf("Found() = %+v", found)
	}
}

func TestRenderBatchEmptyQuery(t *testing.T) {
	r := testRunner(t)
	for _, q := range []string{"", "   ", ", ,"} {
		batch := r.RenderBatch(q)
		if !batch.Empty() {
			t.Errorf("RenderBatch(%q) should be empty", q)
		}
		want := []grid.Block{{EmptyQueryMessage}}
		if got := batch.Blocks(); !reflect.DeepEqual(got, want) {
			t.Errorf("Blocks() = %q, want %q", got, want)
		}
	}
}

func TestRenderBatchOptions(t *testing.T) {
	cat, _ := catalog.Parse(strings.NewReader(testDefinitions))
	opts := DefaultOptions()
	opts.Marker = "o"
	opts.StringNames = [4]string{"g", "c", "e", "a"}
	r := NewRunner(cat, opts, nil)

	lines := r.RenderBatch("C").Results[0].Lines
	if lines[3] != " a   | -  -  o  -  - " {
		t.Errorf("row = %q", lines[3])
	}
}

func TestLayoutWraps(t *testing.T) {
	r := testRunner(t)
	batch := r.RenderBatch("C, Am, F")

	// Each diagram is 21 columns wide: 21+2+21 fits in 45, a third does not.
	lines := r.Layout(batch, 45)
	if len(lines) != 2*(7+1) {
		t.Fatalf("got %d lines, want 16:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[0], "Chord: C ") || !strings.Contains(lines[0], "  Chord: Am") {
		t.Errorf("row 1 title = %q", lines[0])
	}
	if lines[7] != "" || lines[15] != "" {
		t.Error("rows should be followed by an empty line")
	}
	if !strings.HasPrefix(lines[8], "Chord: F") {
		t.Errorf("row 2 title = %q", lines[8])
	}
}

func TestLayoutDefaultWidth(t *testing.T) {
	r := testRunner(t)
	batch := r.RenderBatch("C, Am, F")

	// 80 columns hold three 21-column diagrams.
	if got := len(r.Layout(batch, 0)); got != 7+1 {
		t.Errorf("got %d lines, want 8", got)
	}
}

func TestSheet(t *testing.T) {
	got := testRunner(t).Sheet("zzz", 80)
	if got != "Chord not found: zzz\n" {
		t.Errorf("Sheet = %q", got)
	}
}

type recordingHooks struct {
	mu      sync.Mutex
	lookups []string
	batches int
	found   int
	window  string
}

func (h *recordingHooks) OnLookup(term string, found bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if found {
		term += "+"
	}
	h.lookups = append(h.lookups, term)
}

func (h *recordingHooks) OnBatch(terms, found int, window string, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.batches++
	h.found = found
	h.window = window
}

func TestRenderBatchHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetLookupHooks(hooks)
	defer observability.Reset()

	testRunner(t).RenderBatch("C, zzz")

	if want := []string{"C+", "zzz"}; !reflect.DeepEqual(hooks.lookups, want) {
		t.Errorf("lookups = %q, want %q", hooks.lookups, want)
	}
	if hooks.batches != 1 || hooks.found != 1 || hooks.window != "1-5" {
		t.Errorf("batch hook = %d batches, %d found, window %q", hooks.batches, hooks.found, hooks.window)
	}
}

func TestRunnerConcurrentUse(t *testing.T) {
	r := NewRunner(nil, DefaultOptions(), nil)

	var wg sync.WaitGroup
	for _, q := range []string{"C", "Am, G", "F#m7, Bb", "zzz"} {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			_ = r.Sheet(q, 60)
		}(q)
	}
	wg.Wait()
}
