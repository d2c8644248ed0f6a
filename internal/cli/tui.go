package cli

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ukechords/pkg/buildinfo"
	"github.com/matzehuels/ukechords/pkg/catalog"
	"github.com/matzehuels/ukechords/pkg/chord"
	"github.com/matzehuels/ukechords/pkg/errors"
	"github.com/matzehuels/ukechords/pkg/grid"
	"github.com/matzehuels/ukechords/pkg/observability"
	"github.com/matzehuels/ukechords/pkg/pipeline"
)

// tuiCommand opens the interactive chord shell.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [chord...]",
		Short: "Look up chords interactively",
		Long: `Open an interactive shell: type chord names separated by commas and
press Enter to see their diagrams. Press ? for help.

Chords given as arguments are looked up right away.`,
		ValidArgsFunction: c.completeChordNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSession(cmd.Context(), cmd.Flags().Changed)
			if err != nil {
				return err
			}

			// The alternate screen owns the terminal until the shell exits.
			s.runner.Logger = log.New(io.Discard)
			observability.SetLookupHooks(observability.NoopLookupHooks{})

			m := newShellModel(s.runner, s.cfg.Display.Width)
			if len(args) > 0 {
				m.input.SetValue(strings.Join(args, pipeline.QuerySeparator))
				m.lookup()
			}

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// shellModel - interactive lookup
// =============================================================================

const (
	// Rows around the diagram box: title, input box (3), footer.
	chromeHeight = 5
	// Top and bottom border of the diagram box.
	boxRows = 2
	// Columns taken by border and padding on each side of a box.
	boxInset = 2

	footerText = "Enter:lookup  ↑/↓:scroll  ?:help  Esc/Ctrl+C:quit"
	promptText = "Type a chord and press Enter"

	helpQualitiesPerLine = 9
)

var splashArt = []string{
	`     .-"""-.`,
	`   .'       '.__________________________________`,
	`  |    ( )    |__|__|__|__|__|__|__|__|__|__|__|[==o`,
	`   '.       .'`,
	`     '-...-'`,
}

// shellModel is the bubbletea model for the interactive shell.
type shellModel struct {
	runner   *pipeline.Runner
	input    textinput.Model
	help     []string
	maxWidth int

	// batch is nil until the first lookup; the splash is shown until then.
	batch *pipeline.Batch
	lines []string

	scroll     int
	helpShown  bool
	helpScroll int

	width  int
	height int
}

// newShellModel creates the shell. maxWidth caps the grid width; zero means
// the window width.
func newShellModel(r *pipeline.Runner, maxWidth int) shellModel {
	ti := textinput.New()
	ti.Placeholder = "C, Am, F, G7"
	ti.Prompt = "› "
	ti.CharLimit = errors.MaxQueryLength
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	ti.Focus()

	return shellModel{
		runner:   r,
		input:    ti,
		help:     helpLines(r.Catalog),
		maxWidth: maxWidth,
	}
}

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(1, m.width-2*boxInset-lipgloss.Width(m.input.Prompt)-1)
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		if m.helpShown {
			return m.updateHelp(msg), nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "?":
			m.helpShown, m.helpScroll = true, 0
			return m, nil
		case "enter":
			m.lookup()
			return m, nil
		case "up":
			m.scrollBy(-1)
			return m, nil
		case "down":
			m.scrollBy(1)
			return m, nil
		case "pgup":
			m.scrollBy(-m.bodyHeight())
			return m, nil
		case "pgdown":
			m.scrollBy(m.bodyHeight())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) updateHelp(msg tea.KeyMsg) shellModel {
	switch msg.String() {
	case "ctrl+c", "esc", "?":
		m.helpShown = false
	case "up":
		m.helpScroll = max(0, m.helpScroll-1)
	case "down":
		m.helpScroll = min(len(m.help)-1, m.helpScroll+1)
	}
	return m
}

// lookup renders the current input and clears it.
func (m *shellModel) lookup() {
	batch := m.runner.RenderBatch(m.input.Value())
	m.batch = &batch
	m.input.Reset()
	m.scroll = 0
	m.relayout()
}

func (m *shellModel) relayout() {
	if m.batch == nil {
		return
	}
	m.lines = m.runner.Layout(*m.batch, m.gridWidth())
	m.scrollBy(0)
}

func (m *shellModel) scrollBy(n int) {
	maxScroll := max(0, len(m.lines)-m.bodyHeight())
	m.scroll = min(max(0, m.scroll+n), maxScroll)
}

// gridWidth is the usable width inside the diagram box.
func (m shellModel) gridWidth() int {
	w := m.runner.Options.Width
	if m.width > 0 {
		w = max(1, m.width-2*boxInset)
	}
	if m.maxWidth > 0 {
		w = min(w, m.maxWidth)
	}
	return w
}

// bodyHeight is the number of grid lines visible at once.
func (m shellModel) bodyHeight() int {
	if m.height == 0 {
		return len(m.lines)
	}
	return max(1, m.height-chromeHeight-boxRows)
}

// =============================================================================
// Views
// =============================================================================

func (m shellModel) View() string {
	if m.helpShown {
		return m.helpView()
	}

	input := styleInputBox
	body := styleDiagramBox
	if m.width > 0 {
		input = input.Width(m.width - 2)
		body = body.Width(m.width - 2)
	}
	if m.height > 0 {
		body = body.Height(m.bodyHeight())
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Chord(s)") + "  " + StyleDim.Render(buildinfo.Short()))
	b.WriteString("\n")
	b.WriteString(input.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(body.Render(m.bodyView()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(max(m.width, 1), lipgloss.Center, StyleDim.Render(footerText)))
	return b.String()
}

// bodyView returns the visible grid lines, or the splash before the first
// lookup.
func (m shellModel) bodyView() string {
	if m.batch == nil {
		return strings.Join(m.splash(), "\n")
	}
	end := min(len(m.lines), m.scroll+m.bodyHeight())
	return strings.Join(m.lines[m.scroll:end], "\n")
}

func (m shellModel) splash() []string {
	lines := append(append([]string{}, splashArt...), "", promptText)

	art := grid.Block(splashArt).Width()
	width := m.gridWidth()
	out := make([]string, len(lines))
	for i, line := range lines {
		// Art lines share one offset so the drawing keeps its shape.
		w := art
		if i >= len(splashArt) {
			w = grid.Width(line)
		}
		out[i] = strings.Repeat(" ", max(0, (width-w)/2)) + line
	}
	return out
}

func (m shellModel) helpView() string {
	lines := m.help[m.helpScroll:]
	if m.height > 0 {
		// Border and padding take four rows.
		lines = lines[:min(len(lines), max(1, m.height-4))]
	}
	box := styleHelpBox.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// helpLines builds the help text, listing the qualities found in cat.
func helpLines(cat *catalog.Catalog) []string {
	lines := []string{
		StyleTitle.Render("Help"),
		"",
		"Enter        look up the chords in the input",
		"↑ / ↓        scroll the diagrams",
		"PgUp / PgDn  scroll one page",
		"?            show or hide this help",
		"Esc          close this help, or quit",
		"Ctrl+C       quit",
		"",
		"Chord names are <root><quality>:",
	}

	roots := chord.Roots()
	slices.SortStableFunc(roots, func(a, b string) int { return len(a) - len(b) })
	lines = append(lines, "  root       "+strings.Join(roots, " "))

	seen := map[string]bool{}
	var qualities []string
	for _, c := range cat.All() {
		q := c.Quality()
		if seen[q] {
			continue
		}
		seen[q] = true
		if q == "" {
			q = "(major)"
		}
		qualities = append(qualities, q)
	}
	label := "  quality    "
	for len(qualities) > 0 {
		n := min(len(qualities), helpQualitiesPerLine)
		lines = append(lines, label+strings.Join(qualities[:n], " "))
		qualities = qualities[n:]
		label = strings.Repeat(" ", len(label))
	}

	return append(lines,
		"",
		"Separate chords with commas, e.g. C, Ebm, G#7",
		"Names are case-insensitive and sharps match flats (Db = C#).",
	)
}
