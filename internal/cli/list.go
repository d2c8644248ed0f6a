package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ukechords/pkg/chord"
)

// listCommand prints the loaded catalog.
func (c *CLI) listCommand() *cobra.Command {
	var quality string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the known chords",
		Long: `List every chord in the catalog with its enharmonic alias and frets.

Frets are given per string in G C E A order; X is a muted string.
Use --quality to show one chord type only, e.g. --quality m7.
An empty quality (--quality "") selects major chords.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSession(cmd.Context(), cmd.Flags().Changed)
			if err != nil {
				return err
			}

			chords := s.catalog.All()
			if cmd.Flags().Changed("quality") {
				chords = s.catalog.Filter(quality)
			}
			w := cmd.OutOrStdout()
			if isTerminal(w) {
				return writeChordTable(w, chords)
			}
			return writeChordLines(w, chords)
		},
	}

	cmd.Flags().StringVarP(&quality, "quality", "q", "", "only list chords of this quality (m, 7, maj7, ...)")
	return cmd
}

func chordRow(c *chord.Chord) []string {
	alias := "—"
	if aliases := c.Aliases(); len(aliases) > 0 {
		alias = strings.Join(aliases, ", ")
	}
	return []string{c.Name(), alias, chord.FormatFrets(c.Frets())}
}

// writeChordTable renders chords as a bordered table for terminals.
func writeChordTable(w io.Writer, chords []*chord.Chord) error {
	rows := make([][]string, len(chords))
	for i, c := range chords {
		rows[i] = chordRow(c)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Chord", "Alias", "G C E A").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return style.Foreground(colorCyan)
			case col == 1:
				return style.Foreground(colorDim)
			}
			return style.Foreground(colorWhite)
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	printDetail(w, "%d chords", len(chords))
	return nil
}

// writeChordLines writes one tab-separated line per chord, for pipes.
func writeChordLines(w io.Writer, chords []*chord.Chord) error {
	for _, c := range chords {
		row := chordRow(c)
		if row[1] == "—" {
			row[1] = ""
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
