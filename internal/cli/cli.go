package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/ukechords/internal/config"
	"github.com/matzehuels/ukechords/pkg/buildinfo"
	"github.com/matzehuels/ukechords/pkg/catalog"
	"github.com/matzehuels/ukechords/pkg/errors"
	"github.com/matzehuels/ukechords/pkg/observability"
	"github.com/matzehuels/ukechords/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags globalFlags
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath  string
	definitions []string
	noBuiltin   bool
	width       int
	spacing     int
	marker      string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Invoked with chord names it prints their diagrams.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ukechords <chord>[, <chord>...]",
		Short: "Ukulele chord diagrams in your terminal",
		Long: `ukechords looks up ukulele chords by name and prints fretboard diagrams.

Separate chords with commas or pass them as separate arguments. Sharps
and flats are interchangeable (Db finds C#) and names are case-insensitive.`,
		Example: `  ukechords C
  ukechords "C, Am, F, G7"
  ukechords -w 60 Bb Gm Eb F`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: c.completeChordNames,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := logHooks{logger: c.Logger}
			observability.SetCatalogHooks(hooks)
			observability.SetLookupHooks(hooks)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLookup(cmd.Context(), cmd.OutOrStdout(), cmd.Flags().Changed, args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ukechords/config.toml)")
	pf.StringArrayVarP(&c.flags.definitions, "definitions", "d", nil, "chord definitions file (repeatable, replaces the config list)")
	pf.BoolVar(&c.flags.noBuiltin, "no-builtin", false, "skip the built-in chord definitions")
	pf.IntVarP(&c.flags.width, "width", "w", 0, "grid width in columns (0 = terminal width)")
	pf.IntVar(&c.flags.spacing, "spacing", pipeline.DefaultSpacing, "columns between diagrams")
	pf.StringVar(&c.flags.marker, "marker", "", "character marking a fretted string")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// runLookup prints the diagrams for the chords named in args.
func (c *CLI) runLookup(ctx context.Context, w io.Writer, changed func(string) bool, args []string) error {
	query := strings.Join(args, pipeline.QuerySeparator)
	if err := errors.ValidateQuery(query); err != nil {
		return err
	}

	s, err := c.loadSession(ctx, changed)
	if err != nil {
		return err
	}

	batch := s.runner.RenderBatch(query)
	if missing := batch.Missing(); len(missing) > 0 {
		loggerFromContext(ctx).Debug("unresolved chords", "names", strings.Join(missing, ", "))
	}
	_, err = fmt.Fprint(w, strings.Join(s.runner.Layout(batch, s.width(w)), "\n"))
	return err
}

// =============================================================================
// Session - settings, catalog and runner for one invocation
// =============================================================================

type session struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	runner  *pipeline.Runner
}

// width returns the configured grid width, or the width of w when it is a
// terminal.
func (s *session) width(w io.Writer) int {
	if s.cfg.Display.Width > 0 {
		return s.cfg.Display.Width
	}
	return terminalWidth(w)
}

// loadSession reads the config, applies the flags reported by changed and
// loads the catalog.
func (c *CLI) loadSession(ctx context.Context, changed func(string) bool) (*session, error) {
	cfg, err := c.settings(changed)
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := pipeline.DefaultOptions()
	opts.StringNames = cfg.Display.StringNames()
	opts.Marker = cfg.Display.Marker
	opts.Spacing = cfg.Display.Spacing
	if cfg.Display.Width > 0 {
		opts.Width = cfg.Display.Width
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		catalog: cat,
		runner:  pipeline.NewRunner(cat, opts, loggerFromContext(ctx)),
	}, nil
}

// settings loads the config file and overlays the flags the user set.
func (c *CLI) settings(changed func(string) bool) (*config.Config, error) {
	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return nil, err
	}
	if changed("definitions") {
		cfg.Definitions = make([]string, len(c.flags.definitions))
		for i, def := range c.flags.definitions {
			cfg.Definitions[i] = config.ExpandHome(def)
		}
	}
	if changed("no-builtin") {
		cfg.Builtin = !c.flags.noBuiltin
	}
	if changed("width") {
		cfg.Display.Width = c.flags.width
	}
	if changed("spacing") {
		cfg.Display.Spacing = c.flags.spacing
	}
	if changed("marker") {
		cfg.Display.Marker = c.flags.marker
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCatalog builds the catalog from the built-in set and the configured
// files, in that order.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	base := catalog.New()
	if cfg.Builtin {
		base = catalog.Default()
	}
	cat, err := catalog.Merge(ctx, base, cfg.Definitions...)
	if err != nil {
		return nil, err
	}

	prog.done(fmt.Sprintf("Loaded %d chords from %d files", cat.Len(), len(cfg.Definitions)))
	return cat, nil
}

// =============================================================================
// Terminal helpers
// =============================================================================

// terminalWidth returns the column count of w, or pipeline.DefaultWidth when
// w is not a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return pipeline.DefaultWidth
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
