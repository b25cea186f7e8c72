// Package cli implements the i18ntools commands.
//
// The same commands back the combined i18ntools binary and the
// standalone extract-todos, import-translations and translate-all
// executables, which run from the project root with no arguments.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smilit/i18ntools/config"
	"github.com/smilit/i18ntools/i18n"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version information (set via -ldflags during build)
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ErrMissingInput is returned when a command's input file does not exist.
// The command has already printed what to do about it.
var ErrMissingInput = errors.New("missing input")

// ---------------------------------------------------------------------------
// Shared options
// ---------------------------------------------------------------------------

// Options holds the flags shared by all commands. Empty path fields fall
// back to .i18ntools.yaml and then to the built-in defaults.
type Options struct {
	Root       string
	Catalog    string
	Pending    string
	Dictionary string
}

// Path flag selectors for pathFlags.
const (
	flagCatalog = 1 << iota
	flagPending
	flagDictionary
)

// pathFlags returns a flag set binding the selected path overrides.
func (o *Options) pathFlags(which int) *pflag.FlagSet {
	fs := pflag.NewFlagSet("paths", pflag.ContinueOnError)
	if which&flagCatalog != 0 {
		fs.StringVar(&o.Catalog, "catalog", "", fmt.Sprintf(i18n.T("Catalog file (default from config, then %s)"), config.DefaultCatalog))
	}
	if which&flagPending != 0 {
		fs.StringVar(&o.Pending, "pending", "", fmt.Sprintf(i18n.T("Pending translations file (default from config, then %s)"), config.DefaultPending))
	}
	if which&flagDictionary != 0 {
		fs.StringVar(&o.Dictionary, "dictionary", "", i18n.T("Phrase dictionary YAML file (default: built-in)"))
	}
	return fs
}

// paths loads the project configuration and applies flag overrides.
func (o *Options) paths() (*config.Paths, error) {
	root := o.Root
	if root == "" {
		root = "."
	}

	f, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if f.Path() != "" {
		logInfo(i18n.T("Using %s"), f.Path())
	}

	if o.Catalog != "" {
		f.Catalog = o.Catalog
	}
	if o.Pending != "" {
		f.Pending = o.Pending
	}
	if o.Dictionary != "" {
		f.Dictionary = o.Dictionary
	}

	return f.Resolve(root)
}

// display shortens path relative to root for messages.
func display(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && filepath.IsLocal(rel) {
		return rel
	}
	return path
}

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

// NewRootCmd builds the combined i18ntools command.
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	root := &cobra.Command{
		Use:   "i18ntools",
		Short: i18n.T("Maintain the JSON translation catalog"),
		Long: i18n.T(`i18ntools: maintenance tools for the JSON translation catalog.

Entries still waiting for a translation carry the "[TODO: Translate] "
marker followed by the source text.

Commands:
  extract     Collect pending entries into a file for manual translation
  import      Merge manual translations back into the catalog
  translate   Translate pending entries with the phrase dictionary
  status      Show catalog translation statistics
  dict        Inspect the phrase dictionary`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag, inherited by all subcommands
	root.PersistentFlags().StringVar(&opts.Root, "root", ".", i18n.T("Project root directory"))

	root.AddCommand(
		newExtractCmd(opts),
		newImportCmd(opts),
		newTranslateCmd(opts),
		newStatusCmd(opts),
		newDictCmd(opts),
		newVersionCmd(),
	)

	return root
}

// NewExtractCmd builds the standalone extract-todos command.
func NewExtractCmd() *cobra.Command {
	return standalone("extract-todos", newExtractCmd)
}

// NewImportCmd builds the standalone import-translations command.
func NewImportCmd() *cobra.Command {
	return standalone("import-translations", newImportCmd)
}

// NewTranslateCmd builds the standalone translate-all command.
func NewTranslateCmd() *cobra.Command {
	return standalone("translate-all", newTranslateCmd)
}

func standalone(name string, build func(*Options) *cobra.Command) *cobra.Command {
	opts := &Options{}
	cmd := build(opts)
	cmd.Use = name
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.Flags().StringVar(&opts.Root, "root", ".", i18n.T("Project root directory"))
	return cmd
}

// Main initializes message translations, runs the command built by newCmd
// and exits with status 1 on error.
func Main(newCmd func() *cobra.Command) {
	i18n.Init("")
	if err := newCmd().Execute(); err != nil {
		if !errors.Is(err, ErrMissingInput) {
			logError("%v", err)
		}
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("Show version information"),
		Long:  i18n.T(`Display version, commit hash, and build date.`),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "i18ntools version %s\n", Version)
			fmt.Fprintf(out, "  commit:    %s\n", Commit)
			fmt.Fprintf(out, "  built:     %s\n", Date)
		},
	}
}
