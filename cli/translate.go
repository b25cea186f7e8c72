package cli

import (
	"fmt"
	"math"

	"github.com/smilit/i18ntools/catalog"
	"github.com/smilit/i18ntools/config"
	"github.com/smilit/i18ntools/dictionary"
	"github.com/smilit/i18ntools/i18n"
	"github.com/smilit/i18ntools/lockfile"
	"github.com/smilit/i18ntools/sentinel"
	"github.com/smilit/i18ntools/translate"
	"github.com/spf13/cobra"
)

// ---------------------------------------------------------------------------
// translate (dictionary-driven translation of pending entries)
// ---------------------------------------------------------------------------

type translateArgs struct {
	dryRun        bool
	verbose       bool
	progressEvery int
}

func newTranslateCmd(opts *Options) *cobra.Command {
	var a translateArgs

	cmd := &cobra.Command{
		Use:   "translate",
		Short: i18n.T("Translate pending entries with the phrase dictionary"),
		Long: i18n.T(`Translate pending catalog entries with the built-in phrase dictionary.

Each source text is looked up as a whole, then by affix rules (for
example a trailing 列表 becomes "list"), then split on connecting
particles such as 的 or 和. Entries that cannot be resolved stay pending
for extract and manual translation.

Running again is safe: translated entries are no longer pending.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, opts, a)
		},
	}

	cmd.Flags().AddFlagSet(opts.pathFlags(flagCatalog | flagDictionary))
	cmd.Flags().BoolVarP(&a.dryRun, "dry-run", "n", false, i18n.T("Show what would be translated without writing"))
	cmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, i18n.T("List every translated entry"))
	cmd.Flags().IntVar(&a.progressEvery, "progress-every", 0, i18n.T("Report progress every N translations (default from config, then 100)"))

	return cmd
}

func runTranslate(cmd *cobra.Command, opts *Options, a translateArgs) error {
	p, err := opts.paths()
	if err != nil {
		return err
	}
	if a.progressEvery > 0 {
		p.ProgressEvery = a.progressEvery
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "  "+i18n.T("Dictionary Translation"))
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)

	dict, err := loadDictionary(p)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, i18n.T("Loading %s...")+"\n", display(p.Root, p.Catalog))
	cat, err := catalog.Load(p.Catalog)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	total := pendingCount(cat)
	fmt.Fprintf(out, i18n.N("Found %d entry to translate...", "Found %d entries to translate...", total)+"\n", total)
	fmt.Fprintln(out)

	tr := translate.New(dict)
	res := tr.Run(cat, translate.Options{
		DryRun:        a.dryRun,
		ProgressEvery: p.ProgressEvery,
		Progress: func(done, total int) {
			fmt.Fprintf(out, i18n.T("Progress: %d/%d (%d%%)")+"\n", done, total, percent(done, total))
		},
	})
	if total > 0 {
		fmt.Fprintln(out)
	}

	if a.verbose || a.dryRun {
		for _, r := range res.Resolutions {
			fmt.Fprintf(out, "  %s: %s -> %s\n", r.Key, r.Source, r.Result)
		}
		if len(res.Resolutions) > 0 {
			fmt.Fprintln(out)
		}
	}

	switch {
	case a.dryRun:
		logInfo(i18n.T("Dry run: %s not modified"), display(p.Root, p.Catalog))
	case res.Translated() == 0:
		logInfo(i18n.T("Nothing to translate, %s not modified"), display(p.Root, p.Catalog))
	default:
		fmt.Fprintln(out, i18n.T("Saving translations..."))
		if err := cat.Save(p.Catalog); err != nil {
			return fmt.Errorf("saving catalog: %w", err)
		}
		if err := recordLock(p, cat, res); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, rule)
	if a.dryRun {
		fmt.Fprintln(out, "✓ "+i18n.T("Dry run complete!"))
	} else {
		fmt.Fprintln(out, "✓ "+i18n.T("Translation complete!"))
	}
	fmt.Fprintf(out, "  "+i18n.T("Translated: %d entries")+"\n", res.Translated())
	fmt.Fprintf(out, "  "+i18n.T("Remaining: %d entries")+"\n", res.Remaining())
	fmt.Fprintf(out, "  "+i18n.T("Coverage: %d%%")+"\n", res.Coverage())
	fmt.Fprintln(out, rule)

	if res.Remaining() > 0 {
		logWarning(i18n.N("%d entry still needs manual translation (run extract-todos)",
			"%d entries still need manual translation (run extract-todos)", res.Remaining()), res.Remaining())
	}
	return nil
}

// loadDictionary returns the configured phrase dictionary or the built-in one.
func loadDictionary(p *config.Paths) (*dictionary.Dictionary, error) {
	if p.Dictionary == "" {
		return dictionary.Default()
	}
	dict, err := dictionary.Load(p.Dictionary)
	if err != nil {
		return nil, err
	}
	logInfo(i18n.T("Using dictionary %s (%d phrases)"), display(p.Root, p.Dictionary), dict.Len())
	return dict, nil
}

// recordLock notes the machine-translated keys when a lock file is enabled.
func recordLock(p *config.Paths, cat *catalog.Catalog, res translate.Result) error {
	if p.LockFile == "" {
		return nil
	}

	lf, err := lockfile.Load(p.LockFile)
	if err != nil {
		return err
	}
	target := lockfile.TargetKey(p.Root, p.Catalog)
	for _, r := range res.Resolutions {
		lf.Record(target, r.Key, r.Result)
	}
	lf.Clean(target, cat.Keys())

	if err := lf.Save(); err != nil {
		return err
	}
	logSuccess(i18n.T("Recorded %d machine-translated keys in %s"), len(res.Resolutions), display(p.Root, p.LockFile))
	return nil
}

// pendingCount returns the number of entries carrying the marker.
func pendingCount(cat *catalog.Catalog) int {
	n := 0
	for _, key := range cat.Keys() {
		if v, _ := cat.Get(key); sentinel.IsPending(v) {
			n++
		}
	}
	return n
}

// percent returns done/total as a rounded percentage.
func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
