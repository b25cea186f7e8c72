package cli

import (
	"errors"
	"fmt"

	"github.com/smilit/i18ntools/catalog"
	"github.com/smilit/i18ntools/extract"
	"github.com/smilit/i18ntools/i18n"
	"github.com/smilit/i18ntools/lockfile"
	"github.com/smilit/i18ntools/pending"
	"github.com/smilit/i18ntools/translate"
	"github.com/spf13/cobra"
)

// ---------------------------------------------------------------------------
// status (read-only: catalog statistics)
// ---------------------------------------------------------------------------

func newStatusCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: i18n.T("Show catalog translation statistics"),
		Long: i18n.T(`Show how much of the catalog is translated, how many pending entries the
dictionary could resolve, and the state of the pending translations file.
Does not modify any files.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, opts)
		},
	}
	cmd.Flags().AddFlagSet(opts.pathFlags(flagCatalog | flagPending | flagDictionary))
	return cmd
}

func runStatus(cmd *cobra.Command, opts *Options) error {
	p, err := opts.paths()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	cat, err := catalog.Load(p.Catalog)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	dict, err := loadDictionary(p)
	if err != nil {
		return err
	}

	strs := cat.StringEntries()
	ext := extract.Pending(cat)
	done := strs - ext.Entries
	resolvable := translate.New(dict).Run(cat, translate.Options{DryRun: true})

	fmt.Fprintf(out, "\n%s\n", colorBlue.Sprint(i18n.T("Catalog")))
	fmt.Fprintf(out, "  %-26s %s\n", i18n.T("File:"), display(p.Root, p.Catalog))
	fmt.Fprintf(out, "  %-26s %d\n", i18n.T("Entries:"), cat.Len())
	fmt.Fprintf(out, "  %-26s %d\n", i18n.T("String entries:"), strs)
	fmt.Fprintf(out, "  %-26s %s (%d/%d)\n", i18n.T("Translated:"), progressBar(percent(done, strs), 20), done, strs)
	fmt.Fprintf(out, "  %-26s %d\n", i18n.T("Pending:"), ext.Entries)
	fmt.Fprintf(out, "  %-26s %d\n", i18n.T("Distinct pending texts:"), ext.Distinct())
	fmt.Fprintf(out, "  %-26s %d (%d%%)\n", i18n.T("Resolvable by translate:"), resolvable.Translated(), resolvable.Coverage())

	fmt.Fprintf(out, "\n%s\n", colorBlue.Sprint(i18n.T("Pending translations file")))
	set, err := pending.Load(p.Pending)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintf(out, "  %s: %s\n", display(p.Root, p.Pending), colorYellow.Sprint(i18n.T("not found")))
	case err != nil:
		fmt.Fprintf(out, "  %s: %s\n", display(p.Root, p.Pending), colorRed.Sprint(err))
	default:
		total, translated, _ := set.Stats()
		fmt.Fprintf(out, "  %s: %s (%d/%d)\n", display(p.Root, p.Pending), progressBar(percent(translated, total), 20), translated, total)
	}

	if p.LockFile != "" {
		lf, err := lockfile.Load(p.LockFile)
		if err != nil {
			return err
		}
		target := lockfile.TargetKey(p.Root, p.Catalog)
		edited := editedKeys(lf, target, cat)

		fmt.Fprintf(out, "\n%s\n", colorBlue.Sprint(i18n.T("Lock file")))
		fmt.Fprintf(out, "  %s: %s\n", display(p.Root, p.LockFile), lf.Summary())
		fmt.Fprintf(out, "  %-26s %d\n", i18n.T("Machine-translated:"), lf.Count(target)-len(edited))
		fmt.Fprintf(out, "  %-26s %d\n", i18n.T("Edited since translation:"), len(edited))
		for _, key := range edited {
			fmt.Fprintf(out, "    %s\n", colorYellow.Sprint(key))
		}
	}

	fmt.Fprintln(out)
	return nil
}

// editedKeys returns the recorded keys whose catalog value is no longer
// the one the translator wrote.
func editedKeys(lf *lockfile.LockFile, target string, cat *catalog.Catalog) []string {
	var edited []string
	for _, key := range lf.Keys(target) {
		v, _ := cat.String(key)
		if !lf.Recorded(target, key, v) {
			edited = append(edited, key)
		}
	}
	return edited
}
