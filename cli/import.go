package cli

import (
	"errors"
	"fmt"

	"github.com/smilit/i18ntools/catalog"
	"github.com/smilit/i18ntools/i18n"
	"github.com/smilit/i18ntools/lockfile"
	"github.com/smilit/i18ntools/merge"
	"github.com/smilit/i18ntools/pending"
	"github.com/spf13/cobra"
)

// ---------------------------------------------------------------------------
// import (pending translations file -> catalog)
// ---------------------------------------------------------------------------

func newImportCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: i18n.T("Merge manual translations back into the catalog"),
		Long: i18n.T(`Replace every pending catalog entry whose source text has a non-empty
translation in the pending translations file. Entries without one stay
pending; entries that are already translated are never touched.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts)
		},
	}
	cmd.Flags().AddFlagSet(opts.pathFlags(flagCatalog | flagPending))
	return cmd
}

func runImport(cmd *cobra.Command, opts *Options) error {
	p, err := opts.paths()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, i18n.T("Loading translations..."))
	set, err := pending.Load(p.Pending)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			fmt.Fprintf(out, i18n.T("Error: %s not found")+"\n", display(p.Root, p.Pending))
			fmt.Fprintln(out, i18n.T("Run extract-todos first"))
			return ErrMissingInput
		}
		return fmt.Errorf("loading pending translations: %w", err)
	}

	fmt.Fprintf(out, i18n.T("Loading %s...")+"\n", display(p.Root, p.Catalog))
	cat, err := catalog.Load(p.Catalog)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	res := merge.Apply(cat, set)
	fmt.Fprintf(out, i18n.N("Applied %d translation", "Applied %d translations", res.Count())+"\n", res.Count())
	if res.Skipped > 0 {
		logInfo(i18n.N("%d pending entry has no translation yet", "%d pending entries have no translation yet", res.Skipped), res.Skipped)
	}

	fmt.Fprintf(out, i18n.T("Saving %s...")+"\n", display(p.Root, p.Catalog))
	if err := cat.Save(p.Catalog); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}

	if p.LockFile != "" && res.Count() > 0 {
		lf, err := lockfile.Load(p.LockFile)
		if err != nil {
			return err
		}
		target := lockfile.TargetKey(p.Root, p.Catalog)
		for _, key := range res.Updated {
			lf.Forget(target, key)
		}
		if err := lf.Save(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, i18n.T("Done!"))
	return nil
}
