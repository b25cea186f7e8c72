package cli

import (
	"fmt"
	"path/filepath"

	"github.com/smilit/i18ntools/catalog"
	"github.com/smilit/i18ntools/extract"
	"github.com/smilit/i18ntools/i18n"
	"github.com/spf13/cobra"
)

// ---------------------------------------------------------------------------
// extract (catalog -> pending translations file)
// ---------------------------------------------------------------------------

func newExtractCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: i18n.T("Collect pending entries into a file for manual translation"),
		Long: i18n.T(`Collect the source text of every pending catalog entry into the
pending translations file, one entry per distinct text with an empty
translation. An existing file is overwritten.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts)
		},
	}
	cmd.Flags().AddFlagSet(opts.pathFlags(flagCatalog | flagPending))
	return cmd
}

func runExtract(cmd *cobra.Command, opts *Options) error {
	p, err := opts.paths()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, i18n.T("Loading %s...")+"\n", display(p.Root, p.Catalog))
	cat, err := catalog.Load(p.Catalog)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	res := extract.Pending(cat)
	n := res.Distinct()
	fmt.Fprintf(out, i18n.N("Found %d entry to translate", "Found %d entries to translate", n)+"\n", n)
	if res.Entries > n {
		logInfo(i18n.T("%d pending entries share %d source texts"), res.Entries, n)
	}

	fmt.Fprintf(out, i18n.T("Saving to %s...")+"\n", display(p.Root, p.Pending))
	if err := res.Set.Save(p.Pending); err != nil {
		return fmt.Errorf("saving pending translations: %w", err)
	}

	name := filepath.Base(p.Pending)
	fmt.Fprintln(out, i18n.T("Done!"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, i18n.T("Next steps:"))
	fmt.Fprintf(out, i18n.T("1. Open %s")+"\n", name)
	fmt.Fprintln(out, i18n.T("2. Fill in English translations for each Chinese text"))
	fmt.Fprintln(out, i18n.T("3. Run import-translations to merge back"))
	return nil
}
