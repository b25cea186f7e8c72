package cli

import (
	"fmt"

	"github.com/smilit/i18ntools/i18n"
	"github.com/smilit/i18ntools/translate"
	"github.com/spf13/cobra"
)

// ---------------------------------------------------------------------------
// dict (phrase dictionary maintenance)
// ---------------------------------------------------------------------------

func newDictCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: i18n.T("Inspect the phrase dictionary"),
	}
	cmd.PersistentFlags().AddFlagSet(opts.pathFlags(flagDictionary))

	cmd.AddCommand(
		newDictCheckCmd(opts),
		newDictLookupCmd(opts),
	)
	return cmd
}

func newDictCheckCmd(opts *Options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: i18n.T("Report phrases defined more than once"),
		Long: i18n.T(`Report every phrase that is defined more than once. The last definition
wins; a redefinition with a different translation is a conflict.
With --strict, conflicts make the command fail.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.paths()
			if err != nil {
				return err
			}
			dict, err := loadDictionary(p)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, i18n.T("%d phrases in %d sections")+"\n", dict.Len(), len(dict.Sections()))

			conflicts := 0
			for _, d := range dict.Duplicates() {
				if !d.Conflict() {
					fmt.Fprintf(out, "  %s %q: %s:%d, %s:%d\n", colorBlue.Sprint(i18n.T("duplicate")),
						d.Source, d.Previous.Section, d.Previous.Line, d.Current.Section, d.Current.Line)
					continue
				}
				conflicts++
				fmt.Fprintf(out, "  %s %q: %q (%s:%d) -> %q (%s:%d)\n", colorYellow.Sprint(i18n.T("conflict")),
					d.Source, d.Previous.Target, d.Previous.Section, d.Previous.Line,
					d.Current.Target, d.Current.Section, d.Current.Line)
			}

			dups := len(dict.Duplicates())
			if dups == 0 {
				logSuccess("%s", i18n.T("No duplicate phrases"))
				return nil
			}
			logWarning(i18n.T("%d duplicate phrases, %d with conflicting translations"), dups, conflicts)
			if strict && conflicts > 0 {
				return fmt.Errorf(i18n.T("%d conflicting phrase definitions"), conflicts)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, i18n.T("Fail when phrases have conflicting translations"))
	return cmd
}

func newDictLookupCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup TEXT...",
		Short: i18n.T("Translate texts with the dictionary rules"),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.paths()
			if err != nil {
				return err
			}
			dict, err := loadDictionary(p)
			if err != nil {
				return err
			}
			tr := translate.New(dict)
			out := cmd.OutOrStdout()

			for _, text := range args {
				if res, ok := tr.Translate(text); ok {
					fmt.Fprintf(out, "%s\t%s\n", text, res)
				} else {
					fmt.Fprintf(out, "%s\t%s\n", text, colorYellow.Sprint(i18n.T("(unresolved)")))
				}
			}
			return nil
		},
	}
}
