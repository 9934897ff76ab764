package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/journal"
)

func newCheckCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Lint the ledger for unbalanced splits and undeclared accounts",
		Long: `Lint the ledger. Findings are informational: reports still run on a
ledger with findings, and check itself exits zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			findings := journal.Validate(s.doc)
			if len(findings) == 0 {
				fmt.Fprintf(out, "%s: ok\n", s.cfg.LedgerFile)
				return nil
			}
			for _, f := range findings {
				fmt.Fprintln(out, f.Error())
			}
			fmt.Fprintf(out, "%s: %d finding(s)\n", s.cfg.LedgerFile, len(findings))
			return nil
		},
	}
}
