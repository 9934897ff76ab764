package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/journal"
	"github.com/cleared-dev/ledger/internal/log"
	"github.com/cleared-dev/ledger/internal/model"
	"github.com/cleared-dev/ledger/internal/report"
)

func newAccountCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "account",
		Aliases: []string{"accounts"},
		Short:   "List declared accounts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return s.render(report.Accounts(s.doc.Accounts))
		},
	}
}

func newBalanceCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show account balances by type with a check figure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			sheet := journal.Balances(s.doc)
			logUnmatched(s.logger, sheet.Unmatched)
			return s.render(report.Balance(sheet))
		},
	}
}

func logUnmatched(logger *log.Logger, entries []model.Entry) {
	jl := logger.WithComponent(log.ComponentJournal)
	for _, e := range entries {
		jl.Debug("entry matches no declared account",
			log.FieldDate, e.Date.Format(model.DateLayout),
			log.FieldAccount, e.Account,
			log.FieldAmount, e.Amount.String(),
		)
	}
}

func newRegisterCommand(opts *globalOptions) *cobra.Command {
	var filter string
	var group string
	var byAccount bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "List entries, or totals per period",
		Long: `List flattened entries matching an optional filter.

With --group the entries are totalled per day, month or year; --by-account
splits each period's total by account.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := journal.ParseGranularity(group)
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			entries := journal.Filter(journal.Flatten(s.doc), filter)
			s.logger.Debug("filtered entries",
				log.FieldFilter, filter,
				log.FieldGroup, g.String(),
				log.FieldEntries, len(entries),
			)

			switch {
			case byAccount:
				return s.render(report.RegisterByAccount(journal.SumByPeriodAccount(entries, g), g))
			case g != journal.None:
				return s.render(report.RegisterTotals(journal.SumByPeriod(entries, g), g))
			default:
				return s.render(report.Register(entries))
			}
		},
	}

	cmd.Flags().StringVarP(&filter, "option", "o", "", "only entries whose date, amount, account or description contains this text")
	cmd.Flags().StringVarP(&group, "group", "g", "", "total per period: daily, monthly or yearly")
	cmd.Flags().BoolVar(&byAccount, "by-account", false, "split period totals by account")

	return cmd
}

func newBudgetCommand(opts *globalOptions) *cobra.Command {
	var period string
	var group string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Compare income and expense activity with budget targets",
		Long: `Compare income and expense activity for one period with the accounts'
budget targets.

The period is matched exactly against one component of each entry date:
the year for --group yearly (2020), the month for monthly (03), the day of
month for daily (15). Daily periods have no target.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := journal.ParseGranularity(group)
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			rows, err := journal.Budget(s.doc, period, g)
			if err != nil {
				return err
			}
			return s.render(report.Budget(rows, period, g))
		},
	}

	cmd.Flags().StringVarP(&period, "option", "o", "", "period to report, e.g. 2020 or 03 (required)")
	cmd.Flags().StringVarP(&group, "group", "g", "", "daily, monthly or yearly (required)")
	_ = cmd.MarkFlagRequired("option")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}
