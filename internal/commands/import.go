package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/gitops"
	"github.com/cleared-dev/ledger/internal/importer"
	"github.com/cleared-dev/ledger/internal/importlog"
	"github.com/cleared-dev/ledger/internal/log"
	"github.com/cleared-dev/ledger/internal/model"
	"github.com/cleared-dev/ledger/internal/store"
)

type importOptions struct {
	csvPath string
	offset  string
	source  string
	invert  bool
	dryRun  bool
}

func newImportCommand(opts *globalOptions) *cobra.Command {
	iopts := importOptions{}
	registry := importer.DefaultRegistry()

	cmd := &cobra.Command{
		Use:     "import",
		Aliases: []string{"csv"},
		Short:   "Import a bank CSV export into the ledger",
		Long: `Import a bank CSV export into the ledger.

Each row becomes a simple transaction between the offset account and the
account of the first existing transaction with the same description. Rows
with no such transaction go to expense:general when negative and
income:general otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return runImport(cmd, s, registry, iopts)
		},
	}

	cmd.Flags().StringVar(&iopts.csvPath, "csv", "", "path of the CSV file (required)")
	cmd.Flags().StringVar(&iopts.offset, "offset", "", "offset account for every imported row (required)")
	cmd.Flags().StringVar(&iopts.source, "source", "generic",
		"CSV layout: "+strings.Join(registry.Formats(), ", "))
	cmd.Flags().BoolVar(&iopts.invert, "invert", false, "negate values read from the amount column")
	cmd.Flags().BoolVar(&iopts.dryRun, "dry-run", false, "print the transactions as YAML instead of appending them")
	_ = cmd.MarkFlagRequired("csv")
	_ = cmd.MarkFlagRequired("offset")

	return cmd
}

func runImport(cmd *cobra.Command, s *session, registry *importer.Registry, iopts importOptions) error {
	logger := s.logger.WithComponent(log.ComponentImporter)

	f, err := os.Open(iopts.csvPath)
	if err != nil {
		return fmt.Errorf("%w: opening csv: %w", model.ErrIO, err)
	}
	defer f.Close()

	txns, err := registry.Import(f, s.doc, importer.Request{
		Source: iopts.source,
		Offset: iopts.offset,
		Invert: iopts.invert,
	})
	if err != nil {
		return fmt.Errorf("importing %s: %w", iopts.csvPath, err)
	}
	for _, t := range txns {
		logger.Debug("matched row",
			log.FieldDate, t.Date.Format(model.DateLayout),
			log.FieldAccount, t.Account,
			log.FieldAmount, t.Amount.String(),
		)
	}

	out := cmd.OutOrStdout()
	if iopts.dryRun {
		return store.EncodeTransactions(out, txns)
	}

	if err := store.AppendTransactions(s.cfg.LedgerFile, txns); err != nil {
		return err
	}

	changed := []string{filepath.Base(s.cfg.LedgerFile)}
	logPath := importlog.PathFor(s.cfg.LedgerFile)
	entry := importlog.NewEntry(time.Now(), iopts.source, iopts.csvPath, iopts.offset, txns)
	if err := importlog.Append(logPath, []importlog.Entry{entry}); err != nil {
		logger.Warn("failed to write import log", log.FieldError, err)
	} else {
		changed = append(changed, filepath.Base(logPath))
	}

	logger.Info("imported", log.FieldSource, iopts.source, log.FieldCount, len(txns))
	fmt.Fprintf(out, "Imported %d transaction(s) from %s into %s\n", len(txns), iopts.csvPath, s.cfg.LedgerFile)

	if !s.cfg.Git.AutoCommit {
		return nil
	}
	dir := filepath.Dir(s.cfg.LedgerFile)
	if !gitops.IsRepo(dir) {
		logger.Warn("auto_commit is set but the ledger directory is not a git repository", log.FieldFile, dir)
		return nil
	}
	msg := fmt.Sprintf("import: %d transaction(s) from %s", len(txns), filepath.Base(iopts.csvPath))
	hash, err := gitops.Commit(dir, msg, author(s.cfg), changed...)
	if err != nil {
		return fmt.Errorf("%w: committing import: %w", model.ErrIO, err)
	}
	fmt.Fprintf(out, "Committed %s\n", hash)
	return nil
}
