package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/config"
	"github.com/cleared-dev/ledger/internal/gitops"
	"github.com/cleared-dev/ledger/internal/model"
	"github.com/cleared-dev/ledger/internal/store"
)

// defaultLedgerName is the ledger created by init when no path is given.
const defaultLedgerName = "ledger.yaml"

func newInitCommand(opts *globalOptions) *cobra.Command {
	var (
		template string
		useGit   bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a starter ledger and config file",
		Long: `Create a ledger with a starter chart of accounts and no transactions,
plus a ` + config.DefaultFileName + ` next to it pointing at the ledger.
An existing config file is left alone.

With --git the ledger directory becomes a git repository (if it is not one
already), the new files are committed and later imports are committed too.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultLedgerName
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			hash, err := runInit(absPath, template, useGit)
			if err != nil {
				return err
			}
			opts.logger(cmd).Debug("initialized ledger", "template", template, "git", useGit)
			if hash != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledger at %s (%s)\n", absPath, hash)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledger at %s\n", absPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", accounts.TemplateHousehold,
		"starter chart: "+accounts.TemplateHousehold+" or "+accounts.TemplateMinimal)
	cmd.Flags().BoolVar(&useGit, "git", false, "track the ledger in git and commit imports")

	return cmd
}

// runInit writes the ledger and, when none exists, its config file. With
// useGit the files are committed and the short commit hash is returned.
func runInit(ledgerPath, template string, useGit bool) (string, error) {
	if _, err := os.Stat(ledgerPath); err == nil {
		return "", fmt.Errorf("%w: %s already exists", model.ErrInvalidInput, ledgerPath)
	}

	dir := filepath.Dir(ledgerPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating directory %s: %w", model.ErrIO, dir, err)
	}

	doc := &model.Document{Accounts: accounts.DefaultChart(template)}
	if err := store.Save(ledgerPath, doc); err != nil {
		return "", fmt.Errorf("writing ledger: %w", err)
	}

	configPath := filepath.Join(dir, config.DefaultFileName)
	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		cfg = config.Default(filepath.Base(ledgerPath))
		cfg.Git.AutoCommit = useGit
		if err := config.Save(configPath, cfg); err != nil {
			return "", fmt.Errorf("writing config: %w", err)
		}
	}

	if !useGit {
		return "", nil
	}
	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return "", fmt.Errorf("%w: %w", model.ErrIO, err)
		}
	}
	hash, err := gitops.Commit(dir, "init: "+filepath.Base(ledgerPath), author(cfg),
		filepath.Base(ledgerPath), config.DefaultFileName)
	if err != nil {
		return "", fmt.Errorf("%w: initial commit: %w", model.ErrIO, err)
	}
	return hash, nil
}

func author(cfg *config.Config) gitops.Author {
	return gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
}
