package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/buildinfo"
	"github.com/cleared-dev/ledger/internal/config"
	"github.com/cleared-dev/ledger/internal/log"
	"github.com/cleared-dev/ledger/internal/model"
	"github.com/cleared-dev/ledger/internal/render"
	"github.com/cleared-dev/ledger/internal/report"
	"github.com/cleared-dev/ledger/internal/store"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	file       string
	configPath string
	format     string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "ledger",
		Short:   "Personal finance ledger reports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.file, "file", "f", "", "ledger file (overrides "+config.EnvLedgerFile+")")
	pf.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultFileName+")")
	pf.StringVar(&opts.format, "format", "", "output format: auto, plain, color or csv")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(
		newAccountCommand(opts),
		newBalanceCommand(opts),
		newRegisterCommand(opts),
		newBudgetCommand(opts),
		newCheckCommand(opts),
		newImportCommand(opts),
		newInitCommand(opts),
	)

	return rootCmd
}

func (o *globalOptions) logger(cmd *cobra.Command) *log.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return log.New(log.Config{
		Level:     level,
		Component: log.ComponentCLI,
		Output:    cmd.ErrOrStderr(),
	})
}

// session is everything a report command needs, resolved once per run.
type session struct {
	cfg      *config.Config
	doc      *model.Document
	logger   *log.Logger
	renderer render.Renderer
	cmd      *cobra.Command
}

// open resolves configuration, loads the ledger and picks a renderer.
func (o *globalOptions) open(cmd *cobra.Command) (*session, error) {
	logger := o.logger(cmd)

	cfg, err := config.Resolve(config.Options{File: o.file, ConfigPath: o.configPath})
	if err != nil {
		return nil, err
	}

	doc, err := store.Load(cfg.LedgerFile)
	if err != nil {
		return nil, err
	}
	logger.WithComponent(log.ComponentStore).Debug("loaded ledger",
		log.FieldFile, cfg.LedgerFile,
		log.FieldAccounts, len(doc.Accounts),
		log.FieldTransactions, len(doc.Transactions),
	)

	format := cfg.Format
	if o.format != "" {
		format = o.format
	}
	renderer, err := render.New(format, cmd.OutOrStdout(), cfg.Color)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		doc:      doc,
		logger:   logger,
		renderer: renderer,
		cmd:      cmd,
	}, nil
}

func (s *session) render(t report.Table) error {
	return s.renderer.Render(s.cmd.OutOrStdout(), t)
}
