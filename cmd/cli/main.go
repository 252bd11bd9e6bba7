package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/chching/internal/adapter/cli"
	"github.com/iho/chching/internal/adapter/repository"
	"github.com/iho/chching/internal/infrastructure/config"
	"github.com/iho/chching/internal/infrastructure/logger"
	"github.com/iho/chching/internal/infrastructure/postgres"
	"github.com/iho/chching/internal/usecase"
)

type options struct {
	storage  string
	file     string
	currency string
	logLevel string
	prompt   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var reported *cli.ReportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "chching [command line]",
		Short: "Personal income and expense ledger",
		Long: `chching records incomes and expenses and reports the balance.

With arguments, the arguments are joined and run as a single command line.
Without arguments, command lines are read from standard input until "exit".

` + cli.Usage,
		Example: `  chching add income /de salary /da 01-04-2023 /v 1200
  chching delete expense /in 2
  chching list`,
		Args:                  cobra.ArbitraryArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedger(cmd.Context(), opts, args, in, out, errOut)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.storage, "storage", "", "storage backend: file, postgres, redis or memory (overrides LEDGER_STORAGE)")
	flags.StringVar(&opts.file, "file", "", "ledger file for file storage (overrides LEDGER_FILE)")
	flags.StringVar(&opts.currency, "currency", "", "display currency code (overrides LEDGER_CURRENCY)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	rootCmd.Flags().StringVar(&opts.prompt, "prompt", "> ", "prompt printed before each interactive line")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// "help" is a ledger command line too, so it prints the ledger usage.
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, cli.Usage)
		},
	})
	rootCmd.AddCommand(newMigrateCmd(opts, errOut))

	return rootCmd
}

func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.storage != "" {
		cfg.Storage = opts.storage
	}
	if opts.file != "" {
		cfg.LedgerFile = opts.file
	}
	if opts.currency != "" {
		cfg.Currency = opts.currency
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(opts *options, errOut io.Writer) zerolog.Logger {
	return logger.New(logger.Config{
		Level:  opts.logLevel,
		Format: "console",
		Output: errOut,
	})
}

func runLedger(ctx context.Context, opts *options, args []string, in io.Reader, out, errOut io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log := newLogger(opts, errOut)

	store, closeStore, err := repository.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}
	defer closeStore()

	ledger := usecase.NewLedgerUseCase(store, usecase.WithLogger(log))
	if err := ledger.Open(ctx); err != nil {
		return err
	}

	ui := cli.NewUI(out, cfg.Currency)

	if len(args) > 0 {
		return cli.NewShell(ledger, ui, "").Exec(ctx, strings.Join(args, " "))
	}

	err = cli.NewShell(ledger, ui, opts.prompt).Run(ctx, in)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newMigrateCmd(opts *options, errOut io.Writer) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres schema",
	}

	run := func(apply func(databaseURL string, logger zerolog.Logger) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return apply(cfg.DatabaseURL, newLogger(opts, errOut))
		}
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  run(postgres.RunMigrations),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			Args:  cobra.NoArgs,
			RunE:  run(postgres.RunMigrationsDown),
		},
	)

	return migrateCmd
}
