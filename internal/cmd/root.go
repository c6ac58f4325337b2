// Package cmd implements the responder command-line interface.
package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/drewdunne/responder/internal/config"
	"github.com/drewdunne/responder/internal/intent"
	"github.com/drewdunne/responder/internal/logging"
)

// Version is injected at build time via -ldflags
var Version = "0.1.0"

const (
	defaultConfigPath = "config.yaml"
	systemEnvFile     = "/etc/responder/responder.env"
)

// app is the state shared by all subcommands of one root command.
type app struct {
	configPath string
	envFile    string
	verbose    bool
	overrides  config.Overrides

	cfg     *config.Config
	logger  *zap.Logger
	journal *logging.Journal // nil when the journal is disabled
}

// NewRootCommand creates and returns the root cobra command for responder
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "responder",
		Short: "Answer simple natural-language questions",
		Long: `Responder answers single free-text questions: fixed facts, arithmetic,
finding the largest number, primes, powers, and numbers that are both
squares and cubes.

Questions can be asked once, answered in batches, or served over HTTP.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Sync on a terminal stderr can fail harmlessly
			_ = a.logger.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", defaultConfigPath, "Path to config file")
	flags.StringVar(&a.envFile, "env-file", "", "Path to .env file (optional)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&a.overrides.Name, "name", "", "Name reported for identity questions")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.overrides.JournalDir, "journal-dir", "", "Directory for the query journal")

	// Add subcommands
	cmd.AddCommand(newAskCommand(a))
	cmd.AddCommand(newBatchCommand(a))
	cmd.AddCommand(newServeCommand(a))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// setup loads env files and config, then builds the logger and journal.
func (a *app) setup(cmd *cobra.Command) error {
	// Load .env file if specified or exists
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", a.envFile, err)
		}
	} else {
		// Try default locations
		godotenv.Load(".env")
		godotenv.Load(systemEnvFile)
	}

	// An explicit --config must exist; the default path is optional
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(a.configPath)
	} else {
		cfg, err = config.LoadOrDefault(a.configPath)
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a.cfg = config.Merge(cfg, a.overrides)
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(a.cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	if dir := a.cfg.Logging.JournalDir; dir != "" {
		a.journal = logging.NewJournal(dir)
	}
	return nil
}

// resolve answers q and records it in the journal when one is configured.
func (a *app) resolve(d *intent.Dispatcher, q string) intent.Answer {
	answer := d.Resolve(q)
	a.logger.Debug("Answered query",
		zap.String("query", q),
		zap.String("intent", string(answer.Intent)),
		zap.Stringer("kind", answer.Kind),
	)

	if a.journal != nil {
		err := a.journal.Record(logging.Entry{
			RequestID: uuid.NewString(),
			Query:     q,
			Intent:    string(answer.Intent),
			Kind:      answer.Kind.String(),
			Answer:    answer.Text,
		})
		if err != nil {
			a.logger.Warn("Failed to record query", zap.Error(err))
		}
	}
	return answer
}
