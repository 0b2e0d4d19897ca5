// Package cli wires the command line onto the collections and loaders.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-network/internal/config"
	"social-network/internal/logging"
	"social-network/internal/repository"
	"social-network/internal/service"
)

// app holds everything a subcommand needs once the database is open.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	db       *gorm.DB
	users    *service.UserCollection
	statuses *service.StatusCollection
	loader   *service.Loader
	reports  *service.ReportService
}

type rootOptions struct {
	dbPath   string
	logLevel string
}

// Run executes the command line in args and closes the database afterwards.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	rootCmd := newRootCommand(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if closeErr := a.close(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCommand(a *app) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "socialnetwork",
		Short:        "Manage users and status updates of the social network",
		Long:         "Load users and status updates from CSV files and add, update, delete or search single records.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dbPath,
		"db", "", "SQLite database file (overrides DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel,
		"log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")

	rootCmd.AddCommand(
		newLoadCommand(a),
		newUserCommand(a),
		newStatusCommand(a),
		newReportCommand(a),
	)
	return rootCmd
}

func (a *app) open(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if opts.dbPath != "" {
		cfg.DatabaseURL = opts.dbPath
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	a.cfg = cfg
	a.log = log
	a.db = db
	a.users = service.NewUserCollection(userRepo, log)
	a.statuses = service.NewStatusCollection(statusRepo, log)
	a.loader = service.NewLoader(userRepo, statusRepo, cfg.ImportBatchSize, log)
	a.reports = service.NewReportService(userRepo, statusRepo)

	log.Debug("database ready", zap.String("dsn", cfg.DatabaseURL), zap.String("command", cmd.CommandPath()))
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := repository.Close(a.db)
	a.db = nil
	_ = a.log.Sync()
	return err
}

// errFailed is returned when a collection or loader call reports false.
var errFailed = errors.New("operation failed")

func failed(op string) error {
	return fmt.Errorf("%s: %w", op, errFailed)
}
