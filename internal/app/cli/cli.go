// Package cli is the hrms command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"hrms/internal/app/server"
	"hrms/internal/domain/auth"
	"hrms/internal/platform/config"
	"hrms/internal/platform/db"
	"hrms/internal/platform/jobs"
)

// NewRootCommand builds the command tree. Flags override the environment.
func NewRootCommand() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:           "hrms",
		Short:         "Multi-tenant HR management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			applyFlags(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			slog.SetDefault(NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("addr", "", "listen address (env: APP_ADDR)")
	flags.String("db-url", "", "Postgres connection URL (env: DATABASE_URL)")
	flags.String("log-level", "", "debug, info, warn or error (env: LOG_LEVEL)")
	flags.String("log-format", "", "json or text (env: LOG_FORMAT)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withPool(cmd.Context(), cfg, func(ctx context.Context, pool *pgxpool.Pool) error {
					if cfg.RunMigrations {
						if err := db.Migrate(ctx, pool); err != nil {
							return fmt.Errorf("migrate: %w", err)
						}
					}
					if cfg.RunSeed {
						if err := db.Seed(ctx, pool, cfg); err != nil {
							return fmt.Errorf("seed: %w", err)
						}
					}
					ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
					defer stop()
					return server.Run(ctx, cfg, pool)
				})
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending schema migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withPool(cmd.Context(), cfg, db.Migrate)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Create the configured organization and HR-Admin if missing",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withPool(cmd.Context(), cfg, func(ctx context.Context, pool *pgxpool.Pool) error {
					return db.Seed(ctx, pool, cfg)
				})
			},
		},
		&cobra.Command{
			Use:   "purge-sessions",
			Short: "Delete expired sessions once and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withPool(cmd.Context(), cfg, func(ctx context.Context, pool *pgxpool.Pool) error {
					return runPurge(ctx, cmd.OutOrStdout(), auth.NewStore(pool), cfg)
				})
			},
		},
	)
	return root
}

func runPurge(ctx context.Context, w io.Writer, sessions server.SessionPurger, cfg config.Config) error {
	details, err := jobs.New().RunNow(ctx, server.SessionPurgeJob, server.PurgeSessions(sessions, cfg.SessionTTL))
	if err != nil {
		return fmt.Errorf("purge sessions: %w", err)
	}
	_, err = fmt.Fprintln(w, details)
	return err
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		slog.Error("hrms failed", "err", err)
		os.Exit(1)
	}
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if v, _ := flags.GetString("addr"); v != "" {
		cfg.Addr = v
	}
	if v, _ := flags.GetString("db-url"); v != "" {
		cfg.DatabaseURL = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
}

func withPool(ctx context.Context, cfg config.Config, fn func(context.Context, *pgxpool.Pool) error) error {
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()
	return fn(ctx, pool)
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
