// Command migrate applies and reverts the embedded database schema migrations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// dbOpener connects to the database described by the config file.
type dbOpener func(ctx context.Context, configPath string) (*sqlx.DB, error)

func main() {
	if err := newRootCmd(openDB).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB loads the config file and connects with the same POSTGRES_* variables the service uses.
func openDB(ctx context.Context, configPath string) (*sqlx.DB, error) {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "roommate_matcher"),
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	return db, nil
}

func newRootCmd(open dbOpener) *cobra.Command {
	var configPath, logLevel string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Roommate matcher schema migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Initialize(logLevel)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")

	withDB := func(cmd *cobra.Command, fn func(ctx context.Context, db *sqlx.DB) error) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		db, err := open(ctx, configPath)
		if err != nil {
			return err
		}
		defer db.Close()
		return fn(ctx, db)
	}

	root.AddCommand(upCmd(withDB), downCmd(withDB), statusCmd(withDB))
	return root
}

type dbRunner func(cmd *cobra.Command, fn func(ctx context.Context, db *sqlx.DB) error) error

func upCmd(withDB dbRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, db *sqlx.DB) error {
				versions, err := migrations.Up(ctx, db)
				for _, v := range versions {
					fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", v)
				}
				if err != nil {
					return err
				}
				if len(versions) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No pending migrations.")
				}
				return nil
			})
		},
	}
}

func downCmd(withDB dbRunner) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Revert the most recent migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			return withDB(cmd, func(ctx context.Context, db *sqlx.DB) error {
				versions, err := migrations.Down(ctx, db, steps)
				for _, v := range versions {
					fmt.Fprintf(cmd.OutOrStdout(), "Reverted %s\n", v)
				}
				if err != nil {
					return err
				}
				if len(versions) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to revert.")
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to revert")
	return cmd
}

func statusCmd(withDB dbRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, db *sqlx.DB) error {
				statuses, err := migrations.List(ctx, db)
				if err != nil {
					return err
				}
				for _, s := range statuses {
					state := "pending"
					if s.AppliedAt != nil {
						state = "applied " + s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s_%s\t%s\n", s.Version, s.Name, state)
				}
				return nil
			})
		},
	}
}
