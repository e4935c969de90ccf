package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rovan44/shopping-app-44/internal/config"
	"github.com/Rovan44/shopping-app-44/internal/database"
	"github.com/Rovan44/shopping-app-44/internal/repository"
	"github.com/Rovan44/shopping-app-44/internal/repository/memory"
	"github.com/spf13/cobra"
)

var Version = "dev"

func NewRootCommand() *cobra.Command {
	var envFiles []string

	rootCmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront - catalog, payment and dashboard API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv(envFiles...)
		},
	}

	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load before reading configuration (default .env)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// openStore returns the configured unit of work and a function releasing it.
func openStore(ctx context.Context, cfg *config.Config) (repository.UnitOfWork, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Println("Using in-memory store; data is lost on exit")
		return memory.NewStore(), func() {}, nil
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if cfg.RunMigrations {
		if err := database.MigrateUp(db); err != nil {
			db.Close()
			return nil, nil, err
		}
	}

	return repository.NewPostgresStore(db), func() { db.Close() }, nil
}
