package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rolemark/rolemark/internal/config"
	"github.com/rolemark/rolemark/internal/logger"
	"github.com/rolemark/rolemark/internal/server"
)

var (
	serveAddr             string
	serveConfigPath       string
	serveEnforceWeightSum bool
	serveDebug            bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for roles, criteria, resumes, evaluations and comparisons.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveEnforceWeightSum, "enforce-weight-sum", false, "Reject evaluations unless criteria weights sum to 100")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	fileCfg := config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
		fileCfg = *loaded
	}

	// Flags and environment override file values
	cfg := config.FromEnv()
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	cfg.EnforceWeightSum = cfg.EnforceWeightSum || serveEnforceWeightSum
	cfg = cfg.MergeWithDefaults(fileCfg)

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(true, serveDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	srv, err := server.New(server.Config{
		Addr:             cfg.ListenAddr,
		DatabaseURL:      cfg.DatabaseURL,
		EnforceWeightSum: cfg.EnforceWeightSum,
		Logger:           log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
