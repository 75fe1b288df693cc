// File path: cmd/site/root.go
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/immensecng/cylinder-retest/internal/common"
	"github.com/immensecng/cylinder-retest/internal/config"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "site",
	Short: "Serve the cylinder testing website",
	Long: `site runs the cylinder testing centre website: the marketing pages,
the cylinder identification wizard and the degassing tracker.`,
	SilenceUsage: true,
}

// SetVersion sets the version reported by the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "site version %s\n" .Version}}`)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env when present)")
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newInquiriesCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// loadConfig loads the dotenv file and parses the environment.
func loadConfig() (config.Config, error) {
	logger := common.Logger()
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	loaded, err := config.LoadDotEnv(files...)
	switch {
	case err != nil:
		return config.Config{}, err
	case loaded:
		logger.Info("site: environment loaded from dotenv", "file", envFile)
	default:
		logger.Debug("site: no .env file found")
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	common.SetLevel(cfg.LogLevel)
	return cfg, nil
}
