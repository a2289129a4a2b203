// Package cli implements the command-line interface for reposeed.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kilupskalvis/reposeed/internal/auth"
	"github.com/kilupskalvis/reposeed/internal/config"
	"github.com/kilupskalvis/reposeed/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagManifest  string
	flagTokenFile string
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "reposeed",
	Short: "Seed a GitHub repository with a project skeleton",
	Long: `reposeed provisions a GitHub repository through the Contents API:
it writes an ordered set of files (config, env template, source stubs)
into the target repository, retrying on write conflicts and transient
failures with exponential backoff.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "reposeed.toml", "Path to the reposeed config file")
	rootCmd.PersistentFlags().StringVar(&flagManifest, "manifest", "", "TOML manifest overriding the built-in file set")
	rootCmd.PersistentFlags().StringVar(&flagTokenFile, "token-file", "", "Read the API token from this file instead of $GITHUB_TOKEN")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (json, text)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(checkCmd)
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file named by --config.
func loadConfig() *config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitError("%v", err)
	}
	return cfg
}

// newLogger builds the logger from the persistent log flags.
func newLogger() *slog.Logger {
	var level slog.Level
	switch flagLogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if flagLogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// tokenProvider picks the credential source from the flags.
func tokenProvider() auth.TokenProvider {
	if flagTokenFile != "" {
		return auth.FileProvider{Path: flagTokenFile}
	}
	return auth.EnvProvider{}
}

// loadFiles returns the ordered file set: the manifest if one was given,
// otherwise the built-in skeleton.
func loadFiles() []config.File {
	if flagManifest == "" {
		return scaffold.Files()
	}
	files, err := config.LoadManifest(flagManifest)
	if err != nil {
		exitError("%v", err)
	}
	return files
}

// shortSHA returns the first 8 characters of a commit SHA.
func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
