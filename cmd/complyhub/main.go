// Package main is the complyhub command line client for company lookups and
// AML screening checks.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"complyhub/internal/app"
	"complyhub/internal/platform/config"
	"complyhub/internal/platform/logger"
)

var rootCmd = &cobra.Command{
	Use:           "complyhub",
	Short:         "Compliance data client",
	Long:          "complyhub looks up company registry records and runs AML/PEP screening checks against the compliance API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildApp is swapped in tests.
var buildApp = func() (*app.App, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return app.New(cfg, logger.NewWithWriter(os.Stderr, cfg.LogLevel))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
