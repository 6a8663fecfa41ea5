package main

import (
	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/api"
	"github.com/pdftoolbox/pdftoolbox/internal/server/endpoints"
	"github.com/pdftoolbox/pdftoolbox/version"
)

var (
	cfgFile      string
	serverURL    string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "pdftoolbox",
	Short: "Stateless PDF merge, delete-pages and extract-pages service",
	Long: `pdftoolbox is a stateless service for everyday PDF surgery.

It merges multiple PDFs into one, deletes pages from a PDF, or extracts
pages into a new PDF, driven by page specifications like "1,3,5-7".
Nothing is persisted: every request is processed in memory and the
result is returned as a download.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pdftoolbox/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://127.0.0.1:8080", "server URL for API commands",
	)
	rootCmd.PersistentFlags().StringVar(
		&outputFormat, "format", "yaml", "output format for API responses: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	// Build the api command tree from the endpoint registry so the HTTP
	// routes and CLI commands stay in sync.
	registry := api.NewRegistry()
	for _, ep := range endpoints.All() {
		registry.Register(ep)
	}
	rootCmd.AddCommand(registry.BuildCommands(getServerURL))

	rootCmd.AddCommand(versionCmd)
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}
