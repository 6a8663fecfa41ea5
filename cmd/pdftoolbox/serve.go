package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/config"
	"github.com/pdftoolbox/pdftoolbox/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pdftoolbox server",
	Long: `Start the pdftoolbox HTTP server.

The server is stateless: uploaded PDFs are processed in memory and the
result is streamed back as a download. Nothing is written to disk.

The server provides:
  - /health            - Server health check
  - /api/merge         - Merge multiple PDFs into one
  - /api/delete-pages  - Delete pages from a PDF
  - /api/extract-pages - Extract pages into a new PDF

Examples:
  pdftoolbox serve                    # Start on default port 8080
  pdftoolbox serve --port 3000        # Start on custom port
  pdftoolbox serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		mgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		mgr.WatchConfig()

		host, port := listenAddress(mgr.Get().Server, serveHost, servePort,
			cmd.Flags().Changed("host"), cmd.Flags().Changed("port"))

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			ConfigManager: mgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

// listenAddress resolves where the server binds: an explicitly set flag wins,
// otherwise the config file value, otherwise the flag default.
func listenAddress(cfg config.ServerCfg, flagHost, flagPort string, hostSet, portSet bool) (string, string) {
	host, port := flagHost, flagPort
	if !hostSet && cfg.Host != "" {
		host = cfg.Host
	}
	if !portSet && cfg.Port != "" {
		port = cfg.Port
	}
	return host, port
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
