package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/narrativelab/macrograph/internal/server"
)

var servePort string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serve the claim graph, narrative rankings, and live market metrics
over a JSON HTTP API.

Endpoints:
  GET /health
  GET /api/claims
  GET /api/claims/:id
  GET /api/claims/interactions
  GET /api/narratives
  GET /api/narratives/:id
  GET /metrics/price/:symbol
  GET /metrics/prices?symbols=a,b,c
  GET /metrics/daily-new-addresses
  GET /metrics/github/:owner/:repo

Example:
  macrograph serve
  macrograph serve --port 9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Secrets such as ETHERSCAN_API_KEY may live in a local .env file.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Server.Port = servePort
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "macrograph",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return server.New(cfg, logger).Run()
}
