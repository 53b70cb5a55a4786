// Package server exposes the claim graph, narrative rankings, and metrics
// connectors over a JSON HTTP API.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/narrativelab/macrograph/internal/claims"
	"github.com/narrativelab/macrograph/internal/connector"
	"github.com/narrativelab/macrograph/internal/model"
	"github.com/narrativelab/macrograph/internal/narrative"
	"github.com/narrativelab/macrograph/internal/seed"
)

// Server bundles the read-only state served over HTTP. The claim graph and
// narrative rankings are built once at construction; requests never mutate
// them.
type Server struct {
	config *model.Config
	logger *log.Logger

	graph        *claims.Graph
	detector     *narrative.Detector
	ranker       *narrative.Ranker
	ranked       []*model.Narrative
	explanations map[string]model.RankExplanation

	binance   *connector.Binance
	etherscan *connector.Etherscan
	github    *connector.GitHub
}

// New seeds the claim graph and narratives and wires the connectors.
func New(cfg *model.Config, logger *log.Logger) *Server {
	graph := seed.ClaimGraph()

	detector := narrative.NewDetector()
	detector.SetRegime(cfg.Regime)
	ranker := narrative.NewRanker(cfg.Regime)
	ranked := ranker.Rank(seed.Narratives(detector), narrative.RankOptions{})

	explanations := make(map[string]model.RankExplanation, len(ranked))
	for _, n := range ranked {
		explanations[n.ID] = ranker.Explain(n)
	}

	client := connector.NewClient(cfg)
	return &Server{
		config:       cfg,
		logger:       logger,
		graph:        graph,
		detector:     detector,
		ranker:       ranker,
		ranked:       ranked,
		explanations: explanations,
		binance:      connector.NewBinance(client, cfg.Connectors.BinanceBaseURL),
		etherscan:    connector.NewEtherscan(client, cfg.Connectors.EtherscanBaseURL, cfg.Connectors.EtherscanAPIKey),
		github:       connector.NewGitHub(client, cfg.Connectors.GitHubBaseURL),
	}
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	s.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "port", s.config.Server.Port,
			"claims", s.graph.Len(), "narratives", len(s.ranked))
		if err := e.Start(":" + s.config.Server.Port); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("shutdown", "err", err)
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
