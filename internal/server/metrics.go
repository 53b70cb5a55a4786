package server

import (
	"net/http"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/narrativelab/macrograph/internal/connector"
)

// Price proxies a Binance futures 24h ticker for one symbol.
func (s *Server) Price(c echo.Context) error {
	symbol := c.Param("symbol")
	data, err := s.binance.Ticker24h(c.Request().Context(), symbol)
	if err != nil {
		s.logger.Error("ticker fetch failed", "symbol", symbol, "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, data)
}

// Prices fetches tickers for a comma-separated list of symbols concurrently.
func (s *Server) Prices(c echo.Context) error {
	raw := c.QueryParam("symbols")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "symbols query parameter is required"})
	}

	var symbols []string
	for _, sym := range strings.Split(raw, ",") {
		if sym = strings.TrimSpace(sym); sym != "" {
			symbols = append(symbols, sym)
		}
	}

	results := make(map[string]any, len(symbols))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.SetLimit(4)
	for _, symbol := range symbols {
		g.Go(func() error {
			data, err := s.binance.Ticker24h(ctx, symbol)
			if err != nil {
				return err
			}
			mu.Lock()
			results[strings.ToUpper(symbol)] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("batch ticker fetch failed", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, results)
}

// DailyNewAddresses proxies the Etherscan daily new address series.
func (s *Server) DailyNewAddresses(c echo.Context) error {
	opts := connector.DailyNewAddressOptions{
		ChainID:   c.QueryParam("chainid"),
		StartDate: c.QueryParam("startdate"),
		EndDate:   c.QueryParam("enddate"),
		Sort:      c.QueryParam("sort"),
	}
	data, err := s.etherscan.DailyNewAddresses(c.Request().Context(), opts)
	if err != nil {
		s.logger.Error("etherscan fetch failed", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, data)
}

// GitHubActivity proxies the weekly commit activity for a repository.
func (s *Server) GitHubActivity(c echo.Context) error {
	owner, repo := c.Param("owner"), c.Param("repo")
	data, err := s.github.WeeklyCommitActivity(c.Request().Context(), owner, repo)
	if err != nil {
		s.logger.Error("github fetch failed", "owner", owner, "repo", repo, "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, data)
}
