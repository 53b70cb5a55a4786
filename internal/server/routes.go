package server

import "github.com/labstack/echo/v4"

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	api := e.Group("/api")
	api.GET("/claims", s.ListClaimTrees)
	api.GET("/claims/interactions", s.ListInteractions)
	api.GET("/claims/:id", s.ClaimDetail)
	api.GET("/narratives", s.ListNarratives)
	api.GET("/narratives/:id", s.NarrativeDetail)

	metrics := e.Group("/metrics")
	metrics.GET("/price/:symbol", s.Price)
	metrics.GET("/prices", s.Prices)
	metrics.GET("/daily-new-addresses", s.DailyNewAddresses)
	metrics.GET("/github/:owner/:repo", s.GitHubActivity)
}
