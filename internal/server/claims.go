package server

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/narrativelab/macrograph/internal/claims"
)

// ListClaimTrees returns the full tree of every root claim, highest influence
// first.
func (s *Server) ListClaimTrees(c echo.Context) error {
	roots := s.graph.Roots()
	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].InfluenceScore > roots[j].InfluenceScore
	})

	trees := make([]*claims.TreeNode, 0, len(roots))
	for _, root := range roots {
		if tree := s.graph.Tree(root.ID); tree != nil {
			trees = append(trees, tree)
		}
	}
	return c.JSON(http.StatusOK, trees)
}

type claimDetailResponse struct {
	Claim    claims.ClaimView   `json:"claim"`
	Parents  []claims.ClaimView `json:"parents"`
	Children []claims.ClaimView `json:"children"`
	Subtree  *claims.TreeNode   `json:"subtree"`
}

// ClaimDetail returns one claim with its direct neighbors and nested subtree.
func (s *Server) ClaimDetail(c echo.Context) error {
	id := c.Param("id")
	claim := s.graph.Get(id)
	if claim == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "claim not found"})
	}

	parents := make([]claims.ClaimView, 0)
	for _, p := range s.graph.Parents(id) {
		parents = append(parents, claims.View(p))
	}
	children := make([]claims.ClaimView, 0)
	for _, ch := range s.graph.Children(id) {
		children = append(children, claims.View(ch))
	}

	return c.JSON(http.StatusOK, claimDetailResponse{
		Claim:    claims.View(claim),
		Parents:  parents,
		Children: children,
		Subtree:  s.graph.Tree(id),
	})
}

// ListInteractions returns the current cross-tree interactions, derived
// fresh on every request.
func (s *Server) ListInteractions(c echo.Context) error {
	return c.JSON(http.StatusOK, s.graph.FindCrossTreeInteractions())
}
