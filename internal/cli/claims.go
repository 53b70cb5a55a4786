package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/narrativelab/macrograph/internal/claims"
	"github.com/narrativelab/macrograph/internal/model"
	"github.com/narrativelab/macrograph/internal/seed"
)

var claimsShowInteractions bool

// claimsCmd represents the claims command
var claimsCmd = &cobra.Command{
	Use:   "claims",
	Short: "Print the seeded claim trees and their influence scores",
	Long: `Print every claim tree, highest influence first, with each claim's
tier, influence score, and related assets. With --interactions, also
list assets where independent trees collide.

Example:
  macrograph claims
  macrograph claims --interactions`,
	RunE: runClaims,
}

func init() {
	rootCmd.AddCommand(claimsCmd)

	claimsCmd.Flags().BoolVar(&claimsShowInteractions, "interactions", false, "also print cross-tree interactions")
}

func runClaims(cmd *cobra.Command, args []string) error {
	graph := seed.ClaimGraph()

	roots := graph.Roots()
	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].InfluenceScore > roots[j].InfluenceScore
	})

	for _, root := range roots {
		printClaimTree(graph, root, 0)
		fmt.Println()
	}

	if claimsShowInteractions {
		printInteractions(graph.FindCrossTreeInteractions())
	}
	return nil
}

func printClaimTree(g *claims.Graph, c *model.Claim, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s[%s] %s (%.1f)\n", indent, c.Tier, c.Text, c.InfluenceScore)
	if len(c.RelatedAssets) > 0 {
		fmt.Printf("%s  assets: %s\n", indent, strings.Join(c.RelatedAssets, ", "))
	}
	for _, child := range g.Children(c.ID) {
		printClaimTree(g, child, depth+1)
	}
}

func printInteractions(interactions []model.CrossTreeInteraction) {
	if len(interactions) == 0 {
		fmt.Println("No cross-tree interactions detected.")
		return
	}
	fmt.Printf("Cross-tree interactions (%d):\n", len(interactions))
	for _, in := range interactions {
		fmt.Printf("  %s: %s\n", in.Asset, in.Description)
	}
}
