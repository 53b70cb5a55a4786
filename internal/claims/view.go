package claims

import "github.com/narrativelab/macrograph/internal/model"

// ClaimView is the flat, display-ready projection of a claim.
type ClaimView struct {
	ID               string                `json:"id"`
	Text             string                `json:"text"`
	ParentIDs        []string              `json:"parent_ids"`
	ChildIDs         []string              `json:"child_ids"`
	AssetClasses     []string              `json:"asset_classes"`
	RelatedAssets    []string              `json:"related_assets"`
	Tier             model.ClaimTier       `json:"tier"`
	InfluenceScore   float64               `json:"influence_score"`
	DescendantCount  int                   `json:"descendant_count"`
	Depth            int                   `json:"depth"`
	PersistenceDays  int                   `json:"persistence_days"`
	ExpectedDuration string                `json:"expected_duration"`
	Trend            string                `json:"trend"`
	CausalDirection  model.CausalDirection `json:"causal_direction"`
}

// TreeNode is a claim with its descendants nested beneath it.
type TreeNode struct {
	ClaimView
	Children []*TreeNode `json:"children"`
}

// View projects a claim into its flat display form.
func View(c *model.Claim) ClaimView {
	return ClaimView{
		ID:               c.ID,
		Text:             c.Text,
		ParentIDs:        c.ParentIDs,
		ChildIDs:         c.ChildIDs,
		AssetClasses:     c.AssetClasses,
		RelatedAssets:    c.RelatedAssets,
		Tier:             c.Tier,
		InfluenceScore:   c.InfluenceScore,
		DescendantCount:  c.DescendantCount,
		Depth:            c.Depth,
		PersistenceDays:  c.PersistenceDays,
		ExpectedDuration: c.ExpectedDuration,
		Trend:            c.Trend,
		CausalDirection:  c.CausalDirection,
	}
}

// Tree recursively builds the nested view of a claim and its full descendant
// tree, or nil for an unknown ID.
//
// Unlike the BFS queries this recursion carries no visited set; it trusts the
// forest assumption and will not terminate on a graph with a reachable cycle.
func (g *Graph) Tree(id string) *TreeNode {
	claim := g.claims[id]
	if claim == nil {
		return nil
	}
	node := &TreeNode{ClaimView: View(claim), Children: []*TreeNode{}}
	for _, cid := range claim.ChildIDs {
		if child := g.Tree(cid); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}
