// Package claims maintains a directed acyclic graph of economic propositions
// and ranks them by influence magnitude: the degree to which each claim
// propagates consequences through the financial system.
package claims

import (
	"math"

	"github.com/narrativelab/macrograph/internal/model"
)

// Graph manages a DAG of economic claims and computes influence scores.
//
// Influence combines causal breadth (descendant count) with depth (root
// claims rank highest). As the dataset grows this can graduate to weighted
// PageRank; the scoring step is kept separate from the traversal primitives
// so it can be swapped without touching them.
//
// A Graph is not safe for concurrent mutation. The expected usage is: add all
// claims, add all edges, run ComputeInfluence once, then serve read-only
// queries. Callers that must rebuild while serving should build a fresh Graph
// and swap the reference.
type Graph struct {
	claims map[string]*model.Claim
	order  []string // insertion order, keeps iteration deterministic
}

// New returns an empty claim graph.
func New() *Graph {
	return &Graph{claims: make(map[string]*model.Claim)}
}

// Len returns the number of claims in the graph.
func (g *Graph) Len() int {
	return len(g.claims)
}

// AddClaim inserts a claim, keyed by its ID. An existing claim with the same
// ID is overwritten in place.
func (g *Graph) AddClaim(c *model.Claim) {
	if _, exists := g.claims[c.ID]; !exists {
		g.order = append(g.order, c.ID)
	}
	g.claims[c.ID] = c
}

// AddEdge adds a causal edge from parent to child and reports whether the
// edge was created. Unknown IDs make it a no-op returning false, so callers
// can add edges in any order relative to claim insertion; adding an existing
// edge again changes nothing. The direction is stored on the child and
// overwrites whatever a previously added incoming edge set.
func (g *Graph) AddEdge(parentID, childID string, direction model.CausalDirection) bool {
	parent := g.claims[parentID]
	child := g.claims[childID]
	if parent == nil || child == nil {
		return false
	}
	if !contains(parent.ChildIDs, childID) {
		parent.ChildIDs = append(parent.ChildIDs, childID)
	}
	if !contains(child.ParentIDs, parentID) {
		child.ParentIDs = append(child.ParentIDs, parentID)
	}
	child.CausalDirection = direction
	return true
}

// Get returns the claim with the given ID, or nil.
func (g *Graph) Get(id string) *model.Claim {
	return g.claims[id]
}

// Roots returns all claims without parents, in insertion order.
func (g *Graph) Roots() []*model.Claim {
	var roots []*model.Claim
	for _, id := range g.order {
		if c := g.claims[id]; len(c.ParentIDs) == 0 {
			roots = append(roots, c)
		}
	}
	return roots
}

// Children resolves a claim's direct children, dropping dangling IDs. Unknown
// claims yield an empty result.
func (g *Graph) Children(id string) []*model.Claim {
	claim := g.claims[id]
	if claim == nil {
		return nil
	}
	return g.resolve(claim.ChildIDs)
}

// Parents resolves a claim's direct parents, dropping dangling IDs. Unknown
// claims yield an empty result.
func (g *Graph) Parents(id string) []*model.Claim {
	claim := g.claims[id]
	if claim == nil {
		return nil
	}
	return g.resolve(claim.ParentIDs)
}

func (g *Graph) resolve(ids []string) []*model.Claim {
	var out []*model.Claim
	for _, id := range ids {
		if c := g.claims[id]; c != nil {
			out = append(out, c)
		}
	}
	return out
}

// SubtreeIDs returns the IDs of every descendant reachable from the claim,
// excluding the claim itself. The BFS tracks visited nodes, so a claim
// reachable over two paths is counted once and a cycle cannot loop forever.
func (g *Graph) SubtreeIDs(id string) map[string]struct{} {
	visited := make(map[string]struct{})
	claim := g.claims[id]
	if claim == nil {
		return visited
	}
	queue := append([]string(nil), claim.ChildIDs...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}
		node := g.claims[current]
		if node == nil {
			continue
		}
		for _, cid := range node.ChildIDs {
			if _, seen := visited[cid]; !seen {
				queue = append(queue, cid)
			}
		}
	}
	return visited
}

// ComputeInfluence recomputes depth, descendant count, influence score and
// tier for every claim. It must be re-run after any structural change; on an
// empty graph it is a no-op.
//
// Depth is the BFS shortest distance from the nearest root. A claim reachable
// from two roots keeps the smaller distance because that frontier dequeues it
// first. Scoring blends depth and breadth equally:
//
//	depthScore   = 1 / (1 + depth)
//	breadthScore = descendants / maxDescendants
//	influence    = round(100 * (0.5*depthScore + 0.5*breadthScore), 1)
//
// Tiers follow depth: 0 is tier 1, 1-2 is tier 2, 3+ is tier 3.
func (g *Graph) ComputeInfluence() {
	if len(g.claims) == 0 {
		return
	}

	for _, c := range g.claims {
		c.Depth = 0
		c.DescendantCount = 0
	}

	// Multi-source BFS seeded from every root at depth 0. First visit wins,
	// which yields the minimum root distance.
	type frontier struct {
		id    string
		depth int
	}
	visited := make(map[string]struct{})
	var queue []frontier
	for _, root := range g.Roots() {
		queue = append(queue, frontier{root.ID, 0})
	}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if _, seen := visited[f.id]; seen {
			continue
		}
		visited[f.id] = struct{}{}
		node := g.claims[f.id]
		if node == nil {
			continue
		}
		node.Depth = f.depth
		for _, cid := range node.ChildIDs {
			if _, seen := visited[cid]; !seen {
				queue = append(queue, frontier{cid, f.depth + 1})
			}
		}
	}

	maxDesc := 0
	for _, c := range g.claims {
		c.DescendantCount = len(g.SubtreeIDs(c.ID))
		if c.DescendantCount > maxDesc {
			maxDesc = c.DescendantCount
		}
	}
	if maxDesc == 0 {
		maxDesc = 1
	}

	for _, c := range g.claims {
		depthScore := 1.0 / (1.0 + float64(c.Depth))
		breadthScore := float64(c.DescendantCount) / float64(maxDesc)
		c.InfluenceScore = round1((0.5*depthScore + 0.5*breadthScore) * 100)
		c.Tier = tierForDepth(c.Depth)
	}
}

func tierForDepth(depth int) model.ClaimTier {
	switch {
	case depth == 0:
		return model.TierRoot
	case depth <= 2:
		return model.TierConsequence
	default:
		return model.TierEffect
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
