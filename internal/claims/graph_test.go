package claims

import (
	"testing"

	"github.com/narrativelab/macrograph/internal/model"
)

func newClaim(id string, assets ...string) *model.Claim {
	return &model.Claim{
		ID:            id,
		Text:          "claim " + id,
		RelatedAssets: assets,
	}
}

// buildScenario creates: root -> m -> {leaf1, leaf2}
func buildScenario() *Graph {
	g := New()
	g.AddClaim(newClaim("root"))
	g.AddClaim(newClaim("m"))
	g.AddClaim(newClaim("leaf1"))
	g.AddClaim(newClaim("leaf2"))
	g.AddEdge("root", "m", model.DirectionEstablished)
	g.AddEdge("m", "leaf1", model.DirectionEstablished)
	g.AddEdge("m", "leaf2", model.DirectionEstablished)
	return g
}

func TestAddEdge_Reciprocal(t *testing.T) {
	g := New()
	g.AddClaim(newClaim("p"))
	g.AddClaim(newClaim("c"))

	if !g.AddEdge("p", "c", model.DirectionEstablished) {
		t.Fatal("expected AddEdge to report success")
	}

	p, c := g.Get("p"), g.Get("c")
	if len(p.ChildIDs) != 1 || p.ChildIDs[0] != "c" {
		t.Errorf("expected p.ChildIDs == [c], got %v", p.ChildIDs)
	}
	if len(c.ParentIDs) != 1 || c.ParentIDs[0] != "p" {
		t.Errorf("expected c.ParentIDs == [p], got %v", c.ParentIDs)
	}
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := New()
	g.AddClaim(newClaim("p"))
	g.AddClaim(newClaim("c"))

	g.AddEdge("p", "c", model.DirectionEstablished)
	g.AddEdge("p", "c", model.DirectionEstablished)

	if len(g.Get("p").ChildIDs) != 1 {
		t.Errorf("expected one child after duplicate edge, got %v", g.Get("p").ChildIDs)
	}
	if len(g.Get("c").ParentIDs) != 1 {
		t.Errorf("expected one parent after duplicate edge, got %v", g.Get("c").ParentIDs)
	}
}

func TestAddEdge_UnknownIDLeavesGraphUnchanged(t *testing.T) {
	g := New()
	g.AddClaim(newClaim("p"))

	if g.AddEdge("p", "missing", model.DirectionEstablished) {
		t.Error("expected AddEdge with unknown child to report failure")
	}
	if g.AddEdge("missing", "p", model.DirectionEstablished) {
		t.Error("expected AddEdge with unknown parent to report failure")
	}
	p := g.Get("p")
	if len(p.ChildIDs) != 0 || len(p.ParentIDs) != 0 {
		t.Errorf("expected no partial edge, got children=%v parents=%v", p.ChildIDs, p.ParentIDs)
	}
}

func TestAddEdge_DirectionOverwrittenByLastEdge(t *testing.T) {
	g := New()
	g.AddClaim(newClaim("a"))
	g.AddClaim(newClaim("b"))
	g.AddClaim(newClaim("c"))

	g.AddEdge("a", "c", model.DirectionEstablished)
	g.AddEdge("b", "c", model.DirectionDisputed)

	if got := g.Get("c").CausalDirection; got != model.DirectionDisputed {
		t.Errorf("expected direction of last added edge, got %q", got)
	}
}

func TestAddClaim_OverwritesSilently(t *testing.T) {
	g := New()
	g.AddClaim(newClaim("a"))
	replacement := newClaim("a")
	replacement.Text = "updated"
	g.AddClaim(replacement)

	if g.Len() != 1 {
		t.Fatalf("expected 1 claim, got %d", g.Len())
	}
	if g.Get("a").Text != "updated" {
		t.Error("expected last writer to win")
	}
}

func TestRoots(t *testing.T) {
	g := buildScenario()
	roots := g.Roots()
	if len(roots) != 1 || roots[0].ID != "root" {
		t.Errorf("expected single root claim, got %v", roots)
	}
}

func TestQueries_UnknownID(t *testing.T) {
	g := buildScenario()
	if got := g.Children("nope"); len(got) != 0 {
		t.Errorf("expected no children for unknown id, got %v", got)
	}
	if got := g.Parents("nope"); len(got) != 0 {
		t.Errorf("expected no parents for unknown id, got %v", got)
	}
	if got := g.SubtreeIDs("nope"); len(got) != 0 {
		t.Errorf("expected empty subtree for unknown id, got %v", got)
	}
	if g.Get("nope") != nil {
		t.Error("expected nil for unknown claim")
	}
}

func TestSubtreeIDs_ExcludesSelf(t *testing.T) {
	g := buildScenario()
	subtree := g.SubtreeIDs("root")
	if _, ok := subtree["root"]; ok {
		t.Error("subtree must not include the claim itself")
	}
	if len(subtree) != 3 {
		t.Errorf("expected 3 descendants of root, got %d", len(subtree))
	}
}

func TestSubtreeIDs_DiamondCountedOnce(t *testing.T) {
	g := New()
	g.AddClaim(newClaim("r"))
	g.AddClaim(newClaim("a"))
	g.AddClaim(newClaim("b"))
	g.AddClaim(newClaim("d"))
	g.AddEdge("r", "a", model.DirectionEstablished)
	g.AddEdge("r", "b", model.DirectionEstablished)
	g.AddEdge("a", "d", model.DirectionEstablished)
	g.AddEdge("b", "d", model.DirectionEstablished)

	subtree := g.SubtreeIDs("r")
	if len(subtree) != 3 {
		t.Errorf("expected {a, b, d}, got %v", subtree)
	}

	g.ComputeInfluence()
	if got := g.Get("d").Depth; got != 2 {
		t.Errorf("expected diamond bottom at depth 2, got %d", got)
	}
	if got := g.Get("r").DescendantCount; got != 3 {
		t.Errorf("expected diamond root to count 3 descendants, got %d", got)
	}
}

func TestComputeInfluence_DepthIsMinRootDistance(t *testing.T) {
	// Two roots reach "shared": r1 directly, r2 through a middle node. The
	// shorter path must win.
	g := New()
	g.AddClaim(newClaim("r1"))
	g.AddClaim(newClaim("r2"))
	g.AddClaim(newClaim("mid"))
	g.AddClaim(newClaim("shared"))
	g.AddEdge("r2", "mid", model.DirectionEstablished)
	g.AddEdge("mid", "shared", model.DirectionEstablished)
	g.AddEdge("r1", "shared", model.DirectionEstablished)

	g.ComputeInfluence()
	if got := g.Get("shared").Depth; got != 1 {
		t.Errorf("expected min distance from nearest root (1), got %d", got)
	}
}

func TestComputeInfluence_Scenario(t *testing.T) {
	g := buildScenario()
	g.ComputeInfluence()

	wantDepth := map[string]int{"root": 0, "m": 1, "leaf1": 2, "leaf2": 2}
	wantDesc := map[string]int{"root": 3, "m": 2, "leaf1": 0, "leaf2": 0}
	wantScore := map[string]float64{"root": 100.0, "m": 58.3, "leaf1": 16.7, "leaf2": 16.7}
	wantTier := map[string]model.ClaimTier{
		"root":  model.TierRoot,
		"m":     model.TierConsequence,
		"leaf1": model.TierConsequence,
		"leaf2": model.TierConsequence,
	}

	for id, want := range wantDepth {
		if got := g.Get(id).Depth; got != want {
			t.Errorf("%s: expected depth %d, got %d", id, want, got)
		}
	}
	for id, want := range wantDesc {
		if got := g.Get(id).DescendantCount; got != want {
			t.Errorf("%s: expected %d descendants, got %d", id, want, got)
		}
	}
	for id, want := range wantScore {
		if got := g.Get(id).InfluenceScore; got != want {
			t.Errorf("%s: expected influence %.1f, got %.1f", id, want, got)
		}
	}
	for id, want := range wantTier {
		if got := g.Get(id).Tier; got != want {
			t.Errorf("%s: expected %s, got %s", id, want, got)
		}
	}
}

func TestComputeInfluence_DescendantCountMatchesSubtree(t *testing.T) {
	g := buildScenario()
	g.ComputeInfluence()
	for _, id := range []string{"root", "m", "leaf1", "leaf2"} {
		if got, want := g.Get(id).DescendantCount, len(g.SubtreeIDs(id)); got != want {
			t.Errorf("%s: descendant count %d != subtree size %d", id, got, want)
		}
	}
}

func TestComputeInfluence_TierThree(t *testing.T) {
	g := New()
	ids := []string{"a", "b", "c", "d", "e"}
	for _, id := range ids {
		g.AddClaim(newClaim(id))
	}
	for i := 0; i+1 < len(ids); i++ {
		g.AddEdge(ids[i], ids[i+1], model.DirectionEstablished)
	}
	g.ComputeInfluence()

	if got := g.Get("d").Tier; got != model.TierEffect {
		t.Errorf("expected depth 3 to land in tier_3, got %s", got)
	}
	if got := g.Get("e").Tier; got != model.TierEffect {
		t.Errorf("expected depth 4 to land in tier_3, got %s", got)
	}
}

func TestComputeInfluence_AllLeaves(t *testing.T) {
	// Every claim a root with no descendants: maxDesc floors to 1 and
	// everyone scores 50.0 (full depth score, zero breadth).
	g := New()
	g.AddClaim(newClaim("x"))
	g.AddClaim(newClaim("y"))
	g.ComputeInfluence()

	for _, id := range []string{"x", "y"} {
		if got := g.Get(id).InfluenceScore; got != 50.0 {
			t.Errorf("%s: expected 50.0, got %.1f", id, got)
		}
	}
}

func TestComputeInfluence_EmptyGraph(t *testing.T) {
	g := New()
	g.ComputeInfluence() // must not panic
	if len(g.Roots()) != 0 {
		t.Error("expected no roots in empty graph")
	}
}

func TestComputeInfluence_ScoreBounds(t *testing.T) {
	g := buildScenario()
	g.ComputeInfluence()
	for _, id := range []string{"root", "m", "leaf1", "leaf2"} {
		c := g.Get(id)
		if c.InfluenceScore < 0 || c.InfluenceScore > 100 {
			t.Errorf("%s: influence %.1f out of [0, 100]", id, c.InfluenceScore)
		}
		if c.Depth < 0 {
			t.Errorf("%s: negative depth %d", id, c.Depth)
		}
	}
}
