package claims

import (
	"fmt"

	"github.com/narrativelab/macrograph/internal/model"
)

type assetEntry struct {
	claimID string
	rootID  string
}

// FindCrossTreeInteractions finds assets that appear in the subtrees of
// different root claims. These are the points where independent macro forces
// create potentially contradictory pressures on the same asset, the points of
// maximum uncertainty and opportunity.
//
// One interaction is emitted per asset per unordered pair of distinct roots,
// using the first claim encountered for each root as its representative.
// Assets referenced only within a single root's subtree produce nothing. The
// result depends solely on structure and asset lists; ComputeInfluence need
// not have run. Results are derived fresh on every call.
func (g *Graph) FindCrossTreeInteractions() []model.CrossTreeInteraction {
	// asset -> entries, in insertion order for deterministic output.
	entries := make(map[string][]assetEntry)
	var assetOrder []string

	for _, root := range g.Roots() {
		subtree := g.SubtreeIDs(root.ID)
		subtree[root.ID] = struct{}{}
		for _, cid := range g.order {
			if _, ok := subtree[cid]; !ok {
				continue
			}
			claim := g.claims[cid]
			for _, asset := range claim.RelatedAssets {
				if _, seen := entries[asset]; !seen {
					assetOrder = append(assetOrder, asset)
				}
				entries[asset] = append(entries[asset], assetEntry{claimID: cid, rootID: root.ID})
			}
		}
	}

	var interactions []model.CrossTreeInteraction
	for _, asset := range assetOrder {
		// Group by owning root, keeping the first claim seen per root.
		firstClaim := make(map[string]string)
		var rootOrder []string
		for _, e := range entries[asset] {
			if _, seen := firstClaim[e.rootID]; !seen {
				firstClaim[e.rootID] = e.claimID
				rootOrder = append(rootOrder, e.rootID)
			}
		}
		for i := 0; i < len(rootOrder); i++ {
			for j := i + 1; j < len(rootOrder); j++ {
				interactions = append(interactions, g.newInteraction(asset, rootOrder[i], rootOrder[j], firstClaim))
			}
		}
	}
	return interactions
}

func (g *Graph) newInteraction(asset, rootA, rootB string, firstClaim map[string]string) model.CrossTreeInteraction {
	claimA := g.claims[firstClaim[rootA]]
	claimB := g.claims[firstClaim[rootB]]
	return model.CrossTreeInteraction{
		Asset:        asset,
		ClaimAID:     claimA.ID,
		ClaimARootID: rootA,
		ClaimAText:   claimA.Text,
		ClaimBID:     claimB.ID,
		ClaimBRootID: rootB,
		ClaimBText:   claimB.Text,
		// Signal fields stay blank until classification logic exists.
		Description: fmt.Sprintf("%q and %q both affect %s through different channels.",
			g.claims[rootA].Text, g.claims[rootB].Text, asset),
	}
}
