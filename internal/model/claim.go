package model

import "time"

// Claim is a single economic proposition in the claim hierarchy. Claims form a
// directed acyclic graph where edges represent causal dependency; the
// structural and influence fields are owned by the claim graph and should not
// be written directly.
type Claim struct {
	ID   string `json:"id"`
	Text string `json:"text"` // One-sentence economic claim

	// Structural fields, mutated only through the graph's AddEdge.
	ParentIDs []string `json:"parent_ids"`
	ChildIDs  []string `json:"child_ids"`

	AssetClasses  []string `json:"asset_classes"`  // e.g. Rates, FX, Equities
	RelatedAssets []string `json:"related_assets"` // e.g. NVDA, EUR/USD

	// Influence metrics, written by the graph's ComputeInfluence.
	Tier            ClaimTier `json:"tier"`
	InfluenceScore  float64   `json:"influence_score"` // 0-100 scale
	DescendantCount int       `json:"descendant_count"`
	Depth           int       `json:"depth"` // 0 = root

	// Temporal properties, caller supplied.
	CreatedAt        time.Time `json:"created_at"`
	PersistenceDays  int       `json:"persistence_days"`  // How long this claim has been active
	ExpectedDuration string    `json:"expected_duration"` // e.g. "structural", "transient", "cyclical"
	Trend            string    `json:"trend"`             // "rising", "stable", "fading"

	// Direction of the most recently added incoming edge. A claim with
	// multiple parents only remembers the last one.
	CausalDirection CausalDirection `json:"causal_direction"`
}

// ClaimTier is an ordinal influence tier (avoids false precision of cardinal
// scores).
type ClaimTier string

const (
	TierRoot        ClaimTier = "tier_1" // Root-level macro drivers
	TierConsequence ClaimTier = "tier_2" // First/second-order consequences
	TierEffect      ClaimTier = "tier_3" // Downstream / observable effects
)

// CausalDirection states whether the causal link between two claims is
// established or disputed.
type CausalDirection string

const (
	DirectionEstablished CausalDirection = "established"
	DirectionDisputed    CausalDirection = "disputed"
)

// CrossTreeInteraction records an asset referenced from the subtrees of two
// different root claims: two independent macro forces pulling on the same
// instrument. Interactions are derived on every query and never stored.
type CrossTreeInteraction struct {
	Asset string `json:"asset"`

	ClaimAID     string `json:"claim_a_id"`
	ClaimARootID string `json:"claim_a_root_id"`
	ClaimAText   string `json:"claim_a_text"`
	ClaimASignal string `json:"claim_a_signal"` // reserved for future classification

	ClaimBID     string `json:"claim_b_id"`
	ClaimBRootID string `json:"claim_b_root_id"`
	ClaimBText   string `json:"claim_b_text"`
	ClaimBSignal string `json:"claim_b_signal"` // reserved for future classification

	Description string `json:"description"`
}
