package model

import "time"

// RegimeType identifies an economic regime that influences narrative
// effectiveness.
type RegimeType string

const (
	RegimeExpansion  RegimeType = "expansion"  // Economic growth, rising markets
	RegimeRecession  RegimeType = "recession"  // Economic contraction, risk-off
	RegimeInflation  RegimeType = "inflation"  // Rising prices, monetary tightening
	RegimeDeflation  RegimeType = "deflation"  // Falling prices, deleveraging
	RegimeVolatility RegimeType = "volatility" // High uncertainty, regime transition
	RegimeStability  RegimeType = "stability"  // Low volatility, established trends
)

// RegimeTypes lists all regimes in a stable order.
func RegimeTypes() []RegimeType {
	return []RegimeType{
		RegimeExpansion,
		RegimeRecession,
		RegimeInflation,
		RegimeDeflation,
		RegimeVolatility,
		RegimeStability,
	}
}

// LifecycleStage classifies where a narrative sits between formation and
// saturation.
type LifecycleStage string

const (
	StageFormation    LifecycleStage = "formation"    // Early stage, pre-consensus
	StageAcceleration LifecycleStage = "acceleration" // Growing momentum, capital influx
	StageMaturity     LifecycleStage = "maturity"     // Peak attention, maximum capital
	StageSaturation   LifecycleStage = "saturation"   // Consensus pricing, diminishing returns
	StageDecay        LifecycleStage = "decay"        // Narrative breakdown, capital outflow
)

// CapitalFlow is one observation of capital movement related to a narrative.
type CapitalFlow struct {
	NarrativeID string    `json:"narrative_id"`
	Timestamp   time.Time `json:"timestamp"`
	Inflow      float64   `json:"inflow"`
	Outflow     float64   `json:"outflow"`
	NetFlow     float64   `json:"net_flow"`
	Volume      float64   `json:"volume"`
	Sources     []string  `json:"sources,omitempty"` // retail, institutional, etc.
}

// FlowMomentum returns net flow relative to volume, or 0 when there was no
// volume.
func (f CapitalFlow) FlowMomentum() float64 {
	if f.Volume == 0 {
		return 0
	}
	return f.NetFlow / f.Volume
}

// Narrative is a financial market narrative tracked by the detector.
type Narrative struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	LifecycleStage  LifecycleStage         `json:"lifecycle_stage"`
	RegimeAlignment map[RegimeType]float64 `json:"regime_alignment"`
	CapitalFlows    []CapitalFlow          `json:"capital_flows,omitempty"`

	Tags           []string `json:"tags,omitempty"`
	RelatedAssets  []string `json:"related_assets,omitempty"`
	SentimentScore float64  `json:"sentiment_score"` // -1 to 1
	AttentionScore float64  `json:"attention_score"` // 0 to 1

	// Derived by the ranker.
	AlphaScore float64 `json:"alpha_score"` // 0 to 100
	Rank       int     `json:"rank"`
}

// NetCapitalFlow sums net flows over the most recent observations, up to
// lookback entries.
func (n *Narrative) NetCapitalFlow(lookback int) float64 {
	if len(n.CapitalFlows) == 0 {
		return 0
	}
	flows := n.CapitalFlows
	if lookback > 0 && len(flows) > lookback {
		flows = flows[len(flows)-lookback:]
	}
	var total float64
	for _, f := range flows {
		total += f.NetFlow
	}
	return total
}

// FlowMomentum returns the momentum of the most recent flow observation.
func (n *Narrative) FlowMomentum() float64 {
	if len(n.CapitalFlows) == 0 {
		return 0
	}
	return n.CapitalFlows[len(n.CapitalFlows)-1].FlowMomentum()
}

// IsEarlyStage reports whether the narrative is still pre-consensus.
func (n *Narrative) IsEarlyStage() bool {
	return n.LifecycleStage == StageFormation || n.LifecycleStage == StageAcceleration
}

// RegimeScore returns the alignment score for the given regime, 0 when
// unknown.
func (n *Narrative) RegimeScore(regime RegimeType) float64 {
	return n.RegimeAlignment[regime]
}
