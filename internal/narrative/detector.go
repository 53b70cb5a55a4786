// Package narrative tracks market narratives and ranks them by alpha
// potential: capital flows, regime alignment, and lifecycle stage, scored
// before consensus pricing sets in.
package narrative

import (
	"strings"
	"time"

	"github.com/narrativelab/macrograph/internal/model"
)

// Detector tracks narratives and classifies their lifecycle stage and regime
// alignment from capital and attention dynamics.
type Detector struct {
	narratives map[string]*model.Narrative
	order      []string
	regime     model.RegimeType
}

// NewDetector creates a detector with no tracked narratives.
func NewDetector() *Detector {
	return &Detector{
		narratives: make(map[string]*model.Narrative),
		regime:     model.RegimeStability,
	}
}

// SetRegime sets the current market regime.
func (d *Detector) SetRegime(regime model.RegimeType) {
	d.regime = regime
}

// Add adds or replaces a narrative.
func (d *Detector) Add(n *model.Narrative) {
	if _, exists := d.narratives[n.ID]; !exists {
		d.order = append(d.order, n.ID)
	}
	d.narratives[n.ID] = n
}

// Get returns a narrative by ID, or nil.
func (d *Detector) Get(id string) *model.Narrative {
	return d.narratives[id]
}

// All returns every tracked narrative in insertion order.
func (d *Detector) All() []*model.Narrative {
	out := make([]*model.Narrative, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.narratives[id])
	}
	return out
}

// AddCapitalFlow appends a flow observation to a tracked narrative.
func (d *Detector) AddCapitalFlow(narrativeID string, flow model.CapitalFlow) {
	n := d.narratives[narrativeID]
	if n == nil {
		return
	}
	n.CapitalFlows = append(n.CapitalFlows, flow)
	n.UpdatedAt = time.Now()
}

// DetectLifecycleStage classifies a narrative from capital velocity (rate of
// flow change), attention velocity, and time since formation.
func (d *Detector) DetectLifecycleStage(n *model.Narrative, capitalVelocity, attentionVelocity, timeActiveHours float64) model.LifecycleStage {
	netFlow := n.NetCapitalFlow(24)

	switch {
	// Formation: young, little capital, positive velocity.
	case timeActiveHours < 24 && netFlow < 1_000_000 && capitalVelocity > 0:
		return model.StageFormation
	// Acceleration: flows and attention both climbing.
	case capitalVelocity > 0.5 && attentionVelocity > 0.3 && netFlow > 0:
		return model.StageAcceleration
	// Maturity: peak capital, velocity flattening.
	case netFlow > 10_000_000 && capitalVelocity < 0.2 && capitalVelocity > -0.2:
		return model.StageMaturity
	// Saturation: high capital, velocity turning negative.
	case netFlow > 10_000_000 && capitalVelocity < 0:
		return model.StageSaturation
	// Decay: capital leaving.
	case netFlow < 0 && capitalVelocity < -0.3:
		return model.StageDecay
	default:
		return model.StageAcceleration
	}
}

// regimeTagAffinity maps each regime to the tags that favor it and the scores
// applied when tags match or not. Historical correlation analysis would
// replace this table in production.
var regimeTagAffinity = []struct {
	regime    model.RegimeType
	tags      []string
	matched   float64
	unmatched float64
}{
	{model.RegimeExpansion, []string{"growth", "tech", "innovation", "expansion"}, 0.8, 0.4},
	{model.RegimeRecession, []string{"defensive", "value", "quality", "safe-haven"}, 0.8, 0.3},
	{model.RegimeInflation, []string{"commodities", "real-estate", "pricing-power"}, 0.8, 0.4},
	{model.RegimeDeflation, []string{"bonds", "cash", "treasuries", "quality"}, 0.7, 0.3},
	{model.RegimeVolatility, []string{"hedge", "options", "volatility", "protection"}, 0.9, 0.3},
	{model.RegimeStability, []string{"momentum", "trend", "growth"}, 0.7, 0.5},
}

// RegimeAlignment scores how well a narrative fits each economic regime.
// When historical performance data is supplied it is used directly; otherwise
// alignment falls back to the tag heuristic.
func (d *Detector) RegimeAlignment(n *model.Narrative, historical map[model.RegimeType]float64) map[model.RegimeType]float64 {
	if historical != nil {
		return historical
	}

	tags := make(map[string]bool, len(n.Tags))
	for _, tag := range n.Tags {
		tags[strings.ToLower(tag)] = true
	}

	alignment := make(map[model.RegimeType]float64, len(regimeTagAffinity))
	for _, affinity := range regimeTagAffinity {
		score := affinity.unmatched
		for _, tag := range affinity.tags {
			if tags[tag] {
				score = affinity.matched
				break
			}
		}
		alignment[affinity.regime] = score
	}
	return alignment
}

// Update refreshes a narrative's lifecycle stage and regime alignment.
func (d *Detector) Update(n *model.Narrative, capitalVelocity, attentionVelocity, timeActiveHours float64) {
	n.LifecycleStage = d.DetectLifecycleStage(n, capitalVelocity, attentionVelocity, timeActiveHours)
	n.RegimeAlignment = d.RegimeAlignment(n, nil)
	n.UpdatedAt = time.Now()
}
