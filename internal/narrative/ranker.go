package narrative

import (
	"fmt"
	"sort"
	"strings"

	"github.com/narrativelab/macrograph/internal/model"
)

// Component weights of the alpha score. Alpha exists in the early phase
// before consensus pricing, so lifecycle dominates.
const (
	weightLifecycle   = 0.40
	weightCapitalFlow = 0.30
	weightRegime      = 0.20
	weightMomentum    = 0.10

	// Net flow above this is treated as fully priced in.
	maxMeaningfulFlow = 100_000_000
)

var lifecycleScores = map[model.LifecycleStage]float64{
	model.StageFormation:    1.0, // highest alpha potential
	model.StageAcceleration: 0.8,
	model.StageMaturity:     0.4,
	model.StageSaturation:   0.1, // consensus pricing
	model.StageDecay:        0.0, // exit signal
}

// Ranker ranks narratives by alpha potential based on capital flows, regime
// alignment, and lifecycle stage.
type Ranker struct {
	regime model.RegimeType
}

// NewRanker creates a ranker scoring against the given regime.
func NewRanker(regime model.RegimeType) *Ranker {
	return &Ranker{regime: regime}
}

// SetRegime updates the regime used for alignment scoring.
func (r *Ranker) SetRegime(regime model.RegimeType) {
	r.regime = regime
}

func lifecycleScore(stage model.LifecycleStage) float64 {
	if score, ok := lifecycleScores[stage]; ok {
		return score
	}
	return 0.5
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AlphaScore calculates a narrative's alpha score on a 0-100 scale.
//
// Components: lifecycle stage (40%), net capital flow normalized against
// 100M (30%), regime alignment (20%), and flow momentum mapped from [-1, 1]
// onto [0, 1] (10%).
func (r *Ranker) AlphaScore(n *model.Narrative) float64 {
	lifecycle := lifecycleScore(n.LifecycleStage)
	flow := clamp01(n.NetCapitalFlow(24) / maxMeaningfulFlow)
	regime := n.RegimeScore(r.regime)
	momentum := clamp01((n.FlowMomentum() + 1) / 2)

	score := lifecycle*weightLifecycle +
		flow*weightCapitalFlow +
		regime*weightRegime +
		momentum*weightMomentum
	return score * 100
}

// RankOptions filter the ranked output.
type RankOptions struct {
	EarlyStageOnly bool
	MinAlphaScore  float64 // applied only when > 0
}

// Rank scores every narrative, filters by the options, sorts by alpha score
// descending, and assigns ranks starting at 1. The filtered ranking is
// returned; scores are written back onto the narratives.
func (r *Ranker) Rank(narratives []*model.Narrative, opts RankOptions) []*model.Narrative {
	for _, n := range narratives {
		n.AlphaScore = r.AlphaScore(n)
	}

	filtered := make([]*model.Narrative, 0, len(narratives))
	for _, n := range narratives {
		if opts.EarlyStageOnly && !n.IsEarlyStage() {
			continue
		}
		if opts.MinAlphaScore > 0 && n.AlphaScore < opts.MinAlphaScore {
			continue
		}
		filtered = append(filtered, n)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].AlphaScore > filtered[j].AlphaScore
	})
	for i, n := range filtered {
		n.Rank = i + 1
	}
	return filtered
}

// TopOpportunities returns the best n narratives, early stage only by
// default.
func (r *Ranker) TopOpportunities(narratives []*model.Narrative, n int, earlyStageOnly bool) []*model.Narrative {
	ranked := r.Rank(narratives, RankOptions{EarlyStageOnly: earlyStageOnly})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Explain breaks a narrative's ranking down into its weighted components with
// raw inputs and a human-readable reasoning line.
func (r *Ranker) Explain(n *model.Narrative) model.RankExplanation {
	lifecycle := lifecycleScore(n.LifecycleStage)
	netFlow := n.NetCapitalFlow(24)
	flow := clamp01(netFlow / maxMeaningfulFlow)
	regime := n.RegimeScore(r.regime)
	momentum := n.FlowMomentum()
	momentumScore := clamp01((momentum + 1) / 2)

	return model.RankExplanation{
		AlphaScore: n.AlphaScore,
		Rank:       n.Rank,
		Components: map[string]model.RankComponent{
			"lifecycle": {
				Score:        lifecycle,
				Weight:       weightLifecycle,
				Contribution: lifecycle * weightLifecycle * 100,
				Data:         map[string]any{"stage": n.LifecycleStage},
			},
			"capital_flow": {
				Score:        flow,
				Weight:       weightCapitalFlow,
				Contribution: flow * weightCapitalFlow * 100,
				Data: map[string]any{
					"net_flow": netFlow,
					"formula":  "min(max(net_flow / 100M, 0), 1)",
				},
			},
			"regime_alignment": {
				Score:        regime,
				Weight:       weightRegime,
				Contribution: regime * weightRegime * 100,
				Data:         map[string]any{"current_regime": r.regime},
			},
			"flow_momentum": {
				Score:        momentumScore,
				Weight:       weightMomentum,
				Contribution: momentumScore * weightMomentum * 100,
				Data: map[string]any{
					"momentum": momentum,
					"formula":  "min(max((momentum + 1) / 2, 0), 1)",
				},
			},
		},
		Reasoning: r.reasoning(n),
	}
}

func (r *Ranker) reasoning(n *model.Narrative) string {
	var reasons []string

	if n.IsEarlyStage() {
		reasons = append(reasons, fmt.Sprintf(
			"Early stage (%s) indicates high alpha potential before consensus pricing", n.LifecycleStage))
	} else {
		reasons = append(reasons, fmt.Sprintf(
			"Late stage (%s) suggests limited alpha as consensus pricing may be established", n.LifecycleStage))
	}

	netFlow := n.NetCapitalFlow(24)
	if netFlow > 0 {
		reasons = append(reasons, fmt.Sprintf("Positive capital flows ($%.0f) show conviction", netFlow))
	} else {
		reasons = append(reasons, fmt.Sprintf("Negative capital flows ($%.0f) indicate weakness", netFlow))
	}

	regime := n.RegimeScore(r.regime)
	if regime > 0.7 {
		reasons = append(reasons, fmt.Sprintf(
			"Strong regime alignment (%.0f%%) with current %s regime", regime*100, r.regime))
	} else if regime < 0.4 {
		reasons = append(reasons, fmt.Sprintf(
			"Weak regime alignment (%.0f%%) with current %s regime", regime*100, r.regime))
	}

	return strings.Join(reasons, "; ")
}
