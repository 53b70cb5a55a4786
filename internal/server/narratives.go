package server

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/narrativelab/macrograph/internal/model"
)

var stageColors = map[model.LifecycleStage]string{
	model.StageFormation:    "#10b981",
	model.StageAcceleration: "#3b82f6",
	model.StageMaturity:     "#f59e0b",
	model.StageSaturation:   "#ef4444",
	model.StageDecay:        "#6b7280",
}

var stageLabels = map[model.LifecycleStage]string{
	model.StageFormation:    "Formation",
	model.StageAcceleration: "Acceleration",
	model.StageMaturity:     "Maturity",
	model.StageSaturation:   "Saturation",
	model.StageDecay:        "Decay",
}

type flowView struct {
	Timestamp string  `json:"timestamp"`
	Inflow    float64 `json:"inflow"`
	Outflow   float64 `json:"outflow"`
	NetFlow   float64 `json:"net_flow"`
	Volume    float64 `json:"volume"`
}

type narrativeView struct {
	ID              string                       `json:"id"`
	Name            string                       `json:"name"`
	Description     string                       `json:"description"`
	Rank            int                          `json:"rank"`
	AlphaScore      float64                      `json:"alpha_score"`
	LifecycleStage  model.LifecycleStage         `json:"lifecycle_stage"`
	StageColor      string                       `json:"stage_color"`
	StageLabel      string                       `json:"stage_label"`
	NetFlow         float64                      `json:"net_flow"`
	FlowMomentum    float64                      `json:"flow_momentum"`
	RegimeScore     float64                      `json:"regime_score"`
	SentimentScore  float64                      `json:"sentiment_score"`
	AttentionScore  float64                      `json:"attention_score"`
	Tags            []string                     `json:"tags"`
	RelatedAssets   []string                     `json:"related_assets"`
	IsEarlyStage    bool                         `json:"is_early_stage"`
	CreatedAt       string                       `json:"created_at"`
	Flows           []flowView                   `json:"flows"`
	Explanation     model.RankExplanation        `json:"explanation"`
	RegimeAlignment map[model.RegimeType]float64 `json:"regime_alignment"`
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func (s *Server) narrativeView(n *model.Narrative) narrativeView {
	flows := make([]flowView, 0, len(n.CapitalFlows))
	for _, f := range n.CapitalFlows {
		flows = append(flows, flowView{
			Timestamp: f.Timestamp.Format("15:04"),
			Inflow:    f.Inflow,
			Outflow:   f.Outflow,
			NetFlow:   f.NetFlow,
			Volume:    f.Volume,
		})
	}

	alignment := make(map[model.RegimeType]float64, len(n.RegimeAlignment))
	for regime, score := range n.RegimeAlignment {
		alignment[regime] = roundTo(score, 2)
	}

	stage := n.LifecycleStage
	color, ok := stageColors[stage]
	if !ok {
		color = "#6b7280"
	}
	label, ok := stageLabels[stage]
	if !ok {
		label = string(stage)
	}

	return narrativeView{
		ID:              n.ID,
		Name:            n.Name,
		Description:     n.Description,
		Rank:            n.Rank,
		AlphaScore:      roundTo(n.AlphaScore, 1),
		LifecycleStage:  stage,
		StageColor:      color,
		StageLabel:      label,
		NetFlow:         n.NetCapitalFlow(24),
		FlowMomentum:    roundTo(n.FlowMomentum(), 4),
		RegimeScore:     roundTo(n.RegimeScore(s.config.Regime), 2),
		SentimentScore:  n.SentimentScore,
		AttentionScore:  n.AttentionScore,
		Tags:            n.Tags,
		RelatedAssets:   n.RelatedAssets,
		IsEarlyStage:    n.IsEarlyStage(),
		CreatedAt:       n.CreatedAt.Format("2006-01-02 15:04"),
		Flows:           flows,
		Explanation:     s.explanations[n.ID],
		RegimeAlignment: alignment,
	}
}

// ListNarratives returns every narrative in rank order.
func (s *Server) ListNarratives(c echo.Context) error {
	views := make([]narrativeView, 0, len(s.ranked))
	for _, n := range s.ranked {
		views = append(views, s.narrativeView(n))
	}
	return c.JSON(http.StatusOK, views)
}

// NarrativeDetail returns one narrative by ID.
func (s *Server) NarrativeDetail(c echo.Context) error {
	n := s.detector.Get(c.Param("id"))
	if n == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "narrative not found"})
	}
	return c.JSON(http.StatusOK, s.narrativeView(n))
}
