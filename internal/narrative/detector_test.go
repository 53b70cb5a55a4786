package narrative

import (
	"testing"

	"github.com/narrativelab/macrograph/internal/model"
)

func TestDetectLifecycleStage(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name              string
		netFlowPerObs     float64
		observations      int
		capitalVelocity   float64
		attentionVelocity float64
		timeActiveHours   float64
		want              model.LifecycleStage
	}{
		{"young with rising capital", 300_000, 1, 0.7, 0.5, 12, model.StageFormation},
		{"momentum building", 1_500_000, 2, 0.6, 0.4, 720, model.StageAcceleration},
		{"peaked and flat", 2_000_000, 10, -0.1, 0.1, 8760, model.StageMaturity},
		{"high capital, velocity negative", 5_000_000, 10, -0.25, 0.0, 8760, model.StageSaturation},
		{"capital leaving", -2_000_000, 5, -0.5, -0.2, 1000, model.StageDecay},
		{"unclear defaults to acceleration", 500_000, 1, 0.1, 0.0, 100, model.StageAcceleration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &model.Narrative{ID: "n"}
			for i := 0; i < tt.observations; i++ {
				n.CapitalFlows = append(n.CapitalFlows, model.CapitalFlow{NetFlow: tt.netFlowPerObs})
			}
			got := d.DetectLifecycleStage(n, tt.capitalVelocity, tt.attentionVelocity, tt.timeActiveHours)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRegimeAlignment_TagHeuristic(t *testing.T) {
	d := NewDetector()

	n := &model.Narrative{
		ID:   "ai",
		Tags: []string{"Tech", "Innovation", "growth"},
	}
	alignment := d.RegimeAlignment(n, nil)

	if got := alignment[model.RegimeExpansion]; got != 0.8 {
		t.Errorf("growth tags should favor expansion, got %f", got)
	}
	if got := alignment[model.RegimeRecession]; got != 0.3 {
		t.Errorf("no defensive tags, expected recession baseline 0.3, got %f", got)
	}
	if got := alignment[model.RegimeStability]; got != 0.7 {
		t.Errorf("growth counts as momentum fit for stability, got %f", got)
	}
	if len(alignment) != 6 {
		t.Errorf("expected a score for all 6 regimes, got %d", len(alignment))
	}
}

func TestRegimeAlignment_HistoricalOverride(t *testing.T) {
	d := NewDetector()

	historical := map[model.RegimeType]float64{model.RegimeVolatility: 0.95}
	n := &model.Narrative{ID: "h", Tags: []string{"growth"}}

	alignment := d.RegimeAlignment(n, historical)
	if alignment[model.RegimeVolatility] != 0.95 {
		t.Error("historical performance must override the tag heuristic")
	}
}

func TestDetector_AddGetAll(t *testing.T) {
	d := NewDetector()
	d.Add(&model.Narrative{ID: "b"})
	d.Add(&model.Narrative{ID: "a"})

	if d.Get("a") == nil || d.Get("b") == nil {
		t.Fatal("expected both narratives tracked")
	}
	if d.Get("missing") != nil {
		t.Error("expected nil for unknown narrative")
	}
	all := d.All()
	if len(all) != 2 || all[0].ID != "b" || all[1].ID != "a" {
		t.Errorf("expected insertion order, got %v", all)
	}
}

func TestDetector_AddCapitalFlow(t *testing.T) {
	d := NewDetector()
	d.Add(&model.Narrative{ID: "n"})

	d.AddCapitalFlow("n", model.CapitalFlow{NetFlow: 100})
	d.AddCapitalFlow("unknown", model.CapitalFlow{NetFlow: 100}) // no-op

	if got := len(d.Get("n").CapitalFlows); got != 1 {
		t.Errorf("expected 1 flow, got %d", got)
	}
	if d.Get("n").UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be touched")
	}
}

func TestUpdate_SetsStageAndAlignment(t *testing.T) {
	d := NewDetector()
	n := &model.Narrative{ID: "u", Tags: []string{"crypto", "hedge"}}
	n.CapitalFlows = []model.CapitalFlow{{NetFlow: 400_000}}

	d.Update(n, 0.8, 0.3, 48)

	if n.LifecycleStage == "" {
		t.Error("expected lifecycle stage to be set")
	}
	if n.RegimeAlignment[model.RegimeVolatility] != 0.9 {
		t.Errorf("hedge tag should favor volatility regime, got %f", n.RegimeAlignment[model.RegimeVolatility])
	}
}

func TestFlowMomentum_ZeroVolume(t *testing.T) {
	f := model.CapitalFlow{NetFlow: 100, Volume: 0}
	if f.FlowMomentum() != 0 {
		t.Error("zero volume must yield zero momentum")
	}
}
