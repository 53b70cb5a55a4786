package model

// RankComponent is one weighted component of a narrative's alpha score, with
// the raw inputs exposed so rankings stay explainable.
type RankComponent struct {
	Score        float64        `json:"score"`        // normalized 0-1 input
	Weight       float64        `json:"weight"`       // component weight
	Contribution float64        `json:"contribution"` // score * weight * 100
	Data         map[string]any `json:"data,omitempty"`
}

// RankExplanation is the transparent breakdown of a narrative's alpha score.
type RankExplanation struct {
	AlphaScore float64                  `json:"alpha_score"`
	Rank       int                      `json:"rank"`
	Components map[string]RankComponent `json:"components"`
	Reasoning  string                   `json:"reasoning"`
}
