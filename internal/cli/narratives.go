package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/narrativelab/macrograph/internal/model"
	"github.com/narrativelab/macrograph/internal/narrative"
	"github.com/narrativelab/macrograph/internal/seed"
)

var (
	narrativesRegime    string
	narrativesEarlyOnly bool
	narrativesExplain   bool
)

// narrativesCmd represents the narratives command
var narrativesCmd = &cobra.Command{
	Use:   "narratives",
	Short: "Rank the seeded narratives by alpha potential",
	Long: `Score and rank every tracked narrative under the chosen economic
regime. With --explain, break each score into its weighted components.

Example:
  macrograph narratives
  macrograph narratives --regime volatility --early-only
  macrograph narratives --explain`,
	RunE: runNarratives,
}

func init() {
	rootCmd.AddCommand(narrativesCmd)

	narrativesCmd.Flags().StringVar(&narrativesRegime, "regime", "expansion", "economic regime to score against")
	narrativesCmd.Flags().BoolVar(&narrativesEarlyOnly, "early-only", false, "only formation and acceleration stage narratives")
	narrativesCmd.Flags().BoolVar(&narrativesExplain, "explain", false, "show score component breakdown")
}

func runNarratives(cmd *cobra.Command, args []string) error {
	regime := model.RegimeType(narrativesRegime)
	valid := false
	for _, r := range model.RegimeTypes() {
		if r == regime {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown regime %q (valid: expansion, recession, inflation, deflation, volatility, stability)", narrativesRegime)
	}

	detector := narrative.NewDetector()
	detector.SetRegime(regime)
	ranker := narrative.NewRanker(regime)
	ranked := ranker.Rank(seed.Narratives(detector), narrative.RankOptions{
		EarlyStageOnly: narrativesEarlyOnly,
	})

	fmt.Printf("Narrative ranking (regime: %s)\n\n", regime)
	for _, n := range ranked {
		fmt.Printf("%2d. %-24s %5.1f  %-12s %s\n",
			n.Rank, n.Name, n.AlphaScore, n.LifecycleStage, strings.Join(n.RelatedAssets, ", "))
		if narrativesExplain {
			printExplanation(ranker.Explain(n))
		}
	}
	return nil
}

func printExplanation(ex model.RankExplanation) {
	for _, name := range []string{"lifecycle", "capital_flow", "regime_alignment", "flow_momentum"} {
		comp, ok := ex.Components[name]
		if !ok {
			continue
		}
		fmt.Printf("      %-12s score %.2f x weight %.2f = %.1f\n",
			name, comp.Score, comp.Weight, comp.Contribution)
	}
	fmt.Printf("      %s\n\n", ex.Reasoning)
}
