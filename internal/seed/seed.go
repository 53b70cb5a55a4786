// Package seed builds the example dataset served at startup: three root
// claim trees (Fed tightening, AI infrastructure buildout, China stimulus)
// and five market narratives.
package seed

import (
	"time"

	"github.com/narrativelab/macrograph/internal/claims"
	"github.com/narrativelab/macrograph/internal/model"
	"github.com/narrativelab/macrograph/internal/narrative"
)

type claimSpec struct {
	id               string
	text             string
	assetClasses     []string
	relatedAssets    []string
	ageDays          int
	expectedDuration string
	trend            string
}

type edgeSpec struct {
	parent string
	child  string
}

var claimSpecs = []claimSpec{
	// Root 1: Fed tightening
	{"fed-tightening", "Fed holding rates higher for longer than market expects",
		[]string{"Rates", "FX", "Equities", "Credit", "EM"}, nil, 90, "cyclical", "stable"},
	{"usd-strengthening", "US dollar is strengthening against major currencies",
		[]string{"FX"}, []string{"DXY", "EUR/USD"}, 60, "cyclical", "rising"},
	{"credit-tightening", "Credit conditions are tightening",
		[]string{"Credit"}, []string{"HYG", "LQD"}, 45, "cyclical", "rising"},
	{"duration-repricing", "Duration-sensitive assets are repricing",
		[]string{"Rates", "Equities"}, []string{"TLT", "IEF"}, 30, "cyclical", "stable"},
	{"rate-differential", "US-EU rate differential widening",
		[]string{"Rates", "FX"}, []string{"EUR/USD"}, 30, "cyclical", "rising"},
	{"em-debt-stress", "Emerging market dollar-denominated debt is under stress",
		[]string{"EM", "Credit"}, []string{"EMB", "EEM"}, 20, "cyclical", "rising"},
	{"housing-contracting", "Housing demand is contracting",
		[]string{"Equities"}, []string{"XHB", "ITB"}, 15, "cyclical", "stable"},
	{"growth-underperform", "Growth equities are underperforming value",
		[]string{"Equities"}, []string{"IWF", "IWD", "ARKK", "SPY"}, 25, "cyclical", "stable"},
	{"credit-spreads-widening", "Credit spreads widening in leveraged loans",
		[]string{"Credit"}, []string{"BKLN", "HYG"}, 10, "cyclical", "rising"},
	{"eur-usd-declining", "EUR/USD declining toward parity",
		[]string{"FX"}, []string{"EUR/USD"}, 14, "cyclical", "rising"},
	{"em-currency-crisis", "EM currency crises risk rising",
		[]string{"FX", "EM"}, []string{"BRL", "ZAR", "TRY"}, 7, "transient", "rising"},
	{"homebuilders-falling", "Homebuilder stocks falling",
		[]string{"Equities"}, []string{"DHI", "LEN", "TOL"}, 5, "cyclical", "stable"},
	{"pe-exit-declining", "Private equity exit activity declining",
		[]string{"Credit", "Equities"}, []string{"BX", "KKR", "APO"}, 10, "cyclical", "fading"},
	{"regional-bank-stress", "Regional bank CRE exposure under stress",
		[]string{"Equities", "Credit"}, []string{"KRE", "NYCB"}, 12, "cyclical", "rising"},

	// Root 2: AI infrastructure buildout
	{"ai-buildout", "AI infrastructure buildout exceeding all forecasts",
		[]string{"Equities", "Commodities", "Energy"}, nil, 120, "structural", "rising"},
	{"power-demand", "Power demand growth inflecting upward",
		[]string{"Energy", "Commodities"}, []string{"NEE", "SO", "DUK"}, 60, "structural", "rising"},
	{"semi-bottleneck", "Semiconductor supply chain bottleneck forming",
		[]string{"Equities"}, []string{"NVDA", "AMD", "TSM"}, 45, "cyclical", "stable"},
	{"natgas-demand", "Natural gas demand exceeding supply models",
		[]string{"Commodities", "Energy"}, []string{"UNG", "FCG"}, 20, "cyclical", "rising"},
	{"nuclear-rehab", "Nuclear energy political rehabilitation",
		[]string{"Energy"}, []string{"CCJ", "URA"}, 30, "structural", "rising"},
	{"tsmc-pricing", "TSMC pricing power increasing",
		[]string{"Equities"}, []string{"TSM"}, 14, "cyclical", "stable"},
	{"packaging-scarce", "Advanced packaging becoming scarce",
		[]string{"Equities"}, []string{"ASX", "AMKR"}, 10, "cyclical", "rising"},

	// Root 3: China stimulus
	{"china-stimulus", "China stimulus insufficient to offset property deflation",
		[]string{"EM", "Commodities", "FX"}, nil, 180, "structural", "stable"},
	{"china-commodity-demand", "Chinese commodity demand structurally lower",
		[]string{"Commodities"}, []string{"BHP", "RIO", "VALE"}, 90, "structural", "stable"},
	{"cny-weakening", "Yuan weakening pressuring Asian FX",
		[]string{"FX", "EM"}, []string{"CNY", "KRW", "TWD"}, 60, "cyclical", "stable"},
	{"em-equities-outflows", "EM equity outflows accelerating",
		[]string{"EM", "Equities"}, []string{"EEM", "VWO", "FXI"}, 30, "cyclical", "rising"},
}

var edgeSpecs = []edgeSpec{
	{"fed-tightening", "usd-strengthening"},
	{"fed-tightening", "credit-tightening"},
	{"fed-tightening", "duration-repricing"},
	{"fed-tightening", "rate-differential"},
	{"usd-strengthening", "em-debt-stress"},
	{"credit-tightening", "housing-contracting"},
	{"duration-repricing", "growth-underperform"},
	{"credit-tightening", "credit-spreads-widening"},
	{"rate-differential", "eur-usd-declining"},
	{"em-debt-stress", "em-currency-crisis"},
	{"housing-contracting", "homebuilders-falling"},
	{"credit-spreads-widening", "pe-exit-declining"},
	{"credit-spreads-widening", "regional-bank-stress"},
	{"ai-buildout", "power-demand"},
	{"ai-buildout", "semi-bottleneck"},
	{"power-demand", "natgas-demand"},
	{"power-demand", "nuclear-rehab"},
	{"semi-bottleneck", "tsmc-pricing"},
	{"semi-bottleneck", "packaging-scarce"},
	{"china-stimulus", "china-commodity-demand"},
	{"china-stimulus", "cny-weakening"},
	{"china-stimulus", "em-equities-outflows"},
}

// ClaimGraph builds the example claim hierarchy and runs the influence pass
// exactly once. Ordering matters: all claims, then all edges, then the single
// computation pass.
func ClaimGraph() *claims.Graph {
	g := claims.New()
	now := time.Now()

	for _, spec := range claimSpecs {
		g.AddClaim(&model.Claim{
			ID:               spec.id,
			Text:             spec.text,
			AssetClasses:     spec.assetClasses,
			RelatedAssets:    spec.relatedAssets,
			CreatedAt:        now.AddDate(0, 0, -spec.ageDays),
			PersistenceDays:  spec.ageDays,
			ExpectedDuration: spec.expectedDuration,
			Trend:            spec.trend,
			CausalDirection:  model.DirectionEstablished,
		})
	}
	for _, e := range edgeSpecs {
		g.AddEdge(e.parent, e.child, model.DirectionEstablished)
	}

	g.ComputeInfluence()
	return g
}

type narrativeSpec struct {
	id          string
	name        string
	description string
	ageHours    int
	stage       model.LifecycleStage
	tags        []string
	assets      []string
	sentiment   float64
	attention   float64

	// Flow series: base values plus a per-observation step.
	flowCount             int
	inflow, inflowStep    float64
	outflow               float64
	netFlow, netFlowStep  float64
	volume, volumeStep    float64
	sources               []string
	capitalVelocity       float64
	attentionVelocity     float64
	timeActiveHours       float64
}

var narrativeSpecs = []narrativeSpec{
	{
		id: "ai-revolution-2024", name: "AI Revolution",
		description: "Artificial intelligence transforming productivity and business models",
		ageHours:    12, stage: model.StageFormation,
		tags:   []string{"tech", "innovation", "growth", "ai", "productivity"},
		assets: []string{"NVDA", "MSFT", "META"}, sentiment: 0.8, attention: 0.6,
		flowCount: 10, inflow: 500_000, inflowStep: 100_000, outflow: 200_000,
		netFlow: 300_000, netFlowStep: 100_000, volume: 1_000_000, volumeStep: 200_000,
		sources:         []string{"institutional", "retail"},
		capitalVelocity: 0.7, attentionVelocity: 0.5, timeActiveHours: 12,
	},
	{
		id: "energy-transition-2024", name: "Energy Transition",
		description: "Shift to renewable energy and infrastructure buildout",
		ageHours:    30 * 24, stage: model.StageAcceleration,
		tags:   []string{"energy", "infrastructure", "commodities", "sustainability"},
		assets: []string{"ENPH", "FSLR", "NEE"}, sentiment: 0.6, attention: 0.7,
		flowCount: 10, inflow: 2_000_000, inflowStep: 500_000, outflow: 800_000,
		netFlow: 1_200_000, netFlowStep: 500_000, volume: 5_000_000, volumeStep: 1_000_000,
		sources:         []string{"institutional"},
		capitalVelocity: 0.6, attentionVelocity: 0.4, timeActiveHours: 720,
	},
	{
		id: "mag7-tech-2024", name: "Magnificent 7 Tech Dominance",
		description: "Large cap tech stocks dominating market returns",
		ageHours:    365 * 24, stage: model.StageSaturation,
		tags:   []string{"tech", "mega-cap", "momentum"},
		assets: []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA"},
		sentiment: 0.3, attention: 0.9,
		flowCount: 10, inflow: 50_000_000, outflow: 48_000_000,
		netFlow: 2_000_000, volume: 100_000_000,
		sources:         []string{"institutional", "retail", "etf"},
		capitalVelocity: -0.1, attentionVelocity: 0.1, timeActiveHours: 8760,
	},
	{
		id: "crypto-winter-recovery-2024", name: "Crypto Winter Recovery",
		description: "Cryptocurrency market recovery after extended bear market",
		ageHours:    48, stage: model.StageFormation,
		tags:   []string{"crypto", "digital-assets", "hedge", "innovation"},
		assets: []string{"BTC", "ETH", "COIN"}, sentiment: 0.4, attention: 0.3,
		flowCount: 10, inflow: 800_000, inflowStep: 150_000, outflow: 400_000,
		netFlow: 400_000, netFlowStep: 150_000, volume: 2_000_000, volumeStep: 300_000,
		sources:         []string{"retail", "hedge-funds"},
		capitalVelocity: 0.8, attentionVelocity: 0.3, timeActiveHours: 48,
	},
	{
		id: "defensive-rotation-2024", name: "Defensive Rotation",
		description: "Rotation into defensive sectors amid economic uncertainty",
		ageHours:    7 * 24, stage: model.StageAcceleration,
		tags:   []string{"defensive", "quality", "safe-haven", "value"},
		assets: []string{"JNJ", "PG", "KO", "WMT"}, sentiment: 0.2, attention: 0.5,
		flowCount: 10, inflow: 3_000_000, inflowStep: 400_000, outflow: 1_500_000,
		netFlow: 1_500_000, netFlowStep: 400_000, volume: 6_000_000, volumeStep: 800_000,
		sources:         []string{"institutional"},
		capitalVelocity: 0.5, attentionVelocity: 0.4, timeActiveHours: 168,
	},
}

// Narratives builds the example narratives into the detector and returns them
// in insertion order, lifecycle stage and regime alignment refreshed.
func Narratives(d *narrative.Detector) []*model.Narrative {
	now := time.Now()

	for _, spec := range narrativeSpecs {
		n := &model.Narrative{
			ID:              spec.id,
			Name:            spec.name,
			Description:     spec.description,
			CreatedAt:       now.Add(-time.Duration(spec.ageHours) * time.Hour),
			UpdatedAt:       now,
			LifecycleStage:  spec.stage,
			RegimeAlignment: map[model.RegimeType]float64{},
			Tags:            spec.tags,
			RelatedAssets:   spec.assets,
			SentimentScore:  spec.sentiment,
			AttentionScore:  spec.attention,
		}
		for i := 0; i < spec.flowCount; i++ {
			step := float64(i)
			n.CapitalFlows = append(n.CapitalFlows, model.CapitalFlow{
				NarrativeID: n.ID,
				Timestamp:   now.Add(-time.Duration(10-i) * time.Hour),
				Inflow:      spec.inflow + step*spec.inflowStep,
				Outflow:     spec.outflow,
				NetFlow:     spec.netFlow + step*spec.netFlowStep,
				Volume:      spec.volume + step*spec.volumeStep,
				Sources:     spec.sources,
			})
		}
		d.Add(n)
		d.Update(n, spec.capitalVelocity, spec.attentionVelocity, spec.timeActiveHours)
	}

	return d.All()
}
