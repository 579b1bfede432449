package rival

import (
	"sort"
	"strings"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

// Analysis kinds, in fixed weight order.
const (
	AnalysisPattern     = "pattern"
	AnalysisResource    = "resource"
	AnalysisTiming      = "timing"
	AnalysisSituational = "situational"
	AnalysisCompetitive = "competitive"
	AnalysisLearning    = "learning"
	AnalysisPressure    = "pressure"
)

// analysisWeights are the fixed aggregation weights. They sum to 1.0.
var analysisWeights = map[string]float64{
	AnalysisPattern:     0.20,
	AnalysisResource:    0.18,
	AnalysisTiming:      0.15,
	AnalysisSituational: 0.15,
	AnalysisCompetitive: 0.12,
	AnalysisLearning:    0.10,
	AnalysisPressure:    0.10,
}

// Keyword sets used to classify action ids.
var (
	priceKeywords     = []string{"price", "discount", "promo", "sale"}
	qualityKeywords   = []string{"cook", "study", "research", "clean", "ingredient"}
	expansionKeywords = []string{"ads", "flyer", "expand", "hire", "store"}

	aggressiveKeywords = []string{"ads", "flyer", "promo", "expand", "discount"}
	defensiveKeywords  = []string{"clean", "rest", "study", "research"}

	competitiveKeywords = []string{"ads", "promo", "discount", "expand"}
	strategicKeywords   = []string{"research", "study", "ingredient"}
	avoidanceKeywords   = []string{"rest", "side_job", "clean"}

	hastyKeywords = []string{"promo", "discount", "ads", "flyer"}
)

func matchesAny(action string, keywords []string) bool {
	lower := strings.ToLower(action)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// AnalysisResult is one analysis dimension's verdict.
type AnalysisResult struct {
	Kind         string             `json:"kind"`
	Confidence   float64            `json:"confidence"` // 0–1
	PrimaryTrait string             `json:"primary_trait"`
	Secondary    map[string]float64 `json:"secondary,omitempty"`
}

// BehaviorProfile is the aggregated verdict over all seven analyses.
type BehaviorProfile struct {
	OverallConfidence float64          `json:"overall_confidence"` // 0–1
	PrimaryType       string           `json:"primary_type"`
	SecondaryTraits   []string         `json:"secondary_traits"`
	Analyses          []AnalysisResult `json:"analyses"`
}

// Engine runs behavioral analysis over a profile window.
type Engine struct {
	highSpendThreshold int
}

// NewEngine creates an analysis engine. highSpendThreshold is the per-turn
// spend above which a turn reads as high pressure.
func NewEngine(highSpendThreshold int) *Engine {
	return &Engine{highSpendThreshold: highSpendThreshold}
}

// Analyze runs all seven analyses over the profile and aggregates them. With
// no history it returns the fixed new-player default at zero confidence.
func (e *Engine) Analyze(p Profile) BehaviorProfile {
	if p.Len() == 0 {
		return BehaviorProfile{
			PrimaryType: TraitNewPlayer,
		}
	}

	analyses := []AnalysisResult{
		analyzePattern(p.Records),
		analyzeResource(p.Records),
		analyzeTiming(p.Records),
		e.analyzeSituational(p.Records),
		analyzeCompetitive(p.Records),
		analyzeLearning(p.Records),
		e.analyzePressure(p.Records),
	}

	overall := 0.0
	for _, a := range analyses {
		overall += a.Confidence * analysisWeights[a.Kind]
	}

	// Keep the three highest-confidence analyses: the top trait becomes the
	// primary player type, the next two become secondary traits.
	ranked := append([]AnalysisResult(nil), analyses...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	profile := BehaviorProfile{
		OverallConfidence: clamp01(overall),
		PrimaryType:       ranked[0].PrimaryTrait,
		Analyses:          analyses,
	}
	for _, a := range ranked[1:3] {
		profile.SecondaryTraits = append(profile.SecondaryTraits, a.PrimaryTrait)
	}
	return profile
}

// analyzePattern classifies the dominant action tendency from keyword
// fractions. A fraction above 0.6 yields a focused tendency, else balanced.
func analyzePattern(records []game.TurnRecord) AnalysisResult {
	total := 0
	priceN, qualityN, expansionN := 0, 0, 0
	for _, r := range records {
		for _, a := range r.Actions {
			total++
			if matchesAny(a, priceKeywords) {
				priceN++
			}
			if matchesAny(a, qualityKeywords) {
				qualityN++
			}
			if matchesAny(a, expansionKeywords) {
				expansionN++
			}
		}
	}

	res := AnalysisResult{
		Kind:         AnalysisPattern,
		PrimaryTrait: TraitBalanced,
		Confidence:   clamp01(float64(total) / 20),
	}
	if total == 0 {
		res.Confidence = 0
		return res
	}

	fractions := map[string]float64{
		TraitPriceFocused:     float64(priceN) / float64(total),
		TraitQualityFocused:   float64(qualityN) / float64(total),
		TraitExpansionFocused: float64(expansionN) / float64(total),
	}
	res.Secondary = fractions

	bestTrait, bestFrac := TraitBalanced, 0.0
	for trait, frac := range fractions {
		if frac > bestFrac || (frac == bestFrac && trait < bestTrait) {
			bestTrait, bestFrac = trait, frac
		}
	}
	if bestFrac > 0.6 {
		res.PrimaryTrait = bestTrait
	}
	return res
}

// analyzeResource classifies spender type from investment-ratio weighting:
// quality spend × 0.3, marketing × 0.4, expansion × 0.5.
func analyzeResource(records []game.TurnRecord) AnalysisResult {
	totalSpent := 0
	weighted := 0.0
	for _, r := range records {
		totalSpent += r.MoneySpent
		if len(r.Actions) == 0 || r.MoneySpent == 0 {
			continue
		}
		perAction := float64(r.MoneySpent) / float64(len(r.Actions))
		for _, a := range r.Actions {
			switch {
			case matchesAny(a, qualityKeywords):
				weighted += perAction * 0.3
			case matchesAny(a, expansionKeywords):
				weighted += perAction * 0.5
			case matchesAny(a, priceKeywords):
				weighted += perAction * 0.4
			}
		}
	}

	res := AnalysisResult{
		Kind:       AnalysisResource,
		Confidence: clamp01(float64(totalSpent) / 1_000_000),
	}

	ratio := 0.0
	if totalSpent > 0 {
		ratio = weighted / float64(totalSpent)
	}
	res.Secondary = map[string]float64{"investment_ratio": ratio}
	switch {
	case ratio > 0.35:
		res.PrimaryTrait = TraitAggressiveInvestor
	case ratio < 0.15:
		res.PrimaryTrait = TraitConservativeSaver
	default:
		res.PrimaryTrait = TraitBalancedSpender
	}
	return res
}

// analyzeTiming averages min(10, actions_per_turn × 2) and maps thresholds to
// reactive / planner / cautious.
func analyzeTiming(records []game.TurnRecord) AnalysisResult {
	sum := 0.0
	for _, r := range records {
		score := float64(len(r.Actions)) * 2
		if score > 10 {
			score = 10
		}
		sum += score
	}
	avg := sum / float64(len(records))

	res := AnalysisResult{
		Kind:       AnalysisTiming,
		Confidence: clamp01(float64(len(records)) / 5),
		Secondary:  map[string]float64{"avg_tempo": avg},
	}
	switch {
	case avg >= 8:
		res.PrimaryTrait = TraitReactive
	case avg <= 3:
		res.PrimaryTrait = TraitPlanner
	default:
		res.PrimaryTrait = TraitCautious
	}
	return res
}

// analyzeSituational looks only at high-spend turns and compares aggressive
// vs defensive keyword actions within them.
func (e *Engine) analyzeSituational(records []game.TurnRecord) AnalysisResult {
	highSpendTurns := 0
	aggressive, defensive := 0, 0
	for _, r := range records {
		if r.MoneySpent <= e.highSpendThreshold {
			continue
		}
		highSpendTurns++
		for _, a := range r.Actions {
			if matchesAny(a, aggressiveKeywords) {
				aggressive++
			}
			if matchesAny(a, defensiveKeywords) {
				defensive++
			}
		}
	}

	res := AnalysisResult{
		Kind:       AnalysisSituational,
		Confidence: clamp01(float64(highSpendTurns) / 5),
		Secondary: map[string]float64{
			"aggressive": float64(aggressive),
			"defensive":  float64(defensive),
		},
	}
	if aggressive > defensive {
		res.PrimaryTrait = TraitAggressiveResponder
	} else {
		res.PrimaryTrait = TraitDefensiveResponder
	}
	return res
}

// analyzeCompetitive picks the dominant of the competitive / strategic /
// avoidance keyword buckets.
func analyzeCompetitive(records []game.TurnRecord) AnalysisResult {
	competitive, strategic, avoidance := 0, 0, 0
	for _, r := range records {
		for _, a := range r.Actions {
			if matchesAny(a, competitiveKeywords) {
				competitive++
			}
			if matchesAny(a, strategicKeywords) {
				strategic++
			}
			if matchesAny(a, avoidanceKeywords) {
				avoidance++
			}
		}
	}
	total := competitive + strategic + avoidance

	res := AnalysisResult{
		Kind:       AnalysisCompetitive,
		Confidence: clamp01(float64(total) / 10),
		Secondary: map[string]float64{
			"competitive": float64(competitive),
			"strategic":   float64(strategic),
			"avoidance":   float64(avoidance),
		},
	}
	switch {
	case competitive >= strategic && competitive >= avoidance:
		res.PrimaryTrait = TraitCompetitive
	case strategic >= avoidance:
		res.PrimaryTrait = TraitStrategic
	default:
		res.PrimaryTrait = TraitAvoidant
	}
	return res
}

// analyzeLearning scores improvement trend against inefficiency:
// 50 + clamp(trend×5, −20, 20) − min(inefficient×5, 30), clamped to 0–100.
func analyzeLearning(records []game.TurnRecord) AnalysisResult {
	trend := 0
	for i := 1; i < len(records); i++ {
		switch {
		case records[i].TimingScore > records[i-1].TimingScore:
			trend++
		case records[i].TimingScore < records[i-1].TimingScore:
			trend--
		}
	}

	inefficient := 0
	for _, r := range records {
		if r.TimingScore < 3 {
			inefficient++
		}
	}

	trendBonus := float64(trend) * 5
	if trendBonus > 20 {
		trendBonus = 20
	}
	if trendBonus < -20 {
		trendBonus = -20
	}
	penalty := float64(inefficient) * 5
	if penalty > 30 {
		penalty = 30
	}
	score := game.ClampPercent(50 + trendBonus - penalty)

	res := AnalysisResult{
		Kind:       AnalysisLearning,
		Confidence: clamp01(float64(len(records)) / 5),
		Secondary:  map[string]float64{"score": score, "trend": float64(trend)},
	}
	switch {
	case score >= 60:
		res.PrimaryTrait = TraitFastLearner
	case score <= 40:
		res.PrimaryTrait = TraitSlowLearner
	default:
		res.PrimaryTrait = TraitSteadyLearner
	}
	return res
}

// analyzePressure counts consecutive turn-pairs both above the high-spend
// threshold and checks the hasty-action ratio within those pressured turns.
func (e *Engine) analyzePressure(records []game.TurnRecord) AnalysisResult {
	pairs := 0
	pressured := map[int]bool{}
	for i := 1; i < len(records); i++ {
		if records[i-1].MoneySpent > e.highSpendThreshold && records[i].MoneySpent > e.highSpendThreshold {
			pairs++
			pressured[i-1] = true
			pressured[i] = true
		}
	}

	hasty, total := 0, 0
	for i, r := range records {
		if !pressured[i] {
			continue
		}
		for _, a := range r.Actions {
			total++
			if matchesAny(a, hastyKeywords) {
				hasty++
			}
		}
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(hasty) / float64(total)
	}

	res := AnalysisResult{
		Kind:       AnalysisPressure,
		Confidence: clamp01(float64(pairs) / 3),
		Secondary:  map[string]float64{"pairs": float64(pairs), "hasty_ratio": ratio},
	}
	if ratio > 0.3 {
		res.PrimaryTrait = TraitEmotional
	} else {
		res.PrimaryTrait = TraitRational
	}
	return res
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
