package rival

// Player-type traits produced by the analyses.
const (
	TraitNewPlayer           = "new_player"
	TraitBalanced            = "balanced"
	TraitPriceFocused        = "price_focused"
	TraitQualityFocused      = "quality_focused"
	TraitExpansionFocused    = "expansion_focused"
	TraitAggressiveInvestor  = "aggressive_investor"
	TraitConservativeSaver   = "conservative_saver"
	TraitBalancedSpender     = "balanced_spender"
	TraitReactive            = "reactive"
	TraitPlanner             = "planner"
	TraitCautious            = "cautious"
	TraitAggressiveResponder = "aggressive_responder"
	TraitDefensiveResponder  = "defensive_responder"
	TraitCompetitive         = "competitive"
	TraitStrategic           = "strategic"
	TraitAvoidant            = "avoidant"
	TraitFastLearner         = "fast_learner"
	TraitSlowLearner         = "slow_learner"
	TraitSteadyLearner       = "steady_learner"
	TraitEmotional           = "emotional"
	TraitRational            = "rational"
)

// Strategy recommendations.
const (
	StrategyObserve        = "observe"
	StrategyBalanced       = "balanced_operation"
	StrategyPremium        = "premium_positioning"
	StrategyUndercut       = "price_undercut"
	StrategyQualityPush    = "quality_push"
	StrategyDefensiveHold  = "defensive_hold"
	StrategyMarketingBlitz = "marketing_blitz"
	StrategyPatientGrowth  = "patient_growth"
)

// strategyByTrait maps a primary player type to a strategy recommendation.
// Unmapped traits fall back to balanced operation.
var strategyByTrait = map[string]string{
	TraitNewPlayer:           StrategyObserve,
	TraitPriceFocused:        StrategyPremium,
	TraitQualityFocused:      StrategyUndercut,
	TraitExpansionFocused:    StrategyDefensiveHold,
	TraitAggressiveInvestor:  StrategyDefensiveHold,
	TraitConservativeSaver:   StrategyMarketingBlitz,
	TraitReactive:            StrategyPatientGrowth,
	TraitPlanner:             StrategyMarketingBlitz,
	TraitAggressiveResponder: StrategyDefensiveHold,
	TraitDefensiveResponder:  StrategyMarketingBlitz,
	TraitCompetitive:         StrategyQualityPush,
	TraitAvoidant:            StrategyMarketingBlitz,
	TraitEmotional:           StrategyPatientGrowth,
}

// RecommendStrategy maps a behavior profile to a strategy recommendation.
func RecommendStrategy(p BehaviorProfile) string {
	if s, ok := strategyByTrait[p.PrimaryType]; ok {
		return s
	}
	return StrategyBalanced
}

// AIDecision is one concrete competitor move.
type AIDecision struct {
	ActionType   string `json:"action_type"`
	TargetAmount int    `json:"target_amount"` // won to commit
	Reasoning    string `json:"reasoning"`
}

// decisionByStrategy maps a strategy recommendation to a concrete decision.
var decisionByStrategy = map[string]AIDecision{
	StrategyObserve: {
		ActionType:   "hold",
		TargetAmount: 0,
		Reasoning:    "not enough history on this player yet; watch and wait",
	},
	StrategyPremium: {
		ActionType:   "raise_price",
		TargetAmount: 0,
		Reasoning:    "player competes on price; concede the bottom and sell premium",
	},
	StrategyUndercut: {
		ActionType:   "cut_price",
		TargetAmount: 0,
		Reasoning:    "player invests in quality; undercut on price instead of matching",
	},
	StrategyQualityPush: {
		ActionType:   "invest_quality",
		TargetAmount: 80_000,
		Reasoning:    "player fights head-on; win on product quality",
	},
	StrategyDefensiveHold: {
		ActionType:   "build_reserve",
		TargetAmount: 30_000,
		Reasoning:    "player spends aggressively; keep cash and outlast them",
	},
	StrategyMarketingBlitz: {
		ActionType:   "buy_ads",
		TargetAmount: 60_000,
		Reasoning:    "player sits back; grab awareness while it is cheap",
	},
	StrategyPatientGrowth: {
		ActionType:   "invest_quality",
		TargetAmount: 40_000,
		Reasoning:    "player overreacts; improve steadily and let them burn out",
	},
}

// neutralDecision is the fallback for unmapped strategies.
var neutralDecision = AIDecision{
	ActionType:   "steady_operations",
	TargetAmount: 20_000,
	Reasoning:    "no strong read; run the shop and keep margins healthy",
}

// Decide maps a strategy recommendation to a concrete competitor decision.
func Decide(strategy string) AIDecision {
	if d, ok := decisionByStrategy[strategy]; ok {
		return d
	}
	return neutralDecision
}
