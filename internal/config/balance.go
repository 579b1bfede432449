// Package config consolidates every gameplay tunable into one explicit
// Balance struct. Engines receive a Balance at construction; nothing reads
// ambient globals.
package config

// Balance holds gameplay balance configuration.
type Balance struct {
	// Market
	CustomersPerHour     float64 `yaml:"customers_per_hour"` // aggregate footfall per business hour
	ReputationBase       float64 `yaml:"reputation_base"`    // reputation value that yields a 1.0 multiplier
	FreshnessPivot       float64 `yaml:"freshness_pivot"`    // freshness value that yields a 1.0 multiplier
	FreshnessMultMin     float64 `yaml:"freshness_mult_min"`
	FreshnessMultMax     float64 `yaml:"freshness_mult_max"`
	MarginMultFloor      float64 `yaml:"margin_mult_floor"`
	SalesMultFloor       float64 `yaml:"sales_mult_floor"`
	TurnedAwayDivisor    int     `yaml:"turned_away_divisor"` // customers turned away per reputation point lost
	TurnedAwayPenaltyCap int     `yaml:"turned_away_penalty_cap"`

	// Individual customer tier
	IndividualShare    float64 `yaml:"individual_share"`    // fraction of footfall simulated as discrete agents
	PurchasePropensity float64 `yaml:"purchase_propensity"` // aggregate-tier buy probability
	DesireGrowthPerDay int     `yaml:"desire_growth_per_day"`

	// Pricing
	PriceStep int `yaml:"price_step"`
	PriceMin  int `yaml:"price_min"`
	PriceMax  int `yaml:"price_max"`

	// Day clock marks (hours, 24h clock; sleep may exceed 24 for a
	// past-midnight close).
	WakeHour  float64 `yaml:"wake_hour"`
	OpenHour  float64 `yaml:"open_hour"`
	CloseHour float64 `yaml:"close_hour"`
	SleepHour float64 `yaml:"sleep_hour"`

	// Recovery and decay
	FatigueRecoveryPerSleepHour int     `yaml:"fatigue_recovery_per_sleep_hour"`
	FreshnessDecayPerDay        float64 `yaml:"freshness_decay_per_day"`
	AwarenessDecayPerDay        float64 `yaml:"awareness_decay_per_day"`

	// Rest filler card
	RestGranularityHours float64 `yaml:"rest_granularity_hours"`

	// Competitor lifecycle
	BankruptcyWindowDays int `yaml:"bankruptcy_window_days"`
	AnalysisWindowTurns  int `yaml:"analysis_window_turns"`
	HighSpendThreshold   int `yaml:"high_spend_threshold"`

	// Business micro decisions
	DecisionsPerDay int `yaml:"decisions_per_day"`
}

// Default returns the canonical balance used by the shipped ruleset.
func Default() Balance {
	return Balance{
		CustomersPerHour:     3,
		ReputationBase:       50,
		FreshnessPivot:       80,
		FreshnessMultMin:     0.5,
		FreshnessMultMax:     1.2,
		MarginMultFloor:      0.5,
		SalesMultFloor:       0.3,
		TurnedAwayDivisor:    5,
		TurnedAwayPenaltyCap: 10,

		IndividualShare:    0.10,
		PurchasePropensity: 0.65,
		DesireGrowthPerDay: 8,

		PriceStep: 100,
		PriceMin:  1_000,
		PriceMax:  100_000,

		WakeHour:  7,
		OpenHour:  11,
		CloseHour: 22,
		SleepHour: 24,

		FatigueRecoveryPerSleepHour: 10,
		FreshnessDecayPerDay:        8,
		AwarenessDecayPerDay:        2,

		RestGranularityHours: 0.5,

		BankruptcyWindowDays: 30,
		AnalysisWindowTurns:  15,
		HighSpendThreshold:   100_000,

		DecisionsPerDay: 2,
	}
}

// Relaxed returns an easier balance: slower freshness decay, more forgiving
// turned-away penalties.
func Relaxed() Balance {
	cfg := Default()
	cfg.FreshnessDecayPerDay = 4
	cfg.TurnedAwayDivisor = 8
	cfg.FatigueRecoveryPerSleepHour = 14
	return cfg
}
