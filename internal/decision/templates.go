package decision

// DefaultTemplates returns the built-in decision-card catalog.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:     "TV_CREW",
			Prompt: "A food show crew wants to film the kitchen for free publicity — but they'll eat for free.",
			A: Option{
				Label:  "Let them film",
				Effect: EffectBag{IngredientDelta: -8, CustomerPct: 15, FatigueDelta: 5, HappinessDelta: 4},
			},
			B: Option{
				Label:  "Turn them away",
				Effect: EffectBag{ReputationDelta: -1},
			},
		},
		{
			ID:     "DELIVERY_PROMO",
			Prompt: "A delivery app offers a featured slot today for a cut of each sale.",
			A: Option{
				Label:  "Take the slot",
				Effect: EffectBag{CustomerFlat: 6, MarginPct: -12},
			},
			B: Option{
				Label:  "Skip it",
				Effect: EffectBag{},
			},
		},
		{
			ID:     "RUDE_REVIEWER",
			Prompt: "A loud customer threatens a one-star review unless the meal is comped.",
			A: Option{
				Label:  "Comp the meal",
				Effect: EffectBag{MoneyDelta: -20_000, ReputationDelta: 1, HappinessDelta: -5},
			},
			B: Option{
				Label:  "Stand firm",
				Effect: EffectBag{ReputationDelta: -3, SalesPenaltyPct: -5, HappinessDelta: -2},
			},
		},
		{
			ID:     "BULK_WALKIN",
			Prompt: "A youth soccer team walks in wanting a group discount.",
			A: Option{
				Label:  "Give the discount",
				Effect: EffectBag{CustomerFlat: 10, MarginPct: -20, FatigueDelta: 8},
			},
			B: Option{
				Label:  "Regular price only",
				Effect: EffectBag{CustomerFlat: 2},
			},
		},
		{
			ID:     "FRYER_TROUBLE",
			Prompt: "The old fryer is acting up mid-rush. A quick fix costs money; nursing it along slows service.",
			A: Option{
				Label:  "Pay for the fix",
				Effect: EffectBag{MoneyDelta: -35_000},
			},
			B: Option{
				Label:  "Nurse it along",
				Effect: EffectBag{SalesPenaltyPct: -10, FatigueDelta: 10},
			},
		},
	}
}
