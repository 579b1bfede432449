package catalog

import "github.com/EESIZ/Chickenmaster2-sub000/internal/game"

// RestCardID is the minimal-cost filler card used to account for idle time.
const RestCardID = "REST"

// Default returns the built-in ruleset.
func Default() *Catalog {
	return New("1", []Card{
		// PREP segment
		{
			ID:             "COOK_PREP",
			Name:           "Fry chicken",
			Category:       CategoryCooking,
			Segment:        game.SegmentPrep,
			Hours:          2,
			IngredientCost: 10,
			Stat:           game.StatCooking,
			StatExp:        8,
			FatiguePerHour: 6,
			Effect:         Effect{Kind: EffectPrepareServings, Amount: 10},
		},
		{
			ID:             "ORDER_INGREDIENTS",
			Name:           "Order ingredients",
			Category:       CategoryPurchase,
			Segment:        game.SegmentPrep,
			Hours:          1,
			MoneyCost:      50_000,
			Stat:           game.StatManagement,
			StatExp:        4,
			FatiguePerHour: 2,
			Effect:         Effect{Kind: EffectGainIngredients, Amount: 50},
		},
		{
			ID:             "CLEAN_STORE",
			Name:           "Clean the store",
			Category:       CategoryCleaning,
			Segment:        game.SegmentPrep,
			Hours:          1,
			Stat:           game.StatService,
			StatExp:        5,
			FatiguePerHour: 4,
			Effect:         Effect{Kind: EffectGainReputation, Amount: 2},
		},
		{
			ID:             "HAND_FLYERS",
			Name:           "Hand out flyers",
			Category:       CategoryMarketing,
			Segment:        game.SegmentPrep,
			Hours:          1.5,
			MoneyCost:      20_000,
			Stat:           game.StatMarketing,
			StatExp:        6,
			FatiguePerHour: 5,
			Effect:         Effect{Kind: EffectGainAwareness, Amount: 8},
		},
		{
			ID:             "REST",
			Name:           "Take a break",
			Category:       CategoryRest,
			Segment:        game.SegmentPrep,
			Hours:          0.5,
			Stat:           game.StatStamina,
			StatExp:        1,
			FatiguePerHour: -8,
			Effect:         Effect{Kind: EffectNone},
		},

		// NIGHT segment
		{
			ID:             "STUDY_COOKING",
			Name:           "Study cooking",
			Category:       CategoryStudy,
			Segment:        game.SegmentNight,
			Hours:          2,
			MoneyCost:      10_000,
			Stat:           game.StatCooking,
			StatExp:        15,
			FatiguePerHour: 4,
			Effect:         Effect{Kind: EffectNone},
		},
		{
			ID:             "RESEARCH_RECIPE",
			Name:           "Research a new recipe",
			Category:       CategoryResearch,
			Segment:        game.SegmentNight,
			Hours:          2,
			MoneyCost:      30_000,
			IngredientCost: 5,
			Stat:           game.StatCooking,
			StatExp:        10,
			FatiguePerHour: 5,
			Effect:         Effect{Kind: EffectResearch, Amount: 4},
		},
		{
			ID:             "ONLINE_ADS",
			Name:           "Run online ads",
			Category:       CategoryMarketing,
			Segment:        game.SegmentNight,
			Hours:          1,
			MoneyCost:      40_000,
			Stat:           game.StatMarketing,
			StatExp:        8,
			FatiguePerHour: 2,
			Effect:         Effect{Kind: EffectGainAwareness, Amount: 12},
		},
		{
			ID:             "SIDE_JOB",
			Name:           "Night delivery job",
			Category:       CategorySideJob,
			Segment:        game.SegmentNight,
			Hours:          3,
			Stat:           game.StatStamina,
			StatExp:        6,
			FatiguePerHour: 8,
			Effect:         Effect{Kind: EffectEarnMoney, Amount: 45_000},
		},
		{
			ID:             "NIGHT_REST",
			Name:           "Unwind at home",
			Category:       CategoryRest,
			Segment:        game.SegmentNight,
			Hours:          0.5,
			Stat:           game.StatStamina,
			StatExp:        1,
			FatiguePerHour: -8,
			Effect:         Effect{Kind: EffectNone},
		},
	})
}

// RestCard returns the filler card for a segment. PREP uses REST and NIGHT
// uses NIGHT_REST; both are 0.5h and cost nothing.
func (c *Catalog) RestCard(seg game.Segment) (Card, bool) {
	id := RestCardID
	if seg == game.SegmentNight {
		id = "NIGHT_REST"
	}
	card, ok := c.Lookup(id)
	if !ok {
		// Fall back to any zero-cost rest-category card in the segment.
		for _, cand := range c.ForSegment(seg) {
			if cand.Category == CategoryRest && cand.MoneyCost == 0 {
				return cand, true
			}
		}
	}
	return card, ok
}
