// Package dice resolves queued action cards into concrete outcomes. A roll in
// [1,100] is blended with the acting entity's relevant stat; the card's base
// effects land unconditionally while the variable effect scales with the
// blended factor.
package dice

import (
	"math"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/catalog"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/entropy"
)

// Band classifies a roll for reporting. Bands carry no gameplay effect.
type Band string

const (
	BandCritical Band = "critical" // roll ≥ 95
	BandGreat    Band = "great"    // roll ≥ 75
	BandGood     Band = "good"     // roll ≥ 40
	BandNormal   Band = "normal"
	BandMiss     Band = "miss" // roll ≤ 5
)

// Classify maps a roll to its reporting band.
func Classify(roll int) Band {
	switch {
	case roll >= 95:
		return BandCritical
	case roll >= 75:
		return BandGreat
	case roll >= 40:
		return BandGood
	case roll <= 5:
		return BandMiss
	default:
		return BandNormal
	}
}

// Outcome is the resolved result of one card.
type Outcome struct {
	CardID string  `json:"card_id"`
	Roll   int     `json:"roll"`
	Factor float64 `json:"factor"`
	Band   Band    `json:"band"`

	// Base effects, applied unconditionally.
	MoneyDelta   int `json:"money_delta"`   // negative for card cost, positive never scaled
	FatigueDelta int `json:"fatigue_delta"` // fatigue-per-hour × hours
	StatExp      int `json:"stat_exp"`

	// Variable effect, scaled by Factor and rounded. Floored at one unit
	// whenever the base amount is positive.
	EffectKind   catalog.EffectKind `json:"effect_kind"`
	EffectAmount int                `json:"effect_amount"`
}

// Resolver turns cards into outcomes using an injected randomness source.
type Resolver struct {
	rng entropy.Source
}

// NewResolver creates a resolver drawing from rng.
func NewResolver(rng entropy.Source) *Resolver {
	return &Resolver{rng: rng}
}

// Resolve rolls for one card. statLevel is the acting entity's level in the
// card's relevant stat. Resolution never fails: funds and ingredients were
// validated at queue time.
func (r *Resolver) Resolve(card catalog.Card, statLevel int) Outcome {
	roll := r.rng.Roll()
	factor := Factor(statLevel, roll)

	scaled := 0
	if card.Effect.Kind != catalog.EffectNone {
		scaled = int(math.Round(float64(card.Effect.Amount) * factor))
		if card.Effect.Amount > 0 && scaled < 1 {
			scaled = 1
		}
	}

	return Outcome{
		CardID:       card.ID,
		Roll:         roll,
		Factor:       factor,
		Band:         Classify(roll),
		MoneyDelta:   -card.MoneyCost,
		FatigueDelta: int(math.Round(float64(card.FatiguePerHour) * card.Hours)),
		StatExp:      card.StatExp,
		EffectKind:   card.Effect.Kind,
		EffectAmount: scaled,
	}
}

// Factor blends a stat level with a roll: max(0.5, (stat+roll)/100).
func Factor(statLevel, roll int) float64 {
	f := float64(statLevel+roll) / 100
	if f < 0.5 {
		f = 0.5
	}
	return f
}
