package game

import "github.com/google/uuid"

// FatigueBand classifies fatigue relative to stamina capacity. Reporting
// only; bands carry no direct gameplay effect.
type FatigueBand uint8

const (
	FatigueFresh     FatigueBand = iota // below 50% of capacity
	FatigueTired                        // ≥ 50%
	FatigueExhausted                    // ≥ 90%
	FatigueOverdrawn                    // ≥ 100%
	FatigueCollapsed                    // ≥ 200%
)

// Player is the human-controlled restaurant owner.
type Player struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Stats     StatSet   `json:"stats"`
	Fatigue   int       `json:"fatigue"`   // ≥ 0, unbounded upward
	Happiness float64   `json:"happiness"` // 0–100
	Money     int       `json:"money"`     // integer won
	StoreID   uuid.UUID `json:"store_id"`
	Research  int       `json:"research"` // accumulated recipe research progress
}

// NewPlayer creates a player with starting stats and funds.
func NewPlayer(name string, money int, storeID uuid.UUID) Player {
	stats := StatSet{}
	for k := 0; k < NumStats; k++ {
		stats[k] = Stat{Level: 10}
	}
	stats[StatStamina] = Stat{Level: 100}
	return Player{
		ID:        uuid.New(),
		Name:      name,
		Stats:     stats,
		Happiness: 50,
		Money:     money,
		StoreID:   storeID,
	}
}

// StaminaCapacity is the fatigue scale: fatigue bands are percentages of the
// stamina stat level.
func (p Player) StaminaCapacity() int {
	cap := p.Stats.Get(StatStamina).Level
	if cap < 1 {
		cap = 1
	}
	return cap
}

// Band returns the player's current fatigue band.
func (p Player) Band() FatigueBand {
	ratio := float64(p.Fatigue) / float64(p.StaminaCapacity())
	switch {
	case ratio >= 2.0:
		return FatigueCollapsed
	case ratio >= 1.0:
		return FatigueOverdrawn
	case ratio >= 0.9:
		return FatigueExhausted
	case ratio >= 0.5:
		return FatigueTired
	default:
		return FatigueFresh
	}
}

// WithMoney returns the player with money set, floored at zero.
func (p Player) WithMoney(money int) Player {
	p.Money = FloorZero(money)
	return p
}

// WithFatigue returns the player with fatigue set, floored at zero. Fatigue
// has no upper bound.
func (p Player) WithFatigue(fatigue int) Player {
	p.Fatigue = FloorZero(fatigue)
	return p
}

// WithHappiness returns the player with happiness set, clamped to 0–100.
func (p Player) WithHappiness(h float64) Player {
	p.Happiness = ClampPercent(h)
	return p
}

// WithStatExp returns the player with experience added to one stat.
func (p Player) WithStatExp(kind StatKind, exp int) Player {
	p.Stats = p.Stats.With(kind, p.Stats.Get(kind).WithExp(exp))
	return p
}

// WithResearch returns the player with research progress added.
func (p Player) WithResearch(delta int) Player {
	p.Research = FloorZero(p.Research + delta)
	return p
}
