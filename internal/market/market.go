// Package market converts store preparedness, price, quality and reputation
// into customer counts and revenue. It has two tiers: the aggregate
// statistical model used by the segmented day, and the legacy individual-agent
// tier used by the single-day variant.
package market

import (
	"math"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/config"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/decision"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

// Inputs drive one BUSINESS-segment run for one store.
type Inputs struct {
	Hours       float64 // business segment hours
	Reputation  float64
	PreparedQty int
	Freshness   float64
	Price       int
	// Decisions resolved during the segment. Unresolved ones are skipped —
	// they never occurred.
	Decisions []decision.Decision
	// Footfall is an ambient street-traffic multiplier. Zero means neutral.
	Footfall float64
}

// Result is one day's commerce outcome.
type Result struct {
	BaseCustomers  int     `json:"base_customers"`
	TotalCustomers int     `json:"total_customers"`
	Served         int     `json:"served"`
	TurnedAway     int     `json:"turned_away"`
	EffectivePrice float64 `json:"effective_price"`
	Revenue        int     `json:"revenue"`
	RepPenalty     int     `json:"rep_penalty"`

	FreshnessMult float64 `json:"freshness_mult"`
	MarginMult    float64 `json:"margin_mult"`
	SalesMult     float64 `json:"sales_mult"`
}

// Simulator is the aggregate-tier market model.
type Simulator struct {
	bal config.Balance
}

// NewSimulator creates a market simulator with the given balance.
func NewSimulator(bal config.Balance) *Simulator {
	return &Simulator{bal: bal}
}

// SimulateDay runs the aggregate model. It is a pure function of its inputs:
// no randomness, no entity mutation. Side effects are applied separately via
// Settle.
func (m *Simulator) SimulateDay(in Inputs) Result {
	footfall := in.Footfall
	if footfall <= 0 {
		footfall = 1
	}

	freshnessMult := game.ClampFloat(in.Freshness/m.bal.FreshnessPivot, m.bal.FreshnessMultMin, m.bal.FreshnessMultMax)
	base := int(math.Floor(in.Hours * m.bal.CustomersPerHour * (in.Reputation / m.bal.ReputationBase) * freshnessMult * footfall))

	flat := 0
	pct := 0.0
	marginPct := 0.0
	salesPct := 0.0
	for _, d := range in.Decisions {
		if !d.Resolved() {
			continue
		}
		eff := d.ChosenEffect()
		flat += eff.CustomerFlat
		pct += eff.CustomerPct
		marginPct += eff.MarginPct
		salesPct += eff.SalesPenaltyPct
	}

	total := int(math.Floor(float64(base+flat) * (1 + pct/100)))
	if total < 0 {
		total = 0
	}

	served := total
	if served > in.PreparedQty {
		served = in.PreparedQty
	}
	turnedAway := total - served

	marginMult := 1 + marginPct/100
	if marginMult < m.bal.MarginMultFloor {
		marginMult = m.bal.MarginMultFloor
	}
	salesMult := 1 + salesPct/100
	if salesMult < m.bal.SalesMultFloor {
		salesMult = m.bal.SalesMultFloor
	}

	effectivePrice := float64(in.Price) * marginMult * salesMult
	revenue := int(math.Floor(float64(served) * effectivePrice))

	repPenalty := 0
	if turnedAway > 0 {
		repPenalty = turnedAway / m.bal.TurnedAwayDivisor
		if repPenalty > m.bal.TurnedAwayPenaltyCap {
			repPenalty = m.bal.TurnedAwayPenaltyCap
		}
	}

	return Result{
		BaseCustomers:  base,
		TotalCustomers: total,
		Served:         served,
		TurnedAway:     turnedAway,
		EffectivePrice: effectivePrice,
		Revenue:        revenue,
		RepPenalty:     repPenalty,
		FreshnessMult:  freshnessMult,
		MarginMult:     marginMult,
		SalesMult:      salesMult,
	}
}

// Settle applies a result's side effects: revenue lands on the player,
// prepared servings are consumed, turned-away customers cost reputation, and
// each sale nudges product awareness. Freshness is untouched during BUSINESS;
// it only moves on the overnight decay tick and on ingredient intake.
func (m *Simulator) Settle(res Result, p game.Player, st game.Store, pr game.Product) (game.Player, game.Store, game.Product) {
	p = p.WithMoney(p.Money + res.Revenue)
	st = st.WithPrepared(st.PreparedQty - res.Served)
	if res.RepPenalty > 0 {
		st = st.WithReputation(st.Reputation - float64(res.RepPenalty))
	}
	if res.Served > 0 {
		pr = pr.WithAwareness(pr.Awareness + float64(res.Served)*0.1)
	}
	return p, st, pr
}
