package market

import (
	"math"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/config"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/entropy"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

// Participant is one seller competing for the day's footfall: the player's
// store or a rival's.
type Participant struct {
	Name      string  `json:"name"`
	Price     int     `json:"price"`
	Quality   float64 `json:"quality"`
	Awareness float64 `json:"awareness"`
}

// CustomerAI is one discrete customer agent with individual preference
// weights. Desire grows daily and resets to zero on purchase.
type CustomerAI struct {
	ID               int     `json:"id"`
	PriceSensitivity float64 `json:"price_sensitivity"` // 0–1
	QualityPref      float64 `json:"quality_pref"`      // 0–1
	BrandLoyalty     float64 `json:"brand_loyalty"`     // 0–1
	Desire           int     `json:"desire"`            // 0–100, buy-roll threshold
}

// NewCustomerPool generates n customer agents with independent random
// preference weights.
func NewCustomerPool(n int, rng entropy.Source) []CustomerAI {
	pool := make([]CustomerAI, n)
	for i := range pool {
		pool[i] = CustomerAI{
			ID:               i + 1,
			PriceSensitivity: rng.Float64(),
			QualityPref:      rng.Float64(),
			BrandLoyalty:     rng.Float64(),
			Desire:           rng.Intn(50),
		}
	}
	return pool
}

// ShareResult is one participant's slice of the day's footfall.
type ShareResult struct {
	Name            string `json:"name"`
	IndividualSales int    `json:"individual_sales"`
	AggregateSales  int    `json:"aggregate_sales"`
	Revenue         int    `json:"revenue"`
}

// Sales returns total units sold across both tiers.
func (r ShareResult) Sales() int { return r.IndividualSales + r.AggregateSales }

// averages holds the market-wide mean inputs both tiers score against.
type averages struct {
	price     float64
	quality   float64
	awareness float64
}

func marketAverages(parts []Participant) averages {
	var a averages
	if len(parts) == 0 {
		return a
	}
	for _, p := range parts {
		a.price += float64(p.Price)
		a.quality += p.Quality
		a.awareness += p.Awareness
	}
	n := float64(len(parts))
	a.price /= n
	a.quality /= n
	a.awareness /= n
	return a
}

// individualScores returns each participant's weighted score for one customer.
// The individual tier's price score rewards cheaper offers: a product at half
// the market average scores twice a product at the average.
func individualScore(p Participant, avg averages, c CustomerAI) float64 {
	priceScore := 1.0
	if p.Price > 0 && avg.price > 0 {
		priceScore = avg.price / float64(p.Price)
	}
	qualityScore := 1.0
	if avg.quality > 0 {
		qualityScore = p.Quality / avg.quality
	}
	awarenessScore := 1.0
	if avg.awareness > 0 {
		awarenessScore = p.Awareness / avg.awareness
	}
	return priceScore*c.PriceSensitivity + qualityScore*c.QualityPref + awarenessScore*(1-c.BrandLoyalty)
}

// aggregateScore returns the statistical tier's score for one participant.
// Unlike the individual tier, price above the market average reads as a
// premium signal and scores higher; both tiers use the same averages.
func aggregateScore(p Participant, avg averages) float64 {
	priceScore := 1.0
	if avg.price > 0 {
		priceScore = float64(p.Price) / avg.price
	}
	qualityScore := 1.0
	if avg.quality > 0 {
		qualityScore = p.Quality / avg.quality
	}
	awarenessScore := 1.0
	if avg.awareness > 0 {
		awarenessScore = p.Awareness / avg.awareness
	}
	return priceScore*0.3 + qualityScore*0.45 + awarenessScore*0.25
}

// LegacyMarket is the hybrid demand model of the single-day variant: a
// minority of footfall is simulated as discrete agents, the rest distributed
// by aggregate score share.
type LegacyMarket struct {
	bal config.Balance
	rng entropy.Source
}

// NewLegacyMarket creates the hybrid market model.
func NewLegacyMarket(bal config.Balance, rng entropy.Source) *LegacyMarket {
	return &LegacyMarket{bal: bal, rng: rng}
}

// SimulateFootfall splits total daily footfall across participants. The
// individual tier covers IndividualShare of the footfall using the customer
// pool (capped at the pool size); the remainder is distributed proportionally
// to aggregate score share at the overall purchase propensity.
// Returned customers carry updated desire. Output is invariant to participant
// order: score ties break on participant name.
func (m *LegacyMarket) SimulateFootfall(total int, parts []Participant, customers []CustomerAI) ([]ShareResult, []CustomerAI) {
	results := make([]ShareResult, len(parts))
	for i, p := range parts {
		results[i] = ShareResult{Name: p.Name}
	}
	if total <= 0 || len(parts) == 0 {
		return results, customers
	}

	avg := marketAverages(parts)
	updated := append([]CustomerAI(nil), customers...)

	individualCount := int(math.Round(float64(total) * m.bal.IndividualShare))
	if individualCount > len(updated) {
		individualCount = len(updated)
	}

	// Individual tier: each agent scores every participant and buys from the
	// top scorer if its roll lands under its desire.
	for i := 0; i < individualCount; i++ {
		c := updated[i]
		bestIdx := -1
		bestScore := math.Inf(-1)
		for j, p := range parts {
			score := individualScore(p, avg, c)
			if score > bestScore || (score == bestScore && bestIdx >= 0 && p.Name < parts[bestIdx].Name) {
				bestScore = score
				bestIdx = j
			}
		}
		if bestIdx >= 0 && m.rng.Roll() <= c.Desire {
			results[bestIdx].IndividualSales++
			results[bestIdx].Revenue += parts[bestIdx].Price
			c.Desire = 0
			updated[i] = c
		}
	}

	// Aggregate tier: remaining footfall split by score share at the overall
	// purchase propensity.
	remaining := total - individualCount
	if remaining > 0 {
		scoreSum := 0.0
		scores := make([]float64, len(parts))
		for i, p := range parts {
			scores[i] = aggregateScore(p, avg)
			scoreSum += scores[i]
		}
		if scoreSum > 0 {
			buyers := float64(remaining) * m.bal.PurchasePropensity
			for i, p := range parts {
				sales := int(math.Floor(buyers * scores[i] / scoreSum))
				results[i].AggregateSales = sales
				results[i].Revenue += sales * p.Price
			}
		}
	}

	return results, updated
}

// GrowDesire advances every customer's desire by the daily growth rate,
// capped at 100.
func GrowDesire(customers []CustomerAI, bal config.Balance) []CustomerAI {
	updated := append([]CustomerAI(nil), customers...)
	for i := range updated {
		updated[i].Desire = int(game.ClampFloat(float64(updated[i].Desire+bal.DesireGrowthPerDay), 0, 100))
	}
	return updated
}
