package market

import (
	"math"
	"testing"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/config"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/decision"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/entropy"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

func TestSimulateDayBaseline(t *testing.T) {
	// 11h × 3/h × (50/50) × clamp(80/80) = 33 customers; 40 prepared covers
	// them all; revenue = 33 × 20000.
	sim := NewSimulator(config.Default())
	res := sim.SimulateDay(Inputs{
		Hours:       11,
		Reputation:  50,
		PreparedQty: 40,
		Freshness:   80,
		Price:       20_000,
	})

	if res.BaseCustomers != 33 {
		t.Errorf("base customers %d, want 33", res.BaseCustomers)
	}
	if res.Served != 33 {
		t.Errorf("served %d, want 33", res.Served)
	}
	if res.TurnedAway != 0 {
		t.Errorf("turned away %d, want 0", res.TurnedAway)
	}
	if res.Revenue != 660_000 {
		t.Errorf("revenue %d, want 660000", res.Revenue)
	}
	if res.RepPenalty != 0 {
		t.Errorf("penalty %d, want 0", res.RepPenalty)
	}
}

func TestTurnedAwayPenalty(t *testing.T) {
	sim := NewSimulator(config.Default())

	tests := []struct {
		prepared    int
		wantAway    int
		wantPenalty int
	}{
		{21, 12, 2}, // 33 demand, 21 prepared → 12 away → 12/5 = 2
		{0, 33, 6},  // all away → 33/5 = 6
		{33, 0, 0},  // exact
	}
	for _, tt := range tests {
		res := sim.SimulateDay(Inputs{
			Hours: 11, Reputation: 50, PreparedQty: tt.prepared, Freshness: 80, Price: 20_000,
		})
		if res.TurnedAway != tt.wantAway {
			t.Errorf("prepared %d: turned away %d, want %d", tt.prepared, res.TurnedAway, tt.wantAway)
		}
		if res.RepPenalty != tt.wantPenalty {
			t.Errorf("prepared %d: penalty %d, want %d", tt.prepared, res.RepPenalty, tt.wantPenalty)
		}
	}
}

func TestPenaltyCap(t *testing.T) {
	// Massive demand against zero stock: penalty caps at 10.
	sim := NewSimulator(config.Default())
	res := sim.SimulateDay(Inputs{
		Hours: 11, Reputation: 100, PreparedQty: 0, Freshness: 100, Price: 20_000,
	})
	if res.RepPenalty != 10 {
		t.Errorf("penalty %d, want cap 10", res.RepPenalty)
	}
}

func TestFreshnessMultiplierClamps(t *testing.T) {
	sim := NewSimulator(config.Default())

	low := sim.SimulateDay(Inputs{Hours: 11, Reputation: 50, PreparedQty: 99, Freshness: 0, Price: 20_000})
	if low.FreshnessMult != 0.5 {
		t.Errorf("freshness mult at 0 freshness: %.2f, want 0.5", low.FreshnessMult)
	}

	high := sim.SimulateDay(Inputs{Hours: 11, Reputation: 50, PreparedQty: 99, Freshness: 100, Price: 20_000})
	if high.FreshnessMult != 1.2 {
		t.Errorf("freshness mult at 100 freshness: %.2f, want 1.2", high.FreshnessMult)
	}
}

func TestDecisionEffectsOnDemandAndPrice(t *testing.T) {
	sim := NewSimulator(config.Default())
	choiceA := decision.ChoiceA
	decisions := []decision.Decision{
		{
			A:      decision.Option{Effect: decision.EffectBag{CustomerFlat: 7, CustomerPct: 10, MarginPct: -20}},
			Choice: &choiceA,
		},
		{
			// Unresolved — must be ignored.
			A: decision.Option{Effect: decision.EffectBag{CustomerFlat: 100}},
		},
	}

	res := sim.SimulateDay(Inputs{
		Hours: 11, Reputation: 50, PreparedQty: 99, Freshness: 80, Price: 20_000,
		Decisions: decisions,
	})

	// (33 + 7) × 1.10 = 44; price × 0.8 = 16000.
	if res.TotalCustomers != 44 {
		t.Errorf("total customers %d, want 44", res.TotalCustomers)
	}
	if res.EffectivePrice != 16_000 {
		t.Errorf("effective price %.0f, want 16000", res.EffectivePrice)
	}
	if res.Revenue != 44*16_000 {
		t.Errorf("revenue %d, want %d", res.Revenue, 44*16_000)
	}
}

func TestPriceMultiplierFloors(t *testing.T) {
	sim := NewSimulator(config.Default())
	choiceA := decision.ChoiceA
	decisions := []decision.Decision{
		{
			A:      decision.Option{Effect: decision.EffectBag{MarginPct: -90, SalesPenaltyPct: -95}},
			Choice: &choiceA,
		},
	}
	res := sim.SimulateDay(Inputs{
		Hours: 11, Reputation: 50, PreparedQty: 99, Freshness: 80, Price: 20_000,
		Decisions: decisions,
	})
	if res.MarginMult != 0.5 {
		t.Errorf("margin mult %.2f, want floor 0.5", res.MarginMult)
	}
	if res.SalesMult != 0.3 {
		t.Errorf("sales mult %.2f, want floor 0.3", res.SalesMult)
	}
}

func TestIngredientBlend(t *testing.T) {
	st := game.Store{IngredientQty: 10, IngredientFreshness: 60}
	st = st.BlendIngredients(50)

	want := (10.0*60 + 50.0*100) / 60
	if math.Abs(st.IngredientFreshness-want) > 1e-9 {
		t.Errorf("blended freshness %.4f, want %.4f", st.IngredientFreshness, want)
	}
	if st.IngredientQty != 60 {
		t.Errorf("quantity %d, want 60", st.IngredientQty)
	}
}

func TestSettleConsumesPreparedAndPaysPlayer(t *testing.T) {
	sim := NewSimulator(config.Default())
	res := sim.SimulateDay(Inputs{
		Hours: 11, Reputation: 50, PreparedQty: 21, Freshness: 80, Price: 20_000,
	})

	product := game.NewProduct("chicken", 20_000)
	store := game.NewStore("shop", 0, product.ID).WithPrepared(21)
	player := game.NewPlayer("p", 100_000, store.ID)

	player2, store2, _ := sim.Settle(res, player, store, product)
	if player2.Money != 100_000+res.Revenue {
		t.Errorf("money %d, want %d", player2.Money, 100_000+res.Revenue)
	}
	if store2.PreparedQty != 0 {
		t.Errorf("prepared %d, want 0", store2.PreparedQty)
	}
	if store2.Reputation != store.Reputation-float64(res.RepPenalty) {
		t.Errorf("reputation %.1f, want %.1f", store2.Reputation, store.Reputation-float64(res.RepPenalty))
	}
}

func TestDeterministicReplay(t *testing.T) {
	parts := []Participant{
		{Name: "a", Price: 20_000, Quality: 60, Awareness: 30},
		{Name: "b", Price: 18_000, Quality: 50, Awareness: 50},
	}

	run := func(seed int64) ([]ShareResult, []CustomerAI) {
		rng := entropy.NewSeeded(seed)
		m := NewLegacyMarket(config.Default(), rng)
		customers := NewCustomerPool(30, rng)
		return m.SimulateFootfall(100, parts, customers)
	}

	r1, c1 := run(42)
	r2, c2 := run(42)
	for i := range r1 {
		if r1[i] != r2[i] {
			t.Fatalf("share results diverge at %d: %+v vs %+v", i, r1[i], r2[i])
		}
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("customers diverge at %d", i)
		}
	}
}

func TestFootfallOrderInvariance(t *testing.T) {
	// Same participants in different order must produce the same per-name
	// totals.
	partsAB := []Participant{
		{Name: "a", Price: 20_000, Quality: 60, Awareness: 40},
		{Name: "b", Price: 20_000, Quality: 60, Awareness: 40}, // identical stats → tie
	}
	partsBA := []Participant{partsAB[1], partsAB[0]}

	run := func(parts []Participant) map[string]int {
		rng := entropy.NewSeeded(11)
		m := NewLegacyMarket(config.Default(), rng)
		customers := NewCustomerPool(30, entropy.NewSeeded(5))
		results, _ := m.SimulateFootfall(100, parts, customers)
		byName := make(map[string]int)
		for _, r := range results {
			byName[r.Name] = r.Sales()
		}
		return byName
	}

	ab := run(partsAB)
	ba := run(partsBA)
	for name, sales := range ab {
		if ba[name] != sales {
			t.Errorf("participant %s: %d sales vs %d when order flipped", name, sales, ba[name])
		}
	}
}

func TestIndividualTierDesireReset(t *testing.T) {
	parts := []Participant{{Name: "only", Price: 10_000, Quality: 50, Awareness: 50}}

	rng := entropy.NewSeeded(8)
	m := NewLegacyMarket(config.Default(), rng)
	customers := []CustomerAI{
		{ID: 1, PriceSensitivity: 0.5, QualityPref: 0.5, BrandLoyalty: 0.5, Desire: 100}, // always buys
	}

	results, updated := m.SimulateFootfall(10, parts, customers)
	if results[0].IndividualSales != 1 {
		t.Fatalf("individual sales %d, want 1", results[0].IndividualSales)
	}
	if updated[0].Desire != 0 {
		t.Errorf("desire %d after purchase, want 0", updated[0].Desire)
	}
}

func TestGrowDesireCaps(t *testing.T) {
	bal := config.Default()
	customers := []CustomerAI{{Desire: 97}, {Desire: 10}}
	grown := GrowDesire(customers, bal)
	if grown[0].Desire != 100 {
		t.Errorf("desire %d, want cap 100", grown[0].Desire)
	}
	if grown[1].Desire != 10+bal.DesireGrowthPerDay {
		t.Errorf("desire %d, want %d", grown[1].Desire, 10+bal.DesireGrowthPerDay)
	}
}

func TestPriceScoreDirectionsDiffer(t *testing.T) {
	// The two tiers deliberately disagree on price: the individual tier
	// favors the cheaper seller, the aggregate tier reads higher price as a
	// premium signal. Each must stay internally consistent.
	cheap := Participant{Name: "cheap", Price: 10_000, Quality: 50, Awareness: 50}
	dear := Participant{Name: "dear", Price: 30_000, Quality: 50, Awareness: 50}
	avg := marketAverages([]Participant{cheap, dear})

	priceShopper := CustomerAI{PriceSensitivity: 1, QualityPref: 0, BrandLoyalty: 1}
	if individualScore(cheap, avg, priceShopper) <= individualScore(dear, avg, priceShopper) {
		t.Error("individual tier should favor the cheaper seller")
	}
	if aggregateScore(dear, avg) <= aggregateScore(cheap, avg) {
		t.Error("aggregate tier should favor the pricier seller")
	}
}
