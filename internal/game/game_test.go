package game

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStatExpOverflow(t *testing.T) {
	tests := []struct {
		start     Stat
		gained    int
		wantLevel int
		wantExp   int
	}{
		{Stat{Level: 10, Exp: 0}, 50, 10, 50},
		{Stat{Level: 10, Exp: 60}, 50, 11, 10},
		{Stat{Level: 10, Exp: 0}, 250, 12, 50},
		{Stat{Level: 10, Exp: 99}, 1, 11, 0},
		{Stat{Level: 10, Exp: 30}, 0, 10, 30},
		{Stat{Level: 10, Exp: 30}, -5, 10, 30}, // negative gain ignored
	}
	for _, tt := range tests {
		got := tt.start.WithExp(tt.gained)
		if got.Level != tt.wantLevel || got.Exp != tt.wantExp {
			t.Errorf("%+v +%d exp = %+v, want level %d exp %d",
				tt.start, tt.gained, got, tt.wantLevel, tt.wantExp)
		}
	}
}

func TestPlayerCopyOnWrite(t *testing.T) {
	p := NewPlayer("owner", 100_000, uuid.Nil)

	p2 := p.WithMoney(50_000).WithFatigue(30).WithStatExp(StatCooking, 150)
	if p.Money != 100_000 || p.Fatigue != 0 || p.Stats.Get(StatCooking).Level != 10 {
		t.Error("With methods mutated the original player")
	}
	if p2.Money != 50_000 || p2.Fatigue != 30 {
		t.Errorf("copy carries money %d fatigue %d, want 50000/30", p2.Money, p2.Fatigue)
	}
	if p2.Stats.Get(StatCooking).Level != 11 || p2.Stats.Get(StatCooking).Exp != 50 {
		t.Errorf("cooking stat %+v, want level 11 exp 50", p2.Stats.Get(StatCooking))
	}
}

func TestPlayerMoneyFloorsAtZero(t *testing.T) {
	p := NewPlayer("owner", 1000, uuid.Nil)
	if p.WithMoney(-500).Money != 0 {
		t.Error("negative money not floored at zero")
	}
}

func TestFatigueBands(t *testing.T) {
	p := NewPlayer("owner", 0, uuid.Nil) // stamina 100

	tests := []struct {
		fatigue int
		want    FatigueBand
	}{
		{0, FatigueFresh},
		{49, FatigueFresh},
		{50, FatigueTired},
		{89, FatigueTired},
		{90, FatigueExhausted},
		{100, FatigueOverdrawn},
		{199, FatigueOverdrawn},
		{200, FatigueCollapsed},
	}
	for _, tt := range tests {
		if got := p.WithFatigue(tt.fatigue).Band(); got != tt.want {
			t.Errorf("fatigue %d: band %d, want %d", tt.fatigue, got, tt.want)
		}
	}
}

func TestProductPriceGrid(t *testing.T) {
	pr := NewProduct("chicken", 20_000)

	tests := []struct {
		price int
		want  int
	}{
		{20_550, 20_500}, // snapped down to the 100-won grid
		{500, 1_000},     // below floor
		{250_000, 100_000},
		{19_999, 19_900},
	}
	for _, tt := range tests {
		if got := pr.WithPrice(tt.price, 100, 1_000, 100_000).Price; got != tt.want {
			t.Errorf("price %d → %d, want %d", tt.price, got, tt.want)
		}
	}
}

func TestDeriveQuality(t *testing.T) {
	// 30×0.8 + 20×0.5 + 90×0.2 = 52
	if q := DeriveQuality(30, 20, 90); q != 52 {
		t.Errorf("quality %.1f, want 52", q)
	}
	// Clamps at 100.
	if q := DeriveQuality(200, 200, 100); q != 100 {
		t.Errorf("quality %.1f, want clamp 100", q)
	}
}

func TestStoreClampsAndFloors(t *testing.T) {
	st := NewStore("shop", 60_000, uuid.Nil)

	if st.WithReputation(150).Reputation != 100 {
		t.Error("reputation not clamped at 100")
	}
	if st.WithReputation(-10).Reputation != 0 {
		t.Error("reputation not clamped at 0")
	}
	if st.WithIngredients(-5).IngredientQty != 0 {
		t.Error("ingredients not floored at zero")
	}
	if st.DecayFreshness(200).IngredientFreshness != 0 {
		t.Error("freshness decay not clamped at 0")
	}
}

func TestBlendIngredientsZeroGain(t *testing.T) {
	st := NewStore("shop", 0, uuid.Nil).WithIngredients(10).WithFreshness(60)
	if got := st.BlendIngredients(0); got != st {
		t.Error("zero-gain blend changed the store")
	}
}

func TestTurnNextAdvancesDate(t *testing.T) {
	tn := Turn{Number: 1, Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)}
	next := tn.Next()
	if next.Number != tn.Number+1 {
		t.Errorf("turn number %d, want %d", next.Number, tn.Number+1)
	}
	if !next.Date.Equal(tn.Date.AddDate(0, 0, 1)) {
		t.Errorf("date %v, want next day", next.Date)
	}
}

func TestSegmentCycle(t *testing.T) {
	order := []Segment{SegmentPrep, SegmentBusiness, SegmentNight, SegmentSleep}
	for i, s := range order {
		want := order[(i+1)%len(order)]
		if got := s.NextSegment(); got != want {
			t.Errorf("after %s comes %s, want %s", s, got, want)
		}
	}
}
