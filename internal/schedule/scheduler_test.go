package schedule

import (
	"errors"
	"testing"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/catalog"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/config"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/dice"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/entropy"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

func newTestScheduler(seed int64) (*Scheduler, game.Player, game.Store, game.Product) {
	bal := config.Default()
	cat := catalog.Default()
	resolver := dice.NewResolver(entropy.NewSeeded(seed))
	sched := NewScheduler(cat, resolver, bal, game.Turn{Number: 1})

	product := game.NewProduct("chicken", 20_000)
	store := game.NewStore("shop", 50_000, product.ID).WithIngredients(100)
	player := game.NewPlayer("p", 500_000, store.ID)
	return sched, player, store, product
}

func TestSegmentCycle(t *testing.T) {
	sched, p, st, pr := newTestScheduler(1)

	if sched.Segment() != game.SegmentPrep {
		t.Fatalf("expected PREP start, got %s", sched.Segment())
	}

	p, st, pr, _, err := sched.ConfirmSegment(p, st, pr)
	if err != nil {
		t.Fatalf("confirm prep: %v", err)
	}
	if sched.Segment() != game.SegmentBusiness {
		t.Fatalf("expected BUSINESS, got %s", sched.Segment())
	}

	if err := sched.CompleteBusiness(); err != nil {
		t.Fatalf("complete business: %v", err)
	}
	if sched.Segment() != game.SegmentNight {
		t.Fatalf("expected NIGHT, got %s", sched.Segment())
	}

	p, st, pr, _, err = sched.ConfirmSegment(p, st, pr)
	if err != nil {
		t.Fatalf("confirm night: %v", err)
	}
	if sched.Segment() != game.SegmentSleep {
		t.Fatalf("expected SLEEP, got %s", sched.Segment())
	}

	_, _, _, err = sched.ResolveSleep(p, st, pr)
	if err != nil {
		t.Fatalf("resolve sleep: %v", err)
	}
	if sched.Segment() != game.SegmentPrep {
		t.Fatalf("expected PREP after sleep, got %s", sched.Segment())
	}
	if sched.Turn().Number != 2 {
		t.Fatalf("expected day 2, got %d", sched.Turn().Number)
	}
}

func TestInvalidTransitions(t *testing.T) {
	sched, p, st, pr := newTestScheduler(1)

	// CompleteBusiness from PREP.
	var transErr *InvalidSegmentTransitionError
	if err := sched.CompleteBusiness(); !errors.As(err, &transErr) {
		t.Fatalf("expected InvalidSegmentTransitionError, got %v", err)
	}

	// ConfirmSegment from BUSINESS.
	p, st, pr, _, _ = sched.ConfirmSegment(p, st, pr)
	if _, _, _, _, err := sched.ConfirmSegment(p, st, pr); !errors.As(err, &transErr) {
		t.Fatalf("expected InvalidSegmentTransitionError from BUSINESS, got %v", err)
	}

	// ResolveSleep from BUSINESS.
	if _, _, _, err := sched.ResolveSleep(p, st, pr); !errors.As(err, &transErr) {
		t.Fatalf("expected InvalidSegmentTransitionError for sleep, got %v", err)
	}
}

func TestQueueCapacityExceeded(t *testing.T) {
	sched, p, st, _ := newTestScheduler(1)

	// PREP budget is open-wake = 4h; COOK_PREP is 2h.
	if err := sched.QueueAction("COOK_PREP", p, st); err != nil {
		t.Fatalf("first cook: %v", err)
	}
	if err := sched.QueueAction("COOK_PREP", p, st); err != nil {
		t.Fatalf("second cook: %v", err)
	}

	err := sched.QueueAction("CLEAN_STORE", p, st)
	var capErr *CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityExceededError, got %v", err)
	}
	if capErr.Budget != 4 {
		t.Errorf("expected budget 4, got %.1f", capErr.Budget)
	}
}

func TestQueueInsufficientFunds(t *testing.T) {
	sched, p, st, _ := newTestScheduler(1)
	p = p.WithMoney(30_000) // ORDER_INGREDIENTS costs 50k

	err := sched.QueueAction("ORDER_INGREDIENTS", p, st)
	var fundsErr *InsufficientFundsError
	if !errors.As(err, &fundsErr) {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}
	if fundsErr.Available != 30_000 {
		t.Errorf("expected 30000 available, got %d", fundsErr.Available)
	}
}

func TestQueueInsufficientIngredients(t *testing.T) {
	sched, p, st, _ := newTestScheduler(1)
	st = st.WithIngredients(5) // COOK_PREP needs 10

	err := sched.QueueAction("COOK_PREP", p, st)
	var ingErr *InsufficientIngredientsError
	if !errors.As(err, &ingErr) {
		t.Fatalf("expected InsufficientIngredientsError, got %v", err)
	}
}

func TestQueueUnknownAction(t *testing.T) {
	sched, p, st, _ := newTestScheduler(1)

	var unknownErr *UnknownActionError
	if err := sched.QueueAction("NO_SUCH_CARD", p, st); !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownActionError, got %v", err)
	}
	// Night-only card queued during PREP is also unknown for this segment.
	if err := sched.QueueAction("STUDY_COOKING", p, st); !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownActionError for wrong segment, got %v", err)
	}
}

func TestRestAutoFill(t *testing.T) {
	// Exactly-budgeted queue gets zero rest cards; under-filled by h hours
	// gets ceil(h/0.5) rest cards.
	tests := []struct {
		name      string
		queue     []string
		wantCards int // total resolved cards
	}{
		{"exact fit", []string{"COOK_PREP", "COOK_PREP"}, 2},
		{"one cook", []string{"COOK_PREP"}, 1 + 4}, // 2h slack → 4 rest cards
		{"empty", nil, 8}, // 4h slack → 8 rest cards
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, p, st, pr := newTestScheduler(1)
			for _, id := range tt.queue {
				if err := sched.QueueAction(id, p, st); err != nil {
					t.Fatalf("queue %s: %v", id, err)
				}
			}
			_, _, _, outcomes, err := sched.ConfirmSegment(p, st, pr)
			if err != nil {
				t.Fatalf("confirm: %v", err)
			}
			if len(outcomes) != tt.wantCards {
				t.Errorf("expected %d resolved cards, got %d", tt.wantCards, len(outcomes))
			}
		})
	}
}

func TestSleepRecoversFatigueAndDecaysFreshness(t *testing.T) {
	sched, p, st, pr := newTestScheduler(1)
	p = p.WithFatigue(80)
	st = st.WithFreshness(90).WithPrepared(12)

	// Walk to SLEEP.
	p, st, pr, _, _ = sched.ConfirmSegment(p, st, pr)
	sched.CompleteBusiness()
	p, st, pr, _, _ = sched.ConfirmSegment(p, st, pr)

	p2, st2, _, err := sched.ResolveSleep(p, st, pr)
	if err != nil {
		t.Fatalf("sleep: %v", err)
	}

	// 7h sleep (wake 7, sleep 24) × 10/h recovery = 70.
	if p2.Fatigue >= p.Fatigue {
		t.Errorf("fatigue did not recover: %d → %d", p.Fatigue, p2.Fatigue)
	}
	if st2.IngredientFreshness >= st.IngredientFreshness {
		t.Errorf("freshness did not decay: %.1f → %.1f", st.IngredientFreshness, st2.IngredientFreshness)
	}
	if st2.PreparedQty != 0 {
		t.Errorf("prepared not reset, got %d", st2.PreparedQty)
	}
}

func TestRandomSequencesKeepInvariants(t *testing.T) {
	// Property check: after any sequence of valid operations, freshness and
	// reputation stay in [0,100] and quantities stay non-negative.
	rng := entropy.NewSeeded(99)
	cards := []string{"COOK_PREP", "ORDER_INGREDIENTS", "CLEAN_STORE", "HAND_FLYERS", "REST",
		"STUDY_COOKING", "RESEARCH_RECIPE", "ONLINE_ADS", "SIDE_JOB", "NIGHT_REST"}

	sched, p, st, pr := newTestScheduler(7)
	for day := 0; day < 20; day++ {
		for i := 0; i < 6; i++ {
			sched.QueueAction(cards[rng.Intn(len(cards))], p, st) // rejections are fine
		}
		var err error
		p, st, pr, _, err = sched.ConfirmSegment(p, st, pr)
		if err != nil {
			t.Fatalf("day %d prep: %v", day, err)
		}
		sched.CompleteBusiness()
		for i := 0; i < 4; i++ {
			sched.QueueAction(cards[rng.Intn(len(cards))], p, st)
		}
		p, st, pr, _, err = sched.ConfirmSegment(p, st, pr)
		if err != nil {
			t.Fatalf("day %d night: %v", day, err)
		}
		p, st, pr, err = sched.ResolveSleep(p, st, pr)
		if err != nil {
			t.Fatalf("day %d sleep: %v", day, err)
		}

		if st.IngredientFreshness < 0 || st.IngredientFreshness > 100 {
			t.Fatalf("day %d: freshness out of range: %f", day, st.IngredientFreshness)
		}
		if st.Reputation < 0 || st.Reputation > 100 {
			t.Fatalf("day %d: reputation out of range: %f", day, st.Reputation)
		}
		if st.IngredientQty < 0 || st.PreparedQty < 0 {
			t.Fatalf("day %d: negative quantity", day)
		}
		if p.Money < 0 || p.Fatigue < 0 {
			t.Fatalf("day %d: negative money or fatigue", day)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		name string
		in   ClockMarks
		want ClockMarks
	}{
		{
			"defaults pass through",
			ClockMarks{Wake: 7, Open: 11, Close: 22, Sleep: 24},
			ClockMarks{Wake: 7, Open: 11, Close: 22, Sleep: 24},
		},
		{
			"out of range clamps",
			ClockMarks{Wake: 2, Open: 30, Close: 10, Sleep: 5},
			ClockMarks{Wake: 5, Open: 14, Close: 16, Sleep: 20},
		},
		{
			"ordering enforced",
			ClockMarks{Wake: 10, Open: 8, Close: 16, Sleep: 20},
			ClockMarks{Wake: 10, Open: 11, Close: 16, Sleep: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeClock(tt.in)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBudgetsSumTo24(t *testing.T) {
	m := NormalizeClock(ClockMarks{Wake: 7, Open: 11, Close: 22, Sleep: 24})
	sum := 0.0
	for _, seg := range []game.Segment{game.SegmentPrep, game.SegmentBusiness, game.SegmentNight, game.SegmentSleep} {
		sum += m.Budget(seg)
	}
	if sum != 24 {
		t.Errorf("segment budgets sum to %.1f, want 24", sum)
	}
}
