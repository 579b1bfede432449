// Package schedule provides the day state machine: four fixed segments, a
// time-budgeted action queue, and dice-based resolution of queued cards.
// Transitions only move forward — PREP → BUSINESS → NIGHT → SLEEP — and SLEEP
// wraps to the next day's PREP.
package schedule

import (
	"math"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/catalog"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/config"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/dice"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

// QueuedAction is an ephemeral queue entry: it exists only between queueing
// and resolution at segment confirmation.
type QueuedAction struct {
	Card    catalog.Card `json:"card"`
	Segment game.Segment `json:"segment"`
}

// Scheduler tracks the current segment, hours consumed against the segment
// budget, and the pending action queue for one player.
type Scheduler struct {
	cat      *catalog.Catalog
	resolver *dice.Resolver
	balance  config.Balance
	clock    ClockMarks

	turn      game.Turn
	segment   game.Segment
	hoursUsed float64
	queue     []QueuedAction
}

// NewScheduler creates a scheduler starting at the given turn's PREP segment.
// Clock marks are normalized before use.
func NewScheduler(cat *catalog.Catalog, resolver *dice.Resolver, bal config.Balance, turn game.Turn) *Scheduler {
	clock := NormalizeClock(ClockMarks{
		Wake:  bal.WakeHour,
		Open:  bal.OpenHour,
		Close: bal.CloseHour,
		Sleep: bal.SleepHour,
	})
	return &Scheduler{
		cat:      cat,
		resolver: resolver,
		balance:  bal,
		clock:    clock,
		turn:     turn,
		segment:  game.SegmentPrep,
	}
}

// Turn returns the current turn.
func (s *Scheduler) Turn() game.Turn { return s.turn }

// Segment returns the current segment.
func (s *Scheduler) Segment() game.Segment { return s.segment }

// Clock returns the normalized clock marks.
func (s *Scheduler) Clock() ClockMarks { return s.clock }

// Budget returns the current segment's hours budget.
func (s *Scheduler) Budget() float64 { return s.clock.Budget(s.segment) }

// HoursUsed returns hours consumed in the current segment so far.
func (s *Scheduler) HoursUsed() float64 { return s.hoursUsed }

// Queue returns the pending queue (read-only copy).
func (s *Scheduler) Queue() []QueuedAction {
	return append([]QueuedAction(nil), s.queue...)
}

// queuedTotals sums hours, money and ingredient costs across the queue.
func (s *Scheduler) queuedTotals() (hours float64, money, ingredients int) {
	for _, qa := range s.queue {
		hours += qa.Card.Hours
		money += qa.Card.MoneyCost
		ingredients += qa.Card.IngredientCost
	}
	return hours, money, ingredients
}

// QueueAction validates and enqueues a card for the current segment. All
// validation happens here; resolution at confirmation never fails.
func (s *Scheduler) QueueAction(cardID string, p game.Player, st game.Store) error {
	if s.segment != game.SegmentPrep && s.segment != game.SegmentNight {
		return &InvalidSegmentTransitionError{Op: "queue_action", Current: s.segment}
	}

	card, ok := s.cat.Lookup(cardID)
	if !ok || card.Segment != s.segment {
		return &UnknownActionError{CardID: cardID, Segment: s.segment}
	}

	queuedHours, queuedMoney, queuedIngredients := s.queuedTotals()
	budget := s.Budget()
	if queuedHours+card.Hours > budget {
		return &CapacityExceededError{
			CardID:    cardID,
			Segment:   s.segment,
			Attempted: card.Hours,
			Queued:    queuedHours,
			Budget:    budget,
		}
	}
	if queuedMoney+card.MoneyCost > p.Money {
		return &InsufficientFundsError{
			CardID:    cardID,
			Needed:    card.MoneyCost,
			Available: p.Money - queuedMoney,
		}
	}
	if queuedIngredients+card.IngredientCost > st.IngredientQty {
		return &InsufficientIngredientsError{
			CardID:    cardID,
			Needed:    card.IngredientCost,
			Available: st.IngredientQty - queuedIngredients,
		}
	}

	s.queue = append(s.queue, QueuedAction{Card: card, Segment: s.segment})
	return nil
}

// ConfirmSegment resolves the queued cards and advances to the next segment.
// Unused time is first auto-filled with rest cards at 0.5h granularity so the
// segment is always fully accounted for. Only legal from PREP or NIGHT.
func (s *Scheduler) ConfirmSegment(p game.Player, st game.Store, pr game.Product) (game.Player, game.Store, game.Product, []dice.Outcome, error) {
	if s.segment != game.SegmentPrep && s.segment != game.SegmentNight {
		return p, st, pr, nil, &InvalidSegmentTransitionError{Op: "confirm_segment", Current: s.segment}
	}

	s.fillWithRest()

	outcomes := make([]dice.Outcome, 0, len(s.queue))
	for _, qa := range s.queue {
		statLevel := p.Stats.Get(qa.Card.Stat).Level
		out := s.resolver.Resolve(qa.Card, statLevel)
		p, st, pr = s.apply(out, qa.Card, p, st, pr)
		s.hoursUsed += qa.Card.Hours
		outcomes = append(outcomes, out)
	}

	s.queue = nil
	s.advance()
	return p, st, pr, outcomes, nil
}

// CompleteBusiness leaves the BUSINESS segment after the market has run.
func (s *Scheduler) CompleteBusiness() error {
	if s.segment != game.SegmentBusiness {
		return &InvalidSegmentTransitionError{Op: "complete_business", Current: s.segment}
	}
	s.hoursUsed = s.Budget()
	s.advance()
	return nil
}

// ResolveSleep closes out the day: fatigue recovers at a fixed rate per sleep
// hour, freshness takes its overnight decay tick, awareness decays, and the
// next day's turn opens at PREP with prepared servings reset to zero.
func (s *Scheduler) ResolveSleep(p game.Player, st game.Store, pr game.Product) (game.Player, game.Store, game.Product, error) {
	if s.segment != game.SegmentSleep {
		return p, st, pr, &InvalidSegmentTransitionError{Op: "resolve_sleep", Current: s.segment}
	}

	sleepHours := s.Budget()
	recovery := int(math.Round(float64(s.balance.FatigueRecoveryPerSleepHour) * sleepHours))
	p = p.WithFatigue(p.Fatigue - recovery)

	st = st.DecayFreshness(s.balance.FreshnessDecayPerDay)
	st = st.WithPrepared(0)
	pr = pr.WithAwareness(pr.Awareness - s.balance.AwarenessDecayPerDay)

	s.turn = s.turn.Next()
	s.hoursUsed = 0
	s.segment = game.SegmentPrep
	return p, st, pr, nil
}

// fillWithRest pads unused segment time with minimal-cost rest cards.
func (s *Scheduler) fillWithRest() {
	rest, ok := s.cat.RestCard(s.segment)
	if !ok {
		return
	}
	granularity := s.balance.RestGranularityHours
	if granularity <= 0 {
		granularity = rest.Hours
	}

	queuedHours, _, _ := s.queuedTotals()
	slack := s.Budget() - queuedHours
	if slack <= 0 {
		return
	}
	count := int(math.Ceil(slack/granularity - 1e-9))
	for i := 0; i < count; i++ {
		s.queue = append(s.queue, QueuedAction{Card: rest, Segment: s.segment})
	}
}

// apply folds one outcome into the entity snapshots.
func (s *Scheduler) apply(out dice.Outcome, card catalog.Card, p game.Player, st game.Store, pr game.Product) (game.Player, game.Store, game.Product) {
	p = p.WithMoney(p.Money + out.MoneyDelta)
	p = p.WithFatigue(p.Fatigue + out.FatigueDelta)
	p = p.WithStatExp(card.Stat, out.StatExp)

	switch out.EffectKind {
	case catalog.EffectPrepareServings:
		st = st.WithIngredients(st.IngredientQty - card.IngredientCost)
		st = st.WithPrepared(st.PreparedQty + out.EffectAmount)
	case catalog.EffectGainIngredients:
		st = st.BlendIngredients(out.EffectAmount)
	case catalog.EffectGainAwareness:
		pr = pr.WithAwareness(pr.Awareness + float64(out.EffectAmount))
	case catalog.EffectGainReputation:
		st = st.WithReputation(st.Reputation + float64(out.EffectAmount))
	case catalog.EffectResearch:
		p = p.WithResearch(out.EffectAmount)
		if card.IngredientCost > 0 {
			st = st.WithIngredients(st.IngredientQty - card.IngredientCost)
		}
		pr = pr.WithQuality(game.DeriveQuality(p.Stats.Get(game.StatCooking).Level, p.Research, st.IngredientFreshness))
	case catalog.EffectEarnMoney:
		p = p.WithMoney(p.Money + out.EffectAmount)
	}

	return p, st, pr
}

// advance moves to the next segment, resetting the per-segment hour counter.
func (s *Scheduler) advance() {
	s.segment = s.segment.NextSegment()
	s.hoursUsed = 0
}
