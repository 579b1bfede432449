package engine

import (
	"errors"
	"log/slog"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/decision"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/market"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/schedule"
)

// Chooser answers a decision card. The autoplay harness uses a heuristic;
// interactive frontends prompt the player.
type Chooser func(d decision.Decision) decision.Choice

// GreedyChooser picks the option with the better immediate money outcome,
// breaking ties toward A.
func GreedyChooser(d decision.Decision) decision.Choice {
	if d.B.Effect.MoneyDelta > d.A.Effect.MoneyDelta {
		return decision.ChoiceB
	}
	return decision.ChoiceA
}

// RunDay plays one full day with a simple scripted policy: cook and restock
// in PREP, sell through BUSINESS, study or moonlight at NIGHT, then sleep.
// It is a convenience for autoplay; frontends drive the segment calls
// directly.
func (s *Simulation) RunDay(choose Chooser) (DayReport, market.Result, error) {
	// PREP: restock when the pantry runs low, then cook, then tidy up.
	if s.Store.IngredientQty < 20 {
		s.queueIfPossible("ORDER_INGREDIENTS")
	}
	s.queueIfPossible("COOK_PREP")
	s.queueIfPossible("COOK_PREP")
	s.queueIfPossible("CLEAN_STORE")
	if _, err := s.ConfirmSegment(); err != nil {
		return DayReport{}, market.Result{}, err
	}

	// BUSINESS: answer whatever the day throws at us, then sell.
	for _, d := range s.StartBusiness() {
		if err := s.AnswerDecision(d.ID, choose(d)); err != nil {
			return DayReport{}, market.Result{}, err
		}
	}
	res, err := s.RunBusiness()
	if err != nil {
		return DayReport{}, market.Result{}, err
	}

	// NIGHT: invest in skill when flush, moonlight when broke.
	if s.Player.Money > 150_000 {
		s.queueIfPossible("STUDY_COOKING")
		s.queueIfPossible("ONLINE_ADS")
	} else {
		s.queueIfPossible("SIDE_JOB")
	}
	if _, err := s.ConfirmSegment(); err != nil {
		return DayReport{}, market.Result{}, err
	}

	report, err := s.Sleep()
	if err != nil {
		return DayReport{}, market.Result{}, err
	}

	slog.Info("daily report",
		"day", report.Turn.Number,
		"date", report.Turn.Date.Format("2006-01-02"),
		"served", res.Served,
		"turned_away", res.TurnedAway,
		"revenue", res.Revenue,
		"money", report.PlayerMoney,
		"reputation", report.Reputation,
		"fatigue", s.Player.Fatigue,
		"band", s.Player.Band(),
		"rivals", len(s.Rivals),
	)
	return report, res, nil
}

// queueIfPossible queues a card, quietly skipping validation rejections:
// running out of time, money or ingredients just means the scripted day does
// less. Invariant bugs still surface.
func (s *Simulation) queueIfPossible(cardID string) {
	err := s.QueueAction(cardID)
	if err == nil {
		return
	}
	var capErr *schedule.CapacityExceededError
	var fundsErr *schedule.InsufficientFundsError
	var ingErr *schedule.InsufficientIngredientsError
	if errors.As(err, &capErr) || errors.As(err, &fundsErr) || errors.As(err, &ingErr) {
		slog.Debug("skipping action", "card", cardID, "reason", err)
		return
	}
	slog.Error("unexpected queue failure", "card", cardID, "error", err)
}
