package rival

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

// DelayedAction is a competitor move scheduled for a future turn.
type DelayedAction struct {
	ID         uuid.UUID      `json:"id"`
	Type       string         `json:"type"`
	TargetTurn int            `json:"target_turn"`
	Params     map[string]int `json:"params,omitempty"`
}

// Ledger holds each competitor's queue of delayed actions.
type Ledger struct {
	actions map[uuid.UUID][]DelayedAction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{actions: make(map[uuid.UUID][]DelayedAction)}
}

// Schedule queues a delayed action for a competitor.
func (l *Ledger) Schedule(competitorID uuid.UUID, a DelayedAction) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	l.actions[competitorID] = append(l.actions[competitorID], a)
}

// Pending returns a competitor's queued actions, soonest first.
func (l *Ledger) Pending(competitorID uuid.UUID) []DelayedAction {
	pending := append([]DelayedAction(nil), l.actions[competitorID]...)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].TargetTurn < pending[j].TargetTurn
	})
	return pending
}

// Due removes and returns every action whose target turn has arrived
// (target_turn ≤ current turn), soonest first.
func (l *Ledger) Due(competitorID uuid.UUID, currentTurn int) []DelayedAction {
	var due, remaining []DelayedAction
	for _, a := range l.actions[competitorID] {
		if a.TargetTurn <= currentTurn {
			due = append(due, a)
		} else {
			remaining = append(remaining, a)
		}
	}
	if len(remaining) == 0 {
		delete(l.actions, competitorID)
	} else {
		l.actions[competitorID] = remaining
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].TargetTurn < due[j].TargetTurn
	})
	return due
}

// Clear drops every queued action for a competitor.
func (l *Ledger) Clear(competitorID uuid.UUID) {
	delete(l.actions, competitorID)
}

// ShouldEliminate reports whether a competitor's bankruptcy has persisted for
// the full window. A competitor bankrupt 29 days survives; at 30 it goes.
func ShouldEliminate(c game.Competitor, now time.Time, windowDays int) bool {
	return c.Bankrupt() && c.BankruptDays(now) >= windowDays
}

// Eliminate clears the ledger of a competitor flagged for elimination.
func (l *Ledger) Eliminate(competitorID uuid.UUID) {
	l.Clear(competitorID)
}
