package schedule

import (
	"fmt"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

// CapacityExceededError reports a card that would not fit the segment's
// remaining time budget.
type CapacityExceededError struct {
	CardID    string
	Segment   game.Segment
	Attempted float64 // hours the card needs
	Queued    float64 // hours already queued
	Budget    float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("segment %s: card %s needs %.1fh but %.1fh of %.1fh already queued",
		e.Segment, e.CardID, e.Attempted, e.Queued, e.Budget)
}

// InsufficientFundsError reports a card whose money cost exceeds headroom
// given already-queued cards.
type InsufficientFundsError struct {
	CardID    string
	Needed    int
	Available int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("card %s: needs %d won, %d available after queued costs",
		e.CardID, e.Needed, e.Available)
}

// InsufficientIngredientsError reports a card whose ingredient cost exceeds
// headroom given already-queued cards.
type InsufficientIngredientsError struct {
	CardID    string
	Needed    int
	Available int
}

func (e *InsufficientIngredientsError) Error() string {
	return fmt.Sprintf("card %s: needs %d ingredient units, %d available after queued costs",
		e.CardID, e.Needed, e.Available)
}

// InvalidSegmentTransitionError reports an operation attempted from the wrong
// segment.
type InvalidSegmentTransitionError struct {
	Op      string
	Current game.Segment
}

func (e *InvalidSegmentTransitionError) Error() string {
	return fmt.Sprintf("%s: not legal from segment %s", e.Op, e.Current)
}

// UnknownActionError reports a card id the catalog does not carry for the
// current segment.
type UnknownActionError struct {
	CardID  string
	Segment game.Segment
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q in segment %s", e.CardID, e.Segment)
}
