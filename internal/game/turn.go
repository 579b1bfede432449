package game

import "time"

// Turn is one in-game day.
type Turn struct {
	Number int       `json:"number"` // 1-based day counter
	Date   time.Time `json:"date"`   // calendar date of the day
}

// Next returns the following day's turn.
func (t Turn) Next() Turn {
	return Turn{Number: t.Number + 1, Date: t.Date.AddDate(0, 0, 1)}
}

// TurnRecord is one tracked player's per-turn footprint, consumed by the
// competitor analysis engine. Records live in a bounded rolling window; the
// oldest is evicted once the window is full.
type TurnRecord struct {
	TurnNumber  int      `json:"turn_number"`
	Actions     []string `json:"actions"`      // action ids taken this turn
	MoneySpent  int      `json:"money_spent"`  // total won spent this turn
	TimingScore float64  `json:"timing_score"` // 0–10 pacing heuristic
}
