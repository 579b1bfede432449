// Package rival provides the competitor side of the simulation: the
// behavioral-analysis engine that profiles the player's recent turns, the
// strategy and decision mapping built on that profile, and the delayed-action
// ledger with the bankruptcy lifecycle.
package rival

import "github.com/EESIZ/Chickenmaster2-sub000/internal/game"

// Profile is a bounded rolling window of one tracked player's turn records.
// Only the most recent N turns are kept; the oldest is evicted on overflow.
type Profile struct {
	Records []game.TurnRecord `json:"records"`
	Window  int               `json:"window"`
}

// NewProfile creates an empty profile with the given window size.
func NewProfile(window int) Profile {
	if window < 1 {
		window = 1
	}
	return Profile{Window: window}
}

// WithRecord returns the profile with a turn appended, evicting the oldest
// record when the window is full.
func (p Profile) WithRecord(r game.TurnRecord) Profile {
	records := append(append([]game.TurnRecord(nil), p.Records...), r)
	if len(records) > p.Window {
		records = records[len(records)-p.Window:]
	}
	p.Records = records
	return p
}

// Len returns how many turns the profile currently holds.
func (p Profile) Len() int { return len(p.Records) }
