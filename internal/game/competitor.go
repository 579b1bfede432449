package game

import (
	"time"

	"github.com/google/uuid"
)

// Competitor is a rival restaurant owner driven by the analysis engine.
// Invariant: at least one store; money floors at zero and zero money marks
// the competitor bankrupt.
type Competitor struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Money         int         `json:"money"`
	Strategy      string      `json:"strategy"`
	StoreIDs      []uuid.UUID `json:"store_ids"`
	BankruptSince *time.Time  `json:"bankrupt_since,omitempty"`
}

// NewCompetitor creates a competitor with one store.
func NewCompetitor(name string, money int, storeID uuid.UUID) Competitor {
	return Competitor{
		ID:       uuid.New(),
		Name:     name,
		Money:    money,
		Strategy: "balanced",
		StoreIDs: []uuid.UUID{storeID},
	}
}

// Bankrupt reports whether the competitor is currently bankrupt.
func (c Competitor) Bankrupt() bool {
	return c.BankruptSince != nil
}

// WithMoney returns the competitor with money set. Money is floored at zero;
// reaching zero sets bankrupt_since (idempotent — an already-bankrupt
// competitor keeps its original date), and recovering above zero clears it.
func (c Competitor) WithMoney(money int, now time.Time) Competitor {
	c.Money = FloorZero(money)
	if c.Money == 0 {
		if c.BankruptSince == nil {
			since := now
			c.BankruptSince = &since
		}
	} else {
		c.BankruptSince = nil
	}
	// Copy the store slice so the snapshot does not share backing arrays.
	c.StoreIDs = append([]uuid.UUID(nil), c.StoreIDs...)
	return c
}

// BankruptDays returns how many whole days the competitor has been bankrupt
// as of now, or 0 if solvent.
func (c Competitor) BankruptDays(now time.Time) int {
	if c.BankruptSince == nil {
		return 0
	}
	days := int(now.Sub(*c.BankruptSince).Hours() / 24)
	return FloorZero(days)
}
