// Package game provides the entity data model: players, stores, products,
// competitors and turns. Every entity is an immutable value type — operations
// return a modified copy, never mutate in place — so a day of simulation is a
// chain of snapshots that can be replayed or discarded.
package game

// StatKind identifies one of the five player stats.
type StatKind uint8

const (
	StatCooking StatKind = iota
	StatService
	StatMarketing
	StatManagement
	StatStamina
)

// NumStats is the total number of stat kinds.
const NumStats = 5

// statNames indexes StatKind for logging.
var statNames = [NumStats]string{"cooking", "service", "marketing", "management", "stamina"}

// String returns the stat's lowercase name.
func (k StatKind) String() string {
	if int(k) < len(statNames) {
		return statNames[k]
	}
	return "unknown"
}

// Stat is one skill track: a base level plus 0–100 experience. Experience
// overflow converts to level-ups.
type Stat struct {
	Level int `json:"level"`
	Exp   int `json:"exp"`
}

// WithExp returns the stat with experience added, converting each full 100
// points into a level.
func (s Stat) WithExp(gained int) Stat {
	if gained <= 0 {
		return s
	}
	s.Exp += gained
	for s.Exp >= 100 {
		s.Exp -= 100
		s.Level++
	}
	return s
}

// StatSet is a fixed-size array of the five stats, indexed by StatKind.
type StatSet [NumStats]Stat

// Get returns the stat for a kind.
func (ss StatSet) Get(k StatKind) Stat {
	return ss[k]
}

// With returns the set with one stat replaced.
func (ss StatSet) With(k StatKind, s Stat) StatSet {
	ss[k] = s
	return ss
}
