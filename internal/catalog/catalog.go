// Package catalog provides the action-card table: what each card costs, how
// long it takes, which stat it trains, and what it produces. The engine is
// parameterized by a Catalog value, not hard-coded to one ruleset; the
// built-in default ruleset can be replaced by a versioned YAML file.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

// Category groups related action cards.
type Category string

const (
	CategoryCooking   Category = "cooking"
	CategoryPurchase  Category = "purchase"
	CategoryCleaning  Category = "cleaning"
	CategoryMarketing Category = "marketing"
	CategoryStudy     Category = "study"
	CategoryResearch  Category = "research"
	CategoryRest      Category = "rest"
	CategorySideJob   Category = "side_job"
)

// EffectKind tags a card's variable effect — the part scaled by the dice
// factor at resolution.
type EffectKind uint8

const (
	EffectNone            EffectKind = iota
	EffectPrepareServings            // servings cooked, consumes ingredients 1:1
	EffectGainIngredients            // ingredient units delivered at 100 freshness
	EffectGainAwareness              // product awareness points
	EffectGainReputation             // store reputation points
	EffectResearch                   // recipe research progress
	EffectEarnMoney                  // side-job wages
)

// Effect is a card's variable effect: a kind plus a base amount. Replaces
// free-form effect bags so a typo'd key is a compile error, not a silent no-op.
type Effect struct {
	Kind   EffectKind `yaml:"kind" json:"kind"`
	Amount int        `yaml:"amount" json:"amount"`
}

// Card is one action the player can queue into a PREP or NIGHT segment.
type Card struct {
	ID             string        `yaml:"id" json:"id"`
	Name           string        `yaml:"name" json:"name"`
	Category       Category      `yaml:"category" json:"category"`
	Segment        game.Segment  `yaml:"segment" json:"segment"`
	Hours          float64       `yaml:"hours" json:"hours"`
	MoneyCost      int           `yaml:"money_cost" json:"money_cost"`
	IngredientCost int           `yaml:"ingredient_cost" json:"ingredient_cost"`
	Stat           game.StatKind `yaml:"stat" json:"stat"` // stat blended into the dice roll
	StatExp        int           `yaml:"stat_exp" json:"stat_exp"`
	FatiguePerHour int           `yaml:"fatigue_per_hour" json:"fatigue_per_hour"`
	Effect         Effect        `yaml:"effect" json:"effect"`
}

// Catalog is a versioned action-card table.
type Catalog struct {
	Version string          `yaml:"version"`
	Cards   []Card          `yaml:"cards"`
	byID    map[string]Card `yaml:"-"`
}

// New builds a catalog from a card list.
func New(version string, cards []Card) *Catalog {
	c := &Catalog{Version: version, Cards: cards}
	c.index()
	return c
}

func (c *Catalog) index() {
	c.byID = make(map[string]Card, len(c.Cards))
	for _, card := range c.Cards {
		c.byID[card.ID] = card
	}
}

// Lookup returns the card for an id.
func (c *Catalog) Lookup(id string) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// ForSegment returns all cards queueable in a segment.
func (c *Catalog) ForSegment(seg game.Segment) []Card {
	var out []Card
	for _, card := range c.Cards {
		if card.Segment == seg {
			out = append(out, card)
		}
	}
	return out
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Cards) == 0 {
		return nil, fmt.Errorf("catalog %s: no cards", path)
	}
	c.index()
	return c, nil
}
