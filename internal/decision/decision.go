// Package decision provides the mid-business event cards: binary A/B choices
// that fire at random hours during the BUSINESS segment and apply immediate
// numeric effects.
package decision

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/EESIZ/Chickenmaster2-sub000/internal/entropy"
	"github.com/EESIZ/Chickenmaster2-sub000/internal/game"
)

// Choice labels one side of a binary decision.
type Choice string

const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
)

// EffectBag is the named, validated effect payload of one choice. Replaces
// free-form map effects so a typo'd key cannot silently drop an effect.
type EffectBag struct {
	MoneyDelta      int     `yaml:"money_delta" json:"money_delta"`
	IngredientDelta int     `yaml:"ingredient_delta" json:"ingredient_delta"`
	ReputationDelta float64 `yaml:"reputation_delta" json:"reputation_delta"`
	FatigueDelta    int     `yaml:"fatigue_delta" json:"fatigue_delta"`
	HappinessDelta  float64 `yaml:"happiness_delta" json:"happiness_delta"`

	// Customer effects feed the market simulator, not the entities.
	CustomerFlat int     `yaml:"customer_flat" json:"customer_flat"`
	CustomerPct  float64 `yaml:"customer_pct" json:"customer_pct"`
	// Price adjustments, as percentages applied to the day's effective price.
	MarginPct       float64 `yaml:"margin_pct" json:"margin_pct"`
	SalesPenaltyPct float64 `yaml:"sales_penalty_pct" json:"sales_penalty_pct"`
}

// Option is one labeled side of a template.
type Option struct {
	Label  string    `yaml:"label" json:"label"`
	Effect EffectBag `yaml:"effect" json:"effect"`
}

// Template is a reusable decision card.
type Template struct {
	ID     string `yaml:"id" json:"id"`
	Prompt string `yaml:"prompt" json:"prompt"`
	A      Option `yaml:"a" json:"a"`
	B      Option `yaml:"b" json:"b"`
}

// Decision is one sampled instance for a specific day. Choice stays nil until
// the player answers; an unanswered decision simply never occurred.
type Decision struct {
	ID          uuid.UUID `json:"id"`
	TemplateID  string    `json:"template_id"`
	Prompt      string    `json:"prompt"`
	A           Option    `json:"a"`
	B           Option    `json:"b"`
	TriggerHour int       `json:"trigger_hour"` // hour offset within the business segment
	Choice      *Choice   `json:"choice,omitempty"`
}

// Resolved reports whether the player has answered.
func (d Decision) Resolved() bool { return d.Choice != nil }

// ChosenEffect returns the effect bag of the selected option. Zero bag if
// unresolved.
func (d Decision) ChosenEffect() EffectBag {
	if d.Choice == nil {
		return EffectBag{}
	}
	if *d.Choice == ChoiceA {
		return d.A.Effect
	}
	return d.B.Effect
}

// InvalidChoiceError reports a choice label other than A or B.
type InvalidChoiceError struct {
	DecisionID uuid.UUID
	Choice     string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("decision %s: choice %q is not A or B", e.DecisionID, e.Choice)
}

// Engine samples daily decisions from the template catalog and applies
// choices.
type Engine struct {
	templates []Template
	maxPerDay int
	rng       entropy.Source
}

// NewEngine creates a decision engine. maxPerDay bounds how many decisions
// fire per day.
func NewEngine(templates []Template, maxPerDay int, rng entropy.Source) *Engine {
	if maxPerDay < 1 {
		maxPerDay = 1
	}
	if maxPerDay > len(templates) {
		maxPerDay = len(templates)
	}
	return &Engine{templates: templates, maxPerDay: maxPerDay, rng: rng}
}

// SampleDay draws 1..maxPerDay templates without replacement and assigns each
// a uniformly random trigger hour within [1, businessHours-1], sorted
// ascending.
func (e *Engine) SampleDay(businessHours int) []Decision {
	if len(e.templates) == 0 || businessHours < 2 {
		return nil
	}

	count := 1 + e.rng.Intn(e.maxPerDay)
	perm := e.rng.Perm(len(e.templates))

	decisions := make([]Decision, 0, count)
	for _, idx := range perm[:count] {
		tpl := e.templates[idx]
		decisions = append(decisions, Decision{
			ID:          uuid.New(),
			TemplateID:  tpl.ID,
			Prompt:      tpl.Prompt,
			A:           tpl.A,
			B:           tpl.B,
			TriggerHour: 1 + e.rng.Intn(businessHours-1),
		})
	}

	sort.Slice(decisions, func(i, j int) bool {
		return decisions[i].TriggerHour < decisions[j].TriggerHour
	})
	return decisions
}

// Resolve records the player's choice and applies the immediate effects:
// money floors at zero, reputation and happiness clamp, fatigue floors at
// zero. Customer and price effects are deferred to the market run.
func (e *Engine) Resolve(d Decision, choice Choice, p game.Player, st game.Store) (Decision, game.Player, game.Store, error) {
	if choice != ChoiceA && choice != ChoiceB {
		return d, p, st, &InvalidChoiceError{DecisionID: d.ID, Choice: string(choice)}
	}

	d.Choice = &choice
	eff := d.ChosenEffect()

	p = p.WithMoney(p.Money + eff.MoneyDelta)
	p = p.WithFatigue(p.Fatigue + eff.FatigueDelta)
	p = p.WithHappiness(p.Happiness + eff.HappinessDelta)
	st = st.WithIngredients(st.IngredientQty + eff.IngredientDelta)
	st = st.WithReputation(st.Reputation + eff.ReputationDelta)

	return d, p, st, nil
}
