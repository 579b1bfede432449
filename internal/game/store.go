package game

import "github.com/google/uuid"

// Store is one restaurant location.
type Store struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Rent       int       `json:"rent"` // won per day
	ProductID  uuid.UUID `json:"product_id"`
	Reputation float64   `json:"reputation"` // 0–100
	// Ingredients on hand and their blended freshness.
	IngredientQty       int     `json:"ingredient_qty"`
	IngredientFreshness float64 `json:"ingredient_freshness"` // 0–100
	// Servings cooked during PREP, consumed during BUSINESS. Reset to zero
	// at day start.
	PreparedQty int `json:"prepared_qty"`
}

// NewStore creates a store with neutral reputation and fresh ingredients.
func NewStore(name string, rent int, productID uuid.UUID) Store {
	return Store{
		ID:                  uuid.New(),
		Name:                name,
		Rent:                rent,
		ProductID:           productID,
		Reputation:          50,
		IngredientFreshness: 100,
	}
}

// WithReputation returns the store with reputation set, clamped to 0–100.
func (s Store) WithReputation(rep float64) Store {
	s.Reputation = ClampPercent(rep)
	return s
}

// WithFreshness returns the store with ingredient freshness set, clamped to
// 0–100.
func (s Store) WithFreshness(f float64) Store {
	s.IngredientFreshness = ClampPercent(f)
	return s
}

// WithIngredients returns the store with ingredient quantity set, floored at
// zero.
func (s Store) WithIngredients(qty int) Store {
	s.IngredientQty = FloorZero(qty)
	return s
}

// WithPrepared returns the store with prepared-serving quantity set, floored
// at zero.
func (s Store) WithPrepared(qty int) Store {
	s.PreparedQty = FloorZero(qty)
	return s
}

// BlendIngredients returns the store after taking delivery of gained units at
// 100 freshness, blending freshness by quantity-weighted average.
func (s Store) BlendIngredients(gained int) Store {
	if gained <= 0 {
		return s
	}
	oldQty := float64(s.IngredientQty)
	blend := (oldQty*s.IngredientFreshness + float64(gained)*100) / (oldQty + float64(gained))
	s.IngredientQty += gained
	s.IngredientFreshness = ClampPercent(blend)
	return s
}

// DecayFreshness returns the store after one overnight freshness tick.
func (s Store) DecayFreshness(perDay float64) Store {
	return s.WithFreshness(s.IngredientFreshness - perDay)
}
