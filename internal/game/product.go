package game

import "github.com/google/uuid"

// Product is a menu item sold by a store.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     int       `json:"price"`     // won, stepped to PriceStep granularity
	Quality   float64   `json:"quality"`   // derived from cooking stat + research + ingredients
	Awareness float64   `json:"awareness"` // ≥ 0, decays daily, grows on sale/ad
}

// NewProduct creates a product at the given price.
func NewProduct(name string, price int) Product {
	return Product{
		ID:      uuid.New(),
		Name:    name,
		Price:   price,
		Quality: 50,
	}
}

// WithPrice returns the product repriced: snapped down to the step grid and
// clamped to [min, max].
func (p Product) WithPrice(price, step, min, max int) Product {
	if step > 0 {
		price = (price / step) * step
	}
	if price < min {
		price = min
	}
	if price > max {
		price = max
	}
	p.Price = price
	return p
}

// WithQuality returns the product with quality set, clamped to 0–100.
func (p Product) WithQuality(q float64) Product {
	p.Quality = ClampPercent(q)
	return p
}

// WithAwareness returns the product with awareness set, floored at zero.
// Awareness has no upper bound.
func (p Product) WithAwareness(a float64) Product {
	if a < 0 {
		a = 0
	}
	p.Awareness = a
	return p
}

// DeriveQuality computes product quality from the cooking stat, research
// progress and ingredient freshness.
func DeriveQuality(cookingLevel, research int, freshness float64) float64 {
	q := float64(cookingLevel)*0.8 + float64(research)*0.5 + freshness*0.2
	return ClampPercent(q)
}
