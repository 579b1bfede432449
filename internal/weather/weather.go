// Package weather provides the ambient street-traffic model: smooth
// day-to-day variation in how busy the neighborhood is, generated from
// simplex noise so a seed always replays the same calendar.
package weather

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Footfall multiplier bounds. Conditions never move demand more than ±15%.
const (
	multMin = 0.85
	multMax = 1.15
)

// Conditions describe one day's street traffic.
type Conditions struct {
	Day      int     `json:"day"`
	Label    string  `json:"label"`    // "quiet", "normal", "busy"
	Footfall float64 `json:"footfall"` // demand multiplier in [0.85, 1.15]
}

// Generator produces daily conditions from a noise field.
type Generator struct {
	noise opensimplex.Noise
}

// NewGenerator creates a generator for a seed. A nil generator is valid and
// always reports neutral conditions.
func NewGenerator(seed int64) *Generator {
	return &Generator{noise: opensimplex.NewNormalized(seed)}
}

// ForDay returns the conditions for a day number. Deterministic per seed.
func (g *Generator) ForDay(day int) Conditions {
	if g == nil {
		return Conditions{Day: day, Label: "normal", Footfall: 1}
	}

	// Sample the noise field along one axis; the second coordinate picks a
	// fixed slice so consecutive days vary smoothly.
	n := g.noise.Eval2(float64(day)*0.15, 0.5) // in [0, 1]
	mult := multMin + n*(multMax-multMin)

	label := "normal"
	switch {
	case mult < 0.93:
		label = "quiet"
	case mult > 1.07:
		label = "busy"
	}

	return Conditions{Day: day, Label: label, Footfall: mult}
}
