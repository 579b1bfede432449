package weather

import "testing"

func TestForDayBoundsAndLabels(t *testing.T) {
	g := NewGenerator(42)
	for day := 1; day <= 365; day++ {
		c := g.ForDay(day)
		if c.Footfall < multMin || c.Footfall > multMax {
			t.Fatalf("day %d: footfall %.3f outside [%.2f, %.2f]", day, c.Footfall, multMin, multMax)
		}
		switch c.Label {
		case "quiet", "normal", "busy":
		default:
			t.Fatalf("day %d: unknown label %q", day, c.Label)
		}
	}
}

func TestForDayDeterministic(t *testing.T) {
	a := NewGenerator(7)
	b := NewGenerator(7)
	for day := 1; day <= 30; day++ {
		if a.ForDay(day) != b.ForDay(day) {
			t.Fatalf("day %d diverges between same-seeded generators", day)
		}
	}
}

func TestNilGeneratorIsNeutral(t *testing.T) {
	var g *Generator
	c := g.ForDay(5)
	if c.Footfall != 1 || c.Label != "normal" {
		t.Errorf("nil generator returned %+v, want neutral conditions", c)
	}
}
