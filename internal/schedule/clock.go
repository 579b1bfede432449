package schedule

import "github.com/EESIZ/Chickenmaster2-sub000/internal/game"

// Clock mark valid ranges. Values outside are clamped, never rejected.
const (
	wakeMin, wakeMax   = 5, 10
	openMin, openMax   = 8, 14
	closeMin, closeMax = 16, 26
	sleepMin, sleepMax = 20, 30 // past 24 means past midnight
)

// ClockMarks are the four daily clock marks the segment budgets derive from.
type ClockMarks struct {
	Wake  float64 `json:"wake"`
	Open  float64 `json:"open"`
	Close float64 `json:"close"`
	Sleep float64 `json:"sleep"`
}

// NormalizeClock clamps each mark to its valid range and enforces ordering
// (open > wake, close > open, sleep > close) by clamping upward. The sleep
// mark is additionally held below wake+24 so the SLEEP segment is never
// zero-length.
func NormalizeClock(m ClockMarks) ClockMarks {
	m.Wake = game.ClampFloat(m.Wake, wakeMin, wakeMax)
	m.Open = game.ClampFloat(m.Open, openMin, openMax)
	m.Close = game.ClampFloat(m.Close, closeMin, closeMax)
	m.Sleep = game.ClampFloat(m.Sleep, sleepMin, sleepMax)

	if m.Open <= m.Wake {
		m.Open = m.Wake + 1
	}
	if m.Close <= m.Open {
		m.Close = m.Open + 1
	}
	if m.Sleep <= m.Close {
		m.Sleep = m.Close + 1
	}
	if m.Sleep > m.Wake+23 {
		m.Sleep = m.Wake + 23
	}
	return m
}

// Budget returns the hours budget for a segment under these clock marks.
func (m ClockMarks) Budget(seg game.Segment) float64 {
	switch seg {
	case game.SegmentPrep:
		return m.Open - m.Wake
	case game.SegmentBusiness:
		return m.Close - m.Open
	case game.SegmentNight:
		return m.Sleep - m.Close
	case game.SegmentSleep:
		return m.Wake + 24 - m.Sleep
	}
	return 0
}
