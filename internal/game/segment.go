package game

// Segment is one of the four fixed phases of a game day.
type Segment uint8

const (
	SegmentPrep Segment = iota
	SegmentBusiness
	SegmentNight
	SegmentSleep
)

var segmentNames = [4]string{"prep", "business", "night", "sleep"}

// String returns the segment's lowercase name.
func (s Segment) String() string {
	if int(s) < len(segmentNames) {
		return segmentNames[s]
	}
	return "unknown"
}

// NextSegment returns the segment that follows s within a day. SLEEP wraps to
// the next day's PREP.
func (s Segment) NextSegment() Segment {
	return Segment((uint8(s) + 1) % 4)
}
