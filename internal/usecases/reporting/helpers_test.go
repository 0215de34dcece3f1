package reporting

import "time"

// sequenceSource replays values cyclically.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

var fixedNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() Clock {
	return ClockFunc(func() time.Time { return fixedNow })
}
