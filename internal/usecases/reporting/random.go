package reporting

import (
	"math/rand"
	"time"
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a source that replays the same sequence for the same seed.
// It is not safe for concurrent use; build one per report.
func NewSeededSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed draws a seed for requests that did not pin one.
func NewSeed() int64 {
	return rand.Int63n(1 << 53)
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}
