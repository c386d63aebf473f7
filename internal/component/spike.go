package component

import "math/rand"

// SpikePeriods are the cycle lengths a spike may be created with.
var SpikePeriods = [3]int{2, 3, 4}

// Spike is a floor trap that is lethal for the first half of its cycle.
// Offset shifts the cycle per instance; Turn counts completed game turns.
type Spike struct {
	Pos    Position
	Period int
	Offset int
	Turn   int
}

// NewSpike creates a spike at p with a random period and phase offset.
func NewSpike(p Position, rng *rand.Rand) Spike {
	period := SpikePeriods[rng.Intn(len(SpikePeriods))]
	return Spike{Pos: p, Period: period, Offset: rng.Intn(period)}
}

// Dangerous reports whether the spike is in its lethal phase.
func (s *Spike) Dangerous() bool {
	return (s.Turn+s.Offset)%s.Period < s.Period/2
}

// Advance moves the spike one turn through its cycle.
func (s *Spike) Advance() {
	s.Turn++
}
