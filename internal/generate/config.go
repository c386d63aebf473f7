package generate

import (
	"dungeon-crawler/internal/config"
	"math/rand"
)

// Config drives procedural generation for one room.
type Config struct {
	Width, Height int
	FloorDensity  float64 // chance an interior wall becomes floor during noise fill
	Walkers       int
	WalkSteps     int
	Difficulty    config.Difficulty
	Rand          *rand.Rand
}

// DefaultConfig returns the standard room parameters for a size×size grid.
func DefaultConfig(size int, difficulty config.Difficulty, rng *rand.Rand) *Config {
	return &Config{
		Width:        size,
		Height:       size,
		FloorDensity: 0.65,
		Walkers:      6,
		WalkSteps:    80,
		Difficulty:   difficulty,
		Rand:         rng,
	}
}
