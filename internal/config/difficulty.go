package config

import (
	"fmt"
	"strings"
)

// Difficulty is the tier chosen at process start. The zero value means the
// tier has not been chosen yet and the player will be prompted.
type Difficulty uint8

const (
	DifficultyUnset Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

// ParseDifficulty accepts e/m/h or the full tier name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "easy":
		return DifficultyEasy, nil
	case "m", "medium":
		return DifficultyMedium, nil
	case "h", "hard":
		return DifficultyHard, nil
	}
	return DifficultyUnset, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return ""
}

// StartingHP is the player's hit points at the start of a run.
func (d Difficulty) StartingHP() int {
	switch d {
	case DifficultyEasy:
		return 5
	case DifficultyMedium:
		return 3
	}
	return 1
}

// UnmarshalText lets env and flag parsing fill a Difficulty.
func (d *Difficulty) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = DifficultyUnset
		return nil
	}
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
