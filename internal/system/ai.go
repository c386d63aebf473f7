package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"
	"math/rand"
)

const (
	// ChaseChance is the chance a monster steps toward the player rather
	// than in a random direction.
	ChaseChance = 0.8
	// MonsterMoves is how many steps each monster may take per turn.
	MonsterMoves = 2
)

// ProcessAI runs one turn of monster movement in list order, so earlier
// monsters win contested cells. A mortal monster that would step onto a
// spike in its lethal phase dies there without moving. Returns the number
// of monsters killed by spikes; those kills award no score.
func ProcessAI(gmap *gamemap.GameMap, monsters []component.Actor, player component.Position,
	spikes []component.Spike, rng *rand.Rand) int {

	spikeDeaths := 0
	for i := range monsters {
		m := &monsters[i]
		if !m.Alive() {
			continue
		}
		for range MonsterMoves {
			if m.Pos.Adjacent(player) {
				break
			}
			dr, dc := chooseStep(m.Pos, player, rng)
			dest := gmap.Clamp(component.Position{Row: m.Pos.Row + dr, Col: m.Pos.Col + dc})
			if !m.Immortal() && DangerousAt(spikes, dest) {
				m.HP = 0
				spikeDeaths++
				break
			}
			moveBy(gmap, m, dr, dc, monsters)
		}
	}
	return spikeDeaths
}

// chooseStep picks a monster's intended step: usually one axis toward the
// target, otherwise a random cardinal direction.
func chooseStep(from, target component.Position, rng *rand.Rand) (int, int) {
	if rng.Float64() >= ChaseChance {
		return component.Directions[rng.Intn(len(component.Directions))].Delta()
	}
	dr, dc := sign(target.Row-from.Row), sign(target.Col-from.Col)
	if dr != 0 && dc != 0 {
		if rng.Float64() < 0.5 {
			dc = 0
		} else {
			dr = 0
		}
	}
	return dr, dc
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
