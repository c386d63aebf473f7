package system

import (
	"dungeon-crawler/internal/component"
	"math/rand"
)

// PredictionKillChance is the chance a pending prediction attack kills each
// monster adjacent to the player at end of turn.
const PredictionKillChance = 0.8

// FindAdjacentMonster returns the index of the first live monster next to p,
// searching directions in w, a, s, d order. Returns -1 when none is adjacent.
func FindAdjacentMonster(p component.Position, monsters []component.Actor) int {
	for _, d := range component.Directions {
		target := p.Step(d)
		for i := range monsters {
			if monsters[i].Alive() && monsters[i].Pos == target {
				return i
			}
		}
	}
	return -1
}

// Melee resolves the attack action. An adjacent monster takes one damage
// (invulnerable monsters take none) and any pending prediction is cancelled;
// with no adjacent monster the prediction attack is armed instead.
// Reports whether a monster was killed.
func Melee(player *component.Actor, monsters []component.Actor) bool {
	i := FindAdjacentMonster(player.Pos, monsters)
	if i < 0 {
		player.PredictPending = true
		return false
	}
	player.PredictPending = false
	m := &monsters[i]
	if m.Immortal() {
		return false
	}
	m.HP--
	return m.HP == 0
}

// ResolvePrediction fires a pending prediction attack: each mortal monster
// adjacent to the player dies with PredictionKillChance. The flag is
// cleared. Returns the number of kills.
func ResolvePrediction(player *component.Actor, monsters []component.Actor, rng *rand.Rand) int {
	if !player.PredictPending {
		return 0
	}
	player.PredictPending = false

	var targets []*component.Actor
	for i := range monsters {
		m := &monsters[i]
		if m.HP > 0 && m.Pos.Adjacent(player.Pos) {
			targets = append(targets, m)
		}
	}
	kills := 0
	for _, m := range targets {
		if rng.Float64() < PredictionKillChance {
			m.HP = 0
			kills++
		}
	}
	return kills
}

// ResolveCollisions handles monsters standing on the player's cell. Mortal
// ones die; every collision is a hit on the player. Returns kills and the
// damage actually taken.
func ResolveCollisions(player *component.Actor, monsters []component.Actor) (kills, damage int) {
	for i := range monsters {
		m := &monsters[i]
		if !m.Alive() || m.Pos != player.Pos {
			continue
		}
		if !m.Immortal() {
			m.HP = 0
			kills++
		}
		if HitPlayer(player) {
			damage++
		}
	}
	return kills, damage
}

// ResolveAdjacency hits the player once for every live monster next to them.
// Returns the damage actually taken.
func ResolveAdjacency(player *component.Actor, monsters []component.Actor) int {
	damage := 0
	for i := range monsters {
		m := &monsters[i]
		if m.Alive() && m.Pos.Adjacent(player.Pos) && HitPlayer(player) {
			damage++
		}
	}
	return damage
}

// HitPlayer applies one point of contact damage. An active invulnerability
// flag absorbs it; otherwise a held invulnerable power-up is consumed and
// turns the flag on for the rest of the turn. Reports whether hp was lost.
func HitPlayer(player *component.Actor) bool {
	if player.Invulnerable {
		return false
	}
	if player.PowerUp == component.PowerUpInvulnerable {
		player.PowerUp = component.PowerUpNone
		player.Invulnerable = true
		return false
	}
	player.HP--
	return true
}

// RemoveDead drops monsters with hp 0. Invulnerable monsters are never removed.
func RemoveDead(monsters []component.Actor) []component.Actor {
	alive := monsters[:0]
	for _, m := range monsters {
		if m.HP != 0 {
			alive = append(alive, m)
		}
	}
	return alive
}
