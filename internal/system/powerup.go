package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"
	"math/rand"
)

const (
	// TimeStopActions is added to the action limit of the current turn.
	TimeStopActions = 200
	// InvulnerableHeal is the hp granted by activating invulnerability.
	InvulnerableHeal = 5
	// BlastRadius is the Euclidean radius of the explosive power-up.
	BlastRadius = 4.0
)

// RollPowerUp picks one of the three power-ups uniformly.
func RollPowerUp(rng *rand.Rand) component.PowerUp {
	switch roll := rng.Float64(); {
	case roll < 1.0/3:
		return component.PowerUpTimeStop
	case roll < 2.0/3:
		return component.PowerUpInvulnerable
	}
	return component.PowerUpExplosive
}

// Acquire gives the player a random power-up when they hold none.
// Reports whether one was granted.
func Acquire(player *component.Actor, rng *rand.Rand) bool {
	if player.PowerUp != component.PowerUpNone {
		return false
	}
	player.PowerUp = RollPowerUp(rng)
	return true
}

// Activation describes what using a power-up did.
type Activation struct {
	Used         component.PowerUp
	ExtraActions int // added to this turn's action limit
	Kills        int // mortal monsters killed by the blast
	Cleared      int // tiles converted to floor by the blast
}

// Activate consumes the held power-up and applies its effect.
// With nothing held it returns a zero Activation.
func Activate(gmap *gamemap.GameMap, player *component.Actor, monsters []component.Actor) Activation {
	act := Activation{Used: player.PowerUp}
	switch player.PowerUp {
	case component.PowerUpTimeStop:
		act.ExtraActions = TimeStopActions
	case component.PowerUpInvulnerable:
		player.HP += InvulnerableHeal
		player.Invulnerable = true
	case component.PowerUpExplosive:
		act.Kills, act.Cleared = Explode(gmap, player.Pos, monsters)
	default:
		return Activation{}
	}
	player.PowerUp = component.PowerUpNone
	return act
}

// Explode turns every non-exit interior tile within BlastRadius of center
// into floor and kills every mortal monster within the same radius.
// Returns kills and the number of tiles that changed.
func Explode(gmap *gamemap.GameMap, center component.Position, monsters []component.Actor) (kills, cleared int) {
	const r = int(BlastRadius)
	for row := max(1, center.Row-r); row < min(gmap.Height-1, center.Row+r+1); row++ {
		for col := max(1, center.Col-r); col < min(gmap.Width-1, center.Col+r+1); col++ {
			p := component.Position{Row: row, Col: col}
			if center.Dist(p) > BlastRadius {
				continue
			}
			if k := gmap.At(p); k != gamemap.TileExit && k != gamemap.TileFloor {
				gmap.Set(p, gamemap.TileFloor)
				cleared++
			}
		}
	}
	for i := range monsters {
		m := &monsters[i]
		if m.HP > 0 && center.Dist(m.Pos) <= BlastRadius {
			m.HP = 0
			kills++
		}
	}
	return kills, cleared
}
