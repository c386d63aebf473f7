package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"
)

// ShooterInterval is how many turns pass between shooter volleys.
const ShooterInterval = 4

// SpikeAt returns the index of the spike at p, or -1.
func SpikeAt(spikes []component.Spike, p component.Position) int {
	for i := range spikes {
		if spikes[i].Pos == p {
			return i
		}
	}
	return -1
}

// DangerousAt reports whether a spike in its lethal phase sits at p.
func DangerousAt(spikes []component.Spike, p component.Position) bool {
	i := SpikeAt(spikes, p)
	return i >= 0 && spikes[i].Dangerous()
}

// AdvanceSpikes moves every spike one turn through its cycle.
func AdvanceSpikes(spikes []component.Spike) {
	for i := range spikes {
		spikes[i].Advance()
	}
}

// SpikeOutcome is the result of the player standing on a spike cell.
type SpikeOutcome uint8

const (
	SpikeNone     SpikeOutcome = iota // no spike, or spike in its safe phase
	SpikeAbsorbed                     // lethal, but invulnerability took it and the spike broke
	SpikeLethal                       // lethal and unprotected
)

// StrikePlayer resolves the spike under the player. A lethal spike is
// absorbed by the invulnerability flag, or failing that by a held
// invulnerable power-up; either way the protection is spent and the spike
// is removed. It returns the outcome and the possibly shortened spike list.
func StrikePlayer(player *component.Actor, spikes []component.Spike) (SpikeOutcome, []component.Spike) {
	i := SpikeAt(spikes, player.Pos)
	if i < 0 || !spikes[i].Dangerous() {
		return SpikeNone, spikes
	}
	switch {
	case player.Invulnerable:
		player.Invulnerable = false
	case player.PowerUp == component.PowerUpInvulnerable:
		player.PowerUp = component.PowerUpNone
	default:
		return SpikeLethal, spikes
	}
	return SpikeAbsorbed, append(spikes[:i], spikes[i+1:]...)
}

// AdvanceArrows steps every arrow tile one cell along its direction. An arrow
// whose destination is not plain floor disappears. Arrows are collected
// before any moves so each one steps at most once per call.
func AdvanceArrows(gmap *gamemap.GameMap) (moved, removed int) {
	type arrow struct {
		pos component.Position
		dir component.Direction
	}
	var arrows []arrow
	for r, row := range gmap.Tiles {
		for c, k := range row {
			if d, ok := k.ArrowDirection(); ok {
				arrows = append(arrows, arrow{component.Position{Row: r, Col: c}, d})
			}
		}
	}
	for _, a := range arrows {
		tile := gmap.At(a.pos)
		dest := a.pos.Step(a.dir)
		gmap.Set(a.pos, gamemap.TileFloor)
		if gmap.InBounds(dest) && gmap.At(dest) == gamemap.TileFloor {
			gmap.Set(dest, tile)
			moved++
			continue
		}
		removed++
	}
	return moved, removed
}

// FireShooters spawns arrows every ShooterInterval turns. Each shooter fires
// into its first floor neighbour in direction order, the arrow pointing away
// from the shooter. turn counts completed turns in the current room.
func FireShooters(gmap *gamemap.GameMap, turn int) int {
	if (turn+1)%ShooterInterval != 0 {
		return 0
	}
	fired := 0
	for _, p := range gmap.Find(gamemap.TileShooter) {
		for _, d := range component.Directions {
			n := p.Step(d)
			if gmap.InBounds(n) && gmap.At(n) == gamemap.TileFloor {
				gmap.Set(n, gamemap.ArrowTile(d))
				fired++
				break
			}
		}
	}
	return fired
}
