package generate

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Budget is how much of each kind of entity one room receives.
type Budget struct {
	Monsters     int
	Invulnerable int
	Health       int
	Spikes       int
	PowerUp      bool
}

// RoomBudget applies the difficulty formulas for the given 1-based room.
func RoomBudget(difficulty config.Difficulty, room int, rng *rand.Rand) Budget {
	var b Budget
	switch difficulty {
	case config.DifficultyEasy:
		b.Monsters = 3 + room
		b.Health = 1 + room/2
		b.Spikes = max(2, b.Monsters/2)
		b.PowerUp = true
	case config.DifficultyMedium:
		b.Monsters = 5 + 2*room
		b.Health = 1
		if rng.Float64() < 0.10 {
			b.Invulnerable = 1
		}
		b.Spikes = b.Monsters
		b.PowerUp = true
	default:
		b.Monsters = 10 + 4*room
		if room == 1 {
			b.Health = 1
		}
		switch roll := rng.Float64(); {
		case roll < 0.80:
			b.Invulnerable = 1
		case roll < 0.90:
			b.Invulnerable = 2
		}
		b.Spikes = b.Monsters * 3 / 2
		b.PowerUp = room < 10 && rng.Float64() < 0.10
	}
	return b
}

// PopulateResult is returned by Populate with the placed entities.
type PopulateResult struct {
	Monsters []component.Actor
	Spikes   []component.Spike
	Health   int  // health pickups written to the grid
	PowerUp  bool // whether a power-up tile was written to the grid
}

// Populate fills a generated room using the budget for difficulty and room.
func Populate(gmap *gamemap.GameMap, difficulty config.Difficulty, room int, rng *rand.Rand) PopulateResult {
	return PopulateBudget(gmap, RoomBudget(difficulty, room, rng), rng)
}

// PopulateBudget places entities on free floor cells. The start and end
// cells and every cell already claimed are forbidden, so no two entities
// share a cell. Invulnerable monsters are placed first to get first pick.
// A category stops early when no free floor is left.
func PopulateBudget(gmap *gamemap.GameMap, b Budget, rng *rand.Rand) PopulateResult {
	var result PopulateResult

	forbidden := mapset.New[component.Position]()
	forbidden.Put(gmap.Start())
	forbidden.Put(gmap.End())
	pick := func() (component.Position, bool) {
		p, ok := randomFloor(gmap, forbidden, rng)
		if ok {
			forbidden.Put(p)
		}
		return p, ok
	}

	for range b.Invulnerable {
		p, ok := pick()
		if !ok {
			break
		}
		result.Monsters = append(result.Monsters, component.NewInvulnerableMonster(p))
	}
	for range b.Monsters {
		p, ok := pick()
		if !ok {
			break
		}
		result.Monsters = append(result.Monsters, component.NewMonster(p))
	}
	for range b.Health {
		p, ok := pick()
		if !ok {
			break
		}
		gmap.Set(p, gamemap.TileHealth)
		result.Health++
	}
	for range b.Spikes {
		p, ok := pick()
		if !ok {
			break
		}
		result.Spikes = append(result.Spikes, component.NewSpike(p, rng))
	}
	if b.PowerUp {
		if p, ok := pick(); ok {
			gmap.Set(p, gamemap.TilePowerUp)
			result.PowerUp = true
		}
	}
	return result
}

// randomFloor picks a uniformly random interior floor cell not in forbidden.
func randomFloor(gmap *gamemap.GameMap, forbidden mapset.Set[component.Position], rng *rand.Rand) (component.Position, bool) {
	var free []component.Position
	for r := 1; r < gmap.Height-1; r++ {
		for c := 1; c < gmap.Width-1; c++ {
			p := component.Position{Row: r, Col: c}
			if gmap.At(p) == gamemap.TileFloor && !forbidden.Has(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return component.Position{}, false
	}
	return free[rng.Intn(len(free))], true
}
