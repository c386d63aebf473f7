// Package generate builds rooms: a connected tile grid from corridor, noise
// and walker carving, and the monsters, spikes and pickups placed on it.
package generate

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
)

// Generate builds a room grid whose exit is reachable from the start cell.
// Candidates that fail the reachability check are discarded and rebuilt from
// scratch. It returns the accepted grid and how many candidates were built.
func Generate(cfg *Config) (*gamemap.GameMap, int) {
	for attempt := 1; ; attempt++ {
		gmap := buildCandidate(cfg)
		if gamemap.Reachable(gmap, gmap.Start(), gmap.End(), gamemap.Blocking()) {
			return gmap, attempt
		}
	}
}

func buildCandidate(cfg *Config) *gamemap.GameMap {
	gmap := gamemap.New(cfg.Width, cfg.Height)
	start, end := gmap.Start(), gmap.End()

	carvePatch(gmap, start)
	carveCorridor(gmap, start, end, cfg)
	carveNoise(gmap, cfg.FloorDensity, cfg)
	for range cfg.Walkers {
		carveWalker(gmap, cfg.WalkSteps, cfg)
	}
	gmap.Set(end, gamemap.TileExit)

	// Shooters only ever replace walls, so they cannot cut the path.
	placeShooters(gmap, shooterCount(cfg), cfg)
	return gmap
}

// shooterCount returns how many shooter tiles a room of this difficulty gets.
func shooterCount(cfg *Config) int {
	switch cfg.Difficulty {
	case config.DifficultyEasy:
		if cfg.Rand.Float64() < 0.15 {
			return 1
		}
		return 0
	case config.DifficultyMedium:
		return 1
	case config.DifficultyHard:
		return 2 + cfg.Rand.Intn(2)
	}
	return 0
}

// placeShooters converts up to n random walls at least two cells in from the
// border into shooter tiles.
func placeShooters(gmap *gamemap.GameMap, n int, cfg *Config) {
	var walls []component.Position
	for r := 2; r < gmap.Height-2; r++ {
		for c := 2; c < gmap.Width-2; c++ {
			p := component.Position{Row: r, Col: c}
			if gmap.At(p) == gamemap.TileWall {
				walls = append(walls, p)
			}
		}
	}
	cfg.Rand.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })
	for _, p := range walls[:min(n, len(walls))] {
		gmap.Set(p, gamemap.TileShooter)
	}
}
