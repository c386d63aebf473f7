package generate

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"math/rand"
	"testing"
)

var difficulties = []config.Difficulty{
	config.DifficultyEasy,
	config.DifficultyMedium,
	config.DifficultyHard,
}

func defaultTestConfig(seed int64, d config.Difficulty) *Config {
	return DefaultConfig(24, d, rand.New(rand.NewSource(seed)))
}

// TestGenerateExitReachable is the connectivity property: every accepted grid
// connects start to exit without crossing walls or shooters.
func TestGenerateExitReachable(t *testing.T) {
	for _, d := range difficulties {
		for seed := int64(0); seed < 25; seed++ {
			cfg := defaultTestConfig(seed, d)
			gmap, attempts := Generate(cfg)
			if attempts < 1 {
				t.Fatalf("%v seed=%d: attempts = %d", d, seed, attempts)
			}

			// Independent BFS, not gamemap.Reachable, so a bug there cannot hide here.
			start, end := gmap.Start(), gmap.End()
			visited := map[component.Position]bool{start: true}
			queue := []component.Position{start}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, dir := range component.Directions {
					next := cur.Step(dir)
					if !gmap.InBounds(next) || visited[next] {
						continue
					}
					k := gmap.At(next)
					if k == gamemap.TileWall || k == gamemap.TileShooter {
						continue
					}
					visited[next] = true
					queue = append(queue, next)
				}
			}
			if !visited[end] {
				t.Errorf("%v seed=%d: exit %v unreachable from %v", d, seed, end, start)
			}
		}
	}
}

func TestGenerateBorderIsWall(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap, _ := Generate(defaultTestConfig(seed, config.DifficultyHard))
		for r := 0; r < gmap.Height; r++ {
			for c := 0; c < gmap.Width; c++ {
				p := component.Position{Row: r, Col: c}
				if gmap.Interior(p) {
					continue
				}
				if gmap.At(p) != gamemap.TileWall {
					t.Fatalf("seed=%d: border cell %v is %v", seed, p, gmap.At(p))
				}
			}
		}
	}
}

func TestGenerateStartAndExit(t *testing.T) {
	gmap, _ := Generate(defaultTestConfig(7, config.DifficultyEasy))
	if gmap.At(gmap.Start()) != gamemap.TileFloor {
		t.Errorf("start tile = %v; want floor", gmap.At(gmap.Start()))
	}
	exits := gmap.Find(gamemap.TileExit)
	if len(exits) != 1 || exits[0] != gmap.End() {
		t.Errorf("exits = %v; want exactly [%v]", exits, gmap.End())
	}
	// The 3×3 patch around the start is always open.
	for r := 1; r <= 2; r++ {
		for c := 1; c <= 2; c++ {
			p := component.Position{Row: r, Col: c}
			if gmap.At(p).Blocks() {
				t.Errorf("start patch cell %v is %v", p, gmap.At(p))
			}
		}
	}
}

func TestShooterCountByDifficulty(t *testing.T) {
	cases := []struct {
		d        config.Difficulty
		min, max int
	}{
		{config.DifficultyEasy, 0, 1},
		{config.DifficultyMedium, 1, 1},
		{config.DifficultyHard, 2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				gmap, _ := Generate(defaultTestConfig(seed, tc.d))
				shooters := gmap.Find(gamemap.TileShooter)
				if n := len(shooters); n < tc.min || n > tc.max {
					t.Errorf("seed=%d: %d shooters, want %d..%d", seed, n, tc.min, tc.max)
				}
				for _, p := range shooters {
					if p.Row < 2 || p.Row >= gmap.Height-2 || p.Col < 2 || p.Col >= gmap.Width-2 {
						t.Errorf("seed=%d: shooter %v inside the 2-cell border", seed, p)
					}
				}
			}
		})
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a, _ := Generate(defaultTestConfig(99, config.DifficultyMedium))
	b, _ := Generate(defaultTestConfig(99, config.DifficultyMedium))
	for r := range a.Tiles {
		for c := range a.Tiles[r] {
			if a.Tiles[r][c] != b.Tiles[r][c] {
				t.Fatalf("same seed produced different tile at (%d,%d)", r, c)
			}
		}
	}
}

func TestGenerateCorridorOnlyRoom(t *testing.T) {
	// With no noise or walkers only the start patch and corridor are carved.
	// Shooters replace walls, never floor, so the first candidate connects.
	cfg := &Config{
		Width: 8, Height: 8,
		Difficulty: config.DifficultyHard,
		Rand:       rand.New(rand.NewSource(1)),
	}
	gmap, attempts := Generate(cfg)
	if attempts != 1 {
		t.Errorf("attempts = %d; want 1", attempts)
	}
	if !gamemap.Reachable(gmap, gmap.Start(), gmap.End(), gamemap.Blocking()) {
		t.Fatal("corridor-only room is not connected")
	}
	if n := len(gmap.Find(gamemap.TileShooter)); n < 2 {
		t.Errorf("hard room placed %d shooters; want at least 2", n)
	}
}
