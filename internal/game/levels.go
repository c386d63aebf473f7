package game

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/generate"
	"fmt"
	"math/rand"
)

// roomConfig builds the generator settings for one room.
func roomConfig(cfg config.Config, rng *rand.Rand) *generate.Config {
	return generate.DefaultConfig(cfg.GridSize, cfg.Difficulty, rng)
}

// loadRoom generates and populates a room. Grid, monsters and spikes are
// all replaced; the player keeps hp, power-up and flags and is moved to the
// start cell.
func (g *Game) loadRoom(room int) {
	gmap, attempts := generate.Generate(roomConfig(g.cfg, g.rng))
	pop := generate.Populate(gmap, g.cfg.Difficulty, room, g.rng)

	g.room = room
	g.gmap = gmap
	g.exit = gmap.End()
	g.monsters = pop.Monsters
	g.spikes = pop.Spikes
	g.turn = 0
	g.player.Pos = gmap.Start()
	if room > g.runLog.RoomsReached {
		g.runLog.RoomsReached = room
	}

	g.log.Info("room: generated",
		"room", room,
		"attempts", attempts,
		"monsters", len(pop.Monsters),
		"spikes", len(pop.Spikes),
		"health", pop.Health,
		"powerup", pop.PowerUp,
	)
	if room == 1 {
		g.addMessage(fmt.Sprintf("You enter the dungeon on %s.", g.cfg.Difficulty))
	} else {
		g.addMessage(fmt.Sprintf("You reach room %d.", room))
	}
}

// nextRoom advances to the following room.
func (g *Game) nextRoom() {
	g.loadRoom(g.room + 1)
}
