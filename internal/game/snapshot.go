package game

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"fmt"
)

// SpikeView is a spike as a renderer sees it.
type SpikeView struct {
	Pos       component.Position
	Dangerous bool
}

// Snapshot is a read-only copy of the run for renderers. Mutating it never
// affects the game.
type Snapshot struct {
	Map        *gamemap.GameMap
	Exit       component.Position
	Player     component.Actor
	Monsters   []component.Actor
	Spikes     []SpikeView
	Room       int
	Score      int
	Turn       int
	Phase      Phase
	Difficulty config.Difficulty
	Messages   []string
	Run        RunLog
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	spikes := make([]SpikeView, len(g.spikes))
	for i := range g.spikes {
		spikes[i] = SpikeView{Pos: g.spikes[i].Pos, Dangerous: g.spikes[i].Dangerous()}
	}
	return Snapshot{
		Map:        g.gmap.Clone(),
		Exit:       g.exit,
		Player:     g.player,
		Monsters:   append([]component.Actor(nil), g.monsters...),
		Spikes:     spikes,
		Room:       g.room,
		Score:      g.score,
		Turn:       g.turn,
		Phase:      g.phase,
		Difficulty: g.cfg.Difficulty,
		Messages:   append([]string(nil), g.messages...),
		Run:        g.runLog,
	}
}

// StatusLine is the one-line summary shown under the map.
func (s Snapshot) StatusLine() string {
	return fmt.Sprintf("Room: %d  HP: %d  Power-up: %s  Score: %d  Monsters: %d  Exit: (%d, %d)",
		s.Room, s.Player.HP, s.Player.PowerUp.Label(), s.Score, len(s.Monsters), s.Exit.Row, s.Exit.Col)
}

// LastMessages returns up to n of the most recent messages, oldest first.
func (s Snapshot) LastMessages(n int) []string {
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}
