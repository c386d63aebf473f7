// Package game runs the turn engine: it owns one run's state and resolves
// each line of player input into a full turn.
package game

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/system"
	"fmt"
	"log/slog"
	"math/rand"
)

// Phase is the turn engine's position in the current turn.
type Phase uint8

const (
	PhaseAwaitingInput Phase = iota
	PhaseMovingTiles
	PhasePlayerActions
	PhaseMonsterAI
	PhaseEndOfTurn
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting input"
	case PhaseMovingTiles:
		return "moving tiles"
	case PhasePlayerActions:
		return "player actions"
	case PhaseMonsterAI:
		return "monster ai"
	case PhaseEndOfTurn:
		return "end of turn"
	case PhaseGameOver:
		return "game over"
	}
	return "?"
}

// Outcome reports how a call to PlayTurn ended.
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeNextRoom
	OutcomeDied
	OutcomeQuit
	OutcomeRestart
	OutcomeCheatGranted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeNextRoom:
		return "next room"
	case OutcomeDied:
		return "died"
	case OutcomeQuit:
		return "quit"
	case OutcomeRestart:
		return "restart"
	case OutcomeCheatGranted:
		return "cheat granted"
	}
	return "?"
}

// HealthPickup is the hp restored by a health tile.
const HealthPickup = 2

const maxMessages = 50

// Game is the state of one run.
type Game struct {
	cfg config.Config
	rng *rand.Rand
	log *slog.Logger

	gmap     *gamemap.GameMap
	exit     component.Position
	player   component.Actor
	monsters []component.Actor
	spikes   []component.Spike

	room  int
	score int
	turn  int // completed turns in the current room
	phase Phase

	messages []string
	runLog   RunLog
}

// New starts a run in room 1. cfg must have a difficulty chosen.
// A nil logger discards everything.
func New(cfg config.Config, rng *rand.Rand, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Game{
		cfg:    cfg,
		rng:    rng,
		log:    logger,
		player: component.Actor{HP: cfg.Difficulty.StartingHP()},
	}
	g.loadRoom(1)
	return g
}

// Phase returns where the engine currently is in the turn.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the number of monsters killed by the player this run.
func (g *Game) Score() int { return g.score }

// Over reports whether the run has ended in death.
func (g *Game) Over() bool { return g.phase == PhaseGameOver }

// PlayTurn resolves one line of input. Quit, restart and cheat lines use no
// turn. Otherwise the turn runs moving tiles, the player's action batch,
// monster AI and end-of-turn resolution in that order. Effects applied
// before death or a room change are kept.
func (g *Game) PlayTurn(line string) Outcome {
	if g.phase == PhaseGameOver {
		return OutcomeDied
	}

	cmd := ParseLine(line)
	switch {
	case cmd.Grant != component.PowerUpNone:
		g.player.PowerUp = cmd.Grant
		g.addMessage(fmt.Sprintf("Cheat activated: %s power-up granted!", cmd.Grant))
		g.log.Debug("turn: cheat", "powerup", string(cmd.Grant))
		return OutcomeCheatGranted
	case cmd.Quit:
		logRun(g.runLog, g.score, "quit", g.log)
		return OutcomeQuit
	case cmd.Restart:
		logRun(g.runLog, g.score, "restart", g.log)
		return OutcomeRestart
	}

	g.phase = PhaseMovingTiles
	g.resolveMovingTiles()

	g.phase = PhasePlayerActions
	if out, done := g.resolveActions(cmd.Actions); done {
		return out
	}

	g.phase = PhaseMonsterAI
	if n := system.ProcessAI(g.gmap, g.monsters, g.player.Pos, g.spikes, g.rng); n > 0 {
		g.addMessage(fmt.Sprintf("%d monster(s) impaled on spikes.", n))
	}

	g.phase = PhaseEndOfTurn
	g.resolveEndOfTurn()
	if g.player.HP <= 0 {
		return g.die("monster")
	}
	return g.settle()
}

func (g *Game) resolveMovingTiles() {
	system.AdvanceArrows(g.gmap)
	if n := system.FireShooters(g.gmap, g.turn); n > 0 {
		g.log.Debug("turn: shooters fired", "arrows", n)
	}
}

// resolveActions plays the batch. done is true when the turn ended early.
func (g *Game) resolveActions(actions []Action) (out Outcome, done bool) {
	limit := g.cfg.ActionLimit
	usedPowerUp := false

	for i := 0; i < len(actions) && i < limit; i++ {
		g.pickUpHealth()
		// The first action may leave a spike before it strikes.
		if i > 0 {
			switch outcome, spikes := system.StrikePlayer(&g.player, g.spikes); outcome {
			case system.SpikeLethal:
				return g.die("spike"), true
			case system.SpikeAbsorbed:
				g.spikes = spikes
				g.addMessage("Your invulnerability shatters the spike.")
			}
		}
		g.pickUpPowerUp()
		if g.player.Pos == g.exit {
			g.nextRoom()
			g.phase = PhaseAwaitingInput
			return OutcomeNextRoom, true
		}
		if g.player.HP <= 0 {
			return g.die("monster"), true
		}

		switch a := actions[i]; a {
		case ActionUsePowerUp:
			if usedPowerUp || g.player.PowerUp == component.PowerUpNone {
				continue
			}
			usedPowerUp = true
			limit += g.usePowerUp()
		case ActionAttack:
			if system.Melee(&g.player, g.monsters) {
				g.award(1)
				g.addMessage("You slay a monster.")
			} else if g.player.PredictPending {
				g.addMessage("You ready a strike.")
			}
		default:
			if d, ok := a.Direction(); ok {
				system.TryMove(g.gmap, &g.player, d, g.monsters)
			}
		}
	}
	return OutcomeContinue, false
}

// usePowerUp activates the held power-up and returns the extra actions it
// grants for this turn.
func (g *Game) usePowerUp() int {
	act := system.Activate(g.gmap, &g.player, g.monsters)
	g.runLog.PowerUpsUsed++
	g.award(act.Kills)
	g.log.Info("powerup: used", "powerup", string(act.Used), "kills", act.Kills, "cleared", act.Cleared)

	switch act.Used {
	case component.PowerUpTimeStop:
		g.addMessage("Time stops around you.")
	case component.PowerUpInvulnerable:
		g.addMessage(fmt.Sprintf("You feel invulnerable. (+%d HP)", system.InvulnerableHeal))
	case component.PowerUpExplosive:
		g.addMessage(fmt.Sprintf("The blast kills %d monster(s).", act.Kills))
	}
	return act.ExtraActions
}

func (g *Game) resolveEndOfTurn() {
	if n := system.ResolvePrediction(&g.player, g.monsters, g.rng); n > 0 {
		g.award(n)
		g.addMessage(fmt.Sprintf("Your readied strike kills %d monster(s).", n))
	}
	kills, damage := system.ResolveCollisions(&g.player, g.monsters)
	g.award(kills)
	damage += system.ResolveAdjacency(&g.player, g.monsters)
	if damage > 0 {
		g.runLog.DamageTaken += damage
		g.addMessage(fmt.Sprintf("Monsters hit you for %d.", damage))
	}

	system.AdvanceSpikes(g.spikes)
	g.player.Invulnerable = false
	g.monsters = system.RemoveDead(g.monsters)
	g.turn++
	g.runLog.TurnsPlayed++
}

// settle applies the checks made while waiting for the next line: a health
// tile under the player is eaten and standing on the exit changes room.
func (g *Game) settle() Outcome {
	g.pickUpHealth()
	g.phase = PhaseAwaitingInput
	if g.player.Pos == g.exit {
		g.nextRoom()
		return OutcomeNextRoom
	}
	return OutcomeContinue
}

func (g *Game) pickUpHealth() {
	if g.gmap.At(g.player.Pos) != gamemap.TileHealth {
		return
	}
	g.player.HP += HealthPickup
	g.gmap.Set(g.player.Pos, gamemap.TileFloor)
	g.addMessage(fmt.Sprintf("You feel better. (+%d HP)", HealthPickup))
}

func (g *Game) pickUpPowerUp() {
	if g.gmap.At(g.player.Pos) != gamemap.TilePowerUp {
		return
	}
	g.gmap.Set(g.player.Pos, gamemap.TileFloor)
	if system.Acquire(&g.player, g.rng) {
		g.addMessage(fmt.Sprintf("You pick up %s.", g.player.PowerUp))
		g.log.Info("powerup: acquired", "powerup", string(g.player.PowerUp), "room", g.room)
	}
}

func (g *Game) award(kills int) {
	g.score += kills
	g.runLog.MonstersKilled += kills
}

func (g *Game) die(cause string) Outcome {
	g.phase = PhaseGameOver
	g.runLog.CauseOfDeath = cause
	g.addMessage("You were defeated.")
	logRun(g.runLog, g.score, "died", g.log)
	return OutcomeDied
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
