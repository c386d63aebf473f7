package game

import (
	"dungeon-crawler/internal/component"
	"strings"
)

// Action represents one character of a player's action line.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveLeft
	ActionMoveDown
	ActionMoveRight
	ActionAttack
	ActionUsePowerUp
)

// CheatPrefix starts a debug line that grants a power-up without using a turn.
const CheatPrefix = "56840"

// Command is a parsed input line.
type Command struct {
	Actions []Action
	Quit    bool
	Restart bool
	Grant   component.PowerUp // set by a valid cheat line
}

// ParseLine interprets one line of input. Every character is an action
// slot, including unknown ones, which do nothing when played. A q anywhere
// in the line quits and an r anywhere restarts; quit wins when both appear.
// A cheat line naming an unknown power-up is parsed as ordinary actions.
func ParseLine(line string) Command {
	line = strings.ToLower(strings.TrimSpace(line))

	if rest, ok := strings.CutPrefix(line, CheatPrefix); ok {
		if p, ok := component.ParsePowerUp(rest); ok {
			return Command{Grant: p}
		}
	}
	if strings.ContainsRune(line, 'q') {
		return Command{Quit: true}
	}
	if strings.ContainsRune(line, 'r') {
		return Command{Restart: true}
	}

	var cmd Command
	for _, r := range line {
		cmd.Actions = append(cmd.Actions, runeToAction(r))
	}
	return cmd
}

// runeToAction maps an input character to a game action.
func runeToAction(r rune) Action {
	switch r {
	case 'w':
		return ActionMoveUp
	case 'a':
		return ActionMoveLeft
	case 's':
		return ActionMoveDown
	case 'd':
		return ActionMoveRight
	case 'f':
		return ActionAttack
	case 'u':
		return ActionUsePowerUp
	}
	return ActionNone
}

// Direction converts a movement action to its direction.
func (a Action) Direction() (component.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return component.DirUp, true
	case ActionMoveLeft:
		return component.DirLeft, true
	case ActionMoveDown:
		return component.DirDown, true
	case ActionMoveRight:
		return component.DirRight, true
	}
	return 0, false
}
