package component

// HPInvulnerable marks a monster that no damage source can hurt or remove.
const HPInvulnerable = -1

// Actor is a positioned, hit-point-bearing entity. The player and every
// monster share this shape; only the player ever holds a power-up or sets
// PredictPending.
type Actor struct {
	Pos     Position
	HP      int
	PowerUp PowerUp

	// PredictPending arms a deferred attack resolved at end of turn.
	PredictPending bool
	// Invulnerable absorbs hazard and contact damage until the turn ends.
	Invulnerable bool
}

// NewMonster returns a regular one-hit monster at p.
func NewMonster(p Position) Actor {
	return Actor{Pos: p, HP: 1}
}

// NewInvulnerableMonster returns a monster that can never be killed.
func NewInvulnerableMonster(p Position) Actor {
	return Actor{Pos: p, HP: HPInvulnerable}
}

// Alive reports whether a monster still takes part in the turn.
// Invulnerable monsters are always alive.
func (a *Actor) Alive() bool {
	return a.HP > 0 || a.HP == HPInvulnerable
}

// Immortal reports whether the actor is a permanently invulnerable monster.
func (a *Actor) Immortal() bool {
	return a.HP == HPInvulnerable
}
