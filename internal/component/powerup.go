package component

// PowerUp identifies a held, single-use ability. The zero value means none.
type PowerUp string

const (
	PowerUpNone         PowerUp = ""
	PowerUpTimeStop     PowerUp = "time_stop"
	PowerUpInvulnerable PowerUp = "invulnerable/5hp"
	PowerUpExplosive    PowerUp = "explosive"
)

// PowerUps lists every grantable power-up in roll order.
var PowerUps = [3]PowerUp{PowerUpTimeStop, PowerUpInvulnerable, PowerUpExplosive}

// ParsePowerUp maps a power-up name to its value.
func ParsePowerUp(s string) (PowerUp, bool) {
	for _, p := range PowerUps {
		if string(p) == s {
			return p, true
		}
	}
	return PowerUpNone, false
}

// Label returns the display name, "None" when nothing is held.
func (p PowerUp) Label() string {
	if p == PowerUpNone {
		return "None"
	}
	return string(p)
}
