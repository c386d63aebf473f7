package component

import (
	"math"
	"testing"
)

func TestPositionAdjacent(t *testing.T) {
	p := Position{Row: 5, Col: 5}
	cases := []struct {
		name string
		o    Position
		want bool
	}{
		{"up", Position{4, 5}, true},
		{"left", Position{5, 4}, true},
		{"down", Position{6, 5}, true},
		{"right", Position{5, 6}, true},
		{"same cell", Position{5, 5}, false},
		{"diagonal", Position{6, 6}, false},
		{"two away", Position{5, 7}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Adjacent(tc.o); got != tc.want {
				t.Errorf("Adjacent(%v) = %v; want %v", tc.o, got, tc.want)
			}
		})
	}
}

func TestPositionStepMatchesDirectionOrder(t *testing.T) {
	p := Position{Row: 3, Col: 3}
	want := []Position{{2, 3}, {3, 2}, {4, 3}, {3, 4}}
	for i, d := range Directions {
		if got := p.Step(d); got != want[i] {
			t.Errorf("Step(%v) = %v; want %v", d, got, want[i])
		}
	}
}

func TestPositionDist(t *testing.T) {
	p := Position{Row: 10, Col: 10}
	if d := p.Dist(Position{Row: 13, Col: 14}); d != 5 {
		t.Errorf("Dist = %v; want 5", d)
	}
	if d := p.Dist(Position{Row: 12, Col: 13}); math.Abs(d-math.Sqrt(13)) > 1e-9 {
		t.Errorf("Dist = %v; want sqrt(13)", d)
	}
}

func TestActorLiveness(t *testing.T) {
	m := NewMonster(Position{})
	if !m.Alive() || m.Immortal() {
		t.Fatal("fresh monster should be alive and mortal")
	}
	m.HP = 0
	if m.Alive() {
		t.Fatal("hp 0 monster should not be alive")
	}
	inv := NewInvulnerableMonster(Position{})
	if !inv.Alive() || !inv.Immortal() {
		t.Fatal("invulnerable monster should be alive and immortal")
	}
}

func TestParsePowerUp(t *testing.T) {
	for _, p := range PowerUps {
		got, ok := ParsePowerUp(string(p))
		if !ok || got != p {
			t.Errorf("ParsePowerUp(%q) = %q, %v", p, got, ok)
		}
	}
	if _, ok := ParsePowerUp("invulnerable"); ok {
		t.Error("bare \"invulnerable\" should not parse")
	}
	if PowerUpNone.Label() != "None" {
		t.Errorf("empty label = %q", PowerUpNone.Label())
	}
}
