package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"
	"testing"
)

func TestDangerousAt(t *testing.T) {
	spikes := []component.Spike{lethalSpike(pos(2, 2)), safeSpike(pos(3, 3))}
	if !DangerousAt(spikes, pos(2, 2)) {
		t.Error("expected lethal spike at (2,2)")
	}
	if DangerousAt(spikes, pos(3, 3)) {
		t.Error("spike at (3,3) should be safe")
	}
	if DangerousAt(spikes, pos(4, 4)) {
		t.Error("no spike at (4,4)")
	}
	AdvanceSpikes(spikes)
	if DangerousAt(spikes, pos(2, 2)) || !DangerousAt(spikes, pos(3, 3)) {
		t.Error("advancing should flip both period-2 spikes")
	}
}

func TestStrikePlayer(t *testing.T) {
	tests := []struct {
		name        string
		player      component.Actor
		spike       component.Spike
		want        SpikeOutcome
		wantSpikes  int
		wantPowerUp component.PowerUp
		wantInvuln  bool
	}{
		{
			name:       "safe phase",
			player:     component.Actor{Pos: pos(2, 2), HP: 3},
			spike:      safeSpike(pos(2, 2)),
			want:       SpikeNone,
			wantSpikes: 1,
		},
		{
			name:       "different cell",
			player:     component.Actor{Pos: pos(2, 3), HP: 3},
			spike:      lethalSpike(pos(2, 2)),
			want:       SpikeNone,
			wantSpikes: 1,
		},
		{
			name:       "lethal unprotected",
			player:     component.Actor{Pos: pos(2, 2), HP: 3},
			spike:      lethalSpike(pos(2, 2)),
			want:       SpikeLethal,
			wantSpikes: 1,
		},
		{
			name:       "invulnerable flag absorbs",
			player:     component.Actor{Pos: pos(2, 2), HP: 3, Invulnerable: true},
			spike:      lethalSpike(pos(2, 2)),
			want:       SpikeAbsorbed,
			wantSpikes: 0,
		},
		{
			name:       "held shield absorbs",
			player:     component.Actor{Pos: pos(2, 2), HP: 3, PowerUp: component.PowerUpInvulnerable},
			spike:      lethalSpike(pos(2, 2)),
			want:       SpikeAbsorbed,
			wantSpikes: 0,
		},
		{
			name:        "flag used before held shield",
			player:      component.Actor{Pos: pos(2, 2), HP: 3, Invulnerable: true, PowerUp: component.PowerUpInvulnerable},
			spike:       lethalSpike(pos(2, 2)),
			want:        SpikeAbsorbed,
			wantSpikes:  0,
			wantPowerUp: component.PowerUpInvulnerable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.player
			got, spikes := StrikePlayer(&p, []component.Spike{tt.spike})
			if got != tt.want {
				t.Fatalf("outcome = %v, want %v", got, tt.want)
			}
			if len(spikes) != tt.wantSpikes {
				t.Fatalf("spikes left = %d, want %d", len(spikes), tt.wantSpikes)
			}
			if p.PowerUp != tt.wantPowerUp || p.Invulnerable != tt.wantInvuln {
				t.Fatalf("player = %+v", p)
			}
			if p.HP != tt.player.HP {
				t.Fatalf("spikes never change hp, got %d", p.HP)
			}
		})
	}
}

func TestAdvanceArrows(t *testing.T) {
	gmap := openMap(8, 8)
	gmap.Set(pos(3, 3), gamemap.TileArrowRight)
	gmap.Set(pos(1, 3), gamemap.TileArrowUp) // flies into the border
	gmap.Set(pos(5, 2), gamemap.TileArrowDown)
	gmap.Set(pos(6, 2), gamemap.TileHealth)

	moved, removed := AdvanceArrows(gmap)
	if moved != 1 || removed != 2 {
		t.Fatalf("expected 1 moved and 2 removed, got %d and %d", moved, removed)
	}
	if gmap.At(pos(3, 3)) != gamemap.TileFloor || gmap.At(pos(3, 4)) != gamemap.TileArrowRight {
		t.Fatal("right arrow should advance one cell")
	}
	if gmap.At(pos(1, 3)) != gamemap.TileFloor || gmap.At(pos(0, 3)) != gamemap.TileWall {
		t.Fatal("arrow hitting the wall should vanish")
	}
	if gmap.At(pos(5, 2)) != gamemap.TileFloor || gmap.At(pos(6, 2)) != gamemap.TileHealth {
		t.Fatal("arrow should not overwrite a health tile")
	}
}

func TestAdvanceArrowsMovesEachOnce(t *testing.T) {
	gmap := openMap(10, 4)
	gmap.Set(pos(1, 1), gamemap.TileArrowRight)
	AdvanceArrows(gmap)
	if got := gmap.Find(gamemap.TileArrowRight); len(got) != 1 || got[0] != pos(1, 2) {
		t.Fatalf("expected a single arrow at (1,2), got %v", got)
	}
}

func TestFireShooters(t *testing.T) {
	gmap := openMap(8, 8)
	gmap.Set(pos(0, 3), gamemap.TileShooter)
	gmap.Set(pos(4, 0), gamemap.TileShooter)

	for turn := range ShooterInterval - 1 {
		if n := FireShooters(gmap, turn); n != 0 {
			t.Fatalf("turn %d: unexpected volley of %d", turn, n)
		}
	}
	if n := FireShooters(gmap, ShooterInterval-1); n != 2 {
		t.Fatalf("expected 2 arrows, got %d", n)
	}
	if gmap.At(pos(1, 3)) != gamemap.TileArrowDown {
		t.Errorf("top shooter should fire down, got %v", gmap.At(pos(1, 3)))
	}
	if gmap.At(pos(4, 1)) != gamemap.TileArrowRight {
		t.Errorf("left shooter should fire right, got %v", gmap.At(pos(4, 1)))
	}
}

func TestFireShooterEnclosed(t *testing.T) {
	gmap := gamemap.New(5, 5)
	gmap.Set(pos(2, 2), gamemap.TileShooter)
	if n := FireShooters(gmap, ShooterInterval-1); n != 0 {
		t.Fatalf("enclosed shooter fired %d arrows", n)
	}
}
