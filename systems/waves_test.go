package systems

import (
	"math"
	"testing"

	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func enemyPositions(e *ecs.ECS) [][3]float64 {
	var positions [][3]float64
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		p := components.Transform.Get(entry).Position
		positions = append(positions, [3]float64{p.X, p.Y, p.Z})
	})
	return positions
}

func TestSurvivalWaveEscalation(t *testing.T) {
	e := newTestECS(t, cfg.GameModeSurvival)
	session := GetSession(e)

	tick(e, 1, UpdateWaves)
	if session.Wave != 1 {
		t.Fatalf("wave = %d, want 1", session.Wave)
	}
	if got := countEnemies(e); got != cfg.Waves.InitialEnemies {
		t.Fatalf("wave 1 enemies = %d, want %d", got, cfg.Waves.InitialEnemies)
	}

	// Nothing respawns while the wave is alive.
	tick(e, 10, UpdateWaves)
	if got := countEnemies(e); got != cfg.Waves.InitialEnemies {
		t.Fatalf("enemy count changed mid-wave: %d", got)
	}

	removeEnemies(e)
	tick(e, 1, UpdateWaves)
	if session.Wave != 2 {
		t.Fatalf("wave = %d, want 2", session.Wave)
	}
	want := cfg.Waves.InitialEnemies + cfg.Waves.Increment
	if got := countEnemies(e); got != want {
		t.Fatalf("wave 2 enemies = %d, want %d", got, want)
	}
}

func TestSurvivalSpawnRingCenteredOnOrigin(t *testing.T) {
	e := newTestECS(t, cfg.GameModeSurvival)

	// The ring must stay anchored to the origin even after the player
	// wanders far away.
	cameraEntry, _ := components.Camera.First(e.World)
	components.Camera.Get(cameraEntry).Position = gamemath.Vector3{X: 50, Y: 2, Z: 50}

	tick(e, 1, UpdateWaves)

	for _, p := range enemyPositions(e) {
		if p[1] != cfg.Waves.SpawnHeight {
			t.Fatalf("spawn height = %v, want %v", p[1], cfg.Waves.SpawnHeight)
		}
		dist := math.Hypot(p[0], p[2])
		if dist < cfg.Waves.RingMin || dist > cfg.Waves.RingMax {
			t.Fatalf("spawn distance %v outside ring [%v, %v]", dist, cfg.Waves.RingMin, cfg.Waves.RingMax)
		}
	}
}

func TestSurvivalWaveBanner(t *testing.T) {
	e := newTestECS(t, cfg.GameModeSurvival)
	tick(e, 1, UpdateWaves)

	sessionEntry, _ := components.Session.First(e.World)
	feed := components.KillFeed.Get(sessionEntry)
	if len(feed.Entries) != 1 || feed.Entries[0].Message != "Wave 1 Starting!" {
		t.Fatalf("kill feed = %+v, want the wave banner", feed.Entries)
	}
}

func TestTargetPracticeRespawnsFixedLayout(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	session := GetSession(e)

	tick(e, 1, UpdateWaves)
	if got := countEnemies(e); got != len(cfg.Arena.TargetPositions) {
		t.Fatalf("targets = %d, want %d", got, len(cfg.Arena.TargetPositions))
	}
	if session.Wave != 0 {
		t.Fatalf("target practice advanced the wave counter to %d", session.Wave)
	}

	spawned := make(map[[3]float64]bool)
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Kind != cfg.EnemyNormal {
			t.Fatalf("target kind = %v, want normal", enemy.Kind)
		}
		p := components.Transform.Get(entry).Position
		spawned[[3]float64{p.X, p.Y, p.Z}] = true
	})
	for _, want := range cfg.Arena.TargetPositions {
		if !spawned[want] {
			t.Fatalf("no target at %v", want)
		}
	}

	removeEnemies(e)
	tick(e, 1, UpdateWaves)
	if got := countEnemies(e); got != len(cfg.Arena.TargetPositions) {
		t.Fatalf("targets after respawn = %d, want %d", got, len(cfg.Arena.TargetPositions))
	}

	sessionEntry, _ := components.Session.First(e.World)
	feed := components.KillFeed.Get(sessionEntry)
	for _, entry := range feed.Entries {
		if entry.Message == "Wave 1 Starting!" {
			t.Fatal("target practice should not announce waves")
		}
	}
}
