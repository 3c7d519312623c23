package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/automoto/deadeye/systems/factory"
)

func TestFireConsumesOneRound(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	loadout := GetLoadout(e)

	if !Fire(e) {
		t.Fatal("first shot with a full magazine should be accepted")
	}
	w := loadout.Active()
	if w.Ammo != cfg.Weapons[cfg.WeaponPistol].MaxAmmo-1 {
		t.Fatalf("ammo = %d, want %d", w.Ammo, cfg.Weapons[cfg.WeaponPistol].MaxAmmo-1)
	}
	if w.Cooldown != cfg.Weapons[cfg.WeaponPistol].FireRate {
		t.Fatalf("cooldown = %v, want %v", w.Cooldown, cfg.Weapons[cfg.WeaponPistol].FireRate)
	}
}

func TestFireRejectedDuringCooldown(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	loadout := GetLoadout(e)

	Fire(e)
	if Fire(e) {
		t.Fatal("second immediate shot should be rejected by the cooldown")
	}
	if got := loadout.Active().Ammo; got != cfg.Weapons[cfg.WeaponPistol].MaxAmmo-1 {
		t.Fatalf("rejected shot consumed ammo: %d", got)
	}

	tick(e, ticksFor(cfg.Weapons[cfg.WeaponPistol].FireRate), UpdateWeapons)
	if !Fire(e) {
		t.Fatal("shot after the cooldown elapsed should be accepted")
	}
}

func TestFireRejectedWhileReloading(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	loadout := GetLoadout(e)
	loadout.Active().Ammo = 3

	StartReload(e)
	if Fire(e) {
		t.Fatal("shot during reload should be rejected")
	}
	if got := loadout.Active().Ammo; got != 3 {
		t.Fatalf("rejected shot changed ammo: %d", got)
	}
}

func TestReloadRefillsFromReserve(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	loadout := GetLoadout(e)
	w := loadout.Active()
	w.Ammo = 2

	StartReload(e)
	if w.Reloading != cfg.Weapons[cfg.WeaponPistol].ReloadTime {
		t.Fatalf("reloading = %v, want %v", w.Reloading, cfg.Weapons[cfg.WeaponPistol].ReloadTime)
	}

	tick(e, ticksFor(cfg.Weapons[cfg.WeaponPistol].ReloadTime), UpdateWeapons)
	if w.Ammo != 12 || w.Reserve != 26 {
		t.Fatalf("after reload ammo = %d reserve = %d, want 12 and 26", w.Ammo, w.Reserve)
	}
	if w.Reloading != 0 {
		t.Fatalf("reloading should be finished, got %v", w.Reloading)
	}
}

func TestReloadClampedByReserve(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	w := GetLoadout(e).Active()
	w.Ammo = 0
	w.Reserve = 5

	StartReload(e)
	tick(e, ticksFor(cfg.Weapons[cfg.WeaponPistol].ReloadTime), UpdateWeapons)
	if w.Ammo != 5 || w.Reserve != 0 {
		t.Fatalf("ammo = %d reserve = %d, want 5 and 0", w.Ammo, w.Reserve)
	}
}

func TestReloadNoOps(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	w := GetLoadout(e).Active()

	// Full magazine
	StartReload(e)
	if w.Reloading != 0 {
		t.Fatal("reload with a full magazine should be a no-op")
	}

	// Empty reserve
	w.Ammo = 1
	w.Reserve = 0
	StartReload(e)
	if w.Reloading != 0 {
		t.Fatal("reload with an empty reserve should be a no-op")
	}

	// Already reloading
	w.Reserve = 10
	StartReload(e)
	remaining := w.Reloading
	tick(e, 1, UpdateWeapons)
	StartReload(e)
	if w.Reloading >= remaining {
		t.Fatal("restarting an in-flight reload should not reset the timer")
	}
}

func TestAutoReloadOnlyForActiveWeapon(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	loadout := GetLoadout(e)
	loadout.Weapons[cfg.WeaponPistol].Ammo = 0
	loadout.Weapons[cfg.WeaponRifle].Ammo = 0

	tick(e, 1, UpdateWeapons)
	if loadout.Weapons[cfg.WeaponPistol].Reloading <= 0 {
		t.Fatal("dry active weapon should auto-reload")
	}
	if loadout.Weapons[cfg.WeaponRifle].Reloading != 0 {
		t.Fatal("dry holstered weapon should not auto-reload")
	}
}

func TestPistolDepletionCycle(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	removeEnemies(e)
	loadout := GetLoadout(e)
	w := loadout.Active()

	for i := 0; i < cfg.Weapons[cfg.WeaponPistol].MaxAmmo; i++ {
		if !Fire(e) {
			t.Fatalf("shot %d rejected", i+1)
		}
		w.Cooldown = 0
	}
	if w.Ammo != 0 {
		t.Fatalf("ammo = %d, want 0", w.Ammo)
	}
	if Fire(e) {
		t.Fatal("dry fire should be rejected")
	}

	tick(e, ticksFor(cfg.Weapons[cfg.WeaponPistol].ReloadTime), UpdateWeapons)
	if w.Ammo != 12 || w.Reserve != 24 {
		t.Fatalf("after auto-reload ammo = %d reserve = %d, want 12 and 24", w.Ammo, w.Reserve)
	}
}

func TestSelectWeaponKeepsState(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	loadout := GetLoadout(e)
	loadout.Weapons[cfg.WeaponPistol].Ammo = 7

	SelectWeapon(e, cfg.WeaponShotgun)
	if loadout.Current != cfg.WeaponShotgun {
		t.Fatalf("current = %v, want shotgun", loadout.Current)
	}
	SelectWeapon(e, cfg.WeaponPistol)
	if got := loadout.Active().Ammo; got != 7 {
		t.Fatalf("pistol ammo after switching back = %d, want 7", got)
	}

	SelectWeapon(e, cfg.WeaponID(99))
	if loadout.Current != cfg.WeaponPistol {
		t.Fatal("selecting an invalid slot should be ignored")
	}
}

func TestSpreadPerturbsTwoAxesPerPellet(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	removeEnemies(e)

	// The world is seeded with 1 and nothing has drawn from the session
	// source yet, so a reference source tracks it exactly. One pellet
	// draws twice: a horizontal and a vertical offset, never a depth one.
	ref := rand.New(rand.NewSource(1))
	ref.Float64()
	ref.Float64()

	if !Fire(e) {
		t.Fatal("shot rejected")
	}
	if got, want := GetSession(e).Rand.Float64(), ref.Float64(); got != want {
		t.Fatalf("pellet consumed a different number of random draws: next = %v, want %v", got, want)
	}
}

func TestShotgunConsumesOneRoundForAllPellets(t *testing.T) {
	e := newTestECS(t, cfg.GameModeTarget)
	removeEnemies(e)

	// A tank survives a full shotgun blast, so the hit count is visible
	// in its remaining health.
	enemy := factory.CreateEnemy(e, gamemath.Vector3{X: 0, Y: 2, Z: -10}, cfg.EnemyTank)

	SelectWeapon(e, cfg.WeaponShotgun)
	w := GetLoadout(e).Active()
	if !Fire(e) {
		t.Fatal("shotgun blast rejected")
	}
	if w.Ammo != cfg.Weapons[cfg.WeaponShotgun].MaxAmmo-1 {
		t.Fatalf("ammo = %d, want one round consumed for the whole blast", w.Ammo)
	}

	shotgun := cfg.Weapons[cfg.WeaponShotgun]
	wantHealth := cfg.Enemy.Types[cfg.EnemyTank].Health - float64(shotgun.Pellets)*shotgun.Damage
	if got := components.Health.Get(enemy).Current; got != wantHealth {
		t.Fatalf("tank health = %v, want %v (every pellet hits at close range)", got, wantHealth)
	}
}
