package systems

import (
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeaponIntents translates input edges into weapon operations.
// Fire is edge-triggered: holding the button fires once.
func UpdateWeaponIntents(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionWeapon1).JustPressed {
		SelectWeapon(e, cfg.WeaponPistol)
	}
	if GetAction(input, cfg.ActionWeapon2).JustPressed {
		SelectWeapon(e, cfg.WeaponRifle)
	}
	if GetAction(input, cfg.ActionWeapon3).JustPressed {
		SelectWeapon(e, cfg.WeaponShotgun)
	}
	if GetAction(input, cfg.ActionReload).JustPressed {
		StartReload(e)
	}
	if GetAction(input, cfg.ActionFire).JustPressed {
		Fire(e)
	}
}

// UpdateWeapons advances every weapon's cooldown and reload timers.
// Reloads keep ticking on holstered weapons; only the selected weapon
// auto-reloads when it runs dry.
func UpdateWeapons(e *ecs.ECS) {
	loadout := GetLoadout(e)
	dt := GetDT(e)

	for id := cfg.WeaponID(0); id < cfg.WeaponCount; id++ {
		w := &loadout.Weapons[id]
		if w.Cooldown > 0 {
			w.Cooldown -= dt
			if w.Cooldown < 0 {
				w.Cooldown = 0
			}
		}
		if w.Reloading > 0 {
			w.Reloading -= dt
			if w.Reloading <= 0 {
				finishReload(w, cfg.Weapons[id])
			}
		}
	}

	active := loadout.Active()
	if active.Ammo == 0 && active.Reloading <= 0 && active.Reserve > 0 {
		StartReload(e)
	}
}

// SelectWeapon switches the active slot. Weapon state persists across
// switches; an in-flight reload on the old weapon keeps running.
func SelectWeapon(e *ecs.ECS, id cfg.WeaponID) {
	if id < 0 || id >= cfg.WeaponCount {
		return
	}
	GetLoadout(e).Current = id
}

// StartReload begins a reload of the active weapon. No-op when already
// reloading, when the magazine is full, or when the reserve is empty.
func StartReload(e *ecs.ECS) {
	loadout := GetLoadout(e)
	w := loadout.Active()
	weapon := cfg.Weapons[loadout.Current]

	if w.Reloading > 0 || w.Ammo >= weapon.MaxAmmo || w.Reserve <= 0 {
		return
	}
	w.Reloading = weapon.ReloadTime
}

func finishReload(w *components.WeaponStateData, weapon cfg.WeaponConfig) {
	w.Reloading = 0
	need := weapon.MaxAmmo - w.Ammo
	if need > w.Reserve {
		need = w.Reserve
	}
	w.Ammo += need
	w.Reserve -= need
}

// Fire attempts a shot with the active weapon. A rejected intent (cooling
// down, reloading or dry) changes nothing. A shot consumes one round no
// matter how many pellets it casts or whether any of them hit.
func Fire(e *ecs.ECS) bool {
	loadout := GetLoadout(e)
	w := loadout.Active()
	if !w.CanFire() {
		return false
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return false
	}
	camera := components.Camera.Get(cameraEntry)
	session := GetSession(e)
	weapon := cfg.Weapons[loadout.Current]

	w.Ammo--
	w.Cooldown = weapon.FireRate
	TriggerScreenShake(e)

	for i := 0; i < weapon.Pellets; i++ {
		dir := camera.Forward()
		if weapon.Spread > 0 {
			// Spread perturbs the horizontal and vertical components only.
			dir.X += spreadOffset(session, weapon.Spread)
			dir.Y += spreadOffset(session, weapon.Spread)
			dir = dir.Normalize()
		}
		if target, ok := Raycast(e, camera.Position, dir); ok {
			ApplyHit(e, target, weapon.Damage)
		}
	}
	return true
}

func spreadOffset(session *components.SessionData, spread float64) float64 {
	return (session.Rand.Float64()*2 - 1) * spread
}
