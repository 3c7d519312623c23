package components

import (
	"github.com/automoto/deadeye/config"
	"github.com/yohamta/donburi"
)

// WeaponStateData is the mutable per-weapon state. Cooldown and Reloading
// never go negative; Ammo never exceeds the kind's magazine capacity.
type WeaponStateData struct {
	Ammo      int
	Reserve   int
	Cooldown  float64 // seconds until the next shot is accepted
	Reloading float64 // seconds left in the reload; 0 when not reloading
}

// CanFire reports whether a fire intent would be accepted.
func (w *WeaponStateData) CanFire() bool {
	return w.Cooldown <= 0 && w.Reloading <= 0 && w.Ammo > 0
}

// LoadoutData holds every weapon's state plus the active selection.
// It lives on the session entity; weapon state persists across switches.
type LoadoutData struct {
	Current config.WeaponID
	Weapons [config.WeaponCount]WeaponStateData
}

// Active returns the selected weapon's mutable state.
func (l *LoadoutData) Active() *WeaponStateData {
	return &l.Weapons[l.Current]
}

var Loadout = donburi.NewComponentType[LoadoutData]()
