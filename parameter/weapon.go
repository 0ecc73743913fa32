package parameter

import "github.com/lixenwraith/storm-arena/core"

// WeaponSpec is an immutable weapon catalog entry
type WeaponSpec struct {
	Name string

	// Cooldown is the delay between shots in seconds
	Cooldown float64

	// Speed is bullet travel per second
	Speed float64

	// Damage is applied per bullet hit
	Damage float64

	// Spread is the full jitter cone in radians
	Spread float64

	// Pellets is bullets spawned per shot
	Pellets int

	Color core.RGB

	// Recoil pushes the shooter backwards along the aim vector, 0 for none
	Recoil float64

	// Pierce keeps the bullet alive after a target hit
	Pierce bool
}

// Weapon catalog, indexed by selection slot
var weapons = [...]WeaponSpec{
	{Name: "Pistol", Cooldown: 0.4, Speed: 900, Damage: 14, Spread: 0, Pellets: 1, Color: core.RGBYellow},
	{Name: "Rifle", Cooldown: 0.15, Speed: 1500, Damage: 30, Spread: 0.05, Pellets: 1, Color: core.RGBCyan, Recoil: 5},
	{Name: "Shotgun", Cooldown: 0.8, Speed: 1200, Damage: 4, Spread: 0.5, Pellets: 25, Color: core.RGBOrange, Recoil: 15},
	{Name: "Sniper", Cooldown: 1.2, Speed: 1800, Damage: 100, Spread: 0, Pellets: 1, Color: core.RGBGreen, Recoil: 20, Pierce: true},
}

// WeaponCount is the number of selectable weapons
const WeaponCount = len(weapons)

// Weapon returns the catalog entry at index, false when out of range
func Weapon(index int) (WeaponSpec, bool) {
	if index < 0 || index >= len(weapons) {
		return WeaponSpec{}, false
	}
	return weapons[index], true
}

// Weapons returns a copy of the catalog in slot order
func Weapons() []WeaponSpec {
	out := make([]WeaponSpec, len(weapons))
	copy(out, weapons[:])
	return out
}
