package config

import "image/color"

// WeaponID identifies one of the three weapon slots.
type WeaponID int

const (
	WeaponPistol WeaponID = iota
	WeaponRifle
	WeaponShotgun
	WeaponCount // Must be last - used for array sizing
)

// WeaponConfig contains the immutable stats for one weapon kind
type WeaponConfig struct {
	Name         string
	Damage       float64
	FireRate     float64 // minimum seconds between shots
	MaxAmmo      int
	ReloadTime   float64 // seconds
	Spread       float64 // max random offset applied per pellet
	Pellets      int
	StartReserve int
}

// EnemyKind identifies an enemy variant.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyFast
	EnemyTank
	EnemyKindCount // Must be last - used for random selection
)

// EnemyTypeConfig contains configuration for a specific enemy kind
type EnemyTypeConfig struct {
	Name   string
	Health float64
	Speed  float64 // units per second
	Size   float64 // collision/render radius
	Score  int
	Color  color.RGBA
}

// EnemyConfig contains enemy AI configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig

	WanderInterval float64 // seconds between picking a new wander target
	WanderRange    float64 // max horizontal offset from the player per axis
	ArriveDistance float64 // stop moving when this close to the target
}

// PlayerConfig contains player movement and camera configuration
type PlayerConfig struct {
	MoveSpeed        float64 // units per second
	MouseSensitivity float64 // degrees per pixel of mouse movement
	Health           float64
	PitchMin         float64
	PitchMax         float64

	// Spawn pose
	SpawnX, SpawnY, SpawnZ float64

	// Ground-plane collision body (resolv, X/Z plane)
	BodySize float64
}

// CombatConfig contains firing feedback and kill-feed configuration
type CombatConfig struct {
	ShakeAmplitude   float64 // screen shake strength per shot
	ShakeDuration    float64 // seconds
	KillFeedDuration float64 // seconds each entry stays visible
	KillFeedMax      int     // entries shown at once
}

// ParticleConfig contains death burst configuration
type ParticleConfig struct {
	BurstCount    int
	Gravity       float64 // downward acceleration, units/s^2
	HorizontalMax float64 // velocity range [-max, max] on X/Z
	VerticalMax   float64 // velocity range [0, max] on Y
	LifeMin       float64
	LifeMax       float64
	Size          float64
	Colors        []color.RGBA
}

// WaveConfig contains survival mode progression
type WaveConfig struct {
	InitialEnemies int
	Increment      int // extra enemies per wave
	RingMin        float64
	RingMax        float64
	SpawnHeight    float64
}

// Obstacle is one arena block: center position plus extents.
type Obstacle struct {
	X, Y, Z float64
	W, H, D float64
}

// ArenaConfig describes the fixed arena geometry
type ArenaConfig struct {
	GroundHalf float64 // ground extends [-GroundHalf, GroundHalf] on X/Z
	GridStep   float64
	Obstacles  []Obstacle

	// Target practice layout (x, y, z per target)
	TargetPositions [][3]float64
}

// CameraConfig contains projection parameters for the presentation layer
type CameraConfig struct {
	FOV  float64 // vertical field of view in degrees
	Near float64
	Far  float64
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin        float64
	CrosshairSize float64
	AmmoWarning   int // ammo at or below this draws yellow
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	HintColor       color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Weapons map[WeaponID]WeaponConfig
var Enemy EnemyConfig
var Player PlayerConfig
var Combat CombatConfig
var Particles ParticleConfig
var Waves WaveConfig
var Arena ArenaConfig
var Camera CameraConfig
var HUD HUDConfig
var Menu MenuConfig
var Pause PauseConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 128, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Purple = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray   = color.RGBA{R: 102, G: 102, B: 102, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Deadeye",
	}

	Weapons = map[WeaponID]WeaponConfig{
		WeaponPistol: {
			Name:         "Pistol",
			Damage:       35,
			FireRate:     0.3,
			MaxAmmo:      12,
			ReloadTime:   1.5,
			Spread:       0.01,
			Pellets:      1,
			StartReserve: 36,
		},
		WeaponRifle: {
			Name:         "Rifle",
			Damage:       25,
			FireRate:     0.15,
			MaxAmmo:      30,
			ReloadTime:   2.0,
			Spread:       0.005,
			Pellets:      1,
			StartReserve: 90,
		},
		WeaponShotgun: {
			Name:         "Shotgun",
			Damage:       20,
			FireRate:     0.8,
			MaxAmmo:      8,
			ReloadTime:   2.5,
			Spread:       0.05,
			Pellets:      6,
			StartReserve: 24,
		},
	}

	Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyTypeConfig{
			EnemyNormal: {
				Name:   "Normal",
				Health: 100,
				Speed:  1.0,
				Size:   1.0,
				Score:  10,
				Color:  Red,
			},
			EnemyFast: {
				Name:   "Fast",
				Health: 50,
				Speed:  2.0,
				Size:   0.8,
				Score:  5,
				Color:  Orange,
			},
			EnemyTank: {
				Name:   "Tank",
				Health: 150,
				Speed:  0.5,
				Size:   1.5,
				Score:  15,
				Color:  Purple,
			},
		},
		WanderInterval: 2.0,
		WanderRange:    5.0,
		ArriveDistance: 0.5,
	}

	Player = PlayerConfig{
		MoveSpeed:        5.0,
		MouseSensitivity: 0.2,
		Health:           100,
		PitchMin:         -89,
		PitchMax:         89,
		SpawnX:           0,
		SpawnY:           2,
		SpawnZ:           0,
		BodySize:         0.8,
	}

	Combat = CombatConfig{
		ShakeAmplitude:   0.15,
		ShakeDuration:    0.2,
		KillFeedDuration: 3.0,
		KillFeedMax:      5,
	}

	Particles = ParticleConfig{
		BurstCount:    15,
		Gravity:       10.0,
		HorizontalMax: 3.0,
		VerticalMax:   3.0,
		LifeMin:       0.3,
		LifeMax:       0.7,
		Size:          0.15,
		Colors:        []color.RGBA{Orange, Red, Yellow},
	}

	Waves = WaveConfig{
		InitialEnemies: 5,
		Increment:      2,
		RingMin:        10,
		RingMax:        20,
		SpawnHeight:    1,
	}

	Arena = ArenaConfig{
		GroundHalf: 100,
		GridStep:   5,
		Obstacles: []Obstacle{
			{X: 5, Y: 1.5, Z: 10, W: 2, H: 3, D: 2},
			{X: -5, Y: 1.5, Z: 8, W: 2, H: 3, D: 2},
			{X: 0, Y: 1.5, Z: 15, W: 3, H: 3, D: 3},
			{X: -10, Y: 1.5, Z: 12, W: 2, H: 4, D: 2},
			{X: 10, Y: 1.5, Z: 12, W: 2, H: 4, D: 2},
			{X: -3, Y: 1.5, Z: 6, W: 2, H: 3, D: 2},
			{X: 3, Y: 1.5, Z: 6, W: 2, H: 3, D: 2},
		},
		TargetPositions: [][3]float64{
			{0, 1, 10}, {-5, 1, 8}, {5, 1, 8},
			{-3, 1, 12}, {3, 1, 12}, {0, 1, 15},
			{-7, 1, 10}, {7, 1, 10},
		},
	}

	Camera = CameraConfig{
		FOV:  70,
		Near: 0.1,
		Far:  500,
	}

	HUD = HUDConfig{
		Margin:        20,
		CrosshairSize: 10,
		AmmoWarning:   5,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 51, G: 51, B: 77, A: 255},
		TitleColor:      color.RGBA{R: 255, G: 140, B: 0, A: 255},
		HintColor:       color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}

	Pause = PauseConfig{
		OverlayColor:      color.RGBA{R: 0, G: 0, B: 0, A: 180},
		TextColorNormal:   White,
		TextColorSelected: Yellow,
		MenuItemHeight:    40,
		MenuItemGap:       10,
	}
}
