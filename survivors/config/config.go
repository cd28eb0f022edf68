package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer. Draw order comes from renderer
// registration order, back to front.
const Default = ecs.LayerID(0)

// WorldConfig fixes the arena dimensions. Entities are clamped to
// [Padding, size-Padding] on both axes.
type WorldConfig struct {
	Width   float64
	Height  float64
	Padding float64
}

// PlayerConfig contains the starting stat block. Everything here can move
// during a run through classes, upgrades and milestones.
type PlayerConfig struct {
	Size         float64 // collision radius
	Speed        float64 // units/second before multipliers
	Health       int
	InvulnTime   float64 // seconds of immunity after taking a hit
	HurtFlash    float64
	Knockback    float64 // units pushed away from the damage source
	Magnet       float64 // base pickup attraction radius
	CritChance   float64 // percent
	TurnRate     float64 // radians/second of scroll steering
	ScrollTurn   float64 // radians per scroll tick
	AttackFloor  float64 // attack-speed multiplier never drops below this
	LifestealMax float64 // asymptote of the lifesteal curve, percent
	LifestealK   float64 // curve scale
}

// CombatConfig groups the cross-weapon tuning.
type CombatConfig struct {
	HitstopKill    float64 // simulation freeze on a kill
	HitstopLevelUp float64
	CritMult       float64
	ArmorMinDamage int     // armor never reduces a hit below this
	TierDamageStep float64 // damage growth per weapon tier above 1
	TierCooldown   float64 // cooldown reduction per tier above 1
	GrazeRadius    float64 // near-miss distance for enemy bullets
	GrazeXP        int
}

// PickupConfig tunes gems and potions.
type PickupConfig struct {
	GemSmall      int
	GemMedium     int
	GemLarge      int
	GemBaseSpeed  float64 // magnetized travel speed, scales up to 3x with distance
	PickupRadius  float64
	PotionChance  float64 // drop roll on enemy death
	FreshTicks    uint64  // gems are inert for this many simulation ticks
	BuffDamage    float64 // seconds
	BuffSpeed     float64
	BuffShield    float64
	BuffMagnet    float64
	SpeedBuffMult float64
	MagnetBuff    float64 // magnet range multiplier while active
}

// CameraConfig controls the follow camera.
type CameraConfig struct {
	FollowRate float64 // lerp rate per second toward the player
}

// Pool capacities. Overflowing any of these silently drops the new entry.
const (
	MaxEnemies       = 128
	MaxGems          = 256
	MaxPotions       = 16
	MaxPlayerBullets = 96
	MaxEnemyBullets  = 160
	MaxMines         = 48
	MaxSeekers       = 32
	MaxBoomerangs    = 8
	MaxClouds        = 16
	MaxZones         = 8
	MaxParticles     = 384
	MaxPopups        = 96
	MaxUIParticles   = 64
	MaxAnnouncements = 8
)

// DespawnDistance removes enemies that drift this far from the player.
const DespawnDistance = 1000.0

var World = WorldConfig{
	Width:   1600,
	Height:  1000,
	Padding: 24,
}

var Player = PlayerConfig{
	Size:         13,
	Speed:        160,
	Health:       100,
	InvulnTime:   1.0,
	HurtFlash:    0.25,
	Knockback:    30,
	Magnet:       60,
	CritChance:   5,
	TurnRate:     3.4,
	ScrollTurn:   0.45,
	AttackFloor:  0.2,
	LifestealMax: 18,
	LifestealK:   20,
}

var Combat = CombatConfig{
	HitstopKill:    0.025,
	HitstopLevelUp: 0.150,
	CritMult:       2.0,
	ArmorMinDamage: 1,
	TierDamageStep: 0.5,
	TierCooldown:   0.10,
	GrazeRadius:    18,
	GrazeXP:        2,
}

var Pickups = PickupConfig{
	GemSmall:      5,
	GemMedium:     15,
	GemLarge:      40,
	GemBaseSpeed:  240,
	PickupRadius:  16,
	PotionChance:  0.08,
	FreshTicks:    1,
	BuffDamage:    10,
	BuffSpeed:     8,
	BuffShield:    5,
	BuffMagnet:    12,
	SpeedBuffMult: 1.5,
	MagnetBuff:    2.5,
}

var Camera = CameraConfig{
	FollowRate: 6.0,
}

// Shared palette. Per-enemy and per-weapon colors live with their tables.
var (
	ColorBackground = color.RGBA{16, 16, 24, 255}
	ColorGridLine   = color.RGBA{28, 28, 40, 255}
	ColorPlayer     = color.RGBA{90, 200, 250, 255}
	ColorHPBar      = color.RGBA{70, 220, 90, 255}
	ColorHPBack     = color.RGBA{40, 40, 48, 255}
	ColorXPBar      = color.RGBA{80, 160, 255, 255}
	ColorDanger     = color.RGBA{235, 64, 52, 255}
	ColorGold       = color.RGBA{255, 208, 64, 255}
	ColorText       = color.RGBA{230, 230, 235, 255}
	ColorTextDim    = color.RGBA{140, 140, 150, 255}
	ColorOffense    = color.RGBA{255, 120, 90, 255}
	ColorDefense    = color.RGBA{110, 190, 255, 255}
)
