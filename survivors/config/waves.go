package config

import "image/color"

// Wave pacing. The spawner ticks on an interval that shrinks each wave
// while the difficulty multiplier grows; both change only at wave
// boundaries.
const (
	WaveLength        = 30.0 // seconds per wave
	SpawnInterval     = 2.0  // wave 0 seconds between spawn ticks
	SpawnIntervalMult = 0.9  // per-wave shrink
	SpawnIntervalMin  = 0.3
	DifficultyStep    = 0.15 // HP multiplier gain per wave
	SpawnRingMin      = 420.0
	SpawnRingMax      = 560.0

	// Bonus rolls: from BonusWave on, each spawn tick rolls
	// (wave-BonusWave)/BonusDiv extra enemies, capped at BonusCap.
	BonusWave = 5
	BonusDiv  = 3
	BonusCap  = 3
)

// Spawn weights as cumulative percent thresholds over a single
// [0,100) roll. Locked or full rows fall through to the next.
const (
	RollBoss  = 2
	RollBrute = 8
	RollElite = 18
	RollSwarm = 28
	RollTank  = 40
	RollFast  = 65
	// remainder: walker
)

// Special spawns get their own gates; the session's BossAlive flag
// keeps bosses to one at a time.
const (
	MaxLiveBrutes    = 3
	BossRespawnDelay = 20.0 // seconds after a boss dies before another roll can pass
)

// Dangerous arrivals are telegraphed: a marker sits on the spawn point
// for SpawnWarning seconds before the enemy appears.
const (
	SpawnWarning     = 0.8
	MaxPendingSpawns = 16
)

// ZoneKind marks the ground hazards and boons.
type ZoneKind int

const (
	ZoneLava ZoneKind = iota
	ZoneIce
	ZoneXP
	ZoneKindCount
)

// ZoneConfig describes one ground zone type.
type ZoneConfig struct {
	Name     string
	Radius   float64
	Life     float64 // seconds on the ground
	TickDmg  int     // lava only, per tick
	Tick     float64
	SlowMult float64 // ice only
	XPMult   float64 // xp only, multiplies gem value of kills inside
	Color    color.RGBA
}

var ZoneTable = [ZoneKindCount]ZoneConfig{
	ZoneLava: {Name: "lava", Radius: 70, Life: 9, TickDmg: 5, Tick: 0.6, SlowMult: 1, XPMult: 1, Color: color.RGBA{255, 90, 30, 90}},
	ZoneIce:  {Name: "ice", Radius: 80, Life: 10, SlowMult: 0.6, XPMult: 1, Color: color.RGBA{140, 200, 255, 80}},
	ZoneXP:   {Name: "xp", Radius: 75, Life: 8, SlowMult: 1, XPMult: 2, Color: color.RGBA{120, 255, 160, 70}},
}

// Zone spawn pacing.
const (
	ZoneMinWave  = 4
	ZoneInterval = 12.0
)
