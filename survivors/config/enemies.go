package config

import "image/color"

// EnemyType indexes EnemyTable and the per-type AI dispatch.
type EnemyType int

const (
	EnemyWalker EnemyType = iota
	EnemyFast
	EnemySwarm
	EnemyTank
	EnemyElite
	EnemyMirror
	EnemyBrute
	EnemyShielder
	EnemyHornet
	EnemyBomber
	EnemySpinner
	EnemyPhaser
	EnemyBoss
	EnemyTypeCount
)

func (t EnemyType) String() string {
	if t < 0 || t >= EnemyTypeCount {
		return "unknown"
	}
	return enemyNames[t]
}

var enemyNames = [EnemyTypeCount]string{
	"walker", "fast", "swarm", "tank", "elite", "mirror", "brute",
	"shielder", "hornet", "bomber", "spinner", "phaser", "boss",
}

// EnemyConfig is one row of the balance table. HP scales with the wave
// difficulty multiplier at spawn time; the rest is fixed.
type EnemyConfig struct {
	Size       float64
	Speed      float64
	Health     int
	Damage     int // contact damage per hit
	XP         int
	UnlockWave int
	Dangerous  bool // spawns telegraphed, always on the minimap
	Color      color.RGBA
}

var EnemyTable = [EnemyTypeCount]EnemyConfig{
	EnemyWalker:   {Size: 14, Speed: 55, Health: 10, Damage: 8, XP: 5, UnlockWave: 0, Color: color.RGBA{200, 80, 80, 255}},
	EnemyFast:     {Size: 11, Speed: 95, Health: 7, Damage: 6, XP: 7, UnlockWave: 1, Color: color.RGBA{240, 150, 60, 255}},
	EnemySwarm:    {Size: 8, Speed: 75, Health: 4, Damage: 4, XP: 3, UnlockWave: 2, Color: color.RGBA{180, 120, 220, 255}},
	EnemyTank:     {Size: 22, Speed: 38, Health: 35, Damage: 14, XP: 15, UnlockWave: 3, Color: color.RGBA{120, 120, 140, 255}},
	EnemyElite:    {Size: 18, Speed: 60, Health: 50, Damage: 16, XP: 25, UnlockWave: 4, Color: color.RGBA{220, 70, 160, 255}},
	EnemyMirror:   {Size: 13, Speed: 65, Health: 18, Damage: 8, XP: 18, UnlockWave: 5, Color: color.RGBA{110, 220, 210, 255}},
	EnemyBrute:    {Size: 26, Speed: 45, Health: 80, Damage: 22, XP: 35, UnlockWave: 6, Color: color.RGBA{170, 60, 50, 255}},
	EnemyShielder: {Size: 17, Speed: 50, Health: 40, Damage: 12, XP: 28, UnlockWave: 7, Dangerous: true, Color: color.RGBA{90, 140, 230, 255}},
	EnemyHornet:   {Size: 15, Speed: 70, Health: 30, Damage: 10, XP: 30, UnlockWave: 8, Dangerous: true, Color: color.RGBA{240, 210, 70, 255}},
	EnemyBomber:   {Size: 16, Speed: 55, Health: 36, Damage: 10, XP: 30, UnlockWave: 9, Dangerous: true, Color: color.RGBA{230, 120, 40, 255}},
	EnemySpinner:  {Size: 18, Speed: 40, Health: 45, Damage: 12, XP: 35, UnlockWave: 10, Dangerous: true, Color: color.RGBA{160, 230, 90, 255}},
	EnemyPhaser:   {Size: 14, Speed: 80, Health: 32, Damage: 12, XP: 38, UnlockWave: 11, Dangerous: true, Color: color.RGBA{190, 100, 255, 255}},
	EnemyBoss:     {Size: 34, Speed: 35, Health: 400, Damage: 30, XP: 150, UnlockWave: 12, Dangerous: true, Color: color.RGBA{255, 40, 70, 255}},
}

// Per-type behavior tuning that does not fit the shared table. The
// seven plain chasers need none.
var (
	SwarmGroupSize = 5    // swarmlets spawned per swarm roll
	SwarmSpread    = 36.0 // scatter radius around the group point

	MirrorDecoyEvery  = 4.0
	MirrorDecoyCount  = 2
	MirrorRevealTime  = 0.8 // the real one tints while decoys appear
	MirrorDecoyLife   = 6.0
	MirrorDecoyHealth = 1

	ShieldFrontArc      = 2.0944 // 120 degrees; hits inside are blocked
	ShieldTurnRate      = 1.6    // radians/second toward the player
	ShielderChargeCD    = 3.0
	ShielderChargeRange = 200.0
	ShielderChargeSpeed = 150.0
	ShielderChargeTime  = 0.8

	HornetRange      = 250.0 // stops and sets up inside this
	HornetChargeTime = 1.5   // aim locks at charge start
	HornetFireTime   = 0.8
	HornetCooldown   = 3.0
	HornetBeamLen    = 420.0
	HornetBeamWidth  = 12.0

	BomberRange     = 300.0
	BomberCooldown  = 4.0
	BomberMineCount = 3
	BomberStunTime  = 1.0 // vulnerable while rearming
	BomberMineDrop  = 34.0
	MineFuseTime    = 2.0
	MineRadius      = 60.0
	MineDamage      = 20

	SpinnerRange        = 260.0
	SpinnerSpinRate     = 2.5 // radians/second, always turning
	SpinnerBarrageSize  = 16
	SpinnerShotInterval = 0.09
	SpinnerVulnTime     = 1.5 // only damageable in this window
	SpinnerShotSpeed    = 130.0
	SpinnerShotDamage   = 8

	PhaserVisibleTime = 1.5
	PhaserPhasedTime  = 2.0 // untouchable and closing in
	PhaserJumpRadius  = 150.0
	PhaserBurstSize   = 6
	PhaserShotSpeed   = 160.0
	PhaserShotDamage  = 8
)

// ChampionAffix marks the elevated variants rolled on later waves.
type ChampionAffix int

const (
	AffixNone ChampionAffix = iota
	AffixSwift
	AffixVampiric
	AffixArmored
	AffixSplitter
	affixCount
)

func (a ChampionAffix) String() string {
	switch a {
	case AffixSwift:
		return "swift"
	case AffixVampiric:
		return "vampiric"
	case AffixArmored:
		return "armored"
	case AffixSplitter:
		return "splitter"
	}
	return "none"
}

// Champion tuning. A champion keeps its base type's behavior and gains
// one affix on top.
var (
	ChampionMinWave    = 3
	ChampionChance     = 0.05
	ChampionHealthMult = 1.5
	ChampionXPMult     = 2.5
	ChampionSizeMult   = 1.25

	AffixSwiftSpeedMult = 1.5
	AffixVampiricRegen  = 1.0 // HP per second
	AffixArmoredReduce  = 0.5 // fraction of incoming damage removed
	AffixSplitCount     = 2
	AffixSplitHealth    = 0.4 // fraction of the champion's max HP
)

// RollableAffixes is what the spawner picks from.
var RollableAffixes = [...]ChampionAffix{AffixSwift, AffixVampiric, AffixArmored, AffixSplitter}
