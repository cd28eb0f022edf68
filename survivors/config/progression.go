package config

import "image/color"

// Level thresholds: reaching level n+1 from n costs
// XPBase * XPGrowth^(n-1), rounded. VictoryLevel ends the run.
const (
	XPBase       = 20
	XPGrowth     = 1.35
	VictoryLevel = 20
)

// XPForLevel returns the XP needed to go from level to level+1.
func XPForLevel(level int) int {
	need := float64(XPBase)
	for i := 1; i < level; i++ {
		need *= XPGrowth
	}
	return int(need + 0.5)
}

// ClassID indexes ClassTable. The class is chosen once per run.
type ClassID int

const (
	ClassRunner ClassID = iota
	ClassTank
	ClassHunter
	ClassMystic
	ClassCount
)

// ClassConfig is one selectable character class. Bonuses apply at run
// start on top of PlayerConfig; Weapon gets ClassWeaponBonus damage
// whenever it sits in the loadout.
type ClassConfig struct {
	Name      string
	Desc      string
	Weapon    WeaponID
	HealthAdd int
	SpeedMult float64
	DamageAdd float64 // fraction, 0.15 = +15%
	ArmorAdd  float64 // percent
	CDMult    float64 // cooldown multiplier, under 1 is faster
	MagnetAdd float64
	XPMult    float64
	Color     color.RGBA
}

// ClassWeaponBonus multiplies damage of the class's favored weapon.
const ClassWeaponBonus = 1.25

var ClassTable = [ClassCount]ClassConfig{
	ClassRunner: {
		Name: "Runner", Desc: "Fast and greedy. Favors the Cleaver.",
		Weapon: WeaponMelee, SpeedMult: 1.20, MagnetAdd: 25, CDMult: 1, XPMult: 1,
		Color: color.RGBA{90, 220, 160, 255},
	},
	ClassTank: {
		Name: "Tank", Desc: "Thick plate. Favors Orbiters.",
		Weapon: WeaponRadius, HealthAdd: 40, ArmorAdd: 10, SpeedMult: 1, CDMult: 1, XPMult: 1,
		Color: color.RGBA{200, 170, 90, 255},
	},
	ClassHunter: {
		Name: "Hunter", Desc: "Hits harder from range. Favors the Repeater.",
		Weapon: WeaponDistance, DamageAdd: 0.15, SpeedMult: 1, CDMult: 1, XPMult: 1,
		Color: color.RGBA{240, 120, 90, 255},
	},
	ClassMystic: {
		Name: "Mystic", Desc: "Quick hands and quicker spells. Favors Skyfall.",
		Weapon: WeaponMystic, CDMult: 0.90, SpeedMult: 1, XPMult: 1,
		Color: color.RGBA{190, 120, 255, 255},
	},
}

// UpgradeKind discriminates the generic (non-weapon) upgrade pool.
type UpgradeKind int

const (
	// offense
	UpDamage UpgradeKind = iota
	UpAttackSpeed
	UpArea
	UpProjectile
	UpCrit
	UpWeaponTier
	UpWeaponUnlock
	// defense / utility
	UpMaxHealth
	UpArmor
	UpRegen
	UpDodge
	UpLifesteal
	UpMagnet
	UpThorns
	UpXPGain
	UpgradeKindCount
)

// UpgradeConfig is a template for one purchasable upgrade. Weapon-slot
// templates (UpWeaponTier, UpWeaponUnlock) are expanded per weapon when
// the level-up choices are rolled.
type UpgradeConfig struct {
	Kind    UpgradeKind
	Name    string
	Desc    string
	Offense bool
	Value   float64 // meaning depends on Kind
	Repeats int     // max purchases per run, 0 means unlimited
}

var UpgradeTable = [UpgradeKindCount]UpgradeConfig{
	UpDamage:       {Kind: UpDamage, Name: "Sharpen", Desc: "+20% damage", Offense: true, Value: 0.20},
	UpAttackSpeed:  {Kind: UpAttackSpeed, Name: "Adrenaline", Desc: "+10% attack speed", Offense: true, Value: 0.10},
	UpArea:         {Kind: UpArea, Name: "Reach", Desc: "+10% effect area", Offense: true, Value: 0.10},
	UpProjectile:   {Kind: UpProjectile, Name: "Multishot", Desc: "+1 projectile", Offense: true, Value: 1, Repeats: 3},
	UpCrit:         {Kind: UpCrit, Name: "Deadeye", Desc: "+5% crit chance", Offense: true, Value: 5},
	UpWeaponTier:   {Kind: UpWeaponTier, Name: "Hone", Desc: "Raise a weapon one tier", Offense: true, Value: 1},
	UpWeaponUnlock: {Kind: UpWeaponUnlock, Name: "Arsenal", Desc: "Unlock a new weapon", Offense: true, Value: 1},
	UpMaxHealth:    {Kind: UpMaxHealth, Name: "Vitality", Desc: "+20 max health", Value: 20},
	UpArmor:        {Kind: UpArmor, Name: "Plating", Desc: "+5% armor", Value: 5},
	UpRegen:        {Kind: UpRegen, Name: "Mending", Desc: "+0.5 HP/s regen", Value: 0.5},
	UpDodge:        {Kind: UpDodge, Name: "Sidestep", Desc: "+5% dodge", Value: 5},
	UpLifesteal:    {Kind: UpLifesteal, Name: "Leech", Desc: "+8 lifesteal", Value: 8},
	UpMagnet:       {Kind: UpMagnet, Name: "Lodestone", Desc: "+25 pickup range", Value: 25},
	UpThorns:       {Kind: UpThorns, Name: "Spite", Desc: "Reflect 6 damage on hit", Value: 6},
	UpXPGain:       {Kind: UpXPGain, Name: "Insight", Desc: "+10% XP", Value: 0.10},
}

// Stat caps. Sources past these are wasted.
const (
	ArmorCap      = 75.0 // percent
	DodgeCap      = 60.0 // percent
	CritCap       = 100.0
	MaxProjectile = 3 // extra projectiles from upgrades
)

// Kill milestone thresholds and their reward cycle. Rewards index
// MilestoneRewards in order.
var KillMilestones = [...]int{50, 100, 250, 500, 750, 1000, 1500, 2000}

// MilestoneReward enumerates what a kill milestone grants.
type MilestoneReward int

const (
	RewardHeal MilestoneReward = iota
	RewardPoint
	RewardDamage
	RewardSpeed
	RewardMagnetAll
	RewardNuke
)

var MilestoneRewards = [len(KillMilestones)]MilestoneReward{
	RewardHeal,      // 50
	RewardPoint,     // 100
	RewardDamage,    // 250
	RewardSpeed,     // 500
	RewardMagnetAll, // 750
	RewardNuke,      // 1000
	RewardHeal,      // 1500
	RewardPoint,     // 2000
}

// Milestone reward magnitudes.
const (
	MilestoneHealAmount = 30
	MilestoneDamageAdd  = 0.05
	MilestoneSpeedAdd   = 0.03
	MilestoneNukeFrac   = 0.5 // fraction of max HP dealt to every enemy
)

// Level-up carousel shape: OfferSlots rolled offers plus the closing
// "Done" entry at the end.
const (
	OfferSlots      = 5
	CarouselEntries = OfferSlots + 1
)
