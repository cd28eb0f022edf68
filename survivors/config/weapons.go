package config

import "image/color"

// WeaponID indexes WeaponTable, the loadout slots and the fire dispatch.
type WeaponID int

const (
	WeaponMelee WeaponID = iota
	WeaponDistance
	WeaponMagic
	WeaponRadius
	WeaponMystic
	WeaponSeeker
	WeaponBoomerang
	WeaponVenom
	WeaponChain
	WeaponCount
)

func (w WeaponID) String() string {
	if w < 0 || w >= WeaponCount {
		return "unknown"
	}
	return WeaponTable[w].Name
}

// WeaponConfig is one row of the weapon balance table. Damage and
// Cooldown are tier-1 values; tiers and branches scale them in the
// weapon systems.
type WeaponConfig struct {
	Name     string
	Desc     string
	Damage   int
	Cooldown float64 // seconds between triggers, 0 means continuous
	Range    float64 // reach, max radius or travel distance
	Color    color.RGBA
}

var WeaponTable = [WeaponCount]WeaponConfig{
	WeaponMelee:     {Name: "Cleaver", Desc: "Arc swing in the facing direction", Damage: 12, Cooldown: 0.9, Range: 70, Color: color.RGBA{230, 230, 240, 255}},
	WeaponDistance:  {Name: "Repeater", Desc: "Shoots the nearest enemy", Damage: 8, Cooldown: 0.75, Range: 320, Color: color.RGBA{255, 200, 90, 255}},
	WeaponMagic:     {Name: "Nova Ring", Desc: "Expanding shockwave ring", Damage: 10, Cooldown: 1.6, Range: 150, Color: color.RGBA{120, 170, 255, 255}},
	WeaponRadius:    {Name: "Orbiters", Desc: "Orbs circling the player", Damage: 6, Cooldown: 0, Range: 80, Color: color.RGBA{170, 230, 255, 255}},
	WeaponMystic:    {Name: "Skyfall", Desc: "Strikes random enemies from above", Damage: 14, Cooldown: 1.4, Range: 260, Color: color.RGBA{210, 120, 255, 255}},
	WeaponSeeker:    {Name: "Stinger", Desc: "Homing missile with a blast", Damage: 16, Cooldown: 1.8, Range: 360, Color: color.RGBA{255, 120, 120, 255}},
	WeaponBoomerang: {Name: "Glaive", Desc: "Pierces out and returns", Damage: 13, Cooldown: 1.5, Range: 240, Color: color.RGBA{140, 255, 170, 255}},
	WeaponVenom:     {Name: "Blight", Desc: "Lobbed cloud that ticks and slows", Damage: 4, Cooldown: 2.2, Range: 200, Color: color.RGBA{150, 220, 60, 255}},
	WeaponChain:     {Name: "Arc Coil", Desc: "Lightning that jumps between enemies", Damage: 15, Cooldown: 1.7, Range: 280, Color: color.RGBA{130, 210, 255, 255}},
}

// Pool bounds that components use as array lengths, so they must be
// compile-time constants.
const (
	RadiusMaxOrbs    = 12
	MysticMaxStrikes = 24
)

// Secondary weapon tuning that the table rows do not carry.
var (
	MeleeArc = 1.6 // radians covered by the swing

	DistanceShotSpeed = 380.0

	MagicRingSpeed = 260.0
	MagicRingShell = 16.0 // ring thickness for the hit test

	RadiusOrbCount  = 3
	RadiusOrbSize   = 9.0
	RadiusOrbSpeed  = 2.6 // radians/second
	RadiusOrbHitCD  = 0.35
	RadiusOrbDecoys = true // orbs also clear enemy bullets on contact

	MysticStrikeDelay  = 0.45 // telegraph before the hit lands
	MysticStrikeRadius = 34.0
	MysticForkRange    = 130.0 // max hop distance for Forked Sky
	MysticForkDecay    = 0.85

	SeekerSpeed     = 300.0
	SeekerTurnRate  = 4.0
	SeekerLife      = 3.0
	SeekerBlastR    = 48.0
	SeekerBlastFrac = 0.5 // splash damage as a fraction of direct

	BoomerangSpeed  = 330.0
	BoomerangReturn = 520.0 // catch-up acceleration on the way back
	BoomerangSize   = 10.0

	VenomTick     = 0.5
	VenomLife     = 3.2
	VenomRadius   = 58.0
	VenomSlowMult = 0.55
	VenomSlowTime = 1.2

	ChainJumps     = 3
	ChainJumpRange = 130.0
	ChainDecay     = 0.85 // damage multiplier per hop
	ChainHopDelay  = 0.05 // seconds between hops
	ChainFlashTime = 0.25 // how long a segment stays on screen
)

// BranchKind indexes a weapon's three branches. A weapon picks one
// branch once it reaches tier 2; BranchNone means none chosen yet. The
// per-weapon constants below name the slots so the weapon systems read
// naturally.
type BranchKind int

const (
	BranchNone BranchKind = 0

	BranchMeleeWide  BranchKind = 1
	BranchMeleePower BranchKind = 2
	BranchMeleeSpin  BranchKind = 3

	BranchDistRapid  BranchKind = 1
	BranchDistPierce BranchKind = 2
	BranchDistSpread BranchKind = 3

	BranchMagicNova   BranchKind = 1
	BranchMagicPulse  BranchKind = 2
	BranchMagicFreeze BranchKind = 3

	BranchRadiusGuardian BranchKind = 1
	BranchRadiusSwarm    BranchKind = 2
	BranchRadiusHeavy    BranchKind = 3

	BranchMysticChain BranchKind = 1
	BranchMysticStorm BranchKind = 2
	BranchMysticSmite BranchKind = 3

	BranchSeekerPayload BranchKind = 1
	BranchSeekerTwin    BranchKind = 2
	BranchSeekerHunter  BranchKind = 3

	BranchBoomHeavy BranchKind = 1
	BranchBoomTwin  BranchKind = 2
	BranchBoomFar   BranchKind = 3

	BranchVenomVirulent BranchKind = 1
	BranchVenomMiasma   BranchKind = 2
	BranchVenomNumbing  BranchKind = 3

	BranchChainArcs    BranchKind = 1
	BranchChainVoltage BranchKind = 2
	BranchChainGround  BranchKind = 3
)

// Tier ceilings. A weapon caps at WeaponTierMax; its picked branch
// grows separately up to BranchTierMax.
const (
	WeaponTierMax = 5
	BranchTierMax = 5
)

// BranchConfig describes one branch of one weapon for the upgrade UI.
// The mechanical effect of each tier lives in the weapon systems.
type BranchConfig struct {
	Name string
	Desc string
}

// WeaponBranches[w][b-1] is branch b of weapon w.
var WeaponBranches = [WeaponCount][3]BranchConfig{
	WeaponMelee: {
		{Name: "Long Arm", Desc: "Wider swing arc, up to a full circle"},
		{Name: "Heavy Edge", Desc: "Up to 3.5x damage and brutal knockback"},
		{Name: "Whirlwind", Desc: "Constant spinning damage all around"},
	},
	WeaponDistance: {
		{Name: "Rapid Fire", Desc: "More, faster bullets"},
		{Name: "Piercing Rounds", Desc: "Shots punch through, hitting harder each time"},
		{Name: "Scattergun", Desc: "Fan of shots, widening to a full nova"},
	},
	WeaponMagic: {
		{Name: "Grand Nova", Desc: "Bigger rings"},
		{Name: "Pulse", Desc: "Smaller rings, much faster"},
		{Name: "Frost Ring", Desc: "Rings chill everything they touch"},
	},
	WeaponRadius: {
		{Name: "Guardian", Desc: "Fewer, closer orbs that swat bullets"},
		{Name: "Swarm", Desc: "Many small fast orbs"},
		{Name: "Juggernaut", Desc: "Few huge slow orbs, heavy damage"},
	},
	WeaponMystic: {
		{Name: "Forked Sky", Desc: "Strikes arc to nearby enemies"},
		{Name: "Stormcall", Desc: "Many strikes with splash damage"},
		{Name: "Smite", Desc: "One massive strike on the nearest enemy"},
	},
	WeaponSeeker: {
		{Name: "Warhead", Desc: "Bigger blast, more splash"},
		{Name: "Salvo", Desc: "Extra missiles per volley"},
		{Name: "Afterburner", Desc: "Faster missiles that turn harder"},
	},
	WeaponBoomerang: {
		{Name: "Razor Edge", Desc: "Heavier glaive, more damage"},
		{Name: "Twin Glaive", Desc: "A second glaive on the off angle"},
		{Name: "Far Throw", Desc: "Longer, faster flight"},
	},
	WeaponVenom: {
		{Name: "Virulence", Desc: "Stronger ticks"},
		{Name: "Miasma", Desc: "Wider, longer-lived clouds"},
		{Name: "Numbing Rot", Desc: "Much stronger slow"},
	},
	WeaponChain: {
		{Name: "Forked Arcs", Desc: "Extra jumps per cast"},
		{Name: "High Voltage", Desc: "More damage on every link"},
		{Name: "Grounding", Desc: "Longer jumps, weaker falloff"},
	},
}

// BranchTierCost returns the point price of buying the next tier when
// the branch currently sits at tier cur.
func BranchTierCost(cur int) int {
	return 1 + cur/2
}

// Flat point prices for the other loadout actions.
const (
	WeaponUnlockCost = 1
	WeaponTierCost   = 1
	BranchPickCost   = 1
)

// SynergyConfig is a passive bonus each of the pair receives while
// both weapons are unlocked. Multipliers are neutral at 1; bonuses
// from several synergies stack multiplicatively.
type SynergyConfig struct {
	Name         string
	A, B         WeaponID
	Desc         string
	DamageMult   float64
	CooldownMult float64
	AreaMult     float64
	ExtraShots   int
}

var Synergies = [...]SynergyConfig{
	{Name: "Stormfront", A: WeaponMagic, B: WeaponChain, Desc: "+15% damage for both", DamageMult: 1.15, CooldownMult: 1, AreaMult: 1},
	{Name: "Hunter's Mark", A: WeaponDistance, B: WeaponSeeker, Desc: "+1 projectile for both", DamageMult: 1, CooldownMult: 1, AreaMult: 1, ExtraShots: 1},
	{Name: "Scrapper", A: WeaponMelee, B: WeaponRadius, Desc: "+15% area for both", DamageMult: 1, CooldownMult: 1, AreaMult: 1.15},
	{Name: "Toxic Edge", A: WeaponVenom, B: WeaponBoomerang, Desc: "+10% damage and area", DamageMult: 1.1, CooldownMult: 1, AreaMult: 1.1},
	{Name: "Judgment", A: WeaponMystic, B: WeaponMagic, Desc: "15% faster casts for both", DamageMult: 1, CooldownMult: 0.85, AreaMult: 1},
}
