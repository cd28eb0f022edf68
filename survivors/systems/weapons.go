package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// fireFunc attempts one trigger of a weapon. Returning false means
// nothing happened (no target in range) and the cooldown is not spent.
// Weapons that run continuously live outside this dispatch.
type fireFunc func(e *ecs.ECS, slot *components.WeaponState) bool

var weaponFire = [cfg.WeaponCount]fireFunc{
	cfg.WeaponMelee:     fireMelee,
	cfg.WeaponDistance:  fireDistance,
	cfg.WeaponMagic:     fireMagic,
	cfg.WeaponRadius:    nil, // continuous, see updateOrbit
	cfg.WeaponMystic:    fireMystic,
	cfg.WeaponSeeker:    fireSeeker,
	cfg.WeaponBoomerang: fireBoomerang,
	cfg.WeaponVenom:     fireVenom,
	cfg.WeaponChain:     fireChain,
}

// UpdateWeapons burns cooldowns and triggers every unlocked weapon
// that is ready. The orbit weapon spins every frame instead of
// triggering.
func UpdateWeapons(e *ecs.ECS) {
	session := components.MustSession(e.World)
	loadout := components.MustLoadout(e.World)
	dt := session.Dt

	for w := cfg.WeaponID(0); w < cfg.WeaponCount; w++ {
		slot := &loadout.Slots[w]
		if !slot.Unlocked {
			continue
		}
		if w == cfg.WeaponRadius {
			updateOrbit(e, slot, dt)
			continue
		}
		slot.Cooldown -= dt
		if slot.Cooldown > 0 {
			continue
		}
		if weaponFire[w](e, slot) {
			slot.Cooldown = weaponCooldown(e, w)
		}
	}
}

// weaponCooldown folds tier, branch cadence, the synergy speed bonus
// and the attack-speed stat into the weapon's base cooldown.
func weaponCooldown(e *ecs.ECS, w cfg.WeaponID) float64 {
	loadout := components.MustLoadout(e.World)
	_, player := components.MustPlayer(e.World)
	slot := &loadout.Slots[w]

	base := cfg.WeaponTable[w].Cooldown
	base /= 1 + cfg.Combat.TierCooldown*float64(slot.Tier-1)
	base *= branchCooldownMult(loadout, w)
	_, cd, _, _ := synergyStats(loadout, w)
	base *= cd
	return player.AttackCooldown(base)
}

// branchCooldownMult is the picked branch's cadence effect, for the
// branches that buy speed rather than size or count.
func branchCooldownMult(loadout *components.LoadoutData, w cfg.WeaponID) float64 {
	m := 1.0
	switch w {
	case cfg.WeaponMelee:
		// the whirlwind is near-continuous
		if t := loadout.BranchTier(w, cfg.BranchMeleeSpin); t > 0 {
			m = 0.45 - 0.04*float64(t)
		}
	case cfg.WeaponDistance:
		if t := loadout.BranchTier(w, cfg.BranchDistRapid); t > 0 {
			m = 1 - 0.08*float64(t)
		}
	case cfg.WeaponMagic:
		if t := loadout.BranchTier(w, cfg.BranchMagicPulse); t > 0 {
			m = 1 - 0.10*float64(t)
		}
	case cfg.WeaponMystic:
		if t := loadout.BranchTier(w, cfg.BranchMysticStorm); t > 0 {
			m = 1 - 0.06*float64(t)
		}
	}
	if m < 0.3 {
		m = 0.3
	}
	return m
}

// synergyStats folds every active pair bonus that names w. Multipliers
// stack multiplicatively across pairs.
func synergyStats(loadout *components.LoadoutData, w cfg.WeaponID) (damage, cooldown, area float64, extraShots int) {
	damage, cooldown, area = 1, 1, 1
	for _, s := range cfg.Synergies {
		if (s.A != w && s.B != w) || !loadout.SynergyActive(s) {
			continue
		}
		damage *= s.DamageMult
		cooldown *= s.CooldownMult
		area *= s.AreaMult
		extraShots += s.ExtraShots
	}
	return
}

// weaponArea is the shared size multiplier: the player's area stat
// times the synergy area bonus.
func weaponArea(e *ecs.ECS, w cfg.WeaponID) float64 {
	loadout := components.MustLoadout(e.World)
	_, player := components.MustPlayer(e.World)
	_, _, area, _ := synergyStats(loadout, w)
	return player.AreaMult * area
}

// extraShots is the shared projectile bonus: upgrades plus synergies.
func extraShots(e *ecs.ECS, w cfg.WeaponID) int {
	loadout := components.MustLoadout(e.World)
	_, player := components.MustPlayer(e.World)
	_, _, _, n := synergyStats(loadout, w)
	return player.ExtraProjectile + n
}

// rollDamage computes one hit of a weapon: tier growth, the given
// branch multiplier, the synergy and class bonuses, the shared player
// multiplier and the crit roll.
func rollDamage(e *ecs.ECS, w cfg.WeaponID, branchMult float64) (int, bool) {
	session := components.MustSession(e.World)
	loadout := components.MustLoadout(e.World)
	_, player := components.MustPlayer(e.World)
	slot := &loadout.Slots[w]

	dmg := float64(cfg.WeaponTable[w].Damage)
	dmg *= 1 + cfg.Combat.TierDamageStep*float64(slot.Tier-1)
	dmg *= branchMult
	sd, _, _, _ := synergyStats(loadout, w)
	dmg *= sd
	if cfg.ClassTable[player.Class].Weapon == w {
		dmg *= cfg.ClassWeaponBonus
	}
	dmg *= player.DamageMultiplier(session.ComboTier)

	crit := session.Rand.Chance(player.CritChance / 100)
	if crit {
		dmg *= cfg.Combat.CritMult
	}
	if dmg < 1 {
		dmg = 1
	}
	return int(dmg), crit
}

// knockVelocity converts a hit direction into the impulse stored on
// the enemy.
func knockVelocity(dirX, dirY float64) (float64, float64) {
	const knockTime = 0.15
	speed := cfg.Player.Knockback / knockTime
	return dirX * speed, dirY * speed
}
