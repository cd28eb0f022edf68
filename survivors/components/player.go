package components

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/pautown/llizard-plugins/gamemath"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// PlayerData carries the hero's stat block and control state. Base
// values come from cfg.Player plus the chosen class; upgrades, buffs
// and milestones mutate the multipliers during the run.
type PlayerData struct {
	Class cfg.ClassID

	Health    int
	MaxHealth int
	Level     int
	XP        int
	XPNeed    int
	Points    int // unspent upgrade points

	// control
	Facing float64 // radians, also the aim for directional weapons
	Moving bool    // tap-to-toggle movement along Facing
	DragX  float64 // active drag steering vector, zero when not dragging
	DragY  float64

	// offense
	DamageMult      float64 // starts at 1
	AttackSpeedMult float64 // cooldown divisor, floored at cfg.Player.AttackFloor
	AreaMult        float64
	ExtraProjectile int
	CritChance      float64 // percent

	// defense / utility
	Armor     float64 // percent reduction
	Dodge     float64 // percent
	Regen     float64 // HP per second
	RegenAcc  float64
	Lifesteal float64 // raw points fed into the diminishing curve
	Thorns    int
	Magnet    float64
	XPMult    float64
	SpeedMult float64

	// timers
	Invuln     float64
	HurtTick   uint64 // hits on this same tick stack before immunity starts
	HurtFlash  float64
	BuffDamage float64
	BuffSpeed  float64
	BuffShield float64
	BuffMagnet float64

	// inventory
	Potions [cfg.PotionKindCount]int
	InvSlot cfg.PotionKind
}

var Player = donburi.NewComponentType[PlayerData]()

// MustPlayer returns the singleton hero.
func MustPlayer(w donburi.World) (*donburi.Entry, *PlayerData) {
	entry, ok := Player.First(w)
	if !ok {
		panic("player singleton missing")
	}
	return entry, Player.Get(entry)
}

// NewPlayerData builds the run-start stat block for a class.
func NewPlayerData(class cfg.ClassID) PlayerData {
	c := cfg.ClassTable[class]
	p := PlayerData{
		Class:           class,
		MaxHealth:       cfg.Player.Health + c.HealthAdd,
		Level:           1,
		XPNeed:          cfg.XPForLevel(1),
		DamageMult:      1 + c.DamageAdd,
		AttackSpeedMult: 1,
		AreaMult:        1,
		CritChance:      cfg.Player.CritChance,
		Armor:           c.ArmorAdd,
		Magnet:          cfg.Player.Magnet + c.MagnetAdd,
		XPMult:          c.XPMult,
		SpeedMult:       c.SpeedMult,
	}
	p.Health = p.MaxHealth
	return p
}

// MoveSpeed folds the speed multiplier and buff together.
func (p *PlayerData) MoveSpeed() float64 {
	speed := cfg.Player.Speed * p.SpeedMult
	if p.BuffSpeed > 0 {
		speed *= cfg.Pickups.SpeedBuffMult
	}
	return speed
}

// MagnetRange folds the magnet buff in.
func (p *PlayerData) MagnetRange() float64 {
	r := p.Magnet
	if p.BuffMagnet > 0 {
		r *= cfg.Pickups.MagnetBuff
	}
	return r
}

// AttackCooldown converts a base cooldown through the attack-speed
// stat. The multiplier floor keeps cooldowns from collapsing to zero.
func (p *PlayerData) AttackCooldown(base float64) float64 {
	mult := gamemath.Clamp(p.AttackSpeedMult, cfg.Player.AttackFloor, 100)
	cd := base / mult
	cd *= cfg.ClassTable[p.Class].CDMult
	return cd
}

// DamageMultiplier is the shared outgoing multiplier: stat block, Fury
// buff and the current combo tier bonus, folded multiplicatively.
func (p *PlayerData) DamageMultiplier(comboTier cfg.ComboTier) float64 {
	m := p.DamageMult * (1 + cfg.ComboTable[comboTier].DamageAdd)
	if p.BuffDamage > 0 {
		m *= cfg.DamageBuffMult
	}
	return m
}

// LifestealPercent maps the raw stat onto a curve that approaches
// cfg.Player.LifestealMax but never reaches it.
func (p *PlayerData) LifestealPercent() float64 {
	if p.Lifesteal <= 0 {
		return 0
	}
	return cfg.Player.LifestealMax * (1 - math.Exp(-p.Lifesteal/cfg.Player.LifestealK))
}
