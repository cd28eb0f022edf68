package config

import "image/color"

// PotionKind indexes PotionTable and the inventory slots.
type PotionKind int

const (
	PotionHeal PotionKind = iota
	PotionDamage
	PotionSpeed
	PotionShield
	PotionMagnet
	PotionKindCount
)

// PotionConfig describes one potion type. Duration applies to the
// timed buffs; Heal is instant.
type PotionConfig struct {
	Name     string
	Heal     int
	Duration float64
	Color    color.RGBA
}

var PotionTable = [PotionKindCount]PotionConfig{
	PotionHeal:   {Name: "Mend", Heal: 35, Color: color.RGBA{255, 90, 110, 255}},
	PotionDamage: {Name: "Fury", Duration: 10, Color: color.RGBA{255, 140, 60, 255}},
	PotionSpeed:  {Name: "Haste", Duration: 8, Color: color.RGBA{120, 230, 140, 255}},
	PotionShield: {Name: "Aegis", Duration: 5, Color: color.RGBA{130, 180, 255, 255}},
	PotionMagnet: {Name: "Pull", Duration: 12, Color: color.RGBA{230, 130, 255, 255}},
}

// DamageBuffMult is the damage multiplier while a Fury potion runs.
const DamageBuffMult = 2.0

// PotionLife is how long a dropped potion stays on the ground.
const PotionLife = 20.0

// MaxPotionHeld caps each inventory slot.
const MaxPotionHeld = 3
