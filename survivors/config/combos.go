package config

import "image/color"

// ComboTier is the current kill-chain grade. Kills within ComboWindow
// of each other grow the chain; silence drops it back to ComboNone.
type ComboTier int

const (
	ComboNone ComboTier = iota
	ComboNice
	ComboGreat
	ComboAwesome
	ComboBrutal
	ComboGodlike
	ComboTierCount
)

// ComboTierConfig maps a chain length to its tier bonuses. XPMult also
// scales gem value at spawn; DamageAdd scales the player's damage by
// 1+DamageAdd while the tier holds.
type ComboTierConfig struct {
	Name      string
	Kills     int // chain length where the tier begins
	XPMult    float64
	DamageAdd float64
	Color     color.RGBA
}

var ComboTable = [ComboTierCount]ComboTierConfig{
	ComboNone:    {Name: "", Kills: 0, XPMult: 1.0, DamageAdd: 0},
	ComboNice:    {Name: "NICE", Kills: 5, XPMult: 1.1, DamageAdd: 0.05, Color: color.RGBA{135, 206, 235, 255}},
	ComboGreat:   {Name: "GREAT", Kills: 10, XPMult: 1.25, DamageAdd: 0.10, Color: color.RGBA{110, 230, 120, 255}},
	ComboAwesome: {Name: "AWESOME", Kills: 20, XPMult: 1.5, DamageAdd: 0.15, Color: color.RGBA{255, 170, 60, 255}},
	ComboBrutal:  {Name: "BRUTAL", Kills: 35, XPMult: 1.75, DamageAdd: 0.22, Color: color.RGBA{255, 80, 70, 255}},
	ComboGodlike: {Name: "GODLIKE", Kills: 50, XPMult: 2.0, DamageAdd: 0.30, Color: color.RGBA{255, 215, 0, 255}},
}

// ComboWindow is the max gap between chained kills, in seconds.
const ComboWindow = 2.5

// TierForChain maps a chain length to its tier.
func TierForChain(kills int) ComboTier {
	tier := ComboNone
	for t := ComboNice; t < ComboTierCount; t++ {
		if kills >= ComboTable[t].Kills {
			tier = t
		}
	}
	return tier
}

// ComboBurstCount is the celebration particle count on a tier change.
const ComboBurstCount = 12

// Kill streak: kills without taking damage. The multiplier is
// 1 + StreakXPStep per kill, capped at StreakXPCap, and resets when the
// player is hit or StreakTimeout passes without a kill.
const (
	StreakTimeout = 2.0
	StreakXPStep  = 0.1
	StreakXPCap   = 3.0
)

// StreakMilestones get an announcement when crossed.
var StreakMilestones = [...]int{5, 10, 25, 50, 100, 200}
