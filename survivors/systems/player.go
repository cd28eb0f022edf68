package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// UpdatePlayer moves the hero and burns down personal timers: buffs,
// invulnerability, regen accumulation.
func UpdatePlayer(e *ecs.ECS) {
	session := components.MustSession(e.World)
	entry, player := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)
	dt := session.Dt

	// drag steering turns the heading toward the finger vector
	if player.DragX != 0 || player.DragY != 0 {
		target := aimFromDrag(player)
		diff := gamemath.AngleDiff(player.Facing, target)
		maxTurn := cfg.Player.TurnRate * dt
		player.Facing = gamemath.NormalizeAngle(player.Facing + gamemath.Clamp(diff, -maxTurn, maxTurn))
	}

	moving := player.Moving || player.DragX != 0 || player.DragY != 0
	if moving {
		speed := player.MoveSpeed()
		pos.X += math.Cos(player.Facing) * speed * dt
		pos.Y += math.Sin(player.Facing) * speed * dt
	}

	pos.X = gamemath.Clamp(pos.X, cfg.World.Padding, cfg.World.Width-cfg.World.Padding)
	pos.Y = gamemath.Clamp(pos.Y, cfg.World.Padding, cfg.World.Height-cfg.World.Padding)

	// timers
	player.Invuln = math.Max(0, player.Invuln-dt)
	player.HurtFlash = math.Max(0, player.HurtFlash-dt)
	player.BuffDamage = math.Max(0, player.BuffDamage-dt)
	player.BuffSpeed = math.Max(0, player.BuffSpeed-dt)
	player.BuffShield = math.Max(0, player.BuffShield-dt)
	player.BuffMagnet = math.Max(0, player.BuffMagnet-dt)

	// regen accumulates fractions and pays out whole points
	if player.Regen > 0 && player.Health < player.MaxHealth {
		player.RegenAcc += player.Regen * dt
		if player.RegenAcc >= 1 {
			heal := int(player.RegenAcc)
			player.RegenAcc -= float64(heal)
			HealPlayer(e, heal)
		}
	}
}

// HealPlayer raises health up to the cap and pops the number.
func HealPlayer(e *ecs.ECS, amount int) {
	entry, player := components.MustPlayer(e.World)
	if amount <= 0 || player.Health <= 0 {
		return
	}
	before := player.Health
	player.Health = min(player.Health+amount, player.MaxHealth)
	gained := player.Health - before
	if gained <= 0 {
		return
	}
	pos := components.Position.Get(entry)
	popups := components.MustPopups(e.World)
	popups.Spawn(components.Popup{
		X: pos.X, Y: pos.Y - 18,
		Text:  "+" + itoa(gained),
		Life:  0.8,
		Color: cfg.ColorHPBar,
	})
}

// UsePotion consumes one potion from the inventory slot, if held.
func UsePotion(e *ecs.ECS, kind cfg.PotionKind) {
	session := components.MustSession(e.World)
	entry, player := components.MustPlayer(e.World)
	if player.Potions[kind] <= 0 {
		return
	}
	player.Potions[kind]--
	session.PotionsUsed++

	row := cfg.PotionTable[kind]
	switch kind {
	case cfg.PotionHeal:
		HealPlayer(e, row.Heal)
	case cfg.PotionDamage:
		player.BuffDamage = row.Duration
	case cfg.PotionSpeed:
		player.BuffSpeed = row.Duration
	case cfg.PotionShield:
		player.BuffShield = row.Duration
	case cfg.PotionMagnet:
		player.BuffMagnet = row.Duration
	}

	pos := components.Position.Get(entry)
	burst(e, pos.X, pos.Y, 8, row.Color, 90)
}
