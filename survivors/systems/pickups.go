package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// UpdateGems moves gems, latches the magnet and collects. A gem is
// inert on its spawn tick so a kill on top of the player still shows
// the drop for one frame.
func UpdateGems(e *ecs.ECS) {
	session := components.MustSession(e.World)
	playerEntry, player := components.MustPlayer(e.World)
	ppos := components.Position.Get(playerEntry)
	dt := session.Dt
	magnetRange := player.MagnetRange()

	var picked []*donburi.Entry
	components.Gem.Each(e.World, func(entry *donburi.Entry) {
		g := components.Gem.Get(entry)
		pos := components.Position.Get(entry)

		g.BobPhase += dt * 4

		// the scatter kick bleeds off quickly
		if g.VX != 0 || g.VY != 0 {
			pos.X += g.VX * dt
			pos.Y += g.VY * dt
			f := 1 - 6*dt
			if f < 0 {
				f = 0
			}
			g.VX *= f
			g.VY *= f
		}

		dist := gamemath.Dist(pos.X, pos.Y, ppos.X, ppos.Y)
		if !g.Magnet && dist <= magnetRange {
			g.Magnet = true
		}
		if g.Magnet && dist > 1 {
			// homing speeds up the farther the gem still is
			speed := cfg.Pickups.GemBaseSpeed * gamemath.Clamp(dist/100, 1, 3)
			pos.X += (ppos.X - pos.X) / dist * speed * dt
			pos.Y += (ppos.Y - pos.Y) / dist * speed * dt
		}

		if session.Tick <= g.SpawnTick {
			return
		}
		if dist <= cfg.Pickups.PickupRadius+cfg.Player.Size {
			picked = append(picked, entry)
		}
	})

	for _, entry := range picked {
		collectGem(e, entry)
	}
}

// collectGem applies the pickup multipliers and feeds the XP in.
func collectGem(e *ecs.ECS, entry *donburi.Entry) {
	session := components.MustSession(e.World)
	_, player := components.MustPlayer(e.World)
	g := components.Gem.Get(entry)
	pos := components.Position.Get(entry)

	earned := int(float64(g.Value) * session.ComboXPMult() * session.StreakXPMult() * player.XPMult)
	session.GemsCollected++

	label := "+" + itoa(earned) + " XP"
	c := cfg.ColorXPBar
	if session.ComboTier != cfg.ComboNone {
		label += " " + cfg.ComboTable[session.ComboTier].Name
		c = cfg.ComboTable[session.ComboTier].Color
	}
	popDamage(e, pos.X, pos.Y-10, label, false, c)

	// spark from the pickup point to the XP bar
	cam := components.MustCamera(e.World)
	sx := pos.X - cam.X + session.ScreenW/2
	sy := pos.Y - cam.Y + session.ScreenH/2
	uiSpark(e, sx, sy, 18, 36, cfg.ColorXPBar)

	e.World.Remove(entry.Entity())
	GainXP(e, earned)
}

// UpdatePotions ages dropped potions and picks them up into the belt.
func UpdatePotions(e *ecs.ECS) {
	session := components.MustSession(e.World)
	playerEntry, player := components.MustPlayer(e.World)
	ppos := components.Position.Get(playerEntry)
	dt := session.Dt

	var gone []*donburi.Entry
	components.Potion.Each(e.World, func(entry *donburi.Entry) {
		p := components.Potion.Get(entry)
		pos := components.Position.Get(entry)

		p.BobPhase += dt * 3
		p.Life -= dt
		if p.Life <= 0 {
			gone = append(gone, entry)
			return
		}

		if gamemath.Dist(pos.X, pos.Y, ppos.X, ppos.Y) > cfg.Pickups.PickupRadius+cfg.Player.Size {
			return
		}
		if player.Potions[p.Kind] >= cfg.MaxPotionHeld {
			return
		}
		player.Potions[p.Kind]++
		row := cfg.PotionTable[p.Kind]
		popDamage(e, pos.X, pos.Y-10, row.Name, false, row.Color)
		burst(e, pos.X, pos.Y, 6, row.Color, 90)
		gone = append(gone, entry)
	})

	for _, entry := range gone {
		e.World.Remove(entry.Entity())
	}
}

// bobOffset is the vertical hover the renderer applies to pickups.
func bobOffset(phase float64) float64 {
	return math.Sin(phase) * 3
}
