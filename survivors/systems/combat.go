package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/systems/factory"
)

// UpdateCombat resolves every damage event queued this frame, then
// processes the deaths: rewards, combos, streaks, milestones, drops.
// It runs after all weapons so a frame's hits land together.
func UpdateCombat(e *ecs.ECS) {
	session := components.MustSession(e.World)
	_, player := components.MustPlayer(e.World)

	var dead []*donburi.Entry
	for entry := range components.DamageEvent.Iter(e.World) {
		ev := components.DamageEvent.Get(entry)
		if !entry.HasComponent(components.Enemy) {
			donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
			continue
		}
		en := components.Enemy.Get(entry)
		pos := components.Position.Get(entry)

		amount := ev.Amount
		if shieldBlocks(en, ev) {
			popDamage(e, pos.X, pos.Y, "BLOCK", false, cfg.EnemyTable[cfg.EnemyShielder].Color)
			donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
			continue
		}
		if absorbsDamage(en) {
			popDamage(e, pos.X, pos.Y, "IMMUNE", false, cfg.ColorTextDim)
			donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
			continue
		}
		if en.Affix == cfg.AffixArmored {
			amount = int(float64(amount) * (1 - cfg.AffixArmoredReduce))
			if amount < cfg.Combat.ArmorMinDamage {
				amount = cfg.Combat.ArmorMinDamage
			}
		}

		en.Health -= amount
		en.HitFlash = 0.12
		session.DamageDealt += amount

		applyKnock(en, ev)
		popDamage(e, pos.X, pos.Y, itoa(amount), ev.Crit, damageColor(ev.Crit))

		// lifesteal follows the diminishing curve
		if pct := player.LifestealPercent(); pct > 0 {
			player.RegenAcc += float64(amount) * pct / 100
			if player.RegenAcc >= 1 {
				heal := int(player.RegenAcc)
				player.RegenAcc -= float64(heal)
				HealPlayer(e, heal)
			}
		}

		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
		if en.Health <= 0 {
			dead = append(dead, entry)
		}
	}

	for _, entry := range dead {
		processKill(e, entry)
	}
}

// absorbsDamage covers the two windows where a type simply cannot be
// hurt: a spinner with its shell closed and a phased-out phaser.
func absorbsDamage(en *components.EnemyData) bool {
	if en.Decoy {
		return false
	}
	switch en.Type {
	case cfg.EnemySpinner:
		return en.AIPhase != spinnerOpen
	case cfg.EnemyPhaser:
		return en.AIPhase == phaserPhased
	}
	return false
}

// shieldBlocks resolves the shielder's front arc against a directional
// hit. Hits without a push direction seep through the shield.
func shieldBlocks(en *components.EnemyData, ev *components.DamageEventData) bool {
	if en.Type != cfg.EnemyShielder || en.Decoy {
		return false
	}
	if ev.KnockX == 0 && ev.KnockY == 0 {
		return false
	}
	// the hit arrives from the opposite of its push direction
	from := math.Atan2(-ev.KnockY, -ev.KnockX)
	return math.Abs(gamemath.AngleDiff(from, en.AIAngle)) < cfg.ShieldFrontArc/2
}

// applyKnock stores the impulse, scaled down for the heavy types.
func applyKnock(en *components.EnemyData, ev *components.DamageEventData) {
	if ev.KnockX == 0 && ev.KnockY == 0 {
		return
	}
	scale := 1.0
	switch en.Type {
	case cfg.EnemyBoss:
		scale = 0
	case cfg.EnemyTank, cfg.EnemyBrute:
		scale = 0.3
	}
	if scale == 0 {
		return
	}
	en.KnockX = ev.KnockX * scale
	en.KnockY = ev.KnockY * scale
	en.KnockTime = 0.15
}

// processKill runs the full death bookkeeping for an enemy whose
// health hit zero this frame.
func processKill(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	session := components.MustSession(e.World)
	en := components.Enemy.Get(entry)
	pos := components.Position.Get(entry)

	burst(e, pos.X, pos.Y, 8, cfg.EnemyTable[en.Type].Color, 120)

	if en.Type == cfg.EnemyBoss {
		session.BossAlive = false
		session.BossDelay = cfg.BossRespawnDelay
	}

	if en.Decoy {
		e.World.Remove(entry.Entity())
		return
	}

	session.Kills++
	session.KillsByType[en.Type]++
	session.Hitstop = math.Max(session.Hitstop, cfg.Combat.HitstopKill)
	session.AddShake(0.08, 1.5)

	advanceCombo(e, session)
	advanceStreak(e, session)
	checkKillMilestone(e, session)

	// drops: the gem bakes in the combo tier at death and any XP zone,
	// and the collection multipliers stack on top later
	gemValue := int(float64(en.XP) * session.ComboXPMult() * zoneXPMultAt(pos.X, pos.Y))
	factory.CreateGem(e, gemValue, pos.X, pos.Y)
	popDamage(e, pos.X, pos.Y-14, "+"+itoa(gemValue), false, cfg.ColorGold)

	if session.Rand.Chance(cfg.Pickups.PotionChance) {
		kind := cfg.PotionKind(session.Rand.IntN(int(cfg.PotionKindCount)))
		factory.CreatePotion(e, kind, pos.X+10, pos.Y+10)
	}

	if en.Affix == cfg.AffixSplitter {
		for i := 0; i < cfg.AffixSplitCount; i++ {
			off := session.Rand.Range(-16, 16)
			factory.CreateSplitChild(e, en, pos.X+off, pos.Y-off)
		}
	}

	if en.Type == cfg.EnemyBoss {
		announce := components.MustAnnouncements(e.World)
		announce.Push(components.Announcement{
			Text: "BOSS DOWN", Life: 2.0, Color: cfg.ColorGold,
		})
		session.AddShake(0.5, 7)
		burst(e, pos.X, pos.Y, 30, cfg.EnemyTable[cfg.EnemyBoss].Color, 240)
	}

	e.World.Remove(entry.Entity())
}

// advanceCombo grows the kill chain and celebrates tier changes.
func advanceCombo(e *ecs.ECS, session *components.SessionData) {
	session.ComboKills++
	session.ComboTimer = cfg.ComboWindow
	if session.ComboKills > session.BestCombo {
		session.BestCombo = session.ComboKills
	}

	newTier := cfg.TierForChain(session.ComboKills)
	if newTier == session.ComboTier {
		return
	}
	session.ComboTier = newTier

	playerEntry, _ := components.MustPlayer(e.World)
	ppos := components.Position.Get(playerEntry)
	row := cfg.ComboTable[newTier]
	burst(e, ppos.X, ppos.Y, cfg.ComboBurstCount, row.Color, 130)

	popups := components.MustPopups(e.World)
	popups.Spawn(components.Popup{
		X: ppos.X, Y: ppos.Y - 26,
		Text: row.Name + "!", Life: 1.0, Big: true, Color: row.Color,
	})

	if newTier == cfg.ComboGodlike {
		announce := components.MustAnnouncements(e.World)
		announce.Push(components.Announcement{
			Text: "GODLIKE", Life: 1.8, Color: row.Color,
		})
	}
}

// advanceStreak counts no-damage kills and announces milestones.
func advanceStreak(e *ecs.ECS, session *components.SessionData) {
	session.StreakKills++
	session.StreakTimer = cfg.StreakTimeout
	if session.StreakKills > session.BestStreak {
		session.BestStreak = session.StreakKills
	}

	for session.NextStreakIdx < len(cfg.StreakMilestones) &&
		session.StreakKills >= cfg.StreakMilestones[session.NextStreakIdx] {
		n := cfg.StreakMilestones[session.NextStreakIdx]
		session.NextStreakIdx++
		announce := components.MustAnnouncements(e.World)
		announce.Push(components.Announcement{
			Text: fmt.Sprintf("STREAK x%d", n),
			Sub:  fmt.Sprintf("%.1fx XP", session.StreakXPMult()),
			Life: 1.6, Color: cfg.ColorOffense,
		})
	}
}

// checkKillMilestone pays out the reward cycle as total kills cross
// each threshold.
func checkKillMilestone(e *ecs.ECS, session *components.SessionData) {
	if session.MilestoneIdx >= len(cfg.KillMilestones) {
		return
	}
	if session.Kills < cfg.KillMilestones[session.MilestoneIdx] {
		return
	}
	reward := cfg.MilestoneRewards[session.MilestoneIdx]
	threshold := cfg.KillMilestones[session.MilestoneIdx]
	session.MilestoneIdx++

	_, player := components.MustPlayer(e.World)
	var line string
	switch reward {
	case cfg.RewardHeal:
		HealPlayer(e, cfg.MilestoneHealAmount)
		line = "healed"
	case cfg.RewardPoint:
		player.Points++
		line = "+1 upgrade point"
	case cfg.RewardDamage:
		player.DamageMult += cfg.MilestoneDamageAdd
		line = "+5% damage"
	case cfg.RewardSpeed:
		player.SpeedMult += cfg.MilestoneSpeedAdd
		line = "+3% speed"
	case cfg.RewardMagnetAll:
		magnetAllGems(e)
		line = "gems inbound"
	case cfg.RewardNuke:
		nukeEnemies(e)
		line = "half their health, gone"
	}

	announce := components.MustAnnouncements(e.World)
	announce.Push(components.Announcement{
		Text: fmt.Sprintf("%d KILLS", threshold),
		Sub:  line,
		Life: 2.0, Color: cfg.ColorGold,
	})
}

// magnetAllGems latches every live gem onto the player.
func magnetAllGems(e *ecs.ECS) {
	components.Gem.Each(e.World, func(entry *donburi.Entry) {
		components.Gem.Get(entry).Magnet = true
	})
}

// nukeEnemies queues half of every enemy's max health as damage,
// resolved on the next combat pass.
func nukeEnemies(e *ecs.ECS) {
	session := components.MustSession(e.World)
	session.Flash(0.25, cfg.ColorGold)
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		amount := int(float64(en.MaxHealth) * cfg.MilestoneNukeFrac)
		if amount < 1 {
			amount = 1
		}
		components.QueueDamage(entry, components.DamageEventData{Amount: amount})
	})
}

// HurtPlayer lands enemy damage on the hero: shield, dodge and armor
// first, then knockback, the streak break, feedback and the death
// check. src is the attacking enemy when the hit was a touch, for
// thorns. Hits on the same tick stack; immunity starts the tick after.
func HurtPlayer(e *ecs.ECS, amount int, srcX, srcY float64, src *donburi.Entry) {
	session := components.MustSession(e.World)
	playerEntry, player := components.MustPlayer(e.World)
	ppos := components.Position.Get(playerEntry)

	if player.Health <= 0 {
		return
	}
	if player.Invuln > 0 && player.HurtTick != session.Tick {
		return
	}
	if player.BuffShield > 0 {
		popDamage(e, ppos.X, ppos.Y, "SHIELDED", false, cfg.PotionTable[cfg.PotionShield].Color)
		return
	}
	if session.Rand.Chance(player.Dodge / 100) {
		popDamage(e, ppos.X, ppos.Y, "DODGE", false, cfg.ColorDefense)
		return
	}

	amount = int(float64(amount) * (1 - player.Armor/100))
	if amount < cfg.Combat.ArmorMinDamage {
		amount = cfg.Combat.ArmorMinDamage
	}

	player.Health -= amount
	player.Invuln = cfg.Player.InvulnTime
	player.HurtTick = session.Tick
	player.HurtFlash = cfg.Player.HurtFlash
	session.DamageTaken += amount
	session.Vignette = gamemath.Clamp(session.Vignette+float64(amount)/40, 0, 1)

	// shoved straight away from whatever hit
	if kx, ky := gamemath.Normalize(ppos.X-srcX, ppos.Y-srcY); kx != 0 || ky != 0 {
		ppos.X = gamemath.Clamp(ppos.X+kx*cfg.Player.Knockback, cfg.World.Padding, cfg.World.Width-cfg.World.Padding)
		ppos.Y = gamemath.Clamp(ppos.Y+ky*cfg.Player.Knockback, cfg.World.Padding, cfg.World.Height-cfg.World.Padding)
	}

	// any scratch ends the streak
	session.StreakKills = 0
	session.StreakTimer = 0
	session.NextStreakIdx = 0

	session.AddShake(0.2, 4)
	session.Flash(0.12, cfg.ColorDanger)
	popDamage(e, ppos.X, ppos.Y-16, "-"+itoa(amount), false, cfg.ColorDanger)

	if player.Thorns > 0 && src != nil && src.Valid() && src.HasComponent(components.Enemy) {
		components.QueueDamage(src, components.DamageEventData{Amount: player.Thorns})
	}

	if player.Health <= 0 {
		player.Health = 0
		endRun(e, cfg.StateGameOver)
	}
}

// endRun finalizes a run: score submission and the closing state.
func endRun(e *ecs.ECS, state cfg.GameState) {
	session := components.MustSession(e.World)
	_, player := components.MustPlayer(e.World)

	if scores != nil {
		session.NewBest = scores.Submit(ScoreMode, FinalScore(session, player))
	}
	session.AddShake(0.4, 6)
	session.EnterState(state)
}

// FinalScore folds a run into one number: kills plus level and wave
// weight.
func FinalScore(session *components.SessionData, player *components.PlayerData) int {
	return session.Kills + player.Level*25 + session.Wave*50
}

func damageColor(crit bool) color.RGBA {
	if crit {
		return cfg.ColorGold
	}
	return cfg.ColorText
}
