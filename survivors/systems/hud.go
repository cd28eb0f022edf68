package systems

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/fonts"
	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// Approximate per-glyph advances for the bundled faces, good enough
// for centering.
const (
	charSmall = 7
	charMono  = 8
	charBold  = 10
	charTitle = 16
)

// hudVisible reports whether the battlefield chrome should draw in the
// given state.
func hudVisible(st cfg.GameState) bool {
	switch st {
	case cfg.StateCountdown, cfg.StatePlaying, cfg.StateLevelUp, cfg.StatePaused:
		return true
	}
	return false
}

func drawBar(screen *ebiten.Image, x, y, w, h, frac float64, back, fill color.RGBA) {
	frac = gamemath.Clamp(frac, 0, 1)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), back, false)
	if frac > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*frac), float32(h), fill, false)
	}
}

// DrawHUD renders the battlefield chrome: health and XP, wave and
// clock, combo and streak meters, buffs, the potion belt, the boss bar
// and the off-screen danger glow.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := components.MustSession(e.World)
	if !hudVisible(session.State) {
		return
	}
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)

	small := fonts.Small.Get()
	bold := fonts.Bold.Get()
	mono := fonts.Mono.Get()

	// health
	hpFill := cfg.ColorHPBar
	hpFrac := float64(player.Health) / float64(player.MaxHealth)
	if hpFrac < 0.3 {
		pulse := 0.5 + 0.5*math.Sin(session.GameTime*6)
		hpFill = fade(cfg.ColorDanger, 0.6+0.4*pulse)
	}
	drawBar(screen, 16, 14, 150, 12, hpFrac, cfg.ColorHPBack, hpFill)
	text.Draw(screen, fmt.Sprintf("%d/%d", player.Health, player.MaxHealth), small, 172, 24, cfg.ColorText)

	// experience; the spark target in collectGem matches this bar
	xpFrac := float64(player.XP) / float64(player.XPNeed)
	drawBar(screen, 16, 32, 150, 7, xpFrac, cfg.ColorHPBack, cfg.ColorXPBar)
	if session.XPPulse > 0 {
		vector.DrawFilledRect(screen, 16, 32, 150, 7, fade(color.RGBA{255, 255, 255, 255}, session.XPPulse*0.6), false)
	}
	if xpFrac > 0.8 { // almost there
		glow := 0.5 + 0.5*math.Sin(session.GameTime*5)
		vector.StrokeRect(screen, 15, 31, 152, 9, 1, fade(cfg.ColorXPBar, 0.3+0.4*glow), false)
	}
	lv := fmt.Sprintf("LV %d", player.Level)
	text.Draw(screen, lv, bold, 16, 60, cfg.ColorText)
	if player.Points > 0 {
		blink := 0.6 + 0.4*math.Sin(session.GameTime*4)
		text.Draw(screen, fmt.Sprintf("+%d", player.Points), bold, 16+len(lv)*charBold+8, 60, fade(cfg.ColorGold, blink))
	}

	// wave banner and run clock, top center
	wave := fmt.Sprintf("WAVE %d", session.Wave+1)
	text.Draw(screen, wave, bold, int(session.ScreenW/2)-len(wave)*charBold/2, 24, cfg.ColorText)
	clock := fmt.Sprintf("%d:%02d", int(session.GameTime)/60, int(session.GameTime)%60)
	text.Draw(screen, clock, mono, int(session.ScreenW/2)-len(clock)*charMono/2, 42, cfg.ColorTextDim)

	// kills and the next milestone, under the minimap
	kills := fmt.Sprintf("KILLS %d", session.Kills)
	text.Draw(screen, kills, small, int(session.ScreenW)-16-len(kills)*charSmall, 96, cfg.ColorText)
	if session.MilestoneIdx < len(cfg.KillMilestones) {
		next := fmt.Sprintf("next %d", cfg.KillMilestones[session.MilestoneIdx])
		text.Draw(screen, next, small, int(session.ScreenW)-16-len(next)*charSmall, 110, cfg.ColorTextDim)
	}

	drawComboMeter(screen, session)
	drawBuffRow(screen, session, player)
	drawPotionBelt(screen, session, player)

	if n := components.MustLoadout(e.World).SynergyCount(); n > 0 {
		s := fmt.Sprintf("SYNERGY x%d", n)
		text.Draw(screen, s, small, int(session.ScreenW)-16-len(s)*charSmall, int(session.ScreenH)-14, cfg.ColorGold)
	}

	drawBossBar(e, screen, session)
	drawDangerEdges(e, screen, session)

	// screen-space sparks fly over everything else in the HUD
	ui := components.MustUIParticles(e.World)
	for i := range ui.Items {
		p := &ui.Items[i]
		if p.Life <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2.5, fade(p.Color, gamemath.Clamp(p.Life*2, 0, 1)), false)
	}

	drawAnnouncements(e, screen, session)
}

func drawComboMeter(screen *ebiten.Image, session *components.SessionData) {
	if session.ComboKills < 2 {
		return
	}
	small := fonts.Small.Get()
	bold := fonts.Bold.Get()

	y := 84
	row := cfg.ComboTable[session.ComboTier]
	clr := row.Color
	if session.ComboTier == cfg.ComboNone {
		clr = cfg.ColorTextDim
	}
	label := fmt.Sprintf("%dx", session.ComboKills)
	text.Draw(screen, label, bold, 16, y, clr)
	if row.Name != "" {
		text.Draw(screen, row.Name, small, 16+len(label)*charBold+6, y, clr)
	}
	// the window draining away
	drawBar(screen, 16, float64(y+5), 70, 3, session.ComboTimer/cfg.ComboWindow, cfg.ColorHPBack, clr)

	if session.StreakKills >= 2 {
		s := fmt.Sprintf("STREAK %d  x%.1f XP", session.StreakKills, session.StreakXPMult())
		text.Draw(screen, s, small, 16, y+24, cfg.ColorGold)
	}
}

func drawBuffRow(screen *ebiten.Image, session *components.SessionData, player *components.PlayerData) {
	type buff struct {
		left float64
		kind cfg.PotionKind
	}
	buffs := []buff{
		{player.BuffDamage, cfg.PotionDamage},
		{player.BuffSpeed, cfg.PotionSpeed},
		{player.BuffShield, cfg.PotionShield},
		{player.BuffMagnet, cfg.PotionMagnet},
	}
	x := 16.0
	y := session.ScreenH - 58
	for _, b := range buffs {
		if b.left <= 0 {
			continue
		}
		row := cfg.PotionTable[b.kind]
		vector.DrawFilledRect(screen, float32(x), float32(y), 10, 10, row.Color, false)
		drawBar(screen, x, y+12, 34, 3, b.left/row.Duration, cfg.ColorHPBack, row.Color)
		x += 42
	}
}

func drawPotionBelt(screen *ebiten.Image, session *components.SessionData, player *components.PlayerData) {
	small := fonts.Small.Get()
	y := session.ScreenH - 34
	for k := cfg.PotionKind(0); k < cfg.PotionKindCount; k++ {
		x := 16 + float64(k)*26
		row := cfg.PotionTable[k]
		count := player.Potions[k]

		a := 0.25
		if count > 0 {
			a = 1
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), 22, 22, fade(cfg.ColorHPBack, 1), false)
		vector.DrawFilledRect(screen, float32(x+5), float32(y+5), 12, 12, fade(row.Color, a), false)
		if k == player.InvSlot {
			vector.StrokeRect(screen, float32(x-1), float32(y-1), 24, 24, 2, cfg.ColorText, false)
		} else {
			vector.StrokeRect(screen, float32(x), float32(y), 22, 22, 1, cfg.ColorTextDim, false)
		}
		if count > 0 {
			text.Draw(screen, fmt.Sprintf("%d", count), small, int(x)+15, int(y)+21, cfg.ColorText)
		}
	}
}

func drawBossBar(e *ecs.ECS, screen *ebiten.Image, session *components.SessionData) {
	if !session.BossAlive {
		return
	}
	var boss *components.EnemyData
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		if en.Type == cfg.EnemyBoss && !en.Decoy {
			boss = en
		}
	})
	if boss == nil {
		return
	}
	small := fonts.Small.Get()
	w := 300.0
	x := (session.ScreenW - w) / 2
	y := session.ScreenH - 30
	name := strings.ToUpper(cfg.EnemyBoss.String())
	text.Draw(screen, name, small, int(x), int(y)-4, cfg.ColorDanger)
	drawBar(screen, x, y, w, 10, float64(boss.Health)/float64(boss.MaxHealth), cfg.ColorHPBack, cfg.ColorDanger)
	vector.StrokeRect(screen, float32(x-1), float32(y-1), float32(w+2), 12, 1, cfg.ColorText, false)
}

// drawDangerEdges glows the screen border toward nearby off-screen
// enemies so ambushes read before they land.
func drawDangerEdges(e *ecs.ECS, screen *ebiten.Image, session *components.SessionData) {
	ox, oy, ok := worldOffset(e)
	if !ok {
		return
	}
	const reach = 200.0
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		if en.Decoy {
			return
		}
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy
		overX := math.Max(0, math.Max(-sx, sx-session.ScreenW))
		overY := math.Max(0, math.Max(-sy, sy-session.ScreenH))
		if overX == 0 && overY == 0 {
			return
		}
		d := math.Hypot(overX, overY)
		if d > reach {
			return
		}
		frac := 1 - d/reach
		a := frac * frac * 0.8
		ex := gamemath.Clamp(sx, 8, session.ScreenW-8)
		ey := gamemath.Clamp(sy, 8, session.ScreenH-8)
		clr := cfg.ColorDanger
		if en.Type == cfg.EnemyBoss || en.Champion {
			clr = cfg.ColorGold
		}
		vector.DrawFilledCircle(screen, float32(ex), float32(ey), float32(4+6*frac), fade(clr, a), true)
	})
}

func drawAnnouncements(e *ecs.ECS, screen *ebiten.Image, session *components.SessionData) {
	ann := components.MustAnnouncements(e.World)
	if ann.Count == 0 {
		return
	}
	small := fonts.Small.Get()
	bold := fonts.Bold.Get()
	y := int(session.ScreenH * 0.22)
	for i := 0; i < ann.Count; i++ {
		it := &ann.Items[i]
		a := gamemath.Clamp(it.Life/0.4, 0, 1)
		clr := it.Color
		if clr == (color.RGBA{}) {
			clr = cfg.ColorText
		}
		x := int(session.ScreenW/2) - len(it.Text)*charBold/2
		text.Draw(screen, it.Text, bold, x+1, y+1, fade(color.RGBA{0, 0, 0, 220}, a))
		text.Draw(screen, it.Text, bold, x, y, fade(clr, a))
		if it.Sub != "" {
			sx := int(session.ScreenW/2) - len(it.Sub)*charSmall/2
			text.Draw(screen, it.Sub, small, sx, y+16, fade(cfg.ColorTextDim, a))
			y += 16
		}
		y += 26
	}
}
