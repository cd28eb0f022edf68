package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/fonts"
	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

var overlayColor = color.RGBA{0, 0, 0, 170}

// DrawScreens renders whichever full-screen scene the state machine is
// in. During plain gameplay it draws nothing.
func DrawScreens(e *ecs.ECS, screen *ebiten.Image) {
	session := components.MustSession(e.World)
	switch session.State {
	case cfg.StateMenu:
		drawMainMenu(screen, session)
	case cfg.StateClassSelect:
		drawClassSelect(screen, session)
	case cfg.StateWeaponSelect:
		drawWeaponSelect(e, screen, session)
	case cfg.StateCountdown:
		drawCountdown(screen, session)
	case cfg.StatePaused:
		drawPauseMenu(screen, session)
	case cfg.StateLevelUp:
		drawLevelUp(e, screen, session)
	case cfg.StateGameOver:
		drawEndScreen(e, screen, session, "YOU DIED", cfg.ColorDanger)
	case cfg.StateVictory:
		drawEndScreen(e, screen, session, "VICTORY", cfg.ColorGold)
	}
}

func centerText(screen *ebiten.Image, s string, face fonts.FontName, per int, cx, y int, clr color.Color) {
	text.Draw(screen, s, face.Get(), cx-len(s)*per/2, y, clr)
}

func drawMainMenu(screen *ebiten.Image, session *components.SessionData) {
	screen.Fill(cfg.ColorBackground)
	cx := int(session.ScreenW / 2)

	// idle flair: a slow orbit of weapon-colored motes
	for i := 0; i < 9; i++ {
		a := session.StateTime*0.5 + float64(i)*2*math.Pi/9
		r := 150 + 12*math.Sin(session.StateTime*0.9+float64(i))
		x := session.ScreenW/2 + math.Cos(a)*r
		y := session.ScreenH*0.42 + math.Sin(a)*r*0.45
		vector.DrawFilledCircle(screen, float32(x), float32(y), 3,
			fade(cfg.WeaponTable[cfg.WeaponID(i)].Color, 0.5), true)
	}

	enter := session.EntranceT
	centerText(screen, "SURVIVORS", fonts.Title, charTitle, cx, int(session.ScreenH*0.36), fade(cfg.ColorText, enter))
	centerText(screen, "outlast the swarm", fonts.Small, charSmall, cx, int(session.ScreenH*0.36)+22, fade(cfg.ColorTextDim, enter))

	if scores != nil {
		if best := scores.Best(ScoreMode); best > 0 {
			centerText(screen, fmt.Sprintf("BEST %d", best), fonts.Bold, charBold, cx, int(session.ScreenH*0.56), cfg.ColorGold)
		}
	}

	blink := 0.5 + 0.5*math.Sin(session.StateTime*3)
	centerText(screen, "tap to start", fonts.Regular, charSmall+1, cx, int(session.ScreenH*0.72), fade(cfg.ColorText, 0.4+0.6*blink))
	centerText(screen, "back: quit", fonts.Small, charSmall, cx, int(session.ScreenH)-16, cfg.ColorTextDim)
}

// carouselCard computes the screen x and scale for entry i of a
// smoothed carousel centered on session.CarouselPos.
func carouselCard(session *components.SessionData, i int, spacing float64) (x, scale float64) {
	dx := float64(i) - session.CarouselPos
	x = session.ScreenW/2 + dx*spacing
	scale = 1 - 0.25*math.Min(1, math.Abs(dx))
	return x, scale
}

func drawCardFrame(screen *ebiten.Image, x, y, w, h float64, border color.RGBA, selected bool) {
	vector.DrawFilledRect(screen, float32(x-w/2), float32(y-h/2), float32(w), float32(h),
		color.RGBA{24, 24, 34, 240}, false)
	width := float32(1)
	if selected {
		width = 2
	}
	vector.StrokeRect(screen, float32(x-w/2), float32(y-h/2), float32(w), float32(h), width, border, false)
}

func drawClassSelect(screen *ebiten.Image, session *components.SessionData) {
	screen.Fill(cfg.ColorBackground)
	cx := int(session.ScreenW / 2)
	cy := session.ScreenH*0.45 + (1-session.EntranceT)*26

	centerText(screen, "CHOOSE CLASS", fonts.Bold, charBold, cx, 48, cfg.ColorText)

	for i := 0; i < int(cfg.ClassCount); i++ {
		row := cfg.ClassTable[cfg.ClassID(i)]
		x, scale := carouselCard(session, i, 160)
		w, h := 130*scale, 170*scale
		border := cfg.ColorTextDim
		if i == session.Cursor {
			border = row.Color
		}
		drawCardFrame(screen, x, cy, w, h, border, i == session.Cursor)

		vector.DrawFilledCircle(screen, float32(x), float32(cy-h*0.22), float32(18*scale), row.Color, true)
		centerText(screen, row.Name, fonts.Bold, charBold, int(x), int(cy+8*scale), cfg.ColorText)
		for li, line := range classStatLines(row) {
			centerText(screen, line, fonts.Small, charSmall, int(x), int(cy+30*scale)+li*14, cfg.ColorTextDim)
		}
	}

	sel := cfg.ClassTable[cfg.ClassID(session.Cursor)]
	centerText(screen, sel.Desc, fonts.Small, charSmall, cx, int(session.ScreenH*0.78), cfg.ColorText)
	centerText(screen, "swipe to browse, tap to pick", fonts.Small, charSmall, cx, int(session.ScreenH)-16, cfg.ColorTextDim)
}

// classStatLines compacts the non-zero class bonuses into short tags.
func classStatLines(c cfg.ClassConfig) []string {
	var out []string
	if c.HealthAdd != 0 {
		out = append(out, fmt.Sprintf("+%d HP", c.HealthAdd))
	}
	if c.DamageAdd != 0 {
		out = append(out, fmt.Sprintf("+%.0f%% DMG", c.DamageAdd*100))
	}
	if c.ArmorAdd != 0 {
		out = append(out, fmt.Sprintf("+%.0f%% ARMOR", c.ArmorAdd))
	}
	if c.SpeedMult != 1 {
		out = append(out, fmt.Sprintf("SPD x%.2g", c.SpeedMult))
	}
	if c.CDMult != 1 {
		out = append(out, fmt.Sprintf("CD x%.2g", c.CDMult))
	}
	if c.MagnetAdd != 0 {
		out = append(out, fmt.Sprintf("+%.0f REACH", c.MagnetAdd))
	}
	return out
}

func drawWeaponSelect(e *ecs.ECS, screen *ebiten.Image, session *components.SessionData) {
	screen.Fill(cfg.ColorBackground)
	cx := int(session.ScreenW / 2)
	cy := session.ScreenH*0.45 + (1-session.EntranceT)*26

	centerText(screen, "STARTING WEAPON", fonts.Bold, charBold, cx, 48, cfg.ColorText)

	favored := cfg.WeaponID(-1)
	if pentry, ok := components.Player.First(e.World); ok {
		favored = cfg.ClassTable[components.Player.Get(pentry).Class].Weapon
	}

	for i := 0; i < int(cfg.WeaponCount); i++ {
		w := cfg.WeaponID(i)
		row := cfg.WeaponTable[w]
		x, scale := carouselCard(session, i, 150)
		cw, ch := 126*scale, 160*scale
		border := cfg.ColorTextDim
		if i == session.Cursor {
			border = row.Color
		}
		drawCardFrame(screen, x, cy, cw, ch, border, i == session.Cursor)

		vector.DrawFilledCircle(screen, float32(x), float32(cy-ch*0.22), float32(14*scale), row.Color, true)
		centerText(screen, row.Name, fonts.Small, charSmall, int(x), int(cy+6*scale), cfg.ColorText)
		centerText(screen, fmt.Sprintf("DMG %d", row.Damage), fonts.Small, charSmall, int(x), int(cy+24*scale), cfg.ColorTextDim)
		if row.Cooldown > 0 {
			centerText(screen, fmt.Sprintf("CD %.2gs", row.Cooldown), fonts.Small, charSmall, int(x), int(cy+38*scale), cfg.ColorTextDim)
		} else {
			centerText(screen, "constant", fonts.Small, charSmall, int(x), int(cy+38*scale), cfg.ColorTextDim)
		}
		if w == favored {
			centerText(screen, "+25%", fonts.Small, charSmall, int(x), int(cy-ch/2)+14, cfg.ColorGold)
		}
	}

	sel := cfg.WeaponTable[cfg.WeaponID(session.Cursor)]
	centerText(screen, sel.Desc, fonts.Small, charSmall, cx, int(session.ScreenH*0.78), cfg.ColorText)
	centerText(screen, "swipe to browse, tap to pick", fonts.Small, charSmall, cx, int(session.ScreenH)-16, cfg.ColorTextDim)
}

func drawCountdown(screen *ebiten.Image, session *components.SessionData) {
	cx := int(session.ScreenW / 2)
	label := "READY"
	if session.StateTime > cfg.CountdownTime*0.6 {
		label = "GO"
	}
	a := 1 - gamemath.Clamp((session.StateTime-cfg.CountdownTime*0.8)/(cfg.CountdownTime*0.2), 0, 1)
	centerText(screen, label, fonts.Title, charTitle, cx, int(session.ScreenH*0.4), fade(cfg.ColorText, a))
}

func drawPauseMenu(screen *ebiten.Image, session *components.SessionData) {
	vector.DrawFilledRect(screen, 0, 0, float32(session.ScreenW), float32(session.ScreenH), overlayColor, false)
	cx := int(session.ScreenW / 2)

	centerText(screen, "PAUSED", fonts.Title, charTitle, cx, int(session.ScreenH*0.3), cfg.ColorText)

	entries := [...]string{"RESUME", "RESTART", "QUIT"}
	for i, label := range entries {
		y := int(session.ScreenH*0.45) + i*34
		clr := cfg.ColorTextDim
		if i == session.Cursor {
			clr = cfg.ColorText
			centerText(screen, "> "+label+" <", fonts.Bold, charBold, cx, y, clr)
			continue
		}
		centerText(screen, label, fonts.Bold, charBold, cx, y, clr)
	}
	centerText(screen, "back: resume", fonts.Small, charSmall, cx, int(session.ScreenH)-16, cfg.ColorTextDim)
}

func drawLevelUp(e *ecs.ECS, screen *ebiten.Image, session *components.SessionData) {
	vector.DrawFilledRect(screen, 0, 0, float32(session.ScreenW), float32(session.ScreenH), overlayColor, false)
	cx := int(session.ScreenW / 2)
	cy := session.ScreenH*0.48 + (1-session.EntranceT)*26

	_, player := components.MustPlayer(e.World)
	offers := components.MustOffers(e.World)

	centerText(screen, "LEVEL UP", fonts.Title, charTitle, cx, 56, cfg.ColorGold)
	centerText(screen, fmt.Sprintf("%d points", player.Points), fonts.Bold, charBold, cx, 82, cfg.ColorText)

	for i := 0; i < offers.Count; i++ {
		o := &offers.Entries[i]
		x, scale := carouselCard(session, i, 140)
		w, h := 124*scale, 150*scale

		border := cfg.ColorDefense
		if o.Offense {
			border = cfg.ColorOffense
		}
		if o.Kind == components.OfferDone {
			border = cfg.ColorTextDim
		}
		if o.Purchased || o.Closed {
			border = fade(border, 0.35)
		}
		drawCardFrame(screen, x, cy, w, h, border, i == session.Cursor)

		titleClr := cfg.ColorText
		if o.Purchased || o.Closed {
			titleClr = cfg.ColorTextDim
		}
		centerText(screen, o.Title, fonts.Small, charSmall, int(x), int(cy-h*0.18), titleClr)

		switch {
		case o.Purchased:
			centerText(screen, "OWNED", fonts.Small, charSmall, int(x), int(cy+h*0.22), cfg.ColorTextDim)
		case o.Closed:
			centerText(screen, "LOCKED", fonts.Small, charSmall, int(x), int(cy+h*0.22), cfg.ColorTextDim)
		case o.Kind == components.OfferDone:
			// no price tag
		default:
			costClr := cfg.ColorGold
			if o.Cost > player.Points {
				costClr = cfg.ColorDanger
			}
			label := fmt.Sprintf("%d pt", o.Cost)
			if o.Cost > 1 {
				label += "s"
			}
			centerText(screen, label, fonts.Small, charSmall, int(x), int(cy+h*0.22), costClr)
		}
	}

	if session.Cursor < offers.Count {
		centerText(screen, offers.Entries[session.Cursor].Desc, fonts.Small, charSmall, cx, int(session.ScreenH*0.8), cfg.ColorText)
	}
	centerText(screen, "swipe down: bank points and fight on", fonts.Small, charSmall, cx, int(session.ScreenH)-16, cfg.ColorTextDim)
}

func drawEndScreen(e *ecs.ECS, screen *ebiten.Image, session *components.SessionData, title string, titleClr color.RGBA) {
	vector.DrawFilledRect(screen, 0, 0, float32(session.ScreenW), float32(session.ScreenH), overlayColor, false)
	cx := int(session.ScreenW / 2)

	centerText(screen, title, fonts.Title, charTitle, cx, int(session.ScreenH*0.22), titleClr)

	_, player := components.MustPlayer(e.World)
	score := FinalScore(session, player)
	centerText(screen, fmt.Sprintf("SCORE %d", score), fonts.Bold, charBold, cx, int(session.ScreenH*0.32), cfg.ColorGold)
	if session.NewBest {
		blink := 0.5 + 0.5*math.Sin(session.StateTime*4)
		centerText(screen, "NEW BEST", fonts.Small, charSmall, cx, int(session.ScreenH*0.32)+18, fade(cfg.ColorGold, 0.4+0.6*blink))
	}

	stats := [...]string{
		fmt.Sprintf("survived %d:%02d  wave %d  level %d", int(session.GameTime)/60, int(session.GameTime)%60, session.Wave+1, player.Level),
		fmt.Sprintf("kills %d  best combo %dx  best streak %d", session.Kills, session.BestCombo, session.BestStreak),
		fmt.Sprintf("dealt %d  taken %d  gems %d  potions %d", session.DamageDealt, session.DamageTaken, session.GemsCollected, session.PotionsUsed),
	}
	for i, line := range stats {
		centerText(screen, line, fonts.Small, charSmall, cx, int(session.ScreenH*0.46)+i*18, cfg.ColorText)
	}

	if session.StateTime >= 0.8 {
		blink := 0.5 + 0.5*math.Sin(session.StateTime*3)
		centerText(screen, "tap to go again", fonts.Regular, charSmall+1, cx, int(session.ScreenH*0.78), fade(cfg.ColorText, 0.4+0.6*blink))
		centerText(screen, "back: quit", fonts.Small, charSmall, cx, int(session.ScreenH)-16, cfg.ColorTextDim)
	}
}

// DrawOverlays is the last renderer: the damage vignette and the
// full-screen flash sit over everything, screens included.
func DrawOverlays(e *ecs.ECS, screen *ebiten.Image) {
	session := components.MustSession(e.World)

	if session.Vignette > 0 {
		a := gamemath.Clamp(session.Vignette, 0, 1)
		w, h := float32(session.ScreenW), float32(session.ScreenH)
		edge := fade(color.RGBA{160, 20, 20, 160}, a)
		soft := fade(color.RGBA{160, 20, 20, 70}, a)
		vector.DrawFilledRect(screen, 0, 0, w, 14, edge, false)
		vector.DrawFilledRect(screen, 0, h-14, w, 14, edge, false)
		vector.DrawFilledRect(screen, 0, 14, 14, h-28, edge, false)
		vector.DrawFilledRect(screen, w-14, 14, 14, h-28, edge, false)
		vector.DrawFilledRect(screen, 14, 14, w-28, 10, soft, false)
		vector.DrawFilledRect(screen, 14, h-24, w-28, 10, soft, false)
	}

	if session.FlashTime > 0 {
		a := gamemath.Clamp(session.FlashTime*8, 0, 1)
		vector.DrawFilledRect(screen, 0, 0, float32(session.ScreenW), float32(session.ScreenH),
			fade(session.FlashColor, a), false)
	}
}
