package systems

import (
	"image/color"
	"math"

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

// cullPad keeps entities from popping at the screen edge.
const cullPad = 48.0

// worldOffset resolves the camera into the world-to-screen translation,
// shake included. ok is false outside a run, when there is no world to
// draw.
func worldOffset(e *ecs.ECS) (float64, float64, bool) {
	if _, ok := components.Player.First(e.World); !ok {
		return 0, 0, false
	}
	session := components.MustSession(e.World)
	cam := components.MustCamera(e.World)
	shx, shy := cameraShakeOffset(session)
	return session.ScreenW/2 - cam.X + shx, session.ScreenH/2 - cam.Y + shy, true
}

func onScreen(session *components.SessionData, sx, sy, pad float64) bool {
	return sx >= -pad && sx <= session.ScreenW+pad &&
		sy >= -pad && sy <= session.ScreenH+pad
}

// fade scales a premultiplied color by a, clamped to [0,1].
func fade(c color.RGBA, a float64) color.RGBA {
	a = gamemath.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// DrawWorld fills the arena: backdrop, grid lines, bounds, ground
// zones and the spawn telegraphs.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := worldOffset(e)
	if !ok {
		return
	}
	session := components.MustSession(e.World)

	screen.Fill(cfg.ColorBackground)

	// grid lines, drawn only across the visible span
	step := gridCellSize
	startX := math.Max(0, math.Floor(-ox/step)*step)
	endX := math.Min(cfg.World.Width, startX+session.ScreenW+2*step)
	for x := startX; x <= endX; x += step {
		vector.StrokeLine(screen,
			float32(x+ox), float32(math.Max(0, -oy)+oy),
			float32(x+ox), float32(math.Min(cfg.World.Height, session.ScreenH-oy)+oy),
			1, cfg.ColorGridLine, false)
	}
	startY := math.Max(0, math.Floor(-oy/step)*step)
	endY := math.Min(cfg.World.Height, startY+session.ScreenH+2*step)
	for y := startY; y <= endY; y += step {
		vector.StrokeLine(screen,
			float32(math.Max(0, -ox)+ox), float32(y+oy),
			float32(math.Min(cfg.World.Width, session.ScreenW-ox)+ox), float32(y+oy),
			1, cfg.ColorGridLine, false)
	}

	// arena edge
	vector.StrokeRect(screen, float32(ox), float32(oy),
		float32(cfg.World.Width), float32(cfg.World.Height),
		2, cfg.ColorTextDim, false)

	components.Zone.Each(e.World, func(entry *donburi.Entry) {
		z := components.Zone.Get(entry)
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy
		if !onScreen(session, sx, sy, z.Radius+cullPad) {
			return
		}
		row := cfg.ZoneTable[z.Kind]
		a := gamemath.Clamp(z.Life/1.5, 0, 1) // fade out at end of life
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(z.Radius), fade(row.Color, a), true)
		rim := row.Color
		rim.A = 200
		pulse := 1 + 0.03*math.Sin(session.GameTime*3)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(z.Radius*pulse), 2, fade(rim, a), true)
	})

	spawner := components.MustSpawner(e.World)
	for i := 0; i < spawner.Count; i++ {
		p := &spawner.Pending[i]
		sx, sy := p.X+ox, p.Y+oy
		if !onScreen(session, sx, sy, cullPad) {
			continue
		}
		row := cfg.EnemyTable[p.Type]
		// closing ring, blinking faster as the arrival nears
		frac := 1 - p.Timer/cfg.SpawnWarning
		r := row.Size + 14 - 10*frac
		blink := 0.5 + 0.5*math.Sin(p.Timer*40)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(r), 2,
			fade(cfg.ColorDanger, 0.4+0.6*blink), true)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), 2, fade(row.Color, blink), true)
	}
}

// DrawPickups renders gems and potions with their hover bob.
func DrawPickups(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := worldOffset(e)
	if !ok {
		return
	}
	session := components.MustSession(e.World)

	components.Gem.Each(e.World, func(entry *donburi.Entry) {
		g := components.Gem.Get(entry)
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy+bobOffset(g.BobPhase)
		if !onScreen(session, sx, sy, cullPad) {
			return
		}

		size, clr := 3.0, cfg.ColorXPBar
		switch {
		case g.Value >= cfg.Pickups.GemLarge:
			size, clr = 6, cfg.ColorGold
		case g.Value >= cfg.Pickups.GemMedium:
			size, clr = 4.5, color.RGBA{120, 255, 160, 255}
		}

		glow := 0.65 + 0.35*math.Sin(g.BobPhase*1.7)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(size+2), fade(clr, 0.25*glow), true)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(size), fade(clr, glow), true)
	})

	components.Potion.Each(e.World, func(entry *donburi.Entry) {
		p := components.Potion.Get(entry)
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy+bobOffset(p.BobPhase)
		if !onScreen(session, sx, sy, cullPad) {
			return
		}
		row := cfg.PotionTable[p.Kind]
		a := 1.0
		if p.Life < 3 { // blink before despawning
			a = 0.4 + 0.6*math.Abs(math.Sin(p.Life*6))
		}
		vector.DrawFilledRect(screen, float32(sx-4), float32(sy-5), 8, 10, fade(row.Color, a), true)
		vector.DrawFilledRect(screen, float32(sx-2), float32(sy-8), 4, 3, fade(cfg.ColorTextDim, a), true)
	})
}

// DrawEnemies renders every live enemy with its type shape, status
// tints and the per-type telegraphs.
func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := worldOffset(e)
	if !ok {
		return
	}
	session := components.MustSession(e.World)

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy
		if !onScreen(session, sx, sy, en.Size+cullPad) {
			return
		}
		drawEnemy(screen, session, en, sx, sy)
	})
}

func drawEnemy(screen *ebiten.Image, session *components.SessionData, en *components.EnemyData, sx, sy float64) {
	row := cfg.EnemyTable[en.Type]
	clr := row.Color
	alpha := 1.0

	// phased enemies are ghosts: visible enough to track, untouchable
	if en.Type == cfg.EnemyPhaser && en.AIPhase == phaserPhased {
		alpha = 0.25 + 0.1*math.Sin(session.GameTime*10)
	}

	if en.SlowTimer > 0 {
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(en.Size+2), 1.5,
			fade(color.RGBA{140, 200, 255, 180}, alpha), true)
	}

	if en.Champion {
		glow := 0.5 + 0.5*math.Sin(session.GameTime*4)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(en.Size+4+2*glow), 2,
			fade(cfg.ColorGold, alpha*(0.4+0.4*glow)), true)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(en.Size+8), 1,
			fade(affixColor(en.Affix), alpha*0.8), true)
	}

	switch en.Type {
	case cfg.EnemyHornet:
		drawHornet(screen, en, sx, sy, alpha)
	case cfg.EnemyShielder:
		drawShielder(screen, en, sx, sy, alpha)
	case cfg.EnemySpinner:
		drawSpinner(screen, session, en, sx, sy, alpha)
	case cfg.EnemyTank:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size), fade(clr, alpha), true)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(en.Size*0.6), 2,
			fade(cfg.ColorBackground, alpha), true)
	case cfg.EnemyBrute:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size), fade(clr, alpha), true)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size*0.5),
			fade(color.RGBA{90, 20, 20, 255}, alpha), true)
	case cfg.EnemyBomber:
		a := alpha
		if en.AIPhase == 1 { // rearming, wide open
			a *= 0.6
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(en.Size+5), 1.5,
				fade(cfg.ColorText, alpha*0.5), true)
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size), fade(clr, a), true)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy-en.Size), 2.5, fade(cfg.ColorDanger, a), true)
	case cfg.EnemyElite:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size), fade(clr, alpha), true)
		for i := 0; i < 4; i++ {
			a := session.GameTime*1.5 + float64(i)*math.Pi/2
			vector.StrokeLine(screen, float32(sx), float32(sy),
				float32(sx+math.Cos(a)*(en.Size+5)), float32(sy+math.Sin(a)*(en.Size+5)),
				2, fade(clr, alpha*0.8), true)
		}
	case cfg.EnemyBoss:
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(en.Size+6+3*math.Sin(session.GameTime*2)), 2,
			fade(clr, alpha*0.5), true)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size), fade(clr, alpha), true)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size*0.45),
			fade(color.RGBA{40, 0, 10, 255}, alpha), true)
	default:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size), fade(clr, alpha), true)
	}

	// the real mirror tints while its decoys pop out
	if en.Type == cfg.EnemyMirror && !en.Decoy && en.AITimer2 > 0 {
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(en.Size+3), 2,
			fade(cfg.ColorText, en.AITimer2/cfg.MirrorRevealTime), true)
	}

	if en.HitFlash > 0 {
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size),
			fade(color.RGBA{255, 255, 255, 255}, en.HitFlash*2.4), true)
	}

	// health sliver for wounded regulars; the boss owns a HUD bar
	if !en.Decoy && en.Type != cfg.EnemyBoss && en.Health < en.MaxHealth {
		w := en.Size * 2
		frac := gamemath.Clamp(float64(en.Health)/float64(en.MaxHealth), 0, 1)
		y := sy - en.Size - 6
		vector.DrawFilledRect(screen, float32(sx-w/2), float32(y), float32(w), 3, cfg.ColorHPBack, false)
		vector.DrawFilledRect(screen, float32(sx-w/2), float32(y), float32(w*frac), 3, cfg.ColorDanger, false)
	}
}

func affixColor(a cfg.ChampionAffix) color.RGBA {
	switch a {
	case cfg.AffixSwift:
		return color.RGBA{120, 230, 140, 255}
	case cfg.AffixVampiric:
		return color.RGBA{235, 64, 52, 255}
	case cfg.AffixArmored:
		return color.RGBA{170, 170, 185, 255}
	case cfg.AffixSplitter:
		return color.RGBA{190, 100, 255, 255}
	}
	return cfg.ColorGold
}

func drawHornet(screen *ebiten.Image, en *components.EnemyData, sx, sy, alpha float64) {
	row := cfg.EnemyTable[cfg.EnemyHornet]
	bx := sx + math.Cos(en.AIAngle)*cfg.HornetBeamLen
	by := sy + math.Sin(en.AIAngle)*cfg.HornetBeamLen

	switch en.AIPhase {
	case hornetCharging:
		// thin aim line that firms up as the shot charges
		frac := 1 - en.AITimer/cfg.HornetChargeTime
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(bx), float32(by),
			1, fade(cfg.ColorDanger, 0.2+0.6*frac), true)
	case hornetFiring:
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(bx), float32(by),
			float32(cfg.HornetBeamWidth), fade(row.Color, 0.35), true)
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(bx), float32(by),
			3, fade(color.RGBA{255, 255, 220, 255}, 0.9), true)
	}

	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size), fade(row.Color, alpha), true)
	// wing ticks
	for _, side := range [...]float64{-1, 1} {
		a := en.AIAngle + side*2.2
		vector.StrokeLine(screen, float32(sx), float32(sy),
			float32(sx+math.Cos(a)*en.Size*1.5), float32(sy+math.Sin(a)*en.Size*1.5),
			2, fade(row.Color, alpha*0.7), true)
	}
}

func drawShielder(screen *ebiten.Image, en *components.EnemyData, sx, sy, alpha float64) {
	row := cfg.EnemyTable[cfg.EnemyShielder]
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size), fade(row.Color, alpha), true)

	// the blocking arc, traced in short segments
	const segs = 6
	start := en.AIAngle - cfg.ShieldFrontArc/2
	r := en.Size + 4
	for i := 0; i < segs; i++ {
		a1 := start + cfg.ShieldFrontArc*float64(i)/segs
		a2 := start + cfg.ShieldFrontArc*float64(i+1)/segs
		vector.StrokeLine(screen,
			float32(sx+math.Cos(a1)*r), float32(sy+math.Sin(a1)*r),
			float32(sx+math.Cos(a2)*r), float32(sy+math.Sin(a2)*r),
			3, fade(color.RGBA{200, 220, 255, 255}, alpha*0.9), true)
	}
	if en.AIPhase == 1 { // charging: trail
		vector.StrokeLine(screen, float32(sx), float32(sy),
			float32(sx-en.AIDirX*en.Size*2), float32(sy-en.AIDirY*en.Size*2),
			2, fade(row.Color, alpha*0.5), true)
	}
}

func drawSpinner(screen *ebiten.Image, session *components.SessionData, en *components.EnemyData, sx, sy, alpha float64) {
	row := cfg.EnemyTable[cfg.EnemySpinner]
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size), fade(row.Color, alpha), true)
	for i := 0; i < 4; i++ {
		a := en.AIAngle + float64(i)*math.Pi/2
		vector.DrawFilledCircle(screen,
			float32(sx+math.Cos(a)*en.Size), float32(sy+math.Sin(a)*en.Size),
			3, fade(cfg.ColorText, alpha), true)
	}
	if en.AIPhase == spinnerOpen {
		// shell open: the soft core shows
		blink := 0.6 + 0.4*math.Sin(session.GameTime*12)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(en.Size*0.5),
			fade(color.RGBA{255, 255, 255, 255}, alpha*blink), true)
	} else {
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(en.Size*0.55), 2,
			fade(cfg.ColorBackground, alpha), true)
	}
}

// DrawEnemyFX renders hostile projectiles and mines above the bodies.
func DrawEnemyFX(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := worldOffset(e)
	if !ok {
		return
	}
	session := components.MustSession(e.World)

	components.Mine.Each(e.World, func(entry *donburi.Entry) {
		m := components.Mine.Get(entry)
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy
		if !onScreen(session, sx, sy, m.Radius+cullPad) {
			return
		}
		// the blink accelerates as the fuse runs down
		frac := gamemath.Clamp(m.Fuse/cfg.MineFuseTime, 0, 1)
		blink := 0.5 + 0.5*math.Sin((1-frac)*(1-frac)*60+session.GameTime*6)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(m.Radius), 1,
			fade(cfg.ColorDanger, 0.15+0.25*(1-frac)), true)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), 5, fade(cfg.EnemyTable[cfg.EnemyBomber].Color, 1), true)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), 2.5, fade(cfg.ColorDanger, blink), true)
	})

	components.EnemyBullet.Each(e.World, func(entry *donburi.Entry) {
		b := components.EnemyBullet.Get(entry)
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy
		if !onScreen(session, sx, sy, cullPad) {
			return
		}
		speed := math.Hypot(b.VX, b.VY)
		if speed > 0 {
			vector.StrokeLine(screen, float32(sx), float32(sy),
				float32(sx-b.VX/speed*8), float32(sy-b.VY/speed*8),
				2, fade(cfg.ColorDanger, 0.4), true)
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), 4, color.RGBA{255, 120, 150, 255}, true)
	})
}

// DrawWeaponFX renders every live weapon effect: orbit orbs, nova
// rings, sky strikes, chain arcs, venom clouds, glaives, seekers and
// plain shots.
func DrawWeaponFX(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := worldOffset(e)
	if !ok {
		return
	}
	session := components.MustSession(e.World)
	loadout := components.MustLoadout(e.World)

	// orbit ring
	if loadout.Slots[cfg.WeaponRadius].Unlocked {
		if pentry, pok := components.Player.First(e.World); pok {
			ppos := components.Position.Get(pentry)
			n, size, radius, _, _ := orbParams(e)
			clr := cfg.WeaponTable[cfg.WeaponRadius].Color
			vector.StrokeCircle(screen, float32(ppos.X+ox), float32(ppos.Y+oy), float32(radius), 1,
				fade(clr, 0.15), true)
			for i := 0; i < n; i++ {
				wx, wy := orbPosition(loadout, radius, ppos.X, ppos.Y, i, n)
				vector.DrawFilledCircle(screen, float32(wx+ox), float32(wy+oy), float32(size), clr, true)
				vector.DrawFilledCircle(screen, float32(wx+ox), float32(wy+oy), float32(size*0.45),
					color.RGBA{255, 255, 255, 200}, true)
			}
		}
	}

	for i := range loadout.Rings {
		ring := &loadout.Rings[i]
		if !ring.Active {
			continue
		}
		clr := cfg.WeaponTable[cfg.WeaponMagic].Color
		if ring.SlowTime > 0 {
			clr = color.RGBA{150, 210, 255, 255}
		}
		a := 1 - ring.R/ring.MaxR
		vector.StrokeCircle(screen, float32(ring.X+ox), float32(ring.Y+oy), float32(ring.R),
			float32(2+4*a), fade(clr, 0.25+0.75*a), true)
	}

	for i := range loadout.Strikes {
		st := &loadout.Strikes[i]
		if !st.Active {
			continue
		}
		sx, sy := st.X+ox, st.Y+oy
		clr := cfg.WeaponTable[cfg.WeaponMystic].Color
		frac := 1 - st.Timer/cfg.MysticStrikeDelay // 0 fresh, 1 landing
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(st.Radius*(1-0.4*frac)), 1.5,
			fade(clr, 0.3+0.5*frac), true)
		// the column flickers in from above as the bolt nears
		vector.StrokeLine(screen, float32(sx), float32(sy-220*(1-frac)), float32(sx), float32(sy),
			float32(1+3*frac), fade(clr, 0.2+0.6*frac), true)
	}

	for i := range loadout.Chains {
		chain := &loadout.Chains[i]
		for s := 0; s < chain.SegCount; s++ {
			seg := &chain.Segs[s]
			a := seg.Time / cfg.ChainFlashTime
			vector.StrokeLine(screen,
				float32(seg.X1+ox), float32(seg.Y1+oy),
				float32(seg.X2+ox), float32(seg.Y2+oy),
				3, fade(cfg.WeaponTable[cfg.WeaponChain].Color, a), true)
			vector.StrokeLine(screen,
				float32(seg.X1+ox), float32(seg.Y1+oy),
				float32(seg.X2+ox), float32(seg.Y2+oy),
				1, fade(color.RGBA{255, 255, 255, 255}, a*0.8), true)
		}
	}

	components.Cloud.Each(e.World, func(entry *donburi.Entry) {
		c := components.Cloud.Get(entry)
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy
		if !onScreen(session, sx, sy, c.Radius+cullPad) {
			return
		}
		clr := cfg.WeaponTable[cfg.WeaponVenom].Color
		a := gamemath.Clamp(c.Life/0.8, 0, 1)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(c.Radius), fade(clr, 0.18*a), true)
		// drifting inner blobs sell the gas
		for i := 0; i < 3; i++ {
			t := session.GameTime*0.8 + float64(i)*2.1
			bx := sx + math.Cos(t)*c.Radius*0.45
			by := sy + math.Sin(t*1.3)*c.Radius*0.45
			vector.DrawFilledCircle(screen, float32(bx), float32(by), float32(c.Radius*0.3), fade(clr, 0.12*a), true)
		}
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(c.Radius), 1.5, fade(clr, 0.5*a), true)
	})

	components.Boomerang.Each(e.World, func(entry *donburi.Entry) {
		b := components.Boomerang.Get(entry)
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy
		if !onScreen(session, sx, sy, cullPad) {
			return
		}
		clr := cfg.WeaponTable[cfg.WeaponBoomerang].Color
		for i := 0; i < 2; i++ {
			a := b.Spin + float64(i)*math.Pi/2
			vector.StrokeLine(screen,
				float32(sx-math.Cos(a)*b.Size), float32(sy-math.Sin(a)*b.Size),
				float32(sx+math.Cos(a)*b.Size), float32(sy+math.Sin(a)*b.Size),
				3, clr, true)
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), 2.5, color.RGBA{255, 255, 255, 220}, true)
	})

	components.Seeker.Each(e.World, func(entry *donburi.Entry) {
		s := components.Seeker.Get(entry)
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy
		if !onScreen(session, sx, sy, cullPad) {
			return
		}
		clr := cfg.WeaponTable[cfg.WeaponSeeker].Color
		nx, ny := math.Cos(s.Angle), math.Sin(s.Angle)
		vector.StrokeLine(screen,
			float32(sx-nx*9), float32(sy-ny*9), float32(sx+nx*5), float32(sy+ny*5),
			4, clr, true)
		vector.DrawFilledCircle(screen, float32(sx+nx*5), float32(sy+ny*5), 2.5,
			color.RGBA{255, 240, 200, 255}, true)
	})

	components.PlayerBullet.Each(e.World, func(entry *donburi.Entry) {
		b := components.PlayerBullet.Get(entry)
		pos := components.Position.Get(entry)
		sx, sy := pos.X+ox, pos.Y+oy
		if !onScreen(session, sx, sy, cullPad) {
			return
		}
		clr := cfg.WeaponTable[cfg.WeaponDistance].Color
		speed := math.Hypot(b.VX, b.VY)
		if speed > 0 {
			vector.StrokeLine(screen, float32(sx), float32(sy),
				float32(sx-b.VX/speed*10), float32(sy-b.VY/speed*10),
				2, fade(clr, 0.45), true)
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), 3.5, clr, true)
	})
}

// DrawPlayer renders the hero: class-tinted body, facing tick, shield
// bubble and the post-hit blink.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := worldOffset(e)
	if !ok {
		return
	}
	session := components.MustSession(e.World)
	entry, player := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)
	sx, sy := pos.X+ox, pos.Y+oy

	// invulnerability blink, suppressed while a shield absorbs anyway
	if player.Invuln > 0 && player.BuffShield <= 0 &&
		int(player.Invuln*10)%2 == 0 && player.Health > 0 {
		return
	}

	if player.BuffMagnet > 0 {
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(player.MagnetRange()), 1,
			fade(cfg.PotionTable[cfg.PotionMagnet].Color, 0.2), true)
	}

	body := cfg.ColorPlayer
	if player.HurtFlash > 0 {
		body = cfg.ColorDanger
	}
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(cfg.Player.Size), body, true)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(cfg.Player.Size*0.55),
		cfg.ClassTable[player.Class].Color, true)

	// facing tick doubles as the movement indicator
	tip := cfg.Player.Size + 6
	if player.Moving {
		tip += 3
	}
	vector.StrokeLine(screen, float32(sx), float32(sy),
		float32(sx+math.Cos(player.Facing)*tip), float32(sy+math.Sin(player.Facing)*tip),
		3, cfg.ColorText, true)

	if player.BuffShield > 0 {
		wob := 0.5 + 0.5*math.Sin(session.GameTime*8)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(cfg.Player.Size+5), 2,
			fade(cfg.PotionTable[cfg.PotionShield].Color, 0.5+0.4*wob), true)
	}
	if player.BuffDamage > 0 {
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(cfg.Player.Size+9), 1,
			fade(cfg.PotionTable[cfg.PotionDamage].Color, 0.4), true)
	}
}

// DrawParticles renders the world-space pools: flecks then popups.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := worldOffset(e)
	if !ok {
		return
	}
	session := components.MustSession(e.World)

	particles := components.MustParticles(e.World)
	for i := range particles.Items {
		p := &particles.Items[i]
		if p.Life <= 0 {
			continue
		}
		sx, sy := p.X+ox, p.Y+oy
		if !onScreen(session, sx, sy, cullPad) {
			continue
		}
		frac := p.Life / p.MaxLife
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(p.Size*frac+0.5),
			fade(p.Color, frac), false)
	}

	popups := components.MustPopups(e.World)
	small := fonts.Small.Get()
	big := fonts.Bold.Get()
	for i := range popups.Items {
		p := &popups.Items[i]
		if p.Life <= 0 {
			continue
		}
		sx, sy := p.X+ox, p.Y+oy
		if !onScreen(session, sx, sy, cullPad) {
			continue
		}
		face, per := small, 7
		if p.Big {
			face, per = big, 10
		}
		x := int(sx) - len(p.Text)*per/2
		y := int(sy)
		a := gamemath.Clamp(p.Life/(p.MaxLife*0.5), 0, 1)
		text.Draw(screen, p.Text, face, x+1, y+1, fade(color.RGBA{0, 0, 0, 200}, a))
		text.Draw(screen, p.Text, face, x, y, fade(p.Color, a))
	}
}
