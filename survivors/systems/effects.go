package systems

import (
	"image/color"
	"math"
	"strconv"

	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

func itoa(n int) string { return strconv.Itoa(n) }

// burst sprays n particles out of a point. Speed is the upper bound of
// the launch velocity; every spawn site in the game goes through here.
func burst(e *ecs.ECS, x, y float64, n int, c color.RGBA, speed float64) {
	session := components.MustSession(e.World)
	particles := components.MustParticles(e.World)
	for i := 0; i < n; i++ {
		ang := session.Rand.Angle()
		v := session.Rand.Range(speed*0.3, speed)
		particles.Spawn(components.Particle{
			X: x, Y: y,
			VX:    v * math.Cos(ang),
			VY:    v * math.Sin(ang),
			Life:  session.Rand.Range(0.25, 0.6),
			Size:  session.Rand.Range(1.5, 3.5),
			Drag:  4,
			Color: c,
		})
	}
}

// popDamage floats a short text at a world position.
func popDamage(e *ecs.ECS, x, y float64, text string, big bool, c color.RGBA) {
	popups := components.MustPopups(e.World)
	life := 0.7
	if big {
		life = 1.0
	}
	popups.Spawn(components.Popup{
		X: x, Y: y,
		Text: text, Life: life, Big: big, Color: c,
	})
}

// uiSpark launches a screen-space spark that homes to (tx,ty).
func uiSpark(e *ecs.ECS, x, y, tx, ty float64, c color.RGBA) {
	session := components.MustSession(e.World)
	sparks := components.MustUIParticles(e.World)
	ang := session.Rand.Angle()
	v := session.Rand.Range(120, 260)
	sparks.Spawn(components.UIParticle{
		X: x, Y: y,
		VX: v * math.Cos(ang), VY: v * math.Sin(ang),
		TX: tx, TY: ty,
		Life:  1.2,
		Color: c,
	})
}

// UpdateEffects advances the feedback pools. It runs outside the
// gameplay gate so popups and sparks keep moving through hitstop and on
// the end screens; the pause and level-up overlays freeze the world
// pools to match the frozen simulation behind them.
func UpdateEffects(e *ecs.ECS) {
	session := components.MustSession(e.World)

	dt := session.RawDt
	switch session.State {
	case cfg.StatePaused, cfg.StateLevelUp:
		dt = 0
	}

	components.MustParticles(e.World).Update(dt)
	components.MustPopups(e.World).Update(dt)
	components.MustUIParticles(e.World).Update(session.RawDt)
	components.MustAnnouncements(e.World).Update(session.RawDt)
}
