package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// UpdateCamera eases the view toward the player and keeps the screen
// rectangle inside the arena.
func UpdateCamera(e *ecs.ECS) {
	session := components.MustSession(e.World)
	cam := components.MustCamera(e.World)

	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	pos := components.Position.Get(entry)

	rate := math.Min(1, cfg.Camera.FollowRate*session.Dt)
	cam.X += (pos.X - cam.X) * rate
	cam.Y += (pos.Y - cam.Y) * rate

	halfW, halfH := session.ScreenW/2, session.ScreenH/2
	cam.X = gamemath.Clamp(cam.X, halfW, cfg.World.Width-halfW)
	cam.Y = gamemath.Clamp(cam.Y, halfH, cfg.World.Height-halfH)
}

// cameraShakeOffset is the draw-time jitter. Oscillation instead of
// randomness keeps the simulation's RNG stream untouched.
func cameraShakeOffset(session *components.SessionData) (float64, float64) {
	if session.ShakeTime <= 0 || session.ShakeMag <= 0 {
		return 0, 0
	}
	t := session.StateTime * 60
	return math.Sin(t*1.1) * session.ShakeMag, math.Cos(t*1.3) * session.ShakeMag
}
