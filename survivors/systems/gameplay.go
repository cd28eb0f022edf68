package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/score"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// Per-frame state handed over by the plugin before ecs.Update runs.
// Systems take no parameters, so the frame input and wall-clock delta
// travel through these.
var (
	frameInput plugin.Input
	frameDt    float64
	scores     score.Store
)

// SetFrame stores the host input and delta for the coming update.
func SetFrame(in plugin.Input, dt float64) {
	frameInput = in
	frameDt = dt
}

// SetScoreStore wires the persistence backend. A nil store disables
// best-score tracking.
func SetScoreStore(s score.Store) {
	scores = s
}

// ScoreMode is the key runs are recorded under.
const ScoreMode = "survivors"

// WantsQuit reports whether the player asked to leave the plugin.
func WantsQuit(e *ecs.ECS) bool {
	return components.MustSession(e.World).WantsQuit
}

// gameplayActive reports whether simulation systems should run this
// frame: playing state, no hitstop, and a live tick.
func gameplayActive(e *ecs.ECS) bool {
	session := components.MustSession(e.World)
	return session.State == cfg.StatePlaying && session.Hitstop <= 0 && session.Dt > 0
}

// WithGameplayChecks wraps a system to run only while the simulation
// is live. Menus, pauses, the countdown and hitstop all gate it off.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !gameplayActive(e) {
			return
		}
		system(e)
	}
}
