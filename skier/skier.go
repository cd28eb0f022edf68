// Package skier is the endless-downhill plugin: steer a skier through
// slalom gates while rocks and trees slide up the slope. One hit ends
// the run; every gate threaded is a point.
package skier

import (
	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/score"
)

const (
	ID        = "skier"
	ScoreMode = "skier"
)

func init() {
	plugin.Register(ID, New)
}

var scores score.Store

// SetScoreStore wires best-score persistence into every future
// instance. The host calls this once before launching anything.
func SetScoreStore(s score.Store) {
	scores = s
}

// New builds a fresh plugin instance.
func New() *plugin.Plugin {
	g := &game{}
	return &plugin.Plugin{
		Name:              "Skier",
		Description:       "Thread the gates, miss the rocks. The hill only gets faster.",
		Category:          plugin.CategoryGame,
		HandlesBackButton: true,
		Init:              g.init,
		Update:            g.update,
		Draw:              g.draw,
		Shutdown:          g.shutdown,
		WantsClose:        g.wantsClose,
	}
}

// scrollSteer converts one wheel notch into sideways pixels.
const scrollSteer = 18.0

type game struct {
	w, h   float64
	course *course

	overTime  float64
	submitted bool

	quit bool
}

func (g *game) init(width, height int) {
	g.w, g.h = float64(width), float64(height)
	g.start()
}

func (g *game) start() {
	g.course = newCourse(plugin.Seed(), g.w, g.h)
	g.overTime = 0
	g.submitted = false
}

func (g *game) update(in plugin.Input, dt float64) {
	if in.BackPressed {
		g.quit = true
		return
	}

	if g.course.crashed {
		g.updateOver(in, dt)
		return
	}

	if in.DragActive {
		g.course.steer(in.DragDeltaX)
	}
	if in.ScrollDelta != 0 {
		g.course.steer(in.ScrollDelta * scrollSteer)
	}
	if in.SwipeLeft {
		g.course.steer(-48)
	}
	if in.SwipeRight {
		g.course.steer(48)
	}

	g.course.advance(dt)
}

func (g *game) updateOver(in plugin.Input, dt float64) {
	g.overTime += dt
	if !g.submitted {
		g.submitted = true
		if scores != nil && g.course.score > 0 {
			scores.Submit(ScoreMode, g.course.score)
		}
	}
	if g.overTime > 0.5 && in.AnyPress() {
		g.start()
	}
}

func (g *game) shutdown() {
	g.course = nil
}

func (g *game) wantsClose() bool {
	return g.quit
}
