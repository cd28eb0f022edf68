// Package blocks is the falling-block plugin: a 10x16 well, seven
// tetromino kinds from a shuffled bag, and line clears that speed the
// game up every ten lines.
package blocks

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/score"
)

const (
	ID        = "blocks"
	ScoreMode = "blocks"
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
		Name:              "Blocks",
		Description:       "Ten columns, seven shapes, no mercy past level five.",
		Category:          plugin.CategoryGame,
		HandlesBackButton: true,
		Init:              g.init,
		Update:            g.update,
		Draw:              g.draw,
		Shutdown:          g.shutdown,
		WantsClose:        g.wantsClose,
	}
}

type game struct {
	w, h  float64
	board *Board

	fallTimer   float64
	scrollAccum float64

	flash      *gween.Tween
	flashAlpha float64
	fade       *gween.Tween
	fadeAlpha  float64

	overTime  float64
	submitted bool

	quit bool
}

func (g *game) init(width, height int) {
	g.w, g.h = float64(width), float64(height)
	g.start()
}

func (g *game) start() {
	g.board = NewBoard(plugin.Seed())
	g.fallTimer = 0
	g.scrollAccum = 0
	g.flash = nil
	g.flashAlpha = 0
	g.fade = nil
	g.fadeAlpha = 0
	g.overTime = 0
	g.submitted = false
}

func (g *game) update(in plugin.Input, dt float64) {
	if in.BackPressed {
		g.quit = true
		return
	}

	g.tickTweens(dt)

	if g.board.Over {
		g.updateOver(in, dt)
		return
	}

	// wheel notches become column moves
	g.scrollAccum += in.ScrollDelta
	for g.scrollAccum >= 1 {
		g.board.Move(1)
		g.scrollAccum--
	}
	for g.scrollAccum <= -1 {
		g.board.Move(-1)
		g.scrollAccum++
	}
	if in.SwipeRight {
		g.board.Move(1)
	}
	if in.SwipeLeft {
		g.board.Move(-1)
	}

	if in.Tap || in.UpPressed {
		g.board.Rotate()
	}

	cleared := 0
	if in.SwipeDown || in.Hold || in.SelectPressed {
		cleared = g.board.HardDrop()
		g.fallTimer = 0
	} else if in.DownPressed {
		cleared = g.board.SoftDrop()
		g.fallTimer = 0
	}

	g.fallTimer += dt
	for g.fallTimer >= g.board.FallInterval() {
		g.fallTimer -= g.board.FallInterval()
		cleared += g.board.Step()
		if g.board.Over {
			break
		}
	}

	if cleared > 0 {
		g.flash = gween.New(0.8, 0, 0.35, ease.OutQuad)
	}
	if g.board.Over {
		g.fade = gween.New(0, 0.75, 0.8, ease.Linear)
		g.overTime = 0
	}
}

func (g *game) tickTweens(dt float64) {
	if g.flash != nil {
		v, done := g.flash.Update(float32(dt))
		g.flashAlpha = float64(v)
		if done {
			g.flash = nil
			g.flashAlpha = 0
		}
	}
	if g.fade != nil {
		v, done := g.fade.Update(float32(dt))
		g.fadeAlpha = float64(v)
		if done {
			g.fade = nil
		}
	}
}

func (g *game) updateOver(in plugin.Input, dt float64) {
	g.overTime += dt
	if !g.submitted {
		g.submitted = true
		if scores != nil && g.board.Score > 0 {
			scores.Submit(ScoreMode, g.board.Score)
		}
	}
	// brief grace so a late drop tap cannot skip the screen
	if g.overTime > 0.5 && in.AnyPress() {
		g.start()
	}
}

func (g *game) shutdown() {
	g.board = nil
	g.flash = nil
	g.fade = nil
}

func (g *game) wantsClose() bool {
	return g.quit
}
