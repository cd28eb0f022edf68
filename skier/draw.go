package skier

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pautown/llizard-plugins/fonts"
)

var (
	colorSnow    = color.RGBA{228, 232, 240, 255}
	colorInk     = color.RGBA{30, 34, 44, 255}
	colorDim     = color.RGBA{120, 128, 140, 255}
	colorFlag    = color.RGBA{235, 64, 52, 255}
	colorScored  = color.RGBA{70, 200, 90, 255}
	colorRock    = color.RGBA{130, 132, 140, 255}
	colorTrunk   = color.RGBA{110, 80, 50, 255}
	colorTree    = color.RGBA{40, 140, 70, 255}
	colorSkier   = color.RGBA{30, 90, 200, 255}
	colorOverlay = color.RGBA{0, 0, 0, 150}
)

const (
	charSmall = 7
	charBold  = 10
	charTitle = 16
)

func (g *game) draw(dst *ebiten.Image) {
	dst.Fill(colorSnow)
	c := g.course

	// sparse moguls scrolling with the terrain sell the descent
	for i := 0; i < 24; i++ {
		y := math.Mod(float64(i)*53+c.traveled*0.9, g.h+40) - 20
		x := math.Mod(float64(i)*137+31, g.w)
		vector.DrawFilledCircle(dst, float32(x), float32(y), 2, color.RGBA{205, 210, 222, 255}, false)
	}

	for _, o := range c.objects {
		switch {
		case o.HasTags(tagGate):
			clr := colorFlag
			if o.Data.(*gateState).scored {
				clr = colorScored
			}
			drawFlag(dst, o.X-4, o.Y, clr)
			drawFlag(dst, o.X+o.W, o.Y, clr)
		case o.Data == kindTree:
			vector.DrawFilledRect(dst, float32(o.X+o.W/2-2), float32(o.Y+o.H-7), 4, 7, colorTrunk, false)
			vector.DrawFilledRect(dst, float32(o.X+2), float32(o.Y+8), float32(o.W-4), float32(o.H-14), colorTree, false)
			vector.DrawFilledRect(dst, float32(o.X+4), float32(o.Y), float32(o.W-8), 10, colorTree, false)
		default:
			vector.DrawFilledRect(dst, float32(o.X), float32(o.Y+3), float32(o.W), float32(o.H-3), colorRock, false)
			vector.DrawFilledRect(dst, float32(o.X+3), float32(o.Y), float32(o.W-6), float32(o.H), colorRock, false)
		}
	}

	vector.DrawFilledCircle(dst, float32(c.x), float32(skierY), skierR, colorSkier, true)
	vector.StrokeLine(dst, float32(c.x-4), float32(skierY+skierR+2),
		float32(c.x-4), float32(skierY+skierR+8), 2, colorInk, false)
	vector.StrokeLine(dst, float32(c.x+4), float32(skierY+skierR+2),
		float32(c.x+4), float32(skierY+skierR+8), 2, colorInk, false)

	text.Draw(dst, fmt.Sprintf("GATES %d", c.score), fonts.Bold.Get(), 12, 24, colorInk)
	text.Draw(dst, fmt.Sprintf("%.0f m", c.traveled/10), fonts.Small.Get(), 12, 42, colorDim)
	if scores != nil {
		if best := scores.Best(ScoreMode); best > 0 {
			text.Draw(dst, fmt.Sprintf("BEST %d", best), fonts.Small.Get(), 12, 58, colorDim)
		}
	}

	if c.crashed {
		g.drawOver(dst)
	}
}

// drawFlag draws one slalom pole with its pennant, anchored at the
// pole's top-left.
func drawFlag(dst *ebiten.Image, x, y float64, clr color.RGBA) {
	vector.DrawFilledRect(dst, float32(x), float32(y), 3, 14, colorInk, false)
	vector.DrawFilledRect(dst, float32(x+3), float32(y), 8, 6, clr, false)
}

func (g *game) drawOver(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, float32(g.w), float32(g.h), colorOverlay, false)
	cx := int(g.w / 2)

	centerText(dst, "WIPEOUT", fonts.Title, charTitle, cx, int(g.h*0.4), colorFlag)
	centerText(dst, fmt.Sprintf("%d gates, %.0f m", g.course.score, g.course.traveled/10),
		fonts.Bold, charBold, cx, int(g.h*0.52), colorSnow)

	blink := 0.5 + 0.5*math.Sin(g.overTime*3)
	a := 0.4 + 0.6*blink
	centerText(dst, "tap to ride again", fonts.Regular, charSmall+1, cx, int(g.h*0.68),
		color.RGBA{uint8(228 * a), uint8(232 * a), uint8(240 * a), uint8(255 * a)})
	centerText(dst, "back: quit", fonts.Small, charSmall, cx, int(g.h)-16, colorDim)
}

func centerText(dst *ebiten.Image, s string, face fonts.FontName, per int, cx, y int, clr color.Color) {
	text.Draw(dst, s, face.Get(), cx-len(s)*per/2, y, clr)
}
