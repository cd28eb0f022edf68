package blocks

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pautown/llizard-plugins/fonts"
)

const cellPx = 26

var (
	colorBackground = color.RGBA{16, 16, 24, 255}
	colorWell       = color.RGBA{24, 24, 34, 240}
	colorGridLine   = color.RGBA{28, 28, 40, 255}
	colorText       = color.RGBA{230, 230, 235, 255}
	colorTextDim    = color.RGBA{140, 140, 150, 255}
	colorGold       = color.RGBA{255, 208, 64, 255}
	colorDanger     = color.RGBA{235, 64, 52, 255}

	kindColors = [KindCount]color.RGBA{
		KindI: {90, 200, 250, 255},
		KindO: {255, 208, 64, 255},
		KindT: {190, 120, 255, 255},
		KindS: {70, 220, 90, 255},
		KindZ: {235, 64, 52, 255},
		KindJ: {80, 160, 255, 255},
		KindL: {255, 150, 60, 255},
	}
)

const (
	charSmall = 7
	charBold  = 10
	charTitle = 16
)

func (g *game) draw(dst *ebiten.Image) {
	dst.Fill(colorBackground)

	wellW := float64(Cols * cellPx)
	wellH := float64(Rows * cellPx)
	x0 := (g.w - wellW) / 2
	y0 := (g.h - wellH) / 2

	vector.DrawFilledRect(dst, float32(x0), float32(y0), float32(wellW), float32(wellH), colorWell, false)
	for x := 1; x < Cols; x++ {
		px := float32(x0 + float64(x*cellPx))
		vector.StrokeLine(dst, px, float32(y0), px, float32(y0+wellH), 1, colorGridLine, false)
	}
	for y := 1; y < Rows; y++ {
		py := float32(y0 + float64(y*cellPx))
		vector.StrokeLine(dst, float32(x0), py, float32(x0+wellW), py, 1, colorGridLine, false)
	}
	vector.StrokeRect(dst, float32(x0), float32(y0), float32(wellW), float32(wellH), 2, colorTextDim, false)

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if v := g.board.Grid[y][x]; v != 0 {
				fillCell(dst, x0, y0, x, y, kindColors[v-1])
			}
		}
	}

	if !g.board.Over {
		ghost := g.board.Cur
		ghost.Y = g.board.GhostY()
		for _, c := range ghost.Cells() {
			px := float32(x0 + float64(c.X*cellPx))
			py := float32(y0 + float64(c.Y*cellPx))
			vector.StrokeRect(dst, px+2, py+2, cellPx-4, cellPx-4, 1, colorTextDim, false)
		}
		for _, c := range g.board.Cur.Cells() {
			fillCell(dst, x0, y0, c.X, c.Y, kindColors[g.board.Cur.Kind])
		}
	}

	if g.flashAlpha > 0 {
		a := uint8(g.flashAlpha * 255)
		vector.DrawFilledRect(dst, float32(x0), float32(y0), float32(wellW), float32(wellH),
			color.RGBA{a, a, a, a}, false)
	}

	g.drawPanel(dst, x0+wellW+30, y0)

	if g.board.Over {
		g.drawOver(dst)
	}
}

func fillCell(dst *ebiten.Image, x0, y0 float64, x, y int, clr color.RGBA) {
	px := float32(x0 + float64(x*cellPx))
	py := float32(y0 + float64(y*cellPx))
	vector.DrawFilledRect(dst, px+1, py+1, cellPx-2, cellPx-2, clr, false)
}

func (g *game) drawPanel(dst *ebiten.Image, x, y0 float64) {
	px := int(x)
	line := func(i int) int { return int(y0) + 14 + i*22 }

	text.Draw(dst, "SCORE", fonts.Small.Get(), px, line(0), colorTextDim)
	text.Draw(dst, fmt.Sprintf("%d", g.board.Score), fonts.Bold.Get(), px, line(1), colorText)
	text.Draw(dst, "LINES", fonts.Small.Get(), px, line(2), colorTextDim)
	text.Draw(dst, fmt.Sprintf("%d", g.board.Lines), fonts.Bold.Get(), px, line(3), colorText)
	text.Draw(dst, "LEVEL", fonts.Small.Get(), px, line(4), colorTextDim)
	text.Draw(dst, fmt.Sprintf("%d", g.board.Level), fonts.Bold.Get(), px, line(5), colorGold)

	if scores != nil {
		if best := scores.Best(ScoreMode); best > 0 {
			text.Draw(dst, "BEST", fonts.Small.Get(), px, line(6), colorTextDim)
			text.Draw(dst, fmt.Sprintf("%d", best), fonts.Bold.Get(), px, line(7), colorGold)
		}
	}

	text.Draw(dst, "NEXT", fonts.Small.Get(), px, line(9), colorTextDim)
	next := Piece{Kind: g.board.Next}
	ny := float64(line(9)) + 10
	for _, c := range next.Cells() {
		cx := float32(x + float64(c.X*16))
		cy := float32(ny + float64(c.Y*16))
		vector.DrawFilledRect(dst, cx+1, cy+1, 14, 14, kindColors[next.Kind], false)
	}
}

func (g *game) drawOver(dst *ebiten.Image) {
	a := uint8(g.fadeAlpha * 255)
	vector.DrawFilledRect(dst, 0, 0, float32(g.w), float32(g.h), color.RGBA{0, 0, 0, a}, false)

	cx := int(g.w / 2)
	centerText(dst, "GAME OVER", fonts.Title, charTitle, cx, int(g.h*0.4), colorDanger)
	centerText(dst, fmt.Sprintf("score %d", g.board.Score), fonts.Bold, charBold, cx, int(g.h*0.52), colorText)

	blink := 0.5 + 0.5*math.Sin(g.overTime*3)
	centerText(dst, "tap to retry", fonts.Regular, charSmall+1, cx,
		int(g.h*0.68), fadeColor(colorText, 0.4+0.6*blink))
	centerText(dst, "back: quit", fonts.Small, charSmall, cx, int(g.h)-16, colorTextDim)
}

func centerText(dst *ebiten.Image, s string, face fonts.FontName, per int, cx, y int, clr color.Color) {
	text.Draw(dst, s, face.Get(), cx-len(s)*per/2, y, clr)
}

func fadeColor(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
