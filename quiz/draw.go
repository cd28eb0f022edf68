package quiz

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pautown/llizard-plugins/fonts"
	"github.com/pautown/llizard-plugins/gamemath"
)

var (
	colorBackground = color.RGBA{16, 16, 24, 255}
	colorCard       = color.RGBA{24, 24, 34, 240}
	colorText       = color.RGBA{230, 230, 235, 255}
	colorTextDim    = color.RGBA{140, 140, 150, 255}
	colorGold       = color.RGBA{255, 208, 64, 255}
	colorRight      = color.RGBA{70, 220, 90, 255}
	colorWrong      = color.RGBA{235, 64, 52, 255}
)

// Approximate per-glyph advances for the bundled faces, good enough
// for centering.
const (
	charSmall = 7
	charBold  = 10
	charTitle = 16
)

func centerText(screen *ebiten.Image, s string, face fonts.FontName, per int, cx, y int, clr color.Color) {
	text.Draw(screen, s, face.Get(), cx-len(s)*per/2, y, clr)
}

func fade(c color.RGBA, a float64) color.RGBA {
	a = gamemath.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func (g *game) draw(dst *ebiten.Image) {
	dst.Fill(colorBackground)
	switch g.state {
	case stateCategories:
		g.drawCategories(dst)
	case stateQuestion:
		g.drawQuestion(dst, false)
	case stateReveal:
		g.drawQuestion(dst, true)
	case stateDone:
		g.drawDone(dst)
	}
}

func (g *game) drawCategories(dst *ebiten.Image) {
	cx := int(g.w / 2)

	centerText(dst, "QUIZ", fonts.Title, charTitle, cx, 56, colorText)

	if len(g.categories) == 0 {
		centerText(dst, "No categories found", fonts.Bold, charBold, cx, int(g.h*0.45), colorTextDim)
		centerText(dst, "drop *.json files into the questions folder", fonts.Small, charSmall, cx, int(g.h*0.45)+24, colorTextDim)
		centerText(dst, "back: quit", fonts.Small, charSmall, cx, int(g.h)-16, colorTextDim)
		return
	}

	cy := g.h * 0.45
	for i, cat := range g.categories {
		dx := float64(i) - g.catPos
		x := g.w/2 + dx*170
		scale := 1 - 0.25*math.Min(1, math.Abs(dx))
		w, h := 150*scale, 150*scale

		border := colorTextDim
		if i == g.catSel {
			border = colorGold
		}
		drawCardFrame(dst, x, cy, w, h, border, i == g.catSel)

		centerText(dst, cat.Name, fonts.Bold, charBold, int(x), int(cy), colorText)
		sub := fmt.Sprintf("%d questions", len(cat.Questions))
		if cat.Millionaire {
			sub = "millionaire ladder"
		}
		centerText(dst, sub, fonts.Small, charSmall, int(x), int(cy+22*scale), colorTextDim)
	}

	if scores != nil {
		if best := scores.Best(ScoreMode); best > 0 {
			centerText(dst, fmt.Sprintf("BEST STREAK %d", best), fonts.Bold, charBold, cx, int(g.h*0.75), colorGold)
		}
	}
	centerText(dst, "swipe to browse, tap to pick", fonts.Small, charSmall, cx, int(g.h)-16, colorTextDim)
}

func drawCardFrame(dst *ebiten.Image, x, y, w, h float64, border color.RGBA, selected bool) {
	vector.DrawFilledRect(dst, float32(x-w/2), float32(y-h/2), float32(w), float32(h), colorCard, false)
	width := float32(1)
	if selected {
		width = 2
	}
	vector.StrokeRect(dst, float32(x-w/2), float32(y-h/2), float32(w), float32(h), width, border, false)
}

func (g *game) drawQuestion(dst *ebiten.Image, reveal bool) {
	cx := int(g.w / 2)
	q := g.question()

	header := fmt.Sprintf("%s  %d/%d", g.cat.Name, g.qIdx+1, len(g.order))
	centerText(dst, header, fonts.Small, charSmall, cx, 24, colorTextDim)
	centerText(dst, fmt.Sprintf("streak %d", g.streak), fonts.Small, charSmall, cx, 40, colorGold)

	for li, line := range wrapText(q.Question, 52) {
		centerText(dst, line, fonts.Bold, charBold, cx, 80+li*22, colorText)
	}

	baseY := int(g.h * 0.42)
	for i, opt := range q.Options {
		y := baseY + i*40
		clr := colorTextDim
		label := opt
		switch {
		case reveal && i == q.Correct:
			clr = colorRight
		case reveal && i == g.chosen:
			clr = colorWrong
		case !reveal && i == g.optSel:
			clr = colorText
			label = "> " + opt + " <"
		}
		centerText(dst, label, fonts.Bold, charBold, cx, y, clr)
	}

	if g.cat.Millionaire {
		g.drawLadder(dst)
	}

	if reveal {
		verdict, clr := "CORRECT", colorRight
		if !g.correct {
			verdict, clr = "WRONG", colorWrong
		}
		blink := 0.6 + 0.4*math.Sin(g.stateTime*4)
		centerText(dst, verdict, fonts.Title, charTitle, cx, int(g.h*0.82), fade(clr, blink))
		centerText(dst, "tap to continue", fonts.Small, charSmall, cx, int(g.h)-16, colorTextDim)
		return
	}
	centerText(dst, "scroll to aim, tap to answer", fonts.Small, charSmall, cx, int(g.h)-16, colorTextDim)
}

// drawLadder shows the millionaire rungs climbed so far along the
// right edge, top rung highest.
func (g *game) drawLadder(dst *ebiten.Image) {
	x := int(g.w) - 70
	shown := len(g.order)
	for i := 0; i < shown; i++ {
		rung := shown - 1 - i
		y := 70 + i*16
		clr := colorTextDim
		if rung < g.streak {
			clr = colorGold
		}
		if rung == g.qIdx {
			clr = colorText
		}
		centerText(dst, fmt.Sprintf("%d", ladder[rung]), fonts.Small, charSmall, x, y, clr)
	}
}

func (g *game) drawDone(dst *ebiten.Image) {
	cx := int(g.w / 2)

	title, clr := "DECK CLEARED", colorRight
	if g.cat != nil && g.cat.Millionaire && !g.correct {
		title, clr = "LADDER SLIP", colorWrong
	}
	centerText(dst, title, fonts.Title, charTitle, cx, int(g.h*0.35), clr)
	centerText(dst, fmt.Sprintf("best streak %d", g.runBest), fonts.Bold, charBold, cx, int(g.h*0.48), colorText)

	if scores != nil {
		if best := scores.Best(ScoreMode); best > 0 {
			centerText(dst, fmt.Sprintf("all-time %d", best), fonts.Small, charSmall, cx, int(g.h*0.48)+24, colorGold)
		}
	}

	blink := 0.5 + 0.5*math.Sin(g.stateTime*3)
	centerText(dst, "tap for categories", fonts.Regular, charSmall+1, cx, int(g.h*0.72), fade(colorText, 0.4+0.6*blink))
}

// wrapText greedily packs words into lines of at most width glyphs.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
