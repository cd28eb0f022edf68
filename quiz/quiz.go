// Package quiz is the flashcard plugin: pick a category, answer its
// questions from a carousel of options, and chase a correct-answer
// streak. Categories flagged millionaire_mode climb a fixed prize
// ladder instead and end on the first wrong answer.
package quiz

import (
	"math"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/score"
)

const (
	ID        = "quiz"
	ScoreMode = "quiz"
)

func init() {
	plugin.Register(ID, New)
}

var (
	scores       score.Store
	questionsDir = "questions"
)

// SetScoreStore wires best-streak persistence into every future
// instance. The host calls this once before launching anything.
func SetScoreStore(s score.Store) {
	scores = s
}

// SetQuestionsDir points future instances at the question files.
func SetQuestionsDir(dir string) {
	questionsDir = dir
}

// New builds a fresh plugin instance.
func New() *plugin.Plugin {
	g := &game{}
	return &plugin.Plugin{
		Name:              "Quiz",
		Description:       "Flashcards and a millionaire ladder. Bring your streak.",
		Category:          plugin.CategoryGame,
		HandlesBackButton: true,
		Init:              g.init,
		Update:            g.update,
		Draw:              g.draw,
		Shutdown:          g.shutdown,
		WantsClose:        g.wantsClose,
	}
}

type state int

const (
	stateCategories state = iota
	stateQuestion
	stateReveal
	stateDone
)

// ladder is the millionaire prize table, one rung per correct answer.
var ladder = []int{
	100, 200, 300, 500, 1000,
	2000, 4000, 8000, 16000, 32000,
	64000, 125000, 250000, 500000, 1000000,
}

// revealPause is how long the right/wrong tint holds before any press
// advances. Stops a double-tap from skipping the verdict.
const revealPause = 0.35

type game struct {
	w, h float64
	rng  *gamemath.Rand

	categories []Category

	state     state
	stateTime float64

	catSel int
	catPos float64

	cat    *Category
	order  []int
	qIdx   int
	optSel int
	optPos float64

	chosen  int
	correct bool

	streak  int
	runBest int

	quit bool
}

func (g *game) init(width, height int) {
	g.w, g.h = float64(width), float64(height)
	g.rng = gamemath.NewRand(plugin.Seed())
	g.categories = LoadDir(questionsDir)
	g.enter(stateCategories)
}

func (g *game) enter(st state) {
	g.state = st
	g.stateTime = 0
}

func (g *game) update(in plugin.Input, dt float64) {
	g.stateTime += dt

	switch g.state {
	case stateCategories:
		g.updateCategories(in, dt)
	case stateQuestion:
		g.updateQuestion(in, dt)
	case stateReveal:
		g.updateReveal(in)
	case stateDone:
		g.updateDone(in)
	}
}

func menuStep(in plugin.Input) int {
	step := 0
	if in.UpPressed || in.SwipeLeft || in.ScrollDelta < 0 {
		step--
	}
	if in.DownPressed || in.SwipeRight || in.ScrollDelta > 0 {
		step++
	}
	return step
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func (g *game) updateCategories(in plugin.Input, dt float64) {
	if in.BackPressed {
		g.quit = true
		return
	}
	if len(g.categories) == 0 {
		return
	}

	g.catSel = wrapIndex(g.catSel+menuStep(in), len(g.categories))
	g.catPos += (float64(g.catSel) - g.catPos) * math.Min(1, dt*12)

	if in.SelectPressed || in.Tap {
		g.startRun(&g.categories[g.catSel])
	}
}

// startRun deals the chosen category. Flashcard runs shuffle; the
// millionaire ladder keeps the authored easy-to-hard order.
func (g *game) startRun(cat *Category) {
	g.cat = cat
	g.order = make([]int, len(cat.Questions))
	for i := range g.order {
		g.order[i] = i
	}
	if !cat.Millionaire {
		g.rng.Shuffle(len(g.order), func(i, j int) {
			g.order[i], g.order[j] = g.order[j], g.order[i]
		})
	} else if len(g.order) > len(ladder) {
		g.order = g.order[:len(ladder)]
	}
	g.qIdx = 0
	g.optSel = 0
	g.optPos = 0
	g.streak = 0
	g.runBest = 0
	g.enter(stateQuestion)
}

func (g *game) question() *Question {
	return &g.cat.Questions[g.order[g.qIdx]]
}

func (g *game) updateQuestion(in plugin.Input, dt float64) {
	if in.BackPressed {
		g.endRun()
		g.enter(stateCategories)
		return
	}

	q := g.question()
	g.optSel = wrapIndex(g.optSel+menuStep(in), len(q.Options))
	g.optPos += (float64(g.optSel) - g.optPos) * math.Min(1, dt*12)

	if in.SelectPressed || in.Tap {
		g.chosen = g.optSel
		g.correct = g.chosen == q.Correct
		if g.correct {
			g.streak++
			if g.streak > g.runBest {
				g.runBest = g.streak
			}
		} else {
			g.streak = 0
		}
		g.enter(stateReveal)
	}
}

func (g *game) updateReveal(in plugin.Input) {
	if g.stateTime < revealPause || !in.AnyPress() {
		return
	}

	if g.cat.Millionaire && !g.correct {
		g.finishRun()
		return
	}
	g.qIdx++
	if g.qIdx >= len(g.order) {
		g.finishRun()
		return
	}
	g.optSel = 0
	g.optPos = 0
	g.enter(stateQuestion)
}

func (g *game) finishRun() {
	g.endRun()
	g.enter(stateDone)
}

// endRun settles the score. Safe to call twice; a zero streak never
// beats a recorded best.
func (g *game) endRun() {
	if scores != nil && g.runBest > 0 {
		scores.Submit(ScoreMode, g.runBest)
	}
}

func (g *game) updateDone(in plugin.Input) {
	if g.stateTime < revealPause {
		return
	}
	if in.BackPressed || in.AnyPress() {
		g.cat = nil
		g.enter(stateCategories)
	}
}

func (g *game) shutdown() {
	g.endRun()
	g.categories = nil
	g.cat = nil
}

func (g *game) wantsClose() bool {
	return g.quit
}
