package host

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pautown/llizard-plugins/blocks"
	"github.com/pautown/llizard-plugins/fonts"
	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/quiz"
	"github.com/pautown/llizard-plugins/score"
	"github.com/pautown/llizard-plugins/skier"
	"github.com/pautown/llizard-plugins/survivors"
)

// Run wires persistence and config into the plugins and enters the
// ebiten loop. Blocks until the window closes.
func Run(cfg Config) error {
	fonts.Load()

	var store score.Store
	if disk, err := score.Open(); err == nil {
		store = disk
	} else {
		store = score.NewMemStore()
	}

	survivors.SetScoreStore(store)
	quiz.SetScoreStore(store)
	blocks.SetScoreStore(store)
	skier.SetScoreStore(store)

	quiz.SetQuestionsDir(cfg.Questions)
	if cfg.Seed != 0 {
		plugin.SetSeed(uint64(cfg.Seed))
	}

	game := NewGame(store)
	if cfg.Plugin != "" {
		if err := game.Launch(cfg.Plugin); err != nil {
			log.Printf("Warning: could not launch %s: %v", cfg.Plugin, err)
		}
	}

	ebiten.SetWindowSize(int(ScreenW*cfg.Scale), int(ScreenH*cfg.Scale))
	ebiten.SetWindowTitle("llizardgui")
	return ebiten.RunGame(game)
}
