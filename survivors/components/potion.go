package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// PotionData is a dropped potion waiting on the ground.
type PotionData struct {
	Kind     cfg.PotionKind
	Life     float64
	BobPhase float64
}

var Potion = donburi.NewComponentType[PotionData]()
