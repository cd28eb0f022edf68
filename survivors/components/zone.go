package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// ZoneData is a ground zone: lava burns the player, ice slows enemies,
// XP zones raise gem value of kills inside them.
type ZoneData struct {
	Kind      cfg.ZoneKind
	Radius    float64
	Life      float64
	TickTimer float64
}

var Zone = donburi.NewComponentType[ZoneData]()
