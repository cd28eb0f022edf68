package components

import "github.com/yohamta/donburi"

// GemData is one XP drop. Value bakes in the combo tier at the kill
// and any XP zone; the collection-time combo, streak and player
// multipliers stack on top. SpawnTick keeps a gem from being collected
// on the frame it appeared.
type GemData struct {
	Value     int
	SpawnTick uint64
	Magnet    bool // latched once in range, gem then homes forever
	VX, VY    float64
	BobPhase  float64
}

var Gem = donburi.NewComponentType[GemData]()
