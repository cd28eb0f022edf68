package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Position is the world-space location shared by every simulated
// entity. Movement systems write it, the spatial grid snapshots it.
var Position = donburi.NewComponentType[dmath.Vec2]()
