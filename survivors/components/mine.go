package components

import "github.com/yohamta/donburi"

// MineData is a bomber-dropped charge on a short fuse. It explodes
// once when the fuse runs out, hurting the player if inside the blast.
type MineData struct {
	Fuse   float64
	Radius float64
	Damage int
}

var Mine = donburi.NewComponentType[MineData]()
