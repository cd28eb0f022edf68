package components

import "github.com/yohamta/donburi"

// CameraData is the view center in world space. The camera system
// lerps it toward the player and clamps the resulting viewport to the
// arena.
type CameraData struct {
	X, Y float64
}

var Camera = donburi.NewComponentType[CameraData]()

// MustCamera returns the singleton.
func MustCamera(w donburi.World) *CameraData {
	entry, ok := Camera.First(w)
	if !ok {
		panic("camera singleton missing")
	}
	return Camera.Get(entry)
}
