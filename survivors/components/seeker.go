package components

import "github.com/yohamta/donburi"

// SeekerData is a homing missile. Target is a plain entity handle; the
// system revalidates it every frame and retargets when it dies.
// SplashFrac is the blast's share of the direct damage.
type SeekerData struct {
	Angle      float64
	Speed      float64
	TurnRate   float64
	Life       float64
	Damage     int
	Crit       bool
	BlastR     float64
	SplashFrac float64
	Target     donburi.Entity
	HasTgt     bool
}

var Seeker = donburi.NewComponentType[SeekerData]()
