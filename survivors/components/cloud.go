package components

import "github.com/yohamta/donburi"

// CloudData is a venom cloud ticking damage and slow onto enemies
// inside it.
type CloudData struct {
	Radius    float64
	Life      float64
	TickTimer float64
	Damage    int
	Crit      bool
	SlowMult  float64
	SlowTime  float64
}

var Cloud = donburi.NewComponentType[CloudData]()
