// Package factory spawns every survivors entity kind. All creators
// enforce the pool caps: a spawn past the cap returns nil and the
// caller shrugs it off.
package factory

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

func tagCount(w donburi.World, tag *donburi.ComponentType[struct{}]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}
