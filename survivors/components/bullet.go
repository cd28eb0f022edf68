package components

import "github.com/yohamta/donburi"

// PlayerBulletData is a shot fired by the player. Crit was rolled at
// fire time so the popup can show it. Pierce counts enemies the shot
// may still pass through, Hits how many it already went through (the
// piercing branch rewards deep shots); LastHit stops a slow overlap
// from hitting the same enemy twice.
type PlayerBulletData struct {
	VX, VY  float64
	Damage  int
	Crit    bool
	Pierce  int
	Hits    int
	Life    float64
	LastHit donburi.Entity
}

var PlayerBullet = donburi.NewComponentType[PlayerBulletData]()

// EnemyBulletData is a hostile shot. Grazed marks that the near-miss
// bonus was already granted for it.
type EnemyBulletData struct {
	VX, VY float64
	Damage int
	Life   float64
	Grazed bool
}

var EnemyBullet = donburi.NewComponentType[EnemyBulletData]()
