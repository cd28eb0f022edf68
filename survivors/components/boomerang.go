package components

import "github.com/yohamta/donburi"

// BoomerangData is a thrown glaive. Outbound it flies straight until
// MaxDist, then homes back onto the player and is caught on contact.
// The hit list clears at the turnaround so the return pass can damage
// the same enemies again.
type BoomerangData struct {
	VX, VY    float64
	Returning bool
	Traveled  float64
	MaxDist   float64
	Damage    int
	Crit      bool
	Size      float64
	Spin      float64

	Hit      [16]donburi.Entity
	HitCount int
}

var Boomerang = donburi.NewComponentType[BoomerangData]()

// HasHit reports whether this pass already damaged the enemy.
func (b *BoomerangData) HasHit(ent donburi.Entity) bool {
	for i := 0; i < b.HitCount; i++ {
		if b.Hit[i] == ent {
			return true
		}
	}
	return false
}

// MarkHit records a hit, dropping silently when the list is full.
func (b *BoomerangData) MarkHit(ent donburi.Entity) {
	if b.HitCount < len(b.Hit) {
		b.Hit[b.HitCount] = ent
		b.HitCount++
	}
}

// ClearHits resets the list at the turnaround.
func (b *BoomerangData) ClearHits() { b.HitCount = 0 }
