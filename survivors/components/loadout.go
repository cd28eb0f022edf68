package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// WeaponState is one loadout slot. Branch stays BranchNone until the
// player picks one of the weapon's three branches; after that the
// other two are closed for the run.
type WeaponState struct {
	Unlocked   bool
	Tier       int
	Branch     cfg.BranchKind
	BranchTier int
	Cooldown   float64 // seconds until the next trigger
}

// RingState is one live nova ring. The expanding edge damages an enemy
// exactly when it crosses it, so no per-ring hit list is needed. A
// frost ring carries the slow it applies; SlowTime 0 means none.
type RingState struct {
	Active   bool
	X, Y     float64
	R        float64
	PrevR    float64
	MaxR     float64
	Speed    float64
	Damage   int
	Crit     bool
	SlowMult float64
	SlowTime float64
}

// StrikeState is one telegraphed sky strike. Forks is how many extra
// victims the landed bolt arcs through.
type StrikeState struct {
	Active bool
	X, Y   float64
	Timer  float64 // counts down through the telegraph
	Radius float64
	Damage int
	Crit   bool
	Forks  int
}

// ChainSeg is a drawn lightning segment fading out.
type ChainSeg struct {
	X1, Y1 float64
	X2, Y2 float64
	Time   float64
}

// ChainState is one in-flight lightning chain hopping between enemies.
type ChainState struct {
	Active   bool
	Timer    float64 // delay before the next hop
	HopsLeft int
	Damage   float64 // next hop's damage
	Decay    float64 // multiplier applied after each hop
	Crit     bool
	FromX    float64
	FromY    float64
	Hit      [10]donburi.Entity // enemies already struck this chain
	HitCount int

	Segs     [10]ChainSeg
	SegCount int
}

// Struck reports whether the chain already hit this enemy.
func (c *ChainState) Struck(ent donburi.Entity) bool {
	for i := 0; i < c.HitCount; i++ {
		if c.Hit[i] == ent {
			return true
		}
	}
	return false
}

// MarkStruck records a hit, dropping silently when the list is full.
func (c *ChainState) MarkStruck(ent donburi.Entity) {
	if c.HitCount < len(c.Hit) {
		c.Hit[c.HitCount] = ent
		c.HitCount++
	}
}

// AddSeg records a segment for drawing, overwriting the oldest.
func (c *ChainState) AddSeg(x1, y1, x2, y2 float64) {
	if c.SegCount < len(c.Segs) {
		c.Segs[c.SegCount] = ChainSeg{X1: x1, Y1: y1, X2: x2, Y2: y2, Time: cfg.ChainFlashTime}
		c.SegCount++
		return
	}
	copy(c.Segs[:], c.Segs[1:])
	c.Segs[len(c.Segs)-1] = ChainSeg{X1: x1, Y1: y1, X2: x2, Y2: y2, Time: cfg.ChainFlashTime}
}

// LoadoutData is the weapon singleton: the nine slots plus the bounded
// runtime pools for weapon effects that are not full entities.
type LoadoutData struct {
	Slots [cfg.WeaponCount]WeaponState

	// orbit weapon runtime
	OrbitAngle float64
	OrbitHit   [cfg.RadiusMaxOrbs]float64 // per-orb damage cooldown

	Rings   [6]RingState
	Strikes [cfg.MysticMaxStrikes]StrikeState
	Chains  [8]ChainState
}

var Loadout = donburi.NewComponentType[LoadoutData]()

// MustLoadout returns the singleton.
func MustLoadout(w donburi.World) *LoadoutData {
	entry, ok := Loadout.First(w)
	if !ok {
		panic("loadout singleton missing")
	}
	return Loadout.Get(entry)
}

// NewLoadoutData starts every slot locked with no branch picked.
func NewLoadoutData() LoadoutData {
	return LoadoutData{}
}

// Unlock opens a slot at tier 1. Unlocking twice is a no-op.
func (l *LoadoutData) Unlock(w cfg.WeaponID) {
	s := &l.Slots[w]
	if s.Unlocked {
		return
	}
	s.Unlocked = true
	s.Tier = 1
}

// BranchTier reports the tier of a specific branch: 0 unless it is the
// picked one.
func (l *LoadoutData) BranchTier(w cfg.WeaponID, b cfg.BranchKind) int {
	s := &l.Slots[w]
	if !s.Unlocked || s.Branch != b {
		return 0
	}
	return s.BranchTier
}

// UnlockedCount reports how many weapons the loadout holds.
func (l *LoadoutData) UnlockedCount() int {
	n := 0
	for i := range l.Slots {
		if l.Slots[i].Unlocked {
			n++
		}
	}
	return n
}

// SynergyActive reports whether both weapons of a synergy pair sit in
// the loadout. Unlocking the pair is the whole requirement.
func (l *LoadoutData) SynergyActive(s cfg.SynergyConfig) bool {
	return l.Slots[s.A].Unlocked && l.Slots[s.B].Unlocked
}

// SynergyCount reports how many synergy pairs are live, for the HUD.
func (l *LoadoutData) SynergyCount() int {
	n := 0
	for i := range cfg.Synergies {
		if l.SynergyActive(cfg.Synergies[i]) {
			n++
		}
	}
	return n
}
