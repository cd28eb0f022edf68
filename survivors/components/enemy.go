package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// EnemyData is shared by all thirteen enemy types plus decoys. The AI*
// fields are scratch state whose meaning depends on Type; the per-type
// behaviors in the enemy systems own them.
type EnemyData struct {
	Type      cfg.EnemyType
	Health    int
	MaxHealth int
	Speed     float64
	Size      float64
	Damage    int
	XP        int

	Champion bool
	Affix    cfg.ChampionAffix
	RegenAcc float64 // vampiric

	Decoy bool    // mirror image: dies to any hit, grants nothing
	Life  float64 // decoys only, seconds left

	// status
	SlowTimer float64
	SlowMult  float64
	HitFlash  float64
	ContactCD float64 // gate on contact damage against the player

	// knockback impulse decays over KnockTime
	KnockX    float64
	KnockY    float64
	KnockTime float64

	// per-type scratch state
	AIPhase  int
	AICount  int
	AITimer  float64
	AITimer2 float64
	AIAngle  float64
	AIDirX   float64
	AIDirY   float64
}

var Enemy = donburi.NewComponentType[EnemyData]()

// CurrentSpeed folds slows and affixes into the base speed.
func (e *EnemyData) CurrentSpeed() float64 {
	s := e.Speed
	if e.SlowTimer > 0 {
		s *= e.SlowMult
	}
	if e.Affix == cfg.AffixSwift {
		s *= cfg.AffixSwiftSpeedMult
	}
	return s
}

// ApplySlow keeps the strongest slow and the longest timer.
func (e *EnemyData) ApplySlow(mult, duration float64) {
	if e.SlowTimer <= 0 || mult < e.SlowMult {
		e.SlowMult = mult
	}
	if duration > e.SlowTimer {
		e.SlowTimer = duration
	}
}
