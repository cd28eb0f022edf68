package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/pautown/llizard-plugins/gamemath"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// SessionData is the run-wide singleton: state machine, clocks, wave
// progression, combo and streak tracking, and the screen feedback
// timers. One entity carries it per run.
type SessionData struct {
	State     cfg.GameState
	StateTime float64 // seconds in the current state

	Tick     uint64  // simulation frames advanced while playing
	GameTime float64 // seconds survived, pauses and menus excluded

	RawDt float64 // wall-clock delta for this frame
	Dt    float64 // gameplay delta, zero while frozen

	ScreenW float64
	ScreenH float64

	Seed uint64
	Rand *gamemath.Rand

	// wave / spawner
	Wave          int
	WaveTimer     float64
	Difficulty    float64
	SpawnTimer    float64
	SpawnInterval float64
	ZoneTimer     float64
	BossDelay     float64 // cooldown after a boss dies
	BossAlive     bool

	// combo chain
	ComboKills int
	ComboTimer float64
	ComboTier  cfg.ComboTier

	// kill streak (no damage taken)
	StreakKills   int
	StreakTimer   float64
	NextStreakIdx int // index into cfg.StreakMilestones

	// kill milestones
	Kills        int
	KillsByType  [cfg.EnemyTypeCount]int
	MilestoneIdx int // index into cfg.KillMilestones

	// run stats for the end screen
	DamageDealt   int
	DamageTaken   int
	GemsCollected int
	PotionsUsed   int
	BestCombo     int
	BestStreak    int
	NewBest       bool

	// feedback
	Hitstop    float64
	ShakeTime  float64
	ShakeMag   float64
	FlashTime  float64
	FlashColor color.RGBA
	Vignette   float64 // red edge fade after a hit, 0..1
	XPPulse    float64 // XP bar flash after a gain

	// menus
	Cursor      int          // shared selection index for the non-playing states
	CarouselPos float64      // smoothed cursor the carousels draw at
	Entrance    *gween.Tween // restarted on every state switch
	EntranceT   float64      // entrance progress 0..1 the screens animate on
	WantsQuit   bool         // set when the plugin should be closed by the host
}

var Session = donburi.NewComponentType[SessionData]()

// MustSession returns the singleton, panicking when the world was not
// seeded by the factory.
func MustSession(w donburi.World) *SessionData {
	entry, ok := Session.First(w)
	if !ok {
		panic("session singleton missing")
	}
	return Session.Get(entry)
}

// EnterState switches the machine and resets the state clock, the
// entering state's selection and the entrance animation.
func (s *SessionData) EnterState(st cfg.GameState) {
	s.State = st
	s.StateTime = 0
	s.Cursor = 0
	s.CarouselPos = 0
	s.Entrance = gween.New(0, 1, cfg.EntranceTime, ease.OutQuad)
	s.EntranceT = 0
}

// ResetRun clears everything a finished run leaves behind, keeping the
// host geometry and the RNG stream.
func (s *SessionData) ResetRun() {
	*s = SessionData{
		ScreenW:       s.ScreenW,
		ScreenH:       s.ScreenH,
		Seed:          s.Seed,
		Rand:          s.Rand,
		Difficulty:    1,
		SpawnInterval: cfg.SpawnInterval,
	}
}

// AddShake raises the current screen shake, never lowers it.
func (s *SessionData) AddShake(duration, magnitude float64) {
	if duration > s.ShakeTime {
		s.ShakeTime = duration
	}
	if magnitude > s.ShakeMag {
		s.ShakeMag = magnitude
	}
}

// Flash sets a brief full-screen tint.
func (s *SessionData) Flash(duration float64, c color.RGBA) {
	s.FlashTime = duration
	s.FlashColor = c
}

// ComboXPMult is the gem-value multiplier for the current tier.
func (s *SessionData) ComboXPMult() float64 {
	return cfg.ComboTable[s.ComboTier].XPMult
}

// StreakXPMult grows per streak kill and is capped.
func (s *SessionData) StreakXPMult() float64 {
	m := 1 + cfg.StreakXPStep*float64(s.StreakKills)
	return gamemath.Clamp(m, 1, cfg.StreakXPCap)
}
