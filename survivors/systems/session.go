package systems

import (
	"fmt"
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// UpdateSession advances the run clocks. It always runs first: it
// folds the wall-clock delta into the state timer, burns down hitstop,
// shake and flash, and derives the gameplay delta every other system
// keys off.
func UpdateSession(e *ecs.ECS) {
	session := components.MustSession(e.World)

	dt := frameDt
	if dt > 0.1 {
		dt = 0.1
	}
	session.RawDt = dt
	session.StateTime += dt

	if session.Entrance != nil {
		v, done := session.Entrance.Update(float32(dt))
		session.EntranceT = float64(v)
		if done {
			session.Entrance = nil
		}
	}

	if session.ShakeTime > 0 {
		session.ShakeTime -= dt
		if session.ShakeTime <= 0 {
			session.ShakeMag = 0
		}
	}
	if session.FlashTime > 0 {
		session.FlashTime -= dt
	}
	if session.Vignette > 0 {
		session.Vignette -= dt * 1.5
		if session.Vignette < 0 {
			session.Vignette = 0
		}
	}
	if session.XPPulse > 0 {
		session.XPPulse -= dt * 2
		if session.XPPulse < 0 {
			session.XPPulse = 0
		}
	}

	// carousels glide toward the cursor even while gameplay is frozen
	session.CarouselPos += (float64(session.Cursor) - session.CarouselPos) * math.Min(1, dt*12)

	if session.State != cfg.StatePlaying {
		session.Dt = 0
		return
	}

	if session.Hitstop > 0 {
		session.Hitstop -= dt
		session.Dt = 0
		return
	}

	session.Dt = dt
	session.Tick++
	session.GameTime += dt

	// combo chain decays when kills stop coming
	if session.ComboKills > 0 {
		session.ComboTimer -= dt
		if session.ComboTimer <= 0 {
			session.ComboKills = 0
			session.ComboTier = cfg.ComboNone
		}
	}

	// the streak dies quietly on timeout, unlike on damage taken
	if session.StreakKills > 0 {
		session.StreakTimer -= dt
		if session.StreakTimer <= 0 {
			session.StreakKills = 0
			session.NextStreakIdx = 0
		}
	}

	if session.BossDelay > 0 {
		session.BossDelay -= dt
	}

	// wave boundary: faster spawns, tougher enemies
	session.WaveTimer += dt
	if session.WaveTimer >= cfg.WaveLength {
		session.WaveTimer -= cfg.WaveLength
		advanceWave(e, session)
	}
}

func advanceWave(e *ecs.ECS, session *components.SessionData) {
	session.Wave++
	session.Difficulty = 1 + cfg.DifficultyStep*float64(session.Wave)
	session.SpawnInterval *= cfg.SpawnIntervalMult
	if session.SpawnInterval < cfg.SpawnIntervalMin {
		session.SpawnInterval = cfg.SpawnIntervalMin
	}

	announce := components.MustAnnouncements(e.World)
	announce.Push(components.Announcement{
		Text:  waveTitle(session.Wave),
		Sub:   newUnlockLine(session.Wave),
		Life:  2.2,
		Color: cfg.ColorGold,
	})
}

func waveTitle(wave int) string {
	return fmt.Sprintf("WAVE %d", wave+1)
}

// newUnlockLine names the enemy type whose unlock wave just arrived,
// or returns empty when the wave brings nothing new.
func newUnlockLine(wave int) string {
	for t := cfg.EnemyType(0); t < cfg.EnemyTypeCount; t++ {
		if cfg.EnemyTable[t].UnlockWave == wave {
			return "new threat: " + t.String()
		}
	}
	return ""
}
