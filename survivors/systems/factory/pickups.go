package factory

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/survivors/archetypes"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/tags"
)

// CreateGem drops an XP gem worth value at (x, y) with a small scatter
// kick. The spawn tick is recorded so the gem cannot be collected on
// the frame it appeared.
func CreateGem(e *ecs.ECS, value int, x, y float64) *donburi.Entry {
	if value <= 0 {
		return nil
	}
	if tagCount(e.World, tags.Gem) >= cfg.MaxGems {
		return nil
	}
	session := components.MustSession(e.World)

	entry := archetypes.Gem.Spawn(e)
	kick := session.Rand.Angle()
	speed := session.Rand.Range(20, 70)
	components.Gem.Set(entry, &components.GemData{
		Value:     value,
		SpawnTick: session.Tick,
		VX:        speed * math.Cos(kick),
		VY:        speed * math.Sin(kick),
		BobPhase:  session.Rand.Range(0, 6.28),
	})
	components.Position.SetValue(entry, vec(x, y))
	return entry
}

// CreatePotion drops a potion of the given kind.
func CreatePotion(e *ecs.ECS, kind cfg.PotionKind, x, y float64) *donburi.Entry {
	if tagCount(e.World, tags.Potion) >= cfg.MaxPotions {
		return nil
	}
	session := components.MustSession(e.World)
	entry := archetypes.Potion.Spawn(e)
	components.Potion.Set(entry, &components.PotionData{
		Kind:     kind,
		Life:     cfg.PotionLife,
		BobPhase: session.Rand.Range(0, 6.28),
	})
	components.Position.SetValue(entry, vec(x, y))
	return entry
}
