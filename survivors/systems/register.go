package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// RegisterUpdate wires the full simulation pipeline in canonical
// order: clocks and input first and always, then the gameplay systems
// behind the live-play gate, then the feedback pools that tick through
// pauses and hitstop.
func RegisterUpdate(e *ecs.ECS) {
	e.AddSystem(UpdateSession)
	e.AddSystem(UpdateInput)

	for _, s := range []ecs.System{
		UpdateGrid,
		UpdatePlayer,
		UpdateWeapons,
		UpdateRings,
		UpdateStrikes,
		UpdateChains,
		UpdatePlayerBullets,
		UpdateSeekers,
		UpdateBoomerangs,
		UpdateClouds,
		UpdateSpawner,
		UpdateEnemies,
		UpdateEnemyBullets,
		UpdateMines,
		UpdateCombat,
		UpdateGems,
		UpdatePotions,
		UpdateZones,
		UpdateCamera,
	} {
		e.AddSystem(WithGameplayChecks(s))
	}

	e.AddSystem(UpdateEffects)
}
