package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/archetypes"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// CreateSession spawns the singleton entity carrying the session,
// loadout, camera and all feedback pools. Called once at plugin init;
// later runs reset it in place instead of respawning it.
func CreateSession(ecs *ecs.ECS, screenW, screenH float64, seed uint64) *donburi.Entry {
	e := archetypes.Session.Spawn(ecs)

	session := &components.SessionData{
		ScreenW:       screenW,
		ScreenH:       screenH,
		Seed:          seed,
		Rand:          gamemath.NewRand(seed),
		Difficulty:    1,
		SpawnInterval: cfg.SpawnInterval,
	}
	session.EnterState(cfg.StateMenu)
	components.Session.Set(e, session)

	loadout := components.NewLoadoutData()
	components.Loadout.Set(e, &loadout)

	components.Camera.Set(e, &components.CameraData{
		X: cfg.World.Width / 2,
		Y: cfg.World.Height / 2,
	})

	components.Offers.Set(e, &components.OffersData{})
	components.Spawner.Set(e, &components.SpawnerData{})
	components.Particles.Set(e, &components.ParticlesData{})
	components.Popups.Set(e, &components.PopupsData{})
	components.UIParticles.Set(e, &components.UIParticlesData{})
	components.Announcements.Set(e, &components.AnnouncementsData{})
	return e
}

// CreatePlayer spawns the hero at the arena center with the class's
// stat block.
func CreatePlayer(ecs *ecs.ECS, class cfg.ClassID) *donburi.Entry {
	e := archetypes.Player.Spawn(ecs)
	data := components.NewPlayerData(class)
	components.Player.Set(e, &data)
	components.Position.SetValue(e, vec(cfg.World.Width/2, cfg.World.Height/2))
	return e
}
