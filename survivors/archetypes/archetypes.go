package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/tags"
)

var (
	Session = newArchetype(
		components.Session,
		components.Loadout,
		components.Camera,
		components.Offers,
		components.Spawner,
		components.Particles,
		components.Popups,
		components.UIParticles,
		components.Announcements,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Position,
	)
	Gem = newArchetype(
		tags.Gem,
		components.Gem,
		components.Position,
	)
	Potion = newArchetype(
		tags.Potion,
		components.Potion,
		components.Position,
	)
	PlayerBullet = newArchetype(
		tags.PlayerBullet,
		components.PlayerBullet,
		components.Position,
	)
	EnemyBullet = newArchetype(
		tags.EnemyBullet,
		components.EnemyBullet,
		components.Position,
	)
	Mine = newArchetype(
		tags.Mine,
		components.Mine,
		components.Position,
	)
	Seeker = newArchetype(
		tags.Seeker,
		components.Seeker,
		components.Position,
	)
	Boomerang = newArchetype(
		tags.Boomerang,
		components.Boomerang,
		components.Position,
	)
	Cloud = newArchetype(
		tags.Cloud,
		components.Cloud,
		components.Position,
	)
	Zone = newArchetype(
		tags.Zone,
		components.Zone,
		components.Position,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
