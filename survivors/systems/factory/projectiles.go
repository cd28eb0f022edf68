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

// CreatePlayerBullet fires a shot at angle carrying precomputed damage.
func CreatePlayerBullet(e *ecs.ECS, x, y, angle, speed float64, damage int, crit bool, pierce int, life float64) *donburi.Entry {
	if tagCount(e.World, tags.PlayerBullet) >= cfg.MaxPlayerBullets {
		return nil
	}
	entry := archetypes.PlayerBullet.Spawn(e)
	components.PlayerBullet.Set(entry, &components.PlayerBulletData{
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
		Damage: damage,
		Crit:   crit,
		Pierce: pierce,
		Life:   life,
	})
	components.Position.SetValue(entry, vec(x, y))
	return entry
}

// CreateEnemyBullet fires a hostile shot.
func CreateEnemyBullet(e *ecs.ECS, x, y, angle, speed float64, damage int) *donburi.Entry {
	if tagCount(e.World, tags.EnemyBullet) >= cfg.MaxEnemyBullets {
		return nil
	}
	entry := archetypes.EnemyBullet.Spawn(e)
	components.EnemyBullet.Set(entry, &components.EnemyBulletData{
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
		Damage: damage,
		Life:   6,
	})
	components.Position.SetValue(entry, vec(x, y))
	return entry
}

// CreateMine drops a bomber charge.
func CreateMine(e *ecs.ECS, x, y float64, damage int) *donburi.Entry {
	if tagCount(e.World, tags.Mine) >= cfg.MaxMines {
		return nil
	}
	entry := archetypes.Mine.Spawn(e)
	components.Mine.Set(entry, &components.MineData{
		Fuse:   cfg.MineFuseTime,
		Radius: cfg.MineRadius,
		Damage: damage,
	})
	components.Position.SetValue(entry, vec(x, y))
	return entry
}

// CreateSeeker launches a homing missile toward an initial target,
// which may already be dead by the time it flies.
func CreateSeeker(e *ecs.ECS, x, y, angle float64, damage int, crit bool, speed, turn, blastR float64, target donburi.Entity, hasTgt bool) *donburi.Entry {
	if tagCount(e.World, tags.Seeker) >= cfg.MaxSeekers {
		return nil
	}
	entry := archetypes.Seeker.Spawn(e)
	components.Seeker.Set(entry, &components.SeekerData{
		Angle:      angle,
		Speed:      speed,
		TurnRate:   turn,
		Life:       cfg.SeekerLife,
		Damage:     damage,
		Crit:       crit,
		BlastR:     blastR,
		SplashFrac: cfg.SeekerBlastFrac,
		Target:     target,
		HasTgt:     hasTgt,
	})
	components.Position.SetValue(entry, vec(x, y))
	return entry
}

// CreateBoomerang throws a glaive along angle.
func CreateBoomerang(e *ecs.ECS, x, y, angle, speed float64, damage int, crit bool, maxDist float64) *donburi.Entry {
	if tagCount(e.World, tags.Boomerang) >= cfg.MaxBoomerangs {
		return nil
	}
	entry := archetypes.Boomerang.Spawn(e)
	components.Boomerang.Set(entry, &components.BoomerangData{
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		MaxDist: maxDist,
		Damage:  damage,
		Crit:    crit,
		Size:    cfg.BoomerangSize,
	})
	components.Position.SetValue(entry, vec(x, y))
	return entry
}

// CreateCloud lobs a venom cloud onto (x, y).
func CreateCloud(e *ecs.ECS, x, y, radius float64, damage int, slowMult, slowTime, life float64) *donburi.Entry {
	if tagCount(e.World, tags.Cloud) >= cfg.MaxClouds {
		return nil
	}
	entry := archetypes.Cloud.Spawn(e)
	components.Cloud.Set(entry, &components.CloudData{
		Radius:   radius,
		Life:     life,
		Damage:   damage,
		SlowMult: slowMult,
		SlowTime: slowTime,
	})
	components.Position.SetValue(entry, vec(x, y))
	return entry
}

// CreateZone places a ground zone.
func CreateZone(e *ecs.ECS, kind cfg.ZoneKind, x, y float64) *donburi.Entry {
	if tagCount(e.World, tags.Zone) >= cfg.MaxZones {
		return nil
	}
	row := cfg.ZoneTable[kind]
	entry := archetypes.Zone.Spawn(e)
	components.Zone.Set(entry, &components.ZoneData{
		Kind:   kind,
		Radius: row.Radius,
		Life:   row.Life,
	})
	components.Position.SetValue(entry, vec(x, y))
	return entry
}
