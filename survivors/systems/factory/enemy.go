package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/survivors/archetypes"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/tags"
)

// CreateEnemy spawns one enemy of the given type, scaling health by
// the current difficulty and rolling a champion affix when allowed.
// Returns nil when the enemy cap is reached.
func CreateEnemy(e *ecs.ECS, t cfg.EnemyType, x, y float64, allowChampion bool) *donburi.Entry {
	if tagCount(e.World, tags.Enemy) >= cfg.MaxEnemies {
		return nil
	}
	session := components.MustSession(e.World)
	row := cfg.EnemyTable[t]

	data := components.EnemyData{
		Type:      t,
		Speed:     row.Speed,
		Size:      row.Size,
		Damage:    row.Damage,
		XP:        row.XP,
		MaxHealth: int(float64(row.Health) * session.Difficulty),
		SlowMult:  1,
	}

	if allowChampion && t != cfg.EnemyBoss &&
		session.Wave >= cfg.ChampionMinWave &&
		session.Rand.Chance(cfg.ChampionChance) {
		data.Champion = true
		data.Affix = cfg.RollableAffixes[session.Rand.IntN(len(cfg.RollableAffixes))]
		data.MaxHealth = int(float64(data.MaxHealth) * cfg.ChampionHealthMult)
		data.XP = int(float64(data.XP) * cfg.ChampionXPMult)
		data.Size *= cfg.ChampionSizeMult
	}
	if data.MaxHealth < 1 {
		data.MaxHealth = 1
	}
	data.Health = data.MaxHealth

	entry := archetypes.Enemy.Spawn(e)
	components.Enemy.Set(entry, &data)
	components.Position.SetValue(entry, vec(x, y))

	if t == cfg.EnemyBoss {
		session.BossAlive = true
	}
	return entry
}

// CreateDecoy spawns a mirror image: same look as its source, dies to
// a single hit and grants nothing.
func CreateDecoy(e *ecs.ECS, src *components.EnemyData, x, y float64) *donburi.Entry {
	if tagCount(e.World, tags.Enemy) >= cfg.MaxEnemies {
		return nil
	}
	data := components.EnemyData{
		Type:      src.Type,
		Speed:     src.Speed,
		Size:      src.Size,
		Damage:    src.Damage,
		MaxHealth: cfg.MirrorDecoyHealth,
		Health:    cfg.MirrorDecoyHealth,
		SlowMult:  1,
		Decoy:     true,
		Life:      cfg.MirrorDecoyLife,
	}
	entry := archetypes.Enemy.Spawn(e)
	components.Enemy.Set(entry, &data)
	components.Position.SetValue(entry, vec(x, y))
	return entry
}

// CreateSplitChild spawns one shard of a dying splitter champion.
func CreateSplitChild(e *ecs.ECS, parent *components.EnemyData, x, y float64) *donburi.Entry {
	if tagCount(e.World, tags.Enemy) >= cfg.MaxEnemies {
		return nil
	}
	row := cfg.EnemyTable[parent.Type]
	hp := int(float64(parent.MaxHealth) * cfg.AffixSplitHealth)
	if hp < 1 {
		hp = 1
	}
	data := components.EnemyData{
		Type:      parent.Type,
		Speed:     row.Speed,
		Size:      row.Size * 0.8,
		Damage:    row.Damage / 2,
		XP:        row.XP / 2,
		MaxHealth: hp,
		Health:    hp,
		SlowMult:  1,
	}
	if data.Damage < 1 {
		data.Damage = 1
	}
	entry := archetypes.Enemy.Spawn(e)
	components.Enemy.Set(entry, &data)
	components.Position.SetValue(entry, vec(x, y))
	return entry
}
