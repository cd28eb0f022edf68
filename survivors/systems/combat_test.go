package systems

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/systems/factory"
)

func TestQueuedDamageMerges(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	entry := spawnEnemy(t, e, cfg.EnemyWalker, 900, 500)
	components.QueueDamage(entry, components.DamageEventData{Amount: 3})
	components.QueueDamage(entry, components.DamageEventData{Amount: 4, Crit: true})

	UpdateCombat(e)

	en := components.Enemy.Get(entry)
	if got, want := en.Health, 10-7; got != want {
		t.Fatalf("health = %d, want %d", got, want)
	}
	if session.DamageDealt != 7 {
		t.Fatalf("DamageDealt = %d, want 7", session.DamageDealt)
	}
	if en.HitFlash <= 0 {
		t.Fatal("a hit should set the flash timer")
	}
}

func TestArmoredAffixHalvesAndFloors(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)

	entry := spawnEnemy(t, e, cfg.EnemyTank, 900, 500)
	en := components.Enemy.Get(entry)
	en.Affix = cfg.AffixArmored
	start := en.Health

	components.QueueDamage(entry, components.DamageEventData{Amount: 10})
	UpdateCombat(e)
	if got, want := start-en.Health, 5; got != want {
		t.Fatalf("armored took %d, want %d", got, want)
	}

	// chip damage still lands for the minimum
	before := en.Health
	components.QueueDamage(entry, components.DamageEventData{Amount: 1})
	UpdateCombat(e)
	if got, want := before-en.Health, cfg.Combat.ArmorMinDamage; got != want {
		t.Fatalf("chip hit took %d, want %d", got, want)
	}
}

func TestSpinnerShellGatesDamage(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)

	entry := spawnEnemy(t, e, cfg.EnemySpinner, 900, 500)
	en := components.Enemy.Get(entry)

	components.QueueDamage(entry, components.DamageEventData{Amount: 20})
	UpdateCombat(e)
	if en.Health != en.MaxHealth {
		t.Fatalf("closed shell took damage, health = %d", en.Health)
	}

	en.AIPhase = spinnerOpen
	components.QueueDamage(entry, components.DamageEventData{Amount: 20})
	UpdateCombat(e)
	if en.Health != en.MaxHealth-20 {
		t.Fatalf("open shell health = %d, want %d", en.Health, en.MaxHealth-20)
	}
}

func TestShielderBlocksOnlyTheFront(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)

	entry := spawnEnemy(t, e, cfg.EnemyShielder, 900, 500)
	en := components.Enemy.Get(entry)
	en.AIAngle = 0 // shield faces +x

	// pushed toward -x means hit from +x, straight into the shield
	components.QueueDamage(entry, components.DamageEventData{Amount: 5, KnockX: -100})
	UpdateCombat(e)
	if en.Health != en.MaxHealth {
		t.Fatalf("frontal hit landed, health = %d", en.Health)
	}

	// hit from behind
	components.QueueDamage(entry, components.DamageEventData{Amount: 5, KnockX: 100})
	UpdateCombat(e)
	if en.Health != en.MaxHealth-5 {
		t.Fatalf("rear hit health = %d, want %d", en.Health, en.MaxHealth-5)
	}

	// directionless damage ignores the shield
	components.QueueDamage(entry, components.DamageEventData{Amount: 5})
	UpdateCombat(e)
	if en.Health != en.MaxHealth-10 {
		t.Fatalf("directionless hit health = %d, want %d", en.Health, en.MaxHealth-10)
	}
}

func TestKillPaysOut(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	entry := spawnEnemy(t, e, cfg.EnemyWalker, 900, 500)
	components.QueueDamage(entry, components.DamageEventData{Amount: 999})
	UpdateCombat(e)

	if entry.Valid() {
		t.Fatal("dead enemy should be removed")
	}
	if session.Kills != 1 {
		t.Fatalf("Kills = %d, want 1", session.Kills)
	}
	if session.KillsByType[cfg.EnemyWalker] != 1 {
		t.Fatalf("KillsByType[walker] = %d, want 1", session.KillsByType[cfg.EnemyWalker])
	}
	if session.BestCombo != 1 || session.BestStreak != 1 {
		t.Fatalf("best combo/streak = %d/%d, want 1/1", session.BestCombo, session.BestStreak)
	}

	gemEntry, ok := components.Gem.First(e.World)
	if !ok {
		t.Fatal("a kill should drop a gem")
	}
	if got, want := components.Gem.Get(gemEntry).Value, cfg.EnemyTable[cfg.EnemyWalker].XP; got != want {
		t.Fatalf("gem value = %d, want %d", got, want)
	}
}

func TestDecoyGrantsNothing(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	src := spawnEnemy(t, e, cfg.EnemyMirror, 900, 500)
	decoy := factory.CreateDecoy(e, components.Enemy.Get(src), 940, 500)
	if decoy == nil {
		t.Fatal("decoy spawn failed")
	}

	components.QueueDamage(decoy, components.DamageEventData{Amount: 999})
	UpdateCombat(e)

	if decoy.Valid() {
		t.Fatal("decoy should die to one hit")
	}
	if session.Kills != 0 {
		t.Fatalf("Kills = %d, want 0 for a decoy", session.Kills)
	}
	if _, ok := components.Gem.First(e.World); ok {
		t.Fatal("a decoy must not drop a gem")
	}
}

func TestComboTierClimbsAtFive(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	for i := 0; i < 5; i++ {
		entry := spawnEnemy(t, e, cfg.EnemyWalker, 900, 500)
		components.QueueDamage(entry, components.DamageEventData{Amount: 999})
		UpdateCombat(e)
	}

	if session.ComboKills != 5 {
		t.Fatalf("ComboKills = %d, want 5", session.ComboKills)
	}
	if session.ComboTier != cfg.ComboNice {
		t.Fatalf("ComboTier = %v, want %v", session.ComboTier, cfg.ComboNice)
	}
	if session.ComboTimer != cfg.ComboWindow {
		t.Fatalf("ComboTimer = %v, want a fresh window", session.ComboTimer)
	}
}

func TestKillMilestoneHeals(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	session := components.MustSession(e.World)

	player.Health = player.MaxHealth - 40
	session.Kills = cfg.KillMilestones[0] - 1

	entry := spawnEnemy(t, e, cfg.EnemyWalker, 900, 500)
	components.QueueDamage(entry, components.DamageEventData{Amount: 999})
	UpdateCombat(e)

	if session.MilestoneIdx != 1 {
		t.Fatalf("MilestoneIdx = %d, want 1", session.MilestoneIdx)
	}
	if got, want := player.Health, player.MaxHealth-40+cfg.MilestoneHealAmount; got != want {
		t.Fatalf("health after milestone = %d, want %d", got, want)
	}
}

func TestBossDeathClearsTheGate(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	entry := spawnEnemy(t, e, cfg.EnemyBoss, 900, 500)
	if !session.BossAlive {
		t.Fatal("boss spawn should raise BossAlive")
	}

	components.QueueDamage(entry, components.DamageEventData{Amount: 99999})
	UpdateCombat(e)

	if session.BossAlive {
		t.Fatal("boss death should clear BossAlive")
	}
	if session.BossDelay != cfg.BossRespawnDelay {
		t.Fatalf("BossDelay = %v, want %v", session.BossDelay, cfg.BossRespawnDelay)
	}
}

func TestHurtPlayerBreaksStreakAndGrantsImmunity(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	pos := components.Position.Get(playerEntry)

	session.StreakKills = 3
	session.StreakTimer = 1

	startX := pos.X
	HurtPlayer(e, 10, pos.X+50, pos.Y, nil)

	if got, want := player.Health, player.MaxHealth-10; got != want {
		t.Fatalf("health = %d, want %d", got, want)
	}
	if session.DamageTaken != 10 {
		t.Fatalf("DamageTaken = %d, want 10", session.DamageTaken)
	}
	if session.StreakKills != 0 {
		t.Fatal("a hit must break the streak")
	}
	if player.Invuln <= 0 {
		t.Fatal("a hit should grant immunity frames")
	}
	if pos.X >= startX {
		t.Fatal("hit from the right should shove the hero left")
	}

	// hits on the same tick stack, the next tick is immune
	HurtPlayer(e, 10, pos.X+50, pos.Y, nil)
	if got, want := player.Health, player.MaxHealth-20; got != want {
		t.Fatalf("same-tick health = %d, want %d", got, want)
	}
	session.Tick++
	HurtPlayer(e, 10, pos.X+50, pos.Y, nil)
	if got, want := player.Health, player.MaxHealth-20; got != want {
		t.Fatalf("immune-tick health = %d, want %d", got, want)
	}
}

func TestPlayerDeathEndsTheRun(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	pos := components.Position.Get(playerEntry)

	player.Health = 1
	HurtPlayer(e, 999, pos.X+10, pos.Y, nil)

	if player.Health != 0 {
		t.Fatalf("health = %d, want 0", player.Health)
	}
	if session.State != cfg.StateGameOver {
		t.Fatalf("state = %v, want game over", session.State)
	}
}

func TestPlayerArmorShavesDamageToAFloor(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	pos := components.Position.Get(playerEntry)
	player.Armor = 25

	HurtPlayer(e, 20, pos.X+10, pos.Y, nil)
	if got, want := player.MaxHealth-player.Health, 15; got != want {
		t.Fatalf("took %d through 25%% armor, want %d", got, want)
	}

	// same-tick chip hit still lands for the minimum
	HurtPlayer(e, 1, pos.X+10, pos.Y, nil)
	if got, want := player.MaxHealth-player.Health, 15+cfg.Combat.ArmorMinDamage; got != want {
		t.Fatalf("took %d total, want %d", got, want)
	}
}

func TestSplitterChampionLeavesChildren(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)

	parent := spawnEnemy(t, e, cfg.EnemyTank, 900, 500)
	en := components.Enemy.Get(parent)
	en.Affix = cfg.AffixSplitter
	parentMax := en.MaxHealth

	components.QueueDamage(parent, components.DamageEventData{Amount: en.Health})
	UpdateCombat(e)

	var children []*components.EnemyData
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		children = append(children, components.Enemy.Get(entry))
	})
	if len(children) != cfg.AffixSplitCount {
		t.Fatalf("children = %d, want %d", len(children), cfg.AffixSplitCount)
	}
	want := int(float64(parentMax) * cfg.AffixSplitHealth)
	for _, c := range children {
		if c.Type != cfg.EnemyTank {
			t.Fatalf("child type = %v, want the parent's", c.Type)
		}
		if c.Health != want {
			t.Fatalf("child health = %d, want %d", c.Health, want)
		}
		if c.Affix != cfg.AffixNone {
			t.Fatal("children are never champions")
		}
	}
}

func TestLifestealStaysUnderTheCap(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)

	if got := player.LifestealPercent(); got != 0 {
		t.Fatalf("percent = %v without the stat, want 0", got)
	}
	player.Lifesteal = 1000
	pct := player.LifestealPercent()
	if pct >= cfg.Player.LifestealMax {
		t.Fatalf("percent = %v, the curve must stay under %v", pct, cfg.Player.LifestealMax)
	}
	if pct < cfg.Player.LifestealMax*0.9 {
		t.Fatalf("percent = %v, want close to the cap for a huge stat", pct)
	}

	player.Health = 50
	entry := spawnEnemy(t, e, cfg.EnemyWalker, 900, 500)
	components.QueueDamage(entry, components.DamageEventData{Amount: 100})
	UpdateCombat(e)

	healed := player.Health - 50
	if healed <= 0 {
		t.Fatal("a hit with lifesteal should heal")
	}
	if healed > int(cfg.Player.LifestealMax) {
		t.Fatalf("healed %d off a 100 hit, cap is %v%%", healed, cfg.Player.LifestealMax)
	}
}
