package systems

import (
	"fmt"
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/systems/factory"
)

// GainXP feeds experience through the level curve. Every threshold
// crossed grants a point; crossing at least one opens the level-up
// screen, and reaching the victory level ends the run instead.
func GainXP(e *ecs.ECS, amount int) {
	if amount <= 0 {
		return
	}
	session := components.MustSession(e.World)
	entry, player := components.MustPlayer(e.World)

	player.XP += amount
	session.XPPulse = 1

	leveled := false
	for player.XP >= player.XPNeed {
		player.XP -= player.XPNeed
		player.Level++
		player.Points++
		player.XPNeed = cfg.XPForLevel(player.Level)
		leveled = true

		if player.Level >= cfg.VictoryLevel {
			endRun(e, cfg.StateVictory)
			return
		}
	}
	if !leveled {
		return
	}

	// one celebration even when several thresholds fell together
	pos := components.Position.Get(entry)
	session.Hitstop = math.Max(session.Hitstop, cfg.Combat.HitstopLevelUp)
	session.Flash(0.15, cfg.ColorXPBar)
	burst(e, pos.X, pos.Y, 18, cfg.ColorXPBar, 170)
	popDamage(e, pos.X, pos.Y-24, fmt.Sprintf("LEVEL %d", player.Level), true, cfg.ColorXPBar)

	rollOffers(e)
	session.EnterState(cfg.StateLevelUp)
}

// rollOffers builds the level-up carousel: branch choices first, then
// one branch-tier raise, then the shuffled generic pool, then Done.
func rollOffers(e *ecs.ECS) {
	session := components.MustSession(e.World)
	loadout := components.MustLoadout(e.World)
	_, player := components.MustPlayer(e.World)
	offers := components.MustOffers(e.World)
	*offers = components.OffersData{}

	add := func(o components.Offer) {
		if offers.Count < cfg.OfferSlots {
			offers.Entries[offers.Count] = o
			offers.Count++
		}
	}

	// a weapon that reached tier 2 without a branch offers all three
	for w := cfg.WeaponID(0); w < cfg.WeaponCount; w++ {
		s := &loadout.Slots[w]
		if !s.Unlocked || s.Tier < 2 || s.Branch != cfg.BranchNone {
			continue
		}
		for b := 0; b < 3; b++ {
			br := cfg.WeaponBranches[w][b]
			add(components.Offer{
				Kind:    components.OfferBranchPick,
				Weapon:  w,
				Branch:  cfg.BranchKind(b + 1),
				Cost:    cfg.BranchPickCost,
				Title:   br.Name,
				Desc:    cfg.WeaponTable[w].Name + ": " + br.Desc,
				Offense: true,
			})
		}
		break
	}

	// one raise for a picked branch still below its cap
	for w := cfg.WeaponID(0); w < cfg.WeaponCount; w++ {
		s := &loadout.Slots[w]
		if !s.Unlocked || s.Branch == cfg.BranchNone || s.BranchTier >= cfg.BranchTierMax {
			continue
		}
		br := cfg.WeaponBranches[w][s.Branch-1]
		add(components.Offer{
			Kind:    components.OfferBranchTier,
			Weapon:  w,
			Branch:  s.Branch,
			Cost:    cfg.BranchTierCost(s.BranchTier),
			Title:   br.Name,
			Desc:    fmt.Sprintf("%s to tier %d", br.Name, s.BranchTier+1),
			Offense: true,
		})
		break
	}

	var pool [cfg.UpgradeKindCount]cfg.UpgradeKind
	for i := range pool {
		pool[i] = cfg.UpgradeKind(i)
	}
	session.Rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for _, k := range pool {
		if offers.Count >= cfg.OfferSlots {
			break
		}
		tmpl := cfg.UpgradeTable[k]
		o := components.Offer{
			Kind:    components.OfferUpgrade,
			Upgrade: k,
			Cost:    1,
			Title:   tmpl.Name,
			Desc:    tmpl.Desc,
			Offense: tmpl.Offense,
		}
		switch k {
		case cfg.UpProjectile:
			if player.ExtraProjectile >= cfg.MaxProjectile {
				continue
			}
		case cfg.UpWeaponTier:
			w, ok := pickWeapon(session.Rand, func(w cfg.WeaponID) bool {
				return loadout.Slots[w].Unlocked && loadout.Slots[w].Tier < cfg.WeaponTierMax
			})
			if !ok {
				continue
			}
			o.Weapon = w
			o.Cost = cfg.WeaponTierCost
			o.Desc = fmt.Sprintf("%s to tier %d", cfg.WeaponTable[w].Name, loadout.Slots[w].Tier+1)
		case cfg.UpWeaponUnlock:
			w, ok := pickWeapon(session.Rand, func(w cfg.WeaponID) bool {
				return !loadout.Slots[w].Unlocked
			})
			if !ok {
				continue
			}
			o.Weapon = w
			o.Cost = cfg.WeaponUnlockCost
			o.Desc = "Unlock the " + cfg.WeaponTable[w].Name
		}
		add(o)
	}

	offers.Entries[offers.Count] = components.Offer{
		Kind:  components.OfferDone,
		Title: "Done",
		Desc:  "Back to the fight",
	}
	offers.Count++
}

// pickWeapon draws one weapon uniformly from those passing keep.
func pickWeapon(r *gamemath.Rand, keep func(cfg.WeaponID) bool) (cfg.WeaponID, bool) {
	var picks [cfg.WeaponCount]cfg.WeaponID
	n := 0
	for w := cfg.WeaponID(0); w < cfg.WeaponCount; w++ {
		if keep(w) {
			picks[n] = w
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return picks[r.IntN(n)], true
}

func offerCount(e *ecs.ECS) int {
	return components.MustOffers(e.World).Count
}

// BuyOffer spends points on the carousel entry at idx and reports
// whether the screen should close, which only the Done entry does.
// Bought offers stay visible so the screen supports several purchases
// per visit.
func BuyOffer(e *ecs.ECS, idx int) bool {
	offers := components.MustOffers(e.World)
	if idx < 0 || idx >= offers.Count {
		return false
	}
	o := &offers.Entries[idx]
	if o.Kind == components.OfferDone {
		return true
	}
	_, player := components.MustPlayer(e.World)
	if !o.Buyable() || player.Points < o.Cost {
		return false
	}

	player.Points -= o.Cost
	o.Purchased = true
	applyOffer(e, offers, o)
	return false
}

func applyOffer(e *ecs.ECS, offers *components.OffersData, o *components.Offer) {
	loadout := components.MustLoadout(e.World)

	switch o.Kind {
	case components.OfferBranchPick:
		s := &loadout.Slots[o.Weapon]
		s.Branch = o.Branch
		s.BranchTier = 1
		// picking one branch forecloses its siblings for the run
		for i := 0; i < offers.Count; i++ {
			sib := &offers.Entries[i]
			if sib.Kind == components.OfferBranchPick && sib.Weapon == o.Weapon && !sib.Purchased {
				sib.Closed = true
			}
		}
	case components.OfferBranchTier:
		loadout.Slots[o.Weapon].BranchTier++
	case components.OfferUpgrade:
		applyUpgrade(e, loadout, o)
	}
}

func applyUpgrade(e *ecs.ECS, loadout *components.LoadoutData, o *components.Offer) {
	_, player := components.MustPlayer(e.World)
	v := cfg.UpgradeTable[o.Upgrade].Value

	switch o.Upgrade {
	case cfg.UpDamage:
		player.DamageMult += v
	case cfg.UpAttackSpeed:
		player.AttackSpeedMult += v
	case cfg.UpArea:
		player.AreaMult += v
	case cfg.UpProjectile:
		if player.ExtraProjectile < cfg.MaxProjectile {
			player.ExtraProjectile++
		}
	case cfg.UpCrit:
		player.CritChance = math.Min(player.CritChance+v, cfg.CritCap)
	case cfg.UpWeaponTier:
		s := &loadout.Slots[o.Weapon]
		if s.Tier < cfg.WeaponTierMax {
			s.Tier++
		}
	case cfg.UpWeaponUnlock:
		unlockWeapon(e, loadout, o.Weapon)
	case cfg.UpMaxHealth:
		player.MaxHealth += int(v)
		player.Health += int(v)
	case cfg.UpArmor:
		player.Armor = math.Min(player.Armor+v, cfg.ArmorCap)
	case cfg.UpRegen:
		player.Regen += v
	case cfg.UpDodge:
		player.Dodge = math.Min(player.Dodge+v, cfg.DodgeCap)
	case cfg.UpLifesteal:
		player.Lifesteal += v
	case cfg.UpMagnet:
		player.Magnet += v
	case cfg.UpThorns:
		player.Thorns += int(v)
	case cfg.UpXPGain:
		player.XPMult += v
	}
}

// unlockWeapon opens the slot and announces any synergy the new weapon
// just completed.
func unlockWeapon(e *ecs.ECS, loadout *components.LoadoutData, w cfg.WeaponID) {
	var before [len(cfg.Synergies)]bool
	for i := range cfg.Synergies {
		before[i] = loadout.SynergyActive(cfg.Synergies[i])
	}

	loadout.Unlock(w)

	announce := components.MustAnnouncements(e.World)
	for i := range cfg.Synergies {
		s := cfg.Synergies[i]
		if before[i] || !loadout.SynergyActive(s) {
			continue
		}
		announce.Push(components.Announcement{
			Text:  "SYNERGY: " + s.Name,
			Sub:   s.Desc,
			Life:  2.5,
			Color: cfg.ColorGold,
		})
		if entry, ok := components.Player.First(e.World); ok {
			pos := components.Position.Get(entry)
			burst(e, pos.X, pos.Y, 14, cfg.ColorGold, 150)
		}
	}
}

// StartRun begins a fresh run for the chosen class: new hero, clean
// loadout, then on to the weapon choice. Re-entering from a backed-out
// weapon select rebuilds the hero.
func StartRun(e *ecs.ECS, class cfg.ClassID) {
	session := components.MustSession(e.World)
	if entry, ok := components.Player.First(e.World); ok {
		e.World.Remove(entry.Entity())
	}
	factory.CreatePlayer(e, class)

	loadout := components.MustLoadout(e.World)
	*loadout = components.NewLoadoutData()

	session.EnterState(cfg.StateWeaponSelect)
}

// PickStartingWeapon opens the chosen slot and starts the countdown.
func PickStartingWeapon(e *ecs.ECS, w cfg.WeaponID) {
	session := components.MustSession(e.World)
	loadout := components.MustLoadout(e.World)
	loadout.Unlock(w)
	session.EnterState(cfg.StateCountdown)
}

// RestartRun tears the whole run down and returns to the title screen.
func RestartRun(e *ecs.ECS) {
	session := components.MustSession(e.World)

	var doomed []donburi.Entity
	components.Position.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	for _, ent := range doomed {
		e.World.Remove(ent)
	}

	*components.MustLoadout(e.World) = components.NewLoadoutData()
	*components.MustOffers(e.World) = components.OffersData{}
	*components.MustSpawner(e.World) = components.SpawnerData{}
	*components.MustParticles(e.World) = components.ParticlesData{}
	*components.MustPopups(e.World) = components.PopupsData{}
	*components.MustUIParticles(e.World) = components.UIParticlesData{}
	*components.MustAnnouncements(e.World) = components.AnnouncementsData{}
	*components.MustCamera(e.World) = components.CameraData{
		X: cfg.World.Width / 2,
		Y: cfg.World.Height / 2,
	}

	ResetGrid()
	session.ResetRun()
	session.EnterState(cfg.StateMenu)
}
