package systems

import (
	"strings"
	"testing"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

func TestGainXPLevelsUp(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	session := components.MustSession(e.World)

	GainXP(e, player.XPNeed)

	if player.Level != 2 {
		t.Fatalf("level = %d, want 2", player.Level)
	}
	if player.Points != 1 {
		t.Fatalf("points = %d, want 1", player.Points)
	}
	if player.XP != 0 {
		t.Fatalf("leftover xp = %d, want 0", player.XP)
	}
	if got, want := player.XPNeed, cfg.XPForLevel(2); got != want {
		t.Fatalf("next threshold = %d, want %d", got, want)
	}
	if session.State != cfg.StateLevelUp {
		t.Fatalf("state = %v, want level-up", session.State)
	}
	if session.XPPulse == 0 {
		t.Fatal("gaining xp should pulse the bar")
	}

	offers := components.MustOffers(e.World)
	if offers.Count < 2 {
		t.Fatalf("offer count = %d, want at least an upgrade and Done", offers.Count)
	}
	if offers.Entries[offers.Count-1].Kind != components.OfferDone {
		t.Fatal("the carousel must end with Done")
	}
}

func TestGainXPCarriesAcrossThresholds(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)

	GainXP(e, cfg.XPForLevel(1)+cfg.XPForLevel(2)+3)

	if player.Level != 3 {
		t.Fatalf("level = %d, want 3", player.Level)
	}
	if player.Points != 2 {
		t.Fatalf("points = %d, want 2", player.Points)
	}
	if player.XP != 3 {
		t.Fatalf("leftover xp = %d, want 3", player.XP)
	}
}

func TestVictoryAtTheLevelCap(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	session := components.MustSession(e.World)

	player.Level = cfg.VictoryLevel - 1
	player.XPNeed = 5
	GainXP(e, 5)

	if session.State != cfg.StateVictory {
		t.Fatalf("state = %v, want victory", session.State)
	}
}

func TestTierTwoWeaponOffersItsBranches(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	loadout := components.MustLoadout(e.World)
	loadout.Slots[cfg.WeaponMelee].Tier = 2

	rollOffers(e)

	offers := components.MustOffers(e.World)
	for b := 0; b < 3; b++ {
		o := offers.Entries[b]
		if o.Kind != components.OfferBranchPick || o.Weapon != cfg.WeaponMelee {
			t.Fatalf("entry %d = %+v, want a melee branch pick", b, o)
		}
		if o.Branch != cfg.BranchKind(b+1) {
			t.Fatalf("entry %d branch = %v, want %v", b, o.Branch, cfg.BranchKind(b+1))
		}
	}
}

func TestBranchPickForeclosesSiblings(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	loadout := components.MustLoadout(e.World)
	loadout.Slots[cfg.WeaponMelee].Tier = 2
	player.Points = cfg.BranchPickCost

	rollOffers(e)
	offers := components.MustOffers(e.World)

	if closed := BuyOffer(e, 0); closed {
		t.Fatal("buying a branch should keep the screen open")
	}
	if player.Points != 0 {
		t.Fatalf("points = %d, want 0 after the pick", player.Points)
	}

	slot := &loadout.Slots[cfg.WeaponMelee]
	if slot.Branch != cfg.BranchKind(1) || slot.BranchTier != 1 {
		t.Fatalf("slot branch/tier = %v/%d, want 1/1", slot.Branch, slot.BranchTier)
	}
	if !offers.Entries[0].Purchased {
		t.Fatal("bought entry should read purchased")
	}
	if !offers.Entries[1].Closed || !offers.Entries[2].Closed {
		t.Fatal("sibling branches should be foreclosed")
	}

	// a foreclosed sibling refuses the sale even with points in hand
	player.Points = cfg.BranchPickCost
	if BuyOffer(e, 1) || loadout.Slots[cfg.WeaponMelee].Branch != cfg.BranchKind(1) {
		t.Fatal("foreclosed branch must not sell")
	}
	if player.Points != cfg.BranchPickCost {
		t.Fatalf("points = %d, want unspent", player.Points)
	}

	// the next roll raises the picked branch instead of re-offering picks
	rollOffers(e)
	first := components.MustOffers(e.World).Entries[0]
	if first.Kind != components.OfferBranchTier || first.Weapon != cfg.WeaponMelee {
		t.Fatalf("first offer = %+v, want a melee branch raise", first)
	}
}

func TestBuyOfferRefusesWhenBroke(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	player.Points = 0

	rollOffers(e)
	offers := components.MustOffers(e.World)

	if BuyOffer(e, 0) {
		t.Fatal("a refused sale must not close the screen")
	}
	if offers.Entries[0].Purchased {
		t.Fatal("nothing should sell on zero points")
	}
}

func TestDoneClosesTheScreen(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	player.Points = 5

	rollOffers(e)
	offers := components.MustOffers(e.World)

	if !BuyOffer(e, offers.Count-1) {
		t.Fatal("Done should close the screen")
	}
	if player.Points != 5 {
		t.Fatalf("points = %d, Done must not spend", player.Points)
	}
}

func TestUnlockingThePairAnnouncesTheSynergy(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e) // melee in hand
	loadout := components.MustLoadout(e.World)
	announce := components.MustAnnouncements(e.World)
	before := announce.Count

	unlockWeapon(e, loadout, cfg.WeaponRadius)

	if loadout.SynergyCount() == 0 {
		t.Fatal("melee plus orbiters should complete a synergy")
	}
	if announce.Count != before+1 {
		t.Fatalf("announcement count = %d, want %d", announce.Count, before+1)
	}
	if !strings.HasPrefix(announce.Items[announce.Count-1].Text, "SYNERGY") {
		t.Fatalf("announcement = %q, want a synergy banner", announce.Items[announce.Count-1].Text)
	}

	// a second unlock of the same weapon changes nothing
	unlockWeapon(e, loadout, cfg.WeaponRadius)
	if announce.Count != before+1 {
		t.Fatal("re-unlocking must not re-announce")
	}
}
