package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// OfferKind discriminates the level-up carousel entries.
type OfferKind int

const (
	OfferUpgrade OfferKind = iota // a generic template, Upgrade names it
	OfferBranchPick
	OfferBranchTier
	OfferDone
)

// Offer is one carousel entry, fully resolved at roll time: weapon
// targets are chosen then, titles and descriptions already carry the
// interpolated values. Purchased entries stay visible but inert;
// Closed marks a branch choice foreclosed by picking a sibling.
type Offer struct {
	Kind      OfferKind
	Upgrade   cfg.UpgradeKind
	Weapon    cfg.WeaponID
	Branch    cfg.BranchKind
	Cost      int
	Title     string
	Desc      string
	Offense   bool
	Purchased bool
	Closed    bool
}

// Buyable reports whether the entry can still be bought this visit.
func (o *Offer) Buyable() bool {
	return o.Kind != OfferDone && !o.Purchased && !o.Closed
}

// OffersData is the level-up screen singleton, rerolled on every
// level-up. Entries[Count-1] is always the Done entry.
type OffersData struct {
	Entries [cfg.CarouselEntries]Offer
	Count   int
}

var Offers = donburi.NewComponentType[OffersData]()

// MustOffers returns the singleton.
func MustOffers(w donburi.World) *OffersData {
	entry, ok := Offers.First(w)
	if !ok {
		panic("offers singleton missing")
	}
	return Offers.Get(entry)
}
