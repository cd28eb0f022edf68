package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// DamageEventData queues a hit on an enemy for the combat system to
// resolve at the end of the frame. Weapons never mutate enemy health
// directly; they attach or merge one of these.
type DamageEventData struct {
	Amount int
	Crit   bool
	Weapon cfg.WeaponID
	KnockX float64
	KnockY float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

// QueueDamage attaches a damage event to an enemy entry, merging with
// one already queued this frame.
func QueueDamage(entry *donburi.Entry, ev DamageEventData) {
	if entry.HasComponent(DamageEvent) {
		cur := DamageEvent.Get(entry)
		cur.Amount += ev.Amount
		cur.Crit = cur.Crit || ev.Crit
		if ev.KnockX != 0 || ev.KnockY != 0 {
			cur.KnockX = ev.KnockX
			cur.KnockY = ev.KnockY
		}
		return
	}
	donburi.Add(entry, DamageEvent, &ev)
}
