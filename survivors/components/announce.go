package components

import (
	"image/color"

	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// Announcement is one banner line shown center screen: wave changes,
// streak milestones, synergies, boss warnings.
type Announcement struct {
	Text    string
	Sub     string
	Life    float64
	MaxLife float64
	Color   color.RGBA
}

// AnnouncementsData is a small fixed queue of banners, newest last.
type AnnouncementsData struct {
	Items [cfg.MaxAnnouncements]Announcement
	Count int
}

var Announcements = donburi.NewComponentType[AnnouncementsData]()

// MustAnnouncements returns the singleton queue.
func MustAnnouncements(w donburi.World) *AnnouncementsData {
	entry, ok := Announcements.First(w)
	if !ok {
		panic("announcements singleton missing")
	}
	return Announcements.Get(entry)
}

// Push appends a banner, dropping the oldest when full.
func (a *AnnouncementsData) Push(item Announcement) {
	if item.MaxLife <= 0 {
		item.MaxLife = item.Life
	}
	if a.Count == len(a.Items) {
		copy(a.Items[:], a.Items[1:])
		a.Count--
	}
	a.Items[a.Count] = item
	a.Count++
}

// Update expires banners front to back.
func (a *AnnouncementsData) Update(dt float64) {
	for i := 0; i < a.Count; i++ {
		a.Items[i].Life -= dt
	}
	for a.Count > 0 && a.Items[0].Life <= 0 {
		copy(a.Items[:], a.Items[1:a.Count])
		a.Count--
	}
}
