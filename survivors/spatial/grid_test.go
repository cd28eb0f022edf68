package spatial

import (
	"testing"

	"github.com/yohamta/donburi"
)

var testTag = donburi.NewTag().SetName("GridTest")

func newEntities(t *testing.T, n int) []donburi.Entity {
	t.Helper()
	w := donburi.NewWorld()
	ents := make([]donburi.Entity, n)
	for i := range ents {
		ents[i] = w.Create(testTag)
	}
	return ents
}

func TestForEachNeighborRadius(t *testing.T) {
	g := NewGrid(1600, 1000, 64)
	ents := newEntities(t, 3)

	g.Insert(ents[0], 100, 100)
	g.Insert(ents[1], 140, 100) // 40 away
	g.Insert(ents[2], 400, 400) // far

	seen := map[donburi.Entity]bool{}
	g.ForEachNeighbor(100, 100, 50, func(ent donburi.Entity, _, _ float64) {
		seen[ent] = true
	})

	if !seen[ents[0]] || !seen[ents[1]] {
		t.Fatalf("expected both close entities visited, got %v", seen)
	}
	if seen[ents[2]] {
		t.Fatal("distant entity should not be visited")
	}
}

func TestNearest(t *testing.T) {
	g := NewGrid(1600, 1000, 64)
	ents := newEntities(t, 3)

	g.Insert(ents[0], 300, 300)
	g.Insert(ents[1], 320, 300)
	g.Insert(ents[2], 500, 300)

	ent, x, _, ok := g.Nearest(330, 300, 400, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if ent != ents[1] || x != 320 {
		t.Fatalf("nearest = %v at x=%v, want ents[1] at 320", ent, x)
	}

	// skip the closest, next one wins
	ent, _, _, ok = g.Nearest(330, 300, 400, func(e donburi.Entity) bool { return e == ents[1] })
	if !ok || ent != ents[0] {
		t.Fatalf("with skip, nearest = %v, want ents[0]", ent)
	}

	// out of range
	if _, _, _, ok := g.Nearest(330, 300, 5, nil); ok {
		t.Fatal("expected no hit inside radius 5")
	}
}

func TestCellOverflowSoftClips(t *testing.T) {
	g := NewGrid(1600, 1000, 64)
	ents := newEntities(t, entriesPerCell+1)

	for i := 0; i < entriesPerCell; i++ {
		if !g.Insert(ents[i], 10, 10) {
			t.Fatalf("insert %d should fit", i)
		}
	}
	if g.Insert(ents[entriesPerCell], 10, 10) {
		t.Fatal("insert into a full cell should report false")
	}
	if got := g.Count(); got != entriesPerCell {
		t.Fatalf("Count() = %d, want %d", got, entriesPerCell)
	}
}

func TestResetAndClamping(t *testing.T) {
	g := NewGrid(1600, 1000, 64)
	ents := newEntities(t, 2)

	// outside the world on both axes, clamps to border cells
	g.Insert(ents[0], -50, -50)
	g.Insert(ents[1], 99999, 99999)

	found := 0
	g.ForEachNeighbor(0, 0, 120, func(donburi.Entity, float64, float64) { found++ })
	if found != 1 {
		t.Fatalf("expected the clamped entity near origin, found %d", found)
	}

	g.Reset()
	if g.Count() != 0 {
		t.Fatalf("Count() after Reset = %d, want 0", g.Count())
	}
}
