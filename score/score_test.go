package score

import "testing"

func TestMemStoreSubmit(t *testing.T) {
	s := NewMemStore()

	if s.Best("survivors") != 0 {
		t.Fatal("fresh store should report 0")
	}
	if !s.Submit("survivors", 100) {
		t.Error("first score should be a new best")
	}
	if s.Submit("survivors", 80) {
		t.Error("lower score should not replace best")
	}
	if s.Submit("survivors", 100) {
		t.Error("equal score should not replace best")
	}
	if !s.Submit("survivors", 150) {
		t.Error("higher score should replace best")
	}
	if got := s.Best("survivors"); got != 150 {
		t.Errorf("Best = %d, expected 150", got)
	}
}

func TestMemStoreModesIndependent(t *testing.T) {
	s := NewMemStore()
	s.Submit("blocks", 40)
	s.Submit("quiz", 7)

	if s.Best("blocks") != 40 || s.Best("quiz") != 7 {
		t.Errorf("modes should not share bests: blocks=%d quiz=%d", s.Best("blocks"), s.Best("quiz"))
	}
	if s.Best("skier") != 0 {
		t.Error("untouched mode should report 0")
	}
}
