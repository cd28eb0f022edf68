package plugin

import "testing"

func stub(name string) Factory {
	return func() *Plugin {
		return &Plugin{
			Name:       name,
			Category:   CategoryGame,
			Init:       func(w, h int) {},
			Update:     func(in Input, dt float64) {},
			Shutdown:   func() {},
			WantsClose: func() bool { return false },
		}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("ztest-b", stub("B"))
	Register("ztest-a", stub("A"))

	if !Exists("ztest-a") {
		t.Fatal("ztest-a should exist after Register")
	}

	p, err := Create("ztest-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name != "A" {
		t.Errorf("Name = %q, expected A", p.Name)
	}

	if _, err := Create("ztest-missing"); err == nil {
		t.Error("Create of unknown id should fail")
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("ztest-dup", stub("dup"))
	Register("ztest-dup", stub("dup"))
}

func TestInputAnyPress(t *testing.T) {
	if (Input{}).AnyPress() {
		t.Error("zero input should not report a press")
	}
	if !(Input{Tap: true}).AnyPress() {
		t.Error("tap should count as a press")
	}
	if !(Input{SwipeUp: true}).AnyPress() {
		t.Error("swipe should count as a press")
	}
	if (Input{Hold: true}).AnyPress() {
		t.Error("hold alone is not a discrete press")
	}
}
