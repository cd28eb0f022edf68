package host

import (
	"testing"

	"github.com/pautown/llizard-plugins/plugin"
)

const frame = 1.0 / 60

func TestFirstIdleFrameMapsToZero(t *testing.T) {
	var m Mapper
	if got := m.Map(sample{}, frame); got != (plugin.Input{}) {
		t.Fatalf("first idle frame = %+v, want zero snapshot", got)
	}
}

func TestWheelAndMousePassThrough(t *testing.T) {
	var m Mapper
	in := m.Map(sample{Scroll: 3, MouseX: 12, MouseY: 34, MouseDown: true}, frame)

	if in.ScrollDelta != 3 {
		t.Errorf("ScrollDelta = %v, want 3", in.ScrollDelta)
	}
	if in.MouseX != 12 || in.MouseY != 34 || !in.MousePressed {
		t.Errorf("mouse fields = %v,%v,%v", in.MouseX, in.MouseY, in.MousePressed)
	}
}

func TestKeyEdgesFireOnce(t *testing.T) {
	var m Mapper
	held := sample{Up: true, Down: true, Select: true}

	in := m.Map(held, frame)
	if !in.UpPressed || !in.DownPressed || !in.SelectPressed {
		t.Fatalf("edges missing on press frame: %+v", in)
	}

	in = m.Map(held, frame)
	if in.UpPressed || in.DownPressed || in.SelectPressed {
		t.Errorf("held keys re-fired: %+v", in)
	}
}

func TestBackReportsPressAndRelease(t *testing.T) {
	var m Mapper

	in := m.Map(sample{Back: true}, frame)
	if !in.BackPressed || in.BackReleased {
		t.Fatalf("press frame = %+v", in)
	}
	in = m.Map(sample{Back: true}, frame)
	if in.BackPressed || in.BackReleased {
		t.Fatalf("held frame = %+v", in)
	}
	in = m.Map(sample{}, frame)
	if in.BackPressed || !in.BackReleased {
		t.Fatalf("release frame = %+v", in)
	}
}

func TestShortClickTaps(t *testing.T) {
	var m Mapper
	down := sample{MouseDown: true, MouseX: 100, MouseY: 100}

	for i := 0; i < 6; i++ {
		if in := m.Map(down, frame); in.Tap || in.Hold {
			t.Fatalf("gesture fired while still pressed: %+v", in)
		}
	}

	in := m.Map(sample{MouseX: 100, MouseY: 100}, frame)
	if !in.Tap {
		t.Fatal("short still click did not tap")
	}
	if in.Hold || in.SwipeLeft || in.SwipeRight || in.SwipeUp || in.SwipeDown {
		t.Errorf("tap came with extras: %+v", in)
	}
}

func TestReleaseAfterTapWindowIsSilent(t *testing.T) {
	var m Mapper
	down := sample{MouseDown: true, MouseX: 100, MouseY: 100}

	// 25 frames ~ 0.42s: past the tap window, short of a hold
	for i := 0; i < 25; i++ {
		m.Map(down, frame)
	}
	in := m.Map(sample{MouseX: 100, MouseY: 100}, frame)
	if in.Tap || in.Hold {
		t.Errorf("stale release produced %+v", in)
	}
}

func TestHoldFiresOnceAtHalfASecond(t *testing.T) {
	var m Mapper
	down := sample{MouseDown: true, MouseX: 50, MouseY: 50}

	holds := 0
	for i := 0; i < 45; i++ {
		if m.Map(down, frame).Hold {
			holds++
		}
	}
	if holds != 1 {
		t.Fatalf("hold fired %d times over a long press, want 1", holds)
	}

	if in := m.Map(sample{MouseX: 50, MouseY: 50}, frame); in.Tap {
		t.Error("release after a hold still tapped")
	}
}

func TestDragTracksPerFrameDeltas(t *testing.T) {
	var m Mapper
	m.Map(sample{MouseDown: true, MouseX: 100, MouseY: 100}, frame)

	in := m.Map(sample{MouseDown: true, MouseX: 110, MouseY: 100}, frame)
	if !in.DragActive {
		t.Fatal("10px of travel did not start a drag")
	}
	if in.DragDeltaX != 10 || in.DragDeltaY != 0 {
		t.Errorf("delta = %v,%v, want 10,0", in.DragDeltaX, in.DragDeltaY)
	}
	if in.DragX != 110 || in.DragY != 100 {
		t.Errorf("position = %v,%v, want 110,100", in.DragX, in.DragY)
	}

	in = m.Map(sample{MouseDown: true, MouseX: 112, MouseY: 103}, frame)
	if in.DragDeltaX != 2 || in.DragDeltaY != 3 {
		t.Errorf("second delta = %v,%v, want 2,3", in.DragDeltaX, in.DragDeltaY)
	}

	in = m.Map(sample{MouseX: 112, MouseY: 103}, frame)
	if in.DragActive {
		t.Error("drag survived the release")
	}
	if in.Tap {
		t.Error("drag release tapped")
	}
	if in.SwipeLeft || in.SwipeRight || in.SwipeUp || in.SwipeDown {
		t.Errorf("slow drag release swiped: %+v", in)
	}
}

func TestTinyJitterStaysATap(t *testing.T) {
	var m Mapper
	m.Map(sample{MouseDown: true, MouseX: 100, MouseY: 100}, frame)
	m.Map(sample{MouseDown: true, MouseX: 103, MouseY: 101}, frame)

	in := m.Map(sample{MouseX: 103, MouseY: 101}, frame)
	if !in.Tap {
		t.Error("click with sub-slop jitter lost its tap")
	}
}

func TestFastFlickSwipes(t *testing.T) {
	flick := func(dx, dy float64) plugin.Input {
		var m Mapper
		x, y := 200.0, 200.0
		m.Map(sample{MouseDown: true, MouseX: x, MouseY: y}, frame)
		for i := 0; i < 3; i++ {
			x += dx
			y += dy
			m.Map(sample{MouseDown: true, MouseX: x, MouseY: y}, frame)
		}
		return m.Map(sample{MouseX: x, MouseY: y}, frame)
	}

	if in := flick(40, 0); !in.SwipeRight || in.SwipeLeft {
		t.Errorf("rightward flick = %+v", in)
	}
	if in := flick(-40, 0); !in.SwipeLeft {
		t.Errorf("leftward flick = %+v", in)
	}
	if in := flick(0, 40); !in.SwipeDown {
		t.Errorf("downward flick = %+v", in)
	}
	if in := flick(0, -40); !in.SwipeUp {
		t.Errorf("upward flick = %+v", in)
	}
}
