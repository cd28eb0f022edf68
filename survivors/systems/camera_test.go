package systems

import (
	"testing"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

func TestCameraEasesTowardTheHero(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, _ := startPlaying(t, e)
	session := components.MustSession(e.World)
	cam := components.MustCamera(e.World)
	ppos := components.Position.Get(playerEntry)

	cam.X, cam.Y = ppos.X-200, ppos.Y
	session.Dt = 1.0 / 60
	UpdateCamera(e)

	if cam.X <= ppos.X-200 {
		t.Fatalf("cam.X = %v, should have moved toward the hero", cam.X)
	}
	if cam.X >= ppos.X {
		t.Fatalf("cam.X = %v, one frame must not overshoot %v", cam.X, ppos.X)
	}
	if cam.Y != ppos.Y {
		t.Fatalf("cam.Y = %v, want %v untouched", cam.Y, ppos.Y)
	}
}

func TestCameraHoldsStillAtZeroDt(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, _ := startPlaying(t, e)
	session := components.MustSession(e.World)
	cam := components.MustCamera(e.World)
	ppos := components.Position.Get(playerEntry)

	cam.X, cam.Y = ppos.X-100, ppos.Y+40
	session.Dt = 0
	UpdateCamera(e)

	if cam.X != ppos.X-100 || cam.Y != ppos.Y+40 {
		t.Fatalf("cam = (%v,%v), a zero-dt frame must not move it", cam.X, cam.Y)
	}
}

func TestCameraClampsToTheArena(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, _ := startPlaying(t, e)
	session := components.MustSession(e.World)
	cam := components.MustCamera(e.World)
	ppos := components.Position.Get(playerEntry)

	ppos.X, ppos.Y = cfg.World.Padding, cfg.World.Padding
	session.Dt = 1
	for i := 0; i < 20; i++ {
		UpdateCamera(e)
	}

	if cam.X != session.ScreenW/2 || cam.Y != session.ScreenH/2 {
		t.Fatalf("cam = (%v,%v), want the corner clamp (%v,%v)",
			cam.X, cam.Y, session.ScreenW/2, session.ScreenH/2)
	}
}

func TestWorldOffsetCentersTheCamera(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)
	cam := components.MustCamera(e.World)
	session.ShakeTime = 0

	ox, oy, ok := worldOffset(e)
	if !ok {
		t.Fatal("a live run should have a world to draw")
	}
	if cam.X+ox != session.ScreenW/2 || cam.Y+oy != session.ScreenH/2 {
		t.Fatalf("camera center lands at (%v,%v), want the screen center",
			cam.X+ox, cam.Y+oy)
	}

	// and back again
	if wx, wy := session.ScreenW/2-ox, session.ScreenH/2-oy; wx != cam.X || wy != cam.Y {
		t.Fatalf("round trip = (%v,%v), want (%v,%v)", wx, wy, cam.X, cam.Y)
	}
}

func TestWorldOffsetNeedsARun(t *testing.T) {
	e := newGame(t, 1)
	if _, _, ok := worldOffset(e); ok {
		t.Fatal("no world to draw on the title screen")
	}
}

func TestShakeOffsetsOnlyWhileShaking(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	if x, y := cameraShakeOffset(session); x != 0 || y != 0 {
		t.Fatalf("calm camera jitters by (%v,%v)", x, y)
	}

	session.AddShake(0.2, 4)
	session.StateTime = 0.01
	if x, y := cameraShakeOffset(session); x == 0 && y == 0 {
		t.Fatal("a fresh shake should move the view")
	}
}
