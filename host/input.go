package host

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/plugin"
)

// Gesture thresholds, tuned for the 800x480 panel the device mirrors.
const (
	tapSlop    = 6.0   // px of travel before a press becomes a drag
	tapMax     = 0.3   // s; longer presses are not taps
	holdAfter  = 0.5   // s of still press before Hold fires
	swipeSpeed = 600.0 // px/s release velocity that makes a swipe
)

// sample is the raw device state for one frame. The mapper derives
// edges from consecutive samples, so polls deliver level state only.
type sample struct {
	Scroll float64 // wheel ticks, positive down

	Up     bool
	Down   bool
	Select bool
	Back   bool

	MouseX, MouseY float64
	MouseDown      bool
}

// pollSample reads the real devices. Wheel Y is flipped so scrolling
// toward the user reads positive, matching the snapshot contract.
func pollSample() sample {
	_, wy := ebiten.Wheel()
	mx, my := ebiten.CursorPosition()
	return sample{
		Scroll: -wy,
		Up:     ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:   ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Select: ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Back:   ebiten.IsKeyPressed(ebiten.KeyEscape),

		MouseX:    float64(mx),
		MouseY:    float64(my),
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// Mapper folds raw device samples into the per-frame input snapshot
// plugins consume: key edges, taps, holds, drags and release swipes.
// The zero value is ready to use; the first frame maps to a zero
// snapshot.
type Mapper struct {
	prev sample

	pressing       bool
	pressAge       float64
	pressX, pressY float64
	dragging       bool
	holdFired      bool
	vx, vy         float64
}

// Poll samples the devices and maps one frame.
func (m *Mapper) Poll(dt float64) plugin.Input {
	return m.Map(pollSample(), dt)
}

// Map turns one device sample into the frame's input snapshot.
func (m *Mapper) Map(s sample, dt float64) plugin.Input {
	prev := m.prev
	m.prev = s

	in := plugin.Input{
		ScrollDelta:   s.Scroll,
		UpPressed:     s.Up && !prev.Up,
		DownPressed:   s.Down && !prev.Down,
		SelectPressed: s.Select && !prev.Select,
		BackPressed:   s.Back && !prev.Back,
		BackReleased:  !s.Back && prev.Back,
		MouseX:        s.MouseX,
		MouseY:        s.MouseY,
		MousePressed:  s.MouseDown,
	}

	if s.MouseDown && !prev.MouseDown {
		m.pressing = true
		m.pressAge = 0
		m.pressX, m.pressY = s.MouseX, s.MouseY
		m.dragging = false
		m.holdFired = false
		m.vx, m.vy = 0, 0
	}

	if m.pressing && s.MouseDown {
		m.pressAge += dt
		dx := s.MouseX - prev.MouseX
		dy := s.MouseY - prev.MouseY

		if !m.dragging &&
			(math.Abs(s.MouseX-m.pressX) > tapSlop || math.Abs(s.MouseY-m.pressY) > tapSlop) {
			m.dragging = true
		}
		if m.dragging {
			in.DragActive = true
			in.DragDeltaX, in.DragDeltaY = dx, dy
			in.DragX, in.DragY = s.MouseX, s.MouseY
			if dt > 0 {
				m.vx = gamemath.Lerp(m.vx, dx/dt, 0.5)
				m.vy = gamemath.Lerp(m.vy, dy/dt, 0.5)
			}
		} else if !m.holdFired && m.pressAge >= holdAfter {
			m.holdFired = true
			in.Hold = true
		}
	}

	if !s.MouseDown && prev.MouseDown && m.pressing {
		m.pressing = false
		switch {
		case m.dragging:
			if math.Hypot(m.vx, m.vy) >= swipeSpeed {
				if math.Abs(m.vx) >= math.Abs(m.vy) {
					in.SwipeRight = m.vx > 0
					in.SwipeLeft = m.vx < 0
				} else {
					in.SwipeDown = m.vy > 0
					in.SwipeUp = m.vy < 0
				}
			}
		case m.pressAge <= tapMax:
			in.Tap = true
		}
	}

	return in
}
