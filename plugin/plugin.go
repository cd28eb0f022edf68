// Package plugin defines the contract between the llizardgui host and the
// plugins in this repo: the per-frame input snapshot, the record of entry
// points a plugin hands the host, and a registry the host discovers plugins
// through.
package plugin

import "github.com/hajimehoshi/ebiten/v2"

// Category groups plugins on the launcher.
type Category string

const (
	CategoryGame    Category = "game"
	CategoryUtility Category = "utility"
)

// Input is the per-frame snapshot the host delivers to Update. All pressed/
// released/tap/swipe fields are edge-triggered: true only on the frame the
// gesture fires. The zero value is a valid "nothing happened" frame.
type Input struct {
	// ScrollDelta accumulates wheel ticks since the last frame.
	// Positive means down/right.
	ScrollDelta float64

	UpPressed     bool
	DownPressed   bool
	SelectPressed bool
	BackPressed   bool
	BackReleased  bool

	Tap  bool
	Hold bool

	SwipeLeft  bool
	SwipeRight bool
	SwipeUp    bool
	SwipeDown  bool

	DragActive bool
	DragDeltaX float64
	DragDeltaY float64
	DragX      float64
	DragY      float64

	MouseX       float64
	MouseY       float64
	MousePressed bool
}

// AnyPress reports whether any discrete press arrived this frame. Screens
// that dismiss on "any input" (game over, victory) use this.
func (in Input) AnyPress() bool {
	return in.UpPressed || in.DownPressed || in.SelectPressed ||
		in.BackPressed || in.Tap ||
		in.SwipeLeft || in.SwipeRight || in.SwipeUp || in.SwipeDown
}

// Plugin is the record a plugin package hands to the host: metadata plus the
// five entry points the host drives. Mirrors the C-level ABI of the embedded
// host, so the same plugin code runs under the desktop harness and the
// device loader.
//
// Lifecycle: Init once after the host created a (width, height) drawing
// surface; then Update followed by Draw once per display frame; WantsClose
// polled after Update; Shutdown exactly once before unload.
type Plugin struct {
	Name              string
	Description       string
	Category          Category
	HandlesBackButton bool

	Init       func(width, height int)
	Update     func(in Input, dt float64)
	Draw       func(dst *ebiten.Image)
	Shutdown   func()
	WantsClose func() bool
}
