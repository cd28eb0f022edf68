package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// Pause menu entries.
const (
	pauseResume = iota
	pauseRestart
	pauseQuit
	pauseCount
)

// UpdateInput routes the host input snapshot to whichever state is
// active. It is the only system that reads the input directly.
func UpdateInput(e *ecs.ECS) {
	session := components.MustSession(e.World)

	switch session.State {
	case cfg.StateMenu:
		updateMainMenu(session)
	case cfg.StateClassSelect:
		updateClassSelect(e, session)
	case cfg.StateWeaponSelect:
		updateWeaponSelect(e, session)
	case cfg.StateCountdown:
		if session.StateTime >= cfg.CountdownTime {
			session.EnterState(cfg.StatePlaying)
		}
	case cfg.StatePlaying:
		updatePlayingInput(e, session)
	case cfg.StatePaused:
		updatePauseMenu(e, session)
	case cfg.StateLevelUp:
		updateLevelUpMenu(e, session)
	case cfg.StateGameOver, cfg.StateVictory:
		updateEndScreen(e, session)
	}
}

// menuStep turns the shared navigation gestures into -1/0/+1.
func menuStep() int {
	in := frameInput
	step := 0
	if in.UpPressed || in.SwipeLeft || in.ScrollDelta < 0 {
		step--
	}
	if in.DownPressed || in.SwipeRight || in.ScrollDelta > 0 {
		step++
	}
	return step
}

func menuConfirm() bool {
	return frameInput.SelectPressed || frameInput.Tap
}

func updateMainMenu(session *components.SessionData) {
	if frameInput.BackPressed {
		session.WantsQuit = true
		return
	}
	if frameInput.AnyPress() {
		session.EnterState(cfg.StateClassSelect)
	}
}

func updateClassSelect(e *ecs.ECS, session *components.SessionData) {
	if frameInput.BackPressed {
		session.EnterState(cfg.StateMenu)
		return
	}
	session.Cursor = wrapIndex(session.Cursor+menuStep(), int(cfg.ClassCount))
	if menuConfirm() {
		StartRun(e, cfg.ClassID(session.Cursor))
	}
}

func updateWeaponSelect(e *ecs.ECS, session *components.SessionData) {
	if frameInput.BackPressed {
		// re-picking a class rebuilds the run, so just step back
		session.EnterState(cfg.StateClassSelect)
		return
	}
	session.Cursor = wrapIndex(session.Cursor+menuStep(), int(cfg.WeaponCount))
	if menuConfirm() {
		PickStartingWeapon(e, cfg.WeaponID(session.Cursor))
	}
}

func updatePlayingInput(e *ecs.ECS, session *components.SessionData) {
	in := frameInput
	_, player := components.MustPlayer(e.World)

	if in.BackPressed {
		session.EnterState(cfg.StatePaused)
		return
	}

	// steering: wheel nudges the heading, dragging aims it directly
	if in.ScrollDelta != 0 {
		player.Facing = gamemath.NormalizeAngle(player.Facing + in.ScrollDelta*cfg.Player.ScrollTurn)
	}
	if in.DragActive && (in.DragDeltaX != 0 || in.DragDeltaY != 0) {
		player.DragX = in.DragDeltaX
		player.DragY = in.DragDeltaY
	} else {
		player.DragX, player.DragY = 0, 0
	}

	if in.Tap {
		player.Moving = !player.Moving
	}

	// inventory
	if in.UpPressed {
		player.InvSlot = cfg.PotionKind(wrapIndex(int(player.InvSlot)-1, int(cfg.PotionKindCount)))
	}
	if in.DownPressed {
		player.InvSlot = cfg.PotionKind(wrapIndex(int(player.InvSlot)+1, int(cfg.PotionKindCount)))
	}
	if in.SelectPressed || in.SwipeUp {
		UsePotion(e, player.InvSlot)
	}
}

func updatePauseMenu(e *ecs.ECS, session *components.SessionData) {
	if frameInput.BackPressed {
		session.EnterState(cfg.StatePlaying)
		return
	}
	session.Cursor = wrapIndex(session.Cursor+menuStep(), pauseCount)
	if !menuConfirm() {
		return
	}
	switch session.Cursor {
	case pauseResume:
		session.EnterState(cfg.StatePlaying)
	case pauseRestart:
		RestartRun(e)
	case pauseQuit:
		session.WantsQuit = true
	}
}

func updateLevelUpMenu(e *ecs.ECS, session *components.SessionData) {
	if frameInput.BackPressed || frameInput.SwipeDown {
		// bank the points and fight on
		session.EnterState(cfg.StatePlaying)
		return
	}
	n := offerCount(e)
	if n == 0 {
		session.EnterState(cfg.StatePlaying)
		return
	}
	session.Cursor = wrapIndex(session.Cursor+menuStep(), n)
	if menuConfirm() {
		if BuyOffer(e, session.Cursor) {
			session.EnterState(cfg.StatePlaying)
		}
	}
}

func updateEndScreen(e *ecs.ECS, session *components.SessionData) {
	// short grace so a stray tap does not skip the stats
	if session.StateTime < 0.8 {
		return
	}
	if frameInput.BackPressed {
		session.WantsQuit = true
		return
	}
	if frameInput.AnyPress() {
		RestartRun(e)
	}
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// aimFromDrag converts the stored drag vector to a heading, keeping
// the previous heading on a dead drag.
func aimFromDrag(player *components.PlayerData) float64 {
	if player.DragX == 0 && player.DragY == 0 {
		return player.Facing
	}
	return math.Atan2(player.DragY, player.DragX)
}
