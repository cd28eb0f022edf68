package config

// GameState represents where a run currently sits. Transitions are
// owned by the session system; every other system checks the state
// before doing work.
type GameState int

const (
	StateMenu         GameState = iota // title screen
	StateClassSelect                   // pick a class
	StateWeaponSelect                  // pick the starting weapon
	StateCountdown                     // ready countdown before control is handed over
	StatePlaying                       // active gameplay
	StatePaused                        // frozen, overlay shown
	StateLevelUp                       // frozen, upgrade carousel shown
	StateGameOver                      // player died, stats shown
	StateVictory                       // reached the final level
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateClassSelect:
		return "class-select"
	case StateWeaponSelect:
		return "weapon-select"
	case StateCountdown:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelUp:
		return "level-up"
	case StateGameOver:
		return "game-over"
	case StateVictory:
		return "victory"
	}
	return "unknown"
}

// CountdownTime is the ready countdown length in seconds.
const CountdownTime = 1.0

// EntranceTime is how long each screen's slide-in plays, in seconds.
const EntranceTime = 0.35
