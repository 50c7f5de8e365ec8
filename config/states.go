package config

// GameState is the host's top-level mode
type GameState int

const (
	StateMenu GameState = iota
	StateGame
)

// InitialState is the host state the app boots into
const InitialState = StateMenu

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateGame:
		return "Game"
	}
	return "Unknown"
}
