package components

import (
	cfg "github.com/automoto/yourgame/config"
	"github.com/yohamta/donburi"
)

// GameStateData holds the host state and a pending transition request
type GameStateData struct {
	Current cfg.GameState
	Next    cfg.GameState
	Pending bool
}

var GameState = donburi.NewComponentType[GameStateData]()
