package components

import (
	cfg "github.com/automoto/yourgame/config"
	"github.com/yohamta/donburi"
)

// Outcome is the optional result of the last round
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

// IsSome reports whether a round result has been recorded
func (o Outcome) IsSome() bool {
	return o != OutcomeNone
}

// GameCfgData is the user-adjustable configuration of the game plus transient round flags
type GameCfgData struct {
	Boolean bool
	NewGame bool    // Set by the menu when a new round was requested
	Outcome Outcome // Recorded when a round ends
	Num     uint8   // One of cfg.GameCfg.NumChoices
}

// DefaultGameCfg returns the configuration a fresh game starts with
func DefaultGameCfg() GameCfgData {
	return GameCfgData{
		Boolean: cfg.GameCfg.DefaultBoolean,
		NewGame: false,
		Outcome: OutcomeNone,
		Num:     cfg.GameCfg.DefaultNum,
	}
}

// GameCfg is the singleton configuration resource
var GameCfg = donburi.NewComponentType[GameCfgData]()
