package systems

import (
	"github.com/automoto/yourgame/archetypes"
	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGameCfg returns the singleton configuration resource, creating it with defaults
func GetOrCreateGameCfg(e *ecs.ECS) *components.GameCfgData {
	if _, ok := components.GameCfg.First(e.World); !ok {
		ent := archetypes.GameCfg.Spawn(e)
		components.GameCfg.SetValue(ent, components.DefaultGameCfg())
	}

	ent, _ := components.GameCfg.First(e.World)
	return components.GameCfg.Get(ent)
}

// StartRound consumes a pending new game request. Runs on entering the Game state.
func StartRound(e *ecs.ECS) {
	gameCfg := GetOrCreateGameCfg(e)
	if !gameCfg.NewGame {
		return
	}
	gameCfg.NewGame = false
	gameCfg.Outcome = components.OutcomeNone
	logger.Info("New round", "boolean", gameCfg.Boolean, "num", gameCfg.Num)
}

// EndRound records the round result and returns to the menu, which then shows the game over screen
func EndRound(e *ecs.ECS, outcome components.Outcome) {
	gameCfg := GetOrCreateGameCfg(e)
	gameCfg.Outcome = outcome
	RequestState(e, cfg.StateMenu)
}

// UpdateRound ends the round on the debug win/lose keys. Only runs in the Game state.
func UpdateRound(e *ecs.ECS) {
	input := getOrCreateInput(e)
	switch {
	case GetAction(input, cfg.ActionEndRoundWon).JustPressed:
		EndRound(e, components.OutcomeWon)
	case GetAction(input, cfg.ActionEndRoundLost).JustPressed:
		EndRound(e, components.OutcomeLost)
	}
}
