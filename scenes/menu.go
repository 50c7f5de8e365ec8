package scenes

import (
	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
	"github.com/automoto/yourgame/systems"
	"github.com/yohamta/donburi/ecs"
)

// RoundPlugin lets the stand-in game consume the configuration.
// Install before MenuPlugin so the menu snapshots the reset record on entering Game.
func RoundPlugin(e *ecs.ECS, hooks *systems.StateHooks) {
	hooks.OnEnter(cfg.StateGame, systems.StartRound)
	e.AddSystem(systems.InState(cfg.StateGame, systems.UpdateRound))
	e.AddRenderer(cfg.Default, systems.DrawPlayfield)
}

// MenuPlugin installs the menu: the initial new game screen, the screen switch on
// entering and exiting Game, and the per frame action handling.
func MenuPlugin(e *ecs.ECS, hooks *systems.StateHooks) {
	systems.SubscribeMenuEvents(e)
	systems.SetMenuState(e, *systems.GetOrCreateGameCfg(e), components.ScreenNewGame, false)

	hooks.OnEnter(cfg.StateGame, systems.ApplyMenuScreen)
	hooks.OnExit(cfg.StateGame, systems.ApplyMenuScreen)

	e.AddSystem(systems.UpdateMenu)
	e.AddSystem(systems.UpdateMenuEvents)
	e.AddSystem(systems.UpdateAppExit)
}
