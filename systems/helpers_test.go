package systems

import (
	"testing"

	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testGame is a world wired the way the game scene wires it, minus rendering
type testGame struct {
	ecs         *ecs.ECS
	updateState ecs.System
}

func newTestGame(t *testing.T) *testGame {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	SpawnPrimaryWindow(e, cfg.C.Title)

	hooks := NewStateHooks()
	hooks.OnEnter(cfg.StateGame, StartRound)

	SubscribeMenuEvents(e)
	SetMenuState(e, *GetOrCreateGameCfg(e), components.ScreenNewGame, false)
	hooks.OnEnter(cfg.StateGame, ApplyMenuScreen)
	hooks.OnExit(cfg.StateGame, ApplyMenuScreen)

	return &testGame{ecs: e, updateState: NewUpdateGameState(hooks)}
}

// frame runs one frame of the non-input systems
func (g *testGame) frame() {
	g.updateState(g.ecs)
	UpdateMenuEvents(g.ecs)
	UpdateAppExit(g.ecs)
}

func (g *testGame) activate(action components.MenuAction) {
	ActivateItem(g.ecs, components.MenuItem{Kind: components.ItemAction, Action: action})
}

func (g *testGame) windowTitle(t *testing.T) string {
	t.Helper()
	entry, ok := primaryWindowQuery.First(g.ecs.World)
	if !ok {
		t.Fatal("primary window missing")
	}
	return components.Window.Get(entry).Title
}

// press makes id just pressed for the next UpdateMenu
func press(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
}

func withQuitSupported(t *testing.T, supported bool) {
	t.Helper()
	prev := cfg.Platform.QuitSupported
	cfg.Platform.QuitSupported = supported
	t.Cleanup(func() { cfg.Platform.QuitSupported = prev })
}
