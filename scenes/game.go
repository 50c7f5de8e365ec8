package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
	"github.com/automoto/yourgame/systems"
	"github.com/automoto/yourgame/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene hosts the game state machine, the stand-in game and the menu
type GameScene struct {
	ecs    *ecs.ECS
	menuUI *ui.MenuUI
	saved  *systems.SavedGameCfg
	once   sync.Once
}

// NewGameScene creates the scene. saved may be nil.
func NewGameScene(saved *systems.SavedGameCfg) *GameScene {
	return &GameScene{saved: saved}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	// Clicks activate entries before the ECS drains the resulting events
	gs.menuUI.Sync(systems.GetOrCreateMenu(gs.ecs), systems.MenuHint(gs.ecs))
	gs.menuUI.Update()

	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.menuUI.Draw(screen)
}

// ExitRequested reports whether the menu asked the application to quit
func (gs *GameScene) ExitRequested() bool {
	if gs.ecs == nil {
		return false
	}
	return systems.ExitRequests(gs.ecs) > 0
}

func (gs *GameScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	systems.SpawnPrimaryWindow(gs.ecs, cfg.C.Title)
	systems.ApplySavedGameCfg(systems.GetOrCreateGameCfg(gs.ecs), gs.saved)

	hooks := systems.NewStateHooks()

	// State transitions run first so the rest of the frame sees the new state
	gs.ecs.AddSystem(systems.NewUpdateGameState(hooks))
	gs.ecs.AddSystem(systems.UpdateInput)

	RoundPlugin(gs.ecs, hooks)
	MenuPlugin(gs.ecs, hooks)

	gs.ecs.AddSystem(systems.SyncWindowTitle)

	gs.menuUI = ui.NewMenuUI(func(item components.MenuItem) {
		systems.ActivateItem(gs.ecs, item)
	})

	if cfg.Debug.SkipMenu {
		systems.ActivateItem(gs.ecs, components.MenuItem{
			Kind:   components.ItemAction,
			Action: components.MenuAction{Kind: components.MenuNewGame},
		})
	}
}
