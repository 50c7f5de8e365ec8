package systems

import (
	"github.com/automoto/yourgame/archetypes"
	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeMenuEvents wires the event streams of a world to their queues. Call once per world.
func SubscribeMenuEvents(e *ecs.ECS) {
	components.ActionEvent.Subscribe(e.World, queueMenuAction)
	components.AppExit.Subscribe(e.World, countAppExit)
}

func queueMenuAction(w donburi.World, action components.MenuAction) {
	entry, ok := components.ActionQueue.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.ActionQueue))
	}
	queue := components.ActionQueue.Get(entry)
	queue.Pending = append(queue.Pending, action)
}

// ApplyMenuScreen picks the window title and menu screen for the current host state
// and rebuilds the menu from the configuration resource. Runs on entering and exiting Game.
func ApplyMenuScreen(e *ecs.ECS) {
	window := mustPrimaryWindow(e)
	gameCfg := GetOrCreateGameCfg(e)

	title, screen, overlay := selectMenuScreen(CurrentState(e), *gameCfg)

	window.Title = title
	window.Dirty = true
	SetMenuState(e, *gameCfg, screen, overlay)
}

func selectMenuScreen(state cfg.GameState, gameCfg components.GameCfgData) (string, components.Screen, bool) {
	if state == cfg.StateGame {
		return cfg.Titles.Playing, components.ScreenGame, true
	}
	if gameCfg.Outcome.IsSome() {
		return cfg.Titles.GameOver, components.ScreenGameOver, false
	}
	return cfg.Titles.Paused, components.ScreenPause, false
}

// UpdateMenuEvents drains the queued menu actions. When any arrived, the menu snapshot
// becomes the configuration resource, then each action is turned into a host request.
func UpdateMenuEvents(e *ecs.ECS) {
	components.ActionEvent.ProcessEvents(e.World)

	queue := getOrCreateActionQueue(e)
	actions := queue.Pending
	queue.Pending = nil

	if len(actions) == 0 {
		return
	}

	if entry, ok := components.Menu.First(e.World); ok {
		gameCfg := GetOrCreateGameCfg(e)
		*gameCfg = components.Menu.Get(entry).State
		SaveGameCfg(gameCfg)
	}

	for _, action := range actions {
		switch action.Kind {
		case components.MenuResume, components.MenuNewGame:
			RequestState(e, cfg.StateGame)
		case components.MenuPause:
			RequestState(e, cfg.StateMenu)
		case components.MenuQuit:
			if cfg.Platform.QuitSupported {
				components.AppExit.Publish(e.World, components.AppExitEvent{})
			}
		}
	}
}

// UpdateMenu handles keyboard and gamepad navigation of the active screen
func UpdateMenu(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	input := getOrCreateInput(e)

	// Pause key mirrors the Game screen's only button
	if CurrentState(e) == cfg.StateGame && GetAction(input, cfg.ActionPause).JustPressed {
		HandleAction(components.MenuAction{Kind: components.MenuPause}, &menu.State, actionPublisher(e))
		return
	}

	selectable := SelectableItems(ResolveScreen(menu.Current(), menu.State))
	numOptions := len(selectable)
	if numOptions == 0 {
		return
	}

	// Navigate menu with wrap-around
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		menu.Revision++
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		menu.Revision++
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		ActivateItem(e, selectable[menu.SelectedIndex%numOptions])
		return
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		PopMenuScreen(e)
	}
}

// ActivateItem runs an entry: actions go through HandleAction, screen links open the sub screen
func ActivateItem(e *ecs.ECS, item components.MenuItem) {
	menu := GetOrCreateMenu(e)

	switch item.Kind {
	case components.ItemAction:
		HandleAction(item.Action, &menu.State, actionPublisher(e))
		menu.Revision++
	case components.ItemScreen:
		PushMenuScreen(e, item.Target)
	}
}

// PushMenuScreen opens a screen on top of the current one
func PushMenuScreen(e *ecs.ECS, screen components.Screen) {
	menu := GetOrCreateMenu(e)
	menu.Stack = append(menu.Stack, screen)
	menu.SelectedIndex = 0
	menu.Revision++
}

// PopMenuScreen returns to the previous screen. The root screen stays.
func PopMenuScreen(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	if len(menu.Stack) <= 1 {
		return
	}
	menu.Stack = menu.Stack[:len(menu.Stack)-1]
	menu.SelectedIndex = 0
	menu.Revision++
}

// SetMenuState replaces the menu with a fresh snapshot of state showing screen
func SetMenuState(e *ecs.ECS, state components.GameCfgData, screen components.Screen, overlay bool) {
	revision := 0
	entry, ok := components.Menu.First(e.World)
	if ok {
		revision = components.Menu.Get(entry).Revision + 1
	} else {
		entry = archetypes.Menu.Spawn(e)
	}

	components.Menu.SetValue(entry, components.MenuData{
		State:         state,
		Stack:         []components.Screen{screen},
		SelectedIndex: 0,
		Overlay:       overlay,
		Revision:      revision,
	})
}

// GetOrCreateMenu returns the singleton Menu component, creating the new game screen if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		SetMenuState(e, *GetOrCreateGameCfg(e), components.ScreenNewGame, false)
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

func getOrCreateActionQueue(e *ecs.ECS) *components.ActionQueueData {
	entry, ok := components.ActionQueue.First(e.World)
	if !ok {
		entry = archetypes.ActionQueue.Spawn(e)
	}
	return components.ActionQueue.Get(entry)
}
