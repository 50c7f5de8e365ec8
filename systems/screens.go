package systems

import (
	"strconv"

	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
)

// ResolveScreen returns the ordered entries shown for screen, with check marks taken from state.
func ResolveScreen(screen components.Screen, state components.GameCfgData) components.MenuLayout {
	var items []components.MenuItem

	switch screen {
	case components.ScreenPause:
		items = []components.MenuItem{
			headlineItem("Paused"),
			actionItem("Resume", components.MenuAction{Kind: components.MenuResume}),
			screenItem("New Game", components.ScreenNewGame),
		}
		items = appendQuitItem(items)
	case components.ScreenGame:
		items = []components.MenuItem{
			actionItem("Pause", components.MenuAction{Kind: components.MenuPause}),
		}
	case components.ScreenGameOver:
		items = []components.MenuItem{
			headlineItem("Game Over"),
			screenItem("New Game", components.ScreenNewGame),
		}
		items = appendQuitItem(items)
	case components.ScreenNewGame:
		items = []components.MenuItem{
			headlineItem(cfg.C.Title),
			actionItem("Start a New Game", components.MenuAction{Kind: components.MenuNewGame}),
			labelItem("Configuration"),
			checkedItem(actionItem("Boolean", components.MenuAction{Kind: components.MenuSetBoolean}), state.Boolean),
			screenItem("Num", components.ScreenNum),
		}
	case components.ScreenNum:
		items = []components.MenuItem{headlineItem("Num")}
		for _, n := range cfg.GameCfg.NumChoices {
			items = append(items, checkedItem(actionItem(strconv.Itoa(int(n)), components.SetNumAction(n)), state.Num == n))
		}
	}

	return components.MenuLayout{
		Title: screen.String(),
		Items: items,
	}
}

// SelectableItems filters a layout down to the entries that can be activated
func SelectableItems(layout components.MenuLayout) []components.MenuItem {
	selectable := make([]components.MenuItem, 0, len(layout.Items))
	for _, item := range layout.Items {
		if item.Selectable() {
			selectable = append(selectable, item)
		}
	}
	return selectable
}

func appendQuitItem(items []components.MenuItem) []components.MenuItem {
	if !cfg.Platform.QuitSupported {
		return items
	}
	return append(items, actionItem("Quit", components.MenuAction{Kind: components.MenuQuit}))
}

func headlineItem(label string) components.MenuItem {
	return components.MenuItem{Kind: components.ItemHeadline, Label: label}
}

func labelItem(label string) components.MenuItem {
	return components.MenuItem{Kind: components.ItemLabel, Label: label}
}

func actionItem(label string, action components.MenuAction) components.MenuItem {
	return components.MenuItem{Kind: components.ItemAction, Label: label, Action: action}
}

func screenItem(label string, target components.Screen) components.MenuItem {
	return components.MenuItem{Kind: components.ItemScreen, Label: label, Target: target}
}

func checkedItem(item components.MenuItem, checked bool) components.MenuItem {
	item.Checkable = true
	item.Checked = checked
	return item
}
