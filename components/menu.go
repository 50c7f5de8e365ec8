package components

import "github.com/yohamta/donburi"

// Screen selects which menu layout is shown
type Screen int

const (
	ScreenGame Screen = iota
	ScreenPause
	ScreenNewGame
	ScreenGameOver
	// Sub screens
	ScreenNum
)

func (s Screen) String() string {
	switch s {
	case ScreenGame:
		return "Game"
	case ScreenPause:
		return "Pause"
	case ScreenNewGame:
		return "NewGame"
	case ScreenGameOver:
		return "GameOver"
	case ScreenNum:
		return "Num"
	}
	return "Unknown"
}

// MenuActionKind enumerates what a menu button does
type MenuActionKind int

const (
	MenuResume MenuActionKind = iota
	MenuPause
	MenuQuit
	MenuNewGame
	MenuSetBoolean
	MenuSetNum
)

// MenuAction is a button effect. Num is only meaningful for MenuSetNum.
type MenuAction struct {
	Kind MenuActionKind
	Num  uint8
}

// SetNumAction returns the action that stores n in GameCfgData.Num
func SetNumAction(n uint8) MenuAction {
	return MenuAction{Kind: MenuSetNum, Num: n}
}

// MenuItemKind distinguishes the entries of a menu layout
type MenuItemKind int

const (
	ItemHeadline MenuItemKind = iota
	ItemLabel
	ItemAction
	ItemScreen
)

// MenuItem is one entry of a resolved menu layout
type MenuItem struct {
	Kind      MenuItemKind
	Label     string
	Action    MenuAction // ItemAction only
	Target    Screen     // ItemScreen only
	Checkable bool
	Checked   bool
}

// Selectable reports whether the item can be activated
func (m MenuItem) Selectable() bool {
	return m.Kind == ItemAction || m.Kind == ItemScreen
}

// MenuLayout is the ordered content of a screen
type MenuLayout struct {
	Title string
	Items []MenuItem
}

// MenuData stores the live menu state
type MenuData struct {
	State         GameCfgData // Snapshot edited by the menu, copied back on action events
	Stack         []Screen    // Root screen first, sub screens pushed on top
	SelectedIndex int         // Index into the selectable items of the top screen
	Overlay       bool        // Draw as a corner overlay instead of a full-screen panel
	Revision      int         // Bumped on every change so renderers can rebuild
}

// Current returns the screen on top of the stack
func (m *MenuData) Current() Screen {
	if len(m.Stack) == 0 {
		return ScreenNewGame
	}
	return m.Stack[len(m.Stack)-1]
}

// Menu is the component type for the menu state
var Menu = donburi.NewComponentType[MenuData]()
