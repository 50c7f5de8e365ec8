package systems

import (
	"testing"

	"github.com/automoto/yourgame/components"
)

func TestNumScreenOffersThreeToFive(t *testing.T) {
	for _, num := range []uint8{3, 4, 5} {
		state := components.DefaultGameCfg()
		state.Num = num

		layout := ResolveScreen(components.ScreenNum, state)
		if layout.Title != "Num" {
			t.Errorf("Expected title Num, got %q", layout.Title)
		}
		if layout.Items[0].Kind != components.ItemHeadline {
			t.Errorf("Expected headline first, got kind %v", layout.Items[0].Kind)
		}

		options := SelectableItems(layout)
		if len(options) != 3 {
			t.Fatalf("Expected 3 options, got %d", len(options))
		}

		checked := 0
		for i, option := range options {
			want := uint8(3 + i)
			if option.Action.Kind != components.MenuSetNum || option.Action.Num != want {
				t.Errorf("Option %d: expected SetNum(%d), got %+v", i, want, option.Action)
			}
			if option.Label != string(rune('0'+want)) {
				t.Errorf("Option %d: expected label %d, got %q", i, want, option.Label)
			}
			if option.Checked {
				checked++
				if option.Action.Num != num {
					t.Errorf("num=%d: option %d is checked", num, option.Action.Num)
				}
			}
		}
		if checked != 1 {
			t.Errorf("num=%d: expected exactly one checked option, got %d", num, checked)
		}
	}
}

func TestNewGameScreenLayout(t *testing.T) {
	state := components.DefaultGameCfg()
	state.Boolean = false

	layout := ResolveScreen(components.ScreenNewGame, state)
	wantKinds := []components.MenuItemKind{
		components.ItemHeadline,
		components.ItemAction,
		components.ItemLabel,
		components.ItemAction,
		components.ItemScreen,
	}
	if len(layout.Items) != len(wantKinds) {
		t.Fatalf("Expected %d items, got %d", len(wantKinds), len(layout.Items))
	}
	for i, kind := range wantKinds {
		if layout.Items[i].Kind != kind {
			t.Errorf("Item %d: expected kind %v, got %v", i, kind, layout.Items[i].Kind)
		}
	}

	if layout.Items[1].Action.Kind != components.MenuNewGame {
		t.Errorf("Expected Start a New Game to carry NewGame, got %+v", layout.Items[1].Action)
	}

	boolean := layout.Items[3]
	if !boolean.Checkable || boolean.Checked {
		t.Errorf("Expected Boolean checkable and unchecked, got %+v", boolean)
	}
	if layout.Items[4].Target != components.ScreenNum {
		t.Errorf("Expected Num link, got %v", layout.Items[4].Target)
	}

	state.Boolean = true
	if !ResolveScreen(components.ScreenNewGame, state).Items[3].Checked {
		t.Error("Expected Boolean checked when enabled")
	}
}

func TestGameScreenOnlyOffersPause(t *testing.T) {
	layout := ResolveScreen(components.ScreenGame, components.DefaultGameCfg())
	if len(layout.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(layout.Items))
	}
	if layout.Items[0].Action.Kind != components.MenuPause {
		t.Errorf("Expected Pause action, got %+v", layout.Items[0].Action)
	}
}

func TestQuitEntryFollowsPlatform(t *testing.T) {
	for _, screen := range []components.Screen{components.ScreenPause, components.ScreenGameOver} {
		withQuitSupported(t, true)
		items := ResolveScreen(screen, components.DefaultGameCfg()).Items
		last := items[len(items)-1]
		if last.Kind != components.ItemAction || last.Action.Kind != components.MenuQuit {
			t.Errorf("%v: expected Quit last, got %+v", screen, last)
		}

		withQuitSupported(t, false)
		for _, item := range ResolveScreen(screen, components.DefaultGameCfg()).Items {
			if item.Kind == components.ItemAction && item.Action.Kind == components.MenuQuit {
				t.Errorf("%v: Quit offered on a platform without exit", screen)
			}
		}
	}
}

func TestPauseScreenOrder(t *testing.T) {
	withQuitSupported(t, true)
	labels := []string{"Paused", "Resume", "New Game", "Quit"}

	items := ResolveScreen(components.ScreenPause, components.DefaultGameCfg()).Items
	if len(items) != len(labels) {
		t.Fatalf("Expected %d items, got %d", len(labels), len(items))
	}
	for i, label := range labels {
		if items[i].Label != label {
			t.Errorf("Item %d: expected %q, got %q", i, label, items[i].Label)
		}
	}
}
