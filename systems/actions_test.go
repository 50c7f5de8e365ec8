package systems

import (
	"testing"

	"github.com/automoto/yourgame/components"
)

type recorder struct {
	published []components.MenuAction
}

func (r *recorder) publish(action components.MenuAction) {
	r.published = append(r.published, action)
}

func TestSetBooleanTwiceRestores(t *testing.T) {
	for _, initial := range []bool{true, false} {
		state := components.DefaultGameCfg()
		state.Boolean = initial
		rec := &recorder{}

		HandleAction(components.MenuAction{Kind: components.MenuSetBoolean}, &state, rec.publish)
		if state.Boolean == initial {
			t.Errorf("Expected first toggle to flip %v", initial)
		}
		HandleAction(components.MenuAction{Kind: components.MenuSetBoolean}, &state, rec.publish)
		if state.Boolean != initial {
			t.Errorf("Expected second toggle to restore %v", initial)
		}
		if len(rec.published) != 0 {
			t.Errorf("SetBoolean should not publish, got %v", rec.published)
		}
	}
}

func TestSetNumOverwrites(t *testing.T) {
	for _, prior := range []uint8{3, 4, 5} {
		for _, n := range []uint8{3, 4, 5} {
			state := components.DefaultGameCfg()
			state.Num = prior
			rec := &recorder{}

			HandleAction(components.SetNumAction(n), &state, rec.publish)
			if state.Num != n {
				t.Errorf("SetNum(%d) from %d: got %d", n, prior, state.Num)
			}
			if len(rec.published) != 0 {
				t.Errorf("SetNum should not publish, got %v", rec.published)
			}
		}
	}
}

func TestNewGameSetsFlagAndPublishes(t *testing.T) {
	state := components.DefaultGameCfg()
	rec := &recorder{}

	HandleAction(components.MenuAction{Kind: components.MenuNewGame}, &state, rec.publish)
	if !state.NewGame {
		t.Error("Expected NewGame flag set")
	}
	if len(rec.published) != 1 || rec.published[0].Kind != components.MenuNewGame {
		t.Errorf("Expected NewGame published once, got %v", rec.published)
	}
}

func TestForwardedActionsLeaveSettings(t *testing.T) {
	withQuitSupported(t, true)

	for _, kind := range []components.MenuActionKind{components.MenuResume, components.MenuPause, components.MenuQuit} {
		state := components.DefaultGameCfg()
		state.Boolean = false
		state.Num = 5
		before := state
		rec := &recorder{}

		HandleAction(components.MenuAction{Kind: kind}, &state, rec.publish)
		if state != before {
			t.Errorf("Action %v changed state: %+v -> %+v", kind, before, state)
		}
		if len(rec.published) != 1 || rec.published[0].Kind != kind {
			t.Errorf("Expected %v published once, got %v", kind, rec.published)
		}
	}
}

func TestQuitIsNoopWithoutExit(t *testing.T) {
	withQuitSupported(t, false)
	state := components.DefaultGameCfg()
	rec := &recorder{}

	HandleAction(components.MenuAction{Kind: components.MenuQuit}, &state, rec.publish)
	if len(rec.published) != 0 {
		t.Errorf("Expected no publish, got %v", rec.published)
	}
}
