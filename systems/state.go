package systems

import (
	"github.com/automoto/yourgame/archetypes"
	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
	"github.com/yohamta/donburi/ecs"
)

// StateHooks holds the systems run when the host state is entered or exited
type StateHooks struct {
	onEnter map[cfg.GameState][]ecs.System
	onExit  map[cfg.GameState][]ecs.System
}

// NewStateHooks creates an empty hook registry
func NewStateHooks() *StateHooks {
	return &StateHooks{
		onEnter: make(map[cfg.GameState][]ecs.System),
		onExit:  make(map[cfg.GameState][]ecs.System),
	}
}

// OnEnter registers systems that run, in order, after the state becomes current
func (h *StateHooks) OnEnter(state cfg.GameState, systems ...ecs.System) {
	h.onEnter[state] = append(h.onEnter[state], systems...)
}

// OnExit registers systems that run, in order, when the state is left
func (h *StateHooks) OnExit(state cfg.GameState, systems ...ecs.System) {
	h.onExit[state] = append(h.onExit[state], systems...)
}

// NewUpdateGameState creates the system applying requested state transitions.
// It should run first in the frame so the rest of the frame sees the new state.
func NewUpdateGameState(hooks *StateHooks) ecs.System {
	return func(e *ecs.ECS) {
		state := GetOrCreateGameState(e)
		if !state.Pending {
			return
		}
		state.Pending = false

		exited, entered := state.Current, state.Next
		if exited == entered {
			return
		}

		// Current already holds the entered state while exit hooks run
		state.Current = entered
		logger.Debug("State transition", "from", exited, "to", entered)

		for _, system := range hooks.onExit[exited] {
			system(e)
		}
		for _, system := range hooks.onEnter[entered] {
			system(e)
		}
	}
}

// RequestState asks for a transition on the next frame. The last request in a frame wins.
func RequestState(e *ecs.ECS, next cfg.GameState) {
	state := GetOrCreateGameState(e)
	state.Next = next
	state.Pending = true
}

// CurrentState returns the active host state
func CurrentState(e *ecs.ECS) cfg.GameState {
	return GetOrCreateGameState(e).Current
}

// InState builds a run condition wrapper that only runs system in the given host state
func InState(state cfg.GameState, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if CurrentState(e) != state {
			return
		}
		system(e)
	}
}

// GetOrCreateGameState returns the singleton GameState component, creating if needed
func GetOrCreateGameState(e *ecs.ECS) *components.GameStateData {
	if _, ok := components.GameState.First(e.World); !ok {
		ent := archetypes.GameState.Spawn(e)
		components.GameState.SetValue(ent, components.GameStateData{
			Current: cfg.InitialState,
			Next:    cfg.InitialState,
		})
	}

	ent, _ := components.GameState.First(e.World)
	return components.GameState.Get(ent)
}
