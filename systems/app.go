package systems

import (
	"github.com/automoto/yourgame/archetypes"
	"github.com/automoto/yourgame/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAppExit delivers queued exit requests. Runs after UpdateMenuEvents.
func UpdateAppExit(e *ecs.ECS) {
	components.AppExit.ProcessEvents(e.World)
}

// ExitRequests returns how many exit requests have been delivered
func ExitRequests(e *ecs.ECS) int {
	return getOrCreateAppExit(e).Requests
}

func countAppExit(w donburi.World, _ components.AppExitEvent) {
	entry, ok := components.AppExitState.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.AppExitState))
	}
	components.AppExitState.Get(entry).Requests++
}

func getOrCreateAppExit(e *ecs.ECS) *components.AppExitData {
	entry, ok := components.AppExitState.First(e.World)
	if !ok {
		entry = archetypes.AppExit.Spawn(e)
	}
	return components.AppExitState.Get(entry)
}
