package systems

import (
	"fmt"

	"github.com/automoto/yourgame/archetypes"
	"github.com/automoto/yourgame/components"
	"github.com/automoto/yourgame/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var primaryWindowQuery = donburi.NewQuery(filter.Contains(tags.PrimaryWindow, components.Window))

// SpawnPrimaryWindow creates the entity mirroring the game window
func SpawnPrimaryWindow(e *ecs.ECS, title string) *donburi.Entry {
	entry := archetypes.PrimaryWindow.Spawn(e)
	components.Window.SetValue(entry, components.WindowData{
		Title: title,
		Dirty: true,
	})
	return entry
}

// SyncWindowTitle pushes a changed title to the OS window
func SyncWindowTitle(e *ecs.ECS) {
	entry, ok := primaryWindowQuery.First(e.World)
	if !ok {
		return
	}
	window := components.Window.Get(entry)
	if !window.Dirty {
		return
	}
	ebiten.SetWindowTitle(window.Title)
	window.Dirty = false
}

// mustPrimaryWindow panics unless exactly one primary window exists
func mustPrimaryWindow(e *ecs.ECS) *components.WindowData {
	if n := primaryWindowQuery.Count(e.World); n != 1 {
		panic(fmt.Sprintf("expected exactly one primary window, found %d", n))
	}
	entry, _ := primaryWindowQuery.First(e.World)
	return components.Window.Get(entry)
}
