package archetypes

import (
	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
	"github.com/automoto/yourgame/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	PrimaryWindow = newArchetype(
		tags.PrimaryWindow,
		components.Window,
	)
	GameCfg = newArchetype(
		components.GameCfg,
	)
	GameState = newArchetype(
		components.GameState,
	)
	Menu = newArchetype(
		components.Menu,
	)
	ActionQueue = newArchetype(
		components.ActionQueue,
	)
	AppExit = newArchetype(
		components.AppExitState,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
