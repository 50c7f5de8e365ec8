package systems

import (
	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
	"github.com/yohamta/donburi/ecs"
)

// HandleAction applies a menu action to the menu's configuration snapshot.
// Actions that need the host to react are handed to publish.
func HandleAction(action components.MenuAction, state *components.GameCfgData, publish func(components.MenuAction)) {
	switch action.Kind {
	case components.MenuResume, components.MenuPause:
		publish(action)
	case components.MenuQuit:
		if cfg.Platform.QuitSupported {
			publish(action)
		}
	case components.MenuNewGame:
		state.NewGame = true
		publish(action)
	case components.MenuSetBoolean:
		state.Boolean = !state.Boolean
	case components.MenuSetNum:
		state.Num = action.Num
	}
}

// PublishAction queues action on the world's ActionEvent stream
func PublishAction(e *ecs.ECS, action components.MenuAction) {
	components.ActionEvent.Publish(e.World, action)
}

func actionPublisher(e *ecs.ECS) func(components.MenuAction) {
	return func(action components.MenuAction) {
		PublishAction(e, action)
	}
}
