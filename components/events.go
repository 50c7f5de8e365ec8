package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ActionEvent carries menu actions to the host bridge
var ActionEvent = events.NewEventType[MenuAction]()

// AppExitEvent asks the host to terminate the application
type AppExitEvent struct{}

var AppExit = events.NewEventType[AppExitEvent]()

// ActionQueueData collects the actions delivered by ActionEvent until the bridge drains them
type ActionQueueData struct {
	Pending []MenuAction
}

var ActionQueue = donburi.NewComponentType[ActionQueueData]()

// AppExitData counts delivered exit requests
type AppExitData struct {
	Requests int
}

var AppExitState = donburi.NewComponentType[AppExitData]()
