package tags

import "github.com/yohamta/donburi"

var (
	PrimaryWindow = donburi.NewTag().SetName("PrimaryWindow")
)
