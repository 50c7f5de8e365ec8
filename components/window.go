package components

import "github.com/yohamta/donburi"

// WindowData mirrors the OS window properties the game controls
type WindowData struct {
	Title string
	Dirty bool // Title changed since it was last pushed to ebiten
}

var Window = donburi.NewComponentType[WindowData]()
