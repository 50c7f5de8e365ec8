package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; the menu draws above the play field by renderer order.
const Default ecs.LayerID = iota

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// WindowTitleConfig holds the window titles the menu switches between
type WindowTitleConfig struct {
	Playing  string
	GameOver string
	Paused   string
}

// MenuConfig contains menu panel configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	PlayfieldColor    color.RGBA
	HeadlineColor     color.RGBA
	LabelColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ButtonIdle        color.RGBA
	ButtonHover       color.RGBA
	ButtonPressed     color.RGBA
	ButtonMinWidth    int
	ButtonMinHeight   int
	ItemSpacing       int
	Padding           int
	HeadlineSize      float64
	ItemSize          float64
	FadeSeconds       float32
	CheckedMark       string
	UncheckedMark     string
}

// GameCfgConfig holds the default values and bounds of the game configuration record
type GameCfgConfig struct {
	DefaultBoolean bool
	DefaultNum     uint8
	NumChoices     []uint8
}

// PersistenceConfig holds the gdata storage names
type PersistenceConfig struct {
	AppName string
	ItemKey string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Start directly in the Game state
	LogLevel string
}

// Global configuration instances
var C *Config
var Titles WindowTitleConfig
var Menu MenuConfig
var GameCfg GameCfgConfig
var Persistence PersistenceConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Grey         = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "YourGame",
	}

	Titles = WindowTitleConfig{
		Playing:  "YourGame",
		GameOver: "YourGame - GameOver",
		Paused:   "YourGame - Paused",
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor:   Black,
		PlayfieldColor:    color.RGBA{R: 15, G: 25, B: 50, A: 255},
		HeadlineColor:     Orange,
		LabelColor:        Grey,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		ButtonIdle:        color.RGBA{R: 40, G: 40, B: 50, A: 255},
		ButtonHover:       color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonPressed:     color.RGBA{R: 30, G: 30, B: 40, A: 255},
		ButtonMinWidth:    160,
		ButtonMinHeight:   24,
		ItemSpacing:       6,
		Padding:           12,
		HeadlineSize:      24,
		ItemSize:          14,
		FadeSeconds:       0.2,
		CheckedMark:       "[x] ",
		UncheckedMark:     "[ ] ",
	}

	GameCfg = GameCfgConfig{
		DefaultBoolean: true,
		DefaultNum:     3,
		NumChoices:     []uint8{3, 4, 5},
	}

	Persistence = PersistenceConfig{
		AppName: "yourgame",
		ItemKey: "gamecfg",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		LogLevel: "info",
	}
}
