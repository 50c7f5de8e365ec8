package main

import (
	"flag"
	"os"

	"github.com/automoto/yourgame/config"
	"github.com/automoto/yourgame/fonts"
	"github.com/automoto/yourgame/scenes"
	"github.com/automoto/yourgame/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	ExitRequested() bool
}

type Game struct {
	scene Scene
}

func NewGame(saved *systems.SavedGameCfg) *Game {
	return &Game{
		scene: scenes.NewGameScene(saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func loadFonts() error {
	sizes := map[fonts.FontName]float64{
		fonts.Headline: config.Menu.HeadlineSize,
		fonts.Item:     config.Menu.ItemSize,
		fonts.Small:    10,
	}
	for name, size := range sizes {
		if err := fonts.LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start a new game immediately")
	flag.StringVar(&config.Debug.LogLevel, "log-level", config.Debug.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "yourgame"})
	systems.SetLogLevel(config.Debug.LogLevel)

	if err := loadFonts(); err != nil {
		logger.Fatal("Failed to load fonts", "err", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)

	// Initialize persistence and load the saved configuration
	var saved *systems.SavedGameCfg
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("Could not initialize persistence", "err", err)
	} else if saved, err = systems.LoadGameCfg(); err != nil {
		logger.Warn("Could not load configuration", "err", err)
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		logger.Fatal("Game exited with error", "err", err)
	}
}
