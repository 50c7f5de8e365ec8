package systems

import (
	"fmt"

	cfg "github.com/automoto/yourgame/config"
	"github.com/automoto/yourgame/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Cached face for play field text (lazy initialized)
var playfieldFace text.Face

// DrawPlayfield renders the stand-in play field while in the Game state
func DrawPlayfield(e *ecs.ECS, screen *ebiten.Image) {
	if CurrentState(e) != cfg.StateGame {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.PlayfieldColor, false)

	if playfieldFace == nil {
		playfieldFace = fonts.Small.TextFace()
	}

	gameCfg := GetOrCreateGameCfg(e)
	status := fmt.Sprintf("Playing  boolean: %t  num: %d", gameCfg.Boolean, gameCfg.Num)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(width)/2-80, float64(height)/2)
	op.ColorScale.ScaleWithColor(cfg.Menu.TextColorNormal)
	text.Draw(screen, status, playfieldFace, op)

	hint := &text.DrawOptions{}
	hint.GeoM.Translate(float64(width)/2-110, float64(height)-20)
	hint.ColorScale.ScaleWithColor(cfg.Menu.LabelColor)
	text.Draw(screen, "Esc: Pause   F1: Win   F2: Lose", playfieldFace, hint)
}
