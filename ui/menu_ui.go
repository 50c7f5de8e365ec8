package ui

import (
	"image/color"

	"github.com/automoto/yourgame/components"
	cfg "github.com/automoto/yourgame/config"
	"github.com/automoto/yourgame/fonts"
	"github.com/automoto/yourgame/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MenuUI renders the active menu screen with ebitenui
type MenuUI struct {
	UI *ebitenui.UI

	// OnActivate is called when an entry is clicked
	OnActivate func(item components.MenuItem)

	headlineFace text.Face
	itemFace     text.Face
	smallFace    text.Face

	revision int
	screen   components.Screen
	built    bool

	fade      *gween.Tween
	alpha     float32
	offscreen *ebiten.Image
}

// NewMenuUI creates a menu UI. Fonts must be loaded first.
func NewMenuUI(onActivate func(item components.MenuItem)) *MenuUI {
	return &MenuUI{
		OnActivate:   onActivate,
		headlineFace: fonts.Headline.TextFace(),
		itemFace:     fonts.Item.TextFace(),
		smallFace:    fonts.Small.TextFace(),
		alpha:        1,
	}
}

// Sync rebuilds the widgets when the menu changed since the last call
func (mui *MenuUI) Sync(menu *components.MenuData, hint string) {
	if mui.built && menu.Revision == mui.revision && menu.Current() == mui.screen {
		return
	}

	if !mui.built || menu.Current() != mui.screen {
		mui.fade = gween.New(0, 1, cfg.Menu.FadeSeconds, ease.OutQuad)
		mui.alpha = 0
	}

	mui.revision = menu.Revision
	mui.screen = menu.Current()
	mui.built = true
	mui.build(menu, hint)
}

// Update advances the fade and lets ebitenui process mouse input
func (mui *MenuUI) Update() {
	if mui.fade != nil {
		alpha, finished := mui.fade.Update(1 / float32(ebiten.TPS()))
		mui.alpha = alpha
		if finished {
			mui.fade = nil
		}
	}
	if mui.UI != nil {
		mui.UI.Update()
	}
}

// Draw renders the menu faded in by the current tween value
func (mui *MenuUI) Draw(screen *ebiten.Image) {
	if mui.UI == nil {
		return
	}

	bounds := screen.Bounds()
	if mui.offscreen == nil || mui.offscreen.Bounds() != bounds {
		mui.offscreen = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	mui.offscreen.Clear()
	mui.UI.Draw(mui.offscreen)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(mui.alpha)
	screen.DrawImage(mui.offscreen, op)
}

func (mui *MenuUI) build(menu *components.MenuData, hint string) {
	layout := systems.ResolveScreen(menu.Current(), menu.State)

	rootOpts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	}
	if !menu.Overlay {
		rootOpts = append(rootOpts, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)))
	}
	rootContainer := widget.NewContainer(rootOpts...)

	// Overlay menus sit in the top-left corner over the play field
	position := widget.AnchorLayoutPositionCenter
	if menu.Overlay {
		position = widget.AnchorLayoutPositionStart
	}

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Menu.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.Menu.ItemSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: position,
				VerticalPosition:   position,
			}),
		),
	)

	selectable := 0
	for _, item := range layout.Items {
		switch item.Kind {
		case components.ItemHeadline:
			contentContainer.AddChild(mui.label(item.Label, &mui.headlineFace, cfg.Menu.HeadlineColor))
		case components.ItemLabel:
			contentContainer.AddChild(mui.label(item.Label, &mui.itemFace, cfg.Menu.LabelColor))
		case components.ItemAction, components.ItemScreen:
			contentContainer.AddChild(mui.button(item, selectable == menu.SelectedIndex))
			selectable++
		}
	}

	if !menu.Overlay {
		contentContainer.AddChild(mui.label(hint, &mui.smallFace, cfg.Menu.LabelColor))
	}

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle: c,
		}),
	)
}

func (mui *MenuUI) button(item components.MenuItem, selected bool) *widget.Button {
	textColor := cfg.Menu.TextColorNormal
	if selected {
		textColor = cfg.Menu.TextColorSelected
	}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ButtonMinWidth, cfg.Menu.ButtonMinHeight),
		),
		widget.ButtonOpts.Image(mui.buttonImage(selected)),
		widget.ButtonOpts.Text(ItemText(item), &mui.itemFace, &widget.ButtonTextColor{
			Idle:    textColor,
			Hover:   cfg.Menu.TextColorSelected,
			Pressed: cfg.Menu.TextColorSelected,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnActivate != nil {
				mui.OnActivate(item)
			}
		}),
	)
}

func (mui *MenuUI) buttonImage(selected bool) *widget.ButtonImage {
	idle := cfg.Menu.ButtonIdle
	if selected {
		idle = cfg.Menu.ButtonHover
	}

	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(idle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Menu.ButtonIdle),
	}
}

// ItemText returns the button caption, prefixed with a check mark for checkable entries
func ItemText(item components.MenuItem) string {
	if !item.Checkable {
		return item.Label
	}
	if item.Checked {
		return cfg.Menu.CheckedMark + item.Label
	}
	return cfg.Menu.UncheckedMark + item.Label
}
