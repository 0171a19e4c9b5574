package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI holds the ebitenui interface shown after the last life is lost
type GameOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRestart func()
	OnQuit    func()

	scoreLabel *widget.Label
	levelLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewGameOverUI creates the game over panel
func NewGameOverUI(onRestart, onQuit func()) (*GameOverUI, error) {
	gui := &GameOverUI{
		OnRestart: onRestart,
		OnQuit:    onQuit,
	}

	if err := gui.loadFonts(); err != nil {
		return nil, err
	}
	gui.buildUI()

	return gui, nil
}

func (gui *GameOverUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading game over font: %w", err)
	}

	gui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   56,
	}
	gui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	gui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	return nil
}

func (gui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("GAME OVER", &gui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 0, 0, 255},
		}),
	))

	gui.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("Final Score: 0", &gui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(gui.scoreLabel)

	gui.levelLabel = widget.NewLabel(
		widget.LabelOpts.Text("Level 1", &gui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(gui.levelLabel)

	contentContainer.AddChild(gui.buildButtonsContainer())

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Press SPACE to restart", &gui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (gui *GameOverUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)

	container.AddChild(gui.button("Restart", func() {
		if gui.OnRestart != nil {
			gui.OnRestart()
		}
	}))
	container.AddChild(gui.button("Quit", func() {
		if gui.OnQuit != nil {
			gui.OnQuit()
		}
	}))
	return container
}

func (gui *GameOverUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 40),
		),
		widget.ButtonOpts.Image(gui.buttonImage()),
		widget.ButtonOpts.Text(label, &gui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (gui *GameOverUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetResult shows the final score and level
func (gui *GameOverUI) SetResult(score, level int) {
	gui.scoreLabel.Label = fmt.Sprintf("Final Score: %d", score)
	gui.levelLabel.Label = fmt.Sprintf("Level %d", level)
}

func (gui *GameOverUI) Update() {
	gui.UI.Update()
}
