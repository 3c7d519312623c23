package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/deadeye/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnTargetPractice func()
	OnSurvival       func()
	OnExit           func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu with mode selection buttons.
func NewMenuUI(onTargetPractice, onSurvival, onExit func()) *MenuUI {
	mui := &MenuUI{
		OnTargetPractice: onTargetPractice,
		OnSurvival:       onSurvival,
		OnExit:           onExit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   48,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
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

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("DEADEYE", &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(mui.menuButton("Target Practice", func() {
		if mui.OnTargetPractice != nil {
			mui.OnTargetPractice()
		}
	}))
	contentContainer.AddChild(mui.menuButton("Survival", func() {
		if mui.OnSurvival != nil {
			mui.OnSurvival()
		}
	}))
	contentContainer.AddChild(mui.menuButton("Exit", func() {
		if mui.OnExit != nil {
			mui.OnExit()
		}
	}))

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text(
			"WASD move  |  Mouse look  |  1-3 weapons  |  R reload  |  P pause",
			&mui.smallFace, &widget.LabelColor{
				Idle: cfg.Menu.HintColor,
			}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 44)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 220, 180, 255},
			Pressed: color.RGBA{200, 170, 140, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
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
