package host

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/score"
)

// launcher is the harness front screen: one row per registered
// plugin with its blurb and best score. Rebuilt after every plugin
// exit so fresh bests show up.
type launcher struct {
	ui *ebitenui.UI

	store    score.Store
	onLaunch func(id string)

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func newLauncher(store score.Store, onLaunch func(id string)) *launcher {
	l := &launcher{store: store, onLaunch: onLaunch}
	l.loadFonts()
	l.build()
	return l
}

func (l *launcher) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	l.titleFace = &text.GoTextFace{Source: fontSource, Size: 22}
	l.normalFace = &text.GoTextFace{Source: fontSource, Size: 13}
	l.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (l *launcher) build() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{16, 16, 24, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{24, 24, 34, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("LLIZARDGUI", &l.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("pick a plugin", &l.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 150, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	for _, info := range plugin.List() {
		contentContainer.AddChild(l.buildRow(info))
	}

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("esc: quit", &l.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 150, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	l.ui = &ebitenui.UI{Container: rootContainer}
}

func (l *launcher) buildRow(info plugin.Info) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	id := info.ID
	launchBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(150, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(info.Name, &l.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{220, 230, 255, 255},
			Pressed: color.RGBA{180, 190, 220, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if l.onLaunch != nil {
				l.onLaunch(id)
			}
		}),
	)
	row.AddChild(launchBtn)

	descLabel := widget.NewLabel(
		widget.LabelOpts.Text(info.Description, &l.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 150, 255},
		}),
	)
	row.AddChild(descLabel)

	if l.store != nil {
		if best := l.store.Best(id); best > 0 {
			bestLabel := widget.NewLabel(
				widget.LabelOpts.Text(fmt.Sprintf("best %d", best), &l.smallFace, &widget.LabelColor{
					Idle: color.RGBA{255, 208, 64, 255},
				}),
			)
			row.AddChild(bestLabel)
		}
	}

	return row
}

// refresh rebuilds the screen from the registry and score store.
func (l *launcher) refresh() {
	l.build()
}

func (l *launcher) update() {
	l.ui.Update()
}

func (l *launcher) draw(screen *ebiten.Image) {
	l.ui.Draw(screen)
}
