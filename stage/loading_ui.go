package stage

import (
	"bytes"
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const titleSize = 44

var (
	titleColor = color.NRGBA{R: 0xc4, G: 0x62, B: 0x10, A: 0xff}
	barTrack   = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	barFill    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// loadingUI is a centred "Loading..." label over a full-width progress bar
// along the bottom edge.
type loadingUI struct {
	ui  *ebitenui.UI
	bar *widget.ProgressBar
}

func newLoadingUI() (*loadingUI, error) {
	src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	var face ebtext.Face = &ebtext.GoTextFace{Source: src, Size: titleSize}

	title := widget.NewText(
		widget.TextOpts.Text("Loading...", &face, titleColor),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)

	bar := widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, 10),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
		widget.ProgressBarOpts.Images(
			&widget.ProgressBarImage{Idle: imageui.NewNineSliceColor(barTrack)},
			&widget.ProgressBarImage{Idle: imageui.NewNineSliceColor(barFill)},
		),
		widget.ProgressBarOpts.Values(0, 100, 0),
	)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(title)
	root.AddChild(bar)

	return &loadingUI{ui: &ebitenui.UI{Container: root}, bar: bar}, nil
}

func (u *loadingUI) SetProgress(percent float64) {
	u.bar.SetCurrent(int(math.Round(percent)))
}

func (u *loadingUI) Update() {
	u.ui.Update()
}

func (u *loadingUI) Draw(screen *ebiten.Image) {
	u.ui.Draw(screen)
}
