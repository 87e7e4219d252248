package buttonfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statusRefresh is how often a StatusWidget redraws, in seconds.
const statusRefresh = 0.25

// StatusWidget is a sprite that prints a line of text produced by a callback,
// redrawn a few times per second. It is not interactable.
type StatusWidget struct {
	Node *Node

	img     *ebiten.Image
	text    func() string
	elapsed float32
	last    string
}

// NewStatusWidget creates a w×h status sprite showing text().
func NewStatusWidget(w, h int, text func() string) *StatusWidget {
	img := ebiten.NewImage(w, h)
	sw := &StatusWidget{
		Node:    NewSprite("status_widget", img),
		img:     img,
		text:    text,
		elapsed: statusRefresh,
	}
	sw.Node.ZIndex = 1 << 20
	return sw
}

// Update redraws the widget when the refresh interval has passed and the text
// changed.
func (sw *StatusWidget) Update(dt float32) {
	sw.elapsed += dt
	if sw.elapsed < statusRefresh {
		return
	}
	sw.elapsed = 0

	s := sw.text()
	if s == sw.last {
		return
	}
	sw.last = s
	sw.img.Clear()
	sw.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(sw.img, s)
}

// Text returns the text drawn by the last redraw.
func (sw *StatusWidget) Text() string {
	return sw.last
}
