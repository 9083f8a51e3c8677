package main

import (
	"strings"

	"cornersnap/snap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

const (
	buttonWidth   = 112
	buttonHeight  = 28
	buttonSpacing = 8
)

// cornerButton moves the element straight to its corner when clicked.
type cornerButton struct {
	corner snap.CornerID
	label  string
	key    ebiten.Key
	rect   screenRect
}

type screenRect struct {
	X0, Y0, X1, Y1 float64
}

func (r screenRect) contains(x, y float64) bool {
	return x >= r.X0 && y >= r.Y0 && x <= r.X1 && y <= r.Y1
}

// cornerLabel turns TOP_LEFT into "Top Left".
func cornerLabel(c snap.CornerID) string {
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(c.String()), "_", " "))
}

var cornerKeys = [4]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// buttonGridHeight is the height of the two button rows.
const buttonGridHeight = 2*buttonHeight + buttonSpacing

// layoutButtons places one button per corner in a 2x2 grid with its top-left
// at (x, y). Each button sits in the grid cell matching its corner.
func layoutButtons(x, y float64) []cornerButton {
	buttons := make([]cornerButton, 0, len(snap.AllCorners))
	for i, c := range snap.AllCorners {
		bx, by := x, y
		if c.Right() {
			bx += buttonWidth + buttonSpacing
		}
		if c.Bottom() {
			by += buttonHeight + buttonSpacing
		}
		buttons = append(buttons, cornerButton{
			corner: c,
			label:  cornerLabel(c),
			key:    cornerKeys[i],
			rect:   screenRect{X0: bx, Y0: by, X1: bx + buttonWidth, Y1: by + buttonHeight},
		})
	}
	return buttons
}

// buttonAt returns the button under the screen point, if any.
func buttonAt(buttons []cornerButton, x, y float64) (cornerButton, bool) {
	for _, b := range buttons {
		if b.rect.contains(x, y) {
			return b, true
		}
	}
	return cornerButton{}, false
}

// pressedCornerKey returns the corner whose hotkey was just pressed.
func pressedCornerKey(buttons []cornerButton) (snap.CornerID, bool) {
	for _, b := range buttons {
		if inpututil.IsKeyJustPressed(b.key) {
			return b.corner, true
		}
	}
	return 0, false
}
