package main

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"cornersnap/snap"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hako/durafmt"
	"golang.org/x/image/font/gofont/goregular"
)

const hudFontSize = 13

var (
	hudFace text.Face

	shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")
)

func initFont() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logError("font source: %v", err)
		return
	}
	hudFace = &text.GoTextFace{Source: src, Size: hudFontSize}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func strokeRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	if hudFace == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, hudFace, op)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.pal.Background)
	if !g.machine.Ready() {
		drawText(screen, "waiting for layout...", boundaryOrigin.X, boundaryOrigin.Y, g.pal.Text)
		return
	}

	b, e, _ := g.machine.Metrics()
	ox, oy := boundaryOrigin.X, boundaryOrigin.Y
	fillRect(screen, ox, oy, b.Width, b.Height, g.pal.Boundary)
	strokeRect(screen, ox, oy, b.Width, b.Height, g.pal.Border)

	if c, ok := g.previewCorner(); ok {
		cs, _ := g.machine.Corners()
		p, _ := cs.Point(c)
		fillRect(screen, ox+p.X, oy+p.Y, e.Width, e.Height, g.pal.Target)
	}

	p := g.elementPos()
	clr := g.pal.Element
	if g.drag.active {
		clr = g.pal.Dragging
	}
	fillRect(screen, ox+p.X, oy+p.Y, e.Width, e.Height, clr)

	for _, btn := range g.buttons {
		r := btn.rect
		fillRect(screen, r.X0, r.Y0, r.X1-r.X0, r.Y1-r.Y0, g.pal.Button)
		strokeRect(screen, r.X0, r.Y0, r.X1-r.X0, r.Y1-r.Y0, g.pal.Border)
		if hudFace != nil {
			w, h := text.Measure(btn.label, hudFace, 0)
			drawText(screen, btn.label, r.X0+(r.X1-r.X0-w)/2, r.Y0+(r.Y1-r.Y0-h)/2, g.pal.ButtonText)
		}
	}

	y := oy + b.Height + 16 + buttonGridHeight + 12
	cs, _ := g.machine.Corners()
	for _, line := range hudLines(g.machine.State(), g.machine.Options(), cs, g.view.Rendered()) {
		drawText(screen, line, ox, y, g.pal.Text)
		y += hudFontSize + 6
	}
}

// hudLines describes the machine state for the status area. rendered is
// where the element is drawn, named by the corner it sits on.
func hudLines(st snap.State, opts snap.Options, cs snap.CornerSet, rendered snap.Point) []string {
	lines := []string{
		fmt.Sprintf("Corner: %v (%.0f, %.0f)", st.Corner, st.Position.X, st.Position.Y),
	}
	if at, ok := cs.CornerAt(rendered); ok {
		lines = append(lines, fmt.Sprintf("Drawn at: %v", at))
	} else {
		lines = append(lines, fmt.Sprintf("Drawn at: %.0f, %.0f (between corners)", rendered.X, rendered.Y))
	}
	if st.LastDrag.Distance > 0 {
		lines = append(lines, fmt.Sprintf("Last drag: %s px (dx %s, dy %s), %v",
			humanize.FtoaWithDigits(st.LastDrag.Distance, 1),
			humanize.FtoaWithDigits(st.LastDrag.Vector.DX, 1),
			humanize.FtoaWithDigits(st.LastDrag.Vector.DY, 1),
			snap.Classify(st.LastDrag.Vector)))
	} else {
		lines = append(lines, "Last drag: none")
	}
	if opts.PredictionEnabled {
		lines = append(lines, fmt.Sprintf("Prediction: on, from %s px", humanize.FtoaWithDigits(opts.PredictionThreshold, 1)))
	} else {
		lines = append(lines, "Prediction: off (quadrant snapping)")
	}
	delay := opts.VerifyDelay
	if delay <= 0 {
		delay = snap.DefaultVerifyDelay
	}
	lines = append(lines, "Verify after: "+formatDelay(delay))
	lines = append(lines, "Keys: 1-4 corners, C copy, Esc cancel drag")
	return lines
}

func formatDelay(d time.Duration) string {
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}
