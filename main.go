package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"cornersnap/snap"

	"github.com/hajimehoshi/ebiten/v2"
	clipboard "golang.design/x/clipboard"
)

var doDebug bool

func main() {
	var fv flagValues
	fv.register(flag.CommandLine)
	sweep := flag.Bool("sweep", false, "run every corner and direction headlessly, print a report and exit")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.Parse()

	setupLogging(doDebug)
	if !loadSettings() {
		logDebug("no usable settings in %v, using defaults", dataDirPath)
	}
	applyFlags(flag.CommandLine, fv)

	if *sweep {
		// Headless path: no window or clipboard needed.
		b, e := boundaryMetrics(), elementMetrics()
		results := runSweep(snapOptions(), b, e)
		if failed := writeSweepReport(os.Stdout, b, e, results); failed > 0 {
			os.Exit(1)
		}
		return
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
	} else {
		clipboardReady = true
	}

	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
			panic(r)
		}
	}()

	initFont()
	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowTitle("Corner Snap")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newGame(selectPalette(gs.Theme))
	op := &ebiten.RunGameOptions{}
	if err := ebiten.RunGameWithOptions(g, op); err != nil && !errors.Is(err, ebiten.Termination) {
		logError("ebiten: %v", err)
	}
	g.close()

	gs.WindowWidth, gs.WindowHeight = ebiten.WindowSize()
	saveSettings()
}

// flagValues holds the command line options that can override settings.
type flagValues struct {
	predict   bool
	threshold float64
	theme     string
	corner    string
}

func (fv *flagValues) register(fs *flag.FlagSet) {
	fs.BoolVar(&fv.predict, "predict", false, "snap using the drag direction instead of the drop quadrant")
	fs.Float64Var(&fv.threshold, "threshold", snap.DefaultPredictionThreshold, "minimum drag distance in pixels before direction prediction applies")
	fs.StringVar(&fv.theme, "theme", "", "color theme: light, dark or empty to follow the OS")
	fs.StringVar(&fv.corner, "corner", "", "corner to rest in after layout, e.g. top-left or BOTTOM_RIGHT")
}

// applyFlags lets command line flags that were set explicitly override the
// stored settings. Overrides are saved with the rest of the settings on exit.
func applyFlags(fs *flag.FlagSet, fv flagValues) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "predict":
			gs.PredictionEnabled = fv.predict
		case "threshold":
			gs.PredictionThreshold = fv.threshold
		case "theme":
			gs.Theme = fv.theme
		case "corner":
			if _, ok := snap.ParseCorner(fv.corner); !ok {
				logWarn("unknown corner %q", fv.corner)
				return
			}
			gs.StartCorner = fv.corner
		}
	})
	clampSettings()
	if doDebug {
		logDebug("settings: %s", describeSettings())
	}
}

func describeSettings() string {
	return fmt.Sprintf("predict=%v threshold=%v verify=%dms boundary=%vx%v element=%vx%v theme=%q corner=%q",
		gs.PredictionEnabled, gs.PredictionThreshold, gs.VerifyDelayMS,
		gs.BoundaryWidth, gs.BoundaryHeight, gs.ElementWidth, gs.ElementHeight, gs.Theme, gs.StartCorner)
}
