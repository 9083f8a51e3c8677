package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"cornersnap/snap"
)

const SETTINGS_VERSION = 1

const settingsFile = "settings.json"

// dataDirPath holds the directory settings are stored in. On macOS it lives
// under Application Support; elsewhere it sits next to the executable so the
// demo behaves the same regardless of the working directory.
var dataDirPath = func() string {
	if runtime.GOOS == "darwin" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support", "cornersnap")
		}
	}
	if exe, err := os.Executable(); err == nil {
		if dir, err := filepath.Abs(filepath.Dir(exe)); err == nil {
			return filepath.Join(dir, "data")
		}
	}
	return "data"
}()

type settings struct {
	Version int

	PredictionEnabled   bool
	PredictionThreshold float64
	VerifyDelayMS       int

	BoundaryWidth  float64
	BoundaryHeight float64
	ElementWidth   float64
	ElementHeight  float64

	WindowWidth  int
	WindowHeight int

	// Theme is "light", "dark" or empty to follow the OS.
	Theme string

	// StartCorner is where the element rests after layout, in any form
	// snap.ParseCorner accepts. Empty means TOP_LEFT.
	StartCorner string
}

var gsdef = settings{
	Version: SETTINGS_VERSION,

	PredictionEnabled:   false,
	PredictionThreshold: snap.DefaultPredictionThreshold,
	VerifyDelayMS:       int(snap.DefaultVerifyDelay / time.Millisecond),

	BoundaryWidth:  480,
	BoundaryHeight: 320,
	ElementWidth:   96,
	ElementHeight:  96,

	WindowWidth:  640,
	WindowHeight: 600,
}

var gs settings = gsdef

func loadSettings() bool {
	path := filepath.Join(dataDirPath, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		gs = gsdef
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		logWarn("load settings: %v", err)
		gs = gsdef
		return false
	}
	if tmp.Version != SETTINGS_VERSION {
		gs = gsdef
		return false
	}
	gs = tmp
	clampSettings()
	return true
}

// clampSettings replaces out of range values with their defaults.
func clampSettings() {
	if gs.PredictionThreshold < 0 {
		gs.PredictionThreshold = gsdef.PredictionThreshold
	}
	if gs.VerifyDelayMS <= 0 || gs.VerifyDelayMS > 1000 {
		gs.VerifyDelayMS = gsdef.VerifyDelayMS
	}
	if gs.BoundaryWidth <= 0 || gs.BoundaryHeight <= 0 {
		gs.BoundaryWidth = gsdef.BoundaryWidth
		gs.BoundaryHeight = gsdef.BoundaryHeight
	}
	if gs.ElementWidth <= 0 || gs.ElementWidth > gs.BoundaryWidth {
		gs.ElementWidth = min(gsdef.ElementWidth, gs.BoundaryWidth)
	}
	if gs.ElementHeight <= 0 || gs.ElementHeight > gs.BoundaryHeight {
		gs.ElementHeight = min(gsdef.ElementHeight, gs.BoundaryHeight)
	}
	if gs.WindowWidth < 320 {
		gs.WindowWidth = gsdef.WindowWidth
	}
	if gs.WindowHeight < 240 {
		gs.WindowHeight = gsdef.WindowHeight
	}
	switch gs.Theme {
	case "", "light", "dark":
	default:
		gs.Theme = gsdef.Theme
	}
	if _, ok := startCorner(); !ok {
		gs.StartCorner = gsdef.StartCorner
	}
}

// startCorner parses the StartCorner setting. An empty setting is TOP_LEFT.
func startCorner() (snap.CornerID, bool) {
	if gs.StartCorner == "" {
		return snap.TopLeft, true
	}
	return snap.ParseCorner(gs.StartCorner)
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.MkdirAll(dataDirPath, 0755); err != nil {
		logError("save settings: %v", err)
		return
	}
	path := filepath.Join(dataDirPath, settingsFile)
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.Rename(path+".tmp", path); err != nil {
		logError("save settings: %v", err)
	}
}

// snapOptions converts the settings into machine options.
func snapOptions() snap.Options {
	return snap.Options{
		PredictionEnabled:   gs.PredictionEnabled,
		PredictionThreshold: gs.PredictionThreshold,
		VerifyDelay:         time.Duration(gs.VerifyDelayMS) * time.Millisecond,
		Warnf:               logWarn,
	}
}

func boundaryMetrics() snap.BoundaryMetrics {
	return snap.BoundaryMetrics{Width: gs.BoundaryWidth, Height: gs.BoundaryHeight}
}

func elementMetrics() snap.ElementMetrics {
	return snap.ElementMetrics{Width: gs.ElementWidth, Height: gs.ElementHeight}
}
