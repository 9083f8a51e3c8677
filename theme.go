package main

import (
	"image/color"

	dark "github.com/thiagokokada/dark-mode-go"
)

type palette struct {
	Background color.RGBA
	Boundary   color.RGBA
	Border     color.RGBA
	Element    color.RGBA
	Dragging   color.RGBA
	Target     color.RGBA
	Button     color.RGBA
	ButtonText color.RGBA
	Text       color.RGBA
}

var lightPalette = palette{
	Background: color.RGBA{0xf4, 0xf4, 0xf6, 0xff},
	Boundary:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	Border:     color.RGBA{0x9e, 0x9e, 0xa8, 0xff},
	Element:    color.RGBA{0x3f, 0x51, 0xb5, 0xff},
	Dragging:   color.RGBA{0x5c, 0x6b, 0xc0, 0xc0},
	Target:     color.RGBA{0x3f, 0x51, 0xb5, 0x30},
	Button:     color.RGBA{0xe0, 0xe0, 0xe6, 0xff},
	ButtonText: color.RGBA{0x20, 0x20, 0x28, 0xff},
	Text:       color.RGBA{0x30, 0x30, 0x38, 0xff},
}

var darkPalette = palette{
	Background: color.RGBA{0x18, 0x18, 0x1c, 0xff},
	Boundary:   color.RGBA{0x24, 0x24, 0x2a, 0xff},
	Border:     color.RGBA{0x55, 0x55, 0x60, 0xff},
	Element:    color.RGBA{0x7e, 0x8c, 0xe0, 0xff},
	Dragging:   color.RGBA{0x9f, 0xa8, 0xda, 0xc0},
	Target:     color.RGBA{0x7e, 0x8c, 0xe0, 0x30},
	Button:     color.RGBA{0x33, 0x33, 0x3b, 0xff},
	ButtonText: color.RGBA{0xe8, 0xe8, 0xf0, 0xff},
	Text:       color.RGBA{0xc8, 0xc8, 0xd0, 0xff},
}

// isDarkMode is swapped out in tests.
var isDarkMode = dark.IsDarkMode

// selectPalette picks the palette for the theme setting. An empty theme asks
// the OS and falls back to dark when it cannot tell.
func selectPalette(theme string) palette {
	switch theme {
	case "light":
		return lightPalette
	case "dark":
		return darkPalette
	}
	darkMode, err := isDarkMode()
	if err != nil {
		logDebug("dark mode detection: %v", err)
		return darkPalette
	}
	if darkMode {
		return darkPalette
	}
	return lightPalette
}
