package theme

import (
	"image/color"
)

// Theme defines the color palette for the viewer UI.
type Theme struct {
	Name string

	// Canvas
	Background color.RGBA // backdrop behind the image footprint
	Foreground color.RGBA // general text

	// Overlay buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Passing notification
	NotificationBackground color.RGBA
	NotificationText       color.RGBA
	NotificationBorder     color.RGBA

	// Bottom status line
	StatusBackground color.RGBA
	StatusText       color.RGBA

	// Transparency checker behind images with alpha
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
}

// Default returns the hardcoded dark theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                   "Dark",
		Background:             color.RGBA{32, 33, 36, 255},
		Foreground:             color.RGBA{230, 230, 230, 255},
		ButtonBackground:       color.RGBA{58, 60, 64, 255},
		ButtonBackgroundHover:  color.RGBA{72, 74, 79, 255},
		ButtonBackgroundPress:  color.RGBA{90, 93, 99, 255},
		ButtonText:             color.RGBA{235, 235, 235, 255},
		ButtonBorder:           color.RGBA{20, 20, 20, 255},
		NotificationBackground: color.RGBA{250, 250, 250, 235},
		NotificationText:       color.RGBA{16, 16, 16, 255},
		NotificationBorder:     color.RGBA{0, 0, 0, 255},
		StatusBackground:       color.RGBA{24, 24, 26, 255},
		StatusText:             color.RGBA{200, 200, 204, 255},
		CheckerLight:           color.RGBA{46, 47, 51, 255},
		CheckerDark:            color.RGBA{38, 39, 42, 255},
	}
}

// Light returns the builtin light theme.
func Light() *Theme {
	return &Theme{
		Name:                   "Light",
		Background:             color.RGBA{220, 220, 220, 255},
		Foreground:             color.RGBA{0, 0, 0, 255},
		ButtonBackground:       color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover:  color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress:  color.RGBA{150, 150, 150, 255},
		ButtonText:             color.RGBA{0, 0, 0, 255},
		ButtonBorder:           color.RGBA{0, 0, 0, 255},
		NotificationBackground: color.RGBA{255, 255, 255, 235},
		NotificationText:       color.RGBA{0, 0, 0, 255},
		NotificationBorder:     color.RGBA{0, 0, 0, 255},
		StatusBackground:       color.RGBA{236, 236, 236, 255},
		StatusText:             color.RGBA{40, 40, 40, 255},
		CheckerLight:           color.RGBA{220, 220, 220, 255},
		CheckerDark:            color.RGBA{192, 192, 192, 255},
	}
}

// Builtin returns a named builtin theme, or nil when name is unknown.
func Builtin(name string) *Theme {
	switch name {
	case "dark", "Dark":
		return Default()
	case "light", "Light":
		return Light()
	}
	return nil
}
