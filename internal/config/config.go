package config

import (
	"fmt"
	"image/color"
	"reflect"
	"sort"
	"strings"

	"github.com/example/shineyview/internal/theme"
)

// Brush holds the startup brush settings.
type Brush struct {
	Size  int
	Color color.RGBA
}

// View holds the zoom behaviour settings.
type View struct {
	ZoomIn   float64
	ZoomOut  float64
	MinScale float64
	MaxScale float64
}

// Notify holds desktop notification settings.
type Notify struct {
	Capture bool
	Save    bool
	Copy    bool
	Delete  bool
	Restore bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	Brush   Brush
	View    View
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Brush: Brush{
			Size:  20,
			Color: color.RGBA{R: 255, A: 255},
		},
		View: View{
			ZoomIn:   1.1,
			ZoomOut:  0.9,
			MinScale: 0.1,
			MaxScale: 5.0,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "brush_size = %d\n", c.Brush.Size)
	fmt.Fprintf(&sb, "brush_color = %s\n", toHex(c.Brush.Color))
	fmt.Fprintf(&sb, "zoom_in = %g\n", c.View.ZoomIn)
	fmt.Fprintf(&sb, "zoom_out = %g\n", c.View.ZoomOut)
	fmt.Fprintf(&sb, "min_scale = %g\n", c.View.MinScale)
	fmt.Fprintf(&sb, "max_scale = %g\n", c.View.MaxScale)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "capture = %v\n", c.Notify.Capture)
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "delete = %v\n", c.Notify.Delete)
	fmt.Fprintf(&sb, "restore = %v\n", c.Notify.Restore)
	sb.WriteString("\n")

	// Sort names for deterministic output.
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		val := reflect.ValueOf(t).Elem()
		typ := val.Type()
		for i := 0; i < typ.NumField(); i++ {
			f := typ.Field(i)
			if f.Name == "Name" {
				fmt.Fprintf(&sb, "Name: %s\n", t.Name)
				continue
			}
			if f.Type == reflect.TypeOf(color.RGBA{}) {
				fmt.Fprintf(&sb, "%s: %s\n", f.Name, toHex(val.Field(i).Interface().(color.RGBA)))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
