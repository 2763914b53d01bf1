package config

import (
	"image/color"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/pictures
brush_size = 32
brush_color = #00FF00
zoom_in = 1.25
zoom_out = 0.8
min_scale = 0.2
max_scale = 8

[notify]
save = true
delete = true
restore = false

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/pictures" {
		t.Errorf("Expected save_dir '/tmp/pictures', got '%s'", cfg.SaveDir)
	}
	if cfg.Brush.Size != 32 {
		t.Errorf("Expected brush_size 32, got %d", cfg.Brush.Size)
	}
	if cfg.Brush.Color != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("Unexpected brush color: %+v", cfg.Brush.Color)
	}
	if cfg.View.ZoomIn != 1.25 || cfg.View.ZoomOut != 0.8 {
		t.Errorf("Unexpected zoom steps: %+v", cfg.View)
	}
	if cfg.View.MinScale != 0.2 || cfg.View.MaxScale != 8 {
		t.Errorf("Unexpected scale bounds: %+v", cfg.View)
	}

	if !cfg.Notify.Save {
		t.Error("Expected notify.save to be true")
	}
	if !cfg.Notify.Delete {
		t.Error("Expected notify.delete to be true")
	}
	if cfg.Notify.Restore {
		t.Error("Expected notify.restore to be false")
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Brush.Size != 20 {
		t.Errorf("Default brush size should be 20, got %d", cfg.Brush.Size)
	}
	if cfg.Brush.Color != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Default brush color should be red, got %+v", cfg.Brush.Color)
	}
	if cfg.View.MinScale != 0.1 || cfg.View.MaxScale != 5.0 {
		t.Errorf("Default scale bounds wrong: %+v", cfg.View)
	}
}

func TestParseClampsBrushSize(t *testing.T) {
	cfg, err := Parse(strings.NewReader("brush_size = 9000\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Brush.Size != 100 {
		t.Errorf("brush_size should clamp to 100, got %d", cfg.Brush.Size)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := []string{
		"brush_size = lots\n",
		"brush_color = red\n",
		"zoom_in = fast\n",
		"min_scale = -1\n",
		"[notify]\nsave = sometimes\n",
	}
	for _, input := range cases {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("Parse(%q) should fail", input)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/pictures
brush_size = 14
brush_color = #3366FF
zoom_in = 1.5
zoom_out = 0.75

[notify]
save = true
delete = true

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.Brush != cfg2.Brush {
		t.Errorf("Brush mismatch: %+v vs %+v", cfg.Brush, cfg2.Brush)
	}
	if cfg.View != cfg2.View {
		t.Errorf("View mismatch: %+v vs %+v", cfg.View, cfg2.View)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if t1.Background != t2.Background {
		t.Errorf("Theme background mismatch: %v vs %v", t1.Background, t2.Background)
	}
}
