package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/shineyview/internal/clipboard"
	"github.com/example/shineyview/internal/imagefile"
	"github.com/example/shineyview/internal/raster"
)

// editCmd applies a single draw or blur operation to an image file, the
// scripted counterpart to the viewer's brush tools.
type editCmd struct {
	file          string
	output        string
	fromClipboard bool
	toClipboard   bool
	colorSpec     string
	color         color.RGBA
	width         int
	op            string
	coords        []int
	*root
	fs *flag.FlagSet
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") && (len(spec) == 7 || len(spec) == 9) {
		var vals [4]uint8
		vals[3] = 255
		for i := 0; i*2+1 < len(spec)-1; i++ {
			v, err := strconv.ParseUint(spec[1+i*2:3+i*2], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid color %q", s)
			}
			vals[i] = uint8(v)
		}
		return color.RGBA{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	e := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.file, "file", "", "input image file")
	fs.StringVar(&e.output, "output", "", "output file path (defaults to the input file)")
	fs.BoolVar(&e.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	fs.BoolVar(&e.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.StringVar(&e.colorSpec, "color", "red", "stroke color name or hex value")
	fs.IntVar(&e.width, "width", 20, "stroke width in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		return nil, &UsageError{of: e}
	}
	e.op = strings.ToLower(fs.Arg(0))
	remaining := fs.Args()[1:]

	var err error
	switch e.op {
	case "line":
		e.coords, err = expectInts(remaining, 4, e.op)
	case "blur":
		e.coords, err = expectInts(remaining, 3, e.op)
	default:
		return nil, fmt.Errorf("unsupported operation %q", e.op)
	}
	if err != nil {
		return nil, err
	}

	e.color, err = parseColor(e.colorSpec)
	if err != nil {
		return nil, err
	}
	if e.width < 1 {
		e.width = 1
	}
	if e.fromClipboard {
		if e.output == "" && e.file == "" {
			return nil, fmt.Errorf("output file is required when reading from the clipboard")
		}
	} else if e.file == "" {
		return nil, fmt.Errorf("input file is required")
	}
	if e.output == "" {
		e.output = e.file
	}
	return e, nil
}

func (e *editCmd) Run() error {
	img, err := e.loadSource()
	if err != nil {
		return err
	}

	switch e.op {
	case "line":
		from := image.Pt(e.coords[0], e.coords[1])
		to := image.Pt(e.coords[2], e.coords[3])
		raster.DrawLineSegment(img, from, to, e.color, e.width)
	case "blur":
		raster.ApplyLocalBlur(img, e.coords[0], e.coords[1], e.coords[2])
	}

	if err := imagefile.Save(e.output, img); err != nil {
		return fmt.Errorf("failed to save %s: %w", e.output, err)
	}
	saved := e.output
	if abs, err := filepath.Abs(e.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	if e.notifier != nil {
		e.notifier.Save(saved)
	}
	if e.toClipboard {
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		if e.notifier != nil {
			e.notifier.Copy(filepath.Base(saved))
		}
	}
	return nil
}

func (e *editCmd) loadSource() (*image.RGBA, error) {
	if e.fromClipboard {
		img, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("failed to read clipboard: %w", err)
		}
		return raster.EnsureRGBA(img), nil
	}
	img, err := imagefile.Load(e.file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", e.file, err)
	}
	return img, nil
}

func expectInts(args []string, n int, op string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", op, n)
	}
	vals := make([]int, n)
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}
