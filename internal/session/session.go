// Package session owns the editing state of one open image: the pixels,
// the undo history, the view transform, the brush, and the image's place
// among its directory siblings. Operations return an Outcome instead of
// touching any UI so that both the viewer shell and the command line can
// drive a session.
package session

import (
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/example/shineyview/internal/history"
	"github.com/example/shineyview/internal/imagefile"
	"github.com/example/shineyview/internal/raster"
	"github.com/example/shineyview/internal/trash"
	"github.com/example/shineyview/internal/view"
)

// Tool selects what dragging across the canvas does.
type Tool int

const (
	ToolDraw Tool = iota
	ToolBlur
)

func (t Tool) String() string {
	if t == ToolBlur {
		return "blur"
	}
	return "draw"
}

// Brush bundles the stroke parameters shared by both tools. Size is the
// line width when drawing and the half-extent of the square when blurring.
type Brush struct {
	Size  int
	Color color.RGBA
}

const (
	// MinBrushSize and MaxBrushSize bound Brush.Size.
	MinBrushSize = 1
	MaxBrushSize = 100
)

// DefaultBrush matches the startup brush of the viewer.
func DefaultBrush() Brush {
	return Brush{Size: 20, Color: color.RGBA{R: 255, A: 255}}
}

// Session is not safe for concurrent use; the event loop owns it.
type Session struct {
	img  *image.RGBA
	path string

	hist  *history.Store
	view  *view.Transform
	brush Brush
	tool  Tool

	siblings []string
	index    int

	deletion  *DeletionRecord
	lastPoint *image.Point
	lastSave  string

	backupDir string
	trashFn   func(string) error
}

// Option adjusts a Session at construction time.
type Option func(*Session)

// WithTrashFunc replaces the system trash call, mainly for tests.
func WithTrashFunc(fn func(string) error) Option {
	return func(s *Session) { s.trashFn = fn }
}

// WithBackupDir stores deletion backups under dir instead of the system
// temporary directory.
func WithBackupDir(dir string) Option {
	return func(s *Session) { s.backupDir = dir }
}

// WithView shares an externally owned view transform.
func WithView(v *view.Transform) Option {
	return func(s *Session) {
		if v != nil {
			s.view = v
		}
	}
}

// WithBrush sets the starting brush.
func WithBrush(b Brush) Option {
	return func(s *Session) { s.brush = b }
}

// WithDeletionRecord resumes a pending deletion, letting a later process
// offer the restore that an earlier one armed.
func WithDeletionRecord(d DeletionRecord) Option {
	return func(s *Session) {
		rec := d
		s.deletion = &rec
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		hist:      history.NewStore(),
		view:      view.NewTransform(),
		brush:     DefaultBrush(),
		index:     -1,
		backupDir: os.TempDir(),
		trashFn:   trash.Move,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Image returns the live canvas. Callers draw on it only through the
// stroke methods.
func (s *Session) Image() *image.RGBA { return s.img }

// Path returns the normalized path of the tracked file, or "" when the
// canvas holds an untracked image such as a paste.
func (s *Session) Path() string { return s.path }

// View returns the shared view transform.
func (s *Session) View() *view.Transform { return s.view }

// History exposes the undo store, mainly for the shell's status line.
func (s *Session) History() *history.Store { return s.hist }

// Index returns the position of the current file among its siblings, or
// -1 when untracked.
func (s *Session) Index() int { return s.index }

// SiblingCount returns how many images the current directory holds.
func (s *Session) SiblingCount() int { return len(s.siblings) }

// Siblings returns a copy of the sibling listing.
func (s *Session) Siblings() []string {
	out := make([]string, len(s.siblings))
	copy(out, s.siblings)
	return out
}

func (s *Session) Brush() Brush { return s.brush }

// SetBrushSize clamps size into the allowed range and applies it.
func (s *Session) SetBrushSize(size int) {
	if size < MinBrushSize {
		size = MinBrushSize
	}
	if size > MaxBrushSize {
		size = MaxBrushSize
	}
	s.brush.Size = size
}

// AdjustBrushSize nudges the brush size by delta, staying in range.
func (s *Session) AdjustBrushSize(delta int) {
	s.SetBrushSize(s.brush.Size + delta)
}

func (s *Session) SetBrushColor(c color.RGBA) {
	c.A = 0xff
	s.brush.Color = c
}

func (s *Session) Tool() Tool { return s.tool }

func (s *Session) SetTool(t Tool) { s.tool = t }

// Load opens path, makes it the current image with a fresh single-entry
// history, and rescans its directory for siblings.
func (s *Session) Load(path string) Outcome {
	img, err := imagefile.Load(path)
	if err != nil {
		return failf(err, "could not open %s", filepath.Base(path))
	}
	norm, err := imagefile.Normalize(path)
	if err != nil {
		return failf(err, "could not resolve %s", path)
	}
	s.img = img
	s.path = norm
	s.lastSave = norm
	s.lastPoint = nil
	s.hist.Reset(img)
	s.rescanSiblings()
	return Outcome{Kind: OK}
}

// rescanSiblings refreshes the directory listing around the current file.
// A failed scan leaves the session usable with no siblings.
func (s *Session) rescanSiblings() {
	s.siblings = nil
	s.index = -1
	if s.path == "" {
		return
	}
	list, err := imagefile.Scan(filepath.Dir(s.path))
	if err != nil {
		log.Printf("session: scanning %s: %v", filepath.Dir(s.path), err)
		return
	}
	s.siblings = list
	s.index = locateIndex(list, s.path)
}

// locateIndex finds path in list, falling back to a base-name match so a
// file reached through a differently spelled path is still located.
func locateIndex(list []string, path string) int {
	for i, p := range list {
		if p == path {
			return i
		}
	}
	base := filepath.Base(path)
	for i, p := range list {
		if filepath.Base(p) == base {
			return i
		}
	}
	return -1
}

// BeginStroke records an undo snapshot and arms the stroke. No pixels
// change until the pointer moves.
func (s *Session) BeginStroke(pt image.Point) {
	if s.img == nil {
		return
	}
	s.hist.Record(s.img)
	p := pt
	s.lastPoint = &p
}

// ContinueStroke applies the active tool between the previous stroke point
// and pt.
func (s *Session) ContinueStroke(pt image.Point) {
	if s.img == nil || s.lastPoint == nil {
		return
	}
	switch s.tool {
	case ToolBlur:
		raster.ApplyLocalBlur(s.img, pt.X, pt.Y, s.brush.Size)
	default:
		raster.DrawLineSegment(s.img, *s.lastPoint, pt, s.brush.Color, s.brush.Size)
	}
	p := pt
	s.lastPoint = &p
}

// EndStroke disarms the stroke.
func (s *Session) EndStroke() {
	s.lastPoint = nil
}

// Paste replaces the canvas with img as an untracked image: the view
// resets to scale 1 and the history restarts with this single state. The
// sibling listing is kept so navigation still works afterwards.
func (s *Session) Paste(img image.Image) Outcome {
	if img == nil {
		return noop("clipboard has no image")
	}
	own := raster.Clone(raster.EnsureRGBA(img))
	s.img = own
	s.path = ""
	s.lastPoint = nil
	s.view.Reset()
	s.hist.Reset(own)
	b := own.Bounds()
	return okf("pasted %dx%d image", b.Dx(), b.Dy())
}

// SaveAs writes the canvas to path in the format its extension names.
// An untracked canvas becomes tracked at the new location; saving a copy
// of a tracked image leaves the session pointed at the original.
func (s *Session) SaveAs(path string) Outcome {
	if s.img == nil {
		return noop("no image to save")
	}
	if err := imagefile.Save(path, s.img); err != nil {
		return failf(err, "could not save %s", filepath.Base(path))
	}
	norm, err := imagefile.Normalize(path)
	if err != nil {
		norm = path
	}
	s.lastSave = norm
	if s.path == "" {
		s.path = norm
		s.rescanSiblings()
	}
	return okf("saved %s", filepath.Base(path))
}

// Save rewrites the tracked file in place, or the last save target for an
// untracked canvas.
func (s *Session) Save() Outcome {
	target := s.path
	if target == "" {
		target = s.lastSave
	}
	if target == "" {
		return noop("no save path yet; use save as")
	}
	return s.SaveAs(target)
}
