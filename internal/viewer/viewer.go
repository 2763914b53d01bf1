// Package viewer is the shiny window shell around a session: it routes
// pointer, touch and keyboard events into session operations and paints
// the result. All session mutation happens on the event loop goroutine;
// collaborators post events into the window queue instead of calling in.
package viewer

import (
	"image"
	"log"
	"path/filepath"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/example/shineyview/internal/config"
	"github.com/example/shineyview/internal/layout"
	"github.com/example/shineyview/internal/notify"
	"github.com/example/shineyview/internal/session"
	"github.com/example/shineyview/internal/theme"
	"github.com/example/shineyview/internal/view"
	"github.com/example/shineyview/internal/watch"
)

const (
	titleHeight  = 24
	statusHeight = 24

	messageDuration = 1500 * time.Millisecond
)

// ProgramTitle is the name shown in the in-window title bar.
const ProgramTitle = "ShineyView"

// rescanEvent is posted into the window queue when the directory watcher
// reports a change, so the rescan happens on the event loop.
type rescanEvent struct{}

// Viewer owns the window-side state: scroll offset, interaction mode,
// buttons and the passing message. The session owns everything else.
type Viewer struct {
	sess     *session.Session
	cfg      *config.Config
	theme    *theme.Theme
	notifier *notify.Notifier
	layout   *layout.Store
	watcher  *watch.Watcher

	version string

	win           screen.Window
	width, height int
	scroll        image.Point

	mode view.InteractionState

	message      string
	messageUntil time.Time

	buttons    []*actionButton
	hover      *actionButton
	dragging   *actionButton
	dragOffset image.Point

	panStart  image.Point
	panScroll image.Point

	touches    map[touch.Sequence]image.Point
	touchStart image.Point
	pinchBase  float64

	backdrop *image.RGBA

	quit bool
}

// Option adjusts a Viewer at construction time.
type Option func(*Viewer)

// WithTheme sets the color theme.
func WithTheme(t *theme.Theme) Option {
	return func(v *Viewer) {
		if t != nil {
			v.theme = t
		}
	}
}

// WithNotifier enables desktop notifications for file-level events.
func WithNotifier(n *notify.Notifier) Option {
	return func(v *Viewer) { v.notifier = n }
}

// WithConfig applies viewer settings from the loaded configuration.
func WithConfig(cfg *config.Config) Option {
	return func(v *Viewer) {
		if cfg != nil {
			v.cfg = cfg
		}
	}
}

// WithLayoutStore persists button positions through store.
func WithLayoutStore(store *layout.Store) Option {
	return func(v *Viewer) {
		if store != nil {
			v.layout = store
		}
	}
}

// WithVersion sets the version string shown in the title bar.
func WithVersion(version string) Option {
	return func(v *Viewer) { v.version = version }
}

// New wraps sess in a window shell.
func New(sess *session.Session, opts ...Option) *Viewer {
	v := &Viewer{
		sess:    sess,
		cfg:     config.New(),
		theme:   theme.Default(),
		layout:  layout.Open(""),
		touches: map[touch.Sequence]image.Point{},
	}
	for _, opt := range opts {
		opt(v)
	}
	v.buttons = v.makeButtons()
	return v
}

// Run opens the window and blocks until it closes.
func (v *Viewer) Run() {
	driver.Main(v.Main)
}

// Main is the event loop. It is called by the shiny driver with a live
// screen; failure to create the window is fatal since there is nothing
// to recover into.
func (v *Viewer) Main(s screen.Screen) {
	width, height := v.initialSize()
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  width,
		Height: height,
		Title:  v.windowTitle(),
	})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	v.win = w
	v.width, v.height = width, height

	if watcher, err := watch.New(); err != nil {
		log.Printf("directory watch unavailable: %v", err)
	} else {
		v.watcher = watcher
		defer watcher.Close()
		go func() {
			for range watcher.Events() {
				w.Send(rescanEvent{})
			}
		}()
		v.rewatch()
	}

	for !v.quit {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			v.width, v.height = e.WidthPx, e.HeightPx
			v.repaint()
		case paint.Event:
			v.paint(s)
		case key.Event:
			v.handleKey(e)
		case mouse.Event:
			v.handleMouse(e)
		case touch.Event:
			v.handleTouch(e)
		case rescanEvent:
			v.show(v.sess.Rescan())
		}
	}
}

// initialSize fits the window to the image plus chrome, within a sane
// floor so an icon-sized image still gets a usable window.
func (v *Viewer) initialSize() (int, int) {
	width, height := 800, 600
	if img := v.sess.Image(); img != nil {
		if w := img.Bounds().Dx(); w > width {
			width = w
		}
		if h := img.Bounds().Dy() + titleHeight + statusHeight; h > height {
			height = h
		}
	}
	return width, height
}

// display is the window region the image footprint is centered in.
func (v *Viewer) display() image.Rectangle {
	return image.Rect(0, titleHeight, v.width, v.height-statusHeight)
}

func (v *Viewer) repaint() {
	if v.win != nil {
		v.win.Send(paint.Event{})
	}
}

// show records an outcome as the passing message and repaints. Failures
// are logged with their cause; invalid input stays silent.
func (v *Viewer) show(out session.Outcome) {
	if out.Err != nil {
		log.Printf("viewer: %s: %v", out.Message, out.Err)
	}
	if out.Kind == session.InvalidInput || out.Message == "" {
		if out.Changed() {
			v.repaint()
		}
		return
	}
	v.message = out.Message
	v.messageUntil = time.Now().Add(messageDuration)
	v.repaint()
}

// rewatch points the directory watcher at the current image's directory.
func (v *Viewer) rewatch() {
	if v.watcher == nil {
		return
	}
	dir := ""
	if p := v.sess.Path(); p != "" {
		dir = filepath.Dir(p)
	}
	if err := v.watcher.Watch(dir); err != nil {
		log.Printf("viewer: %v", err)
	}
}

func (v *Viewer) windowTitle() string {
	title := ProgramTitle
	if v.version != "" {
		title += " v" + v.version
	}
	if p := v.sess.Path(); p != "" {
		title += " - " + filepath.Base(p)
	}
	return title
}
