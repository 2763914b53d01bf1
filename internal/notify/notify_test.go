package notify

import (
	"image"
	"os"
	"testing"
)

func TestDefaultPreferencesTemplates(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Title != "ShineyView" {
		t.Fatalf("title = %q", prefs.Title)
	}
	want := map[Event]string{
		EventCapture: "Captured %s",
		EventSave:    "Saved %s",
		EventCopy:    "Copied %s to clipboard",
		EventDelete:  "Moved %s to trash",
		EventRestore: "Restored %s",
	}
	for event, tmpl := range want {
		pref, ok := prefs.Events[event]
		if !ok {
			t.Fatalf("missing preference for %s", event)
		}
		if pref.Template != tmpl {
			t.Fatalf("%s template = %q, want %q", event, pref.Template, tmpl)
		}
	}
}

func TestLoadPreferencesEnvOverrides(t *testing.T) {
	t.Setenv("SHINEYVIEW_NOTIFY_TITLE", "Screenshots")
	t.Setenv("SHINEYVIEW_NOTIFY_DELETE_TEXT", "Trashed %s")
	t.Setenv("SHINEYVIEW_NOTIFY_SAVE_TEXT", "  ")

	prefs := LoadPreferences()
	if prefs.Title != "Screenshots" {
		t.Fatalf("title = %q", prefs.Title)
	}
	if got := prefs.Events[EventDelete].Template; got != "Trashed %s" {
		t.Fatalf("delete template = %q", got)
	}
	// Blank overrides keep the default.
	if got := prefs.Events[EventSave].Template; got != "Saved %s" {
		t.Fatalf("save template = %q", got)
	}
}

func TestEnableGatesEvents(t *testing.T) {
	n := New(DefaultPreferences())
	if n.enabledFor(EventSave) {
		t.Fatal("events must start disabled")
	}
	n.Enable(EventSave, true)
	if !n.enabledFor(EventSave) {
		t.Fatal("enable did not take")
	}
	if n.enabledFor(EventDelete) {
		t.Fatal("enabling one event must not enable others")
	}
	n.Enable(EventSave, false)
	if n.enabledFor(EventSave) {
		t.Fatal("disable did not take")
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.Enable(EventCopy, true)
	if n.enabledFor(EventCopy) {
		t.Fatal("nil notifier reported an enabled event")
	}
	// Event methods on a disabled notifier must be no-ops, not sends.
	n.Copy("image")
	n.Delete("img.png")
	n.Restore("img.png")
	n.Save("img.png")
	n.Capture("screen", nil)
}

func TestNewClonesPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	n := New(prefs)
	prefs.Events[EventCopy] = EventPreference{Template: "mutated %s"}
	if got := n.template(EventCopy); got != "Copied %s to clipboard" {
		t.Fatalf("notifier shares caller's preference map: %q", got)
	}
}

func TestCreatePreviewRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	path, cleanup, err := createPreview(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("preview file missing: %v", err)
	}
	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("cleanup left the preview behind: %v", err)
	}
}
