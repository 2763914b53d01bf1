package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/shineyview/internal/imagefile"
	"github.com/example/shineyview/internal/layout"
	"github.com/example/shineyview/internal/session"
	"github.com/example/shineyview/internal/view"
	"github.com/example/shineyview/internal/viewer"
)

type viewCmd struct {
	path       string
	layoutPath string
	*root
	fs *flag.FlagSet
}

func (v *viewCmd) FlagSet() *flag.FlagSet {
	return v.fs
}

func parseViewCmd(args []string, r *root) (*viewCmd, error) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	cmd := &viewCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	fs.StringVar(&cmd.layoutPath, "layout", layout.DefaultPath(), "file storing the on-screen button positions")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: cmd}
	}
	cmd.path = fs.Arg(0)
	return cmd, nil
}

func (v *viewCmd) Run() error {
	path, err := resolveImageArg(v.path)
	if err != nil {
		return err
	}

	sess := newSession(v.root)
	if out := sess.Load(path); !out.Changed() {
		return fmt.Errorf("%s: %w", out.Message, out.Err)
	}

	viewer.New(sess,
		viewer.WithTheme(v.activeTheme),
		viewer.WithNotifier(v.notifier),
		viewer.WithConfig(v.config),
		viewer.WithLayoutStore(layout.Open(v.layoutPath)),
		viewer.WithVersion(version),
	).Run()
	return nil
}

// newSession builds a session configured from the loaded settings.
func newSession(r *root) *session.Session {
	cfg := r.config
	sess := session.New(
		session.WithBrush(session.Brush{Size: cfg.Brush.Size, Color: cfg.Brush.Color}),
		session.WithView(view.NewTransformWithBounds(cfg.View.MinScale, cfg.View.MaxScale)),
	)
	return sess
}

// resolveImageArg accepts either an image path or a directory, returning
// the path to open: the named image, or the first image in the directory.
func resolveImageArg(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", path, err)
	}
	if !info.IsDir() {
		return path, nil
	}
	list, err := imagefile.Scan(path)
	if err != nil {
		return "", fmt.Errorf("cannot scan %s: %w", path, err)
	}
	if len(list) == 0 {
		return "", fmt.Errorf("no images in %s", path)
	}
	return list[0], nil
}
