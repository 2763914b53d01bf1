package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/example/shineyview/internal/capture"
	"github.com/example/shineyview/internal/imagefile"
	"github.com/example/shineyview/internal/layout"
	"github.com/example/shineyview/internal/viewer"
)

// captureScreenFn is swappable for tests.
var captureScreenFn = capture.Screen

type grabCmd struct {
	output     string
	noOpen     bool
	layoutPath string
	*root
	fs *flag.FlagSet
}

func (g *grabCmd) FlagSet() *flag.FlagSet {
	return g.fs
}

func parseGrabCmd(args []string, r *root) (*grabCmd, error) {
	fs := flag.NewFlagSet("grab", flag.ExitOnError)
	cmd := &grabCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	fs.StringVar(&cmd.output, "output", "", "file to save the capture to (default a timestamped name in the save directory)")
	fs.BoolVar(&cmd.noOpen, "no-open", false, "save the capture without opening the viewer")
	fs.StringVar(&cmd.layoutPath, "layout", layout.DefaultPath(), "file storing the on-screen button positions")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (g *grabCmd) Run() error {
	img, err := captureScreenFn()
	if err != nil {
		return fmt.Errorf("failed to capture screen: %w", err)
	}
	if g.notifier != nil {
		g.notifier.Capture("screen", img)
	}

	path, err := g.savePath()
	if err != nil {
		return err
	}
	if err := imagefile.Save(path, img); err != nil {
		return fmt.Errorf("failed to save capture: %w", err)
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", path)
	if g.notifier != nil {
		g.notifier.Save(path)
	}
	if g.noOpen {
		return nil
	}

	sess := newSession(g.root)
	if out := sess.Load(path); !out.Changed() {
		return fmt.Errorf("%s: %w", out.Message, out.Err)
	}
	viewer.New(sess,
		viewer.WithTheme(g.activeTheme),
		viewer.WithNotifier(g.notifier),
		viewer.WithConfig(g.config),
		viewer.WithLayoutStore(layout.Open(g.layoutPath)),
		viewer.WithVersion(version),
	).Run()
	return nil
}

func (g *grabCmd) savePath() (string, error) {
	if g.output != "" {
		return g.output, nil
	}
	dir := g.config.SaveDir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("no save directory available: %w", err)
		}
	}
	name := fmt.Sprintf("grab-%s.png", time.Now().Format("20060102-150405"))
	return filepath.Join(dir, name), nil
}
