package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/shineyview/internal/imagefile"
)

type listCmd struct {
	path string
	*root
	fs *flag.FlagSet
}

func (l *listCmd) FlagSet() *flag.FlagSet {
	return l.fs
}

func parseListCmd(args []string, r *root) (*listCmd, error) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	cmd := &listCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: cmd}
	}
	cmd.path = fs.Arg(0)
	return cmd, nil
}

func (l *listCmd) Run() error {
	dir := l.path
	current := ""
	if info, err := os.Stat(l.path); err != nil {
		return fmt.Errorf("cannot open %s: %w", l.path, err)
	} else if !info.IsDir() {
		dir = filepath.Dir(l.path)
		if norm, err := imagefile.Normalize(l.path); err == nil {
			current = norm
		}
	}

	list, err := imagefile.Scan(dir)
	if err != nil {
		return fmt.Errorf("cannot scan %s: %w", dir, err)
	}
	if len(list) == 0 {
		fmt.Fprintln(os.Stdout, "no images found")
		return nil
	}
	fmt.Fprintf(os.Stdout, "%d images in %s (* marks the current image):\n", len(list), dir)
	for i, p := range list {
		marker := " "
		if p == current || (current != "" && filepath.Base(p) == filepath.Base(current)) {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %3d: %s\n", marker, i+1, filepath.Base(p))
	}
	return nil
}
