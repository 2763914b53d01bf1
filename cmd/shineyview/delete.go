package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/shineyview/internal/session"
)

type deleteCmd struct {
	path string
	*root
	fs *flag.FlagSet
}

func (d *deleteCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDeleteCmd(args []string, r *root) (*deleteCmd, error) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	cmd := &deleteCmd{root: r, fs: fs}
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

func (d *deleteCmd) Run() error {
	sess := newSession(d.root)
	if out := sess.Load(d.path); !out.Changed() {
		return fmt.Errorf("%s: %w", out.Message, out.Err)
	}
	out := sess.DeleteCurrent()
	if !out.Changed() {
		return fmt.Errorf("%s: %w", out.Message, out.Err)
	}
	if d.notifier != nil {
		d.notifier.Delete(filepath.Base(d.path))
	}
	rec, ok := sess.Deletion()
	if !ok {
		return fmt.Errorf("delete succeeded but left no restore record")
	}
	if err := savePendingDeletion(rec); err != nil {
		return fmt.Errorf("deleted, but restore will not be possible: %w", err)
	}
	fmt.Fprintf(os.Stderr, "%s\n", out.Message)
	fmt.Fprintf(os.Stderr, "run `%s restore` to undo\n", "shineyview")
	return nil
}

type restoreCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *restoreCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRestoreCmd(args []string, r *root) (*restoreCmd, error) {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	cmd := &restoreCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *restoreCmd) Run() error {
	rec, ok, err := loadPendingDeletion()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "nothing to restore")
		return nil
	}
	sess := session.New(session.WithDeletionRecord(rec))
	out := sess.UndoLastDeletion()
	if !out.Changed() {
		// A vanished backup cannot be restored later either, so the
		// record is spent in every case.
		if clearErr := clearPendingDeletion(); clearErr != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", clearErr)
		}
		return fmt.Errorf("%s: %w", out.Message, out.Err)
	}
	if err := clearPendingDeletion(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if c.notifier != nil {
		c.notifier.Restore(rec.Filename)
	}
	fmt.Fprintf(os.Stderr, "%s\n", out.Message)
	return nil
}
