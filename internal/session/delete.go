package session

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/shineyview/internal/imagefile"
)

// DeletionRecord remembers a trashed file well enough to put it back. The
// backup copy, not the trash, is the restore source.
type DeletionRecord struct {
	Path       string
	Filename   string
	Directory  string
	BackupPath string
}

// Deletion returns the pending deletion, if any.
func (s *Session) Deletion() (DeletionRecord, bool) {
	if s.deletion == nil {
		return DeletionRecord{}, false
	}
	return *s.deletion, true
}

func (s *Session) backupPath(filename string) string {
	return filepath.Join(s.backupDir, "image_backup_"+filename)
}

// DeleteCurrent backs up the current file, moves it to the system trash,
// arms the undo record and advances to the sibling now occupying the same
// index, or the new last image when the deleted one was last. If any step
// before the trash move fails the session is left untouched.
func (s *Session) DeleteCurrent() Outcome {
	if s.img == nil || s.path == "" {
		return noop("no image to delete")
	}
	if _, err := os.Stat(s.path); err != nil {
		return noop("image file no longer exists")
	}

	deleted := s.path
	filename := filepath.Base(deleted)
	dir := filepath.Dir(deleted)
	backup := s.backupPath(filename)
	if err := imagefile.CopyFile(deleted, backup); err != nil {
		return failf(err, "could not back up %s", filename)
	}
	if err := s.trashFn(deleted); err != nil {
		os.Remove(backup)
		return failf(err, "could not delete %s", filename)
	}

	if s.deletion != nil && s.deletion.BackupPath != backup {
		if err := os.Remove(s.deletion.BackupPath); err != nil && !os.IsNotExist(err) {
			log.Printf("session: dropping stale backup: %v", err)
		}
	}
	s.deletion = &DeletionRecord{
		Path:       deleted,
		Filename:   filename,
		Directory:  dir,
		BackupPath: backup,
	}

	prevIndex := s.index
	list, err := imagefile.Scan(dir)
	if err != nil {
		log.Printf("session: rescanning %s after delete: %v", dir, err)
		list = nil
	}
	if len(list) == 0 {
		s.clearCurrent()
		return okf("deleted: %s; no images left here (press undo to restore)", filename)
	}

	target := prevIndex
	if target < 0 {
		target = 0
	}
	if target >= len(list) {
		target = len(list) - 1
	}
	if out := s.Load(list[target]); !out.Changed() {
		s.clearCurrent()
		return okf("deleted: %s (press undo to restore)", filename)
	}
	return okf("deleted: %s (%d/%d, press undo to restore)", filename, s.index+1, len(s.siblings))
}

// clearCurrent empties the canvas without touching the deletion record.
func (s *Session) clearCurrent() {
	s.img = nil
	s.path = ""
	s.siblings = nil
	s.index = -1
	s.lastPoint = nil
	s.hist.Clear()
}

// UndoLastDeletion copies the backup back to the original path, reloads it
// and clears the record. A missing backup clears the record too, since the
// restore can never succeed.
func (s *Session) UndoLastDeletion() Outcome {
	if s.deletion == nil {
		return noop("nothing to restore")
	}
	d := *s.deletion
	if _, err := os.Stat(d.BackupPath); err != nil {
		s.deletion = nil
		return failf(err, "the backup of %s is gone; cannot restore", d.Filename)
	}
	if err := imagefile.CopyFile(d.BackupPath, d.Path); err != nil {
		return failf(err, "could not restore %s", d.Filename)
	}
	if err := os.Remove(d.BackupPath); err != nil {
		log.Printf("session: removing backup after restore: %v", err)
	}
	s.deletion = nil
	if out := s.Load(d.Path); !out.Changed() {
		return failf(out.Err, "restored %s but could not reopen it", d.Filename)
	}
	return okf("restored: %s", d.Filename)
}

// HandleUndoKey gives a pending deletion priority over history undo, and
// keeps that priority until the deletion is resolved.
func (s *Session) HandleUndoKey() Outcome {
	if s.deletion != nil {
		return s.UndoLastDeletion()
	}
	img, undone := s.hist.Undo()
	if !undone {
		return noop("nothing to undo")
	}
	s.img = img
	s.lastPoint = nil
	return Outcome{Kind: OK}
}

// CopyToParent copies the current file into the parent directory, renaming
// with a numeric suffix when the name is taken, then deletes the original
// through DeleteCurrent so the move is undoable.
func (s *Session) CopyToParent() Outcome {
	if s.img == nil || s.path == "" {
		return noop("no image to copy")
	}
	if _, err := os.Stat(s.path); err != nil {
		return noop("image file no longer exists")
	}
	dir := filepath.Dir(s.path)
	parent := filepath.Dir(dir)
	if parent == dir {
		return noop("no parent directory to copy into")
	}

	dest := filepath.Join(parent, filepath.Base(s.path))
	if _, err := os.Stat(dest); err == nil {
		dest = uniqueDestName(parent, filepath.Base(s.path))
	}
	if err := imagefile.CopyFile(s.path, dest); err != nil {
		return failf(err, "could not copy to %s", parent)
	}

	destBase := filepath.Base(dest)
	if out := s.DeleteCurrent(); !out.Changed() {
		return Outcome{
			Kind:    out.Kind,
			Message: fmt.Sprintf("copied to parent as %s, but the original was not removed", destBase),
			Err:     out.Err,
		}
	}
	return okf("moved to parent directory as %s", destBase)
}

// uniqueDestName appends _1, _2, ... before the extension until the name
// is free in dir.
func uniqueDestName(dir, filename string) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
