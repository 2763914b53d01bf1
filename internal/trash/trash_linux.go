//go:build linux

package trash

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// moveToTrash implements the Freedesktop.org trash layout: the file lands
// in Trash/files and a matching .trashinfo record in Trash/info names the
// original location so desktop environments can restore it.
func moveToTrash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("trash %s: %w", path, err)
	}
	if _, err := os.Lstat(abs); err != nil {
		return fmt.Errorf("trash %s: %w", filepath.Base(abs), err)
	}

	filesDir := filepath.Join(trashHome(), "files")
	infoDir := filepath.Join(trashHome(), "info")
	if err := os.MkdirAll(filesDir, 0o700); err != nil {
		return fmt.Errorf("trash: %w", err)
	}
	if err := os.MkdirAll(infoDir, 0o700); err != nil {
		return fmt.Errorf("trash: %w", err)
	}

	name := uniqueTrashName(filesDir, infoDir, filepath.Base(abs))
	infoPath := filepath.Join(infoDir, name+".trashinfo")
	if err := os.WriteFile(infoPath, trashInfo(abs, time.Now()), 0o600); err != nil {
		return fmt.Errorf("trash: write info: %w", err)
	}

	dest := filepath.Join(filesDir, name)
	if err := os.Rename(abs, dest); err != nil {
		if !errors.Is(err, syscall.EXDEV) {
			os.Remove(infoPath)
			return fmt.Errorf("trash: %w", err)
		}
		// Different filesystem: fall back to copy and remove.
		if err := copyAcross(abs, dest); err != nil {
			os.Remove(infoPath)
			return fmt.Errorf("trash: %w", err)
		}
		if err := os.Remove(abs); err != nil {
			os.Remove(infoPath)
			os.Remove(dest)
			return fmt.Errorf("trash: %w", err)
		}
	}
	return nil
}

// trashHome resolves the user trash directory, honoring XDG_DATA_HOME.
func trashHome() string {
	if data := os.Getenv("XDG_DATA_HOME"); data != "" {
		return filepath.Join(data, "Trash")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "Trash")
}

// uniqueTrashName picks a name free in both the files and info directories,
// appending a numeric suffix on collision.
func uniqueTrashName(filesDir, infoDir, base string) string {
	name := base
	for i := 1; ; i++ {
		_, errFile := os.Lstat(filepath.Join(filesDir, name))
		_, errInfo := os.Lstat(filepath.Join(infoDir, name+".trashinfo"))
		if os.IsNotExist(errFile) && os.IsNotExist(errInfo) {
			return name
		}
		name = fmt.Sprintf("%s.%d", base, i)
	}
}

func trashInfo(abs string, now time.Time) []byte {
	escaped := (&url.URL{Path: abs}).EscapedPath()
	return []byte(fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escaped, now.Format("2006-01-02T15:04:05")))
}

func copyAcross(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
