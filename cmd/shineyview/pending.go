package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/shineyview/internal/session"
)

// pendingDeletionPath is where the delete subcommand records its
// DeletionRecord so a later restore invocation can pick it up.
func pendingDeletionPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("no cache directory for the pending deletion: %w", err)
	}
	return filepath.Join(dir, "shineyview", "pending-deletion.yaml"), nil
}

type pendingDeletion struct {
	Path       string `yaml:"path"`
	Filename   string `yaml:"filename"`
	Directory  string `yaml:"directory"`
	BackupPath string `yaml:"backup_path"`
}

func savePendingDeletion(rec session.DeletionRecord) error {
	path, err := pendingDeletionPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(pendingDeletion{
		Path:       rec.Path,
		Filename:   rec.Filename,
		Directory:  rec.Directory,
		BackupPath: rec.BackupPath,
	})
	if err != nil {
		return fmt.Errorf("encoding pending deletion: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func loadPendingDeletion() (session.DeletionRecord, bool, error) {
	path, err := pendingDeletionPath()
	if err != nil {
		return session.DeletionRecord{}, false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return session.DeletionRecord{}, false, nil
	}
	if err != nil {
		return session.DeletionRecord{}, false, err
	}
	var p pendingDeletion
	if err := yaml.Unmarshal(data, &p); err != nil {
		return session.DeletionRecord{}, false, fmt.Errorf("reading pending deletion: %w", err)
	}
	return session.DeletionRecord{
		Path:       p.Path,
		Filename:   p.Filename,
		Directory:  p.Directory,
		BackupPath: p.BackupPath,
	}, true, nil
}

func clearPendingDeletion() error {
	path, err := pendingDeletionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
