package layout

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "layout.yaml")

	s := Open(path)
	_, ok := s.Get("btn.delete")
	assert.False(t, ok, "fresh store should be empty")

	s.Set("btn.delete", image.Pt(40, 300))
	s.Set("btn.next", image.Pt(120, 300))
	require.NoError(t, s.Save())

	reloaded := Open(path)
	p, ok := reloaded.Get("btn.delete")
	require.True(t, ok)
	assert.Equal(t, Position{X: 40, Y: 300}, p)
	p, ok = reloaded.Get("btn.next")
	require.True(t, ok)
	assert.Equal(t, Position{X: 120, Y: 300}, p)
}

func TestOpenToleratesMissingAndBrokenFiles(t *testing.T) {
	missing := Open(filepath.Join(t.TempDir(), "nope.yaml"))
	_, ok := missing.Get("btn.prev")
	assert.False(t, ok)

	broken := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("{not yaml"), 0o644))
	s := Open(broken)
	_, ok = s.Get("btn.prev")
	assert.False(t, ok, "broken file should reset to defaults")

	s.Set("btn.prev", image.Pt(1, 2))
	require.NoError(t, s.Save())
	p, ok := Open(broken).Get("btn.prev")
	require.True(t, ok)
	assert.Equal(t, Position{X: 1, Y: 2}, p)
}

func TestSaveWithoutPathIsNoOp(t *testing.T) {
	s := Open("")
	s.Set("btn.undo", image.Pt(9, 9))
	assert.NoError(t, s.Save())
}
