package session

import (
	"image"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceThroughSiblings(t *testing.T) {
	_, paths := threeImages(t)
	s := New()
	require.Equal(t, OK, s.Load(paths[0]).Kind)

	out := s.Advance(Next)
	require.Equal(t, OK, out.Kind)
	assert.Equal(t, "→ b.png (2/3)", out.Message)
	assert.Equal(t, 1, s.Index())

	out = s.Advance(Next)
	require.Equal(t, OK, out.Kind)
	assert.Equal(t, "→ c.png (3/3)", out.Message)

	out = s.Advance(Next)
	assert.Equal(t, UserNoOp, out.Kind)
	assert.Equal(t, "already at the last image", out.Message)
	assert.Equal(t, 2, s.Index())

	out = s.Advance(Prev)
	require.Equal(t, OK, out.Kind)
	assert.Equal(t, "← b.png (2/3)", out.Message)

	require.Equal(t, OK, s.Advance(Prev).Kind)
	out = s.Advance(Prev)
	assert.Equal(t, UserNoOp, out.Kind)
	assert.Equal(t, "already at the first image", out.Message)
	assert.Equal(t, 0, s.Index())
}

func TestAdvanceWithoutImages(t *testing.T) {
	s := New()
	out := s.Advance(Next)
	assert.Equal(t, UserNoOp, out.Kind)
	assert.Equal(t, "no other images in this directory", out.Message)
}

func TestAdvanceAfterPasteKeepsPosition(t *testing.T) {
	_, paths := threeImages(t)
	s := New()
	require.Equal(t, OK, s.Load(paths[1]).Kind)
	require.Equal(t, OK, s.Paste(image.NewRGBA(image.Rect(0, 0, 3, 3))).Kind)

	out := s.Advance(Next)
	require.Equal(t, OK, out.Kind)
	assert.Equal(t, paths[2], s.Path())
	assert.Equal(t, 2, s.Index())
}

func TestRescanAfterExternalChange(t *testing.T) {
	_, paths := threeImages(t)
	s := New()
	require.Equal(t, OK, s.Load(paths[1]).Kind)

	require.NoError(t, os.Remove(paths[2]))
	out := s.Rescan()
	require.Equal(t, OK, out.Kind)
	assert.Equal(t, 2, s.SiblingCount())
	assert.Equal(t, 1, s.Index())

	require.NoError(t, os.Remove(paths[1]))
	out = s.Rescan()
	require.Equal(t, OK, out.Kind)
	assert.Equal(t, -1, s.Index())
	assert.Contains(t, out.Message, "no longer listed")
}

func TestLocateIndexFallsBackToFilename(t *testing.T) {
	list := []string{"/pics/a.png", "/pics/b.png", "/pics/c.png"}
	assert.Equal(t, 1, locateIndex(list, "/pics/b.png"))
	assert.Equal(t, 2, locateIndex(list, "/elsewhere/c.png"))
	assert.Equal(t, -1, locateIndex(list, "/pics/zzz.png"))
}
