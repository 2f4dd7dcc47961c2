package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDetectsChanges(t *testing.T) {
	s := New()
	assert.True(t, s.Record("a", []byte("<p>one</p>"), "2026-10-01"))
	assert.False(t, s.Record("a", []byte("<p>one</p>"), "2026-10-17"))
	assert.Equal(t, "2026-10-01", s.Pages["a"].LastMod)

	assert.True(t, s.Record("a", []byte("<p>two</p>"), "2026-10-17"))
	assert.Equal(t, "2026-10-17", s.Pages["a"].LastMod)
}

func TestHash(t *testing.T) {
	h := Hash([]byte("regal"))
	assert.Len(t, h, 64)
	assert.Equal(t, h, Hash([]byte("regal")))
	assert.NotEqual(t, h, Hash([]byte("regál")))
}

func TestSaveAndLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state.json")

	empty, err := Load(file)
	require.NoError(t, err)
	assert.Empty(t, empty.Pages)

	s := New()
	s.Record("kovove-regaly-plzen", []byte("x"), "2026-10-17")
	require.NoError(t, s.Save(file))

	back, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, s, back)
	assert.False(t, back.Record("kovove-regaly-plzen", []byte("x"), "2026-10-18"))
}

func TestLoadRejectsGarbage(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(file, []byte("{"), 0o644))
	_, err := Load(file)
	assert.ErrorContains(t, err, file)
}
