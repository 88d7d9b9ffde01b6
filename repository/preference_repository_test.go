package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePreferenceRepository_DefaultsToDark(t *testing.T) {
	repo := NewFilePreferenceRepository(t.TempDir())
	assert.Equal(t, "dark", repo.LoadTheme())
}

func TestFilePreferenceRepository_SaveAndLoad(t *testing.T) {
	repo := NewFilePreferenceRepository(t.TempDir())

	require.NoError(t, repo.SaveTheme("light"))
	assert.Equal(t, "light", repo.LoadTheme())

	require.NoError(t, repo.SaveTheme("dark"))
	assert.Equal(t, "dark", repo.LoadTheme())
}

func TestFilePreferenceRepository_UnknownValueRejected(t *testing.T) {
	repo := NewFilePreferenceRepository(t.TempDir())
	assert.Error(t, repo.SaveTheme("sepia"))
}

func TestFilePreferenceRepository_GarbageFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme"), []byte("???"), 0644))

	repo := NewFilePreferenceRepository(dir)
	assert.Equal(t, "dark", repo.LoadTheme())
}
