package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultTheme = "dark"

// FilePreferenceRepository persists the UI theme preference as a single
// word in a small file next to the cart store.
type FilePreferenceRepository struct {
	path string
}

// NewFilePreferenceRepository creates a FilePreferenceRepository storing
// the preference at dataDir/theme.
func NewFilePreferenceRepository(dataDir string) *FilePreferenceRepository {
	return &FilePreferenceRepository{path: filepath.Join(dataDir, "theme")}
}

// Ensure FilePreferenceRepository implements PreferenceRepositoryInterface
var _ PreferenceRepositoryInterface = (*FilePreferenceRepository)(nil)

// LoadTheme returns the saved preference, or "dark" when absent, unreadable,
// or holding anything other than the two known values.
func (r *FilePreferenceRepository) LoadTheme() string {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return defaultTheme
	}
	theme := strings.TrimSpace(string(data))
	if theme != "dark" && theme != "light" {
		return defaultTheme
	}
	return theme
}

// SaveTheme writes the preference.
func (r *FilePreferenceRepository) SaveTheme(theme string) error {
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("unknown theme preference: %q", theme)
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(r.path, []byte(theme), 0644); err != nil {
		return fmt.Errorf("failed to write theme preference: %w", err)
	}
	return nil
}
