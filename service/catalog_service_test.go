package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptr-shop/models"
)

func testCatalog() models.Catalog {
	return models.Catalog{Themes: []models.Theme{
		{
			ID: "animals", Name: "Animals", Thumbnail: "/img/animals.png",
			Designs: []models.Design{
				{
					ID: "mandala", Name: "Mandala", Thumbnail: "/img/mandala.png",
					Variants: []models.Variant{
						{Size: "A4", Type: "Line", File: "/files/mandala-a4-line.pdf"},
						{Size: "A4", Type: "Dot", File: "/files/mandala-a4-dot.pdf", Thumbnail: "/img/mandala-dot.png"},
						{Size: "A5", Type: "Line", File: "/files/mandala-a5-line.pdf"},
					},
				},
			},
		},
		{ID: "nature", Name: "Nature", Thumbnail: "/img/nature.png"},
	}}
}

func TestCatalogLookups(t *testing.T) {
	c := NewCatalogService(testCatalog())

	theme, ok := c.FindTheme("animals")
	require.True(t, ok)
	assert.Equal(t, "Animals", theme.Name)

	_, ok = c.FindTheme("missing")
	assert.False(t, ok)

	design, ok := c.FindDesign("animals", "mandala")
	require.True(t, ok)
	assert.Equal(t, "Mandala", design.Name)

	_, ok = c.FindDesign("animals", "missing")
	assert.False(t, ok)
	_, ok = c.FindDesign("missing", "mandala")
	assert.False(t, ok)

	variant, ok := c.FindVariant("animals", "mandala", "A4", "Dot")
	require.True(t, ok)
	assert.Equal(t, "/files/mandala-a4-dot.pdf", variant.File)

	_, ok = c.FindVariant("animals", "mandala", "A3", "Line")
	assert.False(t, ok)
}

func TestVariantSizesAndTypes(t *testing.T) {
	c := NewCatalogService(testCatalog())
	design, ok := c.FindDesign("animals", "mandala")
	require.True(t, ok)

	assert.Equal(t, []string{"A4", "A5"}, VariantSizes(design))
	assert.Equal(t, []string{"Line", "Dot"}, VariantTypes(design))
}

func TestLoadCatalog_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"themes":[{"id":"x","name":"X"}]}`), 0644))

	notifier := &recordingNotifier{}
	catalog, err := LoadCatalog(context.Background(), path, nil, notifier)
	require.NoError(t, err)
	require.Len(t, catalog.Themes, 1)
	assert.Equal(t, "x", catalog.Themes[0].ID)
	assert.Empty(t, notifier.messages)
}

func TestLoadCatalog_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{{{not json`), 0644))

	notifier := &recordingNotifier{}
	catalog, err := LoadCatalog(context.Background(), path, nil, notifier)
	assert.Error(t, err)
	assert.Empty(t, catalog.Themes)
	assert.Contains(t, notifier.messages, "error: Failed to load catalog data")
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	notifier := &recordingNotifier{}
	catalog, err := LoadCatalog(context.Background(), filepath.Join(t.TempDir(), "nope.json"), nil, notifier)
	assert.Error(t, err)
	assert.Empty(t, catalog.Themes)
}
