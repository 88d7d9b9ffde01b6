package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptr-shop/models"
)

func TestSelection_Navigation(t *testing.T) {
	catalog := NewCatalogService(testCatalog())
	sel := NewSelectionService(catalog)

	assert.Equal(t, models.ViewThemes, sel.State().CurrentView)

	sel.SelectTheme("animals")
	assert.Equal(t, models.ViewDesigns, sel.State().CurrentView)
	assert.Equal(t, "animals", sel.State().SelectedTheme)

	sel.SelectDesign("mandala")
	state := sel.State()
	assert.Equal(t, models.ViewOptions, state.CurrentView)
	// Defaults to the first variant's size and type
	assert.Equal(t, "A4", state.SelectedSize)
	assert.Equal(t, "Line", state.SelectedType)

	sel.GoBack()
	assert.Equal(t, models.ViewDesigns, sel.State().CurrentView)

	sel.GoBack()
	assert.Equal(t, models.ViewThemes, sel.State().CurrentView)
	assert.Empty(t, sel.State().SelectedTheme)
}

func TestSelection_InvalidIDsLeaveStateUnchanged(t *testing.T) {
	catalog := NewCatalogService(testCatalog())
	sel := NewSelectionService(catalog)

	sel.SelectTheme("missing")
	assert.Equal(t, models.ViewThemes, sel.State().CurrentView)

	sel.SelectTheme("animals")
	sel.SelectDesign("missing")
	assert.Equal(t, models.ViewDesigns, sel.State().CurrentView)
}

func TestResolveVariant(t *testing.T) {
	catalog := NewCatalogService(testCatalog())
	sel := NewSelectionService(catalog)
	sel.SelectTheme("animals")
	sel.SelectDesign("mandala")

	// Default A4/Line has no variant thumbnail, falls back to the design's
	variant, thumbnail, ok := ResolveVariant(sel.State(), catalog)
	require.True(t, ok)
	assert.Equal(t, "/files/mandala-a4-line.pdf", variant.File)
	assert.Equal(t, "/img/mandala.png", thumbnail)

	// A4/Dot carries its own thumbnail
	sel.SelectType("Dot")
	variant, thumbnail, ok = ResolveVariant(sel.State(), catalog)
	require.True(t, ok)
	assert.Equal(t, "/files/mandala-a4-dot.pdf", variant.File)
	assert.Equal(t, "/img/mandala-dot.png", thumbnail)

	// Stale size/type combination resolves to nothing
	sel.SelectSize("A5")
	_, _, ok = ResolveVariant(sel.State(), catalog)
	assert.False(t, ok)
}
