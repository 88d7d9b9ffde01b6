package service

import "ptr-shop/models"

// SelectionService tracks the user's navigational position over the catalog.
// Invalid ids leave the state unchanged so a stale selection (e.g. after a
// catalog reload) can never corrupt it.
type SelectionService struct {
	catalog CatalogServiceInterface
	state   models.SelectionState
}

// NewSelectionService creates a SelectionService at the theme overview.
func NewSelectionService(catalog CatalogServiceInterface) *SelectionService {
	return &SelectionService{
		catalog: catalog,
		state:   models.NewSelectionState(),
	}
}

// State returns the current selection.
func (s *SelectionService) State() models.SelectionState {
	return s.state
}

// GoHome resets to the theme overview.
func (s *SelectionService) GoHome() {
	s.state.CurrentView = models.ViewThemes
	s.state.SelectedTheme = ""
	s.state.SelectedDesign = ""
}

// GoBack steps one level up: options → designs, designs → themes.
func (s *SelectionService) GoBack() {
	switch s.state.CurrentView {
	case models.ViewOptions:
		s.SelectTheme(s.state.SelectedTheme)
	case models.ViewDesigns:
		s.GoHome()
	}
}

// SelectTheme moves to the design view of the given theme.
func (s *SelectionService) SelectTheme(themeID string) {
	if _, ok := s.catalog.FindTheme(themeID); !ok {
		return
	}
	s.state.SelectedTheme = themeID
	s.state.SelectedDesign = ""
	s.state.CurrentView = models.ViewDesigns
}

// SelectDesign moves to the options view of the given design within the
// currently selected theme, defaulting size and type to the design's first
// variant.
func (s *SelectionService) SelectDesign(designID string) {
	design, ok := s.catalog.FindDesign(s.state.SelectedTheme, designID)
	if !ok {
		return
	}
	s.state.SelectedDesign = designID
	s.state.CurrentView = models.ViewOptions
	if len(design.Variants) > 0 {
		s.state.SelectedSize = design.Variants[0].Size
		s.state.SelectedType = design.Variants[0].Type
	}
}

// SelectSize records the chosen size.
func (s *SelectionService) SelectSize(size string) {
	s.state.SelectedSize = size
}

// SelectType records the chosen type.
func (s *SelectionService) SelectType(typ string) {
	s.state.SelectedType = typ
}

// ResolveVariant resolves the current selection to a concrete variant and
// its preview thumbnail (variant thumbnail, falling back to the design's).
// Computed on demand rather than cached, so it can never go stale.
func ResolveVariant(state models.SelectionState, catalog CatalogServiceInterface) (models.Variant, string, bool) {
	design, ok := catalog.FindDesign(state.SelectedTheme, state.SelectedDesign)
	if !ok {
		return models.Variant{}, "", false
	}
	variant, ok := catalog.FindVariant(state.SelectedTheme, state.SelectedDesign, state.SelectedSize, state.SelectedType)
	if !ok {
		return models.Variant{}, "", false
	}
	thumbnail := variant.Thumbnail
	if thumbnail == "" {
		thumbnail = design.Thumbnail
	}
	return variant, thumbnail, true
}
