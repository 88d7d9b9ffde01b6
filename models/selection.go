package models

// View identifies which catalog level the user is browsing.
type View string

const (
	ViewThemes  View = "themes"
	ViewDesigns View = "designs"
	ViewOptions View = "options"
)

// SelectionState tracks the user's current navigational position.
// Transient; rebuilt from catalog lookups and never persisted.
type SelectionState struct {
	CurrentView    View   `json:"currentView"`
	SelectedTheme  string `json:"selectedTheme"`
	SelectedDesign string `json:"selectedDesign"`
	SelectedSize   string `json:"selectedSize"`
	SelectedType   string `json:"selectedType"`
}

// NewSelectionState returns the initial state: theme overview, nothing selected.
func NewSelectionState() SelectionState {
	return SelectionState{CurrentView: ViewThemes}
}
