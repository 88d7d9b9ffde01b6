package models

// Variant represents a concrete purchasable combination of size and type
// for a design, backed by one PDF source file.
// Within a design, (size, type) pairs are unique and form the lookup key.
type Variant struct {
	Size      string `json:"size"`
	Type      string `json:"type"`
	File      string `json:"file"`
	Thumbnail string `json:"thumbnail,omitempty"` // falls back to the design thumbnail
}

// Design is a specific artwork within a theme, offered in multiple variants.
type Design struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Thumbnail string    `json:"thumbnail"`
	Variants  []Variant `json:"variants"`
}

// Theme is the top-level catalog grouping containing multiple designs.
type Theme struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Thumbnail string   `json:"thumbnail"`
	Designs   []Design `json:"designs"`
}

// Catalog is the full catalog document loaded once at startup.
type Catalog struct {
	Themes []Theme `json:"themes"`
}
