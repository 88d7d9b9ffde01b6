package models

// CartItem is a quantity-bearing selection of one variant.
// Items merge by (DesignID, Size, Type); ID is the removal key.
type CartItem struct {
	ID         int64  `json:"id"`
	ThemeID    string `json:"themeId"`
	ThemeName  string `json:"themeName"`
	DesignID   string `json:"designId"`
	DesignName string `json:"designName"`
	Size       string `json:"size"`
	Type       string `json:"type"`
	Qty        int    `json:"qty"`
	File       string `json:"file"`
	Thumbnail  string `json:"thumbnail"`
}

// SameVariant reports whether two items reference the same purchasable
// variant and therefore merge into a single cart entry.
func (i CartItem) SameVariant(other CartItem) bool {
	return i.DesignID == other.DesignID && i.Size == other.Size && i.Type == other.Type
}
