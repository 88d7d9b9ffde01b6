package utils

import (
	"fmt"
	"strings"
	"time"

	"ptr-shop/models"
)

// AppPrefix is the prefix used for produced archive filenames.
const AppPrefix = "PTRShop"

// EntryName builds the deterministic archive entry name for a cart item:
// {themeName}_{designName}_{size}_{type}.pdf
// Path separators are stripped so an entry can never escape the archive root.
// Distinct cart items can still collide on the full name; the archive keeps
// the last one written.
func EntryName(item models.CartItem) string {
	name := fmt.Sprintf("%s_%s_%s_%s.pdf", item.ThemeName, item.DesignName, item.Size, item.Type)
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return name
}

// ArchiveName builds the archive filename for the given date:
// PTRShop_YYYY-MM-DD.zip
func ArchiveName(now time.Time) string {
	return fmt.Sprintf("%s_%s.zip", AppPrefix, now.Format("2006-01-02"))
}

// ClampQty clamps a requested quantity to the allowed range [1, 99].
func ClampQty(qty int) int {
	if qty < 1 {
		return 1
	}
	if qty > 99 {
		return 99
	}
	return qty
}
