package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ptr-shop/models"
)

func TestEntryName(t *testing.T) {
	item := models.CartItem{
		ThemeName:  "ThemeX",
		DesignName: "Mandala",
		Size:       "A4",
		Type:       "Line",
	}
	assert.Equal(t, "ThemeX_Mandala_A4_Line.pdf", EntryName(item))
}

func TestEntryName_StripsPathSeparators(t *testing.T) {
	item := models.CartItem{
		ThemeName:  "A/B",
		DesignName: `C\D`,
		Size:       "A4",
		Type:       "Line",
	}
	assert.Equal(t, "A-B_C-D_A4_Line.pdf", EntryName(item))
}

func TestArchiveName(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "PTRShop_2026-03-14.zip", ArchiveName(now))
}

func TestClampQty(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-10, 1},
		{0, 1},
		{1, 1},
		{50, 50},
		{99, 99},
		{100, 99},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClampQty(tc.in), "ClampQty(%d)", tc.in)
	}
}
