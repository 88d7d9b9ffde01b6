package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptr-shop/models"
	"ptr-shop/service"
)

// stubThumbnails records the size it was asked for.
type stubThumbnails struct {
	askedSize string
}

func (s *stubThumbnails) Get(ctx context.Context, ref string, size string) ([]byte, error) {
	s.askedSize = size
	return []byte("jpeg-bytes"), nil
}

func newCatalogController() (*CatalogController, *stubThumbnails) {
	catalog := service.NewCatalogService(models.Catalog{Themes: []models.Theme{
		{ID: "animals", Name: "Animals"},
	}})
	thumbs := &stubThumbnails{}
	return NewCatalogController(catalog, thumbs), thumbs
}

func TestGetThumbnail_RejectsUnknownSize(t *testing.T) {
	c, thumbs := newCatalogController()

	for _, size := range []string{"huge", "/../../../escaped/evil", "thumb/../../x"} {
		req := httptest.NewRequest(http.MethodGet, "/catalog/thumbnail?ref=/img/a.png&size="+size, nil)
		rec := httptest.NewRecorder()
		c.GetThumbnail(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "size=%q must be rejected", size)
	}
	assert.Empty(t, thumbs.askedSize, "rejected sizes must never reach the thumbnail service")
}

func TestGetThumbnail_DefaultsToThumb(t *testing.T) {
	c, thumbs := newCatalogController()

	req := httptest.NewRequest(http.MethodGet, "/catalog/thumbnail?ref=/img/a.png", nil)
	rec := httptest.NewRecorder()
	c.GetThumbnail(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "thumb", thumbs.askedSize)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
}
