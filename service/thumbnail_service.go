package service

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ThumbnailServiceInterface defines the contract for serving optimized
// preview images.
type ThumbnailServiceInterface interface {
	Get(ctx context.Context, ref string, size string) ([]byte, error)
}

// ThumbnailService fetches catalog preview images, recompresses them as
// JPEG at a bounded size, and caches the result on disk.
type ThumbnailService struct {
	fetcher  FileFetcherInterface
	cacheDir string
}

// NewThumbnailService creates a new ThumbnailService caching under
// dataDir/thumbnails.
func NewThumbnailService(fetcher FileFetcherInterface, dataDir string) *ThumbnailService {
	return &ThumbnailService{
		fetcher:  fetcher,
		cacheDir: filepath.Join(dataDir, "thumbnails"),
	}
}

// Ensure ThumbnailService implements ThumbnailServiceInterface
var _ ThumbnailServiceInterface = (*ThumbnailService)(nil)

// cachePath returns the cache file path for a given image ref and size.
func (s *ThumbnailService) cachePath(ref string, size string) string {
	sum := sha1.Sum([]byte(ref))
	return filepath.Join(s.cacheDir, fmt.Sprintf("%x_%s.jpg", sum[:8], size))
}

// Get returns the optimized JPEG for the given image reference, fetching
// and converting it on a cache miss. Only the known size names are
// accepted; size is part of the cache file name and must never carry
// path fragments.
func (s *ThumbnailService) Get(ctx context.Context, ref string, size string) ([]byte, error) {
	if size != "thumb" && size != "medium" {
		return nil, fmt.Errorf("unknown thumbnail size: %q", size)
	}

	path := s.cachePath(ref, size)
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	raw, err := s.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image %s: %w", ref, err)
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize image %s: %w", ref, err)
	}

	if err := os.MkdirAll(s.cacheDir, 0755); err == nil {
		if err := os.WriteFile(path, optimized, 0644); err != nil {
			log.Printf("⚠️  Failed to cache thumbnail %s: %v", path, err)
		} else {
			log.Printf("✓ Image cached: %s", path)
		}
	}

	return optimized, nil
}

// OptimizeImage optimizes an image by converting to JPEG and resizing.
// imageData: raw image bytes (PNG, JPEG, etc.)
// size: "thumb" or "medium"
// Returns optimized JPEG image bytes
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	// Decode the image
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim int
	var quality int

	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "medium":
		maxDim = maxSizeMedium
		quality = qualityMedium
	default:
		maxDim = maxSizeMedium
		quality = qualityMedium
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	// Resize image if needed
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > maxDim || height > maxDim {
		// Calculate new dimensions maintaining aspect ratio
		var newWidth, newHeight int
		if width > height {
			newWidth = maxDim
			newHeight = int(float64(height) * float64(maxDim) / float64(width))
		} else {
			newHeight = maxDim
			newWidth = int(float64(width) * float64(maxDim) / float64(height))
		}

		log.Printf("🔄 Resizing image: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resizedImg = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	// Encode to JPEG
	var buf bytes.Buffer
	opts := &jpeg.Options{
		Quality: quality,
	}
	if err := jpeg.Encode(&buf, resizedImg, opts); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	optimizedData := buf.Bytes()

	log.Printf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, len(optimizedData))
	return optimizedData, nil
}
