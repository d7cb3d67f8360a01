// Package snapshot saves rendered frames as WebP images.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// FromRGBA wraps raw RGBA pixels as an image without copying.
func FromRGBA(pix []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pix) != 4*width*height {
		return nil, fmt.Errorf("snapshot: %d bytes do not match %dx%d", len(pix), width, height)
	}
	return &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// Save encodes img into dir as frame-<timestamp>.webp and returns the path.
func Save(dir string, img image.Image, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%s.webp", at.Format("20060102-150405.000")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return "", fmt.Errorf("WebP encode: %w", err)
	}
	return path, nil
}
