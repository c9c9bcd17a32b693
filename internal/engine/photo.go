package engine

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"

	// Register the raster formats the picker accepts.
	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"

	"github.com/labarberie/go-credencial/internal/config"
)

// ErrPhotoDecode marks a photo that could not be read as an image.
// Callers surface it to the user; a bad file must never fail silently.
var ErrPhotoDecode = errors.New(config.ErrPhotoDecode)

// LoadPhoto reads a user-selected image file, normalizes it and returns the
// bytes to embed in the profile. Any registered raster format is accepted;
// the result is always PNG. Photos larger than MaxPhotoDimension on their
// longest side are downscaled first so oversized camera shots do not bloat
// the in-memory profile or the exported card.
func LoadPhoto(r io.Reader) ([]byte, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w (format %q): %v", ErrPhotoDecode, format, err)
	}

	img = downscale(img, config.MaxPhotoDimension)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPhotoEncode, err)
	}

	bounds := img.Bounds()
	slog.Debug(config.MsgPhotoLoaded,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyWidth, bounds.Dx(),
		config.LogKeyHeight, bounds.Dy(),
		config.LogKeySizeBytes, buf.Len(),
	)

	return buf.Bytes(), nil
}

// downscale resizes img so its longest side is at most maxDim, preserving
// aspect ratio. Images already within bounds are returned unchanged.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxDim && height <= maxDim {
		return img
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxDim
		newHeight = int(float64(height) * float64(maxDim) / float64(width))
	} else {
		newHeight = maxDim
		newWidth = int(float64(width) * float64(maxDim) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
	return resized
}
