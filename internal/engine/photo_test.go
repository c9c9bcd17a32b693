package engine

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labarberie/go-credencial/internal/config"
)

// encodeTestImage builds a solid-color image of the given size in the
// requested format.
func encodeTestImage(t *testing.T, width, height int, format string) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 0xC0, G: 0x80, B: 0x40, A: 0xFF})
		}
	}

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	default:
		require.NoError(t, png.Encode(&buf, img))
	}
	return buf.Bytes()
}

// decodeDims reads back the dimensions of an encoded image.
func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

// TestLoadPhoto_SmallImageKeepsSize verifies that images within the size
// cap pass through without resizing and come out as PNG.
func TestLoadPhoto_SmallImageKeepsSize(t *testing.T) {
	src := encodeTestImage(t, 320, 240, "png")

	data, err := LoadPhoto(bytes.NewReader(src))

	require.NoError(t, err)
	w, h := decodeDims(t, data)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4], "Output must always be PNG")
}

// TestLoadPhoto_JPEGNormalizedToPNG verifies format conversion for the
// other accepted picker formats.
func TestLoadPhoto_JPEGNormalizedToPNG(t *testing.T) {
	src := encodeTestImage(t, 100, 100, "jpeg")

	data, err := LoadPhoto(bytes.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

// TestLoadPhoto_DownscalesOversized verifies that the longest side is
// capped while the aspect ratio is preserved.
func TestLoadPhoto_DownscalesOversized(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"WideLandscape", config.MaxPhotoDimension * 2, config.MaxPhotoDimension, config.MaxPhotoDimension, config.MaxPhotoDimension / 2},
		{"TallPortrait", 500, config.MaxPhotoDimension * 2, 250, config.MaxPhotoDimension},
		{"ExactlyAtCap", config.MaxPhotoDimension, 400, config.MaxPhotoDimension, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := encodeTestImage(t, tt.width, tt.height, "png")

			data, err := LoadPhoto(bytes.NewReader(src))

			require.NoError(t, err)
			w, h := decodeDims(t, data)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

// TestLoadPhoto_RejectsNonImage verifies the explicit decode-error path:
// a bad file must surface ErrPhotoDecode, never fail silently.
func TestLoadPhoto_RejectsNonImage(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"PlainText", "este archivo no es una imagen"},
		{"Empty", ""},
		{"TruncatedPNGHeader", "\x89PNG\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := LoadPhoto(strings.NewReader(tt.data))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPhotoDecode)
			assert.Nil(t, data)
		})
	}
}
