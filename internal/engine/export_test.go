package engine

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRasterizer returns a deterministic image for any card, or a fixed
// error when set.
type stubRasterizer struct {
	err   error
	calls int
}

func (r *stubRasterizer) Rasterize(Card) (image.Image, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 0x37, G: 0x30, B: 0xA3, A: 0xFF})
	return img, nil
}

// memorySaver captures the saved payload instead of touching the filesystem.
type memorySaver struct {
	err      error
	filename string
	data     []byte
	calls    int
}

func (s *memorySaver) Save(filename string, data []byte) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.filename = filename
	s.data = append([]byte(nil), data...)
	return nil
}

// TestFilename locks down the download-name derivation: every whitespace
// rune becomes one underscore, runs included.
func TestFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Simple", "Rex", "Credencial_Rex.png"},
		{"SingleSpace", "Rex Pequeño", "Credencial_Rex_Pequeño.png"},
		{"DoubleSpace", "Rex  Pequeño", "Credencial_Rex__Pequeño.png"},
		{"Tab", "Rex\tPequeño", "Credencial_Rex_Pequeño.png"},
		{"LeadingTrailing", " Rex ", "Credencial__Rex_.png"},
		{"Empty", "", "Credencial_.png"},
		{"PlaceholderName", "NOMBRE", "Credencial_NOMBRE.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.input))
		})
	}
}

// TestExport_Success verifies the pipeline end to end with a stub canvas:
// the saver receives a PNG payload under the derived filename.
func TestExport_Success(t *testing.T) {
	saver := &memorySaver{}
	exp := &Exporter{Rasterizer: &stubRasterizer{}, Saver: saver}

	err := exp.Export(Card{Name: "Rex Pequeño"})

	require.NoError(t, err)
	assert.Equal(t, "Credencial_Rex_Pequeño.png", saver.filename)
	require.NotEmpty(t, saver.data)
	// PNG magic number.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, saver.data[:4])
}

// TestExport_Idempotent verifies that exporting the same card twice yields
// byte-identical output. The card carries its own timestamp, so nothing in
// the pipeline may read the wall clock.
func TestExport_Idempotent(t *testing.T) {
	card := Card{Name: "Luna", CreatedAt: "ID Creado: 14/03/2026 15:09"}

	first := &memorySaver{}
	exp := &Exporter{Rasterizer: &stubRasterizer{}, Saver: first}
	require.NoError(t, exp.Export(card))

	second := &memorySaver{}
	exp.Saver = second
	require.NoError(t, exp.Export(card))

	assert.Equal(t, first.data, second.data, "Repeated exports of an unchanged card must be byte-identical")
	assert.Equal(t, first.filename, second.filename)
}

// TestExport_RenderFailure verifies error classification when the canvas
// cannot be rasterized.
func TestExport_RenderFailure(t *testing.T) {
	saver := &memorySaver{}
	exp := &Exporter{
		Rasterizer: &stubRasterizer{err: errors.New("canvas unavailable")},
		Saver:      saver,
	}

	err := exp.Export(Card{Name: "Rex"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExportRender)
	assert.Contains(t, err.Error(), "canvas unavailable")
	assert.Zero(t, saver.calls, "Saver must not run after a render failure")
}

// TestExport_SaveFailure verifies error classification when persisting
// fails for a reason other than user cancellation.
func TestExport_SaveFailure(t *testing.T) {
	exp := &Exporter{
		Rasterizer: &stubRasterizer{},
		Saver:      &memorySaver{err: errors.New("disk full")},
	}

	err := exp.Export(Card{Name: "Rex"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExportSave)
	assert.NotErrorIs(t, err, ErrExportCancelled)
}

// TestExport_Cancelled verifies that backing out of the save dialog is not
// reported as a failure class of its own: the sentinel passes through
// unwrapped so callers can stay silent.
func TestExport_Cancelled(t *testing.T) {
	exp := &Exporter{
		Rasterizer: &stubRasterizer{},
		Saver:      &memorySaver{err: ErrExportCancelled},
	}

	err := exp.Export(Card{Name: "Rex"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExportCancelled)
	assert.NotErrorIs(t, err, ErrExportSave)
}
