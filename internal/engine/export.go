package engine

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/labarberie/go-credencial/internal/config"
)

// Sentinel errors of the export pipeline. Wrapped errors carry the cause.
var (
	ErrExportRender    = errors.New(config.ErrExportRender)
	ErrExportEncode    = errors.New(config.ErrExportEncode)
	ErrExportSave      = errors.New(config.ErrExportSave)
	ErrExportCancelled = errors.New(config.ErrExportCancelled)
)

// Rasterizer turns a card description into pixels. The production
// implementation renders the Fyne card layout on a transparent software
// canvas at export scale; tests substitute a deterministic stub.
type Rasterizer interface {
	Rasterize(card Card) (image.Image, error)
}

// FileSaver delivers the finished PNG to the user under a suggested
// filename. The production implementation shows a save dialog; a saver may
// return ErrExportCancelled when the user backs out.
type FileSaver interface {
	Save(filename string, data []byte) error
}

// Exporter runs the rasterize-encode-save pipeline for a card.
// Given the same card (same injected timestamp) and the same rasterizer,
// repeated exports produce byte-identical PNG output.
type Exporter struct {
	Rasterizer Rasterizer
	Saver      FileSaver
}

// Export rasterizes the card, encodes it as PNG and hands it to the saver
// under a filename derived from the pet's display name.
func (e *Exporter) Export(card Card) error {
	start := time.Now()
	filename := Filename(card.Name)
	log := slog.With(
		config.LogKeyComponent, config.CompExport,
		config.LogKeyFilename, filename,
	)
	log.Info(config.MsgExportStart)

	img, err := e.Rasterizer.Rasterize(card)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExportRender, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("%w: %v", ErrExportEncode, err)
	}

	if err := e.Saver.Save(filename, buf.Bytes()); err != nil {
		if errors.Is(err, ErrExportCancelled) {
			log.Info(config.MsgExportAborted)
			return err
		}
		return fmt.Errorf("%w: %v", ErrExportSave, err)
	}

	log.Info(config.MsgExportDone,
		config.LogKeySizeBytes, buf.Len(),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return nil
}

// Filename derives the download name from the pet's name.
// Every whitespace rune is replaced 1:1 by an underscore; runs are not
// collapsed, so "Rex  Pequeño" becomes "Credencial_Rex__Pequeño.png".
func Filename(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return config.FilenameSpace
		}
		return r
	}, name)
	return config.ExportFilePrefix + sanitized + config.ExtPNG
}
