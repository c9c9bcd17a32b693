package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/software"
	"fyne.io/fyne/v2/storage"

	"github.com/labarberie/go-credencial/internal/config"
	"github.com/labarberie/go-credencial/internal/engine"
)

// cardRasterizer renders a card description on a windowless transparent
// canvas at export scale. It is the production engine.Rasterizer.
type cardRasterizer struct {
	theme fyne.Theme
}

func newCardRasterizer(th fyne.Theme) *cardRasterizer {
	return &cardRasterizer{theme: th}
}

// Rasterize renders the card at 2x on a transparent background so the
// rounded corners stay clean when the PNG is placed on any surface.
func (r *cardRasterizer) Rasterize(card engine.Card) (image.Image, error) {
	obj := buildCardObject(card)

	c := software.NewTransparentCanvas()
	c.SetPadded(false)
	c.SetScale(config.ExportScale)
	c.SetContent(obj)
	c.Resize(fyne.NewSize(config.CardWidth, config.CardHeight))

	return software.RenderCanvas(c, r.theme), nil
}

// dialogSaver offers the exported PNG through a save dialog, pre-filled
// with the derived filename. It is the production engine.FileSaver.
type dialogSaver struct {
	window fyne.Window
}

// Save blocks the calling goroutine until the user picks a destination or
// dismisses the dialog. Dismissal maps to engine.ErrExportCancelled so the
// caller can distinguish it from a real failure.
func (s *dialogSaver) Save(filename string, data []byte) error {
	result := make(chan error, 1)

	fyne.Do(func() {
		d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil {
				result <- err
				return
			}
			if wc == nil {
				result <- engine.ErrExportCancelled
				return
			}
			defer func() { _ = wc.Close() }()
			_, werr := wc.Write(data)
			result <- werr
		}, s.window)
		d.SetFileName(filename)
		d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtPNG}))
		d.Show()
	})

	return <-result
}
