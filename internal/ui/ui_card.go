package ui

import (
	"errors"
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/labarberie/go-credencial/internal/config"
	"github.com/labarberie/go-credencial/internal/engine"
)

// Fixed card palette. These are artwork colors, not theme colors: the
// exported credential must look the same on every system.
var (
	colCardBg      = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colHeaderFrom  = color.NRGBA{R: 0x37, G: 0x30, B: 0xA3, A: 0xFF} // indigo
	colHeaderTo    = color.NRGBA{R: 0x7E, G: 0x22, B: 0xCE, A: 0xFF} // purple
	colTextDark    = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}
	colTextMuted   = color.NRGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}
	colTextWhite   = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colBoxBg       = color.NRGBA{R: 0xF8, G: 0xFA, B: 0xFC, A: 0xFF} // slate
	colPillBg      = color.NRGBA{R: 0xF3, G: 0xF4, B: 0xF6, A: 0xFF} // gray
	colServiceBg   = color.NRGBA{R: 0xE0, G: 0xE7, B: 0xFF, A: 0xFF} // indigo tint
	colServiceText = color.NRGBA{R: 0x43, G: 0x38, B: 0xCA, A: 0xFF}
	colTagBg       = color.NRGBA{R: 0xFF, G: 0xF7, B: 0xED, A: 0xFF} // orange tint
	colTagText     = color.NRGBA{R: 0xEA, G: 0x58, B: 0x0C, A: 0xFF}
	colNotesBg     = color.NRGBA{R: 0xFE, G: 0xF2, B: 0xF2, A: 0xFF} // red tint
	colNotesText   = color.NRGBA{R: 0xF8, G: 0x71, B: 0x71, A: 0xFF}
)

// makeCardScreen builds the result screen: the rendered credential plus the
// back / download / new actions.
func (app *CredencialApp) makeCardScreen() fyne.CanvasObject {
	title := widget.NewLabel(app.GetMsg(config.TKeyCardTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	subtitle := widget.NewLabel(app.GetMsg(config.TKeyCardSubtitle))
	subtitle.Alignment = fyne.TextAlignCenter
	subtitle.Wrapping = fyne.TextWrapWord

	newBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnNew), theme.ContentAddIcon(), app.startNew)
	header := container.NewBorder(nil, nil, nil, newBtn, container.NewVBox(title, subtitle))

	cardObj := buildCardObject(app.card)

	backBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnBack), theme.NavigateBackIcon(), app.backToForm)

	var downloadBtn *widget.Button
	downloadBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnDownload), theme.DownloadIcon(), func() {
		app.requestExport(downloadBtn)
	})
	downloadBtn.Importance = widget.HighImportance

	actions := container.NewGridWithColumns(2, backBtn, downloadBtn)

	content := container.NewVBox(
		header,
		container.NewCenter(cardObj),
		actions,
	)
	return container.NewVScroll(container.NewPadded(content))
}

// requestExport runs the export pipeline off the UI thread while the button
// shows progress. At most one export is in flight: requests arriving while
// one is pending are ignored.
func (app *CredencialApp) requestExport(btn *widget.Button) {
	if app.exporting {
		slog.Debug(config.MsgExportBusy, config.LogKeyComponent, config.CompUI)
		return
	}
	app.exporting = true
	btn.Disable()
	btn.SetText(app.GetMsg(config.TKeyBtnSaving))

	card := app.card
	go func() {
		err := app.Exporter.Export(card)

		fyne.Do(func() {
			app.exporting = false
			btn.Enable()

			switch {
			case err == nil:
				btn.SetText(app.GetMsg(config.TKeyBtnSaved))
				time.AfterFunc(config.SavedRevertDelay, func() {
					fyne.Do(func() {
						btn.SetText(app.GetMsg(config.TKeyBtnDownload))
					})
				})
			case errors.Is(err, engine.ErrExportCancelled):
				btn.SetText(app.GetMsg(config.TKeyBtnDownload))
			default:
				slog.Error(config.MsgExportFailed,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, err,
				)
				btn.SetText(app.GetMsg(config.TKeyBtnDownload))
				dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrExport)), app.Window)
			}
		})
	}()
}

// buildCardObject renders a card description as a fixed-size visual tree.
// The same tree feeds both on-screen display and the export rasterizer.
func buildCardObject(card engine.Card) fyne.CanvasObject {
	bg := canvas.NewRectangle(colCardBg)
	bg.CornerRadius = 24

	// Header band with the brand
	gradient := canvas.NewVerticalGradient(colHeaderFrom, colHeaderTo)
	brandTop := cardText(config.CardHeaderTop, colTextWhite, 16, fyne.TextStyle{Bold: true})
	brandBottom := cardText(config.CardHeaderBottom, colTextWhite, 12, fyne.TextStyle{})
	motto := cardText(config.BrandMotto, colTextWhite, 6, fyne.TextStyle{})
	headerBand := container.NewStack(
		gradient,
		container.NewCenter(container.NewVBox(
			container.NewCenter(brandTop),
			container.NewCenter(brandBottom),
			container.NewCenter(motto),
		)),
	)

	// Photo or placeholder
	var photo fyne.CanvasObject
	if len(card.Photo) > 0 {
		img := &canvas.Image{
			Resource: fyne.NewStaticResource("card-photo.png", card.Photo),
			FillMode: canvas.ImageFillContain,
		}
		photo = img
	} else {
		placeholder := canvas.NewRectangle(colPillBg)
		placeholder.CornerRadius = config.CardPhotoSize / 2
		photo = container.NewStack(
			placeholder,
			container.NewCenter(cardText(config.CardNoPhoto, colTextMuted, 10, fyne.TextStyle{})),
		)
	}
	photoBox := container.NewGridWrap(fyne.NewSize(config.CardPhotoSize, config.CardPhotoSize), photo)

	name := cardText(card.Name, colTextDark, 24, fyne.TextStyle{Bold: true})
	breed := pill(card.Breed, colPillBg, colTextMuted, 10, fyne.TextStyle{})
	service := pill(card.Service, colServiceBg, colServiceText, 12, fyne.TextStyle{Bold: true})

	stats := container.NewGridWithColumns(3,
		statBox(config.CardLblAge, card.Age),
		statBox(config.CardLblWeight, card.Weight),
		statBox(config.CardLblOwner, card.Owner),
	)

	tagRow := container.NewHBox()
	for _, tag := range card.Tags {
		tagRow.Add(pill(tag, colTagBg, colTagText, 8, fyne.TextStyle{Bold: true}))
	}

	info := container.NewVBox(
		infoRow(config.CardLblContact, card.Phone),
		infoRow(config.CardLblAvail, card.Availability),
	)
	if card.Notes != "" {
		notesBg := canvas.NewRectangle(colNotesBg)
		notesBg.CornerRadius = 8
		notesText := cardText(card.Notes, colTextDark, 9, fyne.TextStyle{})
		info.Add(container.NewStack(notesBg, container.NewPadded(container.NewVBox(
			cardText(config.CardLblNotes, colNotesText, 7, fyne.TextStyle{Bold: true}),
			notesText,
		))))
	}

	created := cardText(card.CreatedAt, colTextMuted, 7, fyne.TextStyle{})

	body := container.NewVBox(
		headerBand,
		container.NewCenter(photoBox),
		container.NewCenter(name),
		container.NewCenter(breed),
		container.NewCenter(service),
		stats,
		container.NewCenter(tagRow),
		info,
		widget.NewSeparator(),
		container.NewCenter(created),
	)

	return container.NewGridWrap(
		fyne.NewSize(config.CardWidth, config.CardHeight),
		container.NewStack(bg, body),
	)
}

// cardText builds a canvas text with explicit styling.
func cardText(text string, col color.Color, size float32, style fyne.TextStyle) *canvas.Text {
	t := canvas.NewText(text, col)
	t.TextSize = size
	t.TextStyle = style
	t.Alignment = fyne.TextAlignCenter
	return t
}

// pill renders text on a small rounded background.
func pill(text string, bg color.Color, fg color.Color, size float32, style fyne.TextStyle) fyne.CanvasObject {
	rect := canvas.NewRectangle(bg)
	rect.CornerRadius = 10
	return container.NewStack(rect, container.NewPadded(cardText(text, fg, size, style)))
}

// statBox renders one label/value cell of the stats grid.
func statBox(label, value string) fyne.CanvasObject {
	rect := canvas.NewRectangle(colBoxBg)
	rect.CornerRadius = 8
	return container.NewStack(rect, container.NewVBox(
		container.NewCenter(cardText(label, colTextMuted, 8, fyne.TextStyle{Bold: true})),
		container.NewCenter(cardText(value, colTextDark, 11, fyne.TextStyle{Bold: true})),
	))
}

// infoRow renders a labelled info line (contact, availability).
func infoRow(label, value string) fyne.CanvasObject {
	rect := canvas.NewRectangle(colBoxBg)
	rect.CornerRadius = 8
	return container.NewStack(rect, container.NewPadded(container.NewVBox(
		cardText(label, colTextMuted, 8, fyne.TextStyle{Bold: true}),
		cardText(value, colTextDark, 10, fyne.TextStyle{}),
	)))
}
