package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/labarberie/go-credencial/internal/config"
)

// makeWelcomeScreen builds the landing screen with the brand header and the
// single entry point into the form.
func (app *CredencialApp) makeWelcomeScreen() fyne.CanvasObject {
	title := widget.NewLabel(app.GetMsg(config.TKeyWelcomeTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	subtitle := widget.NewLabel(app.GetMsg(config.TKeyWelcomeSubtitle))
	subtitle.Alignment = fyne.TextAlignCenter

	greeting := widget.NewCard("", "", widget.NewLabel(app.GetMsg(config.TKeyWelcomeGreeting)))

	startBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnStart), theme.ContentAddIcon(), app.startEntry)
	startBtn.Importance = widget.HighImportance

	offline := widget.NewLabel(app.GetMsg(config.TKeyLblOffline))
	offline.Alignment = fyne.TextAlignCenter
	offline.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewVBox(
		title,
		subtitle,
		greeting,
		startBtn,
		widget.NewSeparator(),
		offline,
	)

	return container.NewCenter(container.NewPadded(content))
}
