package ui

import (
	"context"
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/labarberie/go-credencial/internal/config"
	"github.com/labarberie/go-credencial/internal/engine"
)

// viewState identifies the screen currently shown in the main window.
type viewState int

const (
	viewWelcome viewState = iota
	viewForm
	viewCard
)

// String returns the log-friendly name of the view.
func (v viewState) String() string {
	switch v {
	case viewForm:
		return "form"
	case viewCard:
		return "card"
	default:
		return "welcome"
	}
}

// CredencialApp encapsulates the UI state machine and the current profile.
// The profile is owned exclusively here: screens receive copies or push
// copy-on-write updates back through the methods below, so no two
// collaborators ever share mutable state.
type CredencialApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock    engine.Clock // Injected clock for deterministic card timestamps
	Exporter *engine.Exporter

	SupportedLanguages []string

	view    viewState
	profile engine.Profile

	// card is the description built when the form was submitted. Export
	// consumes this exact value, so repeated exports of an unchanged card
	// stay byte-identical.
	card engine.Card

	// exporting guards against re-entrant export requests. It is only
	// touched on the Fyne event thread.
	exporting bool
}

// NewCredencialApp constructs the application controller.
func NewCredencialApp(a fyne.App, ctx context.Context) *CredencialApp {
	return &CredencialApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
		view:               viewWelcome,
		profile:            engine.InitialProfile(),
	}
}

// Run builds the main window and starts the UI loop. It blocks until the
// window closes or the application quits.
func (app *CredencialApp) Run() {
	app.SetupI18n()

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetMaster()

	if app.Exporter == nil {
		app.Exporter = &engine.Exporter{
			Rasterizer: newCardRasterizer(app.App.Settings().Theme()),
			Saver:      &dialogSaver{window: w},
		}
	}

	app.showView(viewWelcome)
	w.Show()
	app.App.Run()
}

// showView swaps the window content to the requested screen.
// Entering the card screen builds the card description once; everything
// downstream (display and export) consumes that same value.
func (app *CredencialApp) showView(v viewState) {
	slog.Info(config.MsgViewChange,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyView, v.String(),
	)
	app.view = v

	if app.Window == nil {
		return
	}
	switch v {
	case viewForm:
		app.Window.SetContent(app.makeFormScreen())
	case viewCard:
		app.Window.SetContent(app.makeCardScreen())
	default:
		app.Window.SetContent(app.makeWelcomeScreen())
	}
}

// startEntry handles Welcome -> Form.
func (app *CredencialApp) startEntry() {
	app.showView(viewForm)
}

// cancelForm handles Form -> Welcome. The staged profile is kept so a
// re-entry does not lose typed data.
func (app *CredencialApp) cancelForm() {
	app.showView(viewWelcome)
}

// submitForm validates the staged profile and transitions to the card
// screen on success. On failure the form stays up and the user gets the
// matching message; missing availability has its own wording.
func (app *CredencialApp) submitForm() {
	finalized, err := app.profile.Submit()
	if err != nil {
		slog.Info(config.MsgSubmitRejected,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		msgKey := config.TKeyErrRequired
		var verr *engine.ValidationError
		if errors.As(err, &verr) && verr.MissingAvailability() {
			msgKey = config.TKeyErrAvail
		}
		if app.Window != nil {
			dialog.ShowInformation(app.GetMsg(config.TKeyFormTitle), app.GetMsg(msgKey), app.Window)
		}
		return
	}

	app.profile = finalized
	app.card = engine.BuildCard(finalized, app.Clock)
	slog.Info(config.MsgSubmitOK, config.LogKeyComponent, config.CompUI)
	app.showView(viewCard)
}

// backToForm handles Card -> Form for further editing.
func (app *CredencialApp) backToForm() {
	app.showView(viewForm)
}

// startNew handles Card -> Welcome, discarding the finalized profile and
// replacing it with the initial value.
func (app *CredencialApp) startNew() {
	app.profile = engine.InitialProfile()
	app.card = engine.Card{}
	slog.Info(config.MsgProfileReset, config.LogKeyComponent, config.CompUI)
	app.showView(viewWelcome)
}
