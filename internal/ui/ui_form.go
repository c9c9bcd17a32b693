package ui

import (
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/labarberie/go-credencial/internal/config"
	"github.com/labarberie/go-credencial/internal/engine"
)

// formWidgets holds references to the form's controls so handlers and the
// photo loader can reach them after construction.
type formWidgets struct {
	photoImage   *canvas.Image
	photoStack   *fyne.Container
	photoHint    *widget.Label
	nameEntry    *widget.Entry
	ownerEntry   *widget.Entry
	phoneEntry   *widget.Entry
	breedEntry   *widget.Entry
	weightEntry  *NumericKeypadEntry
	ageEntry     *NumericKeypadEntry
	serviceGroup *widget.RadioGroup
	dayChecks    map[string]*widget.Check
	timeChecks   map[string]*widget.Check
	notesEntry   *widget.Entry
}

// makeFormScreen builds the data-entry screen. Every control pushes its
// value straight into the staged profile through copy-on-write updates, so
// the screen can be rebuilt at any time from the profile alone.
func (app *CredencialApp) makeFormScreen() fyne.CanvasObject {
	fw := &formWidgets{}

	// --- 1. Photo ---
	photoCard := app.buildPhotoCard(fw)

	// --- 2. Basic Info ---
	fw.nameEntry = app.textField(fw, engine.FieldName, app.profile.Name)
	fw.ownerEntry = app.textField(fw, engine.FieldOwnerName, app.profile.OwnerName)
	fw.phoneEntry = app.textField(fw, engine.FieldPhone, app.profile.Phone)
	fw.breedEntry = app.textField(fw, engine.FieldBreed, app.profile.Breed)

	// Weight and age request a numeric keypad on mobile but accept free
	// text: the values are stored and displayed verbatim, never parsed.
	fw.weightEntry = NewNumericKeypadEntry()
	fw.weightEntry.SetText(app.profile.Weight)
	fw.weightEntry.OnChanged = func(s string) {
		app.profile = app.profile.WithField(engine.FieldWeight, s)
	}
	fw.ageEntry = NewNumericKeypadEntry()
	fw.ageEntry.SetText(app.profile.Age)
	fw.ageEntry.OnChanged = func(s string) {
		app.profile = app.profile.WithField(engine.FieldAge, s)
	}

	basicForm := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblPetName), fw.nameEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblOwnerName), fw.ownerEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblPhone), fw.phoneEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblBreed), fw.breedEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblWeight), fw.weightEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblAge), fw.ageEntry),
	)

	// --- 3. Service Selection ---
	serviceLabels := make([]string, len(engine.Services))
	for i, s := range engine.Services {
		serviceLabels[i] = s.Label
	}
	fw.serviceGroup = widget.NewRadioGroup(serviceLabels, func(selected string) {
		if selected == "" {
			return
		}
		for _, s := range engine.Services {
			if s.Label == selected {
				app.profile = app.profile.WithField(engine.FieldService, s.ID)
				return
			}
		}
	})
	fw.serviceGroup.Required = true
	for _, s := range engine.Services {
		if s.ID == app.profile.Service {
			fw.serviceGroup.SetSelected(s.Label)
		}
	}
	serviceCard := widget.NewCard(app.GetMsg(config.TKeyLblService), "", fw.serviceGroup)

	// --- 4. Availability ---
	availCard := app.buildAvailabilityCard(fw)

	// --- 5. Notes ---
	fw.notesEntry = widget.NewMultiLineEntry()
	fw.notesEntry.SetMinRowsVisible(3)
	fw.notesEntry.PlaceHolder = app.GetMsg(config.TKeyHelpNotes)
	fw.notesEntry.SetText(app.profile.Notes)
	fw.notesEntry.OnChanged = func(s string) {
		app.profile = app.profile.WithField(engine.FieldNotes, s)
	}
	notesCard := widget.NewCard(app.GetMsg(config.TKeyLblNotes), "", fw.notesEntry)

	// --- Actions ---
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), app.cancelForm)
	btnCreate := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCreate), theme.ConfirmIcon(), app.submitForm)
	btnCreate.Importance = widget.HighImportance

	header := widget.NewCard(app.GetMsg(config.TKeyFormTitle), app.GetMsg(config.TKeyFormSubtitle), nil)

	content := container.NewVBox(
		header,
		container.NewBorder(nil, nil, photoCard, nil, basicForm),
		serviceCard,
		availCard,
		notesCard,
		container.NewGridWithColumns(2, btnCancel, btnCreate),
	)

	return container.NewVScroll(container.NewPadded(content))
}

// textField wires a plain entry to a profile text field.
func (app *CredencialApp) textField(_ *formWidgets, f engine.Field, initial string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(initial)
	entry.OnChanged = func(s string) {
		app.profile = app.profile.WithField(f, s)
	}
	return entry
}

// buildPhotoCard constructs the photo preview plus the picker button.
func (app *CredencialApp) buildPhotoCard(fw *formWidgets) fyne.CanvasObject {
	fw.photoImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	fw.photoImage.SetMinSize(fyne.NewSize(config.FormPhotoSize, config.FormPhotoSize))
	if len(app.profile.Photo) > 0 {
		fw.photoImage.Resource = fyne.NewStaticResource("photo.png", app.profile.Photo)
	}

	fw.photoHint = widget.NewLabel(app.GetMsg(config.TKeyLblPhotoReq))
	fw.photoHint.Alignment = fyne.TextAlignCenter
	fw.photoHint.TextStyle = fyne.TextStyle{Italic: true}

	pickBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnPhoto), theme.UploadIcon(), func() {
		app.pickPhoto(fw)
	})

	fw.photoStack = container.NewVBox(fw.photoImage, pickBtn, fw.photoHint)
	return fw.photoStack
}

// pickPhoto opens the file dialog and imports the chosen image off the UI
// thread. Decode failures surface as a dialog instead of silently dropping
// the selection.
func (app *CredencialApp) pickPhoto(fw *formWidgets) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		go func() {
			defer func() { _ = r.Close() }()

			data, loadErr := engine.LoadPhoto(r)
			fyne.Do(func() {
				if loadErr != nil {
					slog.Warn(config.MsgPhotoRejected,
						config.LogKeyComponent, config.CompUI,
						config.LogKeyError, loadErr,
					)
					dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrPhotoDecode)), app.Window)
					return
				}
				app.profile = app.profile.WithPhoto(data)
				fw.photoImage.Resource = fyne.NewStaticResource("photo.png", data)
				fw.photoImage.Refresh()
			})
		}()
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter(config.PhotoExtensions))
	d.Show()
}

// buildAvailabilityCard constructs the day and time-slot selectors with the
// two bulk presets.
func (app *CredencialApp) buildAvailabilityCard(fw *formWidgets) fyne.CanvasObject {
	fw.dayChecks = make(map[string]*widget.Check, len(engine.DayNames))
	fw.timeChecks = make(map[string]*widget.Check, len(engine.TimeSlots))

	dayRow := container.NewGridWithColumns(4)
	for _, day := range engine.DayNames {
		day := day
		check := widget.NewCheck(day, func(bool) {
			app.profile = app.profile.ToggleSetMember(engine.FieldDays, day)
		})
		check.Checked = containsString(app.profile.Days, day)
		fw.dayChecks[day] = check
		dayRow.Add(check)
	}

	presetWeekdays := widget.NewButton(app.GetMsg(config.TKeyBtnWeekdays), func() {
		app.profile = app.profile.WithDays(engine.WeekdayNames)
		syncChecks(fw.dayChecks, app.profile.Days)
	})
	presetWeekend := widget.NewButton(app.GetMsg(config.TKeyBtnWeekend), func() {
		app.profile = app.profile.WithDays(engine.WeekendNames)
		syncChecks(fw.dayChecks, app.profile.Days)
	})
	presets := container.NewHBox(presetWeekdays, presetWeekend)

	timesHint := widget.NewLabel(app.GetMsg(config.TKeyLblTimesHint))
	timeRow := container.NewGridWithColumns(len(engine.TimeSlots))
	for _, slot := range engine.TimeSlots {
		slot := slot
		check := widget.NewCheck(slot, func(bool) {
			app.profile = app.profile.ToggleSetMember(engine.FieldTimes, slot)
		})
		check.Checked = containsString(app.profile.Times, slot)
		fw.timeChecks[slot] = check
		timeRow.Add(check)
	}

	body := container.NewVBox(presets, dayRow, timesHint, timeRow)
	return widget.NewCard(app.GetMsg(config.TKeyLblAvail), "", body)
}

// syncChecks aligns checkbox state with the selection without firing the
// toggle handlers, which would double-apply the preset.
func syncChecks(checks map[string]*widget.Check, selected []string) {
	for label, check := range checks {
		want := containsString(selected, label)
		if check.Checked == want {
			continue
		}
		handler := check.OnChanged
		check.OnChanged = nil
		check.SetChecked(want)
		check.OnChanged = handler
	}
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
