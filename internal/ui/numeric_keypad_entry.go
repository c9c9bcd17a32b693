package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericKeypadEntry is a standard Entry that requests a numeric keypad on
// mobile devices. Input is deliberately NOT filtered: weight and age are
// free-text fields stored and displayed verbatim, so "12,5" or "3 meses"
// are acceptable values. Only the suggested keyboard changes.
type NumericKeypadEntry struct {
	widget.Entry
}

// NewNumericKeypadEntry creates a new instance of NumericKeypadEntry.
func NewNumericKeypadEntry() *NumericKeypadEntry {
	entry := &NumericKeypadEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// Keyboard overrides the default keyboard type so mobile devices show the
// numeric keypad for these fields.
func (e *NumericKeypadEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
