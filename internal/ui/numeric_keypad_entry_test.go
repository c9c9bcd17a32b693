package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/labarberie/go-credencial/internal/ui"
)

// TestNumericKeypadEntry_AcceptsFreeText verifies that the widget is a hint,
// not a filter: weight and age are stored verbatim, so letters and symbols
// must pass through untouched.
func TestNumericKeypadEntry_AcceptsFreeText(t *testing.T) {
	entry := ui.NewNumericKeypadEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name  string
		input string
	}{
		{"Digits", "12"},
		{"Decimal", "12.5"},
		{"CommaDecimal", "12,5"},
		{"FreeText", "dos años"},
		{"Mixed", "3 aprox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry.SetText("")
			test.Type(entry, tt.input)

			if entry.Text != tt.input {
				t.Errorf("expected input %q to be kept verbatim, got %q", tt.input, entry.Text)
			}
		})
	}
}

func TestNumericKeypadEntry_Keyboard(t *testing.T) {
	entry := ui.NewNumericKeypadEntry()

	// Verify it requests the Number keyboard on mobile devices.
	if got := entry.Keyboard(); got != mobile.NumberKeyboard {
		t.Errorf("expected keyboard type %v, got %v", mobile.NumberKeyboard, got)
	}
}
