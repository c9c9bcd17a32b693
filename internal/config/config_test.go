package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/labarberie/go-credencial/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"BrandName", config.BrandName},
		{"CardNamePlace", config.CardNamePlace},
		{"CardBreedDefault", config.CardBreedDefault},
		{"CardNoPhoto", config.CardNoPhoto},
		{"WeekdayShorthand", config.WeekdayShorthand},
		{"ExportFilePrefix", config.ExportFilePrefix},
		{"DefaultLanguage", config.DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestCardGeometry_Sanity checks that the card dimensions keep the ID-card
// aspect and the export settings stay print-worthy.
func TestCardGeometry_Sanity(t *testing.T) {
	assert.Greater(t, config.CardWidth, 0)
	assert.Greater(t, config.CardHeight, config.CardWidth, "The credential is portrait-oriented")
	assert.Equal(t, 2, config.ExportScale, "Export renders at 2x for print quality")
	assert.Greater(t, config.CardPhotoSize, 0)
	assert.LessOrEqual(t, config.CardPhotoSize, config.CardWidth)
}

// TestExportNaming ensures the download-name building blocks stay stable:
// exported files must keep sorting together in the user's folder.
func TestExportNaming(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.ExportFilePrefix, "Credencial"), "Export prefix anchors the filename convention")
	assert.Equal(t, ".png", config.ExtPNG)
	assert.Equal(t, '_', config.FilenameSpace)
}

// TestLimits_Sanity ensures operational constraints are reasonable.
func TestLimits_Sanity(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.MaxPhotoDimension, 256, "Photos must keep enough resolution for the 2x export")
	assert.LessOrEqual(t, config.MaxPhotoDimension, 4096, "Oversized photos would bloat the in-memory profile")
	assert.Greater(t, config.NotesDisplayMax, 0)
	assert.Greater(t, config.SavedRevertDelay, 0*time.Second, "Saved confirmation must linger before reverting")
}

// TestLanguages_Defaults ensures the default locale is among the supported set.
func TestLanguages_Defaults(t *testing.T) {
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
	for _, lang := range config.SupportedLanguages {
		assert.Len(t, lang, 2, "Locale codes are bare ISO 639-1 tags")
	}
}
