package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Credencial Canina"
	BrandName   = "La Barberie de los Perritos"
	BrandMotto  = "Peluquería Canina Profesional • Adiestramiento • Ludoteca"
	AppID       = "com.github.labarberie.go-credencial"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 760
	MainWindowHeight = 720

	// Preference Keys
	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"
)

// SupportedLanguages lists the bundled UI languages (ISO 639-1).
// Spanish comes first: it is the product's native language and the default.
var SupportedLanguages = []string{"es", "en"}

const DefaultLanguage = "es"

// -----------------------------------------------------------------------------
// Card Geometry & Display Literals
// -----------------------------------------------------------------------------

// The credential is a 350pt wide, 3:5.2 aspect portrait layout.
const (
	CardWidth     = 350
	CardHeight    = 607 // 350 * 5.2 / 3, rounded
	CardPhotoSize = 128
	FormPhotoSize = 160
)

// Literals printed on the card itself. These belong to the credential's
// fixed vocabulary (the artifact is Spanish) and are NOT localized.
const (
	CardHeaderTop    = "LA BARBERIE"
	CardHeaderBottom = "DE LOS PERRITOS"
	CardNamePlace    = "NOMBRE"
	CardBreedDefault = "Mestizo"
	CardNoPhoto      = "Sin Foto"
	CardNoValue      = "-"
	CardNoPhone      = "---"
	CardWeightUnit   = " kg"
	CardLblAge       = "EDAD"
	CardLblWeight    = "PESO"
	CardLblOwner     = "DUEÑO"
	CardLblContact   = "CONTACTO"
	CardLblAvail     = "DISPONIBILIDAD"
	CardLblNotes     = "ALERGIAS / PATOLOGÍAS / OBS."
	CardLblCreated   = "ID Creado: "

	// Availability rendering
	WeekdayShorthand = "Lun-Vie"
	AvailSeparator   = " • "
	ListSeparator    = ", "
	DayAbbrevLen     = 3

	// Timestamp stamped at the bottom of the card (es-ES order, day first).
	CardTimeFormat = "02/01/2006 15:04"

	// Notes are clamped for display only; stored notes are never mutated.
	NotesDisplayMax = 120
	Ellipsis        = "…"
)

// -----------------------------------------------------------------------------
// Photo Handling
// -----------------------------------------------------------------------------

const (
	// MaxPhotoDimension caps the longest side of an imported photo.
	// Anything larger is downscaled before being embedded in the profile.
	MaxPhotoDimension = 1024
)

// PhotoExtensions drives the file picker filter.
var PhotoExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// -----------------------------------------------------------------------------
// Export Pipeline
// -----------------------------------------------------------------------------

const (
	// ExportScale rasterizes the card at 2x for print quality.
	ExportScale = 2

	ExportFilePrefix = "Credencial_"
	ExtPNG           = ".png"
	FilenameSpace    = '_'

	// SavedRevertDelay is how long the "saved" confirmation stays on the
	// download button before it reverts to its idle label.
	SavedRevertDelay = 3 * time.Second
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle = "win_title"

	// Welcome screen
	TKeyWelcomeTitle    = "welcome_title"
	TKeyWelcomeSubtitle = "welcome_subtitle"
	TKeyWelcomeGreeting = "welcome_greeting"
	TKeyBtnStart        = "btn_start"
	TKeyLblOffline      = "lbl_offline"

	// Form screen
	TKeyFormTitle      = "form_title"
	TKeyFormSubtitle   = "form_subtitle"
	TKeyLblPetName     = "lbl_pet_name"
	TKeyLblOwnerName   = "lbl_owner_name"
	TKeyLblPhone       = "lbl_phone"
	TKeyLblBreed       = "lbl_breed"
	TKeyLblWeight      = "lbl_weight"
	TKeyLblAge         = "lbl_age"
	TKeyLblService     = "lbl_service"
	TKeyLblAvail       = "lbl_availability"
	TKeyLblTimesHint   = "lbl_times_hint"
	TKeyLblNotes       = "lbl_notes"
	TKeyHelpNotes      = "help_notes"
	TKeyBtnPhoto       = "btn_photo"
	TKeyLblPhotoReq    = "lbl_photo_required"
	TKeyBtnWeekdays    = "btn_weekdays"
	TKeyBtnWeekend     = "btn_weekend"
	TKeyBtnCreate      = "btn_create"
	TKeyBtnCancel      = "btn_cancel"
	TKeyErrAvail       = "err_availability"
	TKeyErrRequired    = "err_required_fields"
	TKeyErrPhotoDecode = "err_photo_decode"

	// Card screen
	TKeyCardTitle    = "card_title"
	TKeyCardSubtitle = "card_subtitle"
	TKeyBtnBack      = "btn_back"
	TKeyBtnDownload  = "btn_download"
	TKeyBtnSaving    = "btn_generating"
	TKeyBtnSaved     = "btn_saved"
	TKeyBtnNew       = "btn_new"
	TKeyErrExport    = "err_export"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrProfileInvalid  = "profile is not submittable"
	ErrUnknownField    = "unknown profile field"
	ErrPhotoDecode     = "failed to decode photo"
	ErrPhotoEncode     = "failed to re-encode photo"
	ErrExportRender    = "failed to rasterize card"
	ErrExportEncode    = "failed to encode PNG"
	ErrExportSave      = "failed to save exported card"
	ErrExportCancelled = "export cancelled by user"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgViewChange     = "View transition"
	MsgProfileReset   = "Profile reset to initial state"
	MsgPhotoLoaded    = "Photo imported"
	MsgPhotoRejected  = "Photo import failed"
	MsgSubmitRejected = "Submission blocked by validation"
	MsgSubmitOK       = "Profile finalized"
	MsgExportStart    = "Card export started"
	MsgExportDone     = "Card export finished"
	MsgExportBusy     = "Export already in flight, request ignored"
	MsgExportFailed   = "Card export failed"
	MsgExportAborted  = "Card export cancelled"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyView      = "view"
	LogKeyField     = "field"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCount     = "count"
	LogKeyWidth     = "width"
	LogKeyHeight    = "height"
	LogKeySizeBytes = "size_bytes"
	LogKeyFilename  = "filename"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompEngine = "engine"
	CompExport = "export"
	CompMain   = "main"
	CompI18n   = "i18n"
)
