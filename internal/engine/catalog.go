package engine

// Icon categories for service options. The view layer maps these to actual
// glyphs; the engine only carries the category name.
const (
	IconDroplets = "droplets"
	IconScissors = "scissors"
	IconAward    = "award"
	IconHeart    = "heart"
)

// ServiceOption is a static catalog entry. Read-only, defined once.
type ServiceOption struct {
	ID    string
	Icon  string
	Label string
}

// Services is the fixed catalog of offerings. The first entry is the
// default selection for a new profile.
var Services = []ServiceOption{
	{ID: "Baño", Icon: IconDroplets, Label: "Baño"},
	{ID: "Baño y Corte", Icon: IconScissors, Label: "Baño y Corte"},
	{ID: "Adiestramiento", Icon: IconAward, Label: "Adiestramiento"},
	{ID: "Terapias Holísticas", Icon: IconHeart, Label: "Terapias Holísticas"},
}

// DayNames is the 7-day reference vocabulary. Rendering order for any
// selection of days always follows this slice, never insertion order.
var DayNames = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// WeekdayNames and WeekendNames back the bulk-select presets on the form.
var (
	WeekdayNames = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}
	WeekendNames = []string{"Sábado", "Domingo"}
)

// TimeSlots is the 3-slot reference vocabulary for time preferences.
var TimeSlots = []string{"Por la mañana", "Mediodía", "Por la tarde"}

// HairTypes is the coat vocabulary. It is part of the profile shape but not
// currently surfaced on the form; the default is the first entry.
var HairTypes = []string{"Corto", "Largo", "Rizado", "Duro", "Doble Capa"}

// DefaultService returns the id of the first catalog offering.
func DefaultService() string {
	return Services[0].ID
}

// DefaultHairType returns the default coat type for a new profile.
func DefaultHairType() string {
	return HairTypes[0]
}
