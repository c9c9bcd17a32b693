package engine

import (
	"slices"
	"strings"

	"github.com/labarberie/go-credencial/internal/config"
)

// Card is the pure visual description of a finalized profile.
// It carries display-ready strings only: every placeholder, abbreviation and
// unit has already been applied, so the view layer and the export pipeline
// consume it without touching the profile again.
type Card struct {
	// Photo holds the PNG bytes to display. Nil means the placeholder
	// ("Sin Foto") takes its place.
	Photo []byte

	Name    string
	Breed   string
	Service string

	Age    string
	Weight string
	Owner  string

	Tags []string

	Phone        string
	Availability string

	// Notes is the display-clamped text; empty means the notes block is
	// suppressed entirely.
	Notes string

	CreatedAt string
}

// BuildCard maps a finalized profile to its card description.
// Deterministic given the profile and the injected clock.
func BuildCard(p Profile, clock Clock) Card {
	return Card{
		Photo:        slices.Clone(p.Photo),
		Name:         orElse(p.Name, config.CardNamePlace),
		Breed:        orElse(p.Breed, config.CardBreedDefault),
		Service:      p.Service,
		Age:          orElse(p.Age, config.CardNoValue),
		Weight:       weightDisplay(p.Weight),
		Owner:        orElse(firstToken(p.OwnerName), config.CardNoValue),
		Tags:         slices.Clone(p.Tags),
		Phone:        orElse(p.Phone, config.CardNoPhone),
		Availability: availabilitySummary(p.Days, p.Times),
		Notes:        clampRunes(p.Notes, config.NotesDisplayMax),
		CreatedAt:    config.CardLblCreated + clock.Now().Format(config.CardTimeFormat),
	}
}

// availabilitySummary renders the day/time selection as a single line.
// Five selected days with neither weekend day present collapse to the
// "Lun-Vie" shorthand. The check is deliberately loose: it does not verify
// that the five entries are exactly Monday through Friday, matching the
// historical behavior of the credential layout.
// Everything else renders as 3-letter abbreviations in the reference
// vocabulary order, regardless of the order the user toggled them in.
func availabilitySummary(days, times []string) string {
	var dayPart string
	isWeekdays := len(days) == 5 &&
		!slices.Contains(days, WeekendNames[0]) &&
		!slices.Contains(days, WeekendNames[1])

	if isWeekdays {
		dayPart = config.WeekdayShorthand
	} else {
		var abbrevs []string
		for _, d := range DayNames {
			if slices.Contains(days, d) {
				abbrevs = append(abbrevs, abbreviateDay(d))
			}
		}
		dayPart = strings.Join(abbrevs, config.ListSeparator)
	}

	var selected []string
	for _, t := range TimeSlots {
		if slices.Contains(times, t) {
			selected = append(selected, t)
		}
	}
	timePart := strings.Join(selected, config.ListSeparator)

	return dayPart + config.AvailSeparator + timePart
}

// abbreviateDay keeps the first three characters of a day name.
// Day names carry accents (Miércoles, Sábado), so this counts runes.
func abbreviateDay(day string) string {
	runes := []rune(day)
	if len(runes) <= config.DayAbbrevLen {
		return day
	}
	return string(runes[:config.DayAbbrevLen])
}

// firstToken returns the part of s before the first space.
// Only the owner's first name appears on the card.
func firstToken(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// weightDisplay appends the unit only when a weight was entered.
func weightDisplay(w string) string {
	if w == "" {
		return config.CardNoValue
	}
	return w + config.CardWeightUnit
}

// clampRunes caps s at max runes for display, appending an ellipsis when
// something was cut. The stored value is never mutated.
func clampRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + config.Ellipsis
}

// orElse returns s, or the fallback when s is empty.
func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
