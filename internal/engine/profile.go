package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/labarberie/go-credencial/internal/config"
)

// Field names a single editable slot of a Profile.
type Field string

const (
	FieldName      Field = "name"
	FieldOwnerName Field = "owner_name"
	FieldPhone     Field = "phone"
	FieldBreed     Field = "breed"
	FieldWeight    Field = "weight"
	FieldAge       Field = "age"
	FieldHairType  Field = "hair_type"
	FieldService   Field = "service"
	FieldNotes     Field = "notes"
	FieldDays      Field = "days"
	FieldTimes     Field = "times"
	FieldPhoto     Field = "photo"
)

// Profile is the pet/owner record driving the form and the card.
// It is a value type: every update returns a fresh copy and slice fields are
// cloned on write, so no two holders ever alias mutable state.
type Profile struct {
	// Photo holds the normalized PNG bytes of the pet photo. Nil means no
	// photo has been imported yet.
	Photo []byte

	Name      string
	OwnerName string
	Phone     string
	Breed     string

	// Weight and Age hold free-text numeric-ish input. They are stored and
	// displayed verbatim, never parsed.
	Weight string
	Age    string

	HairType string
	Tags     []string
	Service  string
	Days     []string
	Times    []string
	Notes    string
}

// InitialProfile returns the default value a new entry starts from.
func InitialProfile() Profile {
	return Profile{
		HairType: DefaultHairType(),
		Service:  DefaultService(),
	}
}

// WithField returns a copy of the profile with the named text field replaced.
// The value is stored verbatim; no validation happens here.
// Unknown fields panic: field names are compile-time constants and a miss is
// a programming error, not user input.
func (p Profile) WithField(f Field, value string) Profile {
	switch f {
	case FieldName:
		p.Name = value
	case FieldOwnerName:
		p.OwnerName = value
	case FieldPhone:
		p.Phone = value
	case FieldBreed:
		p.Breed = value
	case FieldWeight:
		p.Weight = value
	case FieldAge:
		p.Age = value
	case FieldHairType:
		p.HairType = value
	case FieldService:
		p.Service = value
	case FieldNotes:
		p.Notes = value
	default:
		panic(fmt.Sprintf("%s: %q", config.ErrUnknownField, f))
	}
	return p
}

// WithPhoto returns a copy of the profile with the photo replaced.
func (p Profile) WithPhoto(photo []byte) Profile {
	p.Photo = photo
	return p
}

// WithDays returns a copy of the profile with the days selection replaced.
// The incoming slice is cloned.
func (p Profile) WithDays(days []string) Profile {
	p.Days = slices.Clone(days)
	return p
}

// WithTimes returns a copy of the profile with the time slots replaced.
func (p Profile) WithTimes(times []string) Profile {
	p.Times = slices.Clone(times)
	return p
}

// WithTags returns a copy of the profile with the tag list replaced.
func (p Profile) WithTags(tags []string) Profile {
	p.Tags = slices.Clone(tags)
	return p
}

// ToggleSetMember returns a copy of the profile with item removed from the
// named set field if present, or appended if absent. Applying it twice with
// the same item restores the original membership.
// Only FieldDays and FieldTimes are set-valued.
func (p Profile) ToggleSetMember(f Field, item string) Profile {
	toggle := func(set []string) []string {
		if i := slices.Index(set, item); i >= 0 {
			return slices.Delete(slices.Clone(set), i, i+1)
		}
		return append(slices.Clone(set), item)
	}

	switch f {
	case FieldDays:
		p.Days = toggle(p.Days)
	case FieldTimes:
		p.Times = toggle(p.Times)
	default:
		panic(fmt.Sprintf("%s: %q is not a set field", config.ErrUnknownField, f))
	}
	return p
}

// ValidationError reports which parts of the profile block submission.
type ValidationError struct {
	Missing []Field
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		parts[i] = string(f)
	}
	return config.ErrProfileInvalid + ": missing " + strings.Join(parts, ", ")
}

// MissingAvailability reports whether the failure involves the day or time
// selection, which gets its own user-facing message.
func (e *ValidationError) MissingAvailability() bool {
	return slices.Contains(e.Missing, FieldDays) || slices.Contains(e.Missing, FieldTimes)
}

// Submit checks the submittability invariant and returns the profile
// unchanged on success, to be treated as finalized from then on.
// A profile is submittable iff name, owner name and phone are non-empty,
// a photo is present, and both days and times have at least one entry.
func (p Profile) Submit() (Profile, error) {
	var missing []Field

	if p.Name == "" {
		missing = append(missing, FieldName)
	}
	if p.OwnerName == "" {
		missing = append(missing, FieldOwnerName)
	}
	if p.Phone == "" {
		missing = append(missing, FieldPhone)
	}
	if len(p.Photo) == 0 {
		missing = append(missing, FieldPhoto)
	}
	if len(p.Days) == 0 {
		missing = append(missing, FieldDays)
	}
	if len(p.Times) == 0 {
		missing = append(missing, FieldTimes)
	}

	if len(missing) > 0 {
		return Profile{}, &ValidationError{Missing: missing}
	}
	return p, nil
}
