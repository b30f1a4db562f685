// Package method holds the calculation-method registry: the twilight
// angles, Isha rules and Asr shadow factors of the supported
// conventions. The five methodologies are data consumed by one
// algorithm, not five code paths.
package method

import (
	"errors"
	"fmt"
	"strings"
)

// ID identifies a calculation method.
type ID string

// The five supported calculation methods.
const (
	MuslimWorldLeague ID = "mwl"
	ISNA              ID = "isna"
	Egyptian          ID = "egypt"
	UmmAlQura         ID = "makkah"
	Karachi           ID = "karachi"
)

// ErrUnknownMethod is returned when a method ID is not in the registry.
var ErrUnknownMethod = errors.New("unknown calculation method")

// AsrSchool selects the juristic Asr shadow-length convention.
type AsrSchool int

const (
	// Shafi uses a shadow factor of 1 (also Maliki/Hanbali).
	Shafi AsrSchool = iota
	// Hanafi uses a shadow factor of 2.
	Hanafi
)

// Factor returns the shadow-length factor for the school.
func (s AsrSchool) Factor() float64 {
	if s == Hanafi {
		return 2
	}
	return 1
}

func (s AsrSchool) String() string {
	if s == Hanafi {
		return "Hanafi"
	}
	return "Shafi"
}

// IshaRule is the tagged choice between an angle-based Isha (sun at a
// twilight depression angle) and an offset-based Isha (fixed minutes
// after Maghrib). Exactly one of the two is active; the zero value is
// not a valid rule.
type IshaRule struct {
	angle     float64
	offsetMin int
	byOffset  bool
}

// IshaAngle returns a rule placing Isha when the sun is deg below the
// horizon.
func IshaAngle(deg float64) IshaRule {
	return IshaRule{angle: deg}
}

// IshaOffset returns a rule placing Isha a fixed number of minutes
// after Maghrib.
func IshaOffset(min int) IshaRule {
	return IshaRule{offsetMin: min, byOffset: true}
}

// Angle reports the twilight angle and whether this is an angle rule.
func (r IshaRule) Angle() (deg float64, ok bool) {
	return r.angle, !r.byOffset
}

// Offset reports the minutes after Maghrib and whether this is an
// offset rule.
func (r IshaRule) Offset() (min int, ok bool) {
	return r.offsetMin, r.byOffset
}

func (r IshaRule) String() string {
	if r.byOffset {
		return fmt.Sprintf("Maghrib + %d min", r.offsetMin)
	}
	return fmt.Sprintf("%g°", r.angle)
}

// Parameters are the per-method inputs to the prayer-time composition.
type Parameters struct {
	// FajrAngle is the dawn twilight depression angle in degrees
	// (positive; the sun is this far below the horizon at Fajr).
	FajrAngle float64
	// Isha is the dusk rule: twilight angle or fixed Maghrib offset.
	Isha IshaRule
	// AsrFactor is the shadow-length factor (1 Shafi, 2 Hanafi).
	AsrFactor float64
}

// registry is the fixed method table. Built once, never mutated.
// Reserved per-method Dhuhr/Maghrib adjustments would live here too;
// none of the five methods uses any today.
var registry = map[ID]Parameters{
	MuslimWorldLeague: {FajrAngle: 18, Isha: IshaAngle(17), AsrFactor: 1},
	ISNA:              {FajrAngle: 15, Isha: IshaAngle(15), AsrFactor: 1},
	Egyptian:          {FajrAngle: 19.5, Isha: IshaAngle(17.5), AsrFactor: 1},
	UmmAlQura:         {FajrAngle: 18.5, Isha: IshaOffset(90), AsrFactor: 1},
	Karachi:           {FajrAngle: 18, Isha: IshaAngle(18), AsrFactor: 1},
}

// All lists the method IDs in display order.
var All = []ID{MuslimWorldLeague, ISNA, Egyptian, UmmAlQura, Karachi}

// Names maps method IDs to their full names for display.
var Names = map[ID]string{
	MuslimWorldLeague: "Muslim World League",
	ISNA:              "Islamic Society of North America",
	Egyptian:          "Egyptian General Authority of Survey",
	UmmAlQura:         "Umm Al-Qura University, Makkah",
	Karachi:           "University of Islamic Sciences, Karachi",
}

// Lookup returns the parameters for the given method with the default
// (Shafi) Asr factor.
func Lookup(id ID) (Parameters, error) {
	p, ok := registry[id]
	if !ok {
		return Parameters{}, fmt.Errorf("%w: %q", ErrUnknownMethod, id)
	}
	return p, nil
}

// LookupWithSchool returns the parameters for the given method with
// the Asr factor overridden by the juristic school.
func LookupWithSchool(id ID, school AsrSchool) (Parameters, error) {
	p, err := Lookup(id)
	if err != nil {
		return Parameters{}, err
	}
	p.AsrFactor = school.Factor()
	return p, nil
}

// Parse converts a user-supplied method name into an ID. Matching is
// case-insensitive.
func Parse(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[id]; !ok {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownMethod, s, idList())
	}
	return id, nil
}

func idList() string {
	parts := make([]string, len(All))
	for i, id := range All {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
