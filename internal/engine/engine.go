// Package engine computes daily prayer times from a coordinate, a
// calendar date and a calculation method. Every function here is pure:
// no I/O, no clocks, no state between calls, bit-for-bit reproducible
// results for the same inputs.
package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/smokyabdulrahman/salatime/internal/astro"
	"github.com/smokyabdulrahman/salatime/internal/method"
)

// ErrInvalidCoordinate is returned when a latitude or longitude is out
// of range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a geographic position in degrees.
type Coordinate struct {
	Lat float64 // [-90, 90]
	Lon float64 // [-180, 180]
}

// Validate checks the coordinate ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %g out of [-90, 90]", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %g out of [-180, 180]", ErrInvalidCoordinate, c.Lon)
	}
	return nil
}

// Date is a proleptic Gregorian calendar date plus the UTC offset of
// the local timezone the resulting times are expressed in. The offset
// anchors local midnight in UTC for the Julian-date step.
type Date struct {
	Year         int
	Month        time.Month
	Day          int
	UTCOffsetMin int
}

// DateOf extracts the calendar date and zone offset from t.
func DateOf(t time.Time) Date {
	_, offsetSec := t.Zone()
	return Date{
		Year:         t.Year(),
		Month:        t.Month(),
		Day:          t.Day(),
		UTCOffsetMin: offsetSec / 60,
	}
}

// Moment is a time of day in minutes after local midnight. Valid is
// false when the sun never reaches the marker's altitude on that date
// (polar day or polar night); Minutes is meaningless then.
type Moment struct {
	Minutes float64
	Valid   bool
}

// Clock returns the whole hour and minute of the moment, rounded to
// the nearest minute and normalized into [0, 24h).
func (m Moment) Clock() (hour, min int) {
	total := int(math.Round(m.Minutes))
	total = ((total % 1440) + 1440) % 1440
	return total / 60, total % 60
}

// String renders "HH:MM", or "--:--" when there is no solution.
func (m Moment) String() string {
	if !m.Valid {
		return "--:--"
	}
	h, min := m.Clock()
	return fmt.Sprintf("%02d:%02d", h, min)
}

// Times holds the six daily markers. Values are fixed at construction.
type Times struct {
	Fajr    Moment
	Sunrise Moment
	Dhuhr   Moment
	Asr     Moment
	Maghrib Moment
	Isha    Moment
}

// Entry pairs a marker name with its moment.
type Entry struct {
	Name   string
	Moment Moment
}

// All returns the markers in chronological order.
func (t Times) All() []Entry {
	return []Entry{
		{"Fajr", t.Fajr},
		{"Sunrise", t.Sunrise},
		{"Dhuhr", t.Dhuhr},
		{"Asr", t.Asr},
		{"Maghrib", t.Maghrib},
		{"Isha", t.Isha},
	}
}

// horizonAltitude is the sun-center altitude at apparent rise/set:
// -50 arcmin, covering refraction plus the solar disk radius.
const horizonAltitude = -0.833

// Calculate computes the prayer times for the given coordinate, date
// and method, with the Asr convention chosen by school. Boundary
// errors (bad coordinate, unknown method) fail the call; a marker the
// sun never reaches at this latitude/date comes back with Valid=false
// instead of failing the whole day.
func Calculate(coord Coordinate, date Date, id method.ID, school method.AsrSchool) (Times, error) {
	params, err := method.LookupWithSchool(id, school)
	if err != nil {
		return Times{}, err
	}
	return Compose(coord, date, params)
}

// Compose runs the composition with explicit method parameters.
func Compose(coord Coordinate, date Date, params method.Parameters) (Times, error) {
	if err := coord.Validate(); err != nil {
		return Times{}, err
	}

	// Solar position at local midnight, expressed in UTC.
	jd := astro.JulianDate(date.Year, int(date.Month), date.Day, -float64(date.UTCOffsetMin)/60)
	pos := astro.SunPosition(jd)

	// Solar noon in local clock minutes: longitude correction converts
	// the coordinate's offset from the Greenwich meridian (4 min per
	// degree, east positive), equation of time converts mean to
	// apparent solar time, then the zone offset localizes it.
	noon := 720 - 4*coord.Lon - pos.EquationOfTimeMin + float64(date.UTCOffsetMin)

	var t Times
	t.Dhuhr = Moment{Minutes: noon, Valid: true}

	// Hour angles come back in degrees; x4 turns them into minutes.
	t.Sunrise = offsetFromNoon(noon, hourAngle(coord.Lat, pos.DeclinationDeg, horizonAltitude), -1)
	t.Maghrib = offsetFromNoon(noon, hourAngle(coord.Lat, pos.DeclinationDeg, horizonAltitude), +1)
	t.Fajr = offsetFromNoon(noon, hourAngle(coord.Lat, pos.DeclinationDeg, -params.FajrAngle), -1)
	t.Asr = offsetFromNoon(noon, asrHourAngle(coord.Lat, pos.DeclinationDeg, params.AsrFactor), +1)

	if min, ok := params.Isha.Offset(); ok {
		// Fixed-offset Isha rides on Maghrib and bypasses the solver;
		// with no Maghrib there is nothing to offset from.
		if t.Maghrib.Valid {
			t.Isha = Moment{Minutes: t.Maghrib.Minutes + float64(min), Valid: true}
		}
	} else {
		angle, _ := params.Isha.Angle()
		t.Isha = offsetFromNoon(noon, hourAngle(coord.Lat, pos.DeclinationDeg, -angle), +1)
	}

	return t, nil
}

// offsetFromNoon places a marker the given hour angle before (dir -1)
// or after (dir +1) solar noon, carrying the no-solution state through.
func offsetFromNoon(noon float64, ha haResult, dir float64) Moment {
	if !ha.ok {
		return Moment{}
	}
	return Moment{Minutes: noon + dir*4*ha.deg, Valid: true}
}
