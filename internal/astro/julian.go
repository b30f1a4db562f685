// Package astro computes the solar quantities the prayer-time algorithm
// needs: a continuous Julian day count, the sun's declination, and the
// equation of time.
//
// The series here are the truncated NOAA/Meeus approximations. They are
// good to about ±2 minutes in derived event times, which is well inside
// what angle-based prayer conventions can claim anyway.
package astro

import "math"

// JulianDate converts a proleptic Gregorian date plus a fractional UTC
// hour-of-day into a Julian Day Number. Valid for any year >= 1; date
// validity (month/day ranges) is the caller's concern.
func JulianDate(year, month, day int, utcHour float64) float64 {
	// January and February count as months 13 and 14 of the prior year.
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian century correction.
	a := y / 100
	b := 2 - a + a/4

	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5 +
		utcHour/24
}

// j2000 is the Julian date of the J2000.0 epoch (2000-01-01 12:00 TT).
const j2000 = 2451545.0

// julianCentury returns centuries elapsed since J2000.0.
func julianCentury(jd float64) float64 {
	return (jd - j2000) / 36525
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

func rad2deg(r float64) float64 { return r * 180 / math.Pi }
