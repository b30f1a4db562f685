package astro

import "math"

// Position holds the two solar quantities that drive the prayer-time
// composition for a given instant.
type Position struct {
	// DeclinationDeg is the sun's declination in degrees. Physically it
	// stays within about ±23.45° (not enforced here).
	DeclinationDeg float64
	// EquationOfTimeMin is apparent minus mean solar time, in minutes.
	// Typically within ±16 over a year.
	EquationOfTimeMin float64
}

// SunPosition computes the sun's declination and the equation of time
// for the given Julian date.
func SunPosition(jd float64) Position {
	t := julianCentury(jd)

	l0 := meanLongitude(t)
	m := meanAnomaly(t)
	lambda := apparentLongitude(t, l0, m)
	eps := obliquityCorrected(t)

	decl := rad2deg(math.Asin(math.Sin(deg2rad(eps)) * math.Sin(deg2rad(lambda))))

	return Position{
		DeclinationDeg:    decl,
		EquationOfTimeMin: equationOfTime(t, l0, m, eps),
	}
}

// meanLongitude returns the sun's geometric mean longitude in degrees.
func meanLongitude(t float64) float64 {
	l := math.Mod(280.46646+t*(36000.76983+0.0003032*t), 360)
	if l < 0 {
		l += 360
	}
	return l
}

// meanAnomaly returns the sun's geometric mean anomaly in degrees.
func meanAnomaly(t float64) float64 {
	return 357.52911 + t*(35999.05029-0.0001537*t)
}

// eccentricity returns the eccentricity of Earth's orbit.
func eccentricity(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

// equationOfCenter returns the correction from mean to true anomaly,
// in degrees (truncated Fourier series in the mean anomaly).
func equationOfCenter(t, m float64) float64 {
	mr := deg2rad(m)
	return math.Sin(mr)*(1.914602-t*(0.004817+0.000014*t)) +
		math.Sin(2*mr)*(0.019993-0.000101*t) +
		math.Sin(3*mr)*0.000289
}

// apparentLongitude returns the sun's apparent ecliptic longitude in
// degrees, including the nutation/aberration correction.
func apparentLongitude(t, l0, m float64) float64 {
	omega := 125.04 - 1934.136*t
	return l0 + equationOfCenter(t, m) - 0.00569 - 0.00478*math.Sin(deg2rad(omega))
}

// obliquityCorrected returns the obliquity of the ecliptic in degrees,
// with the nutation correction applied.
func obliquityCorrected(t float64) float64 {
	seconds := 21.448 - t*(46.8150+t*(0.00059-t*0.001813))
	e0 := 23 + (26+seconds/60)/60
	omega := 125.04 - 1934.136*t
	return e0 + 0.00256*math.Cos(deg2rad(omega))
}

// equationOfTime returns apparent minus mean solar time in minutes,
// via the standard series in apparent/mean longitude and obliquity.
func equationOfTime(t, l0, m, eps float64) float64 {
	y := math.Tan(deg2rad(eps) / 2)
	y *= y

	e := eccentricity(t)
	l0r := deg2rad(l0)
	mr := deg2rad(m)

	eq := y*math.Sin(2*l0r) -
		2*e*math.Sin(mr) +
		4*e*y*math.Sin(mr)*math.Cos(2*l0r) -
		0.5*y*y*math.Sin(4*l0r) -
		1.25*e*e*math.Sin(2*mr)

	return 4 * rad2deg(eq)
}
