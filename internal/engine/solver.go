package engine

import "math"

// haResult is a solved hour angle in degrees, or ok=false when the sun
// never reaches the target altitude on that date at that latitude.
type haResult struct {
	deg float64
	ok  bool
}

// hourAngle solves the spherical-triangle relation
//
//	cos H = (sin h - sin lat * sin dec) / (cos lat * cos dec)
//
// for the hour angle H (degrees from solar noon) at which the sun's
// center reaches altitude h. All arguments are degrees. At high
// latitudes the right-hand side can leave [-1, 1]; that is the polar
// day/night case and comes back as ok=false.
func hourAngle(latDeg, decDeg, altDeg float64) haResult {
	lat := latDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180
	alt := altDeg * math.Pi / 180

	cosH := (math.Sin(alt) - math.Sin(lat)*math.Sin(dec)) /
		(math.Cos(lat) * math.Cos(dec))

	if cosH < -1 || cosH > 1 {
		return haResult{}
	}
	return haResult{deg: math.Acos(cosH) * 180 / math.Pi, ok: true}
}

// asrHourAngle solves for the Asr marker: first derive the sun
// altitude at which an object's shadow is factor times its height
// (plus the noon shadow), then solve the same triangle.
func asrHourAngle(latDeg, decDeg, factor float64) haResult {
	noonZenith := math.Abs(latDeg-decDeg) * math.Pi / 180
	alt := math.Atan(1 / (factor + math.Tan(noonZenith)))
	return hourAngle(latDeg, decDeg, alt*180/math.Pi)
}
