package astro

import (
	"math"
	"testing"
)

func jdOf(year, month, day int) float64 {
	return JulianDate(year, month, day, 12)
}

func TestSunPosition_SolsticesAndEquinoxes(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		wantDecMin       float64
		wantDecMax       float64
	}{
		{"june solstice", 2024, 6, 20, 23.3, 23.5},
		{"december solstice", 2024, 12, 21, -23.5, -23.3},
		{"march equinox", 2024, 3, 20, -1, 1},
		{"september equinox", 2024, 9, 22, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := SunPosition(jdOf(tt.year, tt.month, tt.day))
			if pos.DeclinationDeg < tt.wantDecMin || pos.DeclinationDeg > tt.wantDecMax {
				t.Errorf("declination = %f, want in [%g, %g]",
					pos.DeclinationDeg, tt.wantDecMin, tt.wantDecMax)
			}
		})
	}
}

func TestSunPosition_EquationOfTimeExtremes(t *testing.T) {
	// The equation of time peaks near +16.4 min in early November and
	// bottoms near -14.2 min in mid-February.
	nov := SunPosition(jdOf(2024, 11, 3))
	if nov.EquationOfTimeMin < 15.5 || nov.EquationOfTimeMin > 17.5 {
		t.Errorf("EoT early November = %f, want about +16.4", nov.EquationOfTimeMin)
	}

	feb := SunPosition(jdOf(2024, 2, 11))
	if feb.EquationOfTimeMin < -15 || feb.EquationOfTimeMin > -13.5 {
		t.Errorf("EoT mid-February = %f, want about -14.2", feb.EquationOfTimeMin)
	}
}

// Physical bounds over a full year: |declination| stays inside the
// obliquity, |EoT| under 17 minutes.
func TestSunPosition_YearBounds(t *testing.T) {
	start := JulianDate(2024, 1, 1, 0)
	for i := 0; i < 366; i++ {
		pos := SunPosition(start + float64(i))
		if math.Abs(pos.DeclinationDeg) > 23.5 {
			t.Fatalf("day %d: declination %f outside ±23.5", i, pos.DeclinationDeg)
		}
		if math.Abs(pos.EquationOfTimeMin) > 17 {
			t.Fatalf("day %d: equation of time %f outside ±17 min", i, pos.EquationOfTimeMin)
		}
	}
}

func TestSunPosition_Deterministic(t *testing.T) {
	jd := jdOf(2024, 6, 15)
	a := SunPosition(jd)
	b := SunPosition(jd)
	if a != b {
		t.Errorf("SunPosition not reproducible: %+v vs %+v", a, b)
	}
}
