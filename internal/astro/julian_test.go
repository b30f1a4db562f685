package astro

import (
	"math"
	"testing"
)

func TestJulianDate_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		day     int
		utcHour float64
		want    float64
	}{
		{"J2000 epoch", 2000, 1, 1, 12, 2451545.0},
		{"J2000 midnight", 2000, 1, 1, 0, 2451544.5},
		{"Meeus example 1987-01-27", 1987, 1, 27, 0, 2446822.5},
		{"mid-2024", 2024, 6, 15, 0, 2460476.5},
		{"leap day 2024", 2024, 2, 29, 0, 2460369.5},
		{"year one", 1, 1, 1, 0, 1721425.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDate(tt.year, tt.month, tt.day, tt.utcHour)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("JulianDate(%d, %d, %d, %g) = %f, want %f",
					tt.year, tt.month, tt.day, tt.utcHour, got, tt.want)
			}
		})
	}
}

// Consecutive midnights must differ by exactly 1.0, including across
// month, year and leap-day boundaries.
func TestJulianDate_DayBoundary(t *testing.T) {
	pairs := []struct {
		name           string
		y1, m1, d1     int
		y2, m2, d2     int
	}{
		{"within month", 2024, 6, 15, 2024, 6, 16},
		{"month boundary", 2024, 6, 30, 2024, 7, 1},
		{"year boundary", 2023, 12, 31, 2024, 1, 1},
		{"into leap day", 2024, 2, 28, 2024, 2, 29},
		{"out of leap day", 2024, 2, 29, 2024, 3, 1},
		{"non-leap century", 1900, 2, 28, 1900, 3, 1},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			d := JulianDate(tt.y1, tt.m1, tt.d1, 0)
			next := JulianDate(tt.y2, tt.m2, tt.d2, 0)
			if next != d+1.0 {
				t.Errorf("JD(%d-%02d-%02d)+1 = %f, but JD(%d-%02d-%02d) = %f",
					tt.y1, tt.m1, tt.d1, d+1, tt.y2, tt.m2, tt.d2, next)
			}
		})
	}
}

func TestJulianDate_FractionalHour(t *testing.T) {
	midnight := JulianDate(2024, 6, 15, 0)
	noon := JulianDate(2024, 6, 15, 12)
	if noon-midnight != 0.5 {
		t.Errorf("noon - midnight = %f, want 0.5", noon-midnight)
	}

	// Negative hours reach into the previous UTC day (local midnight
	// east of Greenwich).
	before := JulianDate(2024, 6, 15, -3)
	if math.Abs(before-(midnight-0.125)) > 1e-9 {
		t.Errorf("JD at -3h = %f, want %f", before, midnight-0.125)
	}
}

// The count must grow strictly with the calendar across a long span.
func TestJulianDate_Monotonic(t *testing.T) {
	prev := JulianDate(1900, 1, 1, 0)
	for year := 1901; year <= 2100; year += 7 {
		jd := JulianDate(year, 1, 1, 0)
		if jd <= prev {
			t.Fatalf("JD(%d-01-01) = %f not greater than previous %f", year, jd, prev)
		}
		prev = jd
	}
}
