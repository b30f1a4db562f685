package prayer

import (
	"testing"
	"time"

	"github.com/smokyabdulrahman/salatime/internal/engine"
)

// sampleTimes builds an engine result with all six markers solved.
func sampleTimes() engine.Times {
	return engine.Times{
		Fajr:    engine.Moment{Minutes: 317, Valid: true},  // 05:17
		Sunrise: engine.Moment{Minutes: 408, Valid: true},  // 06:48
		Dhuhr:   engine.Moment{Minutes: 733, Valid: true},  // 12:13
		Asr:     engine.Moment{Minutes: 902, Valid: true},  // 15:02
		Maghrib: engine.Moment{Minutes: 1059, Valid: true}, // 17:39
		Isha:    engine.Moment{Minutes: 1150, Valid: true}, // 19:10
	}
}

func sampleDate() time.Time {
	return time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
}

func TestFromTimes_DefaultNames(t *testing.T) {
	prayers, err := FromTimes(sampleTimes(), sampleDate(), time.UTC, DefaultNames, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prayers) != len(DefaultNames) {
		t.Fatalf("expected %d prayers, got %d", len(DefaultNames), len(prayers))
	}
	for i, name := range DefaultNames {
		if prayers[i].Name != name {
			t.Errorf("prayer[%d].Name = %q, want %q", i, prayers[i].Name, name)
		}
		if !prayers[i].Valid {
			t.Errorf("prayer[%d] should be valid", i)
		}
	}

	if h, m := prayers[0].Time.Hour(), prayers[0].Time.Minute(); h != 5 || m != 17 {
		t.Errorf("Fajr = %02d:%02d, want 05:17", h, m)
	}
	if d := prayers[0].Time.Day(); d != 28 {
		t.Errorf("Fajr day = %d, want 28", d)
	}
}

func TestFromTimes_SelectedSubset(t *testing.T) {
	selected := []string{"Fajr", "Maghrib", "Isha"}
	prayers, err := FromTimes(sampleTimes(), sampleDate(), time.UTC, selected, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prayers) != 3 {
		t.Fatalf("expected 3 prayers, got %d", len(prayers))
	}
	if prayers[1].Name != "Maghrib" {
		t.Errorf("prayer[1].Name = %q, want Maghrib", prayers[1].Name)
	}
}

func TestFromTimes_UnknownName(t *testing.T) {
	_, err := FromTimes(sampleTimes(), sampleDate(), time.UTC, []string{"Imsak"}, nil)
	if err == nil {
		t.Fatal("expected error for unknown prayer name")
	}
}

func TestFromTimes_IqamaOffsets(t *testing.T) {
	iqama := map[string]int{"Fajr": 20, "Dhuhr": 15}
	prayers, err := FromTimes(sampleTimes(), sampleDate(), time.UTC, DefaultNames, iqama)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h, m := prayers[0].Time.Hour(), prayers[0].Time.Minute(); h != 5 || m != 37 {
		t.Errorf("Fajr with +20 iqama = %02d:%02d, want 05:37", h, m)
	}
	if h, m := prayers[2].Time.Hour(), prayers[2].Time.Minute(); h != 12 || m != 28 {
		t.Errorf("Dhuhr with +15 iqama = %02d:%02d, want 12:28", h, m)
	}
	// Markers without an offset are untouched.
	if h, m := prayers[1].Time.Hour(), prayers[1].Time.Minute(); h != 6 || m != 48 {
		t.Errorf("Sunrise = %02d:%02d, want 06:48", h, m)
	}
}

func TestFromTimes_NoSolutionMarker(t *testing.T) {
	times := sampleTimes()
	times.Fajr = engine.Moment{} // polar day

	prayers, err := FromTimes(times, sampleDate(), time.UTC, DefaultNames, nil)
	if err != nil {
		t.Fatalf("a missing solution must not fail the conversion: %v", err)
	}
	if prayers[0].Valid {
		t.Error("Fajr should carry Valid=false")
	}
	if !prayers[0].Time.IsZero() {
		t.Errorf("invalid marker Time = %v, want zero", prayers[0].Time)
	}
	if !prayers[1].Valid {
		t.Error("Sunrise should stay valid when only Fajr is missing")
	}
}

func TestFromTimes_Location(t *testing.T) {
	loc := time.FixedZone("AST", 3*3600)
	prayers, err := FromTimes(sampleTimes(), sampleDate(), loc, []string{"Dhuhr"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prayers[0].Time.Location() != loc {
		t.Errorf("location = %v, want %v", prayers[0].Time.Location(), loc)
	}
}

func mustPrayers(t *testing.T, iqama map[string]int) []Prayer {
	t.Helper()
	prayers, err := FromTimes(sampleTimes(), sampleDate(), time.UTC, DefaultNames, iqama)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return prayers
}

func TestNextPrayer(t *testing.T) {
	prayers := mustPrayers(t, nil)

	tests := []struct {
		name string
		now  time.Time
		want string // "" means nil
	}{
		{"before dawn", time.Date(2026, 2, 28, 3, 0, 0, 0, time.UTC), "Fajr"},
		{"midday", time.Date(2026, 2, 28, 13, 0, 0, 0, time.UTC), "Asr"},
		{"right at isha", time.Date(2026, 2, 28, 19, 10, 0, 0, time.UTC), ""},
		{"late night", time.Date(2026, 2, 28, 23, 0, 0, 0, time.UTC), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPrayer(prayers, tt.now)
			if tt.want == "" {
				if got != nil {
					t.Errorf("NextPrayer = %q, want nil", got.Name)
				}
				return
			}
			if got == nil || got.Name != tt.want {
				t.Errorf("NextPrayer = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestNextPrayer_SkipsNoSolution(t *testing.T) {
	times := sampleTimes()
	times.Fajr = engine.Moment{}
	prayers, err := FromTimes(times, sampleDate(), time.UTC, DefaultNames, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Date(2026, 2, 28, 3, 0, 0, 0, time.UTC)
	got := NextPrayer(prayers, now)
	if got == nil || got.Name != "Sunrise" {
		t.Errorf("NextPrayer = %v, want Sunrise (Fajr has no solution)", got)
	}
}

func TestCurrentPrayer(t *testing.T) {
	prayers := mustPrayers(t, nil)

	now := time.Date(2026, 2, 28, 13, 0, 0, 0, time.UTC)
	got := CurrentPrayer(prayers, now)
	if got == nil || got.Name != "Dhuhr" {
		t.Errorf("CurrentPrayer at 13:00 = %v, want Dhuhr", got)
	}

	early := time.Date(2026, 2, 28, 2, 0, 0, 0, time.UTC)
	if got := CurrentPrayer(prayers, early); got != nil {
		t.Errorf("CurrentPrayer before Fajr = %q, want nil", got.Name)
	}
}

func TestFirstValid(t *testing.T) {
	prayers := mustPrayers(t, nil)
	if got := FirstValid(prayers); got == nil || got.Name != "Fajr" {
		t.Errorf("FirstValid = %v, want Fajr", got)
	}

	times := engine.Times{Dhuhr: engine.Moment{Minutes: 720, Valid: true}}
	polar, err := FromTimes(times, sampleDate(), time.UTC, DefaultNames, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FirstValid(polar); got == nil || got.Name != "Dhuhr" {
		t.Errorf("FirstValid during polar day = %v, want Dhuhr", got)
	}

	if got := FirstValid(nil); got != nil {
		t.Errorf("FirstValid(nil) = %v, want nil", got)
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{2*time.Hour + 15*time.Minute, "2h 15m"},
		{45 * time.Minute, "45m"},
		{0, "0m"},
		{-5 * time.Minute, "0m"},
	}

	for _, tt := range tests {
		if got := FormatRemaining(tt.d); got != tt.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseIqama(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    map[string]int
		wantErr bool
	}{
		{"empty", "", map[string]int{}, false},
		{"single", "Fajr=20", map[string]int{"Fajr": 20}, false},
		{"multiple with spaces", " fajr=20 , Dhuhr=10 ", map[string]int{"Fajr": 20, "Dhuhr": 10}, false},
		{"negative offset", "Isha=-5", map[string]int{"Isha": -5}, false},
		{"missing equals", "Fajr20", nil, true},
		{"unknown prayer", "Imsak=10", nil, true},
		{"non-numeric", "Fajr=soon", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIqama(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseIqama(%q) expected error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIqama(%q) error: %v", tt.spec, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseIqama(%q) = %v, want %v", tt.spec, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("ParseIqama(%q)[%s] = %d, want %d", tt.spec, k, got[k], v)
				}
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("fajr"); got != "Fajr" {
		t.Errorf("NormalizeName(fajr) = %q, want Fajr", got)
	}
	if got := NormalizeName("MAGHRIB"); got != "Maghrib" {
		t.Errorf("NormalizeName(MAGHRIB) = %q, want Maghrib", got)
	}
	if got := NormalizeName("Imsak"); got != "" {
		t.Errorf("NormalizeName(Imsak) = %q, want empty", got)
	}
}
