package prayer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/smokyabdulrahman/salatime/internal/engine"
)

// Prayer represents a single daily marker with its concrete time.
// Valid is false when the marker has no solution at this latitude and
// date (polar day/night); Time is the zero value then.
type Prayer struct {
	Name  string
	Time  time.Time
	Valid bool
}

// AllNames lists every marker the engine produces, in chronological
// order.
var AllNames = []string{
	"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha",
}

// DefaultNames are the markers tracked by default (all of them; kept
// separate from AllNames so config can narrow the set).
var DefaultNames = []string{
	"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha",
}

// ShortNames maps full marker names to abbreviations.
var ShortNames = map[string]string{
	"Fajr":    "F",
	"Sunrise": "S",
	"Dhuhr":   "D",
	"Asr":     "A",
	"Maghrib": "M",
	"Isha":    "I",
}

// FromTimes anchors the engine's minutes-after-midnight output onto a
// concrete date in a concrete timezone, filtered to the selected
// marker names. Iqama offsets (minutes, keyed by marker name) shift
// the announced time; they are a caller-side adjustment and never
// reach the engine.
func FromTimes(times engine.Times, date time.Time, loc *time.Location, selected []string, iqama map[string]int) ([]Prayer, error) {
	byName := make(map[string]engine.Moment, 6)
	for _, e := range times.All() {
		byName[e.Name] = e.Moment
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	var prayers []Prayer
	for _, name := range selected {
		m, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown prayer name: %s", name)
		}

		p := Prayer{Name: name}
		if m.Valid {
			min := m.Minutes + float64(iqama[name])
			p.Time = midnight.Add(time.Duration(math.Round(min)) * time.Minute)
			p.Valid = true
		}
		prayers = append(prayers, p)
	}

	return prayers, nil
}

// CurrentPrayer returns the most recent prayer whose time is at or
// before now, or nil if none has occurred yet today. Markers without a
// solution are skipped.
func CurrentPrayer(prayers []Prayer, now time.Time) *Prayer {
	var current *Prayer
	for i := range prayers {
		if !prayers[i].Valid {
			continue
		}
		if !prayers[i].Time.After(now) {
			current = &prayers[i]
		}
	}
	return current
}

// NextPrayer finds the next upcoming prayer relative to now. If all of
// today's prayers have passed (or none has a solution), it returns nil
// and the caller should roll over to tomorrow's first prayer.
func NextPrayer(prayers []Prayer, now time.Time) *Prayer {
	for i := range prayers {
		if prayers[i].Valid && prayers[i].Time.After(now) {
			return &prayers[i]
		}
	}
	return nil
}

// FirstValid returns the earliest marker that has a solution, or nil.
func FirstValid(prayers []Prayer) *Prayer {
	for i := range prayers {
		if prayers[i].Valid {
			return &prayers[i]
		}
	}
	return nil
}

// TimeRemaining returns the duration until the given prayer time.
func TimeRemaining(prayer Prayer, now time.Time) time.Duration {
	return prayer.Time.Sub(now)
}

// FormatRemaining formats a duration as "Xh Ym" or "Ym" if less than
// an hour.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		return "0m"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// ParseIqama parses an iqama spec like "Fajr=20,Dhuhr=10" into a map
// of per-marker offset minutes. Names are validated against AllNames.
func ParseIqama(spec string) (map[string]int, error) {
	offsets := make(map[string]int)
	if strings.TrimSpace(spec) == "" {
		return offsets, nil
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid iqama entry %q: want name=minutes", part)
		}

		name := NormalizeName(strings.TrimSpace(kv[0]))
		if name == "" {
			return nil, fmt.Errorf("invalid iqama entry %q: unknown prayer %q", part, kv[0])
		}

		var min int
		if _, err := fmt.Sscanf(strings.TrimSpace(kv[1]), "%d", &min); err != nil {
			return nil, fmt.Errorf("invalid iqama entry %q: %w", part, err)
		}
		offsets[name] = min
	}

	return offsets, nil
}

// NormalizeName matches a name case-insensitively against AllNames and
// returns the canonical form, or "" if unknown.
func NormalizeName(s string) string {
	for _, name := range AllNames {
		if strings.EqualFold(name, s) {
			return name
		}
	}
	return ""
}
