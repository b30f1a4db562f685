package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/smokyabdulrahman/salatime/internal/cache"
	"github.com/smokyabdulrahman/salatime/internal/config"
	"github.com/smokyabdulrahman/salatime/internal/engine"
	"github.com/smokyabdulrahman/salatime/internal/geo"
	"github.com/smokyabdulrahman/salatime/internal/prayer"
)

// locationMode describes how the location was determined.
type locationMode int

const (
	locationConfigured locationMode = iota
	locationCached
	locationDetected
)

// resolvedLocation holds the result of location resolution.
type resolvedLocation struct {
	Mode     locationMode
	Lat, Lon float64
	City     string
	Country  string
	Timezone string // optional hint from geo-detection
	Stale    bool   // the coordinate came from an expired cache entry
}

// resolveLocation determines the effective location.
// Priority: CLI flags / config coordinates > cached geolocation > IP auto-detect.
// A stale cached fix is still used (with Stale set) when detection fails,
// so the tool keeps working offline.
func resolveLocation(lat, lon float64, c *cache.Cache) (resolvedLocation, error) {
	if lat != 0 || lon != 0 {
		return resolvedLocation{Mode: locationConfigured, Lat: lat, Lon: lon}, nil
	}

	var cached *geo.Location
	var stale bool
	if c != nil {
		cached, stale = c.Load()
		if cached != nil && !stale {
			return resolvedLocation{
				Mode:     locationCached,
				Lat:      cached.Latitude,
				Lon:      cached.Longitude,
				City:     cached.City,
				Country:  cached.Country,
				Timezone: cached.Timezone,
			}, nil
		}
	}

	detected, err := geo.DetectLocation()
	if err != nil {
		// Fall back to the stale fix if there is one.
		if cached != nil {
			return resolvedLocation{
				Mode:     locationCached,
				Lat:      cached.Latitude,
				Lon:      cached.Longitude,
				City:     cached.City,
				Country:  cached.Country,
				Timezone: cached.Timezone,
				Stale:    true,
			}, nil
		}
		return resolvedLocation{}, fmt.Errorf("no location configured and auto-detection failed: %w", err)
	}

	if c != nil {
		_ = c.Save(detected) // best-effort
	}

	return resolvedLocation{
		Mode:     locationDetected,
		Lat:      detected.Latitude,
		Lon:      detected.Longitude,
		City:     detected.City,
		Country:  detected.Country,
		Timezone: detected.Timezone,
	}, nil
}

// resolveTimezone picks the output timezone.
// Priority: --timezone flag > geo-detected zone > the process's local zone.
func resolveTimezone(loc resolvedLocation) (*time.Location, error) {
	if FlagTimezone != "" {
		tzLoc, err := time.LoadLocation(FlagTimezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", FlagTimezone, err)
		}
		return tzLoc, nil
	}
	if loc.Timezone != "" {
		if tzLoc, err := time.LoadLocation(loc.Timezone); err == nil {
			return tzLoc, nil
		}
	}
	return time.Local, nil
}

// resolveDate returns the calculation date anchored in tzLoc:
// the --date flag if given, otherwise today.
func resolveDate(now time.Time, tzLoc *time.Location) (time.Time, error) {
	if FlagDate == "" {
		return now.In(tzLoc), nil
	}
	d, err := time.ParseInLocation("2006-01-02", FlagDate, tzLoc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", FlagDate)
	}
	return d, nil
}

// computeDay runs the engine for one calendar day and anchors the
// result in the given timezone, applying the configured iqama offsets.
func computeDay(cfg *config.Config, loc resolvedLocation, date time.Time, tzLoc *time.Location, selected []string) ([]prayer.Prayer, error) {
	id, err := cfg.MethodOrDefault()
	if err != nil {
		return nil, err
	}
	school, err := cfg.SchoolOrDefault()
	if err != nil {
		return nil, err
	}
	iqama, err := prayer.ParseIqama(cfg.Iqama)
	if err != nil {
		return nil, err
	}

	coord := engine.Coordinate{Lat: loc.Lat, Lon: loc.Lon}
	times, err := engine.Calculate(coord, engine.DateOf(date.In(tzLoc)), id, school)
	if err != nil {
		return nil, err
	}

	return prayer.FromTimes(times, date.In(tzLoc), tzLoc, selected, iqama)
}

// selectedPrayers returns the marker names to show, from config or the
// default set.
func selectedPrayers(cfg *config.Config) []string {
	if cfg.Prayers == "" {
		return prayer.DefaultNames
	}
	names := strings.Split(cfg.Prayers, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

// goTimeFormat maps the config time format to a Go layout string.
func goTimeFormat(cfg *config.Config) string {
	if cfg.TimeFormat == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}

// openCache initializes the cache, downgrading failure to a warning:
// the engine does not need it, only geolocation reuse does.
func openCache(cfg *config.Config) *cache.Cache {
	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
		return nil
	}
	return c
}

// warnStale tells the user when the coordinate came from an expired fix.
func warnStale(loc resolvedLocation) {
	if loc.Stale {
		fmt.Fprintln(os.Stderr, "warning: using a stale cached location (auto-detection unavailable)")
	}
}

// locationLabel builds a human-readable location string.
func locationLabel(loc resolvedLocation) string {
	if loc.City != "" && loc.Country != "" {
		return loc.City + ", " + loc.Country
	}
	return fmt.Sprintf("%.4f, %.4f", loc.Lat, loc.Lon)
}
