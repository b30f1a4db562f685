package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/smokyabdulrahman/salatime/internal/display"
	"github.com/smokyabdulrahman/salatime/internal/prayer"
	"github.com/spf13/cobra"
)

func runToday(cmd *cobra.Command, args []string) error {
	// Get merged config (CLI flags > config file > defaults).
	cfg := effectiveConfig(cmd)

	selected := selectedPrayers(cfg)
	goTimeFmt := goTimeFormat(cfg)

	c := openCache(cfg)
	now := time.Now()

	loc, err := resolveLocation(cfg.Latitude, cfg.Longitude, c)
	if err != nil {
		return err
	}
	warnStale(loc)

	tzLoc, err := resolveTimezone(loc)
	if err != nil {
		return err
	}
	now = now.In(tzLoc)

	date, err := resolveDate(now, tzLoc)
	if err != nil {
		return err
	}

	prayers, err := computeDay(cfg, loc, date, tzLoc, selected)
	if err != nil {
		return err
	}

	// Current/next markers only make sense when showing today.
	var current, next *prayer.Prayer
	if sameDay(date, now) {
		current = prayer.CurrentPrayer(prayers, now)
		next = prayer.NextPrayer(prayers, now)
	}

	if FlagJSON {
		return printTodayJSON(prayers, current, next, now, date, loc, tzLoc, goTimeFmt)
	}

	printTodayRich(prayers, current, next, now, date, loc, tzLoc, goTimeFmt)
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// printTodayRich renders the colored terminal output for the day's prayer schedule.
func printTodayRich(prayers []prayer.Prayer, current, next *prayer.Prayer, now, date time.Time, loc resolvedLocation, tzLoc *time.Location, goTimeFmt string) {
	fmt.Println()
	fmt.Printf("  %s\n", display.Bold("Prayer Times"))
	fmt.Println()

	fmt.Printf("  %s\n", locationLabel(loc))
	fmt.Printf("  %s\n", tzLoc.String())
	fmt.Printf("  %s\n", date.Format("02 Jan 2006"))
	fmt.Println()

	// Find the max prayer name length for alignment.
	maxNameLen := 0
	for _, p := range prayers {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	for _, p := range prayers {
		timeStr := display.NoSolution
		if p.Valid {
			timeStr = p.Time.Format(goTimeFmt)
		}
		line := fmt.Sprintf("  %-*s  %s", maxNameLen, p.Name, timeStr)

		switch {
		case !p.Valid:
			// No geometric solution at this latitude/date.
			fmt.Println(display.Gray(line))
		case current != nil && p.Name == current.Name:
			// Current prayer: dimmed.
			fmt.Println(display.Dim(line))
		case next != nil && p.Name == next.Name:
			// Next prayer: accent color + countdown.
			remaining := prayer.FormatRemaining(prayer.TimeRemaining(p, now))
			suffix := fmt.Sprintf("  <- next in %s", remaining)
			fmt.Println(display.Accent(line) + display.Accent(suffix))
		default:
			fmt.Println(line)
		}
	}

	fmt.Println()
}

// todayJSON is the JSON output structure for the root command.
type todayJSON struct {
	Location todayJSONLocation `json:"location"`
	Date     string            `json:"date"`
	Timings  map[string]string `json:"timings"`
	Current  string            `json:"current,omitempty"`
	Next     *todayJSONNext    `json:"next,omitempty"`
}

type todayJSONLocation struct {
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type todayJSONNext struct {
	Prayer    string `json:"prayer"`
	Time      string `json:"time"`
	Remaining string `json:"remaining"`
}

// printTodayJSON renders structured JSON output. Markers without a
// solution appear as null.
func printTodayJSON(prayers []prayer.Prayer, current, next *prayer.Prayer, now, date time.Time, loc resolvedLocation, tzLoc *time.Location, goTimeFmt string) error {
	timings := make(map[string]string)
	for _, p := range prayers {
		if p.Valid {
			timings[strings.ToLower(p.Name)] = p.Time.Format(goTimeFmt)
		} else {
			timings[strings.ToLower(p.Name)] = ""
		}
	}

	out := todayJSON{
		Location: todayJSONLocation{
			City:      loc.City,
			Country:   loc.Country,
			Timezone:  tzLoc.String(),
			Latitude:  loc.Lat,
			Longitude: loc.Lon,
		},
		Date:    date.Format("2006-01-02"),
		Timings: timings,
	}

	if current != nil {
		out.Current = strings.ToLower(current.Name)
	}

	if next != nil {
		remaining := prayer.FormatRemaining(prayer.TimeRemaining(*next, now))
		out.Next = &todayJSONNext{
			Prayer:    strings.ToLower(next.Name),
			Time:      next.Time.Format(goTimeFmt),
			Remaining: remaining,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
