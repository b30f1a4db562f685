package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/smokyabdulrahman/salatime/internal/config"
	"github.com/smokyabdulrahman/salatime/internal/display"
	"github.com/smokyabdulrahman/salatime/internal/prayer"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [days]",
		Short: "Show prayer times for multiple days",
		Long:  "Display a grid of prayer times for N days (default: 7), starting from --date or today.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, 7)
		},
	}
}

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show prayer times for the next 7 days",
		Long:  "Alias for 'list 7'. Display a grid of prayer times for 7 days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 7)
		},
	}
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show prayer times for the next 30 days",
		Long:  "Alias for 'list 30'. Display a grid of prayer times for 30 days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 30)
		},
	}
}

// dayData holds one computed day for list/query output.
type dayData struct {
	Date    time.Time
	Prayers []prayer.Prayer
}

// runList is the handler for the list subcommand and its aliases.
func runList(cmd *cobra.Command, args []string, defaultDays int) error {
	days := defaultDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid number of days: %q (must be a positive integer)", args[0])
		}
		days = n
	}

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

	start, err := resolveDate(now, tzLoc)
	if err != nil {
		return err
	}

	daysList, err := computeDays(cfg, loc, start, days, tzLoc, selected)
	if err != nil {
		return err
	}

	todayStr := now.Format("2006-01-02")

	if FlagJSON {
		return printListJSON(daysList, loc, tzLoc, goTimeFmt)
	}

	// Rich terminal output.
	fmt.Println()
	fmt.Printf("  %s\n", display.Bold(fmt.Sprintf("Prayer Times — %d Days", days)))
	fmt.Println()
	fmt.Printf("  %s\n", locationLabel(loc))
	fmt.Println()

	headers := []string{"Date"}
	headers = append(headers, selected...)
	tbl := display.NewTable(headers)

	for i, dd := range daysList {
		row := []string{dd.Date.Format("Mon 02 Jan")}
		for _, p := range dd.Prayers {
			cell := ""
			if p.Valid {
				cell = p.Time.Format(goTimeFmt)
			}
			row = append(row, cell)
		}
		tbl.AddRow(row)

		// Highlight today's row.
		if dd.Date.Format("2006-01-02") == todayStr {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Print(tbl.Render())
	fmt.Println()
	return nil
}

// computeDays runs the engine for `days` consecutive days from start.
// No calendar endpoint, no caching: each day is one pure computation.
func computeDays(cfg *config.Config, loc resolvedLocation, start time.Time, days int, tzLoc *time.Location, selected []string) ([]dayData, error) {
	result := make([]dayData, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		prayers, err := computeDay(cfg, loc, d, tzLoc, selected)
		if err != nil {
			return nil, fmt.Errorf("failed to compute %s: %w", d.Format("2006-01-02"), err)
		}
		result = append(result, dayData{Date: d, Prayers: prayers})
	}
	return result, nil
}

// listJSONOutput is the JSON structure for the list command.
type listJSONOutput struct {
	Location todayJSONLocation `json:"location"`
	Days     []listJSONDay     `json:"days"`
}

type listJSONDay struct {
	Date    string            `json:"date"`
	Timings map[string]string `json:"timings"`
}

func printListJSON(daysList []dayData, loc resolvedLocation, tzLoc *time.Location, goTimeFmt string) error {
	out := listJSONOutput{
		Location: todayJSONLocation{
			City:      loc.City,
			Country:   loc.Country,
			Timezone:  tzLoc.String(),
			Latitude:  loc.Lat,
			Longitude: loc.Lon,
		},
	}

	for _, dd := range daysList {
		timings := make(map[string]string)
		for _, p := range dd.Prayers {
			if p.Valid {
				timings[strings.ToLower(p.Name)] = p.Time.Format(goTimeFmt)
			} else {
				timings[strings.ToLower(p.Name)] = ""
			}
		}
		out.Days = append(out.Days, listJSONDay{
			Date:    dd.Date.Format("2006-01-02"),
			Timings: timings,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
