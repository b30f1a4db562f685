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

var flagQueryDays string

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <prayer>",
		Short: "Query a specific prayer time",
		Long:  "Query a specific prayer time for today, or across multiple days with --days.\n\nValid prayer names: Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuery,
	}

	cmd.Flags().StringVar(&flagQueryDays, "days", "", "Number of days to show (or 'week'/'month')")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	prayerName := prayer.NormalizeName(args[0])
	if prayerName == "" {
		return fmt.Errorf("unknown prayer %q; valid names: %s", args[0], strings.Join(prayer.AllNames, ", "))
	}

	cfg := effectiveConfig(cmd)
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

	// Determine number of days.
	days := 1
	if flagQueryDays != "" {
		switch flagQueryDays {
		case "week":
			days = 7
		case "month":
			days = 30
		default:
			n, err := fmt.Sscanf(flagQueryDays, "%d", &days)
			if err != nil || n != 1 || days < 1 {
				return fmt.Errorf("invalid --days value %q: must be a positive integer, 'week', or 'month'", flagQueryDays)
			}
		}
	}

	daysList, err := computeDays(cfg, loc, start, days, tzLoc, []string{prayerName})
	if err != nil {
		return err
	}

	if days == 1 {
		return printQuerySingle(daysList[0], prayerName, goTimeFmt)
	}

	return printQueryMulti(daysList, prayerName, now, loc, tzLoc, goTimeFmt, days)
}

func printQuerySingle(dd dayData, prayerName, goTimeFmt string) error {
	if len(dd.Prayers) == 0 {
		return fmt.Errorf("no timing found for %s", prayerName)
	}

	p := dd.Prayers[0]
	timeStr := display.NoSolution
	if p.Valid {
		timeStr = p.Time.Format(goTimeFmt)
	}

	if FlagJSON {
		out := queryJSONSingle{
			Prayer: strings.ToLower(prayerName),
			Time:   timeStr,
			Date:   dd.Date.Format("2006-01-02"),
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s %s\n", prayerName, timeStr)
	return nil
}

func printQueryMulti(daysList []dayData, prayerName string, now time.Time, loc resolvedLocation, tzLoc *time.Location, goTimeFmt string, days int) error {
	todayStr := now.Format("2006-01-02")

	if FlagJSON {
		return printQueryJSON(daysList, prayerName, loc, tzLoc, goTimeFmt)
	}

	// Rich terminal output.
	fmt.Println()
	fmt.Printf("  %s\n", display.Bold(fmt.Sprintf("%s Times — %d Days", prayerName, days)))
	fmt.Println()
	fmt.Printf("  %s\n", locationLabel(loc))
	fmt.Println()

	tbl := display.NewTable([]string{"Date", prayerName})

	for i, dd := range daysList {
		timeStr := ""
		if len(dd.Prayers) > 0 && dd.Prayers[0].Valid {
			timeStr = dd.Prayers[0].Time.Format(goTimeFmt)
		}

		tbl.AddRow([]string{dd.Date.Format("Mon 02 Jan"), timeStr})

		if dd.Date.Format("2006-01-02") == todayStr {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Print(tbl.Render())
	fmt.Println()
	return nil
}

type queryJSONSingle struct {
	Prayer string `json:"prayer"`
	Time   string `json:"time"`
	Date   string `json:"date"`
}

type queryJSONMulti struct {
	Location todayJSONLocation `json:"location"`
	Prayer   string            `json:"prayer"`
	Days     []queryJSONDay    `json:"days"`
}

type queryJSONDay struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func printQueryJSON(daysList []dayData, prayerName string, loc resolvedLocation, tzLoc *time.Location, goTimeFmt string) error {
	out := queryJSONMulti{
		Location: todayJSONLocation{
			City:      loc.City,
			Country:   loc.Country,
			Timezone:  tzLoc.String(),
			Latitude:  loc.Lat,
			Longitude: loc.Lon,
		},
		Prayer: strings.ToLower(prayerName),
	}

	for _, dd := range daysList {
		timeStr := ""
		if len(dd.Prayers) > 0 && dd.Prayers[0].Valid {
			timeStr = dd.Prayers[0].Time.Format(goTimeFmt)
		}
		out.Days = append(out.Days, queryJSONDay{
			Date: dd.Date.Format("2006-01-02"),
			Time: timeStr,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
