package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/smokyabdulrahman/salatime/internal/prayer"
	"github.com/spf13/cobra"
)

var (
	flagFormat  string
	flagPrayers string
)

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer time with a countdown.\nSuitable for status bars (tmux, polybar, etc.).",
		RunE:  runNext,
	}

	cmd.Flags().StringVar(&flagFormat, "format", prayer.FormatFull, "Display format: time-remaining, next-prayer-time, name-and-time, name-and-remaining, short-name-and-time, short-name-and-remaining, full, or a custom Go template")
	cmd.Flags().StringVar(&flagPrayers, "prayers", "", "Comma-separated list of prayers to track (overrides config)")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
	// Get merged config (CLI flags > config file > defaults).
	cfg := effectiveConfig(cmd)

	// Determine which prayers to track.
	// Priority: --prayers flag > config > defaults.
	selected := selectedPrayers(cfg)
	if cmd.Flags().Changed("prayers") && flagPrayers != "" {
		selected = strings.Split(flagPrayers, ",")
		for i := range selected {
			selected[i] = strings.TrimSpace(selected[i])
		}
	}

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

	prayers, err := computeDay(cfg, loc, now, tzLoc, selected)
	if err != nil {
		return err
	}

	next := prayer.NextPrayer(prayers, now)

	// All of today's prayers have passed (or none has a solution):
	// roll over to tomorrow's first prayer. Just another engine call,
	// not a network round trip.
	if next == nil {
		tomorrow := now.AddDate(0, 0, 1)
		tomorrowPrayers, err := computeDay(cfg, loc, tomorrow, tzLoc, selected)
		if err != nil {
			return err
		}
		next = prayer.FirstValid(tomorrowPrayers)
	}

	if next == nil {
		// Polar day or night can leave nothing solvable two days
		// running for an angle-only selection.
		return fmt.Errorf("no computable prayer time at this latitude and date")
	}

	output := prayer.FormatOutput(*next, now, flagFormat, goTimeFmt)
	fmt.Print(output)

	return nil
}
