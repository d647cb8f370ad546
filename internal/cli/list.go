package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/waqt-dev/waqt/internal/config"
	"github.com/waqt-dev/waqt/internal/display"
	"github.com/waqt-dev/waqt/internal/prayer"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [days]",
		Short: "Show prayer times for multiple days",
		Long:  "Display a grid of prayer times for N days starting from --date or today (default: 7).",
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
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 7)
		},
	}
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show prayer times for the next 30 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 30)
		},
	}
}

// dayRow pairs a date with its computed schedule for list/query output.
type dayRow struct {
	Date     time.Time
	Schedule prayer.Schedule
}

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

	now := time.Now()
	loc, err := resolveLocation(cfg, now)
	if err != nil {
		return err
	}

	start, err := resolveDate(loc, now)
	if err != nil {
		return err
	}

	rows, err := computeDays(cfg, loc, start, days)
	if err != nil {
		return err
	}

	selected := selectedPrayers(cfg)

	if FlagJSON {
		return printListJSON(cfg, loc, rows, selected)
	}

	todayStr := now.In(fixedZone(loc.UTCOffset)).Format("2006-01-02")

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold(fmt.Sprintf("Prayer Times — %d Days", days)))
	fmt.Println()
	fmt.Printf("  %s\n", loc.Label)
	fmt.Println()

	tbl := display.NewTable(append([]string{"Date"}, selected...)...)
	for i, r := range rows {
		cells := []string{r.Date.Format("Mon 02 Jan")}
		for _, name := range selected {
			t, _ := r.Schedule.Lookup(name)
			cells = append(cells, displayTime(t, cfg))
		}
		tbl.AddRow(cells...)

		if r.Date.Format("2006-01-02") == todayStr {
			tbl.SetHighlightRow(i)
		}
	}
	fmt.Print(tbl.Render())
	fmt.Println()
	return nil
}

// computeDays computes consecutive daily schedules starting at start.
func computeDays(cfg *config.Config, loc resolvedLocation, start time.Time, days int) ([]dayRow, error) {
	rows := make([]dayRow, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		s, err := scheduleFor(cfg, loc, date)
		if err != nil {
			return nil, err
		}
		rows = append(rows, dayRow{Date: date, Schedule: s})
	}
	return rows, nil
}

// listJSONDay is one day's entry of the list --json output.
type listJSONDay struct {
	Date    string            `json:"date"`
	Timings map[string]string `json:"timings"`
	Minutes map[string]int    `json:"minutes_since_midnight"`
}

type listJSON struct {
	Location todayJSONLocation `json:"location"`
	Days     []listJSONDay     `json:"days"`
}

func printListJSON(cfg *config.Config, loc resolvedLocation, rows []dayRow, selected []string) error {
	out := listJSON{
		Location: todayJSONLocation{
			Label:     loc.Label,
			Latitude:  loc.Lat,
			Longitude: loc.Lng,
			UTCOffset: loc.UTCOffset,
		},
	}

	for _, r := range rows {
		day := listJSONDay{
			Date:    r.Date.Format("2006-01-02"),
			Timings: make(map[string]string),
			Minutes: make(map[string]int),
		}
		for _, name := range selected {
			t, ok := r.Schedule.Lookup(name)
			if !ok {
				continue
			}
			day.Timings[strings.ToLower(name)] = t.String()
			if m, ok := t.Minutes(); ok {
				day.Minutes[strings.ToLower(name)] = m
			}
		}
		out.Days = append(out.Days, day)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
