package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/waqt-dev/waqt/internal/display"
	"github.com/waqt-dev/waqt/internal/prayer"
)

var flagQueryDays string

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <prayer>",
		Short: "Query a specific prayer time",
		Long: "Query a specific prayer time for today, or across multiple days with --days.\n\nValid prayer names: " +
			strings.Join(prayer.EventNames, ", "),
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().StringVar(&flagQueryDays, "days", "", "Number of days to show (or 'week'/'month')")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	prayerName := ""
	for _, name := range prayer.EventNames {
		if strings.EqualFold(name, args[0]) {
			prayerName = name
			break
		}
	}
	if prayerName == "" {
		return fmt.Errorf("unknown prayer %q; valid names: %s", args[0], strings.Join(prayer.EventNames, ", "))
	}

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

	if days == 1 {
		t, _ := rows[0].Schedule.Lookup(prayerName)

		if FlagJSON {
			out := queryJSONSingle{
				Prayer: strings.ToLower(prayerName),
				Date:   rows[0].Date.Format("2006-01-02"),
				Time:   t.String(),
			}
			if m, ok := t.Minutes(); ok {
				out.Minutes = &m
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		// Unreachable formats itself to the long placeholder here, where a
		// sentence fits.
		fmt.Printf("%s %s\n", prayerName, t.String())
		return nil
	}

	if FlagJSON {
		return printQueryJSON(prayerName, rows)
	}

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold(fmt.Sprintf("%s — %d Days", prayerName, days)))
	fmt.Println()
	fmt.Printf("  %s\n", loc.Label)
	fmt.Println()

	tbl := display.NewTable("Date", prayerName)
	for i, r := range rows {
		t, _ := r.Schedule.Lookup(prayerName)
		tbl.AddRow(r.Date.Format("Mon 02 Jan"), displayTime(t, cfg))
		if !t.Reachable() {
			tbl.SetDimRow(i)
		}
	}
	fmt.Print(tbl.Render())
	fmt.Println()
	return nil
}

type queryJSONSingle struct {
	Prayer  string `json:"prayer"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Minutes *int   `json:"minutes_since_midnight,omitempty"`
}

type queryJSONDay struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func printQueryJSON(prayerName string, rows []dayRow) error {
	out := struct {
		Prayer string         `json:"prayer"`
		Days   []queryJSONDay `json:"days"`
	}{Prayer: strings.ToLower(prayerName)}

	for _, r := range rows {
		t, _ := r.Schedule.Lookup(prayerName)
		out.Days = append(out.Days, queryJSONDay{
			Date: r.Date.Format("2006-01-02"),
			Time: t.String(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
