package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/waqt-dev/waqt/internal/prayer"
)

var flagNextFormat string

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer time with a countdown.\nThe --format modes are single-line and quiet, suitable for status bars (tmux, i3, waybar).",
		RunE:  runNext,
	}

	cmd.Flags().StringVar(&flagNextFormat, "format", prayer.FormatFull,
		"Display format: time-remaining, next-prayer-time, name-and-time, name-and-remaining, short-name-and-time, short-name-and-remaining, full, or a custom Go template")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	now := time.Now()
	loc, err := resolveLocation(cfg, now)
	if err != nil {
		return err
	}

	tz := fixedZone(loc.UTCOffset)
	nowLocal := now.In(tz)
	selected := selectedPrayers(cfg)

	s, err := scheduleFor(cfg, loc, nowLocal)
	if err != nil {
		return err
	}

	next := prayer.NextPrayer(s.Prayers(nowLocal, tz, selected), nowLocal)
	if next == nil {
		// Everything today has passed (or is unreachable): roll over to
		// tomorrow's first event.
		tomorrow := nowLocal.AddDate(0, 0, 1)
		s, err = scheduleFor(cfg, loc, tomorrow)
		if err != nil {
			return err
		}
		prayers := s.Prayers(tomorrow, tz, selected)
		if len(prayers) == 0 {
			return fmt.Errorf("no reachable prayer time today or tomorrow at this latitude")
		}
		next = &prayers[0]
	}

	fmt.Println(prayer.FormatOutput(*next, nowLocal, flagNextFormat, goTimeFormat(cfg)))
	return nil
}
