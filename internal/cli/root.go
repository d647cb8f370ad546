package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/waqt-dev/waqt/internal/config"
)

// Global flags shared across all subcommands.
var (
	FlagCity         string
	FlagLatitude     float64
	FlagLongitude    float64
	FlagUTCOffset    float64
	FlagMethod       string
	FlagAsrFactor    int
	FlagFajrAngle    float64
	FlagIshaAngle    float64
	FlagIshaInterval int
	FlagHijriAdjust  int
	FlagDate         string
	FlagJSON         bool
	FlagTimeFormat   string
	FlagVerbose      bool
)

// loadedConfig holds the config loaded during PersistentPreRunE.
// Available to all subcommand handlers.
var loadedConfig *config.Config

// log is the diagnostic logger; disabled unless --verbose is set.
var log = zerolog.Nop()

// NewRootCmd creates the root command for the waqt CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "waqt",
		Short:   "Offline Islamic prayer times CLI",
		Long:    "Compute Islamic prayer times locally from solar position -- no network, no timezone database, just coordinates and a UTC offset.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if FlagVerbose {
				log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
					With().Timestamp().Logger().Level(zerolog.DebugLevel)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			loadedConfig = cfg
			log.Debug().Interface("config", cfg).Msg("config loaded")
			return nil
		},
		// Default action: show today's prayer schedule.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Register global persistent flags.
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&FlagCity, "city", "", "City from the bundled directory (see 'waqt cities')")
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Latitude in signed degrees (overrides config)")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Longitude in signed degrees (overrides config)")
	pf.Float64Var(&FlagUTCOffset, "utc-offset", 0, "UTC offset in hours, fractional allowed (e.g. 6.5); DST must be pre-resolved")
	pf.StringVar(&FlagMethod, "method", "", "Calculation method: mwl, karachi, egypt, ummalqura, custom")
	pf.IntVar(&FlagAsrFactor, "asr", 0, "Asr shadow factor: 1 (Shafi) or 2 (Hanafi)")
	pf.Float64Var(&FlagFajrAngle, "fajr-angle", 0, "Custom Fajr angle in degrees below horizon (method=custom)")
	pf.Float64Var(&FlagIshaAngle, "isha-angle", 0, "Custom Isha angle in degrees below horizon (method=custom)")
	pf.IntVar(&FlagIshaInterval, "isha-interval", 0, "Minutes after Maghrib for interval Isha (method=ummalqura)")
	pf.IntVar(&FlagHijriAdjust, "hijri-adjust", 0, "Hijri date adjustment in days")
	pf.StringVar(&FlagDate, "date", "", "Date to compute (YYYY-MM-DD, default today)")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 12h or 24h (overrides config)")
	pf.BoolVar(&FlagVerbose, "verbose", false, "Log solver diagnostics to stderr")

	// Register subcommands.
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMethodsCmd())
	rootCmd.AddCommand(newCitiesCmd())

	return rootCmd
}

// effectiveConfig returns the merged configuration values, applying the
// priority: CLI flags > env (already merged into the loaded config) >
// config file > defaults. Cobra's Changed() detects whether a flag was
// explicitly set.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	cfg := loadedConfig
	if cfg == nil {
		empty := config.Config{}
		cfg = &empty
	}

	defaults := config.Defaults()

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if flagWasSet(flags, root, "city") {
		cfg.City = FlagCity
	}
	if flagWasSet(flags, root, "latitude") {
		cfg.Latitude = FlagLatitude
	}
	if flagWasSet(flags, root, "longitude") {
		cfg.Longitude = FlagLongitude
	}
	if flagWasSet(flags, root, "utc-offset") {
		cfg.UTCOffset = &FlagUTCOffset
	}
	if flagWasSet(flags, root, "method") {
		cfg.Method = FlagMethod
	} else if cfg.Method == "" {
		cfg.Method = defaults.Method
	}
	if flagWasSet(flags, root, "asr") {
		cfg.AsrFactor = &FlagAsrFactor
	} else if cfg.AsrFactor == nil {
		cfg.AsrFactor = defaults.AsrFactor
	}
	if flagWasSet(flags, root, "fajr-angle") {
		cfg.FajrAngle = &FlagFajrAngle
	}
	if flagWasSet(flags, root, "isha-angle") {
		cfg.IshaAngle = &FlagIshaAngle
	}
	if flagWasSet(flags, root, "isha-interval") {
		cfg.IshaInterval = &FlagIshaInterval
	}
	if flagWasSet(flags, root, "hijri-adjust") {
		cfg.HijriAdjust = &FlagHijriAdjust
	}

	// Time format: CLI flag > config > default ("12h").
	if flagWasSet(flags, root, "time-format") {
		cfg.TimeFormat = FlagTimeFormat
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = defaults.TimeFormat
	}

	return cfg
}

// flagWasSet checks if a flag was explicitly set on either the local or
// persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}
