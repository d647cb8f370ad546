package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/waqt-dev/waqt/internal/config"
	"github.com/waqt-dev/waqt/internal/display"
	"github.com/waqt-dev/waqt/internal/geo"
	"github.com/waqt-dev/waqt/internal/prayer"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or modify configuration",
		Long:  "Display current configuration, or use subcommands to modify it.\nWhen run without subcommands, shows the current configuration.",
		RunE:  runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: fmt.Sprintf("Set a configuration value. Valid keys: %s\n\nExamples:\n  waqt config set city Yangon\n  waqt config set method ummalqura\n  waqt config set asr_factor 2\n  waqt config set utc_offset 6.5\n  waqt config set prayers Fajr,Dhuhr,Asr,Maghrib,Isha",
			strings.Join(config.ValidKeys, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset config to defaults",
		Long:  "Delete the config file and restore all settings to defaults.",
		RunE:  runConfigReset,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print config file path",
		RunE:  runConfigPath,
	})

	return cmd
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Configuration (%s)\n\n", path)

	for _, key := range config.ValidKeys {
		val, _ := cfg.Get(key)
		shown := val
		if shown == "" {
			shown = "(not set)"
		}
		if key == "method" && val != "" {
			if m, err := prayer.ParseMethod(val); err == nil {
				shown = fmt.Sprintf("%s (%s)", val, m.Description())
			}
		}
		if key == "asr_factor" && val != "" {
			shown = formatAsrValue(val)
		}
		fmt.Printf("  %-18s %s\n", key, shown)
	}
	return nil
}

// runConfigSet sets a config key to the given value.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	// Validate against the file contents only; env overrides must not be
	// baked into the saved config.
	path, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

// runConfigReset deletes the config file.
func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := config.Reset(); err != nil {
		return err
	}
	fmt.Println("Configuration reset to defaults.")
	return nil
}

// runConfigPath prints the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// formatAsrValue adds the school name to the numeric value.
func formatAsrValue(val string) string {
	switch val {
	case "1":
		return "1 (Shafi/Maliki/Hanbali)"
	case "2":
		return "2 (Hanafi)"
	default:
		return val
	}
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List all calculation methods",
		Long:  "Print the table of supported calculation methods and their twilight angles.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Supported calculation methods:")
			fmt.Println()

			tbl := display.NewTable("Name", "Fajr", "Isha", "Description")
			for _, m := range prayer.Methods {
				p := m.Params(nil, nil, 0)

				fajr := fmt.Sprintf("%.1f°", p.FajrAngle)
				isha := fmt.Sprintf("%.1f°", p.IshaAngle)
				switch {
				case m == prayer.Custom:
					fajr, isha = "--fajr-angle", "--isha-angle"
				case p.IshaInterval > 0:
					isha = fmt.Sprintf("Maghrib +%dm", p.IshaInterval)
				}

				tbl.AddRow(m.String(), fajr, isha, m.Description())
			}
			fmt.Print(tbl.Render())

			fmt.Println()
			fmt.Println("Use --method <name> to select a method; custom requires --fajr-angle/--isha-angle.")
			return nil
		},
	}
}

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities [filter]",
		Short: "List the bundled city directory",
		Long:  "Print the bundled city directory, optionally filtered by a city or country substring.\nOffsets are standard time; pass --utc-offset when DST is in effect.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}

			cities := geo.Cities(filter)
			if len(cities) == 0 {
				return fmt.Errorf("no city matches %q", filter)
			}

			tbl := display.NewTable("City", "Country", "Latitude", "Longitude", "UTC")
			for _, c := range cities {
				tbl.AddRow(
					c.Name, c.Country,
					fmt.Sprintf("%.4f", c.Latitude),
					fmt.Sprintf("%.4f", c.Longitude),
					fmt.Sprintf("%+.1f", c.UTCOffset),
				)
			}
			fmt.Print(tbl.Render())
			return nil
		},
	}
}
