package cli

import (
	"fmt"
	"strings"

	"github.com/smokyabdulrahman/salatime/internal/config"
	"github.com/smokyabdulrahman/salatime/internal/method"
	"github.com/spf13/cobra"
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
		Long: fmt.Sprintf("Set a configuration value. Valid keys: %s\n\nExamples:\n  salatime config set latitude 21.4225\n  salatime config set method makkah\n  salatime config set school hanafi\n  salatime config set iqama \"Fajr=20,Dhuhr=15\"\n  salatime config set prayers Fajr,Dhuhr,Asr,Maghrib,Isha",
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
		display := val
		if display == "" {
			display = "(not set)"
		}
		// Add the full method name next to its short ID.
		if key == "method" && val != "" {
			if name, ok := method.Names[method.ID(val)]; ok {
				display = fmt.Sprintf("%s (%s)", val, name)
			}
		}
		fmt.Printf("  %-14s %s\n", key, display)
	}
	return nil
}

// runConfigSet sets a config key to the given value.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
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

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List all calculation methods",
		Long:  "Print the table of supported calculation methods and their parameters.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Supported calculation methods:")
			fmt.Println()
			fmt.Printf("  %-9s %-40s %-6s %s\n", "ID", "Name", "Fajr", "Isha")
			fmt.Printf("  %-9s %-40s %-6s %s\n", "──", "────", "────", "────")
			for _, id := range method.All {
				p, err := method.Lookup(id)
				if err != nil {
					return err
				}
				fmt.Printf("  %-9s %-40s %-6s %s\n",
					id, method.Names[id], fmt.Sprintf("%g°", p.FajrAngle), p.Isha)
			}
			fmt.Println()
			fmt.Println("Use --method <ID> to select a calculation method (default: mwl).")
			fmt.Println("Use --school hanafi for the later Hanafi Asr; all methods default to Shafi.")
			return nil
		},
	}
}
