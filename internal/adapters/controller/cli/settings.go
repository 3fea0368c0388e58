package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/cmd/app"
	"github.com/qrforge/qrforge/internal/adapters/config"
)

// newConfigCmd inspects and persists the application settings that seed the
// generate and batch defaults.
func newConfigCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and persist application settings",
	}
	cmd.AddCommand(newConfigShowCmd(a), newConfigSetCmd(a))
	return cmd
}

func newConfigShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := a.Settings
			fmt.Printf("theme            %s\n", s.Theme)
			fmt.Printf("output-dir       %s\n", s.OutputDir)
			fmt.Printf("format           %s\n", s.LastFormat)
			fmt.Printf("naming-template  %s\n", s.NamingTemplate)
			fmt.Printf("default-size     %d\n", s.DefaultSize)
			fmt.Printf("debug            %t\n", s.Debug)
			fmt.Printf("log-to-file      %t\n", s.LogToFile)
			fmt.Printf("logs-dir         %s\n", s.LogsDir)
		},
	}
}

func newConfigSetCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set a settings key and write the settings file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applySetting(a.Settings, args[0], args[1]); err != nil {
				return err
			}
			if err := a.Settings.Save("."); err != nil {
				return err
			}
			color.Green("✓ %s = %s", args[0], args[1])
			return nil
		},
	}
}

func applySetting(s *config.Settings, key, value string) error {
	switch key {
	case "theme":
		s.Theme = value
	case "output-dir":
		s.OutputDir = value
	case "format":
		s.LastFormat = value
	case "naming-template":
		s.NamingTemplate = value
	case "default-size":
		size, err := strconv.Atoi(value)
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid default-size %q: want a positive integer", value)
		}
		s.DefaultSize = size
	case "debug":
		return applyBoolSetting(&s.Debug, key, value)
	case "log-to-file":
		return applyBoolSetting(&s.LogToFile, key, value)
	case "logs-dir":
		s.LogsDir = value
	default:
		return fmt.Errorf("unknown settings key %q", key)
	}
	return nil
}

func applyBoolSetting(target *bool, key, value string) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: want true or false", key, value)
	}
	*target = parsed
	return nil
}
