package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/internal/output"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change dropdown defaults",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}
		if configJSON {
			return output.JSON(cfg)
		}
		for _, line := range configLines(cfg) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a default in .dropdown/config.json",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(getBaseDir(), args[0], args[1]); err != nil {
			return err
		}
		output.Success("SET %s = %s", args[0], args[1])
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "print as JSON")
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configLines renders cfg as "key = value" lines in Keys() order.
func configLines(cfg config.Config) []string {
	values := map[string]string{
		"placement":         cfg.Placement,
		"trigger":           cfg.Trigger,
		"inline":            fmt.Sprint(cfg.Inline),
		"arrow_icon":        fmt.Sprint(cfg.ArrowIcon),
		"dismiss_on_click":  fmt.Sprint(cfg.DismissOnClick),
		"max_visible":       fmt.Sprint(cfg.MaxVisible),
		"typeahead.timeout": cfg.Typeahead.Timeout.String(),
		"typeahead.fuzzy":   fmt.Sprint(cfg.Typeahead.Fuzzy),
		"log.level":         cfg.Log.Level,
		"log.file":          cfg.Log.File,
	}
	lines := make([]string, 0, len(values))
	for _, k := range config.Keys() {
		lines = append(lines, k+" = "+values[k])
	}
	return lines
}
