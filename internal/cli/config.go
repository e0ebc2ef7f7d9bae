package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"swim/internal/app"
	"swim/internal/config"
	"swim/internal/settings"
)

func init() {
	configCmd.AddCommand(configInitCmd, configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the config file location and effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.Path()
		if err != nil {
			return err
		}
		cfg, err := app.LoadConfig(overrides())
		if err != nil {
			return err
		}
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n%s", p, b)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Edit and save config.yaml interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run()
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := config.MarshalSchema(config.Schema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
