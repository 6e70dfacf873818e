package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the twinfix configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadAppConfig()
		if err != nil {
			return err
		}

		path := cfgFile
		if path == "" {
			path = model.DefaultConfigPath()
		}
		if err := model.SaveConfig(path, cfg); err != nil {
			return err
		}

		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
