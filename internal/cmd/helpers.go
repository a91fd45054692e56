package cmd

import (
	"github.com/spf13/cobra"

	"github.com/testrunner/toolbar/internal/app"
)

// getFormatFlag returns the global --format flag from the root command.
func getFormatFlag(c *cobra.Command) string {
	format, _ := c.Root().PersistentFlags().GetString("format")
	return format
}

// loadConfig loads the config named by the global --config flag, or the one
// found in the working directory.
func loadConfig(c *cobra.Command) (app.Config, string, error) {
	path, _ := c.Root().PersistentFlags().GetString("config")
	cfg, used, err := app.LoadConfig(path)
	if err != nil {
		return cfg, used, app.FailExit(err.Error())
	}
	return cfg, used, nil
}
