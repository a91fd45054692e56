package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/testrunner/toolbar/internal/app"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or validate the toolbar config",
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigValidateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			format := getFormatFlag(cmd)
			if format == "" || format == "text" {
				format = "yaml"
			}
			return app.OutputResult(cfg, format, nil)
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a config file against the config schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Root().PersistentFlags().GetString("config")
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				wd, err := os.Getwd()
				if err != nil {
					return app.FailExit(err.Error())
				}
				path = app.FindConfig(wd)
			}
			if path == "" {
				return app.UsageExit("config validate: no config file found")
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return app.FailExit(fmt.Sprintf("failed to read %s: %v", path, err))
			}
			if _, err := app.ParseConfig(data); err != nil {
				return app.ExitResult{Code: 1, Message: strings.TrimSpace(path + ": " + err.Error()), ToStderr: true}
			}
			return app.OKText(path + ": valid")
		},
	}
}
