package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/testrunner/toolbar/internal/app"
	"github.com/testrunner/toolbar/internal/tui"
)

func newRunCmd() *cobra.Command {
	var (
		url     string
		page    string
		port    int
		logFile string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the toolbar (TUI)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgPath, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			overrides := func(c *app.Config) {
				if flags.Changed("url") {
					c.BaseURL = url
				}
				if flags.Changed("page") {
					c.PageURL = page
				}
				if flags.Changed("port") {
					c.Port = port
				}
			}
			overrides(&cfg)

			var logOut io.Writer
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, app.FilePerm)
				if err != nil {
					return app.FailExit(fmt.Sprintf("failed to open log file: %v", err))
				}
				defer f.Close()
				logOut = f
			}
			logger := app.ConfigureLogging(logOut)
			if debug {
				app.SetLogLevel(slog.LevelDebug)
			}
			logger.Info("toolbar starting", "config", cfgPath, "port", cfg.Port, "page", cfg.PageURL)

			return tui.RunToolbar(cfg, cfgPath, overrides, logger)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "URL the runner starts on (default: none)")
	cmd.Flags().StringVar(&page, "page", "", "location the runner is served from")
	cmd.Flags().IntVar(&port, "port", 0, "expected port of the app under test (default: config port)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file ($TOOLBAR_LOG_LEVEL sets the level)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log at debug level regardless of $TOOLBAR_LOG_LEVEL")

	return cmd
}
